package handler

import (
	"net/http"

	"handloom/internal/delivery/api/response"
	deliverycontext "handloom/internal/delivery/context"
	"handloom/internal/domain/entity"
	"handloom/internal/usecase"

	"github.com/labstack/echo/v4"
)

// GroupHandler serves the group directory.
type GroupHandler struct {
	groupUC usecase.GroupUsecase
}

// NewGroupHandler is the constructor for GroupHandler
func NewGroupHandler(groupUC usecase.GroupUsecase) *GroupHandler {
	return &GroupHandler{groupUC: groupUC}
}

// GroupRequest is the body of group creation and update.
type GroupRequest struct {
	Name        *string `json:"name" validate:"omitempty,max=100"`
	Description *string `json:"description"`
}

// GroupResponse adds the member count to a group.
type GroupResponse struct {
	*entity.Group
	MemberCount int `json:"member_count"`
}

func newGroupResponse(group *entity.Group) GroupResponse {
	return GroupResponse{Group: group, MemberCount: group.MemberCount()}
}

func (h *GroupHandler) CreateGroup(c echo.Context) error {
	var req GroupRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	input := &usecase.CreateGroupInput{}
	if req.Name != nil {
		input.Name = *req.Name
	}
	if req.Description != nil {
		input.Description = *req.Description
	}

	group, err := h.groupUC.CreateGroup(c.Request().Context(), deliverycontext.GetPrincipal(c), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, newGroupResponse(group))
}

func (h *GroupHandler) ListGroups(c echo.Context) error {
	groups, err := h.groupUC.ListGroups(c.Request().Context(), deliverycontext.GetPrincipal(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	items := make([]GroupResponse, 0, len(groups))
	for _, group := range groups {
		items = append(items, newGroupResponse(group))
	}

	return response.Success(c, http.StatusOK, items)
}

func (h *GroupHandler) GetGroup(c echo.Context) error {
	groupID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	group, err := h.groupUC.GetGroup(c.Request().Context(), deliverycontext.GetPrincipal(c), groupID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newGroupResponse(group))
}

func (h *GroupHandler) UpdateGroup(c echo.Context) error {
	groupID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req GroupRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	group, err := h.groupUC.UpdateGroup(c.Request().Context(), deliverycontext.GetPrincipal(c), groupID, &entity.GroupPatch{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newGroupResponse(group))
}

func (h *GroupHandler) DeleteGroup(c echo.Context) error {
	groupID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.groupUC.DeleteGroup(c.Request().Context(), deliverycontext.GetPrincipal(c), groupID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.NoContent(c)
}

// JoinGroup adds the caller to the group
func (h *GroupHandler) JoinGroup(c echo.Context) error {
	groupID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.groupUC.JoinGroup(c.Request().Context(), deliverycontext.GetPrincipal(c), groupID); err != nil {
		return response.HandleAppError(c, err)
	}

	return confirm(c, "Joined group successfully")
}

// LeaveGroup removes the caller from the group
func (h *GroupHandler) LeaveGroup(c echo.Context) error {
	groupID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.groupUC.LeaveGroup(c.Request().Context(), deliverycontext.GetPrincipal(c), groupID); err != nil {
		return response.HandleAppError(c, err)
	}

	return confirm(c, "Left group successfully")
}
