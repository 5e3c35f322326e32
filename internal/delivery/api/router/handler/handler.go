// Package handler contains the HTTP handlers of the API.
package handler

import (
	"net/http"
	"sort"
	"strings"

	"handloom/internal/delivery/api/response"
	"handloom/internal/delivery/api/validator"
	domainerrors "handloom/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// MessageResponse is the body of endpoints that only confirm an action.
type MessageResponse struct {
	Message string `json:"message"`
}

// bindAndValidate decodes the request body into req and runs its validate tags.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("malformed request body"))
	}

	if err := c.Validate(req); err != nil {
		return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails(describeFieldErrors(err)))
	}

	return nil
}

func describeFieldErrors(err error) string {
	fields := validator.FieldErrors(err)
	if len(fields) == 0 {
		return err.Error()
	}

	parts := make([]string, 0, len(fields))
	for field, rule := range fields {
		parts = append(parts, field+": "+rule)
	}
	sort.Strings(parts)

	return strings.Join(parts, "; ")
}

// pathID parses a UUID path parameter.
func pathID(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails(name + " must be a UUID"))
	}

	return id, nil
}

func confirm(c echo.Context, message string) error {
	return response.Success(c, http.StatusOK, MessageResponse{Message: message})
}

// HealthCheck reports that the process is serving.
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
