package handler

import (
	"log/slog"
	"net/http"
	"time"

	"handloom/config"
	"handloom/internal/delivery/api/response"
	deliverycontext "handloom/internal/delivery/context"
	"handloom/internal/domain/entity"
	"handloom/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// UserHandlerParams holds dependencies for UserHandler, injected by Fx.
type UserHandlerParams struct {
	fx.In

	UserUC usecase.UserUsecase
	Config *config.Config
	Logger *slog.Logger
}

// UserHandler holds dependencies for user-related handlers
type UserHandler struct {
	userUC       usecase.UserUsecase
	cookieName   string
	cookieSecure bool
	logger       *slog.Logger
}

// NewUserHandler is the constructor for UserHandler
func NewUserHandler(params UserHandlerParams) *UserHandler {
	h := &UserHandler{
		userUC: params.UserUC,
		logger: params.Logger,
	}
	if params.Config.Session != nil {
		h.cookieName = params.Config.Session.CookieName
		h.cookieSecure = params.Config.Session.CookieSecure
	}

	return h
}

// RegisterRequest is the sign-up form.
type RegisterRequest struct {
	Username       string `json:"username" validate:"required,max=150"`
	Email          string `json:"email" validate:"required,email"`
	Password       string `json:"password" validate:"required,min=8"`
	Password2      string `json:"password2" validate:"required"`
	UserType       string `json:"user_type" validate:"omitempty,oneof=customer weaver designer"`
	FirstName      string `json:"first_name" validate:"max=150"`
	LastName       string `json:"last_name" validate:"max=150"`
	Phone          string `json:"phone" validate:"max=15"`
	Address        string `json:"address"`
	Bio            string `json:"bio"`
	ProfilePicture string `json:"profile_picture"`
}

// LoginRequest carries credentials.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// UpdateProfileRequest lists the editable profile fields. Absent fields are left unchanged.
type UpdateProfileRequest struct {
	Email          *string `json:"email" validate:"omitempty,email"`
	FirstName      *string `json:"first_name" validate:"omitempty,max=150"`
	LastName       *string `json:"last_name" validate:"omitempty,max=150"`
	Phone          *string `json:"phone" validate:"omitempty,max=15"`
	Address        *string `json:"address"`
	Bio            *string `json:"bio"`
	ProfilePicture *string `json:"profile_picture"`
}

// RegisterResponse is returned after sign-up.
type RegisterResponse struct {
	Message string       `json:"message"`
	User    *entity.User `json:"user"`
}

// LoginResponse is returned after a successful login.
type LoginResponse struct {
	Message   string       `json:"message"`
	User      *entity.User `json:"user"`
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expires_at"`
}

// Register handles account creation
func (h *UserHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	output, err := h.userUC.Register(c.Request().Context(), &usecase.RegisterInput{
		Username:        req.Username,
		Email:           req.Email,
		Password:        req.Password,
		PasswordConfirm: req.Password2,
		Role:            entity.Role(req.UserType),
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		Phone:           req.Phone,
		Address:         req.Address,
		Bio:             req.Bio,
		ProfilePicture:  req.ProfilePicture,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, RegisterResponse{
		Message: "User registered successfully",
		User:    output.User,
	})
}

// Login opens a session and sets the session cookie
func (h *UserHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	output, err := h.userUC.Login(c.Request().Context(), &usecase.LoginInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	c.SetCookie(&http.Cookie{
		Name:     h.cookieName,
		Value:    output.Token,
		Path:     "/",
		Expires:  output.ExpiresAt,
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteLaxMode,
	})

	return response.Success(c, http.StatusOK, LoginResponse{
		Message:   "Login successful",
		User:      output.User,
		Token:     output.Token,
		ExpiresAt: output.ExpiresAt,
	})
}

// Logout ends the current session, if any, and clears the cookie
func (h *UserHandler) Logout(c echo.Context) error {
	if err := h.userUC.Logout(c.Request().Context(), deliverycontext.GetPrincipal(c)); err != nil {
		return response.HandleAppError(c, err)
	}

	c.SetCookie(&http.Cookie{
		Name:     h.cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteLaxMode,
	})

	return confirm(c, "Logout successful")
}

// Me returns the calling user
func (h *UserHandler) Me(c echo.Context) error {
	principal := deliverycontext.GetPrincipal(c)
	if principal == nil {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Authentication required")
	}

	user, err := h.userUC.GetUser(c.Request().Context(), principal, principal.UserID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, user)
}

func (h *UserHandler) ListUsers(c echo.Context) error {
	users, err := h.userUC.ListUsers(c.Request().Context(), deliverycontext.GetPrincipal(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, users)
}

func (h *UserHandler) GetUser(c echo.Context) error {
	userID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	user, err := h.userUC.GetUser(c.Request().Context(), deliverycontext.GetPrincipal(c), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, user)
}

// UpdateProfile edits the profile fields of a user
func (h *UserHandler) UpdateProfile(c echo.Context) error {
	userID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req UpdateProfileRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	user, err := h.userUC.UpdateProfile(c.Request().Context(), deliverycontext.GetPrincipal(c), userID, &entity.UserProfilePatch{
		Email:          req.Email,
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Phone:          req.Phone,
		Address:        req.Address,
		Bio:            req.Bio,
		ProfilePicture: req.ProfilePicture,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, user)
}
