package handler

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"handloom/config"
	"handloom/internal/domain/entity"
	domainerrors "handloom/internal/domain/errors"
	mockUsecase "handloom/internal/mocks/usecase"
	"handloom/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newUserTestServer(t *testing.T, principal *entity.Principal) (*echo.Echo, *mockUsecase.MockUserUsecase) {
	t.Helper()

	userUC := mockUsecase.NewMockUserUsecase(t)
	h := NewUserHandler(UserHandlerParams{
		UserUC: userUC,
		Config: &config.Config{Session: &config.SessionConfig{CookieName: "sessionid", TTL: time.Hour}},
		Logger: newDiscardLogger(),
	})

	e := newTestEcho(principal)
	e.POST("/api/users/register", h.Register)
	e.POST("/api/users/login", h.Login)
	e.POST("/api/users/logout", h.Logout)
	e.GET("/api/users/me", h.Me)
	e.PATCH("/api/users/:id", h.UpdateProfile)

	return e, userUC
}

func TestUserHandler_Register(t *testing.T) {
	t.Run("creates a weaver account", func(t *testing.T) {
		e, userUC := newUserTestServer(t, nil)
		userUC.EXPECT().
			Register(mock.Anything, mock.MatchedBy(func(in *usecase.RegisterInput) bool {
				return in.Username == "asha" && in.PasswordConfirm == "handwoven1" && in.Role == entity.RoleWeaver
			})).
			Return(&usecase.RegisterOutput{User: &entity.User{ID: uuid.New(), Username: "asha", Role: entity.RoleWeaver}}, nil)

		rec := serve(e, http.MethodPost, "/api/users/register",
			`{"username":"asha","email":"asha@example.com","password":"handwoven1","password2":"handwoven1","user_type":"weaver"}`)

		require.Equal(t, http.StatusCreated, rec.Code)
		var body RegisterResponse
		require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &body))
		assert.Equal(t, "asha", body.User.Username)
		assert.NotContains(t, rec.Body.String(), "handwoven1")
	})

	t.Run("rejects an unknown user type before the use case", func(t *testing.T) {
		e, _ := newUserTestServer(t, nil)

		rec := serve(e, http.MethodPost, "/api/users/register",
			`{"username":"asha","email":"asha@example.com","password":"handwoven1","password2":"handwoven1","user_type":"admin"}`)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		env := decodeEnvelope(t, rec)
		assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
		assert.Equal(t, "user_type: oneof=customer weaver designer", env.Error.Details)
	})

	t.Run("password mismatch", func(t *testing.T) {
		e, userUC := newUserTestServer(t, nil)
		userUC.EXPECT().Register(mock.Anything, mock.Anything).Return(nil, errors.WithStack(domainerrors.ErrPasswordMismatch))

		rec := serve(e, http.MethodPost, "/api/users/register",
			`{"username":"asha","email":"asha@example.com","password":"handwoven1","password2":"handwoven2"}`)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, domainerrors.ErrPasswordMismatch.ErrorCode(), decodeEnvelope(t, rec).Error.Code)
	})
}

func TestUserHandler_Login(t *testing.T) {
	t.Run("sets the session cookie", func(t *testing.T) {
		e, userUC := newUserTestServer(t, nil)
		expiresAt := time.Now().Add(time.Hour).UTC().Truncate(time.Second)
		userUC.EXPECT().
			Login(mock.Anything, &usecase.LoginInput{Username: "asha", Password: "handwoven1"}).
			Return(&usecase.LoginOutput{User: &entity.User{Username: "asha"}, Token: "signed-token", ExpiresAt: expiresAt}, nil)

		rec := serve(e, http.MethodPost, "/api/users/login", `{"username":"asha","password":"handwoven1"}`)

		require.Equal(t, http.StatusOK, rec.Code)
		cookies := rec.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.Equal(t, "sessionid", cookies[0].Name)
		assert.Equal(t, "signed-token", cookies[0].Value)
		assert.True(t, cookies[0].HttpOnly)
	})

	t.Run("bad credentials", func(t *testing.T) {
		e, userUC := newUserTestServer(t, nil)
		userUC.EXPECT().Login(mock.Anything, mock.Anything).Return(nil, errors.WithStack(domainerrors.ErrInvalidCredentials))

		rec := serve(e, http.MethodPost, "/api/users/login", `{"username":"asha","password":"wrong"}`)

		require.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Empty(t, rec.Result().Cookies())
		assert.Equal(t, "INVALID_CREDENTIALS", decodeEnvelope(t, rec).Error.Code)
	})

	t.Run("missing password", func(t *testing.T) {
		e, _ := newUserTestServer(t, nil)

		rec := serve(e, http.MethodPost, "/api/users/login", `{"username":"asha"}`)

		require.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestUserHandler_Logout(t *testing.T) {
	principal := newTestPrincipal(entity.RoleCustomer)
	e, userUC := newUserTestServer(t, principal)
	userUC.EXPECT().Logout(mock.Anything, principal).Return(nil)

	rec := serve(e, http.MethodPost, "/api/users/logout", "")

	require.Equal(t, http.StatusOK, rec.Code)
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "sessionid", cookies[0].Name)
	assert.Negative(t, cookies[0].MaxAge)
}

func TestUserHandler_Me(t *testing.T) {
	t.Run("anonymous", func(t *testing.T) {
		e, _ := newUserTestServer(t, nil)

		rec := serve(e, http.MethodGet, "/api/users/me", "")

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("returns the caller", func(t *testing.T) {
		principal := newTestPrincipal(entity.RoleDesigner)
		e, userUC := newUserTestServer(t, principal)
		userUC.EXPECT().GetUser(mock.Anything, principal, principal.UserID).
			Return(&entity.User{ID: principal.UserID, Username: "asha", Role: entity.RoleDesigner}, nil)

		rec := serve(e, http.MethodGet, "/api/users/me", "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, string(decodeEnvelope(t, rec).Data), principal.UserID.String())
	})
}

func TestUserHandler_UpdateProfile(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		e, _ := newUserTestServer(t, newTestPrincipal(entity.RoleCustomer))

		rec := serve(e, http.MethodPatch, "/api/users/not-a-uuid", `{"bio":"hi"}`)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "id must be a UUID", decodeEnvelope(t, rec).Error.Details)
	})

	t.Run("only given fields are patched", func(t *testing.T) {
		principal := newTestPrincipal(entity.RoleCustomer)
		e, userUC := newUserTestServer(t, principal)
		userUC.EXPECT().
			UpdateProfile(mock.Anything, principal, principal.UserID, mock.MatchedBy(func(p *entity.UserProfilePatch) bool {
				return p.Bio != nil && *p.Bio == "Ikat weaver" && p.Email == nil && p.Phone == nil
			})).
			Return(&entity.User{ID: principal.UserID, Bio: "Ikat weaver"}, nil)

		rec := serve(e, http.MethodPatch, "/api/users/"+principal.UserID.String(), `{"bio":"Ikat weaver"}`)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("forbidden", func(t *testing.T) {
		principal := newTestPrincipal(entity.RoleCustomer)
		e, userUC := newUserTestServer(t, principal)
		userUC.EXPECT().UpdateProfile(mock.Anything, principal, mock.Anything, mock.Anything).
			Return(nil, errors.WithStack(domainerrors.ErrForbidden))

		rec := serve(e, http.MethodPatch, "/api/users/"+uuid.NewString(), `{"bio":"x"}`)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}
