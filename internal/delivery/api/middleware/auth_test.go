package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"handloom/config"
	deliverycontext "handloom/internal/delivery/context"
	"handloom/internal/domain/entity"
	domainerrors "handloom/internal/domain/errors"
	mockUsecase "handloom/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newAuthTestContext(configure func(req *http.Request)) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/users/me", nil)
	if configure != nil {
		configure(req)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestAuthMiddleware_Authenticate(t *testing.T) {
	principal := &entity.Principal{UserID: uuid.New(), Username: "asha", Role: entity.RoleWeaver, SessionID: "sid"}

	tests := []struct {
		name      string
		configure func(req *http.Request)
		setup     func(uc *mockUsecase.MockUserUsecase)
		wantErr   error
	}{
		{
			name: "session cookie",
			configure: func(req *http.Request) {
				req.AddCookie(&http.Cookie{Name: "sessionid", Value: "cookie-token"})
			},
			setup: func(uc *mockUsecase.MockUserUsecase) {
				uc.EXPECT().Authenticate(mock.Anything, "cookie-token").Return(principal, nil)
			},
		},
		{
			name: "bearer header",
			configure: func(req *http.Request) {
				req.Header.Set(echo.HeaderAuthorization, "Bearer header-token")
			},
			setup: func(uc *mockUsecase.MockUserUsecase) {
				uc.EXPECT().Authenticate(mock.Anything, "header-token").Return(principal, nil)
			},
		},
		{
			name:    "no credentials",
			wantErr: domainerrors.ErrUnauthenticated,
		},
		{
			name: "expired session",
			configure: func(req *http.Request) {
				req.AddCookie(&http.Cookie{Name: "sessionid", Value: "stale"})
			},
			setup: func(uc *mockUsecase.MockUserUsecase) {
				uc.EXPECT().Authenticate(mock.Anything, "stale").Return(nil, errors.WithStack(domainerrors.ErrUnauthenticated))
			},
			wantErr: domainerrors.ErrUnauthenticated,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userUC := mockUsecase.NewMockUserUsecase(t)
			if tt.setup != nil {
				tt.setup(userUC)
			}
			m := NewAuthMiddleware(userUC, &config.Config{})
			c, _ := newAuthTestContext(tt.configure)

			var seen *entity.Principal
			err := m.Authenticate(func(c echo.Context) error {
				seen = deliverycontext.GetPrincipal(c)
				assert.Equal(t, seen, deliverycontext.PrincipalFromContext(c.Request().Context()))

				return nil
			})(c)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, seen)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, principal, seen)
		})
	}
}

func TestAuthMiddleware_OptionalAuthenticate(t *testing.T) {
	userUC := mockUsecase.NewMockUserUsecase(t)
	userUC.EXPECT().Authenticate(mock.Anything, "stale").Return(nil, errors.WithStack(domainerrors.ErrUnauthenticated))

	m := NewAuthMiddleware(userUC, &config.Config{Session: &config.SessionConfig{CookieName: "hl_session"}})
	assert.Equal(t, "hl_session", m.CookieName())

	c, _ := newAuthTestContext(func(req *http.Request) {
		req.AddCookie(&http.Cookie{Name: "hl_session", Value: "stale"})
	})

	called := false
	err := m.OptionalAuthenticate(func(c echo.Context) error {
		called = true
		assert.Nil(t, deliverycontext.GetPrincipal(c))

		return nil
	})(c)

	require.NoError(t, err)
	assert.True(t, called)
}
