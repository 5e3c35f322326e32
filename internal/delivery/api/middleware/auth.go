package middleware

import (
	"strings"

	"handloom/config"
	deliverycontext "handloom/internal/delivery/context"
	domainerrors "handloom/internal/domain/errors"
	"handloom/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// DefaultSessionCookie is used when the session section does not name a cookie.
const DefaultSessionCookie = "sessionid"

// AuthMiddleware resolves the session token on a request into a principal.
type AuthMiddleware struct {
	userUC     usecase.UserUsecase
	cookieName string
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(userUC usecase.UserUsecase, cfg *config.Config) *AuthMiddleware {
	cookieName := DefaultSessionCookie
	if cfg.Session != nil && cfg.Session.CookieName != "" {
		cookieName = cfg.Session.CookieName
	}

	return &AuthMiddleware{userUC: userUC, cookieName: cookieName}
}

// CookieName returns the name of the session cookie.
func (m *AuthMiddleware) CookieName() string {
	return m.cookieName
}

// tokenFrom reads the session token from the cookie, falling back to a Bearer header.
func (m *AuthMiddleware) tokenFrom(c echo.Context) string {
	if cookie, err := c.Cookie(m.cookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	const bearerPrefix = "Bearer "
	authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
	if strings.HasPrefix(authHeader, bearerPrefix) {
		return strings.TrimSpace(strings.TrimPrefix(authHeader, bearerPrefix))
	}

	return ""
}

// Authenticate rejects requests without a live session.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token := m.tokenFrom(c)
		if token == "" {
			return errors.WithStack(domainerrors.ErrUnauthenticated)
		}

		principal, err := m.userUC.Authenticate(c.Request().Context(), token)
		if err != nil {
			return err
		}

		deliverycontext.SetPrincipal(c, principal)

		return next(c)
	}
}

// OptionalAuthenticate attaches the principal when the session is live and
// otherwise lets the request through anonymously.
func (m *AuthMiddleware) OptionalAuthenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token := m.tokenFrom(c)
		if token == "" {
			return next(c)
		}

		principal, err := m.userUC.Authenticate(c.Request().Context(), token)
		if err == nil {
			deliverycontext.SetPrincipal(c, principal)
		}

		return next(c)
	}
}
