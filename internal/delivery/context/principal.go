package context

import (
	"context"
	"log/slog"

	"handloom/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

// KeyPrincipal is the key for storing the authenticated caller.
const KeyPrincipal ContextKey = "principal"

// SetPrincipal stores the authenticated caller in both echo.Context and the request
// context, and tags the request-scoped logger with the caller's user ID.
func SetPrincipal(c echo.Context, principal *entity.Principal) {
	c.Set(string(KeyPrincipal), principal)

	ctx := WithPrincipal(c.Request().Context(), principal)
	if logger := GetLogger(ctx); logger != nil && principal != nil {
		ctx = WithLogger(ctx, logger.With(slog.String("user_id", principal.UserID.String())))
	}
	c.SetRequest(c.Request().WithContext(ctx))
}

// GetPrincipal returns the authenticated caller, or nil for anonymous requests.
func GetPrincipal(c echo.Context) *entity.Principal {
	if principal, ok := c.Get(string(KeyPrincipal)).(*entity.Principal); ok {
		return principal
	}

	return nil
}

// WithPrincipal returns a new context with the principal.
func WithPrincipal(ctx context.Context, principal *entity.Principal) context.Context {
	return context.WithValue(ctx, KeyPrincipal, principal)
}

// PrincipalFromContext extracts the principal from standard context.Context.
func PrincipalFromContext(ctx context.Context) *entity.Principal {
	if principal, ok := ctx.Value(KeyPrincipal).(*entity.Principal); ok {
		return principal
	}

	return nil
}
