// Package impl contains the implementation of the application's business logic.
package impl

import (
	"strings"

	"handloom/internal/domain/entity"
	domainerrors "handloom/internal/domain/errors"

	"github.com/pkg/errors"
)

// requirePrincipal rejects anonymous callers. Use cases never fall back to
// unscoped data when the caller is unknown.
func requirePrincipal(principal *entity.Principal) error {
	if principal == nil {
		return errors.WithStack(domainerrors.ErrUnauthenticated)
	}

	return nil
}

// databaseError hides a persistence failure behind a 500 while keeping the cause for logs.
// Business errors raised by a repository, such as a rejected column value, pass through.
func databaseError(err error, operation string) error {
	var appErr *domainerrors.BaseError
	if errors.As(err, &appErr) {
		return errors.WithStack(appErr)
	}

	return errors.WithStack(domainerrors.NewDatabaseExecuteError(err, operation))
}

func validationError(details string) error {
	return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails(details))
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
