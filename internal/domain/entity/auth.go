package entity

import (
	"time"

	"github.com/google/uuid"
)

// Session is a server-side login session. Logging out deletes it.
type Session struct {
	ID        string    `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// IsExpired reports whether the session has passed its expiry at the given instant.
func (s *Session) IsExpired(now time.Time) bool {
	return s == nil || !now.Before(s.ExpiresAt)
}

// Principal is the authenticated caller of a single request.
// It is resolved once by the auth middleware and passed explicitly to use cases.
type Principal struct {
	UserID    uuid.UUID
	Username  string
	Role      Role
	SessionID string
}

// IsSeller reports whether the principal holds a seller-type role.
func (p *Principal) IsSeller() bool {
	return p != nil && p.Role.IsSeller()
}

// IsAdmin reports whether the principal is an administrator.
func (p *Principal) IsAdmin() bool {
	return p != nil && p.Role == RoleAdmin
}
