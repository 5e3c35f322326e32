package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// SessionClaims are carried by a signed session token.
type SessionClaims struct {
	SessionID string    `json:"sid"`
	UserID    uuid.UUID `json:"uid"`
	Role      string    `json:"role"`
	jwt.RegisteredClaims
}

// TokenService signs and verifies session tokens. The token only proves the
// session ID was issued by this service; the session store decides if it is live.
type TokenService interface {
	// IssueSessionToken signs a token for the session that expires with it
	IssueSessionToken(sessionID string, userID uuid.UUID, role string, expiresAt time.Time) (string, error)

	// ParseSessionToken verifies the signature and expiry of a token
	ParseSessionToken(tokenString string) (*SessionClaims, error)
}
