package auth

import (
	"testing"
	"time"

	"handloom/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTokenConfig(secret string) *config.Config {
	return &config.Config{SecretKey: config.SecretKeyConfig{Session: secret}}
}

func TestJWTService_IssueAndParse(t *testing.T) {
	svc, err := NewJWTService(newTestTokenConfig("test_session_secret_key_very_long_for_testing"))
	require.NoError(t, err)

	userID := uuid.New()
	token, err := svc.IssueSessionToken("sess-1", userID, "weaver", time.Now().Add(time.Hour))
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := svc.ParseSessionToken(token)
	require.NoError(t, err)
	assert.Equal(t, "sess-1", claims.SessionID)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "weaver", claims.Role)
}

func TestJWTService_RejectsExpiredToken(t *testing.T) {
	svc, err := NewJWTService(newTestTokenConfig("test_session_secret_key_very_long_for_testing"))
	require.NoError(t, err)

	token, err := svc.IssueSessionToken("sess-1", uuid.New(), "customer", time.Now().Add(-time.Minute))
	require.NoError(t, err)

	claims, err := svc.ParseSessionToken(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_RejectsForeignSignature(t *testing.T) {
	issuer, err := NewJWTService(newTestTokenConfig("secret-one-secret-one-secret-one"))
	require.NoError(t, err)
	verifier, err := NewJWTService(newTestTokenConfig("secret-two-secret-two-secret-two"))
	require.NoError(t, err)

	token, err := issuer.IssueSessionToken("sess-1", uuid.New(), "customer", time.Now().Add(time.Hour))
	require.NoError(t, err)

	_, err = verifier.ParseSessionToken(token)
	assert.Error(t, err)
}

func TestJWTService_RejectsUnsignedToken(t *testing.T) {
	svc, err := NewJWTService(newTestTokenConfig("test_session_secret_key_very_long_for_testing"))
	require.NoError(t, err)

	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"sid": "sess-1",
		"iss": sessionTokenIssuer,
		"exp": time.Now().Add(time.Hour).Unix(),
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = svc.ParseSessionToken(unsigned)
	assert.Error(t, err)
}

func TestJWTService_RejectsGarbage(t *testing.T) {
	svc, err := NewJWTService(newTestTokenConfig("test_session_secret_key_very_long_for_testing"))
	require.NoError(t, err)

	claims, err := svc.ParseSessionToken("clearly-not-a-jwt-token-format")
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestNewJWTService_RequiresSecret(t *testing.T) {
	svc, err := NewJWTService(newTestTokenConfig(""))
	assert.Error(t, err)
	assert.Nil(t, svc)
}
