package auth

import (
	"testing"
	"time"

	"promopush/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testAccessSecret = "test_access_secret_key_very_long_for_testing"

func newTestJWTService(t *testing.T) *jwtService {
	t.Helper()

	cfg := &config.Config{}
	cfg.SecretKey.Access = testAccessSecret

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	return svc.(*jwtService)
}

func TestJWTService_GenerateAndValidate(t *testing.T) {
	svc := newTestJWTService(t)

	token, err := svc.GenerateAccessToken("a@x.com", []string{"admin"})
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", claims.Subject)
	assert.Equal(t, []string{"admin"}, claims.Roles)
}

func TestJWTService_MissingSecret(t *testing.T) {
	_, err := NewJWTService(&config.Config{})
	assert.Error(t, err)
}

func TestJWTService_EmptySubject(t *testing.T) {
	_, err := newTestJWTService(t).GenerateAccessToken("", nil)
	assert.Error(t, err)
}

func TestJWTService_InvalidToken(t *testing.T) {
	claims, err := newTestJWTService(t).ValidateToken("clearly-not-a-jwt-token-format")

	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_RejectsForeignTokens(t *testing.T) {
	svc := newTestJWTService(t)

	sign := func(claims jwt.Claims, secret string) string {
		signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
		require.NoError(t, err)

		return signed
	}

	future := jwt.NewNumericDate(time.Now().Add(time.Hour))
	past := jwt.NewNumericDate(time.Now().Add(-time.Hour))

	tests := []struct {
		name  string
		token string
	}{
		{
			name:  "wrong secret",
			token: sign(accessClaims{Type: "access", RegisteredClaims: jwt.RegisteredClaims{Subject: "a@x.com", ExpiresAt: future}}, "other-secret"),
		},
		{
			name:  "expired",
			token: sign(accessClaims{Type: "access", RegisteredClaims: jwt.RegisteredClaims{Subject: "a@x.com", ExpiresAt: past}}, testAccessSecret),
		},
		{
			name:  "no expiry",
			token: sign(accessClaims{Type: "access", RegisteredClaims: jwt.RegisteredClaims{Subject: "a@x.com"}}, testAccessSecret),
		},
		{
			name:  "refresh token",
			token: sign(accessClaims{Type: "refresh", RegisteredClaims: jwt.RegisteredClaims{Subject: "a@x.com", ExpiresAt: future}}, testAccessSecret),
		},
		{
			name:  "no subject",
			token: sign(accessClaims{Type: "access", RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: future}}, testAccessSecret),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := svc.ValidateToken(tt.token)
			assert.Error(t, err)
			assert.Nil(t, claims)
		})
	}
}
