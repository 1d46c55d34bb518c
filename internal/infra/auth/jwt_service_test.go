package auth

import (
	"testing"
	"time"

	"tienda/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWTService(t *testing.T, secret string) *jwtService {
	cfg := &config.Config{}
	cfg.SecretKey.Access = secret
	cfg.Auth = &config.AuthConfig{AccessTokenTTL: time.Hour}

	service, err := NewJWTService(cfg)
	require.NoError(t, err)

	return service.(*jwtService)
}

func TestJWTService_RoundTrip(t *testing.T) {
	service := newTestJWTService(t, "test-secret")

	token, err := service.GenerateAccessToken(42, "customer")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := service.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.AccountID)
	assert.Equal(t, "customer", claims.Role)
}

func TestJWTService_RejectsWrongSecret(t *testing.T) {
	signer := newTestJWTService(t, "secret-a")
	verifier := newTestJWTService(t, "secret-b")

	token, err := signer.GenerateAccessToken(1, "admin")
	require.NoError(t, err)

	claims, err := verifier.ValidateToken(token)
	require.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_RejectsGarbage(t *testing.T) {
	service := newTestJWTService(t, "test-secret")

	claims, err := service.ValidateToken("not.a.token")
	require.Error(t, err)
	assert.Nil(t, claims)
}

func TestNewJWTService_RequiresSecret(t *testing.T) {
	cfg := &config.Config{}

	service, err := NewJWTService(cfg)
	require.Error(t, err)
	assert.Nil(t, service)
}
