package jwttoken

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	svc := NewService("test-signing-key", "spc-gateway", "spc-gateway-clients")

	token, err := svc.GenerateAccessToken("client-1", "context:read", time.Minute)
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "client-1", claims.ClientID)
	assert.Equal(t, "context:read", claims.Scope)
}

func TestValidateTokenRejectsExpired(t *testing.T) {
	svc := NewService("test-signing-key", "spc-gateway", "spc-gateway-clients")

	token, err := svc.GenerateAccessToken("client-1", "context:read", -time.Minute)
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.ErrorContains(t, err, "expired")
}

func TestValidateTokenRejectsWrongKey(t *testing.T) {
	issuer := NewService("key-a", "spc-gateway", "spc-gateway-clients")
	verifier := NewService("key-b", "spc-gateway", "spc-gateway-clients")

	token, err := issuer.GenerateAccessToken("client-1", "context:read", time.Minute)
	require.NoError(t, err)

	_, err = verifier.ValidateToken(token)
	assert.Error(t, err)
}
