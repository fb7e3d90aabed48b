package oidc

import (
	"context"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func TestInsecureVerifierReadsClaims(t *testing.T) {
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "alice", "email": "a@example.edu"}).
		SignedString([]byte("whatever"))
	require.NoError(t, err)

	tok, err := NewInsecureVerifier().Verify(context.Background(), raw)
	require.NoError(t, err)
	var claims map[string]interface{}
	require.NoError(t, tok.Claims(&claims))
	require.Equal(t, "alice", claims["sub"])
}

func TestInsecureVerifierRejectsGarbage(t *testing.T) {
	_, err := NewInsecureVerifier().Verify(context.Background(), "not.a.jwt")
	require.Error(t, err)
	_, err = NewInsecureVerifier().Verify(context.Background(), "nodots")
	require.Error(t, err)
}

func TestSelect(t *testing.T) {
	v, err := Select(context.Background(), "", "", false)
	require.NoError(t, err)
	require.Nil(t, v)

	v, err = Select(context.Background(), "", "", true)
	require.NoError(t, err)
	require.IsType(t, &InsecureVerifier{}, v)
}
