package auth_test

import (
	"context"
	"crypto"
	"crypto/rand"
	"crypto/rsa"
	"testing"
	"time"

	"github.com/coreos/go-oidc/v3/oidc"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"folio/adapters/auth"
)

func TestOIDCVerifier_Verify(t *testing.T) {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	otherKey, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	const issuer = "https://auth.example.com"
	const clientID = "folio"
	verifier := auth.NewOIDCVerifierWithKeySet(issuer, clientID, &oidc.StaticKeySet{PublicKeys: []crypto.PublicKey{key.Public()}})

	sign := func(signer *rsa.PrivateKey, audience string, expiresAt time.Time) string {
		token, err := jwt.NewWithClaims(jwt.SigningMethodRS256, auth.Claims{
			Email: "owner@example.com",
			RegisteredClaims: jwt.RegisteredClaims{
				Subject:   "user-1",
				Issuer:    issuer,
				Audience:  []string{audience},
				ExpiresAt: jwt.NewNumericDate(expiresAt),
				IssuedAt:  jwt.NewNumericDate(time.Now()),
			},
		}).SignedString(signer)
		require.NoError(t, err)
		return token
	}

	tests := []struct {
		name    string
		token   string
		wantErr bool
	}{
		{name: "valid token", token: sign(key, clientID, time.Now().Add(time.Hour))},
		{name: "unknown key", token: sign(otherKey, clientID, time.Now().Add(time.Hour)), wantErr: true},
		{name: "wrong audience", token: sign(key, "another-client", time.Now().Add(time.Hour)), wantErr: true},
		{name: "expired", token: sign(key, clientID, time.Now().Add(-time.Hour)), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			identity, err := verifier.Verify(context.Background(), tt.token)
			if tt.wantErr {
				assert.ErrorIs(t, err, auth.ErrInvalidToken)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, &auth.Identity{Subject: "user-1", Email: "owner@example.com"}, identity)
		})
	}
}
