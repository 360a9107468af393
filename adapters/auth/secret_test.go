package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"folio/adapters/auth"
)

const testSecret = "super-secret-jwt-token-with-at-least-32-characters"

func signHS256(t *testing.T, secret string, claims auth.Claims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func validClaims() auth.Claims {
	return auth.Claims{
		Email: "owner@example.com",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user-1",
			Issuer:    "https://auth.example.com",
			Audience:  []string{"authenticated"},
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
}

func TestSecretVerifier_Verify(t *testing.T) {
	tests := []struct {
		name    string
		token   func(t *testing.T) string
		wantErr bool
	}{
		{
			name: "valid token",
			token: func(t *testing.T) string {
				return signHS256(t, testSecret, validClaims())
			},
		},
		{
			name: "expired token",
			token: func(t *testing.T) string {
				claims := validClaims()
				claims.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Minute))
				return signHS256(t, testSecret, claims)
			},
			wantErr: true,
		},
		{
			name: "missing expiration",
			token: func(t *testing.T) string {
				claims := validClaims()
				claims.ExpiresAt = nil
				return signHS256(t, testSecret, claims)
			},
			wantErr: true,
		},
		{
			name: "wrong secret",
			token: func(t *testing.T) string {
				return signHS256(t, "another-secret-another-secret-another", validClaims())
			},
			wantErr: true,
		},
		{
			name: "wrong issuer",
			token: func(t *testing.T) string {
				claims := validClaims()
				claims.Issuer = "https://evil.example.com"
				return signHS256(t, testSecret, claims)
			},
			wantErr: true,
		},
		{
			name: "wrong audience",
			token: func(t *testing.T) string {
				claims := validClaims()
				claims.Audience = []string{"anon"}
				return signHS256(t, testSecret, claims)
			},
			wantErr: true,
		},
		{
			name: "missing subject",
			token: func(t *testing.T) string {
				claims := validClaims()
				claims.Subject = ""
				return signHS256(t, testSecret, claims)
			},
			wantErr: true,
		},
		{
			name: "unsigned token",
			token: func(t *testing.T) string {
				token, err := jwt.NewWithClaims(jwt.SigningMethodNone, validClaims()).SignedString(jwt.UnsafeAllowNoneSignatureType)
				require.NoError(t, err)
				return token
			},
			wantErr: true,
		},
		{
			name: "garbage",
			token: func(t *testing.T) string {
				return "not-a-jwt"
			},
			wantErr: true,
		},
	}

	verifier := auth.NewSecretVerifier(testSecret, "https://auth.example.com", "authenticated")
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			identity, err := verifier.Verify(context.Background(), tt.token(t))
			if tt.wantErr {
				assert.ErrorIs(t, err, auth.ErrInvalidToken)
				assert.Nil(t, identity)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, &auth.Identity{Subject: "user-1", Email: "owner@example.com"}, identity)
		})
	}
}

func TestSecretVerifier_NoIssuerOrAudience(t *testing.T) {
	verifier := auth.NewSecretVerifier(testSecret, "", "")
	claims := validClaims()
	claims.Issuer = ""
	claims.Audience = nil
	identity, err := verifier.Verify(context.Background(), signHS256(t, testSecret, claims))
	require.NoError(t, err)
	assert.Equal(t, "user-1", identity.Subject)
}
