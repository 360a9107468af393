package auth

import (
	"context"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// Claims 是以共用密鑰(HS256)簽發的 access token 內容
type Claims struct {
	Email string `json:"email"`
	Role  string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// SecretVerifier 以共用密鑰驗證 access token
type SecretVerifier struct {
	secret   []byte
	issuer   string
	audience string
}

func NewSecretVerifier(secret, issuer, audience string) *SecretVerifier {
	return &SecretVerifier{secret: []byte(secret), issuer: issuer, audience: audience}
}

func (v *SecretVerifier) Verify(ctx context.Context, rawToken string) (*Identity, error) {
	const op = "SecretVerifier.Verify"
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if v.issuer != "" {
		opts = append(opts, jwt.WithIssuer(v.issuer))
	}
	if v.audience != "" {
		opts = append(opts, jwt.WithAudience(v.audience))
	}
	token, err := jwt.ParseWithClaims(rawToken, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return v.secret, nil
	}, opts...)
	if err != nil {
		return nil, fmt.Errorf("[%s] %w, err=%w", op, ErrInvalidToken, err)
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("[%s] %w, token claims are invalid", op, ErrInvalidToken)
	}
	if claims.Subject == "" {
		return nil, fmt.Errorf("[%s] %w, missing subject", op, ErrInvalidToken)
	}
	return &Identity{Subject: claims.Subject, Email: claims.Email}, nil
}
