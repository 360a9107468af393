package auth

import (
	"context"
	"fmt"

	"github.com/coreos/go-oidc/v3/oidc"
)

// OIDCVerifier 透過驗證服務公開的 OIDC 金鑰驗證 ID token
type OIDCVerifier struct {
	verifier *oidc.IDTokenVerifier
}

// NewOIDCVerifier 透過 issuer 的 discovery 文件取得金鑰
func NewOIDCVerifier(ctx context.Context, issuerURL, clientID string) (*OIDCVerifier, error) {
	const op = "NewOIDCVerifier"
	provider, err := oidc.NewProvider(ctx, issuerURL)
	if err != nil {
		return nil, fmt.Errorf("[%s] Fail to create provider, err=%w", op, err)
	}
	return &OIDCVerifier{verifier: provider.Verifier(&oidc.Config{ClientID: clientID})}, nil
}

// NewOIDCVerifierWithKeySet 使用指定的金鑰驗證，不需要 discovery
func NewOIDCVerifierWithKeySet(issuerURL, clientID string, keySet oidc.KeySet) *OIDCVerifier {
	return &OIDCVerifier{verifier: oidc.NewVerifier(issuerURL, keySet, &oidc.Config{ClientID: clientID})}
}

func (v *OIDCVerifier) Verify(ctx context.Context, rawToken string) (*Identity, error) {
	const op = "OIDCVerifier.Verify"
	idToken, err := v.verifier.Verify(ctx, rawToken)
	if err != nil {
		return nil, fmt.Errorf("[%s] %w, err=%w", op, ErrInvalidToken, err)
	}
	var claims struct {
		Email string `json:"email"`
	}
	if err := idToken.Claims(&claims); err != nil {
		return nil, fmt.Errorf("[%s] Fail to parse ID token claims, err=%w", op, err)
	}
	return &Identity{Subject: idToken.Subject, Email: claims.Email}, nil
}
