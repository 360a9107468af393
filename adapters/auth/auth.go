package auth

import (
	"context"
	"errors"
)

var (
	ErrMissingToken = errors.New("missing access token")
	ErrInvalidToken = errors.New("invalid access token")
)

// Identity 是驗證服務簽發的 token 中代表使用者的資訊
type Identity struct {
	Subject string
	Email   string
}

// IVerifier 定義了驗證 access token 的操作介面。
// 登入流程與 token 的簽發都由外部的驗證服務負責，這裡只做驗證。
type IVerifier interface {
	Verify(ctx context.Context, rawToken string) (*Identity, error)
}
