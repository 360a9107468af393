package auth

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const DefaultIdentityKeyForContext = "folio-admin-identity"

// MiddlewareOptions 包含所有 auth middleware 的設定選項
type MiddlewareOptions struct {
	tokenKeyForCookie     string   // access token 在 cookie 中的 key
	identityKeyForContext string   // identity 在 context 中的 key
	admins                []string // 允許進入管理介面的 subject 或 email，空的代表不限制
	requiredKey           string   // 只有 context 中有這個 key 的請求才需要驗證，空的代表全部都要驗證
	logger                *slog.Logger
}

// MiddlewareOption 定義設定選項的函數類型
type MiddlewareOption func(*MiddlewareOptions)

// WithTokenKeyForCookie 設定 access token 在 cookie 中的 key
func WithTokenKeyForCookie(key string) MiddlewareOption {
	return func(options *MiddlewareOptions) {
		options.tokenKeyForCookie = key
	}
}

// WithIdentityKeyForContext 設定 identity 在 context 中的 key
func WithIdentityKeyForContext(key string) MiddlewareOption {
	return func(options *MiddlewareOptions) {
		options.identityKeyForContext = key
	}
}

// WithAdmins 設定允許進入管理介面的使用者
func WithAdmins(admins ...string) MiddlewareOption {
	return func(options *MiddlewareOptions) {
		options.admins = admins
	}
}

// WithRequiredKey 設定只驗證 context 中帶有 key 的請求，
// 用於由 OpenAPI security 標記哪些路由需要驗證
func WithRequiredKey(key string) MiddlewareOption {
	return func(options *MiddlewareOptions) {
		options.requiredKey = key
	}
}

func WithLogger(logger *slog.Logger) MiddlewareOption {
	return func(options *MiddlewareOptions) {
		options.logger = logger
	}
}

// GinMiddleware 建立一個驗證管理者身份的 gin middleware。
// 驗證通過時不會呼叫 c.Next，所以也可以作為 oapi-codegen 產生的路由 middleware 使用
func GinMiddleware(verifier IVerifier, opts ...MiddlewareOption) gin.HandlerFunc {
	options := MiddlewareOptions{
		tokenKeyForCookie:     "access_token",
		identityKeyForContext: DefaultIdentityKeyForContext,
		logger:                slog.Default(),
	}
	for _, opt := range opts {
		opt(&options)
	}

	return func(c *gin.Context) {
		const op = "auth.GinMiddleware"
		if options.requiredKey != "" {
			if _, required := c.Get(options.requiredKey); !required {
				return
			}
		}
		rawToken, err := extractToken(c, options.tokenKeyForCookie)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": err.Error()})
			return
		}
		identity, err := verifier.Verify(c.Request.Context(), rawToken)
		if err != nil {
			options.logger.Warn("Fail to verify access token", slog.String("op", op), slog.Any("error", err))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": ErrInvalidToken.Error()})
			return
		}
		if !isAdmin(identity, options.admins) {
			options.logger.Warn("Reject non-admin identity", slog.String("op", op), slog.String("subject", identity.Subject))
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "permission denied"})
			return
		}
		c.Set(options.identityKeyForContext, identity)
	}
}

// GetIdentity 從 context 中取得已驗證的 identity
func GetIdentity(c *gin.Context, opts ...MiddlewareOption) (*Identity, bool) {
	options := MiddlewareOptions{
		identityKeyForContext: DefaultIdentityKeyForContext,
	}
	for _, opt := range opts {
		opt(&options)
	}
	v, ok := c.Get(options.identityKeyForContext)
	if !ok {
		return nil, false
	}
	identity, ok := v.(*Identity)
	return identity, ok
}

// IdentityFromContext 從 context 中取得已驗證的 identity，
// ctx 必須是 *gin.Context 或是以它為來源的 context
func IdentityFromContext(ctx context.Context) (*Identity, bool) {
	identity, ok := ctx.Value(DefaultIdentityKeyForContext).(*Identity)
	return identity, ok && identity != nil
}

func extractToken(c *gin.Context, cookieKey string) (string, error) {
	if header := c.GetHeader("Authorization"); header != "" {
		scheme, token, found := strings.Cut(header, " ")
		if !found || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
			return "", errors.New("malformed authorization header")
		}
		return strings.TrimSpace(token), nil
	}
	if token, err := c.Cookie(cookieKey); err == nil && token != "" {
		return token, nil
	}
	return "", ErrMissingToken
}

func isAdmin(identity *Identity, admins []string) bool {
	if len(admins) == 0 {
		return true
	}
	for _, admin := range admins {
		if admin == identity.Subject || (identity.Email != "" && strings.EqualFold(admin, identity.Email)) {
			return true
		}
	}
	return false
}
