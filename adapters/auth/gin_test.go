package auth_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"folio/adapters/auth"
)

type stubVerifier map[string]*auth.Identity

func (s stubVerifier) Verify(ctx context.Context, rawToken string) (*auth.Identity, error) {
	identity, ok := s[rawToken]
	if !ok {
		return nil, errors.New("unknown token")
	}
	return identity, nil
}

func TestGinMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	verifier := stubVerifier{
		"owner-token":    {Subject: "owner", Email: "Owner@Example.com"},
		"stranger-token": {Subject: "stranger", Email: "stranger@example.com"},
	}

	tests := []struct {
		name       string
		admins     []string
		header     string
		cookie     string
		wantStatus int
		wantUser   string
	}{
		{name: "bearer header", admins: []string{"owner"}, header: "Bearer owner-token", wantStatus: http.StatusOK, wantUser: "owner"},
		{name: "lowercase scheme", header: "bearer owner-token", wantStatus: http.StatusOK, wantUser: "owner"},
		{name: "cookie", cookie: "owner-token", wantStatus: http.StatusOK, wantUser: "owner"},
		{name: "admin matched by email", admins: []string{"owner@example.com"}, header: "Bearer owner-token", wantStatus: http.StatusOK, wantUser: "owner"},
		{name: "missing token", wantStatus: http.StatusUnauthorized},
		{name: "malformed header", header: "Token owner-token", wantStatus: http.StatusUnauthorized},
		{name: "invalid token", header: "Bearer nope", wantStatus: http.StatusUnauthorized},
		{name: "not an admin", admins: []string{"owner"}, header: "Bearer stranger-token", wantStatus: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			router.Use(auth.GinMiddleware(verifier, auth.WithAdmins(tt.admins...)))
			router.GET("/admin", func(c *gin.Context) {
				identity, ok := auth.GetIdentity(c)
				if fromCtx, _ := auth.IdentityFromContext(c); fromCtx != identity {
					c.Status(http.StatusInternalServerError)
					return
				}
				if !ok {
					c.Status(http.StatusInternalServerError)
					return
				}
				c.String(http.StatusOK, identity.Subject)
			})

			req := httptest.NewRequest(http.MethodGet, "/admin", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: "access_token", Value: tt.cookie})
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantUser != "" {
				assert.Equal(t, tt.wantUser, w.Body.String())
			}
		})
	}
}

func TestGinMiddleware_RequiredKey(t *testing.T) {
	gin.SetMode(gin.TestMode)
	verifier := stubVerifier{"owner-token": {Subject: "owner"}}
	const scopesKey = "bearerAuth.Scopes"

	router := gin.New()
	middleware := auth.GinMiddleware(verifier, auth.WithRequiredKey(scopesKey))
	router.GET("/public", middleware, func(c *gin.Context) {
		_, ok := auth.IdentityFromContext(c)
		assert.False(t, ok)
		c.Status(http.StatusOK)
	})
	router.GET("/admin", func(c *gin.Context) {
		c.Set(scopesKey, []string{})
	}, middleware, func(c *gin.Context) {
		identity, ok := auth.IdentityFromContext(c)
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.String(http.StatusOK, identity.Subject)
	})

	tests := []struct {
		name       string
		path       string
		header     string
		wantStatus int
	}{
		{name: "public without token", path: "/public", wantStatus: http.StatusOK},
		{name: "admin without token", path: "/admin", wantStatus: http.StatusUnauthorized},
		{name: "admin with token", path: "/admin", header: "Bearer owner-token", wantStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)
			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}
