package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"folio/api"
)

func validArgs() Args {
	return Args{
		ServerURL: "0.0.0.0:8080",
		ServerConfig: api.ServerConfig{
			Auth: api.AuthConfig{JWTSecret: "secret"},
			S3:   api.S3Config{Bucket: "folio", PublicBaseURL: "https://cdn.example.com"},
			DB:   api.DBConfig{Driver: "postgres", Host: "localhost", Database: "folio"},
		},
	}
}

func TestArgs_Validate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(args *Args)
		wantErr string
	}{
		{
			name:   "完整設定",
			modify: func(args *Args) {},
		},
		{
			name: "使用 OIDC",
			modify: func(args *Args) {
				args.ServerConfig.Auth = api.AuthConfig{OIDCIssuerURL: "https://auth.example.com", OIDCClientID: "folio"}
			},
		},
		{
			name: "缺少驗證設定",
			modify: func(args *Args) {
				args.ServerConfig.Auth = api.AuthConfig{OIDCIssuerURL: "https://auth.example.com"}
			},
			wantErr: "either jwt-secret or oidc-issuer-url with oidc-client-id is required",
		},
		{
			name: "sqlite 不需要資料庫主機",
			modify: func(args *Args) {
				args.ServerConfig.DB = api.DBConfig{Driver: "sqlite", SQLitePath: "folio.db"}
			},
		},
		{
			name: "不支援的資料庫",
			modify: func(args *Args) {
				args.ServerConfig.DB.Driver = "mysql"
			},
			wantErr: "db-driver must be postgres or sqlite",
		},
		{
			name: "缺少 bucket",
			modify: func(args *Args) {
				args.ServerConfig.S3.Bucket = ""
			},
			wantErr: "s3-bucket and s3-public-base-url are required",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := validArgs()
			tt.modify(&args)
			err := args.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}
