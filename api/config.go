package api

import "time"

type ServerConfig struct {
	Auth  AuthConfig
	S3    S3Config
	DB    DBConfig
	Cache CacheConfig
}

// AuthConfig 設定如何驗證外部驗證服務簽發的 access token。
// JWTSecret 有設定時使用共用密鑰驗證，否則透過 OIDC discovery 取得金鑰。
type AuthConfig struct {
	JWTSecret     string
	Issuer        string
	Audience      string
	OIDCIssuerURL string
	OIDCClientID  string
	// Admins 是允許進入管理介面的 subject 或 email，空的代表所有通過驗證的使用者
	Admins []string
}

type S3Config struct {
	AccessKeyID      string
	SecretAccessKey  string
	Endpoint         string
	Region           string
	Bucket           string
	PublicBaseURL    string
	KeyPrefix        string
	MaxUploadBytes   int64
	RateLimitPerHour int64
}

type DBConfig struct {
	Driver     string
	User       string
	Password   string
	Host       string
	Port       int
	Database   string
	Schema     string
	SQLitePath string
}

type CacheConfig struct {
	CatalogTTL     time.Duration
	EditSessionTTL time.Duration
}
