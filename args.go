package main

import (
	"errors"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"folio/api"
)

func ParseArgs() Args {
	// server config
	pflag.String("server-url", "0.0.0.0:8080", "")

	// auth config
	pflag.String("jwt-secret", "", "shared secret of HS256 access tokens, OIDC is used when empty")
	pflag.String("jwt-issuer", "", "")
	pflag.String("jwt-audience", "", "")
	pflag.String("oidc-issuer-url", "", "")
	pflag.String("oidc-client-id", "", "")
	pflag.StringSlice("admins", nil, "subjects or emails allowed to use the admin api")

	// s3 config
	pflag.String("s3-endpoint", "", "")
	pflag.String("s3-region", "auto", "")
	pflag.String("s3-bucket", "", "")
	pflag.String("s3-public-base-url", "", "")
	pflag.String("s3-access-key-id", "", "")
	pflag.String("s3-secret-access-key", "", "")
	pflag.String("s3-key-prefix", "images/", "")
	pflag.Int64("upload-max-bytes", 5<<20, "")
	pflag.Int64("upload-rate-limit", 60, "max uploads per admin per hour, 0 to disable")

	// db config
	pflag.String("db-driver", "postgres", "postgres or sqlite")
	pflag.String("db-user", "", "")
	pflag.String("db-password", "", "")
	pflag.String("db-host", "", "")
	pflag.Int("db-port", 5432, "")
	pflag.String("db-database", "", "")
	pflag.String("db-schema", "", "")
	pflag.String("db-sqlite-path", "folio.db", "")

	// cache config
	pflag.Duration("catalog-cache-ttl", time.Minute, "")
	pflag.Duration("edit-session-ttl", 30*time.Minute, "")

	// bind pflag to viper
	pflag.Parse()
	viper.BindPFlags(pflag.CommandLine)
	viper.AutomaticEnv()
	viper.SetEnvPrefix("FOLIO")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	// initial arguments
	return Args{
		ServerURL: viper.GetString("server-url"),
		ServerConfig: api.ServerConfig{
			Auth: api.AuthConfig{
				JWTSecret:     viper.GetString("jwt-secret"),
				Issuer:        viper.GetString("jwt-issuer"),
				Audience:      viper.GetString("jwt-audience"),
				OIDCIssuerURL: viper.GetString("oidc-issuer-url"),
				OIDCClientID:  viper.GetString("oidc-client-id"),
				Admins:        viper.GetStringSlice("admins"),
			},
			S3: api.S3Config{
				Endpoint:         viper.GetString("s3-endpoint"),
				Region:           viper.GetString("s3-region"),
				Bucket:           viper.GetString("s3-bucket"),
				PublicBaseURL:    viper.GetString("s3-public-base-url"),
				AccessKeyID:      viper.GetString("s3-access-key-id"),
				SecretAccessKey:  viper.GetString("s3-secret-access-key"),
				KeyPrefix:        viper.GetString("s3-key-prefix"),
				MaxUploadBytes:   viper.GetInt64("upload-max-bytes"),
				RateLimitPerHour: viper.GetInt64("upload-rate-limit"),
			},
			DB: api.DBConfig{
				Driver:     viper.GetString("db-driver"),
				User:       viper.GetString("db-user"),
				Password:   viper.GetString("db-password"),
				Host:       viper.GetString("db-host"),
				Port:       viper.GetInt("db-port"),
				Database:   viper.GetString("db-database"),
				Schema:     viper.GetString("db-schema"),
				SQLitePath: viper.GetString("db-sqlite-path"),
			},
			Cache: api.CacheConfig{
				CatalogTTL:     viper.GetDuration("catalog-cache-ttl"),
				EditSessionTTL: viper.GetDuration("edit-session-ttl"),
			},
		},
	}
}

type Args struct {
	ServerURL    string
	ServerConfig api.ServerConfig
}

func (args Args) Validate() error {
	config := args.ServerConfig
	var errs []error
	if args.ServerURL == "" {
		errs = append(errs, errors.New("server-url is required"))
	}
	if config.Auth.JWTSecret == "" && (config.Auth.OIDCIssuerURL == "" || config.Auth.OIDCClientID == "") {
		errs = append(errs, errors.New("either jwt-secret or oidc-issuer-url with oidc-client-id is required"))
	}
	if config.S3.Bucket == "" || config.S3.PublicBaseURL == "" {
		errs = append(errs, errors.New("s3-bucket and s3-public-base-url are required"))
	}
	switch config.DB.Driver {
	case "postgres":
		if config.DB.Host == "" || config.DB.Database == "" {
			errs = append(errs, errors.New("db-host and db-database are required for postgres"))
		}
	case "sqlite":
		if config.DB.SQLitePath == "" {
			errs = append(errs, errors.New("db-sqlite-path is required for sqlite"))
		}
	default:
		errs = append(errs, errors.New("db-driver must be postgres or sqlite"))
	}
	return errors.Join(errs...)
}
