package api

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	awsCfg "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"
	"github.com/patrickmn/go-cache"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"

	"folio/adapters/auth"
	internalS3 "folio/adapters/s3"
	"folio/adapters/session"
	"folio/api/openapi"
	"folio/imageset"
	"folio/models"
)

var _ openapi.StrictServerInterface = (*ServerImpl)(nil)

const (
	defaultMaxUploadBytes = 5 << 20
	catalogCacheKey       = "projects"
)

// editState 是一個編輯 session 持有的資料
type editState struct {
	ProjectID uuid.UUID
	Images    *imageset.Set
}

type ServerImpl struct {
	db           *gorm.DB
	uploader     imageset.Uploader
	verifier     auth.IVerifier
	htmlChecker  *bluemonday.Policy
	catalogCache *cache.Cache
	editSessions session.IStore[*editState]

	// catalogGen 在每次清除快取時遞增，讀取期間有變動的列表不會寫入快取
	catalogMu  sync.Mutex
	catalogGen atomic.Uint64

	// uploadLocks 讓同一位管理者的上傳依序進行
	uploadLocks sync.Map

	config ServerConfig
}

func NewServer(config ServerConfig) (*ServerImpl, error) {
	const op = "NewServer"

	// 初始化 access token 驗證
	verifier, err := newVerifier(config.Auth)
	if err != nil {
		return nil, fmt.Errorf("[%s] Fail to initial token verifier, err=%w", op, err)
	}

	// 初始化S3客戶端
	region := config.S3.Region
	if region == "" {
		region = "auto"
	}
	s3Cfg, err := awsCfg.LoadDefaultConfig(
		context.Background(),
		awsCfg.WithBaseEndpoint(config.S3.Endpoint),
		awsCfg.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(config.S3.AccessKeyID, config.S3.SecretAccessKey, "")),
		awsCfg.WithRegion(region),
	)
	if err != nil {
		return nil, fmt.Errorf("[%s] Fail to load AWS config, err=%w", op, err)
	}
	s3Operator, err := internalS3.NewS3Operator(s3.NewFromConfig(s3Cfg), config.S3.Bucket, config.S3.PublicBaseURL)
	if err != nil {
		return nil, fmt.Errorf("[%s] Fail to create S3 operator, err=%w", op, err)
	}

	// 初始化資料庫連線
	db, err := openDatabase(config.DB)
	if err != nil {
		return nil, fmt.Errorf("[%s] Fail to connect to database, err=%w", op, err)
	}
	if err := models.AutoMigrate(db); err != nil {
		return nil, fmt.Errorf("[%s] Fail to migrate database, err=%w", op, err)
	}

	return newServerImpl(db, internalS3.NewImageUploader(s3Operator, config.S3.KeyPrefix), verifier, config), nil
}

func newServerImpl(db *gorm.DB, uploader imageset.Uploader, verifier auth.IVerifier, config ServerConfig) *ServerImpl {
	if config.S3.MaxUploadBytes <= 0 {
		config.S3.MaxUploadBytes = defaultMaxUploadBytes
	}
	if config.Cache.CatalogTTL <= 0 {
		config.Cache.CatalogTTL = time.Minute
	}
	if config.Cache.EditSessionTTL <= 0 {
		config.Cache.EditSessionTTL = 30 * time.Minute
	}
	return &ServerImpl{
		db:           db,
		uploader:     uploader,
		verifier:     verifier,
		htmlChecker:  bluemonday.UGCPolicy(),
		// 列表只有一個 key，過期的項目在讀取時就會被忽略，不需要 janitor
		catalogCache: cache.New(config.Cache.CatalogTTL, 0),
		editSessions: session.NewStore[*editState](session.WithTTL(config.Cache.EditSessionTTL)),
		config:       config,
	}
}

func newVerifier(config AuthConfig) (auth.IVerifier, error) {
	const op = "newVerifier"
	if config.JWTSecret != "" {
		return auth.NewSecretVerifier(config.JWTSecret, config.Issuer, config.Audience), nil
	}
	if config.OIDCIssuerURL == "" {
		return nil, fmt.Errorf("[%s] Either JWT secret or OIDC issuer URL is required", op)
	}
	verifier, err := auth.NewOIDCVerifier(context.Background(), config.OIDCIssuerURL, config.OIDCClientID)
	if err != nil {
		return nil, fmt.Errorf("[%s] err=%w", op, err)
	}
	return verifier, nil
}

func openDatabase(config DBConfig) (*gorm.DB, error) {
	const op = "openDatabase"
	var dialector gorm.Dialector
	gormConfig := &gorm.Config{TranslateError: true}
	switch config.Driver {
	case "", "postgres":
		dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable", config.User, config.Password, config.Host, config.Port, config.Database)
		if config.Schema != "" {
			dsn += "&search_path=" + config.Schema
			gormConfig.NamingStrategy = schema.NamingStrategy{
				TablePrefix: config.Schema + ".",
			}
		}
		dialector = postgres.Open(dsn)
	case "sqlite":
		dialector = sqlite.Open(config.SQLitePath)
	default:
		return nil, fmt.Errorf("[%s] Unsupported database driver: %s", op, config.Driver)
	}
	db, err := gorm.Open(dialector, gormConfig)
	if err != nil {
		return nil, fmt.Errorf("[%s] err=%w", op, err)
	}
	return db, nil
}

// RegisterHandlers 註冊 openapi.yaml 中所有的路由，
// 標記為 bearerAuth 的路由需要管理者的 access token
func (impl *ServerImpl) RegisterHandlers(router gin.IRouter) {
	router.Use(handleErrors)
	router.GET("/api/openapi.json", getOpenAPI)

	adminAuth := auth.GinMiddleware(
		impl.verifier,
		auth.WithAdmins(impl.config.Auth.Admins...),
		auth.WithRequiredKey(openapi.BearerAuthScopes),
	)
	openapi.RegisterHandlersWithOptions(router, openapi.NewStrictHandler(impl, nil), openapi.GinServerOptions{
		Middlewares:  []openapi.MiddlewareFunc{openapi.MiddlewareFunc(adminAuth)},
		ErrorHandler: handleParamError,
	})
}

// Health check
// (GET /healthcheck)
func (impl *ServerImpl) GetHealthcheck(ctx context.Context, request openapi.GetHealthcheckRequestObject) (openapi.GetHealthcheckResponseObject, error) {
	return openapi.GetHealthcheck200TextResponse("OK"), nil
}

// Close 停止編輯 session 的清除工作並關閉資料庫連線
func (impl *ServerImpl) Close() {
	impl.editSessions.Close()
	sqlDB, err := impl.db.DB()
	if err != nil {
		slog.Error("Fail to get database handle", slog.Any("error", err))
		return
	}
	if err := sqlDB.Close(); err != nil {
		slog.Error("Fail to close database", slog.Any("error", err))
	}
}

// invalidateCatalog 清除公開作品列表的快取，所有會修改作品的操作都必須呼叫
func (impl *ServerImpl) invalidateCatalog() {
	impl.catalogMu.Lock()
	defer impl.catalogMu.Unlock()
	impl.catalogGen.Add(1)
	impl.catalogCache.Delete(catalogCacheKey)
}

// cacheCatalog 只有在讀取期間沒有任何修改時才寫入快取
func (impl *ServerImpl) cacheCatalog(generation uint64, projects []models.Project) {
	impl.catalogMu.Lock()
	defer impl.catalogMu.Unlock()
	if impl.catalogGen.Load() != generation {
		return
	}
	impl.catalogCache.Set(catalogCacheKey, projects, cache.DefaultExpiration)
}
