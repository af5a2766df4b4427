package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"schoolsite/internal/cache/redis"
	"schoolsite/internal/config"
	"schoolsite/internal/dbs/postgres"
	"schoolsite/internal/models"
	counterrepo "schoolsite/internal/repositories/cache/counter"
	cachedocsrepo "schoolsite/internal/repositories/cache/docs"
	cachesessionrepo "schoolsite/internal/repositories/cache/session"
	documentrepo "schoolsite/internal/repositories/db/document"
	orderrepo "schoolsite/internal/repositories/db/order"
	productrepo "schoolsite/internal/repositories/db/product"
	reviewrepo "schoolsite/internal/repositories/db/review"
	schoolrepo "schoolsite/internal/repositories/db/school"
	teacherrepo "schoolsite/internal/repositories/db/teacher"
	userrepo "schoolsite/internal/repositories/db/user"
	filerepo "schoolsite/internal/repositories/storage/file"
	s3repo "schoolsite/internal/repositories/storage/s3"
	authservice "schoolsite/internal/services/auth"
	documentservice "schoolsite/internal/services/document"
	orderservice "schoolsite/internal/services/order"
	productservice "schoolsite/internal/services/product"
	ratelimitservice "schoolsite/internal/services/ratelimit"
	reviewservice "schoolsite/internal/services/review"
	schoolservice "schoolsite/internal/services/school"
	teacherservice "schoolsite/internal/services/teacher"
	userservice "schoolsite/internal/services/user"

	"github.com/jmoiron/sqlx"
)

// FileStorage is the union of what the media-handling services need
// from a storage driver. Both the local disk and the s3 repositories
// implement it.
type FileStorage interface {
	SaveFile(ctx context.Context, dir string, filename string, reader io.Reader) (string, error)
	LoadFile(ctx context.Context, path string) (io.ReadCloser, error)
	DeleteFile(ctx context.Context, path string) error
	FileExists(ctx context.Context, path string) (bool, error)
}

type App struct {
	DB *sqlx.DB

	AuthService      *authservice.AuthService
	UserService      *userservice.UserService
	TeacherService   *teacherservice.TeacherService
	ReviewService    *reviewservice.ReviewService
	SchoolService    *schoolservice.SchoolService
	DocumentService  *documentservice.DocumentService
	ProductService   *productservice.ProductService
	OrderService     *orderservice.OrderService
	RateLimitService *ratelimitservice.RateLimitService
}

func NewApp(
	ctx context.Context,
	log *slog.Logger,
	dbCfg config.DB,
	cacheCfg config.Cache,
	fileStorageCfg config.FileStorage,
	rateCfg config.RateLimits,
	adminToken string,
) (*App, error) {
	db, err := postgres.New(ctx, postgres.Config{
		Addr:     dbCfg.Addr,
		Port:     dbCfg.Port,
		User:     dbCfg.User,
		Password: dbCfg.Password,
		DB:       dbCfg.DB})
	if err != nil {
		log.Error("failed connect to db", "err", err)
		return nil, fmt.Errorf("failed connect to db: %w", err)
	}

	cache, err := redis.New(ctx, redis.Config{Addr: cacheCfg.Addr, Password: cacheCfg.Password, DB: cacheCfg.DB})
	if err != nil {
		log.Error("failed connect to cache", "err", err)
		return nil, fmt.Errorf("failed connect to cache: %w", err)
	}

	fileStorage, err := newFileStorage(ctx, fileStorageCfg)
	if err != nil {
		log.Error("failed to init file storage", "err", err)
		return nil, fmt.Errorf("failed to init file storage: %w", err)
	}

	userRepo := userrepo.NewRepository(db)

	sessionCacheRepo := cachesessionrepo.New(cache, cacheCfg.SessionTTL)

	documentCacheRepo := cachedocsrepo.New(cache, cacheCfg.DocumentsTTL)

	counterCacheRepo := counterrepo.New(cache)

	userService := userservice.New(log, userRepo, userRepo)

	authService := authservice.New(log, userService, userService, sessionCacheRepo, adminToken)

	teacherRepo := teacherrepo.NewRepository(db)

	teacherService := teacherservice.New(log, teacherRepo, fileStorage)

	reviewRepo := reviewrepo.NewRepository(db)

	reviewService := reviewservice.New(log, reviewRepo)

	schoolRepo := schoolrepo.NewRepository(db)

	schoolService := schoolservice.New(log, schoolRepo)

	docRepo := documentrepo.NewRepository(db)

	documentService := documentservice.New(log, docRepo, documentCacheRepo, fileStorage)

	productRepo := productrepo.NewRepository(db)

	productService := productservice.New(log, productRepo, fileStorage)

	orderRepo := orderrepo.NewRepository(db)

	orderService := orderservice.New(log, orderRepo, productService)

	rateLimitService := ratelimitservice.New(log, counterCacheRepo, map[string]models.RateBucket{
		models.RateBucketAnon:    {Limit: rateCfg.AnonLimit, Window: rateCfg.AnonWindow},
		models.RateBucketReviews: {Limit: rateCfg.ReviewsLimit, Window: rateCfg.ReviewsWindow},
		models.RateBucketOrders:  {Limit: rateCfg.OrdersLimit, Window: rateCfg.OrdersWindow},
	})

	return &App{
		DB:               db,
		AuthService:      authService,
		UserService:      userService,
		TeacherService:   teacherService,
		ReviewService:    reviewService,
		SchoolService:    schoolService,
		DocumentService:  documentService,
		ProductService:   productService,
		OrderService:     orderService,
		RateLimitService: rateLimitService,
	}, nil
}

func newFileStorage(ctx context.Context, cfg config.FileStorage) (FileStorage, error) {
	if cfg.Driver == "s3" {
		return s3repo.NewRepository(ctx, s3repo.Config{
			Endpoint:  cfg.S3.Endpoint,
			AccessKey: cfg.S3.AccessKey,
			SecretKey: cfg.S3.SecretKey,
			Bucket:    cfg.S3.Bucket,
			UseSSL:    cfg.S3.UseSSL,
		})
	}

	return filerepo.NewRepository(cfg.Path), nil
}
