package di

import (
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"user-rest-service/cmd/api/infrastructure"
	"user-rest-service/internal/adapter/cache"
	"user-rest-service/internal/adapter/db/postgres"
	ginhandler "user-rest-service/internal/adapter/gin/handler"
	"user-rest-service/internal/adapter/repository/cached"
	"user-rest-service/internal/config"
	"user-rest-service/internal/usecase/user"
	redisclient "user-rest-service/pkg/redis"
)

// Container holds all application dependencies, constructed once at
// startup and injected explicitly; nothing here is package-global.
type Container struct {
	Config      *config.Config
	Logger      *zap.Logger
	DB          *gorm.DB
	RedisClient *redisclient.Client
	UserUC      user.Usecase
	UserHandler *ginhandler.UserHandler
}

// NewContainer creates and wires all application dependencies.
func NewContainer(cfg *config.Config, l *zap.Logger) (*Container, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	db, err := infrastructure.NewDatabase(cfg, l)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	var repo user.Repository = postgres.NewUserRepo(db, l)

	// Redis is optional; without it the usecase talks to the database
	// directly and CRUD semantics are unchanged.
	var rdb *redisclient.Client
	if cfg.Redis.Enabled {
		rdb, err = infrastructure.NewRedisClient(cfg, l)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize Redis: %w", err)
		}

		userCache := cache.NewRedisUserCache(
			rdb.Client,
			time.Duration(cfg.Redis.CacheTTL)*time.Second,
			l,
		)
		repo = cached.NewUserRepository(repo, userCache, l)
	}

	userUC := user.New(repo, l)
	userHandler := ginhandler.NewUserHandler(userUC, l)

	return &Container{
		Config:      cfg,
		Logger:      l,
		DB:          db,
		RedisClient: rdb,
		UserUC:      userUC,
		UserHandler: userHandler,
	}, nil
}

// Close closes all resources held by the container.
func (c *Container) Close() error {
	var errs []error

	if c.RedisClient != nil {
		if err := c.RedisClient.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close Redis: %w", err))
		}
	}

	if c.DB != nil {
		if err := infrastructure.CloseDatabase(c.DB); err != nil {
			errs = append(errs, fmt.Errorf("failed to close database: %w", err))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("container close errors: %v", errs)
	}

	return nil
}
