package container

import (
	"context"
	"fmt"
	"time"

	"github.com/awomotoyosi/blogs-api/internal/config"
	blogHandler "github.com/awomotoyosi/blogs-api/internal/domains/blog/handler"
	blogRepository "github.com/awomotoyosi/blogs-api/internal/domains/blog/repository"
	blogService "github.com/awomotoyosi/blogs-api/internal/domains/blog/service"
	"github.com/awomotoyosi/blogs-api/internal/domains/user"
	userHandler "github.com/awomotoyosi/blogs-api/internal/domains/user/handler"
	userRepository "github.com/awomotoyosi/blogs-api/internal/domains/user/repository"
	userService "github.com/awomotoyosi/blogs-api/internal/domains/user/service"
	"github.com/awomotoyosi/blogs-api/internal/infrastructure/database"
	"github.com/awomotoyosi/blogs-api/pkg/jwt"
	"github.com/awomotoyosi/blogs-api/pkg/logger"
)

// Container is the composition root. Everything the HTTP layer needs is
// built here, in dependency order, exactly once.
type Container struct {
	Config *config.Config
	DB     *database.PostgresDB

	JWTManager *jwt.Manager

	UserRepository user.Repository
	UserService    user.Service
	UserHandler    *userHandler.UserHandler

	BlogRepository blogRepository.RepositoryInterface
	BlogService    blogService.ServiceInterface
	BlogHandler    *blogHandler.BlogHandler
}

// NewContainer builds the full dependency graph. Any failure aborts startup.
func NewContainer() (*Container, error) {
	c := &Container{}

	// ========================================
	// 1. CONFIGURATION
	// ========================================
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg

	logger.Init(cfg.App.Environment)

	// ========================================
	// 2. DATABASE
	// ========================================
	dbCfg, err := config.LoadDatabaseConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load database config: %w", err)
	}
	db := database.NewPostgresDB(dbCfg)

	connectCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := db.Connect(connectCtx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	c.DB = db

	if err := db.Migrate(connectCtx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	// ========================================
	// 3. SHARED SERVICES
	// ========================================
	c.JWTManager = jwt.NewManager(cfg.JWT.Secret, time.Duration(cfg.JWT.ExpiryHours)*time.Hour)

	// ========================================
	// 4. DOMAINS
	// ========================================
	c.UserRepository = userRepository.NewPostgresRepository(db.Pool)
	c.UserService = userService.NewUserService(c.UserRepository, c.JWTManager)
	c.UserHandler = userHandler.NewUserHandler(c.UserService)

	c.BlogRepository = blogRepository.NewPostgresRepository(db.Pool)
	// The user repository doubles as the author directory for name filters.
	c.BlogService = blogService.NewBlogService(c.BlogRepository, c.UserRepository)
	c.BlogHandler = blogHandler.NewBlogHandler(c.BlogService)

	logger.Info("container initialized", map[string]interface{}{
		"environment": cfg.App.Environment,
	})

	return c, nil
}

// Cleanup releases held resources. Safe to call more than once.
func (c *Container) Cleanup() {
	if c.DB != nil {
		c.DB.Close()
	}
}
