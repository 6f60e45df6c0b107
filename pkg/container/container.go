package container

import (
	"context"
	"fmt"
	"time"

	"recipe-site-backend/internal/config"
	infraCache "recipe-site-backend/internal/infrastructure/cache"
	"recipe-site-backend/internal/infrastructure/cosmic"
	"recipe-site-backend/internal/infrastructure/database"
	"recipe-site-backend/internal/store"
	"recipe-site-backend/internal/store/memory"
	"recipe-site-backend/pkg/logger"

	commentHandler "recipe-site-backend/internal/domains/comment/handler"
	commentRepo "recipe-site-backend/internal/domains/comment/repository"
	commentService "recipe-site-backend/internal/domains/comment/service"
	contentHandler "recipe-site-backend/internal/domains/content/handler"
	contentRepo "recipe-site-backend/internal/domains/content/repository"
	contentService "recipe-site-backend/internal/domains/content/service"
	ratingHandler "recipe-site-backend/internal/domains/rating/handler"
	ratingModel "recipe-site-backend/internal/domains/rating/model"
	ratingRepo "recipe-site-backend/internal/domains/rating/repository"
	ratingService "recipe-site-backend/internal/domains/rating/service"
)

const connectTimeout = 30 * time.Second

// ========================================
// CONTAINER STRUCT
// ========================================

// Container holds every long-lived dependency of the API.
// Initialisation order: config, infrastructure, repositories, services, handlers.
type Container struct {
	// ========================================
	// INFRASTRUCTURE LAYER
	// ========================================
	Config *config.Config
	Store  store.Client         // content store backend selected by STORE_DRIVER
	DB     *database.PostgresDB // nil unless STORE_DRIVER=postgres
	Redis  *infraCache.RedisClient
	Locker infraCache.Locker

	// ========================================
	// REPOSITORY LAYER
	// ========================================
	RatingRepo  ratingRepo.RatingRepository
	CommentRepo commentRepo.CommentRepository
	ContentRepo contentRepo.ContentRepository

	// ========================================
	// SERVICE LAYER
	// ========================================
	RatingService  ratingService.ServiceInterface
	CommentService commentService.ServiceInterface
	ContentService contentService.ServiceInterface

	// ========================================
	// HANDLER LAYER
	// ========================================
	RatingHandler  *ratingHandler.RatingHandler
	CommentHandler *commentHandler.CommentHandler
	ContentHandler *contentHandler.ContentHandler
}

// ========================================
// CONSTRUCTOR: BUILD CONTAINER
// ========================================

// NewContainer builds the dependency graph from an already loaded config.
func NewContainer(cfg *config.Config) (*Container, error) {
	logger.Info("Initializing DI container", map[string]interface{}{
		"environment":  cfg.App.Environment,
		"store_driver": cfg.Store.Driver,
	})

	c := &Container{Config: cfg}

	// STEP 1: Content store
	if err := c.initStore(); err != nil {
		c.Cleanup()
		return nil, fmt.Errorf("failed to init content store: %w", err)
	}

	// STEP 2: Upsert lock
	c.initLocker()

	// STEP 3: Repositories
	c.initRepositories()

	// STEP 4: Services
	c.initServices()

	// STEP 5: Handlers
	c.initHandlers()

	logger.Info("DI container initialized", nil)
	return c, nil
}

// ========================================
// PRIVATE INITIALIZATION METHODS
// ========================================

func (c *Container) initStore() error {
	switch c.Config.Store.Driver {
	case config.DriverCosmic:
		cc := c.Config.Cosmic
		c.Store = cosmic.NewClient(&cosmic.Config{
			BucketSlug:     cc.BucketSlug,
			ReadKey:        cc.ReadKey,
			WriteKey:       cc.WriteKey,
			APIURL:         cc.APIURL,
			APIEnvironment: cc.APIEnvironment,
			Timeout:        cc.Timeout,
		}, nil)
		if cc.WriteKey == "" {
			logger.Warn("COSMIC_WRITE_KEY not set: rating and comment submissions will fail", nil)
		}
		return nil

	case config.DriverPostgres:
		db := database.NewPostgresDB(c.Config.Database)

		ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
		defer cancel()

		if err := db.Connect(ctx); err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		c.DB = db

		if err := db.EnsureSchema(ctx); err != nil {
			return fmt.Errorf("failed to ensure schema: %w", err)
		}
		c.Store = database.NewObjectStore(db.Pool)
		return nil

	case config.DriverMemory:
		c.Store = memory.New(memory.WithUniqueMetadata(
			store.TypeRecipeRating,
			ratingModel.MetaRecipe,
			ratingModel.MetaUserEmail,
		))
		logger.Warn("Using in-memory content store: data is lost on restart", nil)
		return nil
	}

	return fmt.Errorf("unknown store driver %q", c.Config.Store.Driver)
}

// initLocker connects Redis when configured. Redis is not critical: on
// failure the service runs without the rating upsert lock.
func (c *Container) initLocker() {
	c.Locker = infraCache.NoopLocker{}

	rc := c.Config.Redis
	if !rc.Enabled() {
		logger.Info("Redis not configured: rating upserts run without a lock", nil)
		return
	}

	redisClient := infraCache.NewRedisClient(rc.Host, rc.Password, rc.DB)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := redisClient.Connect(ctx); err != nil {
		logger.Warn("Redis connection failed (non-critical)", map[string]interface{}{
			"addr":  rc.Host,
			"error": err.Error(),
		})
		_ = redisClient.Close()
		return
	}

	c.Redis = redisClient
	c.Locker = redisClient.Locker(rc.LockTTL, rc.LockWait)
}

func (c *Container) initRepositories() {
	c.RatingRepo = ratingRepo.NewStoreRatingRepository(c.Store)
	c.CommentRepo = commentRepo.NewStoreCommentRepository(c.Store)
	c.ContentRepo = contentRepo.NewStoreContentRepository(c.Store)
}

func (c *Container) initServices() {
	limits := c.Config.Limits

	c.RatingService = ratingService.NewRatingService(c.RatingRepo, c.Locker, limits.RatingFetch)
	c.CommentService = commentService.NewCommentService(c.CommentRepo, limits.CommentFetch)
	c.ContentService = contentService.NewContentService(c.ContentRepo, limits.ContentDefault)
}

func (c *Container) initHandlers() {
	c.RatingHandler = ratingHandler.NewRatingHandler(c.RatingService)
	c.CommentHandler = commentHandler.NewCommentHandler(c.CommentService)
	c.ContentHandler = contentHandler.NewContentHandler(c.ContentService)
}

// ========================================
// HEALTH & CLEANUP
// ========================================

// Health reports the state of each backing service. Lock status is
// "disabled" when Redis is not configured or unreachable at startup.
func (c *Container) Health(ctx context.Context) map[string]string {
	status := map[string]string{
		"store": c.Config.Store.Driver,
		"lock":  "disabled",
	}

	if c.DB != nil {
		if err := c.DB.HealthCheck(ctx); err != nil {
			status["database"] = "unhealthy"
		} else {
			status["database"] = "healthy"
		}
	}

	if c.Redis != nil {
		if err := c.Redis.HealthCheck(ctx); err != nil {
			status["lock"] = "unhealthy"
		} else {
			status["lock"] = "healthy"
		}
	}
	return status
}

// Cleanup releases connections. Safe to call on a partially built container.
func (c *Container) Cleanup() {
	if c.DB != nil {
		if err := c.DB.Close(); err != nil {
			logger.Error("Failed to close database", err)
		} else {
			logger.Info("Database connections closed", nil)
		}
	}

	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			logger.Error("Failed to close Redis", err)
		} else {
			logger.Info("Redis connections closed", nil)
		}
	}
}
