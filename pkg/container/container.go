package container

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"movies-api/internal/config"
	"movies-api/internal/infrastructure/database"
	store "movies-api/pkg/database"
	"movies-api/pkg/logger"

	actorHandler "movies-api/internal/domains/actor/handler"
	actorRepo "movies-api/internal/domains/actor/repository"
	actorService "movies-api/internal/domains/actor/service"
	directorHandler "movies-api/internal/domains/director/handler"
	directorRepo "movies-api/internal/domains/director/repository"
	directorService "movies-api/internal/domains/director/service"
	genreHandler "movies-api/internal/domains/genre/handler"
	genreRepo "movies-api/internal/domains/genre/repository"
	genreService "movies-api/internal/domains/genre/service"
	movieHandler "movies-api/internal/domains/movie/handler"
	movieRepo "movies-api/internal/domains/movie/repository"
	movieService "movies-api/internal/domains/movie/service"
	reviewHandler "movies-api/internal/domains/review/handler"
	reviewRepo "movies-api/internal/domains/review/repository"
	reviewService "movies-api/internal/domains/review/service"
)

const (
	connectTimeout      = 30 * time.Second
	poolMonitorInterval = time.Minute
)

// ========================================
// CONTAINER STRUCT
// ========================================

// Container holds every dependency of the application.
type Container struct {
	// ========================================
	// INFRASTRUCTURE LAYER
	// ========================================
	Config   *config.Config
	DB       *database.PostgresDB
	Executor store.Executor
	Resolver *store.Resolver

	// ========================================
	// REPOSITORY LAYER
	// ========================================
	MovieRepo    movieRepo.MovieRepository
	ActorRepo    actorRepo.ActorRepository
	DirectorRepo directorRepo.DirectorRepository
	GenreRepo    genreRepo.GenreRepository
	ReviewRepo   reviewRepo.ReviewRepository

	// ========================================
	// SERVICE LAYER
	// ========================================
	MovieService    movieService.ServiceInterface
	ActorService    actorService.ServiceInterface
	DirectorService directorService.ServiceInterface
	GenreService    genreService.ServiceInterface
	ReviewService   reviewService.ServiceInterface

	// ========================================
	// HANDLER LAYER
	// ========================================
	MovieHandler    *movieHandler.MovieHandler
	ActorHandler    *actorHandler.ActorHandler
	DirectorHandler *directorHandler.DirectorHandler
	GenreHandler    *genreHandler.GenreHandler
	ReviewHandler   *reviewHandler.ReviewHandler

	stopMonitor context.CancelFunc
}

// ========================================
// CONSTRUCTOR: BUILD CONTAINER
// ========================================

// NewContainer builds the dependency graph in order:
// config, database, repositories, services, handlers.
func NewContainer() (*Container, error) {
	c := &Container{}

	// STEP 1: Configuration
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg
	logger.Init(cfg.App.Environment, cfg.Log.Level)
	logger.Info("Config loaded", map[string]interface{}{"environment": cfg.App.Environment})

	// STEP 2: Database (connect có retry, fail thì không start)
	db := database.NewPostgresDB(cfg.Database)

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	if err := db.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	c.DB = db

	monitorCtx, stop := context.WithCancel(context.Background())
	c.stopMonitor = stop
	// Monitor pool chạy nền, dừng khi Cleanup
	go db.MonitorPoolHealth(monitorCtx, poolMonitorInterval)

	c.Executor = store.NewExecutor(db.SQL())
	c.Resolver = store.NewResolver(c.Executor)

	// STEP 3-5: Repositories, services, handlers
	c.initRepositories()
	c.initServices()
	c.initHandlers()

	log.Info().Msg("DI Container initialized successfully")
	return c, nil
}

// ========================================
// PRIVATE INITIALIZATION METHODS
// ========================================

func (c *Container) initRepositories() {
	c.MovieRepo = movieRepo.NewPostgresMovieRepository(c.Executor)
	c.ActorRepo = actorRepo.NewPostgresActorRepository(c.Executor)
	c.DirectorRepo = directorRepo.NewPostgresDirectorRepository(c.Executor)
	c.GenreRepo = genreRepo.NewPostgresGenreRepository(c.Executor)
	c.ReviewRepo = reviewRepo.NewPostgresReviewRepository(c.Executor)
}

func (c *Container) initServices() {
	c.MovieService = movieService.NewMovieService(
		c.MovieRepo,
		c.Resolver,   // director / genre get-or-create
		c.ReviewRepo, // reviews of a movie
	)
	c.ActorService = actorService.NewActorService(c.ActorRepo, c.MovieRepo)
	c.DirectorService = directorService.NewDirectorService(c.DirectorRepo, c.MovieRepo)
	c.GenreService = genreService.NewGenreService(c.GenreRepo, c.MovieRepo)
	c.ReviewService = reviewService.NewReviewService(c.ReviewRepo, c.MovieRepo)
}

func (c *Container) initHandlers() {
	c.MovieHandler = movieHandler.NewMovieHandler(c.MovieService)
	c.ActorHandler = actorHandler.NewActorHandler(c.ActorService)
	c.DirectorHandler = directorHandler.NewDirectorHandler(c.DirectorService)
	c.GenreHandler = genreHandler.NewGenreHandler(c.GenreService)
	c.ReviewHandler = reviewHandler.NewReviewHandler(c.ReviewService)
}

// Cleanup releases resources on shutdown.
func (c *Container) Cleanup() {
	log.Info().Msg("Cleaning up container resources...")

	if c.stopMonitor != nil {
		c.stopMonitor()
	}
	if c.DB != nil {
		if err := c.DB.Close(); err != nil {
			logger.Warn("Failed to close database", err)
		}
	}

	log.Info().Msg("Container cleanup completed")
}
