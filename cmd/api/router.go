package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"movies-api/internal/config"
	actorHandler "movies-api/internal/domains/actor/handler"
	directorHandler "movies-api/internal/domains/director/handler"
	genreHandler "movies-api/internal/domains/genre/handler"
	movieHandler "movies-api/internal/domains/movie/handler"
	reviewHandler "movies-api/internal/domains/review/handler"
	"movies-api/internal/shared/middleware"
	"movies-api/internal/shared/response"
	"movies-api/pkg/container"
)

const healthTimeout = 2 * time.Second

// HealthChecker reports whether the database is reachable.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// Handlers groups the HTTP handlers the router mounts.
type Handlers struct {
	Movie    *movieHandler.MovieHandler
	Actor    *actorHandler.ActorHandler
	Director *directorHandler.DirectorHandler
	Genre    *genreHandler.GenreHandler
	Review   *reviewHandler.ReviewHandler
}

func SetupRouter(c *container.Container) *gin.Engine {
	return newRouter(c.Config, Handlers{
		Movie:    c.MovieHandler,
		Actor:    c.ActorHandler,
		Director: c.DirectorHandler,
		Genre:    c.GenreHandler,
		Review:   c.ReviewHandler,
	}, c.DB)
}

func newRouter(cfg *config.Config, h Handlers, db HealthChecker) *gin.Engine {
	router := gin.New()

	// Global middlewares
	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.Metrics(),
		middleware.CORS(cfg.CORS.Origins),
	)

	router.GET("/", rootHandler(cfg))
	router.GET("/health", healthCheckHandler(cfg, db))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	router.NoRoute(func(c *gin.Context) {
		response.NotFound(c, "Route not found")
	})

	api := router.Group("/api")
	{
		setupMovieRoutes(api, h)
		setupActorRoutes(api, h)
		setupDirectorRoutes(api, h)
		setupGenreRoutes(api, h)
		setupReviewRoutes(api, h)
	}

	return router
}

// ========================================
// MOVIE ROUTES
// ========================================
func setupMovieRoutes(api *gin.RouterGroup, h Handlers) {
	movies := api.Group("/movies")
	{
		movies.GET("", h.Movie.ListMovies)
		movies.GET("/search/:term", h.Movie.SearchMovies)
		movies.GET("/:id", h.Movie.GetMovie)
		movies.POST("", h.Movie.CreateMovie)
		movies.PUT("/:id", h.Movie.UpdateMovie)
		movies.DELETE("/:id", h.Movie.DeleteMovie)
		movies.GET("/:id/reviews", h.Review.ListMovieReviews)
	}
}

// ========================================
// ACTOR ROUTES
// ========================================
func setupActorRoutes(api *gin.RouterGroup, h Handlers) {
	actors := api.Group("/actors")
	{
		actors.GET("", h.Actor.ListActors)
		actors.GET("/:id", h.Actor.GetActor)
		actors.POST("", h.Actor.CreateActor)
		actors.PUT("/:id", h.Actor.UpdateActor)
		actors.DELETE("/:id", h.Actor.DeleteActor)
		actors.POST("/:id/movies/:movie_id", h.Actor.AddToMovie)
		actors.DELETE("/:id/movies/:movie_id", h.Actor.RemoveFromMovie)
	}
}

// ========================================
// DIRECTOR / GENRE ROUTES
// ========================================
func setupDirectorRoutes(api *gin.RouterGroup, h Handlers) {
	directors := api.Group("/directors")
	{
		directors.GET("", h.Director.ListDirectors)
		directors.GET("/:id", h.Director.GetDirector)
	}
}

func setupGenreRoutes(api *gin.RouterGroup, h Handlers) {
	genres := api.Group("/genres")
	{
		genres.GET("", h.Genre.ListGenres)
		genres.GET("/:id", h.Genre.GetGenre)
	}
}

// ========================================
// REVIEW ROUTES
// ========================================
func setupReviewRoutes(api *gin.RouterGroup, h Handlers) {
	reviews := api.Group("/reviews")
	{
		reviews.POST("", h.Review.CreateReview)
		reviews.GET("/:id", h.Review.GetReview)
		reviews.PUT("/:id", h.Review.UpdateReview)
		reviews.DELETE("/:id", h.Review.DeleteReview)
	}
}

func rootHandler(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": cfg.App.Name,
			"version": cfg.App.Version,
			"status":  "running",
		})
	}
}

// healthCheckHandler always answers 200; status says whether the database
// is reachable.
func healthCheckHandler(cfg *config.Config, db HealthChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		status, dbStatus := "healthy", "connected"

		ctx, cancel := context.WithTimeout(c.Request.Context(), healthTimeout)
		defer cancel()

		if db == nil {
			status, dbStatus = "degraded", "disconnected"
		} else if err := db.HealthCheck(ctx); err != nil {
			_ = c.Error(err)
			status, dbStatus = "degraded", "disconnected"
		}

		c.JSON(http.StatusOK, gin.H{
			"status":   status,
			"database": dbStatus,
			"version":  cfg.App.Version,
		})
	}
}
