package handler

import (
	"github.com/gin-gonic/gin"

	"movies-api/internal/domains/movie/model"
	"movies-api/internal/domains/movie/service"
	"movies-api/internal/shared/response"
	"movies-api/internal/shared/utils"
	"movies-api/pkg/database"
)

// =====================================================
// MOVIE HANDLER
// =====================================================

type MovieHandler struct {
	movieService service.ServiceInterface
}

func NewMovieHandler(movieService service.ServiceInterface) *MovieHandler {
	return &MovieHandler{
		movieService: movieService,
	}
}

// ListMovies lists movies with optional filters
// GET /api/movies?genre=&director=&actor=&year=&limit=&offset=
func (h *MovieHandler) ListMovies(c *gin.Context) {
	// Step 1: Pagination
	limit, offset, err := utils.PageParams(c, database.DefaultLimit, database.MaxLimit)
	if err != nil {
		response.AppError(c, err)
		return
	}

	// Step 2: Filters
	year, err := utils.QueryInt(c, "year")
	if err != nil {
		response.AppError(c, err)
		return
	}
	filter := model.ListFilter{
		Genre:    utils.QueryString(c, "genre"),
		Director: utils.QueryString(c, "director"),
		Actor:    utils.QueryString(c, "actor"),
		Year:     year,
		Limit:    limit,
		Offset:   offset,
	}

	// Step 3: Call service
	result, err := h.movieService.ListMovies(c.Request.Context(), filter)
	if err != nil {
		response.AppError(c, err)
		return
	}

	response.OK(c, result)
}

// GetMovie returns a movie with cast and reviews
// GET /api/movies/:id
func (h *MovieHandler) GetMovie(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		response.AppError(c, err)
		return
	}

	movie, err := h.movieService.GetMovie(c.Request.Context(), id)
	if err != nil {
		response.AppError(c, err)
		return
	}

	response.OK(c, movie)
}

// CreateMovie creates a movie, resolving director and genre by name
// POST /api/movies
func (h *MovieHandler) CreateMovie(c *gin.Context) {
	// Step 1: Bind request body
	var req model.CreateMovieRequest
	if err := utils.BindJSON(c, &req); err != nil {
		response.AppError(c, err)
		return
	}

	// Step 2: Validate request
	req.Normalize()
	if err := utils.Validated(req.Validate()); err != nil {
		response.AppError(c, err)
		return
	}

	// Step 3: Call service
	movie, err := h.movieService.CreateMovie(c.Request.Context(), req)
	if err != nil {
		response.AppError(c, err)
		return
	}

	response.Created(c, movie)
}

// UpdateMovie applies a partial update
// PUT /api/movies/:id
func (h *MovieHandler) UpdateMovie(c *gin.Context) {
	// Step 1: Parse movie ID
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		response.AppError(c, err)
		return
	}

	// Step 2: Bind and validate
	var req model.UpdateMovieRequest
	if err := utils.BindJSON(c, &req); err != nil {
		response.AppError(c, err)
		return
	}
	req.Normalize()
	if err := utils.Validated(req.Validate()); err != nil {
		response.AppError(c, err)
		return
	}

	// Step 3: Call service
	movie, err := h.movieService.UpdateMovie(c.Request.Context(), id, req)
	if err != nil {
		response.AppError(c, err)
		return
	}

	response.OK(c, movie)
}

// DeleteMovie deletes a movie
// DELETE /api/movies/:id
func (h *MovieHandler) DeleteMovie(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		response.AppError(c, err)
		return
	}

	if err := h.movieService.DeleteMovie(c.Request.Context(), id); err != nil {
		response.AppError(c, err)
		return
	}

	response.OK(c, response.Message{Message: "Movie deleted successfully"})
}

// SearchMovies matches title, director or description
// GET /api/movies/search/:term
func (h *MovieHandler) SearchMovies(c *gin.Context) {
	result, err := h.movieService.SearchMovies(c.Request.Context(), c.Param("term"))
	if err != nil {
		response.AppError(c, err)
		return
	}

	response.OK(c, result)
}
