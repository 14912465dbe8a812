package handler

import (
	"github.com/gin-gonic/gin"

	"movies-api/internal/domains/genre/service"
	"movies-api/internal/shared/response"
	"movies-api/internal/shared/utils"
	"movies-api/pkg/database"
)

type GenreHandler struct {
	genreService service.ServiceInterface
}

func NewGenreHandler(genreService service.ServiceInterface) *GenreHandler {
	return &GenreHandler{genreService: genreService}
}

// GET /api/genres?limit=&offset=
func (h *GenreHandler) ListGenres(c *gin.Context) {
	limit, offset, err := utils.PageParams(c, database.DefaultLimit, database.MaxLimit)
	if err != nil {
		response.AppError(c, err)
		return
	}

	result, err := h.genreService.ListGenres(c.Request.Context(), database.NewPage(limit, offset))
	if err != nil {
		response.AppError(c, err)
		return
	}

	response.OK(c, result)
}

// GET /api/genres/:id
func (h *GenreHandler) GetGenre(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		response.AppError(c, err)
		return
	}

	genre, err := h.genreService.GetGenre(c.Request.Context(), id)
	if err != nil {
		response.AppError(c, err)
		return
	}

	response.OK(c, genre)
}
