package handler

import (
	"github.com/gin-gonic/gin"

	"movies-api/internal/domains/director/service"
	"movies-api/internal/shared/response"
	"movies-api/internal/shared/utils"
	"movies-api/pkg/database"
)

type DirectorHandler struct {
	directorService service.ServiceInterface
}

func NewDirectorHandler(directorService service.ServiceInterface) *DirectorHandler {
	return &DirectorHandler{directorService: directorService}
}

// ListDirectors lists directors by name
// GET /api/directors?limit=&offset=
func (h *DirectorHandler) ListDirectors(c *gin.Context) {
	limit, offset, err := utils.PageParams(c, database.DefaultLimit, database.MaxLimit)
	if err != nil {
		response.AppError(c, err)
		return
	}

	result, err := h.directorService.ListDirectors(c.Request.Context(), database.NewPage(limit, offset))
	if err != nil {
		response.AppError(c, err)
		return
	}

	response.OK(c, result)
}

// GetDirector returns a director with filmography
// GET /api/directors/:id
func (h *DirectorHandler) GetDirector(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		response.AppError(c, err)
		return
	}

	director, err := h.directorService.GetDirector(c.Request.Context(), id)
	if err != nil {
		response.AppError(c, err)
		return
	}

	response.OK(c, director)
}
