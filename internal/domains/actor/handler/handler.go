package handler

import (
	"github.com/gin-gonic/gin"

	"movies-api/internal/domains/actor/model"
	"movies-api/internal/domains/actor/service"
	"movies-api/internal/shared/response"
	"movies-api/internal/shared/utils"
	"movies-api/pkg/database"
)

type ActorHandler struct {
	actorService service.ServiceInterface
}

func NewActorHandler(actorService service.ServiceInterface) *ActorHandler {
	return &ActorHandler{
		actorService: actorService,
	}
}

// ListActors lists actors by name
// GET /api/actors?genre=&limit=&offset=
func (h *ActorHandler) ListActors(c *gin.Context) {
	limit, offset, err := utils.PageParams(c, database.DefaultLimit, database.MaxLimit)
	if err != nil {
		response.AppError(c, err)
		return
	}

	result, err := h.actorService.ListActors(c.Request.Context(), model.ListFilter{
		Genre:  utils.QueryString(c, "genre"),
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		response.AppError(c, err)
		return
	}

	response.OK(c, result)
}

// GetActor returns an actor with filmography
// GET /api/actors/:id
func (h *ActorHandler) GetActor(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		response.AppError(c, err)
		return
	}

	actor, err := h.actorService.GetActor(c.Request.Context(), id)
	if err != nil {
		response.AppError(c, err)
		return
	}

	response.OK(c, actor)
}

// CreateActor creates an actor
// POST /api/actors
func (h *ActorHandler) CreateActor(c *gin.Context) {
	var req model.CreateActorRequest
	if err := utils.BindJSON(c, &req); err != nil {
		response.AppError(c, err)
		return
	}
	req.Normalize()
	if err := utils.Validated(req.Validate()); err != nil {
		response.AppError(c, err)
		return
	}

	actor, err := h.actorService.CreateActor(c.Request.Context(), req)
	if err != nil {
		response.AppError(c, err)
		return
	}

	response.Created(c, actor)
}

// UpdateActor applies a partial update
// PUT /api/actors/:id
func (h *ActorHandler) UpdateActor(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		response.AppError(c, err)
		return
	}

	var req model.UpdateActorRequest
	if err := utils.BindJSON(c, &req); err != nil {
		response.AppError(c, err)
		return
	}
	req.Normalize()
	if err := utils.Validated(req.Validate()); err != nil {
		response.AppError(c, err)
		return
	}

	actor, err := h.actorService.UpdateActor(c.Request.Context(), id, req)
	if err != nil {
		response.AppError(c, err)
		return
	}

	response.OK(c, actor)
}

// DeleteActor deletes an actor
// DELETE /api/actors/:id
func (h *ActorHandler) DeleteActor(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		response.AppError(c, err)
		return
	}

	if err := h.actorService.DeleteActor(c.Request.Context(), id); err != nil {
		response.AppError(c, err)
		return
	}

	response.OK(c, response.Message{Message: "Actor deleted successfully"})
}

// AddToMovie credits an actor on a movie
// POST /api/actors/:id/movies/:movie_id?role=
func (h *ActorHandler) AddToMovie(c *gin.Context) {
	// Step 1: Parse IDs
	actorID, movieID, ok := h.castIDs(c)
	if !ok {
		return
	}

	// Step 2: Validate role
	role := utils.QueryString(c, "role")
	if err := utils.Validated(model.ValidateRole(role)); err != nil {
		response.AppError(c, err)
		return
	}

	// Step 3: Call service
	id, err := h.actorService.AddToMovie(c.Request.Context(), actorID, movieID, role)
	if err != nil {
		response.AppError(c, err)
		return
	}

	response.Created(c, response.Message{Message: "Actor added to movie successfully", ID: id})
}

// RemoveFromMovie removes an actor from a movie
// DELETE /api/actors/:id/movies/:movie_id
func (h *ActorHandler) RemoveFromMovie(c *gin.Context) {
	actorID, movieID, ok := h.castIDs(c)
	if !ok {
		return
	}

	if err := h.actorService.RemoveFromMovie(c.Request.Context(), actorID, movieID); err != nil {
		response.AppError(c, err)
		return
	}

	response.OK(c, response.Message{Message: "Actor removed from movie successfully"})
}

func (h *ActorHandler) castIDs(c *gin.Context) (actorID, movieID int64, ok bool) {
	actorID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		response.AppError(c, err)
		return 0, 0, false
	}
	movieID, err = utils.ParseIDParam(c, "movie_id")
	if err != nil {
		response.AppError(c, err)
		return 0, 0, false
	}
	return actorID, movieID, true
}
