package handler

import (
	"github.com/gin-gonic/gin"

	"movies-api/internal/domains/review/model"
	"movies-api/internal/domains/review/service"
	"movies-api/internal/shared/response"
	"movies-api/internal/shared/utils"
)

// =====================================================
// REVIEW HANDLER
// =====================================================

type ReviewHandler struct {
	reviewService service.ServiceInterface
}

func NewReviewHandler(reviewService service.ServiceInterface) *ReviewHandler {
	return &ReviewHandler{
		reviewService: reviewService,
	}
}

// CreateReview creates a review for an existing movie
// POST /api/reviews
func (h *ReviewHandler) CreateReview(c *gin.Context) {
	// Step 1: Bind request body
	var req model.CreateReviewRequest
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
	review, err := h.reviewService.CreateReview(c.Request.Context(), req)
	if err != nil {
		response.AppError(c, err)
		return
	}

	response.Created(c, review)
}

// GetReview gets review by ID
// GET /api/reviews/:id
func (h *ReviewHandler) GetReview(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		response.AppError(c, err)
		return
	}

	review, err := h.reviewService.GetReview(c.Request.Context(), id)
	if err != nil {
		response.AppError(c, err)
		return
	}

	response.OK(c, review)
}

// ListMovieReviews lists reviews of a movie, newest first
// GET /api/movies/:id/reviews
func (h *ReviewHandler) ListMovieReviews(c *gin.Context) {
	movieID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		response.AppError(c, err)
		return
	}

	result, err := h.reviewService.ListMovieReviews(c.Request.Context(), movieID)
	if err != nil {
		response.AppError(c, err)
		return
	}

	response.OK(c, result)
}

// UpdateReview applies a partial update
// PUT /api/reviews/:id
func (h *ReviewHandler) UpdateReview(c *gin.Context) {
	// Step 1: Parse review ID
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		response.AppError(c, err)
		return
	}

	// Step 2: Bind and validate
	var req model.UpdateReviewRequest
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
	review, err := h.reviewService.UpdateReview(c.Request.Context(), id, req)
	if err != nil {
		response.AppError(c, err)
		return
	}

	response.OK(c, review)
}

// DeleteReview deletes a review
// DELETE /api/reviews/:id
func (h *ReviewHandler) DeleteReview(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		response.AppError(c, err)
		return
	}

	if err := h.reviewService.DeleteReview(c.Request.Context(), id); err != nil {
		response.AppError(c, err)
		return
	}

	response.OK(c, response.Message{Message: "Review deleted successfully"})
}
