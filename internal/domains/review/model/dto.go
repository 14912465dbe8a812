package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"movies-api/internal/shared/utils"
)

const (
	MinRating = 0.0
	MaxRating = 10.0
)

// =====================================================
// REQUEST DTOs
// =====================================================

type CreateReviewRequest struct {
	MovieID      int64    `json:"movie_id"`
	ReviewerName string   `json:"reviewer_name"`
	Rating       *float64 `json:"rating"`
	Comment      *string  `json:"comment"`
}

func (r *CreateReviewRequest) Normalize() {
	utils.TrimPtr(&r.ReviewerName)
}

func (r CreateReviewRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.MovieID, validation.Required, validation.Min(int64(1))),
		validation.Field(&r.ReviewerName, validation.Required, validation.RuneLength(1, 255)),
		validation.Field(&r.Rating, validation.NotNil, validation.Min(MinRating), validation.Max(MaxRating)),
	)
}

type UpdateReviewRequest struct {
	ReviewerName *string  `json:"reviewer_name"`
	Rating       *float64 `json:"rating"`
	Comment      *string  `json:"comment"`
}

func (r *UpdateReviewRequest) Normalize() {
	utils.TrimPtr(r.ReviewerName)
}

func (r UpdateReviewRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.ReviewerName, validation.NilOrNotEmpty, validation.RuneLength(1, 255)),
		validation.Field(&r.Rating, validation.Min(MinRating), validation.Max(MaxRating)),
	)
}

func (r UpdateReviewRequest) Changes() Changes {
	return Changes{
		ReviewerName: r.ReviewerName,
		Rating:       utils.ParseFloatToDecimal(r.Rating),
		Comment:      r.Comment,
	}
}

// =====================================================
// RESPONSE DTOs
// =====================================================

type ListReviewsResponse struct {
	Reviews []Review `json:"reviews"`
	Count   int      `json:"count"`
}
