package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"movies-api/internal/shared/utils"
)

const (
	MinReleaseYear = 1888
	MaxReleaseYear = 2030
	MinRating      = 0.0
	MaxRating      = 10.0
)

// =====================================================
// REQUEST DTOs
// =====================================================

type CreateMovieRequest struct {
	Title        string   `json:"title"`
	DirectorName string   `json:"director_name"`
	GenreName    string   `json:"genre_name"`
	ReleaseYear  int      `json:"release_year"`
	Rating       *float64 `json:"rating"`
	Description  *string  `json:"description"`
	Language     *string  `json:"language"`
	ImageURL     *string  `json:"image_url"`
}

func (r *CreateMovieRequest) Normalize() {
	utils.TrimPtr(&r.Title)
	utils.TrimPtr(&r.DirectorName)
	utils.TrimPtr(&r.GenreName)
}

func (r CreateMovieRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Required, validation.RuneLength(1, 255)),
		validation.Field(&r.DirectorName, validation.Required, validation.RuneLength(1, 255)),
		validation.Field(&r.GenreName, validation.Required, validation.RuneLength(1, 100)),
		validation.Field(&r.ReleaseYear, validation.Required, validation.Min(MinReleaseYear), validation.Max(MaxReleaseYear)),
		validation.Field(&r.Rating, validation.Min(MinRating), validation.Max(MaxRating)),
		validation.Field(&r.Language, validation.RuneLength(0, 50)),
		validation.Field(&r.ImageURL, validation.RuneLength(0, 500)),
	)
}

// NewMovie builds the row to insert from the resolved ids.
func (r CreateMovieRequest) NewMovie(directorID, genreID int64) NewMovie {
	return NewMovie{
		Title:       r.Title,
		DirectorID:  directorID,
		GenreID:     genreID,
		ReleaseYear: r.ReleaseYear,
		Rating:      utils.ParseFloatToDecimal(r.Rating),
		Description: r.Description,
		Language:    r.Language,
		ImageURL:    r.ImageURL,
	}
}

// UpdateMovieRequest is a partial update. Absent and null fields are left as they are.
type UpdateMovieRequest struct {
	Title        *string  `json:"title"`
	DirectorName *string  `json:"director_name"`
	GenreName    *string  `json:"genre_name"`
	ReleaseYear  *int     `json:"release_year"`
	Rating       *float64 `json:"rating"`
	Description  *string  `json:"description"`
	Language     *string  `json:"language"`
	ImageURL     *string  `json:"image_url"`
}

func (r *UpdateMovieRequest) Normalize() {
	utils.TrimPtr(r.Title)
	utils.TrimPtr(r.DirectorName)
	utils.TrimPtr(r.GenreName)
}

func (r UpdateMovieRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.NilOrNotEmpty, validation.RuneLength(1, 255)),
		validation.Field(&r.DirectorName, validation.NilOrNotEmpty, validation.RuneLength(1, 255)),
		validation.Field(&r.GenreName, validation.NilOrNotEmpty, validation.RuneLength(1, 100)),
		validation.Field(&r.ReleaseYear, validation.NilOrNotEmpty, validation.Min(MinReleaseYear), validation.Max(MaxReleaseYear)),
		validation.Field(&r.Rating, validation.Min(MinRating), validation.Max(MaxRating)),
		validation.Field(&r.Language, validation.RuneLength(0, 50)),
		validation.Field(&r.ImageURL, validation.RuneLength(0, 500)),
	)
}

// =====================================================
// RESPONSE DTOs
// =====================================================

type ListMoviesResponse struct {
	Movies []Movie `json:"movies"`
	Count  int     `json:"count"`
}
