package model

import (
	"time"

	"github.com/shopspring/decimal"

	reviewModel "movies-api/internal/domains/review/model"
)

// Movie is a movies row joined with its director and genre names.
type Movie struct {
	ID          int64            `db:"id" json:"id"`
	Title       string           `db:"title" json:"title"`
	DirectorID  int64            `db:"director_id" json:"director_id"`
	Director    string           `db:"director" json:"director"`
	GenreID     int64            `db:"genre_id" json:"genre_id"`
	Genre       string           `db:"genre" json:"genre"`
	ReleaseYear int              `db:"release_year" json:"release_year"`
	Rating      *decimal.Decimal `db:"rating" json:"rating"`
	Description *string          `db:"description" json:"description"`
	Language    *string          `db:"language" json:"language"`
	ImageURL    *string          `db:"image_url" json:"image_url"`
	CreatedAt   time.Time        `db:"created_at" json:"created_at"`
}

// CastMember is an actor credited on a movie.
type CastMember struct {
	ID        int64   `db:"id" json:"id"`
	Name      string  `db:"name" json:"name"`
	Role      *string `db:"role" json:"role"`
	BirthYear *int    `db:"birth_year" json:"birth_year"`
	ImageURL  *string `db:"image_url" json:"image_url"`
}

// MovieDetail is a movie with its cast and reviews.
type MovieDetail struct {
	Movie
	Cast    []CastMember         `json:"cast"`
	Reviews []reviewModel.Review `json:"reviews"`
}

// NewMovie is what gets inserted once director and genre are resolved.
type NewMovie struct {
	Title       string
	DirectorID  int64
	GenreID     int64
	ReleaseYear int
	Rating      *decimal.Decimal
	Description *string
	Language    *string
	ImageURL    *string
}

// Changes lists the columns of a partial update. nil means untouched.
type Changes struct {
	Title       *string
	DirectorID  *int64
	GenreID     *int64
	ReleaseYear *int
	Rating      *decimal.Decimal
	Description *string
	Language    *string
	ImageURL    *string
}

// ListFilter holds the optional list filters. nil fields are not applied.
type ListFilter struct {
	Genre    *string
	Director *string
	Actor    *string
	Year     *int
	Limit    int
	Offset   int
}
