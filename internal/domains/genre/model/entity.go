package model

import (
	"time"

	movieModel "movies-api/internal/domains/movie/model"
)

type Genre struct {
	ID          int64     `db:"id" json:"id"`
	Name        string    `db:"name" json:"name"`
	Description *string   `db:"description" json:"description"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

// GenreDetail is a genre with its movies, newest release first.
type GenreDetail struct {
	Genre
	Movies     []movieModel.Movie `json:"movies"`
	MovieCount int                `json:"movie_count"`
}

type ListGenresResponse struct {
	Genres []Genre `json:"genres"`
	Count  int     `json:"count"`
}
