package model

import (
	"time"

	movieModel "movies-api/internal/domains/movie/model"
)

type Director struct {
	ID        int64     `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Bio       *string   `db:"bio" json:"bio"`
	BirthYear *int      `db:"birth_year" json:"birth_year"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// DirectorDetail is a director with the films directed, newest release first.
type DirectorDetail struct {
	Director
	Movies     []movieModel.Movie `json:"movies"`
	MovieCount int                `json:"movie_count"`
}

type ListDirectorsResponse struct {
	Directors []Director `json:"directors"`
	Count     int        `json:"count"`
}
