package model

import (
	"time"

	movieModel "movies-api/internal/domains/movie/model"
)

type Actor struct {
	ID        int64     `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Bio       *string   `db:"bio" json:"bio"`
	BirthYear *int      `db:"birth_year" json:"birth_year"`
	ImageURL  *string   `db:"image_url" json:"image_url"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// Credit is a movie the actor appears in, with the role played.
type Credit struct {
	movieModel.Movie
	Role *string `db:"role" json:"role"`
}

// ActorDetail is an actor with the filmography, newest release first.
type ActorDetail struct {
	Actor
	Movies     []Credit `json:"movies"`
	MovieCount int      `json:"movie_count"`
}

type NewActor struct {
	Name      string
	Bio       *string
	BirthYear *int
	ImageURL  *string
}

// Changes lists the columns of a partial update. nil means untouched.
type Changes struct {
	Name      *string
	Bio       *string
	BirthYear *int
	ImageURL  *string
}

type ListFilter struct {
	Genre  *string
	Limit  int
	Offset int
}
