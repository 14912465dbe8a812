package repository

import (
	"context"

	"movies-api/internal/domains/actor/model"
)

type ActorRepository interface {
	List(ctx context.Context, filter model.ListFilter) ([]model.Actor, error)
	GetByID(ctx context.Context, id int64) (*model.Actor, error)
	Exists(ctx context.Context, id int64) (bool, error)
	Filmography(ctx context.Context, actorID int64) ([]model.Credit, error)

	Create(ctx context.Context, actor model.NewActor) (*model.Actor, error)
	Update(ctx context.Context, id int64, changes model.Changes) error
	Delete(ctx context.Context, id int64) error

	// AddToMovie credits the actor on the movie. An existing credit gets the
	// new role. Returns the movie_actors id.
	AddToMovie(ctx context.Context, actorID, movieID int64, role *string) (int64, error)
	RemoveFromMovie(ctx context.Context, actorID, movieID int64) error
}
