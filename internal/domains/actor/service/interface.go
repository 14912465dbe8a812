package service

import (
	"context"

	"movies-api/internal/domains/actor/model"
)

// =====================================================
// SERVICE INTERFACE
// =====================================================

type ServiceInterface interface {
	ListActors(ctx context.Context, filter model.ListFilter) (*model.ListActorsResponse, error)
	GetActor(ctx context.Context, id int64) (*model.ActorDetail, error)
	CreateActor(ctx context.Context, req model.CreateActorRequest) (*model.Actor, error)
	UpdateActor(ctx context.Context, id int64, req model.UpdateActorRequest) (*model.Actor, error)
	DeleteActor(ctx context.Context, id int64) error

	AddToMovie(ctx context.Context, actorID, movieID int64, role *string) (int64, error)
	RemoveFromMovie(ctx context.Context, actorID, movieID int64) error
}

// MovieChecker reports whether a movie exists.
type MovieChecker interface {
	Exists(ctx context.Context, id int64) (bool, error)
}
