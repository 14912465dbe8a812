package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog/log"

	"movies-api/internal/domains/actor/model"
	"movies-api/internal/domains/actor/repository"
	"movies-api/internal/shared/apperror"
)

type actorService struct {
	actorRepo repository.ActorRepository
	movies    MovieChecker
}

func NewActorService(actorRepo repository.ActorRepository, movies MovieChecker) ServiceInterface {
	return &actorService{
		actorRepo: actorRepo,
		movies:    movies,
	}
}

// =====================================================
// READ
// =====================================================

func (s *actorService) ListActors(ctx context.Context, filter model.ListFilter) (*model.ListActorsResponse, error) {
	actors, err := s.actorRepo.List(ctx, filter)
	if err != nil {
		return nil, apperror.FromStore("actor.list", err, map[string]any{"limit": filter.Limit, "offset": filter.Offset})
	}
	return &model.ListActorsResponse{Actors: actors, Count: len(actors)}, nil
}

func (s *actorService) GetActor(ctx context.Context, id int64) (*model.ActorDetail, error) {
	const op = "actor.get"

	actor, err := s.actorRepo.GetByID(ctx, id)
	if err != nil {
		return nil, translate(op, id, err)
	}

	credits, err := s.actorRepo.Filmography(ctx, id)
	if err != nil {
		return nil, translate(op, id, err)
	}

	return &model.ActorDetail{Actor: *actor, Movies: credits, MovieCount: len(credits)}, nil
}

// =====================================================
// WRITE
// =====================================================

func (s *actorService) CreateActor(ctx context.Context, req model.CreateActorRequest) (*model.Actor, error) {
	actor, err := s.actorRepo.Create(ctx, req.NewActor())
	if err != nil {
		return nil, apperror.FromStore("actor.create", err, map[string]any{"name": req.Name})
	}

	log.Info().Str("op", "actor.create").Int64("actor_id", actor.ID).Msg("actor created")
	return actor, nil
}

func (s *actorService) UpdateActor(ctx context.Context, id int64, req model.UpdateActorRequest) (*model.Actor, error) {
	const op = "actor.update"

	// Step 1: Existence check
	if _, err := s.actorRepo.GetByID(ctx, id); err != nil {
		return nil, translate(op, id, err)
	}

	// Step 2: Apply provided fields only
	if err := s.actorRepo.Update(ctx, id, req.Changes()); err != nil {
		return nil, translate(op, id, err)
	}

	// Step 3: Re-fetch
	actor, err := s.actorRepo.GetByID(ctx, id)
	if err != nil {
		return nil, translate(op, id, err)
	}
	return actor, nil
}

func (s *actorService) DeleteActor(ctx context.Context, id int64) error {
	if err := s.actorRepo.Delete(ctx, id); err != nil {
		return translate("actor.delete", id, err)
	}
	log.Info().Str("op", "actor.delete").Int64("actor_id", id).Msg("actor deleted")
	return nil
}

// =====================================================
// CAST
// =====================================================

func (s *actorService) AddToMovie(ctx context.Context, actorID, movieID int64, role *string) (int64, error) {
	const op = "actor.add_to_movie"
	fields := map[string]any{"actor_id": actorID, "movie_id": movieID}

	// Step 1: Movie must exist
	movieExists, err := s.movies.Exists(ctx, movieID)
	if err != nil {
		return 0, apperror.FromStore(op, err, fields)
	}
	if !movieExists {
		return 0, model.NewMovieNotFoundError()
	}

	// Step 2: Actor must exist
	actorExists, err := s.actorRepo.Exists(ctx, actorID)
	if err != nil {
		return 0, apperror.FromStore(op, err, fields)
	}
	if !actorExists {
		return 0, model.NewActorNotFoundError()
	}

	// Step 3: Upsert the credit
	id, err := s.actorRepo.AddToMovie(ctx, actorID, movieID, role)
	if err != nil {
		return 0, apperror.FromStore(op, err, fields)
	}

	log.Info().Str("op", op).Int64("actor_id", actorID).Int64("movie_id", movieID).Msg("actor added to movie")
	return id, nil
}

func (s *actorService) RemoveFromMovie(ctx context.Context, actorID, movieID int64) error {
	const op = "actor.remove_from_movie"

	err := s.actorRepo.RemoveFromMovie(ctx, actorID, movieID)
	switch {
	case errors.Is(err, model.ErrCastEntryNotFound):
		return model.NewCastEntryNotFoundError()
	case err != nil:
		return apperror.FromStore(op, err, map[string]any{"actor_id": actorID, "movie_id": movieID})
	}
	return nil
}

func translate(op string, id int64, err error) error {
	if errors.Is(err, model.ErrActorNotFound) {
		return model.NewActorNotFoundError()
	}
	return apperror.FromStore(op, err, map[string]any{"actor_id": id})
}
