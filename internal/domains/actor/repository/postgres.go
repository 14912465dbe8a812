package repository

import (
	"context"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"movies-api/internal/domains/actor/model"
	movieRepo "movies-api/internal/domains/movie/repository"
	"movies-api/pkg/database"
)

const (
	table     = "actors"
	castTable = "movie_actors"

	colID        = "id"
	colName      = "name"
	colBio       = "bio"
	colBirthYear = "birth_year"
	colImageURL  = "image_url"
	colCreatedAt = "created_at"

	colMovieID = "movie_id"
	colActorID = "actor_id"
	colRole    = "role"
)

var columns = []string{colID, colName, colBio, colBirthYear, colImageURL, colCreatedAt}

type postgresActorRepository struct {
	exec database.Executor
}

func NewPostgresActorRepository(exec database.Executor) ActorRepository {
	return &postgresActorRepository{exec: exec}
}

// =====================================================
// READ
// =====================================================

// List orders by name. With a genre filter only actors credited on a movie
// of that genre are returned, each once.
func (r *postgresActorRepository) List(ctx context.Context, filter model.ListFilter) ([]model.Actor, error) {
	qualified := make([]string, len(columns))
	for i, c := range columns {
		qualified[i] = "a." + c
	}

	stmt := database.Builder.Select(qualified...).From("actors a")
	if filter.Genre != nil {
		stmt = stmt.Distinct().
			Join("movie_actors ma ON ma.actor_id = a.id").
			Join("movies m ON m.id = ma.movie_id").
			Join("genres g ON g.id = m.genre_id").
			Where(sq.Expr("LOWER(g.name) = LOWER(?)", strings.TrimSpace(*filter.Genre)))
	}
	stmt = database.NewPage(filter.Limit, filter.Offset).Apply(stmt.OrderBy("a.name", "a.id"))

	res, err := r.exec.Execute(ctx, stmt, database.ModeMany)
	if err != nil {
		return nil, err
	}
	return database.DecodeAll[model.Actor](res.Rows)
}

func (r *postgresActorRepository) GetByID(ctx context.Context, id int64) (*model.Actor, error) {
	stmt := database.Builder.Select(columns...).From(table).Where(sq.Eq{colID: id})

	res, err := r.exec.Execute(ctx, stmt, database.ModeOne)
	if err != nil {
		return nil, err
	}
	rec := res.One()
	if rec == nil {
		return nil, model.ErrActorNotFound
	}
	return database.DecodeOne[model.Actor](rec)
}

func (r *postgresActorRepository) Exists(ctx context.Context, id int64) (bool, error) {
	res, err := r.exec.Execute(ctx, database.Builder.Select("1").From(table).Where(sq.Eq{colID: id}), database.ModeOne)
	if err != nil {
		return false, err
	}
	return res.One() != nil, nil
}

func (r *postgresActorRepository) Filmography(ctx context.Context, actorID int64) ([]model.Credit, error) {
	stmt := movieRepo.SelectMovies("ma.role").
		Join("movie_actors ma ON ma.movie_id = m.id").
		Where(sq.Eq{"ma.actor_id": actorID}).
		OrderBy("m.release_year DESC", "m.id DESC")

	res, err := r.exec.Execute(ctx, stmt, database.ModeMany)
	if err != nil {
		return nil, err
	}
	return database.DecodeAll[model.Credit](res.Rows)
}

// =====================================================
// WRITE
// =====================================================

func (r *postgresActorRepository) Create(ctx context.Context, actor model.NewActor) (*model.Actor, error) {
	stmt := database.Builder.
		Insert(table).
		Columns(colName, colBio, colBirthYear, colImageURL).
		Values(actor.Name, actor.Bio, actor.BirthYear, actor.ImageURL).
		Suffix("RETURNING " + strings.Join(columns, ", "))

	res, err := r.exec.Execute(ctx, stmt, database.ModeOne)
	if err != nil {
		return nil, err
	}
	return database.DecodeOne[model.Actor](res.One())
}

func (r *postgresActorRepository) Update(ctx context.Context, id int64, changes model.Changes) error {
	patch := database.NewPatch(table)
	database.SetIf(patch, colName, changes.Name)
	database.SetIf(patch, colBio, changes.Bio)
	database.SetIf(patch, colBirthYear, changes.BirthYear)
	database.SetIf(patch, colImageURL, changes.ImageURL)

	if patch.Empty() {
		return nil
	}

	res, err := r.exec.Execute(ctx, patch.Update(sq.Eq{colID: id}), database.ModeNone)
	if err != nil {
		return err
	}
	if res.RowsAffected == 0 {
		return model.ErrActorNotFound
	}
	return nil
}

func (r *postgresActorRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.exec.Execute(ctx, database.Builder.Delete(table).Where(sq.Eq{colID: id}), database.ModeNone)
	if err != nil {
		return err
	}
	if res.RowsAffected == 0 {
		return model.ErrActorNotFound
	}
	return nil
}

// =====================================================
// CAST
// =====================================================

func (r *postgresActorRepository) AddToMovie(ctx context.Context, actorID, movieID int64, role *string) (int64, error) {
	stmt := database.Builder.
		Insert(castTable).
		Columns(colMovieID, colActorID, colRole).
		Values(movieID, actorID, role).
		Suffix("ON CONFLICT (movie_id, actor_id) DO UPDATE SET role = EXCLUDED.role RETURNING " + colID)

	res, err := r.exec.Execute(ctx, stmt, database.ModeOne)
	if err != nil {
		return 0, err
	}
	rec := res.One()
	if rec == nil {
		return 0, fmt.Errorf("upsert movie_actors returned no id")
	}
	return database.Int64(rec, colID)
}

func (r *postgresActorRepository) RemoveFromMovie(ctx context.Context, actorID, movieID int64) error {
	stmt := database.Builder.Delete(castTable).Where(sq.Eq{colMovieID: movieID, colActorID: actorID})

	res, err := r.exec.Execute(ctx, stmt, database.ModeNone)
	if err != nil {
		return err
	}
	if res.RowsAffected == 0 {
		return model.ErrCastEntryNotFound
	}
	return nil
}
