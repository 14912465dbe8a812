package repository

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"movies-api/internal/domains/movie/model"
	"movies-api/pkg/database"
)

const (
	table = "movies"

	colID          = "id"
	colTitle       = "title"
	colDirectorID  = "director_id"
	colGenreID     = "genre_id"
	colReleaseYear = "release_year"
	colRating      = "rating"
	colDescription = "description"
	colLanguage    = "language"
	colImageURL    = "image_url"
)

// =====================================================
// POSTGRES REPOSITORY IMPLEMENTATION
// =====================================================

type postgresMovieRepository struct {
	exec database.Executor
}

func NewPostgresMovieRepository(exec database.Executor) MovieRepository {
	return &postgresMovieRepository{exec: exec}
}

// =====================================================
// READ
// =====================================================

func (r *postgresMovieRepository) List(ctx context.Context, filter model.ListFilter) ([]model.Movie, error) {
	return r.many(ctx, listQuery(filter))
}

func (r *postgresMovieRepository) Search(ctx context.Context, term string) ([]model.Movie, error) {
	return r.many(ctx, searchQuery(term))
}

func (r *postgresMovieRepository) GetByID(ctx context.Context, id int64) (*model.Movie, error) {
	res, err := r.exec.Execute(ctx, SelectMovies().Where(sq.Eq{"m.id": id}), database.ModeOne)
	if err != nil {
		return nil, err
	}
	rec := res.One()
	if rec == nil {
		return nil, model.ErrMovieNotFound
	}
	return database.DecodeOne[model.Movie](rec)
}

func (r *postgresMovieRepository) Exists(ctx context.Context, id int64) (bool, error) {
	stmt := database.Builder.Select("1").From(table).Where(sq.Eq{colID: id})

	res, err := r.exec.Execute(ctx, stmt, database.ModeOne)
	if err != nil {
		return false, err
	}
	return res.One() != nil, nil
}

// ListCast returns the credited actors ordered by name.
func (r *postgresMovieRepository) ListCast(ctx context.Context, movieID int64) ([]model.CastMember, error) {
	stmt := database.Builder.
		Select("a.id", "a.name", "ma.role", "a.birth_year", "a.image_url").
		From("movie_actors ma").
		Join("actors a ON a.id = ma.actor_id").
		Where(sq.Eq{"ma.movie_id": movieID}).
		OrderBy("a.name", "a.id")

	res, err := r.exec.Execute(ctx, stmt, database.ModeMany)
	if err != nil {
		return nil, err
	}
	return database.DecodeAll[model.CastMember](res.Rows)
}

func (r *postgresMovieRepository) ListByDirector(ctx context.Context, directorID int64) ([]model.Movie, error) {
	return r.many(ctx, SelectMovies().
		Where(sq.Eq{"m.director_id": directorID}).
		OrderBy("m.release_year DESC", "m.id DESC"))
}

func (r *postgresMovieRepository) ListByGenre(ctx context.Context, genreID int64) ([]model.Movie, error) {
	return r.many(ctx, SelectMovies().
		Where(sq.Eq{"m.genre_id": genreID}).
		OrderBy("m.release_year DESC", "m.id DESC"))
}

func (r *postgresMovieRepository) many(ctx context.Context, stmt sq.SelectBuilder) ([]model.Movie, error) {
	res, err := r.exec.Execute(ctx, stmt, database.ModeMany)
	if err != nil {
		return nil, err
	}
	return database.DecodeAll[model.Movie](res.Rows)
}

// =====================================================
// WRITE
// =====================================================

func (r *postgresMovieRepository) Create(ctx context.Context, movie model.NewMovie) (int64, error) {
	stmt := database.Builder.
		Insert(table).
		Columns(colTitle, colDirectorID, colGenreID, colReleaseYear, colRating, colDescription, colLanguage, colImageURL).
		Values(movie.Title, movie.DirectorID, movie.GenreID, movie.ReleaseYear, movie.Rating, movie.Description, movie.Language, movie.ImageURL).
		Suffix("RETURNING " + colID)

	res, err := r.exec.Execute(ctx, stmt, database.ModeOne)
	if err != nil {
		return 0, err
	}
	rec := res.One()
	if rec == nil {
		return 0, fmt.Errorf("insert movie returned no id")
	}
	return database.Int64(rec, colID)
}

// Update applies the non-nil changes. No statement runs when there are none.
func (r *postgresMovieRepository) Update(ctx context.Context, id int64, changes model.Changes) error {
	patch := database.NewPatch(table)
	database.SetIf(patch, colTitle, changes.Title)
	database.SetIf(patch, colDirectorID, changes.DirectorID)
	database.SetIf(patch, colGenreID, changes.GenreID)
	database.SetIf(patch, colReleaseYear, changes.ReleaseYear)
	database.SetIf(patch, colRating, changes.Rating)
	database.SetIf(patch, colDescription, changes.Description)
	database.SetIf(patch, colLanguage, changes.Language)
	database.SetIf(patch, colImageURL, changes.ImageURL)

	if patch.Empty() {
		return nil
	}

	res, err := r.exec.Execute(ctx, patch.Update(sq.Eq{colID: id}), database.ModeNone)
	if err != nil {
		return err
	}
	if res.RowsAffected == 0 {
		return model.ErrMovieNotFound
	}
	return nil
}

func (r *postgresMovieRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.exec.Execute(ctx, database.Builder.Delete(table).Where(sq.Eq{colID: id}), database.ModeNone)
	if err != nil {
		return err
	}
	if res.RowsAffected == 0 {
		return model.ErrMovieNotFound
	}
	return nil
}
