package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"

	"movies-api/internal/domains/genre/model"
	"movies-api/pkg/database"
)

const table = "genres"

var columns = []string{"id", "name", "description", "created_at"}

type postgresGenreRepository struct {
	exec database.Executor
}

func NewPostgresGenreRepository(exec database.Executor) GenreRepository {
	return &postgresGenreRepository{exec: exec}
}

func (r *postgresGenreRepository) List(ctx context.Context, page database.Page) ([]model.Genre, error) {
	stmt := page.Apply(database.Builder.Select(columns...).From(table).OrderBy("name", "id"))

	res, err := r.exec.Execute(ctx, stmt, database.ModeMany)
	if err != nil {
		return nil, err
	}
	return database.DecodeAll[model.Genre](res.Rows)
}

func (r *postgresGenreRepository) GetByID(ctx context.Context, id int64) (*model.Genre, error) {
	stmt := database.Builder.Select(columns...).From(table).Where(sq.Eq{"id": id})

	res, err := r.exec.Execute(ctx, stmt, database.ModeOne)
	if err != nil {
		return nil, err
	}
	rec := res.One()
	if rec == nil {
		return nil, model.ErrGenreNotFound
	}
	return database.DecodeOne[model.Genre](rec)
}
