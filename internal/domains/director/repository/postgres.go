package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"

	"movies-api/internal/domains/director/model"
	"movies-api/pkg/database"
)

const table = "directors"

var columns = []string{"id", "name", "bio", "birth_year", "created_at"}

type postgresDirectorRepository struct {
	exec database.Executor
}

func NewPostgresDirectorRepository(exec database.Executor) DirectorRepository {
	return &postgresDirectorRepository{exec: exec}
}

func (r *postgresDirectorRepository) List(ctx context.Context, page database.Page) ([]model.Director, error) {
	stmt := page.Apply(database.Builder.Select(columns...).From(table).OrderBy("name", "id"))

	res, err := r.exec.Execute(ctx, stmt, database.ModeMany)
	if err != nil {
		return nil, err
	}
	return database.DecodeAll[model.Director](res.Rows)
}

func (r *postgresDirectorRepository) GetByID(ctx context.Context, id int64) (*model.Director, error) {
	stmt := database.Builder.Select(columns...).From(table).Where(sq.Eq{"id": id})

	res, err := r.exec.Execute(ctx, stmt, database.ModeOne)
	if err != nil {
		return nil, err
	}
	rec := res.One()
	if rec == nil {
		return nil, model.ErrDirectorNotFound
	}
	return database.DecodeOne[model.Director](rec)
}
