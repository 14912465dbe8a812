package repository

import (
	"context"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/shopspring/decimal"

	"movies-api/internal/domains/review/model"
	"movies-api/pkg/database"
)

const (
	table = "reviews"

	colID           = "id"
	colMovieID      = "movie_id"
	colReviewerName = "reviewer_name"
	colRating       = "rating"
	colComment      = "comment"
	colCreatedAt    = "created_at"
)

var columns = []string{colID, colMovieID, colReviewerName, colRating, colComment, colCreatedAt}

// =====================================================
// POSTGRES REPOSITORY IMPLEMENTATION
// =====================================================

type postgresReviewRepository struct {
	exec database.Executor
}

func NewPostgresReviewRepository(exec database.Executor) ReviewRepository {
	return &postgresReviewRepository{exec: exec}
}

// =====================================================
// CREATE
// =====================================================

func (r *postgresReviewRepository) Create(
	ctx context.Context,
	movieID int64,
	reviewerName string,
	rating decimal.Decimal,
	comment *string,
) (*model.Review, error) {
	stmt := database.Builder.
		Insert(table).
		Columns(colMovieID, colReviewerName, colRating, colComment).
		Values(movieID, reviewerName, rating, comment).
		Suffix("RETURNING " + strings.Join(columns, ", "))

	res, err := r.exec.Execute(ctx, stmt, database.ModeOne)
	if err != nil {
		return nil, err
	}
	return database.DecodeOne[model.Review](res.One())
}

// =====================================================
// READ
// =====================================================

func (r *postgresReviewRepository) GetByID(ctx context.Context, id int64) (*model.Review, error) {
	stmt := database.Builder.
		Select(columns...).
		From(table).
		Where(sq.Eq{colID: id})

	res, err := r.exec.Execute(ctx, stmt, database.ModeOne)
	if err != nil {
		return nil, err
	}
	rec := res.One()
	if rec == nil {
		return nil, model.ErrReviewNotFound
	}
	return database.DecodeOne[model.Review](rec)
}

func (r *postgresReviewRepository) ListByMovie(ctx context.Context, movieID int64) ([]model.Review, error) {
	stmt := database.Builder.
		Select(columns...).
		From(table).
		Where(sq.Eq{colMovieID: movieID}).
		OrderBy(colCreatedAt+" DESC", colID+" DESC")

	res, err := r.exec.Execute(ctx, stmt, database.ModeMany)
	if err != nil {
		return nil, err
	}
	return database.DecodeAll[model.Review](res.Rows)
}

// =====================================================
// UPDATE / DELETE
// =====================================================

func (r *postgresReviewRepository) Update(ctx context.Context, id int64, changes model.Changes) error {
	patch := database.NewPatch(table)
	database.SetIf(patch, colReviewerName, changes.ReviewerName)
	database.SetIf(patch, colRating, changes.Rating)
	database.SetIf(patch, colComment, changes.Comment)

	if patch.Empty() {
		return nil
	}

	res, err := r.exec.Execute(ctx, patch.Update(sq.Eq{colID: id}), database.ModeNone)
	if err != nil {
		return err
	}
	if res.RowsAffected == 0 {
		return model.ErrReviewNotFound
	}
	return nil
}

func (r *postgresReviewRepository) Delete(ctx context.Context, id int64) error {
	stmt := database.Builder.Delete(table).Where(sq.Eq{colID: id})

	res, err := r.exec.Execute(ctx, stmt, database.ModeNone)
	if err != nil {
		return err
	}
	if res.RowsAffected == 0 {
		return model.ErrReviewNotFound
	}
	return nil
}
