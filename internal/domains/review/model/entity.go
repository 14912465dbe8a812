package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Review is one row of the reviews table.
type Review struct {
	ID           int64           `db:"id" json:"id"`
	MovieID      int64           `db:"movie_id" json:"movie_id"`
	ReviewerName string          `db:"reviewer_name" json:"reviewer_name"`
	Rating       decimal.Decimal `db:"rating" json:"rating"`
	Comment      *string         `db:"comment" json:"comment"`
	CreatedAt    time.Time       `db:"created_at" json:"created_at"`
}

// Changes is the set of columns a partial update touches. nil means untouched.
type Changes struct {
	ReviewerName *string
	Rating       *decimal.Decimal
	Comment      *string
}
