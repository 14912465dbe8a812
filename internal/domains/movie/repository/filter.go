package repository

import (
	"strings"

	sq "github.com/Masterminds/squirrel"

	"movies-api/internal/domains/movie/model"
	"movies-api/pkg/database"
)

// SelectColumns is the column list every movie read returns.
var SelectColumns = []string{
	"m.id",
	"m.title",
	"m.director_id",
	"d.name AS director",
	"m.genre_id",
	"g.name AS genre",
	"m.release_year",
	"m.rating",
	"m.description",
	"m.language",
	"m.image_url",
	"m.created_at",
}

const (
	joinDirector    = "directors d ON d.id = m.director_id"
	joinGenre       = "genres g ON g.id = m.genre_id"
	joinMovieActors = "movie_actors ma ON ma.movie_id = m.id"
	joinActors      = "actors a ON a.id = ma.actor_id"

	orderNewest = "m.created_at DESC"
	orderID     = "m.id DESC"
)

// SelectMovies starts a movie read with the director and genre joined.
// Extra columns are appended after SelectColumns.
func SelectMovies(extra ...string) sq.SelectBuilder {
	cols := append(append([]string{}, SelectColumns...), extra...)
	return database.Builder.
		Select(cols...).
		From("movies m").
		Join(joinDirector).
		Join(joinGenre)
}

// listQuery builds the filtered list. Only the filters that are set end up
// in the WHERE clause; string filters compare case-insensitively for
// equality. LIMIT/OFFSET are always last.
func listQuery(f model.ListFilter) sq.SelectBuilder {
	b := SelectMovies()

	if f.Actor != nil {
		b = b.Distinct().Join(joinMovieActors).Join(joinActors)
	}

	where := sq.And{}
	if f.Genre != nil {
		where = append(where, equalFold("g.name", *f.Genre))
	}
	if f.Director != nil {
		where = append(where, equalFold("d.name", *f.Director))
	}
	if f.Actor != nil {
		where = append(where, equalFold("a.name", *f.Actor))
	}
	if f.Year != nil {
		where = append(where, sq.Eq{"m.release_year": *f.Year})
	}
	if len(where) > 0 {
		b = b.Where(where)
	}

	b = b.OrderBy(orderNewest, orderID)
	return database.NewPage(f.Limit, f.Offset).Apply(b)
}

// searchQuery matches term as a case-insensitive substring of the title,
// director name or description. term must already be trimmed and non-empty.
func searchQuery(term string) sq.SelectBuilder {
	pattern := database.ContainsPattern(term)
	return SelectMovies().
		Where(sq.Or{
			sq.ILike{"m.title": pattern},
			sq.ILike{"d.name": pattern},
			sq.ILike{"m.description": pattern},
		}).
		OrderBy(orderNewest, orderID)
}

func equalFold(column, value string) sq.Sqlizer {
	return sq.Expr("LOWER("+column+") = LOWER(?)", strings.TrimSpace(value))
}
