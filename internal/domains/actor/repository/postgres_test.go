package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"movies-api/internal/domains/actor/model"
	"movies-api/pkg/database/dbtest"
)

var created = time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

func TestListWithoutGenre(t *testing.T) {
	exec, mock := dbtest.New(t)
	repo := NewPostgresActorRepository(exec)

	dbtest.ExpectQuery(mock,
		regexp.QuoteMeta("SELECT a.id, a.name, a.bio, a.birth_year, a.image_url, a.created_at FROM actors a ORDER BY a.name, a.id LIMIT 100 OFFSET 0"),
		sqlmock.NewRows(columns).
			AddRow(int64(2), "Gary Sinise", nil, int64(1955), nil, created).
			AddRow(int64(1), "Tom Hanks", nil, int64(1956), nil, created))

	actors, err := repo.List(context.Background(), model.ListFilter{})

	require.NoError(t, err)
	require.Len(t, actors, 2)
	assert.Equal(t, "Gary Sinise", actors[0].Name)
	assert.Equal(t, 1956, *actors[1].BirthYear)
}

func TestListWithGenreIsDistinct(t *testing.T) {
	exec, mock := dbtest.New(t)
	repo := NewPostgresActorRepository(exec)

	genre := " drama "
	dbtest.ExpectQuery(mock,
		regexp.QuoteMeta("SELECT DISTINCT a.id")+".*"+
			regexp.QuoteMeta("JOIN genres g ON g.id = m.genre_id WHERE LOWER(g.name) = LOWER($1) ORDER BY a.name, a.id LIMIT 10 OFFSET 0"),
		sqlmock.NewRows(columns), "drama")

	actors, err := repo.List(context.Background(), model.ListFilter{Genre: &genre, Limit: 10})

	require.NoError(t, err)
	assert.NotNil(t, actors)
	assert.Empty(t, actors)
}

func TestFilmographyCarriesRole(t *testing.T) {
	exec, mock := dbtest.New(t)
	repo := NewPostgresActorRepository(exec)

	cols := []string{"id", "title", "director_id", "director", "genre_id", "genre",
		"release_year", "rating", "description", "language", "image_url", "created_at", "role"}
	dbtest.ExpectQuery(mock,
		regexp.QuoteMeta("JOIN movie_actors ma ON ma.movie_id = m.id WHERE ma.actor_id = $1 ORDER BY m.release_year DESC"),
		sqlmock.NewRows(cols).
			AddRow(int64(8), "Cast Away", int64(5), "Robert Zemeckis", int64(2), "Drama", int64(2000), "7.8", nil, nil, nil, created, "Chuck Noland").
			AddRow(int64(1), "Forrest Gump", int64(5), "Robert Zemeckis", int64(2), "Drama", int64(1994), "8.8", nil, nil, nil, created, "Forrest"),
		int64(1))

	credits, err := repo.Filmography(context.Background(), 1)

	require.NoError(t, err)
	require.Len(t, credits, 2)
	assert.Equal(t, "Cast Away", credits[0].Title)
	assert.Equal(t, "Chuck Noland", *credits[0].Role)
	assert.Equal(t, 1994, credits[1].ReleaseYear)
	assert.Equal(t, "Robert Zemeckis", credits[1].Director)
}

func TestAddToMovieUpserts(t *testing.T) {
	exec, mock := dbtest.New(t)
	repo := NewPostgresActorRepository(exec)

	role := "Forrest"
	dbtest.ExpectQuery(mock,
		regexp.QuoteMeta("INSERT INTO movie_actors")+".*"+regexp.QuoteMeta("ON CONFLICT (movie_id, actor_id) DO UPDATE SET role = EXCLUDED.role RETURNING id"),
		sqlmock.NewRows([]string{"id"}).AddRow(int64(31)),
		int64(1), int64(4), "Forrest")

	id, err := repo.AddToMovie(context.Background(), 4, 1, &role)

	require.NoError(t, err)
	assert.Equal(t, int64(31), id)
}

func TestRemoveFromMovieMissing(t *testing.T) {
	exec, mock := dbtest.New(t)
	repo := NewPostgresActorRepository(exec)

	dbtest.ExpectExec(mock, regexp.QuoteMeta("DELETE FROM movie_actors WHERE actor_id = $1 AND movie_id = $2"), 0,
		int64(4), int64(1))

	assert.ErrorIs(t, repo.RemoveFromMovie(context.Background(), 4, 1), model.ErrCastEntryNotFound)
}

func TestUpdatePartial(t *testing.T) {
	exec, mock := dbtest.New(t)
	repo := NewPostgresActorRepository(exec)

	bio := "Two-time Oscar winner"
	dbtest.ExpectExec(mock, regexp.QuoteMeta("UPDATE actors SET bio = $1 WHERE id = $2"), 1, bio, int64(4))

	assert.NoError(t, repo.Update(context.Background(), 4, model.Changes{Bio: &bio}))
	assert.NoError(t, repo.Update(context.Background(), 4, model.Changes{}))
}

func TestDeleteMissing(t *testing.T) {
	exec, mock := dbtest.New(t)
	repo := NewPostgresActorRepository(exec)

	dbtest.ExpectExec(mock, regexp.QuoteMeta("DELETE FROM actors WHERE id = $1"), 0, int64(9))

	assert.ErrorIs(t, repo.Delete(context.Background(), 9), model.ErrActorNotFound)
}
