package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"movies-api/internal/domains/director/model"
	"movies-api/internal/domains/director/repository"
	movieModel "movies-api/internal/domains/movie/model"
	"movies-api/internal/shared/apperror"
	"movies-api/pkg/database"
)

var (
	_ repository.DirectorRepository = (*mockRepo)(nil)
	_ Filmography                   = (*mockMovies)(nil)
)

type mockRepo struct{ mock.Mock }

func (m *mockRepo) List(ctx context.Context, page database.Page) ([]model.Director, error) {
	args := m.Called(ctx, page)
	r, _ := args.Get(0).([]model.Director)
	return r, args.Error(1)
}

func (m *mockRepo) GetByID(ctx context.Context, id int64) (*model.Director, error) {
	args := m.Called(ctx, id)
	r, _ := args.Get(0).(*model.Director)
	return r, args.Error(1)
}

type mockMovies struct{ mock.Mock }

func (m *mockMovies) ListByDirector(ctx context.Context, directorID int64) ([]movieModel.Movie, error) {
	args := m.Called(ctx, directorID)
	r, _ := args.Get(0).([]movieModel.Movie)
	return r, args.Error(1)
}

func TestGetDirectorWithFilmography(t *testing.T) {
	repo, movies := new(mockRepo), new(mockMovies)
	svc := NewDirectorService(repo, movies)

	repo.On("GetByID", mock.Anything, int64(5)).Return(&model.Director{ID: 5, Name: "Robert Zemeckis"}, nil)
	movies.On("ListByDirector", mock.Anything, int64(5)).Return([]movieModel.Movie{
		{ID: 8, Title: "Cast Away"}, {ID: 1, Title: "Forrest Gump"},
	}, nil)

	detail, err := svc.GetDirector(context.Background(), 5)

	require.NoError(t, err)
	assert.Equal(t, "Robert Zemeckis", detail.Name)
	assert.Equal(t, 2, detail.MovieCount)
	assert.Equal(t, "Cast Away", detail.Movies[0].Title)
}

func TestGetDirectorMissing(t *testing.T) {
	repo, movies := new(mockRepo), new(mockMovies)
	svc := NewDirectorService(repo, movies)
	repo.On("GetByID", mock.Anything, int64(9)).Return(nil, model.ErrDirectorNotFound)

	_, err := svc.GetDirector(context.Background(), 9)

	appErr, ok := apperror.As(err)
	require.True(t, ok)
	assert.Equal(t, model.ErrCodeDirectorNotFound, appErr.Code)
	movies.AssertNotCalled(t, "ListByDirector", mock.Anything, mock.Anything)
}

func TestListDirectors(t *testing.T) {
	repo := new(mockRepo)
	svc := NewDirectorService(repo, new(mockMovies))
	page := database.NewPage(0, 0)
	repo.On("List", mock.Anything, page).Return([]model.Director{}, nil)

	res, err := svc.ListDirectors(context.Background(), page)

	require.NoError(t, err)
	assert.NotNil(t, res.Directors)
	assert.Zero(t, res.Count)
}
