package service

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"movies-api/internal/domains/movie/model"
	reviewModel "movies-api/internal/domains/review/model"
	"movies-api/internal/shared/apperror"
	"movies-api/pkg/database"
)

// =====================================================
// MOCKS
// =====================================================

type mockRepo struct{ mock.Mock }

func (m *mockRepo) List(ctx context.Context, f model.ListFilter) ([]model.Movie, error) {
	args := m.Called(ctx, f)
	r, _ := args.Get(0).([]model.Movie)
	return r, args.Error(1)
}

func (m *mockRepo) Search(ctx context.Context, term string) ([]model.Movie, error) {
	args := m.Called(ctx, term)
	r, _ := args.Get(0).([]model.Movie)
	return r, args.Error(1)
}

func (m *mockRepo) GetByID(ctx context.Context, id int64) (*model.Movie, error) {
	args := m.Called(ctx, id)
	r, _ := args.Get(0).(*model.Movie)
	return r, args.Error(1)
}

func (m *mockRepo) Exists(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *mockRepo) ListCast(ctx context.Context, movieID int64) ([]model.CastMember, error) {
	args := m.Called(ctx, movieID)
	r, _ := args.Get(0).([]model.CastMember)
	return r, args.Error(1)
}

func (m *mockRepo) ListByDirector(ctx context.Context, directorID int64) ([]model.Movie, error) {
	args := m.Called(ctx, directorID)
	r, _ := args.Get(0).([]model.Movie)
	return r, args.Error(1)
}

func (m *mockRepo) ListByGenre(ctx context.Context, genreID int64) ([]model.Movie, error) {
	args := m.Called(ctx, genreID)
	r, _ := args.Get(0).([]model.Movie)
	return r, args.Error(1)
}

func (m *mockRepo) Create(ctx context.Context, movie model.NewMovie) (int64, error) {
	args := m.Called(ctx, movie)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockRepo) Update(ctx context.Context, id int64, changes model.Changes) error {
	return m.Called(ctx, id, changes).Error(0)
}

func (m *mockRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type mockRefs struct{ mock.Mock }

func (m *mockRefs) GetOrCreate(ctx context.Context, lookup database.Lookup, value string) (int64, error) {
	args := m.Called(ctx, lookup, value)
	return args.Get(0).(int64), args.Error(1)
}

type mockReviews struct{ mock.Mock }

func (m *mockReviews) ListByMovie(ctx context.Context, movieID int64) ([]reviewModel.Review, error) {
	args := m.Called(ctx, movieID)
	r, _ := args.Get(0).([]reviewModel.Review)
	return r, args.Error(1)
}

type fixture struct {
	repo    *mockRepo
	refs    *mockRefs
	reviews *mockReviews
	svc     ServiceInterface
}

func newFixture() *fixture {
	f := &fixture{repo: new(mockRepo), refs: new(mockRefs), reviews: new(mockReviews)}
	f.svc = NewMovieService(f.repo, f.refs, f.reviews)
	return f
}

// expectDetail registers the three reads GetMovie performs.
func (f *fixture) expectDetail(movie *model.Movie) {
	f.repo.On("GetByID", mock.Anything, movie.ID).Return(movie, nil)
	f.repo.On("ListCast", mock.Anything, movie.ID).Return([]model.CastMember{}, nil)
	f.reviews.On("ListByMovie", mock.Anything, movie.ID).Return([]reviewModel.Review{}, nil)
}

func kindOf(t *testing.T, err error) apperror.Kind {
	t.Helper()
	appErr, ok := apperror.As(err)
	require.True(t, ok, "expected *apperror.Error, got %v", err)
	return appErr.Kind
}

func ptr[T any](v T) *T { return &v }

// =====================================================
// TESTS
// =====================================================

func TestGetMovieAssemblesCastAndReviews(t *testing.T) {
	f := newFixture()
	f.repo.On("GetByID", mock.Anything, int64(1)).Return(&model.Movie{ID: 1, Title: "Forrest Gump"}, nil)
	f.repo.On("ListCast", mock.Anything, int64(1)).
		Return([]model.CastMember{{ID: 4, Name: "Tom Hanks", Role: ptr("Forrest")}}, nil)
	f.reviews.On("ListByMovie", mock.Anything, int64(1)).
		Return([]reviewModel.Review{{ID: 9, MovieID: 1, ReviewerName: "Alice"}}, nil)

	detail, err := f.svc.GetMovie(context.Background(), 1)

	require.NoError(t, err)
	assert.Equal(t, "Forrest Gump", detail.Title)
	require.Len(t, detail.Cast, 1)
	assert.Equal(t, "Tom Hanks", detail.Cast[0].Name)
	require.Len(t, detail.Reviews, 1)
	assert.Equal(t, "Alice", detail.Reviews[0].ReviewerName)
}

func TestGetMovieNotFoundSkipsChildren(t *testing.T) {
	f := newFixture()
	f.repo.On("GetByID", mock.Anything, int64(999999)).Return(nil, model.ErrMovieNotFound)

	_, err := f.svc.GetMovie(context.Background(), 999999)

	assert.Equal(t, apperror.KindNotFound, kindOf(t, err))
	f.repo.AssertNotCalled(t, "ListCast", mock.Anything, mock.Anything)
	f.reviews.AssertNotCalled(t, "ListByMovie", mock.Anything, mock.Anything)
}

func TestCreateMovieResolvesDirectorThenGenre(t *testing.T) {
	f := newFixture()
	req := model.CreateMovieRequest{
		Title: "Forrest Gump", DirectorName: "Robert Zemeckis", GenreName: "Drama",
		ReleaseYear: 1994, Rating: ptr(8.8),
	}

	f.refs.On("GetOrCreate", mock.Anything, database.Directors, "Robert Zemeckis").Return(int64(5), nil).Once()
	f.refs.On("GetOrCreate", mock.Anything, database.Genres, "Drama").Return(int64(2), nil).Once()
	f.repo.On("Create", mock.Anything, mock.MatchedBy(func(m model.NewMovie) bool {
		return m.DirectorID == 5 && m.GenreID == 2 && m.Rating != nil && m.Rating.Equal(decimal.NewFromFloat(8.8))
	})).Return(int64(12), nil)
	f.expectDetail(&model.Movie{ID: 12, Title: "Forrest Gump", Director: "Robert Zemeckis", Genre: "Drama"})

	detail, err := f.svc.CreateMovie(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, int64(12), detail.ID)
	assert.Equal(t, "Robert Zemeckis", detail.Director)
	assert.Empty(t, detail.Cast)
	f.refs.AssertExpectations(t)
}

func TestCreateMovieResolverFailureInsertsNothing(t *testing.T) {
	f := newFixture()
	f.refs.On("GetOrCreate", mock.Anything, database.Directors, "X").
		Return(int64(0), &database.DatabaseError{Op: "query", Code: database.CodeUniqueViolation, Err: &pgconn.PgError{}})

	_, err := f.svc.CreateMovie(context.Background(), model.CreateMovieRequest{Title: "T", DirectorName: "X", GenreName: "Y", ReleaseYear: 2000})

	assert.Equal(t, apperror.KindConflict, kindOf(t, err))
	f.repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestUpdateMovieMissingIs404(t *testing.T) {
	f := newFixture()
	f.repo.On("Exists", mock.Anything, int64(7)).Return(false, nil)

	_, err := f.svc.UpdateMovie(context.Background(), 7, model.UpdateMovieRequest{Title: ptr("x")})

	assert.Equal(t, apperror.KindNotFound, kindOf(t, err))
	f.refs.AssertNotCalled(t, "GetOrCreate", mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateMovieResolvesOnlyGivenNames(t *testing.T) {
	f := newFixture()
	f.repo.On("Exists", mock.Anything, int64(1)).Return(true, nil)
	f.refs.On("GetOrCreate", mock.Anything, database.Genres, "Comedy").Return(int64(3), nil)
	f.repo.On("Update", mock.Anything, int64(1), model.Changes{GenreID: ptr(int64(3)), ReleaseYear: ptr(1995)}).Return(nil)
	f.expectDetail(&model.Movie{ID: 1, Genre: "Comedy", ReleaseYear: 1995})

	detail, err := f.svc.UpdateMovie(context.Background(), 1, model.UpdateMovieRequest{
		GenreName: ptr("Comedy"), ReleaseYear: ptr(1995),
	})

	require.NoError(t, err)
	assert.Equal(t, "Comedy", detail.Genre)
	f.refs.AssertNotCalled(t, "GetOrCreate", mock.Anything, database.Directors, mock.Anything)
}

func TestUpdateMovieWithoutFieldsReturnsCurrentMovie(t *testing.T) {
	f := newFixture()
	f.repo.On("Exists", mock.Anything, int64(1)).Return(true, nil)
	f.repo.On("Update", mock.Anything, int64(1), model.Changes{}).Return(nil)
	f.expectDetail(&model.Movie{ID: 1, Title: "Forrest Gump"})

	detail, err := f.svc.UpdateMovie(context.Background(), 1, model.UpdateMovieRequest{})

	require.NoError(t, err)
	assert.Equal(t, "Forrest Gump", detail.Title)
}

func TestDeleteMovie(t *testing.T) {
	f := newFixture()
	f.repo.On("Delete", mock.Anything, int64(1)).Return(nil)
	f.repo.On("Delete", mock.Anything, int64(999999)).Return(model.ErrMovieNotFound)
	f.repo.On("Delete", mock.Anything, int64(3)).Return(errors.New("connection reset"))

	assert.NoError(t, f.svc.DeleteMovie(context.Background(), 1))
	assert.Equal(t, apperror.KindNotFound, kindOf(t, f.svc.DeleteMovie(context.Background(), 999999)))
	assert.Equal(t, apperror.KindInternal, kindOf(t, f.svc.DeleteMovie(context.Background(), 3)))
}

func TestSearchMovies(t *testing.T) {
	f := newFixture()
	f.repo.On("Search", mock.Anything, "gump").Return([]model.Movie{{ID: 1, Title: "Forrest Gump"}}, nil)

	res, err := f.svc.SearchMovies(context.Background(), "  gump ")

	require.NoError(t, err)
	assert.Equal(t, 1, res.Count)
}

func TestSearchMoviesBlankTermIsBadRequest(t *testing.T) {
	f := newFixture()

	_, err := f.svc.SearchMovies(context.Background(), "   ")

	assert.Equal(t, apperror.KindBadRequest, kindOf(t, err))
	f.repo.AssertNotCalled(t, "Search", mock.Anything, mock.Anything)
}

func TestListMoviesCountsPage(t *testing.T) {
	f := newFixture()
	filter := model.ListFilter{Genre: ptr("Drama"), Limit: 2}
	f.repo.On("List", mock.Anything, filter).Return([]model.Movie{{ID: 2}, {ID: 1}}, nil)

	res, err := f.svc.ListMovies(context.Background(), filter)

	require.NoError(t, err)
	assert.Equal(t, 2, res.Count)
	assert.Equal(t, int64(2), res.Movies[0].ID)
}
