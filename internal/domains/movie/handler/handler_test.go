package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"movies-api/internal/domains/movie/model"
	reviewModel "movies-api/internal/domains/review/model"
)

type mockService struct{ mock.Mock }

func (m *mockService) ListMovies(ctx context.Context, f model.ListFilter) (*model.ListMoviesResponse, error) {
	args := m.Called(ctx, f)
	r, _ := args.Get(0).(*model.ListMoviesResponse)
	return r, args.Error(1)
}

func (m *mockService) GetMovie(ctx context.Context, id int64) (*model.MovieDetail, error) {
	args := m.Called(ctx, id)
	r, _ := args.Get(0).(*model.MovieDetail)
	return r, args.Error(1)
}

func (m *mockService) CreateMovie(ctx context.Context, req model.CreateMovieRequest) (*model.MovieDetail, error) {
	args := m.Called(ctx, req)
	r, _ := args.Get(0).(*model.MovieDetail)
	return r, args.Error(1)
}

func (m *mockService) UpdateMovie(ctx context.Context, id int64, req model.UpdateMovieRequest) (*model.MovieDetail, error) {
	args := m.Called(ctx, id, req)
	r, _ := args.Get(0).(*model.MovieDetail)
	return r, args.Error(1)
}

func (m *mockService) DeleteMovie(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockService) SearchMovies(ctx context.Context, term string) (*model.ListMoviesResponse, error) {
	args := m.Called(ctx, term)
	r, _ := args.Get(0).(*model.ListMoviesResponse)
	return r, args.Error(1)
}

func setupRouter(svc *mockService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewMovieHandler(svc)
	r := gin.New()
	r.GET("/api/movies", h.ListMovies)
	r.GET("/api/movies/search/:term", h.SearchMovies)
	r.GET("/api/movies/:id", h.GetMovie)
	r.POST("/api/movies", h.CreateMovie)
	r.PUT("/api/movies/:id", h.UpdateMovie)
	r.DELETE("/api/movies/:id", h.DeleteMovie)
	return r
}

func do(r *gin.Engine, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func errorCode(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	body := decode(t, w)
	assert.Equal(t, false, body["success"])
	return body["error"].(map[string]any)["code"].(string)
}

func TestCreateMovieReturnsResolvedNames(t *testing.T) {
	rating := decimal.RequireFromString("8.8")
	svc := new(mockService)
	svc.On("CreateMovie", mock.Anything, mock.MatchedBy(func(req model.CreateMovieRequest) bool {
		return req.Title == "Forrest Gump" && req.DirectorName == "Robert Zemeckis" && req.GenreName == "Drama"
	})).Return(&model.MovieDetail{
		Movie:   model.Movie{ID: 1, Title: "Forrest Gump", Director: "Robert Zemeckis", Genre: "Drama", ReleaseYear: 1994, Rating: &rating},
		Cast:    []model.CastMember{},
		Reviews: []reviewModel.Review{},
	}, nil)

	w := do(setupRouter(svc), http.MethodPost, "/api/movies",
		`{"title":"Forrest Gump","director_name":" Robert Zemeckis ","genre_name":"Drama","release_year":1994,"rating":8.8}`)

	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	body := decode(t, w)
	assert.Equal(t, "Robert Zemeckis", body["director"])
	assert.Equal(t, "Drama", body["genre"])
	assert.Equal(t, 8.8, body["rating"])
	assert.Equal(t, []any{}, body["cast"])
	assert.Equal(t, []any{}, body["reviews"])
}

func TestCreateMovieValidation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"missing title", `{"director_name":"D","genre_name":"G","release_year":2000}`},
		{"year too early", `{"title":"T","director_name":"D","genre_name":"G","release_year":1800}`},
		{"rating above ten", `{"title":"T","director_name":"D","genre_name":"G","release_year":2000,"rating":11}`},
		{"blank director", `{"title":"T","director_name":"   ","genre_name":"G","release_year":2000}`},
		{"malformed json", `{"title":`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(mockService)
			w := do(setupRouter(svc), http.MethodPost, "/api/movies", tt.body)

			assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
			assert.Equal(t, "VALIDATION_ERROR", errorCode(t, w))
			svc.AssertNotCalled(t, "CreateMovie", mock.Anything, mock.Anything)
		})
	}
}

func TestGetMovieNotFound(t *testing.T) {
	svc := new(mockService)
	svc.On("GetMovie", mock.Anything, int64(999999)).Return(nil, model.NewMovieNotFoundError())

	w := do(setupRouter(svc), http.MethodGet, "/api/movies/999999", "")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, model.ErrCodeMovieNotFound, errorCode(t, w))
}

func TestGetMovieInvalidID(t *testing.T) {
	svc := new(mockService)

	w := do(setupRouter(svc), http.MethodGet, "/api/movies/abc", "")

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	svc.AssertNotCalled(t, "GetMovie", mock.Anything, mock.Anything)
}

func TestListMoviesPassesFiltersAndPage(t *testing.T) {
	svc := new(mockService)
	svc.On("ListMovies", mock.Anything, mock.MatchedBy(func(f model.ListFilter) bool {
		return f.Genre != nil && *f.Genre == "Drama" &&
			f.Director == nil && f.Actor == nil &&
			f.Year != nil && *f.Year == 1994 &&
			f.Limit == 10 && f.Offset == 20
	})).Return(&model.ListMoviesResponse{Movies: []model.Movie{{ID: 1}}, Count: 1}, nil)

	w := do(setupRouter(svc), http.MethodGet, "/api/movies?genre=Drama&year=1994&limit=10&offset=20", "")

	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.EqualValues(t, 1, body["count"])
	assert.Len(t, body["movies"], 1)
}

func TestListMoviesDefaults(t *testing.T) {
	svc := new(mockService)
	svc.On("ListMovies", mock.Anything, model.ListFilter{Limit: 100}).
		Return(&model.ListMoviesResponse{Movies: []model.Movie{}, Count: 0}, nil)

	w := do(setupRouter(svc), http.MethodGet, "/api/movies", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []any{}, decode(t, w)["movies"])
}

func TestListMoviesRejectsBadPaging(t *testing.T) {
	for _, q := range []string{"limit=0", "limit=501", "offset=-1", "limit=abc", "year=199x"} {
		t.Run(q, func(t *testing.T) {
			svc := new(mockService)
			w := do(setupRouter(svc), http.MethodGet, "/api/movies?"+q, "")

			assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
			svc.AssertNotCalled(t, "ListMovies", mock.Anything, mock.Anything)
		})
	}
}

func TestUpdateMovie(t *testing.T) {
	svc := new(mockService)
	svc.On("UpdateMovie", mock.Anything, int64(1), mock.MatchedBy(func(req model.UpdateMovieRequest) bool {
		return req.Title != nil && *req.Title == "Cast Away" && req.GenreName == nil
	})).Return(&model.MovieDetail{Movie: model.Movie{ID: 1, Title: "Cast Away"}}, nil)

	w := do(setupRouter(svc), http.MethodPut, "/api/movies/1", `{"title":"Cast Away"}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Cast Away", decode(t, w)["title"])
}

func TestDeleteMovie(t *testing.T) {
	svc := new(mockService)
	svc.On("DeleteMovie", mock.Anything, int64(1)).Return(nil)

	w := do(setupRouter(svc), http.MethodDelete, "/api/movies/1", "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Movie deleted successfully", decode(t, w)["message"])
}

func TestSearchMoviesBlankTerm(t *testing.T) {
	svc := new(mockService)
	svc.On("SearchMovies", mock.Anything, " ").Return(nil, model.NewEmptySearchTermError())

	w := do(setupRouter(svc), http.MethodGet, "/api/movies/search/%20", "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, model.ErrCodeEmptySearchTerm, errorCode(t, w))
}
