package usecases_test

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"cinema-web/internal/module/movie/mocks"
	"cinema-web/internal/module/movie/models/entity"
	"cinema-web/internal/module/movie/models/request"
	"cinema-web/internal/module/movie/usecases"
	"cinema-web/internal/pkg/api"
	"cinema-web/internal/pkg/errors"
	log_internal "cinema-web/internal/pkg/log"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

var (
	uc   usecases.Usecase
	repo *mocks.Repositories
	ctx  context.Context
)

func resolve(path string) string {
	if path == "" || strings.HasPrefix(path, "http") {
		return path
	}
	return "http://backend" + path
}

func setup() {
	repo = &mocks.Repositories{}
	repo.On("ResolveURL", mock.Anything).Return(resolve).Maybe()
	uc = usecases.New(repo, log_internal.New(log_internal.Setup()))
	ctx = context.Background()
}

func teardown() {
	repo = nil
	uc = nil
}

func TestListCatalog(t *testing.T) {
	t.Run("success normalizes image urls", func(t *testing.T) {
		setup()
		defer teardown()

		repo.On("FindAllMovies", mock.Anything, "").Return([]entity.Movie{
			{ID: 1, Image: "/media/a.png", CinemaListing: "https://cdn/b.png"},
			{ID: 2},
		}, nil)

		movies, err := uc.ListCatalog(ctx)
		assert.NoError(t, err)
		assert.Equal(t, "http://backend/media/a.png", movies[0].Image)
		assert.Equal(t, "https://cdn/b.png", movies[0].CinemaListing)
		assert.Equal(t, "", movies[1].Image)
	})

	t.Run("backend down", func(t *testing.T) {
		setup()
		defer teardown()

		repo.On("FindAllMovies", mock.Anything, "").Return(nil, assert.AnError)

		movies, err := uc.ListCatalog(ctx)
		assert.Nil(t, movies)
		assert.Equal(t, http.StatusBadGateway, errors.Code(err))
	})
}

func TestGetMovie(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		setup()
		defer teardown()

		repo.On("FindMovieByID", mock.Anything, "", int64(9)).Return(entity.Movie{}, &api.APIError{StatusCode: http.StatusNotFound})

		_, err := uc.GetMovie(ctx, "", 9)
		assert.Equal(t, http.StatusNotFound, errors.Code(err))
	})
}

func TestSaveMovie(t *testing.T) {
	t.Run("empty showtime makes no call", func(t *testing.T) {
		setup()
		defer teardown()

		form := &request.MovieForm{Title: "Dune", Showtimes: []string{"2024-09-10T20:00", " "}}
		_, err := uc.SaveMovie(ctx, "tok", form)
		assert.Equal(t, http.StatusBadRequest, errors.Code(err))
		repo.AssertNotCalled(t, "CreateMovie", mock.Anything, mock.Anything, mock.Anything)
		repo.AssertNotCalled(t, "UpdateMovie", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("create", func(t *testing.T) {
		setup()
		defer teardown()

		form := &request.MovieForm{Title: "Dune", Showtimes: []string{"2024-09-10T20:00"}}
		repo.On("CreateMovie", mock.Anything, "tok", form).Return(entity.Movie{ID: 5, Title: "Dune"}, nil).Once()

		movie, err := uc.SaveMovie(ctx, "tok", form)
		assert.NoError(t, err)
		assert.Equal(t, int64(5), movie.ID)
		repo.AssertNotCalled(t, "UpdateMovie", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("update", func(t *testing.T) {
		setup()
		defer teardown()

		form := &request.MovieForm{ID: 5, Title: "Dune 2", Showtimes: []string{"2024-09-10T20:00"}}
		repo.On("UpdateMovie", mock.Anything, "tok", form).Return(entity.Movie{ID: 5, Title: "Dune 2"}, nil).Once()

		movie, err := uc.SaveMovie(ctx, "tok", form)
		assert.NoError(t, err)
		assert.Equal(t, "Dune 2", movie.Title)
	})

	t.Run("backend validation error", func(t *testing.T) {
		setup()
		defer teardown()

		form := &request.MovieForm{Title: "Dune"}
		repo.On("CreateMovie", mock.Anything, "tok", form).Return(entity.Movie{}, &api.APIError{
			StatusCode: http.StatusBadRequest,
			Body:       `{"detail":"release_date is invalid"}`,
		})

		_, err := uc.SaveMovie(ctx, "tok", form)
		assert.Equal(t, errors.BadRequest("release_date is invalid"), err)
	})
}

func TestDeleteMovie(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		setup()
		defer teardown()

		repo.On("DeleteMovie", mock.Anything, "tok", int64(2)).Return(nil).Once()
		assert.NoError(t, uc.DeleteMovie(ctx, "tok", 2))
		repo.AssertNumberOfCalls(t, "DeleteMovie", 1)
	})

	t.Run("failure", func(t *testing.T) {
		setup()
		defer teardown()

		repo.On("DeleteMovie", mock.Anything, "tok", int64(2)).Return(assert.AnError)
		assert.Equal(t, http.StatusBadGateway, errors.Code(uc.DeleteMovie(ctx, "tok", 2)))
	})
}
