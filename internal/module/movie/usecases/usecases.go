package usecases

import (
	"cinema-web/internal/module/movie/models/entity"
	"cinema-web/internal/module/movie/models/request"
	"cinema-web/internal/module/movie/repositories"
	"cinema-web/internal/pkg/api"
	"cinema-web/internal/pkg/errors"
	"cinema-web/internal/pkg/log"
	"context"
	"fmt"
)

type usecase struct {
	repo repositories.Repositories
	log  log.Logger
}

type Usecase interface {
	ListCatalog(ctx context.Context) ([]entity.Movie, error)
	GetMovie(ctx context.Context, token string, id int64) (entity.Movie, error)
	ListMovies(ctx context.Context, token string) (entity.MovieList, error)
	SaveMovie(ctx context.Context, token string, form *request.MovieForm) (entity.Movie, error)
	DeleteMovie(ctx context.Context, token string, id int64) error
}

func New(repo repositories.Repositories, log log.Logger) Usecase {
	return &usecase{
		repo: repo,
		log:  log,
	}
}

// ListCatalog implements Usecase.
func (u *usecase) ListCatalog(ctx context.Context) ([]entity.Movie, error) {
	movies, err := u.repo.FindAllMovies(ctx, "")
	if err != nil {
		u.log.Error(ctx, "error fetch movies", err)
		return nil, errors.BadGateway("error fetch movies")
	}

	for i := range movies {
		u.normalize(&movies[i])
	}
	return movies, nil
}

// GetMovie implements Usecase.
func (u *usecase) GetMovie(ctx context.Context, token string, id int64) (entity.Movie, error) {
	movie, err := u.repo.FindMovieByID(ctx, token, id)
	if err != nil {
		if api.IsNotFound(err) {
			return entity.Movie{}, errors.NotFound(fmt.Sprintf("movie %d not found", id))
		}
		u.log.Error(ctx, "error fetch movie", err)
		return entity.Movie{}, errors.BadGateway("error fetch movie")
	}

	u.normalize(&movie)
	return movie, nil
}

// ListMovies implements Usecase.
func (u *usecase) ListMovies(ctx context.Context, token string) (entity.MovieList, error) {
	movies, err := u.repo.FindAllMovies(ctx, token)
	if err != nil {
		u.log.Error(ctx, "error fetch movies", err)
		if api.IsUnauthorized(err) {
			return nil, errors.UnauthorizedError("session expired")
		}
		return nil, errors.BadGateway("error fetch movies")
	}

	for i := range movies {
		u.normalize(&movies[i])
	}
	return entity.MovieList(movies), nil
}

// SaveMovie implements Usecase. Creates when form.ID is 0, updates otherwise.
// A form with an empty showtime is rejected before any backend call.
func (u *usecase) SaveMovie(ctx context.Context, token string, form *request.MovieForm) (entity.Movie, error) {
	if form.HasEmptyShowtime() {
		return entity.Movie{}, errors.BadRequest("Please fill in every showtime before saving.")
	}

	var (
		movie entity.Movie
		err   error
	)
	if form.IsEdit() {
		movie, err = u.repo.UpdateMovie(ctx, token, form)
	} else {
		movie, err = u.repo.CreateMovie(ctx, token, form)
	}
	if err != nil {
		u.log.Error(ctx, "error save movie", err)
		if apiErr, ok := api.AsAPIError(err); ok && apiErr.StatusCode == 400 {
			if detail := apiErr.Detail(); detail != "" {
				return entity.Movie{}, errors.BadRequest(detail)
			}
			return entity.Movie{}, errors.BadRequest("The backend rejected the movie, check the fields.")
		}
		return entity.Movie{}, errors.BadGateway("error save movie")
	}

	u.normalize(&movie)
	return movie, nil
}

// DeleteMovie implements Usecase.
func (u *usecase) DeleteMovie(ctx context.Context, token string, id int64) error {
	if err := u.repo.DeleteMovie(ctx, token, id); err != nil {
		u.log.Error(ctx, "error delete movie", err)
		if api.IsNotFound(err) {
			return errors.NotFound(fmt.Sprintf("movie %d not found", id))
		}
		return errors.BadGateway("error delete movie")
	}
	return nil
}

func (u *usecase) normalize(m *entity.Movie) {
	m.Image = u.repo.ResolveURL(m.Image)
	m.CinemaListing = u.repo.ResolveURL(m.CinemaListing)
}
