package repositories

import (
	"cinema-web/internal/module/movie/models/entity"
	"cinema-web/internal/module/movie/models/request"
	"cinema-web/internal/pkg/api"
	"cinema-web/internal/pkg/log"
	"context"
	"fmt"
	"net/http"
	"strconv"
)

type repositories struct {
	api api.Fetcher
	log log.Logger
}

type Repositories interface {
	FindAllMovies(ctx context.Context, token string) ([]entity.Movie, error)
	FindMovieByID(ctx context.Context, token string, id int64) (entity.Movie, error)
	CreateMovie(ctx context.Context, token string, form *request.MovieForm) (entity.Movie, error)
	UpdateMovie(ctx context.Context, token string, form *request.MovieForm) (entity.Movie, error)
	DeleteMovie(ctx context.Context, token string, id int64) error
	// ResolveURL makes a backend media path absolute.
	ResolveURL(path string) string
}

func New(api api.Fetcher, log log.Logger) Repositories {
	return &repositories{
		api: api,
		log: log,
	}
}

// FindAllMovies implements Repositories.
func (r *repositories) FindAllMovies(ctx context.Context, token string) ([]entity.Movie, error) {
	var movies []entity.Movie
	if err := r.api.FetchJSON(ctx, api.Request{Path: "/movies/", Token: token}, &movies); err != nil {
		return nil, err
	}
	return movies, nil
}

// FindMovieByID implements Repositories.
func (r *repositories) FindMovieByID(ctx context.Context, token string, id int64) (entity.Movie, error) {
	var movie entity.Movie
	if err := r.api.FetchJSON(ctx, api.Request{Path: fmt.Sprintf("/movies/%d/", id), Token: token}, &movie); err != nil {
		return entity.Movie{}, err
	}
	return movie, nil
}

// CreateMovie implements Repositories.
func (r *repositories) CreateMovie(ctx context.Context, token string, form *request.MovieForm) (entity.Movie, error) {
	var movie entity.Movie
	err := r.api.FetchJSON(ctx, api.Request{
		Method:    http.MethodPost,
		Path:      "/movies/",
		Multipart: movieMultipart(form),
		Token:     token,
	}, &movie)
	if err != nil {
		return entity.Movie{}, err
	}
	return movie, nil
}

// UpdateMovie implements Repositories.
func (r *repositories) UpdateMovie(ctx context.Context, token string, form *request.MovieForm) (entity.Movie, error) {
	var movie entity.Movie
	err := r.api.FetchJSON(ctx, api.Request{
		Method:    http.MethodPut,
		Path:      fmt.Sprintf("/movies/%d/", form.ID),
		Multipart: movieMultipart(form),
		Token:     token,
	}, &movie)
	if err != nil {
		return entity.Movie{}, err
	}
	return movie, nil
}

// DeleteMovie implements Repositories.
func (r *repositories) DeleteMovie(ctx context.Context, token string, id int64) error {
	return r.api.FetchJSON(ctx, api.Request{
		Method: http.MethodDelete,
		Path:   fmt.Sprintf("/movies/%d/", id),
		Token:  token,
	}, nil)
}

// ResolveURL implements Repositories.
func (r *repositories) ResolveURL(path string) string {
	return r.api.ResolveURL(path)
}

func movieMultipart(form *request.MovieForm) *api.Multipart {
	m := &api.Multipart{}
	m.Add("title", form.Title)
	m.Add("description", form.Description)
	m.Add("release_date", form.ReleaseDate)
	m.Add("hall_name", form.HallName)
	m.Add("format", form.Format)
	m.Add("duration", strconv.Itoa(form.Duration))
	m.Add("language", form.Language)
	for i, s := range form.Showtimes {
		m.Add(request.ShowtimeKey(i), s)
	}

	if form.Image != nil {
		m.AddFile(api.File{Field: "image", Filename: form.Image.Filename, ContentType: form.Image.ContentType, Content: form.Image.Content})
	}
	if form.CinemaListing != nil {
		m.AddFile(api.File{Field: "cinema_listing", Filename: form.CinemaListing.Filename, ContentType: form.CinemaListing.ContentType, Content: form.CinemaListing.Content})
	}
	return m
}
