package repositories

import (
	"cinema-web/internal/module/booking/models/entity"
	"cinema-web/internal/module/booking/models/request"
	"cinema-web/internal/module/booking/models/response"
	movieEntity "cinema-web/internal/module/movie/models/entity"
	"cinema-web/internal/pkg/api"
	"cinema-web/internal/pkg/log"
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

type repositories struct {
	api api.Fetcher
	log log.Logger
}

type Repositories interface {
	FindSeatsByMovieID(ctx context.Context, movieID int64) ([]entity.Seat, error)
	FindMovieByID(ctx context.Context, movieID int64) (movieEntity.Movie, error)
	CreateReservation(ctx context.Context, req *request.Reservation) error
	CreatePaymentPreference(ctx context.Context, req *request.Payment) (response.Preference, error)
}

func New(api api.Fetcher, log log.Logger) Repositories {
	return &repositories{
		api: api,
		log: log,
	}
}

// FindSeatsByMovieID implements Repositories.
func (r *repositories) FindSeatsByMovieID(ctx context.Context, movieID int64) ([]entity.Seat, error) {
	var seats []entity.Seat
	err := r.api.FetchJSON(ctx, api.Request{
		Path:  "/seats/",
		Query: url.Values{"movie_id": {strconv.FormatInt(movieID, 10)}},
	}, &seats)
	if err != nil {
		return nil, err
	}
	return seats, nil
}

// FindMovieByID implements Repositories.
func (r *repositories) FindMovieByID(ctx context.Context, movieID int64) (movieEntity.Movie, error) {
	var movie movieEntity.Movie
	if err := r.api.FetchJSON(ctx, api.Request{Path: fmt.Sprintf("/movies/%d/", movieID)}, &movie); err != nil {
		return movieEntity.Movie{}, err
	}
	return movie, nil
}

// CreateReservation implements Repositories.
func (r *repositories) CreateReservation(ctx context.Context, req *request.Reservation) error {
	return r.api.FetchJSON(ctx, api.Request{
		Method: http.MethodPost,
		Path:   "/reservations/",
		Body:   req,
	}, nil)
}

// CreatePaymentPreference implements Repositories.
func (r *repositories) CreatePaymentPreference(ctx context.Context, req *request.Payment) (response.Preference, error) {
	var pref response.Preference
	err := r.api.FetchJSON(ctx, api.Request{
		Method: http.MethodPost,
		Path:   "/create-payment/",
		Body:   req,
	}, &pref)
	if err != nil {
		return response.Preference{}, err
	}
	return pref, nil
}
