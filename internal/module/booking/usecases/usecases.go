package usecases

import (
	"cinema-web/internal/module/booking/models/entity"
	"cinema-web/internal/module/booking/repositories"
	movieEntity "cinema-web/internal/module/movie/models/entity"
	"cinema-web/internal/pkg/api"
	"cinema-web/internal/pkg/errors"
	"cinema-web/internal/pkg/lock"
	"cinema-web/internal/pkg/log"
	"context"
	goerrors "errors"
	"fmt"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/message/router/middleware"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	TopicCheckoutStarted   = "checkout_started"
	TopicCheckoutAbandoned = "checkout_abandoned"
	TopicPoisoned          = "poisoned_queue"
)

type usecase struct {
	repo      repositories.Repositories
	log       log.Logger
	locker    lock.Locker
	publisher message.Publisher
	unitPrice float64
}

type Usecase interface {
	// OpenPicker loads seats and movie concurrently and carries over the
	// still selectable state of prev.
	OpenPicker(ctx context.Context, movieID int64, prev *entity.Picker) (*entity.Picker, movieEntity.Movie, error)
	// Reserve runs reservation then payment preference and returns the
	// payment redirect URL. Nothing is rolled back when the second step fails.
	Reserve(ctx context.Context, lockKey string, picker *entity.Picker) (string, error)
	ConsumeCheckoutEvent(ctx context.Context, event *entity.CheckoutEvent) error
}

func New(repo repositories.Repositories, log log.Logger, locker lock.Locker, publisher message.Publisher, unitPrice float64) Usecase {
	return &usecase{
		repo:      repo,
		log:       log,
		locker:    locker,
		publisher: publisher,
		unitPrice: unitPrice,
	}
}

// OpenPicker implements Usecase. A failed movie fetch only loses the
// showtime choices, a failed seat fetch fails the call.
func (u *usecase) OpenPicker(ctx context.Context, movieID int64, prev *entity.Picker) (*entity.Picker, movieEntity.Movie, error) {
	var (
		seats []entity.Seat
		movie movieEntity.Movie
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		seats, err = u.repo.FindSeatsByMovieID(gctx, movieID)
		if err != nil {
			return fmt.Errorf("error fetch seats: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		m, err := u.repo.FindMovieByID(gctx, movieID)
		if err != nil {
			u.log.Warn(gctx, "error fetch movie for seat page", err)
			return nil
		}
		movie = m
		return nil
	})

	if err := g.Wait(); err != nil {
		u.log.Error(ctx, "error open seat picker", err)
		if api.IsNotFound(err) {
			return nil, movie, errors.NotFound(fmt.Sprintf("movie %d not found", movieID))
		}
		return nil, movie, errors.BadGateway("error fetch seats")
	}

	picker := entity.NewPicker(movieID, seats, u.unitPrice)
	picker.Carry(prev)
	if picker.Format == "" {
		picker.Format = movie.Format
	}
	return picker, movie, nil
}

// Reserve implements Usecase.
func (u *usecase) Reserve(ctx context.Context, lockKey string, picker *entity.Picker) (string, error) {
	if len(picker.Selected) == 0 {
		return "", errors.BadRequest("No seats selected.")
	}
	if !picker.EmailValid() {
		return "", errors.BadRequest("A valid email is required.")
	}

	release, err := u.locker.Acquire(ctx, "checkout:"+lockKey)
	if err != nil {
		if goerrors.Is(err, lock.ErrLocked) {
			return "", errors.Conflict("A reservation is already in progress.")
		}
		u.log.Error(ctx, "error acquire checkout lock", err)
		return "", errors.InternalServerError("error acquire checkout lock")
	}
	defer func() {
		if err := release(context.WithoutCancel(ctx)); err != nil {
			u.log.Error(ctx, "error release checkout lock", err)
		}
	}()

	err = u.repo.CreateReservation(ctx, picker.ReservationRequest())
	if err != nil {
		u.log.Error(ctx, "error reserve seats", err)
		return "", reserveError(err)
	}

	pref, err := u.repo.CreatePaymentPreference(ctx, picker.PaymentRequest())
	if err == nil && pref.InitPoint == "" {
		err = goerrors.New("payment preference without init_point")
	}
	if err != nil {
		u.log.Error(ctx, "error create payment preference", err)
		u.publish(ctx, TopicCheckoutAbandoned, u.event(picker, entity.CheckoutAbandoned, "", err.Error()))
		return "", reserveError(err)
	}

	u.publish(ctx, TopicCheckoutStarted, u.event(picker, entity.CheckoutStarted, pref.ID, ""))
	picker.ClearSelection()

	return pref.InitPoint, nil
}

// ConsumeCheckoutEvent implements Usecase.
func (u *usecase) ConsumeCheckoutEvent(ctx context.Context, event *entity.CheckoutEvent) error {
	fields := []any{
		zap.Int64("movie_id", event.MovieID),
		zap.Int64s("seat_ids", event.SeatIDs),
		zap.String("email", event.Email),
		zap.Time("occurred_at", event.OccurredAt),
	}

	switch event.Status {
	case entity.CheckoutStarted:
		u.log.Info(ctx, "checkout started", append(fields, zap.String("preference_id", event.PreferenceID))...)
	case entity.CheckoutAbandoned:
		u.log.Warn(ctx, "checkout abandoned, seats stay reserved", append(fields, zap.String("reason", event.Reason))...)
	default:
		return fmt.Errorf("unknown checkout status %q", event.Status)
	}
	return nil
}

func (u *usecase) event(picker *entity.Picker, status, preferenceID, reason string) entity.CheckoutEvent {
	return entity.CheckoutEvent{
		Status:       status,
		MovieID:      picker.MovieID,
		SeatIDs:      picker.SelectedIDs(),
		Email:        picker.Email,
		PreferenceID: preferenceID,
		Reason:       reason,
		OccurredAt:   time.Now().UTC(),
	}
}

// publish never fails the checkout, a lost event is only logged.
func (u *usecase) publish(ctx context.Context, topic string, event entity.CheckoutEvent) {
	payload, err := json.Marshal(event)
	if err != nil {
		u.log.Error(ctx, "error marshal checkout event", err)
		return
	}

	msg := message.NewMessage(watermill.NewUUID(), payload)
	if cid := log.CorrelationIDFromContext(ctx); cid != "" {
		middleware.SetCorrelationID(cid, msg)
	}

	if err := u.publisher.Publish(topic, msg); err != nil {
		u.log.Error(ctx, "error publish checkout event", err)
	}
}

func reserveError(err error) error {
	if apiErr, ok := api.AsAPIError(err); ok && apiErr.StatusCode == 400 {
		if detail := apiErr.Detail(); detail != "" {
			return errors.BadRequest(detail)
		}
	}
	return errors.BadGateway("Error reserving seats. Please try again.")
}
