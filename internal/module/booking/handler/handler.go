package handler

import (
	"cinema-web/internal/module/booking/models/entity"
	"cinema-web/internal/module/booking/models/request"
	"cinema-web/internal/module/booking/usecases"
	movieEntity "cinema-web/internal/module/movie/models/entity"
	"cinema-web/internal/pkg/errors"
	"cinema-web/internal/pkg/helpers"
	"cinema-web/internal/pkg/session"
	"fmt"
	"strconv"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
)

const seatsView = "booking/seats"

type BookingHandler struct {
	Log       *otelzap.Logger
	Validator *validator.Validate
	Usecase   usecases.Usecase
	Publish   message.Publisher
}

// seatPage is what the seat page keeps in the session between requests.
type seatPage struct {
	Picker *entity.Picker    `json:"picker"`
	Movie  movieEntity.Movie `json:"movie"`
}

func stateKey(movieID int64) string {
	return fmt.Sprintf("seats:%d", movieID)
}

// SelectSeats mounts the seat page, fetching seats and movie again.
func (h *BookingHandler) SelectSeats(ctx *fiber.Ctx) error {
	movieID, err := paramID(ctx, "movieId")
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error parse movie id: %v", err))
		return helpers.RenderError(ctx, h.Log, err)
	}

	sess := session.From(ctx)
	prev, _ := h.loadPage(ctx, sess, movieID)

	// call usecase to open the seat picker
	picker, movie, err := h.Usecase.OpenPicker(ctx.UserContext(), movieID, prev.Picker)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error open seat picker: %v", err))
		if errors.Code(err) == fiber.StatusNotFound {
			return helpers.RenderError(ctx, h.Log, err)
		}
		sess.AddFlash(session.FlashError, "Error fetching seats. Please reload the page.")
		picker = prev.Picker
		if picker == nil {
			picker = entity.NewPicker(movieID, nil, 0)
		}
		movie = prev.Movie
	}

	page := seatPage{Picker: picker, Movie: movie}
	h.savePage(ctx, sess, page)
	return h.render(ctx, page)
}

// ToggleSeat flips one seat locally. The backend is not called.
func (h *BookingHandler) ToggleSeat(ctx *fiber.Ctx) error {
	movieID, err := paramID(ctx, "movieId")
	if err != nil {
		return helpers.RenderError(ctx, h.Log, err)
	}
	seatID, err := paramID(ctx, "seatId")
	if err != nil {
		return helpers.RenderError(ctx, h.Log, err)
	}

	sess := session.From(ctx)
	page, ok := h.loadPage(ctx, sess, movieID)
	if !ok {
		return ctx.Redirect(seatsPath(movieID), fiber.StatusSeeOther)
	}

	h.applyForm(ctx, page.Picker)
	if !page.Picker.Toggle(seatID) {
		h.Log.Ctx(ctx.UserContext()).Debug(fmt.Sprintf("seat %d is not selectable", seatID))
	}

	h.savePage(ctx, sess, page)
	return h.render(ctx, page)
}

// Reserve reserves the selected seats, creates the payment preference and
// redirects the browser to the payment page.
func (h *BookingHandler) Reserve(ctx *fiber.Ctx) error {
	movieID, err := paramID(ctx, "movieId")
	if err != nil {
		return helpers.RenderError(ctx, h.Log, err)
	}

	sess := session.From(ctx)
	page, ok := h.loadPage(ctx, sess, movieID)
	if !ok {
		return ctx.Redirect(seatsPath(movieID), fiber.StatusSeeOther)
	}

	req := h.applyForm(ctx, page.Picker)
	h.savePage(ctx, sess, page)

	if len(page.Picker.Selected) == 0 {
		sess.AddFlash(session.FlashWarning, "No seats selected.")
		ctx.Status(fiber.StatusUnprocessableEntity)
		return h.render(ctx, page)
	}

	if err := h.Validator.Struct(req); err != nil || !page.Picker.EmailValid() {
		h.Log.Ctx(ctx.UserContext()).Warn(fmt.Sprintf("error validate request: %v", err))
		sess.AddFlash(session.FlashWarning, "Please enter a valid email address.")
		ctx.Status(fiber.StatusUnprocessableEntity)
		return h.render(ctx, page)
	}

	// call usecase to reserve seats
	initPoint, err := h.Usecase.Reserve(ctx.UserContext(), sess.ID(), page.Picker)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error reserve seats: %v", err))
		sess.AddFlash(session.FlashError, errors.Message(err))
		ctx.Status(errors.Code(err))
		return h.render(ctx, page)
	}

	h.savePage(ctx, sess, page)
	return ctx.Redirect(initPoint, fiber.StatusSeeOther)
}

// ConsumeCheckoutEvent records checkout events. Undecodable payloads are
// forwarded to the poison queue and acknowledged.
func (h *BookingHandler) ConsumeCheckoutEvent(msg *message.Message) error {
	var event entity.CheckoutEvent
	if err := json.Unmarshal(msg.Payload, &event); err != nil {
		h.Log.Ctx(msg.Context()).Error(fmt.Sprintf("error unmarshal message: %v", err))

		// publish to poison queue
		reqPoisoned := request.PoisonedQueue{
			TopicTarget: message.SubscribeTopicFromCtx(msg.Context()),
			ErrorMsg:    err.Error(),
			Payload:     string(msg.Payload),
		}

		jsonPayload, _ := json.Marshal(reqPoisoned)
		if err := h.Publish.Publish(usecases.TopicPoisoned, message.NewMessage(watermill.NewUUID(), jsonPayload)); err != nil {
			h.Log.Ctx(msg.Context()).Error(fmt.Sprintf("error publish to poison queue: %v", err))
			return err
		}
		return nil
	}

	// call usecase to consume checkout event
	if err := h.Usecase.ConsumeCheckoutEvent(msg.Context(), &event); err != nil {
		h.Log.Ctx(msg.Context()).Error(fmt.Sprintf("error consume checkout event: %v", err))
		return err
	}

	return nil
}

// applyForm copies the email, showtime and format inputs into picker.
func (h *BookingHandler) applyForm(ctx *fiber.Ctx, picker *entity.Picker) request.Reserve {
	var req request.Reserve
	if err := ctx.BodyParser(&req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Warn(fmt.Sprintf("error parse request: %v", err))
		return req
	}

	picker.SetEmail(req.Email)
	if req.ShowtimeID != 0 {
		picker.ShowtimeID = req.ShowtimeID
	}
	if req.Format != "" {
		picker.Format = req.Format
	}
	return req
}

func (h *BookingHandler) loadPage(ctx *fiber.Ctx, sess *session.Session, movieID int64) (seatPage, bool) {
	var page seatPage
	ok, err := sess.LoadState(stateKey(movieID), &page)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error load seat page: %v", err))
		return seatPage{}, false
	}
	if !ok || page.Picker == nil {
		return seatPage{}, false
	}
	return page, true
}

func (h *BookingHandler) savePage(ctx *fiber.Ctx, sess *session.Session, page seatPage) {
	if err := sess.SaveState(stateKey(page.Picker.MovieID), page); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error save seat page: %v", err))
	}
}

func (h *BookingHandler) render(ctx *fiber.Ctx, page seatPage) error {
	title := "Select seats"
	if page.Movie.Title != "" {
		title = page.Movie.Title
	}
	return helpers.Render(ctx, seatsView, fiber.Map{
		"Title":  title,
		"Picker": page.Picker,
		"Movie":  page.Movie,
		"Path":   seatsPath(page.Picker.MovieID),
	})
}

func seatsPath(movieID int64) string {
	return fmt.Sprintf("/select-seats/%d", movieID)
}

func paramID(ctx *fiber.Ctx, name string) (int64, error) {
	id, err := strconv.ParseInt(ctx.Params(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.BadRequest(fmt.Sprintf("error parse %s", name))
	}
	return id, nil
}
