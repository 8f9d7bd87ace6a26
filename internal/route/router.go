package router

import (
	authHandler "cinema-web/internal/module/auth/handler"
	bookingHandler "cinema-web/internal/module/booking/handler"
	movieHandler "cinema-web/internal/module/movie/handler"
	paymentHandler "cinema-web/internal/module/payment/handler"
	"cinema-web/internal/pkg/helpers"
	"cinema-web/internal/pkg/middleware"
	"cinema-web/internal/pkg/session"

	"github.com/gofiber/fiber/v2"
)

type Handlers struct {
	Auth    *authHandler.AuthHandler
	Movie   *movieHandler.MovieHandler
	Booking *bookingHandler.BookingHandler
	Payment *paymentHandler.PaymentHandler
}

func Initialize(app *fiber.App, m *middleware.Middleware, sessions *session.Manager, h Handlers) *fiber.App {

	// health check
	app.Get("/health", func(c *fiber.Ctx) error {
		return helpers.RespSuccess(c, m.Log, nil, "OK")
	})

	app.Use(m.CorrelationID, sessions.Middleware())

	// public routes
	app.Get("/", h.Movie.Catalog)
	app.Get("/movies/:id", h.Movie.Detail)

	seats := app.Group("/select-seats/:movieId")
	seats.Get("/", h.Booking.SelectSeats)
	seats.Post("/seats/:seatId", h.Booking.ToggleSeat)
	seats.Post("/reserve", h.Booking.Reserve)

	app.Get("/payment-success", h.Payment.PaymentSuccess)
	app.Get("/payment-success/:paymentId", h.Payment.PaymentSuccess)

	app.Get(middleware.LoginPath, m.RedirectIfAuthenticated, h.Auth.LoginPage)
	app.Post(middleware.LoginPath, m.RedirectIfAuthenticated, h.Auth.Login)
	app.Post("/logout", m.RequireSession, h.Auth.Logout)

	// admin routes
	admin := app.Group(middleware.AdminPath, m.RequireSession)
	admin.Get("/", h.Payment.Dashboard)
	admin.Get("/movies", h.Movie.List)
	admin.Get("/movies/new", h.Movie.NewForm)
	admin.Post("/movies/new", h.Movie.Submit)
	admin.Get("/movies/:id/edit", h.Movie.EditForm)
	admin.Post("/movies/:id/edit", h.Movie.Submit)
	admin.Get("/movies/:id/delete", h.Movie.ConfirmDelete)
	admin.Post("/movies/:id/delete", h.Movie.Delete)
	admin.Post("/movies/:id/overlay", h.Movie.SubmitOverlay)

	return app

}
