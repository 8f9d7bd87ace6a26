package handler_test

import (
	"io"
	"net/http/httptest"
	"testing"

	"cinema-web/internal/module/payment/handler"
	"cinema-web/internal/module/payment/mocks"
	"cinema-web/internal/module/payment/models/entity"
	"cinema-web/internal/module/payment/models/response"
	"cinema-web/internal/pkg/errors"
	http_internal "cinema-web/internal/pkg/http"
	log_internal "cinema-web/internal/pkg/log"
	"cinema-web/internal/pkg/session"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	h   *handler.PaymentHandler
	ucm *mocks.Usecase
	app *fiber.App
)

func setup() {
	ucm = &mocks.Usecase{}
	h = &handler.PaymentHandler{
		Log:     log_internal.Setup(),
		Usecase: ucm,
	}
	app = fiber.New(fiber.Config{Views: http_internal.NewViewEngine()})
	app.Get("/payment-success", h.PaymentSuccess)
	app.Get("/payment-success/:paymentId", h.PaymentSuccess)
}

func teardown() {
	ucm = nil
	h = nil
	app = nil
}

func TestPaymentSuccess(t *testing.T) {
	receipt := response.Receipt{
		Invoice: entity.Invoice{
			InvoiceID:   "pref-1",
			MovieTitle:  "Dune",
			Seats:       []entity.InvoiceSeat{{Row: "A", Number: 1}, {Row: "A", Number: 2}},
			TotalAmount: 200,
			HallName:    "Hall 1",
			Format:      "3D",
			Showtime:    "10/09/2024 20:00",
		},
		QRCode: "data:image/png;base64,iVBORw0KGgo=",
	}

	t.Run("path id fetches once", func(t *testing.T) {
		setup()
		defer teardown()

		ucm.On("GetReceipt", mock.Anything, "pref-1").Return(receipt, nil).Once()

		resp, err := app.Test(httptest.NewRequest("GET", "/payment-success/pref-1", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		body, _ := io.ReadAll(resp.Body)
		assert.Contains(t, string(body), "Dune")
		assert.Contains(t, string(body), "Hall 1")
		assert.Contains(t, string(body), "data:image/png;base64,iVBORw0KGgo=")
		ucm.AssertNumberOfCalls(t, "GetReceipt", 1)
	})

	t.Run("query id", func(t *testing.T) {
		setup()
		defer teardown()

		ucm.On("GetReceipt", mock.Anything, "pref-1").Return(receipt, nil).Once()

		resp, err := app.Test(httptest.NewRequest("GET", "/payment-success?preference_id=pref-1&status=approved", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		ucm.AssertExpectations(t)
	})

	t.Run("no id shows loading without fetch", func(t *testing.T) {
		setup()
		defer teardown()

		resp, err := app.Test(httptest.NewRequest("GET", "/payment-success", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		body, _ := io.ReadAll(resp.Body)
		assert.Contains(t, string(body), "Loading invoice")
		ucm.AssertNotCalled(t, "GetReceipt", mock.Anything, mock.Anything)
	})

	t.Run("unknown invoice", func(t *testing.T) {
		setup()
		defer teardown()

		ucm.On("GetReceipt", mock.Anything, "gone").Return(response.Receipt{}, errors.NotFound("invoice not found")).Once()

		resp, err := app.Test(httptest.NewRequest("GET", "/payment-success/gone", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
		body, _ := io.ReadAll(resp.Body)
		assert.Contains(t, string(body), "invoice not found")
	})
}

func TestDashboard(t *testing.T) {
	var sess *session.Session
	withToken := func(c *fiber.Ctx) error {
		sess = session.From(c)
		sess.SetToken("tok")
		return c.Next()
	}

	t.Run("success", func(t *testing.T) {
		setup()
		defer teardown()

		app.Get("/admin", withToken, h.Dashboard)
		ucm.On("SalesDashboard", mock.Anything, "tok").Return(response.Dashboard{
			Days:         []entity.SalesDay{{Date: "2024-09-10", TotalSales: 300, TotalTickets: 3, Approved: 2}},
			TotalSales:   300,
			TotalTickets: 3,
			Approved:     2,
		}, nil).Once()

		resp, err := app.Test(httptest.NewRequest("GET", "/admin", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		body, _ := io.ReadAll(resp.Body)
		assert.Contains(t, string(body), "2024-09-10")
	})

	t.Run("expired token redirects to login", func(t *testing.T) {
		setup()
		defer teardown()

		app.Get("/admin", withToken, h.Dashboard)
		ucm.On("SalesDashboard", mock.Anything, "tok").Return(response.Dashboard{}, errors.UnauthorizedError("session expired")).Once()

		resp, err := app.Test(httptest.NewRequest("GET", "/admin", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusSeeOther, resp.StatusCode)
		assert.Equal(t, "/login", resp.Header.Get("Location"))
		assert.Empty(t, sess.GetToken())
	})
}
