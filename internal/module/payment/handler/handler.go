package handler

import (
	"cinema-web/internal/module/payment/usecases"
	"cinema-web/internal/pkg/errors"
	"cinema-web/internal/pkg/helpers"
	"cinema-web/internal/pkg/session"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
)

type PaymentHandler struct {
	Log     *otelzap.Logger
	Usecase usecases.Usecase
}

// PaymentSuccess renders the receipt. The preference id comes from the path
// or from ?preference_id. Without one the loading state is shown and nothing
// is fetched.
func (h *PaymentHandler) PaymentSuccess(ctx *fiber.Ctx) error {
	id := ctx.Params("paymentId")
	if id == "" {
		id = ctx.Query("preference_id")
	}
	if id == "" {
		return helpers.Render(ctx, "payment/success", fiber.Map{
			"Title":   "Payment",
			"Loading": true,
		})
	}

	// call usecase to get receipt
	receipt, err := h.Usecase.GetReceipt(ctx.UserContext(), id)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error get receipt: %v", err))
		if errors.Code(err) >= fiber.StatusInternalServerError {
			return helpers.RenderError(ctx, h.Log, err)
		}
		ctx.Status(errors.Code(err))
		return helpers.Render(ctx, "payment/success", fiber.Map{
			"Title":   "Payment",
			"Loading": true,
			"Error":   errors.Message(err),
		})
	}

	return helpers.Render(ctx, "payment/success", fiber.Map{
		"Title":   "Payment confirmed",
		"Receipt": receipt,
	})
}

// Dashboard is the admin landing page with per-day sales.
func (h *PaymentHandler) Dashboard(ctx *fiber.Ctx) error {
	sess := session.From(ctx)

	// call usecase to aggregate sales
	dashboard, err := h.Usecase.SalesDashboard(ctx.UserContext(), sess.GetToken())
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error sales dashboard: %v", err))
		if errors.Code(err) == fiber.StatusUnauthorized {
			sess.Clear()
			return ctx.Redirect("/login", fiber.StatusSeeOther)
		}
		sess.AddFlash(session.FlashError, "Could not load sales.")
	}

	return helpers.Render(ctx, "admin/dashboard", fiber.Map{
		"Title":     "Dashboard",
		"Dashboard": dashboard,
	})
}
