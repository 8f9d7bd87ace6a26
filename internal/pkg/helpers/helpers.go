package helpers

import (
	"cinema-web/internal/pkg/errors"
	"cinema-web/internal/pkg/session"
	"fmt"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
)

// CSRFContextKey is where the csrf middleware stores the form token.
const CSRFContextKey = "csrf"

const layout = "layouts/main"

type Meta struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type Response struct {
	Meta Meta `json:"meta"`
	Data any  `json:"data,omitempty"`
}

func RespSuccess(ctx *fiber.Ctx, log *otelzap.Logger, data any, message string) error {
	return ctx.Status(fiber.StatusOK).JSON(Response{
		Meta: Meta{Code: fiber.StatusOK, Message: message},
		Data: data,
	})
}

func RespError(ctx *fiber.Ctx, log *otelzap.Logger, err error) error {
	code := errors.Code(err)
	message := errors.Message(err)
	if code >= fiber.StatusInternalServerError {
		log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("internal error: %v", err))
		message = http.StatusText(code)
	}

	return ctx.Status(code).JSON(Response{
		Meta: Meta{Code: code, Message: message},
	})
}

// Render renders view inside the main layout. Flash messages, the auth state
// and the form csrf token are added to data.
func Render(ctx *fiber.Ctx, view string, data fiber.Map) error {
	if data == nil {
		data = fiber.Map{}
	}
	sess := session.From(ctx)
	data["Flashes"] = sess.Flashes()
	data["Authenticated"] = sess.GetToken() != ""
	if token, ok := ctx.Locals(CSRFContextKey).(string); ok {
		data["CSRFToken"] = token
	}
	return ctx.Render(view, data, layout)
}

// RenderError renders the error page. Internal errors never leak their text.
func RenderError(ctx *fiber.Ctx, log *otelzap.Logger, err error) error {
	code := errors.Code(err)
	message := errors.Message(err)
	if code >= fiber.StatusInternalServerError {
		log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("internal error: %v", err))
		message = "Something went wrong, please try again later."
	}

	ctx.Status(code)
	return Render(ctx, "errors/error", fiber.Map{
		"Title":   http.StatusText(code),
		"Code":    code,
		"Message": message,
	})
}
