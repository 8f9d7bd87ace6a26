package handler

import (
	"cinema-web/internal/module/auth/models/request"
	"cinema-web/internal/module/auth/usecases"
	"cinema-web/internal/pkg/errors"
	"cinema-web/internal/pkg/helpers"
	"cinema-web/internal/pkg/session"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
)

type AuthHandler struct {
	Log       *otelzap.Logger
	Validator *validator.Validate
	Usecase   usecases.Usecase
}

func (h *AuthHandler) LoginPage(ctx *fiber.Ctx) error {
	sess := session.From(ctx)

	token, err := h.Usecase.CSRFToken(ctx.UserContext())
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error fetch csrf token: %v", err))
	} else {
		sess.SetCSRFToken(token)
	}

	return helpers.Render(ctx, "admin/login", fiber.Map{"Title": "Login"})
}

func (h *AuthHandler) Login(ctx *fiber.Ctx) error {
	var req request.Login
	if err := ctx.BodyParser(&req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error parse request: %v", err))
		return h.renderLogin(ctx, req.Username, errors.BadRequest("error parse request"))
	}

	if err := h.Validator.Struct(req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Warn(fmt.Sprintf("error validate request: %v", err))
		return h.renderLogin(ctx, req.Username, errors.BadRequest("Username and password are required."))
	}

	sess := session.From(ctx)

	// call usecase to login
	token, err := h.Usecase.Login(ctx.UserContext(), sess.GetCSRFToken(), &req)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Warn(fmt.Sprintf("error login: %v", err))
		return h.renderLogin(ctx, req.Username, err)
	}

	sess.SetToken(token)
	if err := session.Regenerate(ctx); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error regenerate session: %v", err))
	}
	return ctx.Redirect("/admin", fiber.StatusSeeOther)
}

func (h *AuthHandler) Logout(ctx *fiber.Ctx) error {
	sess := session.From(ctx)

	// call usecase to logout
	if err := h.Usecase.Logout(ctx.UserContext(), sess.GetToken(), sess.GetCSRFToken()); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error logout: %v", err))
		sess.AddFlash(session.FlashError, "Could not log out, please try again.")
		return ctx.Redirect("/admin", fiber.StatusSeeOther)
	}

	sess.Clear()
	if err := session.Regenerate(ctx); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error regenerate session: %v", err))
	}
	sess.AddFlash(session.FlashInfo, "You have been logged out.")
	return ctx.Redirect("/", fiber.StatusSeeOther)
}

func (h *AuthHandler) renderLogin(ctx *fiber.Ctx, username string, err error) error {
	ctx.Status(errors.Code(err))
	return helpers.Render(ctx, "admin/login", fiber.Map{
		"Title":    "Login",
		"Username": username,
		"Error":    errors.Message(err),
	})
}
