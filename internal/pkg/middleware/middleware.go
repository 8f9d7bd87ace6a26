package middleware

import (
	"cinema-web/internal/module/auth/repositories"
	"cinema-web/internal/pkg/log"
	"cinema-web/internal/pkg/session"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/lithammer/shortuuid/v3"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
)

const (
	LoginPath           = "/login"
	AdminPath           = "/admin"
	CorrelationIDHeader = "X-Correlation-ID"
)

// GuardState is the outcome of checking a session against the backend.
type GuardState int

const (
	GuardChecking GuardState = iota
	GuardAuthorized
	GuardRedirecting
)

func (s GuardState) String() string {
	switch s {
	case GuardAuthorized:
		return "authorized"
	case GuardRedirecting:
		return "redirecting"
	default:
		return "checking"
	}
}

type Middleware struct {
	Log  *otelzap.Logger
	Repo repositories.Repositories
}

// Check resolves the guard state for sess. A session without a token is
// redirected without any backend call. A token the backend rejects is cleared.
func (m *Middleware) Check(ctx *fiber.Ctx, sess *session.Session) GuardState {
	token := sess.GetToken()
	if token == "" {
		return GuardRedirecting
	}

	if err := m.Repo.ProbeToken(ctx.UserContext(), token); err != nil {
		m.Log.Ctx(ctx.UserContext()).Warn(fmt.Sprintf("error validate token: %v", err))
		sess.Clear()
		if err := session.Regenerate(ctx); err != nil {
			m.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error regenerate session: %v", err))
		}
		return GuardRedirecting
	}

	return GuardAuthorized
}

func (m *Middleware) RequireSession(ctx *fiber.Ctx) error {
	sess := session.From(ctx)
	if m.Check(ctx, sess) != GuardAuthorized {
		return ctx.Redirect(LoginPath, fiber.StatusSeeOther)
	}
	return ctx.Next()
}

// RedirectIfAuthenticated keeps a logged in user away from the login page.
func (m *Middleware) RedirectIfAuthenticated(ctx *fiber.Ctx) error {
	if session.From(ctx).GetToken() != "" {
		return ctx.Redirect(AdminPath, fiber.StatusSeeOther)
	}
	return ctx.Next()
}

// CorrelationID propagates the caller's correlation id or generates one.
func (m *Middleware) CorrelationID(ctx *fiber.Ctx) error {
	cid := ctx.Get(CorrelationIDHeader)
	if cid == "" {
		cid = "gen_" + shortuuid.New()
	}

	ctx.SetUserContext(log.ContextWithCorrelationID(ctx.UserContext(), cid))
	ctx.Set(CorrelationIDHeader, cid)

	return ctx.Next()
}
