package session

import (
	"cinema-web/config"
	"context"
	"fmt"
	"cinema-web/internal/pkg/log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const (
	localsKey  = "session"
	managerKey = "session_manager"
)

type Manager struct {
	store      Store
	log        log.Logger
	cookieName string
	ttl        time.Duration
	secure     bool
}

func NewManager(store Store, log log.Logger, cfg *config.SessionConfig, secure bool) *Manager {
	return &Manager{
		store:      store,
		log:        log,
		cookieName: cfg.CookieName,
		ttl:        cfg.TTL,
		secure:     secure,
	}
}

// Middleware attaches the session to the request and persists it once the
// handler chain returns, if anything changed. Only ids the store knows are
// adopted from the cookie; anything else starts a fresh session.
func (m *Manager) Middleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		var (
			data  Data
			found bool
		)

		id := ctx.Cookies(m.cookieName)
		if _, err := uuid.Parse(id); err == nil {
			data, found, err = m.store.Load(ctx.UserContext(), id)
			if err != nil {
				m.log.Error(ctx.UserContext(), "error load session", err)
				found = false
			}
		}
		if !found {
			id = uuid.NewString()
			data = Data{}
		}

		sess := newSession(id, data)
		ctx.Locals(localsKey, sess)
		ctx.Locals(managerKey, m)
		m.setCookie(ctx, id)

		chainErr := ctx.Next()

		m.persist(ctx.UserContext(), sess)

		return chainErr
	}
}

// Regenerate moves the request's session to a new id, deletes the old store
// entry and resets the cookie. Call it whenever the privilege level changes.
func (m *Manager) Regenerate(ctx *fiber.Ctx) error {
	sess := From(ctx)
	old := sess.rotate(uuid.NewString())
	m.setCookie(ctx, sess.ID())

	if old == "" {
		return nil
	}
	if err := m.store.Delete(ctx.UserContext(), old); err != nil {
		return fmt.Errorf("error delete session: %w", err)
	}
	return nil
}

func (m *Manager) setCookie(ctx *fiber.Ctx, id string) {
	ctx.Cookie(&fiber.Cookie{
		Name:     m.cookieName,
		Value:    id,
		Path:     "/",
		Expires:  time.Now().Add(m.ttl),
		HTTPOnly: true,
		Secure:   m.secure,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

// persist re-reads the stored copy and writes back only what this request
// changed, so a concurrent request on the same session keeps its own fields.
func (m *Manager) persist(ctx context.Context, sess *Session) {
	if !sess.dirty() {
		return
	}

	id := sess.ID()
	data := sess.snapshot()
	base, _, err := m.store.Load(ctx, id)
	if err != nil {
		m.log.Error(ctx, "error reload session", err)
	} else {
		data = sess.merge(base)
	}

	if err := m.store.Save(ctx, id, data); err != nil {
		m.log.Error(ctx, "error save session", err)
	}
}

// Regenerate rotates the id of the session attached to ctx. Without the
// middleware it does nothing.
func Regenerate(ctx *fiber.Ctx) error {
	m, ok := ctx.Locals(managerKey).(*Manager)
	if !ok {
		return nil
	}
	return m.Regenerate(ctx)
}

// From returns the session attached to ctx. Without the middleware a detached
// empty session is returned, which is never persisted.
func From(ctx *fiber.Ctx) *Session {
	if sess, ok := ctx.Locals(localsKey).(*Session); ok {
		return sess
	}
	sess := newSession("", Data{})
	ctx.Locals(localsKey, sess)
	return sess
}
