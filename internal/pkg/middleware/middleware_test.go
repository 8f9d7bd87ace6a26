package middleware_test

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"cinema-web/config"
	"cinema-web/internal/module/auth/mocks"
	log_internal "cinema-web/internal/pkg/log"
	"cinema-web/internal/pkg/middleware"
	"cinema-web/internal/pkg/session"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/valyala/fasthttp"
)

var (
	m    *middleware.Middleware
	repo *mocks.Repositories
	app  *fiber.App
	sess *session.Session
)

func setup(token string) {
	repo = &mocks.Repositories{}
	m = &middleware.Middleware{
		Log:  log_internal.Setup(),
		Repo: repo,
	}
	app = fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		sess = session.From(c)
		if token != "" {
			sess.SetToken(token)
		}
		return c.Next()
	})
	app.Get("/admin", m.RequireSession, func(c *fiber.Ctx) error {
		return c.SendString("dashboard")
	})
	app.Get("/login", m.RedirectIfAuthenticated, func(c *fiber.Ctx) error {
		return c.SendString("login")
	})
}

func teardown() {
	repo = nil
	m = nil
	app = nil
	sess = nil
}

func TestRequireSession(t *testing.T) {
	t.Run("no token redirects without probing", func(t *testing.T) {
		setup("")
		defer teardown()

		resp, err := app.Test(httptest.NewRequest("GET", "/admin", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusSeeOther, resp.StatusCode)
		assert.Equal(t, "/login", resp.Header.Get("Location"))
		repo.AssertNotCalled(t, "ProbeToken", mock.Anything, mock.Anything)
	})

	t.Run("valid token renders child", func(t *testing.T) {
		setup("tok")
		defer teardown()

		repo.On("ProbeToken", mock.Anything, "tok").Return(nil).Once()

		resp, err := app.Test(httptest.NewRequest("GET", "/admin", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		repo.AssertNumberOfCalls(t, "ProbeToken", 1)
	})

	t.Run("rejected token is cleared and redirected", func(t *testing.T) {
		setup("stale")
		defer teardown()

		repo.On("ProbeToken", mock.Anything, "stale").Return(assert.AnError)

		resp, err := app.Test(httptest.NewRequest("GET", "/admin", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusSeeOther, resp.StatusCode)
		assert.Equal(t, "/login", resp.Header.Get("Location"))
		assert.Empty(t, sess.GetToken())
	})
}

func TestRejectedTokenRotatesSession(t *testing.T) {
	repo = &mocks.Repositories{}
	m = &middleware.Middleware{Log: log_internal.Setup(), Repo: repo}
	defer teardown()

	store := session.NewMemoryStore()
	sid := uuid.NewString()
	require.NoError(t, store.Save(context.Background(), sid, session.Data{Token: "stale"}))

	sessions := session.NewManager(store, log_internal.New(log_internal.Setup()), &config.SessionConfig{
		CookieName: "sid",
		TTL:        time.Hour,
	}, false)
	a := fiber.New()
	a.Use(sessions.Middleware())
	a.Get("/admin", m.RequireSession, func(c *fiber.Ctx) error {
		return c.SendString("dashboard")
	})

	repo.On("ProbeToken", mock.Anything, "stale").Return(assert.AnError).Once()

	req := httptest.NewRequest("GET", "/admin", nil)
	req.Header.Set("Cookie", "sid="+sid)
	resp, err := a.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusSeeOther, resp.StatusCode)

	var rotated string
	for _, c := range resp.Cookies() {
		if c.Name == "sid" {
			rotated = c.Value
		}
	}
	assert.NotEmpty(t, rotated)
	assert.NotEqual(t, sid, rotated)

	_, found, err := store.Load(context.Background(), sid)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestCheck(t *testing.T) {
	setup("")
	defer teardown()

	ctx := app.AcquireCtx(&fasthttp.RequestCtx{})
	defer app.ReleaseCtx(ctx)
	s := session.From(ctx)

	assert.Equal(t, middleware.GuardRedirecting, m.Check(ctx, s))

	s.SetToken("tok")
	repo.On("ProbeToken", mock.Anything, "tok").Return(nil).Once()
	assert.Equal(t, middleware.GuardAuthorized, m.Check(ctx, s))

	repo.On("ProbeToken", mock.Anything, "tok").Return(assert.AnError).Once()
	assert.Equal(t, middleware.GuardRedirecting, m.Check(ctx, s))
	assert.Empty(t, s.GetToken())
	repo.AssertNumberOfCalls(t, "ProbeToken", 2)
}

func TestRedirectIfAuthenticated(t *testing.T) {
	t.Run("anonymous sees login", func(t *testing.T) {
		setup("")
		defer teardown()

		resp, err := app.Test(httptest.NewRequest("GET", "/login", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})

	t.Run("logged in goes to admin", func(t *testing.T) {
		setup("tok")
		defer teardown()

		resp, err := app.Test(httptest.NewRequest("GET", "/login", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusSeeOther, resp.StatusCode)
		assert.Equal(t, "/admin", resp.Header.Get("Location"))
	})
}

func TestCorrelationID(t *testing.T) {
	setup("")
	defer teardown()

	var seen string
	app.Get("/cid", m.CorrelationID, func(c *fiber.Ctx) error {
		seen = log_internal.CorrelationIDFromContext(c.UserContext())
		return nil
	})

	t.Run("propagated", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/cid", nil)
		req.Header.Set("X-Correlation-ID", "abc")
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, "abc", seen)
		assert.Equal(t, "abc", resp.Header.Get("X-Correlation-ID"))
	})

	t.Run("generated", func(t *testing.T) {
		_, err := app.Test(httptest.NewRequest("GET", "/cid", nil))
		require.NoError(t, err)
		assert.Contains(t, seen, "gen_")
	})
}

func TestGuardStateString(t *testing.T) {
	assert.Equal(t, "checking", middleware.GuardChecking.String())
	assert.Equal(t, "authorized", middleware.GuardAuthorized.String())
	assert.Equal(t, "redirecting", middleware.GuardRedirecting.String())
}
