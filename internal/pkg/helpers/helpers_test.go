package helpers_test

import (
	"io"
	"net/http/httptest"
	"testing"

	"cinema-web/internal/pkg/errors"
	"cinema-web/internal/pkg/helpers"
	log_internal "cinema-web/internal/pkg/log"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func TestRespSuccess(t *testing.T) {
	app := fiber.New()
	logMock := log_internal.Setup()
	app.Get("/", func(c *fiber.Ctx) error {
		return helpers.RespSuccess(c, logMock, map[string]string{"status": "up"}, "ok")
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body helpers.Response
	raw, _ := io.ReadAll(resp.Body)
	assert.NoError(t, json.Unmarshal(raw, &body))
	assert.Equal(t, "ok", body.Meta.Message)
}

func TestRespError(t *testing.T) {
	app := fiber.New()
	logMock := log_internal.Setup()

	t.Run("client error keeps message", func(t *testing.T) {
		app.Get("/bad", func(c *fiber.Ctx) error {
			return helpers.RespError(c, logMock, errors.BadRequest("error validate request"))
		})
		resp, err := app.Test(httptest.NewRequest("GET", "/bad", nil))
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

		var body helpers.Response
		raw, _ := io.ReadAll(resp.Body)
		assert.NoError(t, json.Unmarshal(raw, &body))
		assert.Equal(t, "error validate request", body.Meta.Message)
	})

	t.Run("internal error hides message", func(t *testing.T) {
		app.Get("/boom", func(c *fiber.Ctx) error {
			return helpers.RespError(c, logMock, errors.InternalServerError("db password leaked"))
		})
		resp, err := app.Test(httptest.NewRequest("GET", "/boom", nil))
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)

		raw, _ := io.ReadAll(resp.Body)
		assert.NotContains(t, string(raw), "db password")
	})
}
