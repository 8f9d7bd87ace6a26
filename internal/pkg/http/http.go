package http

import (
	"cinema-web/config"
	"cinema-web/internal/pkg/errors"
	"cinema-web/internal/pkg/helpers"
	"cinema-web/web"
	"context"
	goerrors "errors"
	"fmt"
	"html/template"
	"log"
	nethttp "net/http"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/csrf"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/template/html/v2"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.elastic.co/apm/module/apmfiber"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

func NewViewEngine() *html.Engine {
	engine := html.NewFileSystem(nethttp.FS(web.Views()), ".html")
	engine.AddFuncMap(template.FuncMap{
		"money": func(v float64) string {
			return fmt.Sprintf("%.2f", v)
		},
		"percent": func(v float64) string {
			return fmt.Sprintf("%+.1f%%", v)
		},
		"datetime": func(t time.Time) string {
			if t.IsZero() {
				return ""
			}
			return t.Format("Mon 02 Jan 2006 15:04")
		},
		"inc": func(i int) int {
			return i + 1
		},
		"join": strings.Join,
		"dict": func(kv ...any) (map[string]any, error) {
			if len(kv)%2 != 0 {
				return nil, fmt.Errorf("dict: odd number of arguments")
			}
			m := make(map[string]any, len(kv)/2)
			for i := 0; i < len(kv); i += 2 {
				key, ok := kv[i].(string)
				if !ok {
					return nil, fmt.Errorf("dict: key %v is not a string", kv[i])
				}
				m[key] = kv[i+1]
			}
			return m, nil
		},
	})
	return engine
}

func SetupHttpEngine(cfg *config.Config, logger *otelzap.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		Views:        NewViewEngine(),
		ErrorHandler: errorHandler(logger),
		JSONEncoder:  json.Marshal,
		JSONDecoder:  json.Unmarshal,
		BodyLimit:    16 << 20,
	})

	app.Use(recover.New())
	if cfg.APM.Enabled {
		app.Use(apmfiber.Middleware())
	}
	if cfg.HttpServer.CSRFEnabled {
		app.Use(csrf.New(csrf.Config{
			KeyLookup:      "form:_csrf",
			CookieName:     "cinema_csrf",
			CookieSameSite: "Lax",
			CookieSecure:   cfg.HttpServer.CookieSecure,
			CookieHTTPOnly: true,
			ContextKey:     helpers.CSRFContextKey,
		}))
	}

	return app
}

func errorHandler(logger *otelzap.Logger) fiber.ErrorHandler {
	return func(ctx *fiber.Ctx, err error) error {
		var fe *fiber.Error
		if goerrors.As(err, &fe) {
			err = &errors.CustomError{Code: fe.Code, Message: fe.Message}
		}

		if ctx.Accepts(fiber.MIMETextHTML, fiber.MIMEApplicationJSON) == fiber.MIMEApplicationJSON {
			return helpers.RespError(ctx, logger, err)
		}
		return helpers.RenderError(ctx, logger, err)
	}
}

// StartHttpServer blocks until SIGINT or SIGTERM, then shuts the server down.
func StartHttpServer(app *fiber.App, port string) {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return app.Listen(":" + port)
	})
	g.Go(func() error {
		<-ctx.Done()
		return app.ShutdownWithTimeout(shutdownTimeout)
	})

	if err := g.Wait(); err != nil {
		log.Fatalf("error http server: %v", err)
	}
}
