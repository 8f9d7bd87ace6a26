package handler

import (
	"cinema-web/internal/module/movie/usecases"
	"cinema-web/internal/pkg/errors"
	"cinema-web/internal/pkg/helpers"
	"fmt"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
)

type MovieHandler struct {
	Log       *otelzap.Logger
	Validator *validator.Validate
	Usecase   usecases.Usecase
}

// Catalog is the public landing page. A backend failure renders an empty list.
func (h *MovieHandler) Catalog(ctx *fiber.Ctx) error {
	// call usecase to list movies
	movies, err := h.Usecase.ListCatalog(ctx.UserContext())
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error list movies: %v", err))
	}

	return helpers.Render(ctx, "catalog/index", fiber.Map{
		"Title":  "Now showing",
		"Movies": movies,
		"Failed": err != nil,
	})
}

func (h *MovieHandler) Detail(ctx *fiber.Ctx) error {
	id, err := movieID(ctx)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error parse movie id: %v", err))
		return helpers.RenderError(ctx, h.Log, err)
	}

	// call usecase to get movie
	movie, err := h.Usecase.GetMovie(ctx.UserContext(), "", id)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error get movie: %v", err))
		return helpers.RenderError(ctx, h.Log, err)
	}

	return helpers.Render(ctx, "catalog/movie", fiber.Map{
		"Title": movie.Title,
		"Movie": movie,
	})
}

func movieID(ctx *fiber.Ctx) (int64, error) {
	id, err := strconv.ParseInt(ctx.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.BadRequest("error parse movie id")
	}
	return id, nil
}
