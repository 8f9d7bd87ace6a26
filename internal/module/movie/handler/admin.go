package handler

import (
	"cinema-web/internal/module/movie/models/entity"
	"cinema-web/internal/module/movie/models/request"
	"cinema-web/internal/pkg/errors"
	"cinema-web/internal/pkg/helpers"
	"cinema-web/internal/pkg/session"
	goerrors "errors"
	"fmt"
	"io"
	"mime/multipart"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

const (
	snapshotKey  = "admin:movies"
	maxUpload    = 8 << 20
	listView     = "admin/movies"
	formView     = "admin/movie_form"
	moviesPath   = "/admin/movies"
	confirmValue = "yes"
)

var errUploadTooLarge = errors.BadRequest("image too large")

// List renders the admin movie table. With ?edit=<id> the stored snapshot is
// reused and the movie is opened in the edit overlay.
func (h *MovieHandler) List(ctx *fiber.Ctx) error {
	sess := session.From(ctx)

	var movies entity.MovieList
	found, err := sess.LoadState(snapshotKey, &movies)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error load movie snapshot: %v", err))
	}

	editID, _ := strconv.ParseInt(ctx.Query("edit"), 10, 64)
	if editID == 0 || !found {
		// call usecase to list movies
		movies, err = h.Usecase.ListMovies(ctx.UserContext(), sess.GetToken())
		if err != nil {
			h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error list movies: %v", err))
			if errors.Code(err) == fiber.StatusUnauthorized {
				sess.Clear()
				return ctx.Redirect("/login", fiber.StatusSeeOther)
			}
			sess.AddFlash(session.FlashError, "Could not load movies.")
		} else if err := sess.SaveState(snapshotKey, movies); err != nil {
			h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error save movie snapshot: %v", err))
		}
	}

	data := fiber.Map{"Title": "Movies", "Movies": movies}
	if editID != 0 {
		movie, ok := movies.Find(editID)
		if !ok {
			return helpers.RenderError(ctx, h.Log, errors.NotFound(fmt.Sprintf("movie %d not found", editID)))
		}
		form := request.MovieFormFrom(movie)
		data["Overlay"] = form
		data["OverlayAction"] = formAction(form, true)
	}

	return helpers.Render(ctx, listView, data)
}

// ConfirmDelete opens the confirmation modal. No backend call is made.
func (h *MovieHandler) ConfirmDelete(ctx *fiber.Ctx) error {
	id, err := movieID(ctx)
	if err != nil {
		return helpers.RenderError(ctx, h.Log, err)
	}

	movies := h.snapshot(ctx)
	movie, ok := movies.Find(id)
	if !ok {
		return helpers.RenderError(ctx, h.Log, errors.NotFound(fmt.Sprintf("movie %d not found", id)))
	}

	return helpers.Render(ctx, listView, fiber.Map{
		"Title":   "Movies",
		"Movies":  movies,
		"Confirm": movie,
	})
}

// Delete issues one DELETE when confirm is "yes" and none otherwise. The
// list is rendered from the snapshot without refetching.
func (h *MovieHandler) Delete(ctx *fiber.Ctx) error {
	id, err := movieID(ctx)
	if err != nil {
		return helpers.RenderError(ctx, h.Log, err)
	}

	sess := session.From(ctx)
	movies := h.snapshot(ctx)

	if ctx.FormValue("confirm") != confirmValue {
		sess.AddFlash(session.FlashInfo, "Deletion cancelled.")
		return helpers.Render(ctx, listView, fiber.Map{"Title": "Movies", "Movies": movies})
	}

	// call usecase to delete movie
	if err := h.Usecase.DeleteMovie(ctx.UserContext(), sess.GetToken(), id); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error delete movie: %v", err))
		sess.AddFlash(session.FlashError, "Could not delete the movie.")
		return helpers.Render(ctx, listView, fiber.Map{"Title": "Movies", "Movies": movies})
	}

	movies = movies.Remove(id)
	if err := sess.SaveState(snapshotKey, movies); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error save movie snapshot: %v", err))
	}
	sess.AddFlash(session.FlashSuccess, "Movie deleted.")

	return helpers.Render(ctx, listView, fiber.Map{"Title": "Movies", "Movies": movies})
}

func (h *MovieHandler) NewForm(ctx *fiber.Ctx) error {
	return h.renderForm(ctx, request.NewMovieForm(), nil)
}

func (h *MovieHandler) EditForm(ctx *fiber.Ctx) error {
	id, err := movieID(ctx)
	if err != nil {
		return helpers.RenderError(ctx, h.Log, err)
	}

	// call usecase to get movie
	movie, err := h.Usecase.GetMovie(ctx.UserContext(), session.From(ctx).GetToken(), id)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error get movie: %v", err))
		return helpers.RenderError(ctx, h.Log, err)
	}

	return h.renderForm(ctx, request.MovieFormFrom(movie), nil)
}

// Submit handles the standalone create and edit pages.
func (h *MovieHandler) Submit(ctx *fiber.Ctx) error {
	return h.submit(ctx, false)
}

// SubmitOverlay handles the edit overlay of the list page. A saved movie
// replaces its entry in the snapshot.
func (h *MovieHandler) SubmitOverlay(ctx *fiber.Ctx) error {
	return h.submit(ctx, true)
}

func (h *MovieHandler) submit(ctx *fiber.Ctx, overlay bool) error {
	render := h.renderForm
	if overlay {
		render = h.renderOverlay
	}

	form, err := h.bindMovieForm(ctx)
	if goerrors.Is(err, errUploadTooLarge) {
		h.Log.Ctx(ctx.UserContext()).Warn(fmt.Sprintf("error read upload: %v", err))
		ctx.Status(errors.Code(errUploadTooLarge))
		return render(ctx, form, []string{fmt.Sprintf("Images must be %d MiB or smaller.", maxUpload>>20)})
	}
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error parse request: %v", err))
		return helpers.RenderError(ctx, h.Log, errors.BadRequest("error parse request"))
	}

	action, index, err := request.ParseAction(ctx.FormValue("action"))
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error parse action: %v", err))
		return helpers.RenderError(ctx, h.Log, errors.BadRequest("error parse action"))
	}

	switch action {
	case request.ActionAddShowtime:
		form.AddShowtime()
		return render(ctx, form, nil)
	case request.ActionRemoveShowtime:
		form.RemoveShowtime(index)
		return render(ctx, form, nil)
	}

	sess := session.From(ctx)

	if form.HasEmptyShowtime() {
		sess.AddFlash(session.FlashWarning, "Please fill in every showtime before saving.")
		ctx.Status(fiber.StatusUnprocessableEntity)
		return render(ctx, form, nil)
	}

	if err := h.Validator.Struct(form); err != nil {
		h.Log.Ctx(ctx.UserContext()).Warn(fmt.Sprintf("error validate request: %v", err))
		ctx.Status(fiber.StatusUnprocessableEntity)
		return render(ctx, form, validationMessages(err))
	}

	// call usecase to save movie
	movie, err := h.Usecase.SaveMovie(ctx.UserContext(), sess.GetToken(), form)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error save movie: %v", err))
		sess.AddFlash(session.FlashError, errors.Message(err))
		ctx.Status(errors.Code(err))
		return render(ctx, form, nil)
	}

	if !overlay {
		sess.AddFlash(session.FlashSuccess, fmt.Sprintf("%q saved.", movie.Title))
		return ctx.Redirect(moviesPath, fiber.StatusSeeOther)
	}

	movies := h.snapshot(ctx).Replace(movie)
	if err := sess.SaveState(snapshotKey, movies); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error save movie snapshot: %v", err))
	}
	sess.AddFlash(session.FlashSuccess, fmt.Sprintf("%q saved.", movie.Title))

	return helpers.Render(ctx, listView, fiber.Map{"Title": "Movies", "Movies": movies})
}

func (h *MovieHandler) renderForm(ctx *fiber.Ctx, form *request.MovieForm, fieldErrors []string) error {
	title := "New movie"
	if form.IsEdit() {
		title = "Edit movie"
	}
	return helpers.Render(ctx, formView, fiber.Map{
		"Title":  title,
		"Form":   form,
		"Errors": fieldErrors,
		"Action": formAction(form, false),
	})
}

func (h *MovieHandler) renderOverlay(ctx *fiber.Ctx, form *request.MovieForm, fieldErrors []string) error {
	return helpers.Render(ctx, listView, fiber.Map{
		"Title":         "Movies",
		"Movies":        h.snapshot(ctx),
		"Overlay":       form,
		"OverlayAction": formAction(form, true),
		"Errors":        fieldErrors,
	})
}

func (h *MovieHandler) snapshot(ctx *fiber.Ctx) entity.MovieList {
	var movies entity.MovieList
	if _, err := session.From(ctx).LoadState(snapshotKey, &movies); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error load movie snapshot: %v", err))
	}
	return movies
}

func (h *MovieHandler) bindMovieForm(ctx *fiber.Ctx) (*request.MovieForm, error) {
	form := &request.MovieForm{}
	if err := ctx.BodyParser(form); err != nil {
		return nil, err
	}

	if id := ctx.Params("id"); id != "" {
		parsed, err := strconv.ParseInt(id, 10, 64)
		if err != nil {
			return nil, err
		}
		form.ID = parsed
	}

	values, files, err := formValues(ctx)
	if err != nil {
		return nil, err
	}
	form.Showtimes = request.ParseShowtimes(values)

	// the scalar fields are kept when an upload is refused so the form can be re-rendered
	if form.Image, err = readUpload(files, "image"); err != nil {
		return form, fmt.Errorf("image: %w", err)
	}
	if form.CinemaListing, err = readUpload(files, "cinema_listing"); err != nil {
		return form, fmt.Errorf("cinema_listing: %w", err)
	}
	return form, nil
}

func formValues(ctx *fiber.Ctx) (map[string][]string, map[string][]*multipart.FileHeader, error) {
	if strings.HasPrefix(string(ctx.Request().Header.ContentType()), fiber.MIMEMultipartForm) {
		form, err := ctx.MultipartForm()
		if err != nil {
			return nil, nil, err
		}
		return form.Value, form.File, nil
	}

	values := make(map[string][]string)
	ctx.Request().PostArgs().VisitAll(func(k, v []byte) {
		values[string(k)] = append(values[string(k)], string(v))
	})
	return values, nil, nil
}

func readUpload(files map[string][]*multipart.FileHeader, field string) (*request.Upload, error) {
	headers := files[field]
	if len(headers) == 0 || headers[0].Filename == "" {
		return nil, nil
	}

	fh := headers[0]
	if fh.Size > maxUpload {
		return nil, errUploadTooLarge
	}
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	content, err := io.ReadAll(io.LimitReader(f, maxUpload+1))
	if err != nil {
		return nil, err
	}
	if len(content) > maxUpload {
		return nil, errUploadTooLarge
	}
	return &request.Upload{
		Filename:    fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Content:     content,
	}, nil
}

func formAction(form *request.MovieForm, overlay bool) string {
	switch {
	case overlay:
		return fmt.Sprintf("%s/%d/overlay", moviesPath, form.ID)
	case form.IsEdit():
		return fmt.Sprintf("%s/%d/edit", moviesPath, form.ID)
	default:
		return moviesPath + "/new"
	}
}

func validationMessages(err error) []string {
	var verrs validator.ValidationErrors
	if !goerrors.As(err, &verrs) {
		return []string{err.Error()}
	}

	messages := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			messages = append(messages, fmt.Sprintf("%s is required.", fe.Field()))
		case "oneof":
			messages = append(messages, fmt.Sprintf("%s must be one of %s.", fe.Field(), fe.Param()))
		case "datetime":
			messages = append(messages, fmt.Sprintf("%s must be a date (YYYY-MM-DD).", fe.Field()))
		default:
			messages = append(messages, fmt.Sprintf("%s is invalid.", fe.Field()))
		}
	}
	return messages
}
