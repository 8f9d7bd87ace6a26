package request_test

import (
	"testing"

	"cinema-web/internal/module/movie/models/entity"
	"cinema-web/internal/module/movie/models/request"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

func TestShowtimeEditing(t *testing.T) {
	form := request.NewMovieForm()
	assert.Equal(t, []string{""}, form.Showtimes)
	assert.True(t, form.HasEmptyShowtime())

	form.Showtimes[0] = "2024-09-10T20:00"
	form.AddShowtime()
	form.Showtimes[1] = "2024-09-11T20:00"
	form.AddShowtime()
	form.Showtimes[2] = "2024-09-12T20:00"
	assert.False(t, form.HasEmptyShowtime())

	form.RemoveShowtime(1)
	assert.Equal(t, []string{"2024-09-10T20:00", "2024-09-12T20:00"}, form.Showtimes)

	form.RemoveShowtime(5)
	assert.Len(t, form.Showtimes, 2)
}

func TestParseAction(t *testing.T) {
	name, i, err := request.ParseAction("remove_showtime:2")
	assert.NoError(t, err)
	assert.Equal(t, request.ActionRemoveShowtime, name)
	assert.Equal(t, 2, i)

	name, _, err = request.ParseAction("")
	assert.NoError(t, err)
	assert.Equal(t, request.ActionSave, name)

	name, _, err = request.ParseAction("add_showtime")
	assert.NoError(t, err)
	assert.Equal(t, request.ActionAddShowtime, name)

	_, _, err = request.ParseAction("remove_showtime:x")
	assert.Error(t, err)

	_, _, err = request.ParseAction("drop_table")
	assert.Error(t, err)
}

func TestParseShowtimes(t *testing.T) {
	values := map[string][]string{
		"showtimes[1]": {"b"},
		"showtimes[0]": {"a"},
		"showtimes[3]": {"skipped"},
		"title":        {"Dune"},
	}
	assert.Equal(t, []string{"a", "b"}, request.ParseShowtimes(values))
	assert.Nil(t, request.ParseShowtimes(map[string][]string{}))
}

func TestMovieFormFrom(t *testing.T) {
	m := entity.Movie{ID: 3, Title: "Dune", Showtimes: []entity.Showtime{{Raw: "2024-09-10T20:00"}}}
	form := request.MovieFormFrom(m)
	assert.True(t, form.IsEdit())
	assert.Equal(t, entity.Format2D, form.Format)
	assert.Equal(t, []string{"2024-09-10T20:00"}, form.Showtimes)
}

func TestMovieFormValidation(t *testing.T) {
	v := validator.New()
	form := &request.MovieForm{
		Title:       "Dune",
		Description: "Spice",
		ReleaseDate: "2024-03-01",
		HallName:    "Sala 1",
		Format:      "3D",
		Showtimes:   []string{"2024-09-10T20:00"},
	}
	assert.NoError(t, v.Struct(form))

	form.Format = "4D"
	assert.Error(t, v.Struct(form))

	form.Format = "2D"
	form.ReleaseDate = "01/03/2024"
	assert.Error(t, v.Struct(form))
}
