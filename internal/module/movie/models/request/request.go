package request

import (
	"cinema-web/internal/module/movie/models/entity"
	"fmt"
	"strconv"
	"strings"
)

const (
	ActionSave           = "save"
	ActionAddShowtime    = "add_showtime"
	ActionRemoveShowtime = "remove_showtime:"
)

type Upload struct {
	Filename    string
	ContentType string
	Content     []byte
}

// MovieForm is the admin create/edit form. An ID of 0 means create.
type MovieForm struct {
	ID            int64    `json:"id" form:"-"`
	Title         string   `json:"title" form:"title" validate:"required,max=125"`
	Description   string   `json:"description" form:"description" validate:"required"`
	ReleaseDate   string   `json:"release_date" form:"release_date" validate:"required,datetime=2006-01-02"`
	HallName      string   `json:"hall_name" form:"hall_name" validate:"required"`
	Format        string   `json:"format" form:"format" validate:"required,oneof=2D 3D"`
	Duration      int      `json:"duration" form:"duration" validate:"gte=0"`
	Language      string   `json:"language" form:"language"`
	Showtimes     []string `json:"showtimes" form:"-"`
	Image         *Upload  `json:"-" form:"-"`
	CinemaListing *Upload  `json:"-" form:"-"`
}

func NewMovieForm() *MovieForm {
	return &MovieForm{Format: entity.Format2D, Showtimes: []string{""}}
}

func MovieFormFrom(m entity.Movie) *MovieForm {
	form := &MovieForm{
		ID:          m.ID,
		Title:       m.Title,
		Description: m.Description,
		ReleaseDate: m.ReleaseDate,
		HallName:    m.HallName,
		Format:      m.Format,
		Duration:    m.Duration,
		Language:    m.Language,
	}
	if form.Format == "" {
		form.Format = entity.Format2D
	}
	for _, s := range m.Showtimes {
		form.Showtimes = append(form.Showtimes, s.InputValue())
	}
	return form
}

func (f *MovieForm) IsEdit() bool {
	return f.ID != 0
}

func (f *MovieForm) AddShowtime() {
	f.Showtimes = append(f.Showtimes, "")
}

// RemoveShowtime drops the entry at i. Out of range indexes are ignored.
func (f *MovieForm) RemoveShowtime(i int) {
	if i < 0 || i >= len(f.Showtimes) {
		return
	}
	f.Showtimes = append(f.Showtimes[:i:i], f.Showtimes[i+1:]...)
}

func (f *MovieForm) HasEmptyShowtime() bool {
	for _, s := range f.Showtimes {
		if strings.TrimSpace(s) == "" {
			return true
		}
	}
	return false
}

// ParseAction splits the submitted action into its name and showtime index.
func ParseAction(action string) (string, int, error) {
	switch {
	case action == "" || action == ActionSave:
		return ActionSave, -1, nil
	case action == ActionAddShowtime:
		return ActionAddShowtime, -1, nil
	case strings.HasPrefix(action, ActionRemoveShowtime):
		i, err := strconv.Atoi(strings.TrimPrefix(action, ActionRemoveShowtime))
		if err != nil {
			return "", -1, fmt.Errorf("invalid showtime index %q", action)
		}
		return ActionRemoveShowtime, i, nil
	default:
		return "", -1, fmt.Errorf("unknown action %q", action)
	}
}

// ShowtimeKey is the indexed form key the backend expects.
func ShowtimeKey(i int) string {
	return fmt.Sprintf("showtimes[%d]", i)
}

// ParseShowtimes collects showtimes[i] values ordered by index.
func ParseShowtimes(values map[string][]string) []string {
	var showtimes []string
	for i := 0; ; i++ {
		v, ok := values[ShowtimeKey(i)]
		if !ok {
			break
		}
		if len(v) == 0 {
			showtimes = append(showtimes, "")
			continue
		}
		showtimes = append(showtimes, v[0])
	}
	return showtimes
}
