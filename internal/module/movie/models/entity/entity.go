package entity

import (
	"strings"
	"time"

	"github.com/goccy/go-json"
)

const (
	Format2D = "2D"
	Format3D = "3D"
)

var showtimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
}

type Movie struct {
	ID            int64      `json:"id"`
	Title         string     `json:"title"`
	Description   string     `json:"description"`
	ReleaseDate   string     `json:"release_date"`
	Image         string     `json:"image"`
	CinemaListing string     `json:"cinema_listing"`
	HallName      string     `json:"hall_name"`
	Format        string     `json:"format"`
	Duration      int        `json:"duration"`
	Language      string     `json:"language"`
	Showtimes     []Showtime `json:"showtimes"`
}

// Showtime accepts both {"id": 1, "showtime": "..."} and a bare timestamp string.
type Showtime struct {
	ID  int64     `json:"id,omitempty"`
	At  time.Time `json:"-"`
	Raw string    `json:"showtime"`
}

func (s *Showtime) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		if err := json.Unmarshal(data, &s.Raw); err != nil {
			return err
		}
	} else {
		var obj struct {
			ID       int64  `json:"id"`
			Showtime string `json:"showtime"`
		}
		if err := json.Unmarshal(data, &obj); err != nil {
			return err
		}
		s.ID = obj.ID
		s.Raw = obj.Showtime
	}
	s.At = ParseShowtime(s.Raw)
	return nil
}

// ParseShowtime returns the zero time when raw matches no known layout.
func ParseShowtime(raw string) time.Time {
	raw = strings.TrimSpace(raw)
	for _, layout := range showtimeLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t
		}
	}
	return time.Time{}
}

// Label is the display form, falling back to the raw backend value.
func (s Showtime) Label() string {
	if s.At.IsZero() {
		return s.Raw
	}
	return s.At.Format("Mon 02 Jan 2006 15:04")
}

// InputValue is the datetime-local form value.
func (s Showtime) InputValue() string {
	if s.At.IsZero() {
		return s.Raw
	}
	return s.At.Format("2006-01-02T15:04")
}

// MovieList is the admin list snapshot kept between requests.
type MovieList []Movie

func (l MovieList) Find(id int64) (Movie, bool) {
	for _, m := range l {
		if m.ID == id {
			return m, true
		}
	}
	return Movie{}, false
}

func (l MovieList) Remove(id int64) MovieList {
	out := make(MovieList, 0, len(l))
	for _, m := range l {
		if m.ID != id {
			out = append(out, m)
		}
	}
	return out
}

// Replace swaps the movie with the same id, appending it when absent.
func (l MovieList) Replace(movie Movie) MovieList {
	out := make(MovieList, len(l))
	copy(out, l)
	for i := range out {
		if out[i].ID == movie.ID {
			out[i] = movie
			return out
		}
	}
	return append(out, movie)
}
