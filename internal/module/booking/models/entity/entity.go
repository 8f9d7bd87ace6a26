package entity

import (
	"cinema-web/internal/module/booking/models/request"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
)

const DefaultUnitPrice = 100.0

var validate = validator.New()

type Seat struct {
	ID         int64  `json:"id"`
	Row        string `json:"row"`
	Number     int    `json:"number"`
	IsReserved bool   `json:"is_reserved"`
}

func (s Seat) Label() string {
	return s.Row + strconv.Itoa(s.Number)
}

// Picker is the seat selection state of one movie page. Selected keeps
// insertion order and only ever holds ids of seats that are not reserved.
type Picker struct {
	MovieID    int64   `json:"movie_id"`
	Seats      []Seat  `json:"seats"`
	Selected   []int64 `json:"selected"`
	Email      string  `json:"email"`
	ShowtimeID int64   `json:"showtime_id,omitempty"`
	Format     string  `json:"format,omitempty"`
	UnitPrice  float64 `json:"unit_price"`
}

func NewPicker(movieID int64, seats []Seat, unitPrice float64) *Picker {
	if unitPrice <= 0 {
		unitPrice = DefaultUnitPrice
	}
	return &Picker{
		MovieID:   movieID,
		Seats:     seats,
		Selected:  []int64{},
		UnitPrice: unitPrice,
	}
}

// Carry copies the form state of a previous picker for the same movie,
// dropping selections that are no longer selectable.
func (p *Picker) Carry(prev *Picker) {
	if prev == nil || prev.MovieID != p.MovieID {
		return
	}
	p.Email = prev.Email
	p.ShowtimeID = prev.ShowtimeID
	p.Format = prev.Format
	for _, id := range prev.Selected {
		if p.Selectable(id) && !p.IsSelected(id) {
			p.Selected = append(p.Selected, id)
		}
	}
}

func (p *Picker) seat(id int64) (Seat, bool) {
	for _, s := range p.Seats {
		if s.ID == id {
			return s, true
		}
	}
	return Seat{}, false
}

// Selectable reports whether id is a known seat that is not reserved.
func (p *Picker) Selectable(id int64) bool {
	s, ok := p.seat(id)
	return ok && !s.IsReserved
}

func (p *Picker) IsSelected(id int64) bool {
	for _, sel := range p.Selected {
		if sel == id {
			return true
		}
	}
	return false
}

// Toggle flips membership of id. Reserved or unknown seats are ignored and
// false is returned.
func (p *Picker) Toggle(id int64) bool {
	if !p.Selectable(id) {
		return false
	}
	for i, sel := range p.Selected {
		if sel == id {
			p.Selected = append(p.Selected[:i:i], p.Selected[i+1:]...)
			return true
		}
	}
	p.Selected = append(p.Selected, id)
	return true
}

func (p *Picker) SetEmail(email string) {
	p.Email = email
}

func (p *Picker) EmailValid() bool {
	return validate.Var(p.Email, "required,email") == nil
}

func (p *Picker) CanReserve() bool {
	return len(p.Selected) > 0 && p.EmailValid()
}

func (p *Picker) Subtotal() float64 {
	return float64(len(p.Selected)) * p.UnitPrice
}

// SelectedLabels returns row+number labels in selection order.
func (p *Picker) SelectedLabels() []string {
	labels := make([]string, 0, len(p.Selected))
	for _, id := range p.Selected {
		if s, ok := p.seat(id); ok {
			labels = append(labels, s.Label())
		}
	}
	return labels
}

func (p *Picker) SelectedIDs() []int64 {
	ids := make([]int64, len(p.Selected))
	copy(ids, p.Selected)
	return ids
}

func (p *Picker) ReservationRequest() *request.Reservation {
	return &request.Reservation{Movie: p.MovieID, Seats: p.SelectedIDs()}
}

func (p *Picker) PaymentRequest() *request.Payment {
	return &request.Payment{
		Seats:      p.SelectedIDs(),
		Email:      p.Email,
		Format:     p.Format,
		ShowtimeID: p.ShowtimeID,
	}
}

func (p *Picker) ClearSelection() {
	p.Selected = []int64{}
}

const (
	CheckoutStarted   = "started"
	CheckoutAbandoned = "abandoned"
)

type CheckoutEvent struct {
	Status       string    `json:"status"`
	MovieID      int64     `json:"movie_id"`
	SeatIDs      []int64   `json:"seat_ids"`
	Email        string    `json:"email"`
	PreferenceID string    `json:"preference_id,omitempty"`
	Reason       string    `json:"reason,omitempty"`
	OccurredAt   time.Time `json:"occurred_at"`
}
