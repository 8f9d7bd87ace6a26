package entity

import (
	"bytes"
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/goccy/go-json"
)

const (
	StatusApproved = "approved"
	StatusSuccess  = "success"
	StatusRejected = "rejected"
)

// Amount decodes both 150 and "150.00".
type Amount float64

func (a *Amount) UnmarshalJSON(data []byte) error {
	data = bytes.Trim(data, `"`)
	if len(data) == 0 || string(data) == "null" {
		*a = 0
		return nil
	}
	v, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		return fmt.Errorf("invalid amount %q: %w", data, err)
	}
	*a = Amount(v)
	return nil
}

func (a Amount) MarshalJSON() ([]byte, error) {
	return json.Marshal(float64(a))
}

func (a Amount) Float() float64 {
	return float64(a)
}

// String prints the shortest exact form, 700 or 700.5.
func (a Amount) String() string {
	return strconv.FormatFloat(float64(a), 'f', -1, 64)
}

type InvoiceSeat struct {
	Row    string `json:"row"`
	Number int    `json:"number"`
}

type Invoice struct {
	InvoiceID   string        `json:"invoice_id"`
	MovieTitle  string        `json:"movie_title"`
	Seats       []InvoiceSeat `json:"seats"`
	TotalAmount Amount        `json:"total_amount"`
	HallName    string        `json:"hall_name"`
	Format      string        `json:"format"`
	Showtime    string        `json:"showtime"`
}

// QRPayload is the text encoded in the receipt QR code.
func (i Invoice) QRPayload() string {
	return fmt.Sprintf("Invoice ID: %s\nMovie: %s\nTotal: $%s", i.InvoiceID, i.MovieTitle, i.TotalAmount)
}

type Payment struct {
	ID        int64     `json:"id"`
	Amount    Amount    `json:"amount"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	User      *int64    `json:"user"`
	Movie     int64     `json:"movie"`
	Seats     []int64   `json:"seats"`
}

func (p Payment) Approved() bool {
	return p.Status == StatusApproved || p.Status == StatusSuccess
}

type SalesDay struct {
	Date         string
	TotalSales   float64
	TotalTickets int
	Approved     int
	Rejected     int
	DailyChange  float64
}

// AggregateSales groups payments per UTC calendar day. TotalSales is the
// running total of approved amounts up to and including that day.
// DailyChange is the percent change of TotalSales against the previous day,
// 0 for the first day or when the previous total is 0.
func AggregateSales(payments []Payment) []SalesDay {
	sorted := make([]Payment, len(payments))
	copy(sorted, payments)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.Before(sorted[j].CreatedAt)
	})

	var (
		days       []SalesDay
		cumulative float64
	)
	for _, p := range sorted {
		date := p.CreatedAt.UTC().Format("2006-01-02")
		if len(days) == 0 || days[len(days)-1].Date != date {
			days = append(days, SalesDay{Date: date, TotalSales: cumulative})
		}
		day := &days[len(days)-1]

		switch {
		case p.Approved():
			cumulative += p.Amount.Float()
			day.TotalSales = cumulative
			day.TotalTickets += len(p.Seats)
			day.Approved++
		case p.Status == StatusRejected:
			day.Rejected++
		}
	}

	for i := range days {
		if i == 0 || days[i-1].TotalSales == 0 {
			continue
		}
		prev := days[i-1].TotalSales
		days[i].DailyChange = (days[i].TotalSales - prev) / prev * 100
	}
	return days
}
