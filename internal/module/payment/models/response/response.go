package response

import (
	"cinema-web/internal/module/payment/models/entity"
	"html/template"
)

// Receipt is the payment-success page model. QRCode is a data URI.
type Receipt struct {
	Invoice entity.Invoice
	QRCode  template.URL
}

type Dashboard struct {
	Days         []entity.SalesDay
	TotalSales   float64
	TotalTickets int
	Approved     int
	Rejected     int
}
