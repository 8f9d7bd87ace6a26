package usecases

import (
	"cinema-web/internal/module/payment/models/entity"
	"cinema-web/internal/module/payment/models/response"
	"cinema-web/internal/module/payment/repositories"
	"cinema-web/internal/pkg/api"
	"cinema-web/internal/pkg/errors"
	"cinema-web/internal/pkg/log"
	"context"
	"encoding/base64"
	"html/template"

	"github.com/skip2/go-qrcode"
)

const qrSize = 256

type usecase struct {
	repo repositories.Repositories
	log  log.Logger
}

type Usecase interface {
	GetReceipt(ctx context.Context, preferenceID string) (response.Receipt, error)
	SalesDashboard(ctx context.Context, token string) (response.Dashboard, error)
}

func New(repo repositories.Repositories, log log.Logger) Usecase {
	return &usecase{
		repo: repo,
		log:  log,
	}
}

// GetReceipt implements Usecase.
func (u *usecase) GetReceipt(ctx context.Context, preferenceID string) (response.Receipt, error) {
	if preferenceID == "" {
		return response.Receipt{}, errors.BadRequest("missing payment id")
	}

	invoice, err := u.repo.FindInvoiceByPreferenceID(ctx, preferenceID)
	if err != nil {
		u.log.Error(ctx, "error fetch invoice", err)
		if api.IsNotFound(err) {
			return response.Receipt{}, errors.NotFound("invoice not found")
		}
		return response.Receipt{}, errors.BadGateway("error fetch invoice")
	}
	if invoice.InvoiceID == "" {
		invoice.InvoiceID = preferenceID
	}

	png, err := qrcode.Encode(invoice.QRPayload(), qrcode.Medium, qrSize)
	if err != nil {
		u.log.Error(ctx, "error encode receipt qr code", err)
		return response.Receipt{}, errors.InternalServerError("error encode receipt qr code")
	}

	return response.Receipt{
		Invoice: invoice,
		QRCode:  template.URL("data:image/png;base64," + base64.StdEncoding.EncodeToString(png)),
	}, nil
}

// SalesDashboard implements Usecase.
func (u *usecase) SalesDashboard(ctx context.Context, token string) (response.Dashboard, error) {
	payments, err := u.repo.FindAllPayments(ctx, token)
	if err != nil {
		u.log.Error(ctx, "error fetch payments", err)
		if api.IsUnauthorized(err) {
			return response.Dashboard{}, errors.UnauthorizedError("session expired")
		}
		return response.Dashboard{}, errors.BadGateway("error fetch payments")
	}

	days := entity.AggregateSales(payments)
	dashboard := response.Dashboard{Days: days}
	for _, d := range days {
		dashboard.TotalTickets += d.TotalTickets
		dashboard.Approved += d.Approved
		dashboard.Rejected += d.Rejected
	}
	if len(days) > 0 {
		dashboard.TotalSales = days[len(days)-1].TotalSales
	}
	return dashboard, nil
}
