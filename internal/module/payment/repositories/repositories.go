package repositories

import (
	"cinema-web/internal/module/payment/models/entity"
	"cinema-web/internal/pkg/api"
	"cinema-web/internal/pkg/log"
	"context"
	"net/url"
)

type repositories struct {
	api api.Fetcher
	log log.Logger
}

type Repositories interface {
	FindInvoiceByPreferenceID(ctx context.Context, preferenceID string) (entity.Invoice, error)
	FindAllPayments(ctx context.Context, token string) ([]entity.Payment, error)
}

func New(api api.Fetcher, log log.Logger) Repositories {
	return &repositories{
		api: api,
		log: log,
	}
}

// FindInvoiceByPreferenceID implements Repositories.
func (r *repositories) FindInvoiceByPreferenceID(ctx context.Context, preferenceID string) (entity.Invoice, error) {
	var invoice entity.Invoice
	err := r.api.FetchJSON(ctx, api.Request{
		Path:  "/payment-success/",
		Query: url.Values{"preference_id": {preferenceID}},
	}, &invoice)
	if err != nil {
		return entity.Invoice{}, err
	}
	return invoice, nil
}

// FindAllPayments implements Repositories.
func (r *repositories) FindAllPayments(ctx context.Context, token string) ([]entity.Payment, error) {
	var payments []entity.Payment
	if err := r.api.FetchJSON(ctx, api.Request{Path: "/payments/", Token: token}, &payments); err != nil {
		return nil, err
	}
	return payments, nil
}
