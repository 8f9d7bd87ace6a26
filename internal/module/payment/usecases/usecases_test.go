package usecases_test

import (
	"context"
	"encoding/base64"
	"net/http"
	"strings"
	"testing"
	"time"

	"cinema-web/internal/module/payment/mocks"
	"cinema-web/internal/module/payment/models/entity"
	"cinema-web/internal/module/payment/usecases"
	"cinema-web/internal/pkg/api"
	"cinema-web/internal/pkg/errors"
	log_internal "cinema-web/internal/pkg/log"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	uc       usecases.Usecase
	repoMock *mocks.Repositories
	ctx      context.Context
)

func setup() {
	repoMock = new(mocks.Repositories)
	uc = usecases.New(repoMock, log_internal.New(log_internal.Setup()))
	ctx = context.Background()
}

func teardown() {
	repoMock = nil
	uc = nil
}

func TestGetReceipt(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		setup()
		defer teardown()

		repoMock.On("FindInvoiceByPreferenceID", mock.Anything, "pref-1").Return(entity.Invoice{
			MovieTitle:  "Dune",
			Seats:       []entity.InvoiceSeat{{Row: "A", Number: 1}},
			TotalAmount: 100,
		}, nil).Once()

		receipt, err := uc.GetReceipt(ctx, "pref-1")
		require.NoError(t, err)
		assert.Equal(t, "pref-1", receipt.Invoice.InvoiceID)

		prefix := "data:image/png;base64,"
		require.True(t, strings.HasPrefix(string(receipt.QRCode), prefix))
		png, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(string(receipt.QRCode), prefix))
		require.NoError(t, err)
		assert.Equal(t, "\x89PNG", string(png[:4]))
		repoMock.AssertNumberOfCalls(t, "FindInvoiceByPreferenceID", 1)
	})

	t.Run("keeps backend invoice id", func(t *testing.T) {
		setup()
		defer teardown()

		repoMock.On("FindInvoiceByPreferenceID", mock.Anything, "pref-1").Return(entity.Invoice{InvoiceID: "INV-9"}, nil).Once()

		receipt, err := uc.GetReceipt(ctx, "pref-1")
		require.NoError(t, err)
		assert.Equal(t, "INV-9", receipt.Invoice.InvoiceID)
	})

	t.Run("missing id", func(t *testing.T) {
		setup()
		defer teardown()

		_, err := uc.GetReceipt(ctx, "")
		assert.Equal(t, http.StatusBadRequest, errors.Code(err))
		repoMock.AssertNotCalled(t, "FindInvoiceByPreferenceID", mock.Anything, mock.Anything)
	})

	t.Run("not found", func(t *testing.T) {
		setup()
		defer teardown()

		repoMock.On("FindInvoiceByPreferenceID", mock.Anything, "gone").
			Return(entity.Invoice{}, &api.APIError{StatusCode: http.StatusNotFound}).Once()

		_, err := uc.GetReceipt(ctx, "gone")
		assert.Equal(t, http.StatusNotFound, errors.Code(err))
	})

	t.Run("backend down", func(t *testing.T) {
		setup()
		defer teardown()

		repoMock.On("FindInvoiceByPreferenceID", mock.Anything, "pref-1").
			Return(entity.Invoice{}, &api.APIError{StatusCode: http.StatusInternalServerError}).Once()

		_, err := uc.GetReceipt(ctx, "pref-1")
		assert.Equal(t, http.StatusBadGateway, errors.Code(err))
	})
}

func TestSalesDashboard(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		setup()
		defer teardown()

		at := time.Date(2024, 9, 10, 10, 0, 0, 0, time.UTC)
		repoMock.On("FindAllPayments", mock.Anything, "abc").Return([]entity.Payment{
			{Amount: 100, Status: "approved", CreatedAt: at, Seats: []int64{1}},
			{Amount: 200, Status: "approved", CreatedAt: at.AddDate(0, 0, 1), Seats: []int64{2, 3}},
			{Amount: 100, Status: "rejected", CreatedAt: at.AddDate(0, 0, 1), Seats: []int64{4}},
		}, nil).Once()

		dashboard, err := uc.SalesDashboard(ctx, "abc")
		require.NoError(t, err)
		assert.Len(t, dashboard.Days, 2)
		assert.Equal(t, 300.0, dashboard.TotalSales)
		assert.Equal(t, 3, dashboard.TotalTickets)
		assert.Equal(t, 2, dashboard.Approved)
		assert.Equal(t, 1, dashboard.Rejected)
	})

	t.Run("unauthorized", func(t *testing.T) {
		setup()
		defer teardown()

		repoMock.On("FindAllPayments", mock.Anything, "stale").
			Return(nil, &api.APIError{StatusCode: http.StatusUnauthorized}).Once()

		_, err := uc.SalesDashboard(ctx, "stale")
		assert.Equal(t, http.StatusUnauthorized, errors.Code(err))
	})
}
