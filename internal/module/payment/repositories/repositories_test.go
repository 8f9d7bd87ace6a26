package repositories_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"cinema-web/internal/module/payment/repositories"
	"cinema-web/internal/pkg/api"
	log_internal "cinema-web/internal/pkg/log"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	repo repositories.Repositories
	srv  *httptest.Server
)

func setup(h http.HandlerFunc) {
	srv = httptest.NewServer(h)
	logger := log_internal.New(log_internal.Setup())
	repo = repositories.New(api.New(srv.URL+"/api", srv.Client(), logger), logger)
}

func teardown() {
	srv.Close()
	repo = nil
}

func TestFindInvoiceByPreferenceID(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		setup(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/payment-success/", r.URL.Path)
			assert.Equal(t, "pref-1", r.URL.Query().Get("preference_id"))
			_, _ = w.Write([]byte(`{"movie_title":"Dune","seats":[{"row":"A","number":1},{"row":"A","number":2}],"total_amount":"200.00","hall_name":"Hall 1","format":"3D","showtime":"10/09/2024 20:00"}`))
		})
		defer teardown()

		invoice, err := repo.FindInvoiceByPreferenceID(context.Background(), "pref-1")
		require.NoError(t, err)
		assert.Equal(t, "Dune", invoice.MovieTitle)
		assert.Len(t, invoice.Seats, 2)
		assert.Equal(t, 200.0, invoice.TotalAmount.Float())
		assert.Equal(t, "10/09/2024 20:00", invoice.Showtime)
	})

	t.Run("not found", func(t *testing.T) {
		setup(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"error":"Payment not found"}`))
		})
		defer teardown()

		_, err := repo.FindInvoiceByPreferenceID(context.Background(), "missing")
		assert.True(t, api.IsNotFound(err))
	})
}

func TestFindAllPayments(t *testing.T) {
	setup(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/payments/", r.URL.Path)
		assert.Equal(t, "Token abc", r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`[{"id":1,"amount":"100.00","status":"approved","created_at":"2024-09-10T10:00:00Z","user":3,"movie":1,"seats":[1]}]`))
	})
	defer teardown()

	payments, err := repo.FindAllPayments(context.Background(), "abc")
	require.NoError(t, err)
	require.Len(t, payments, 1)
	assert.True(t, payments[0].Approved())
	require.NotNil(t, payments[0].User)
	assert.Equal(t, int64(3), *payments[0].User)
}
