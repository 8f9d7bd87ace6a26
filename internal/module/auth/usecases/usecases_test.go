package usecases_test

import (
	"context"
	"net/http"
	"testing"

	"cinema-web/internal/module/auth/mocks"
	"cinema-web/internal/module/auth/models/request"
	"cinema-web/internal/module/auth/models/response"
	"cinema-web/internal/module/auth/usecases"
	"cinema-web/internal/pkg/api"
	"cinema-web/internal/pkg/errors"
	log_internal "cinema-web/internal/pkg/log"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

var (
	uc   usecases.Usecase
	repo *mocks.Repositories
	ctx  context.Context
)

func setup() {
	repo = &mocks.Repositories{}
	uc = usecases.New(repo, log_internal.New(log_internal.Setup()))
	ctx = context.Background()
}

func teardown() {
	repo = nil
	uc = nil
}

func TestLogin(t *testing.T) {
	req := &request.Login{Username: "admin", Password: "secret"}

	t.Run("success", func(t *testing.T) {
		setup()
		defer teardown()

		repo.On("Login", mock.Anything, "csrf", req).Return(response.Login{Token: "tok"}, nil)

		token, err := uc.Login(ctx, "csrf", req)
		assert.NoError(t, err)
		assert.Equal(t, "tok", token)
		repo.AssertNotCalled(t, "FetchCSRFToken", mock.Anything)
	})

	t.Run("fetches csrf token when missing", func(t *testing.T) {
		setup()
		defer teardown()

		repo.On("FetchCSRFToken", mock.Anything).Return("fresh", nil)
		repo.On("Login", mock.Anything, "fresh", req).Return(response.Login{Token: "tok"}, nil)

		token, err := uc.Login(ctx, "", req)
		assert.NoError(t, err)
		assert.Equal(t, "tok", token)
	})

	t.Run("backend error message is surfaced", func(t *testing.T) {
		setup()
		defer teardown()

		repo.On("Login", mock.Anything, "csrf", req).Return(response.Login{}, &api.APIError{
			StatusCode: http.StatusUnauthorized,
			Body:       `{"error":"Credenciales inválidas"}`,
		})

		_, err := uc.Login(ctx, "csrf", req)
		assert.Equal(t, errors.UnauthorizedError("Credenciales inválidas"), err)
	})

	t.Run("default message without backend detail", func(t *testing.T) {
		setup()
		defer teardown()

		repo.On("Login", mock.Anything, "csrf", req).Return(response.Login{}, &api.APIError{StatusCode: http.StatusBadRequest})

		_, err := uc.Login(ctx, "csrf", req)
		assert.Equal(t, errors.UnauthorizedError("Invalid username or password."), err)
	})

	t.Run("empty token is rejected", func(t *testing.T) {
		setup()
		defer teardown()

		repo.On("Login", mock.Anything, "csrf", req).Return(response.Login{}, nil)

		_, err := uc.Login(ctx, "csrf", req)
		assert.Equal(t, http.StatusUnauthorized, errors.Code(err))
	})

	t.Run("backend down", func(t *testing.T) {
		setup()
		defer teardown()

		repo.On("Login", mock.Anything, "csrf", req).Return(response.Login{}, assert.AnError)

		_, err := uc.Login(ctx, "csrf", req)
		assert.Equal(t, http.StatusBadGateway, errors.Code(err))
	})
}

func TestLogout(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		setup()
		defer teardown()

		repo.On("Logout", mock.Anything, "tok", "csrf").Return(nil)
		assert.NoError(t, uc.Logout(ctx, "tok", "csrf"))
		repo.AssertExpectations(t)
	})

	t.Run("no token no call", func(t *testing.T) {
		setup()
		defer teardown()

		assert.NoError(t, uc.Logout(ctx, "", "csrf"))
		repo.AssertNotCalled(t, "Logout", mock.Anything, mock.Anything, mock.Anything)
	})
}
