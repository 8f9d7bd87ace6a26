package usecases

import (
	"cinema-web/internal/module/auth/models/request"
	"cinema-web/internal/module/auth/repositories"
	"cinema-web/internal/pkg/api"
	"cinema-web/internal/pkg/errors"
	"cinema-web/internal/pkg/log"
	"context"
)

const defaultLoginError = "Invalid username or password."

type usecase struct {
	repo repositories.Repositories
	log  log.Logger
}

type Usecase interface {
	CSRFToken(ctx context.Context) (string, error)
	Login(ctx context.Context, csrfToken string, req *request.Login) (string, error)
	Logout(ctx context.Context, token, csrfToken string) error
}

func New(repo repositories.Repositories, log log.Logger) Usecase {
	return &usecase{
		repo: repo,
		log:  log,
	}
}

// CSRFToken implements Usecase.
func (u *usecase) CSRFToken(ctx context.Context) (string, error) {
	token, err := u.repo.FetchCSRFToken(ctx)
	if err != nil {
		return "", errors.BadGateway("error fetch csrf token")
	}
	return token, nil
}

// Login implements Usecase. A missing csrf token is fetched first.
func (u *usecase) Login(ctx context.Context, csrfToken string, req *request.Login) (string, error) {
	if csrfToken == "" {
		token, err := u.CSRFToken(ctx)
		if err != nil {
			return "", err
		}
		csrfToken = token
	}

	resp, err := u.repo.Login(ctx, csrfToken, req)
	if err != nil {
		if apiErr, ok := api.AsAPIError(err); ok && apiErr.StatusCode < 500 {
			u.log.Warn(ctx, "login rejected", apiErr)
			if detail := apiErr.Detail(); detail != "" {
				return "", errors.UnauthorizedError(detail)
			}
			return "", errors.UnauthorizedError(defaultLoginError)
		}
		u.log.Error(ctx, "error login", err)
		return "", errors.BadGateway("error login")
	}

	if resp.Token == "" {
		return "", errors.UnauthorizedError(defaultLoginError)
	}
	return resp.Token, nil
}

// Logout implements Usecase.
func (u *usecase) Logout(ctx context.Context, token, csrfToken string) error {
	if token == "" {
		return nil
	}
	if err := u.repo.Logout(ctx, token, csrfToken); err != nil {
		u.log.Error(ctx, "error logout", err)
		return errors.BadGateway("error logout")
	}
	return nil
}
