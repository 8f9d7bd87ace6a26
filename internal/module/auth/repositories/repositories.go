package repositories

import (
	"cinema-web/internal/module/auth/models/request"
	"cinema-web/internal/module/auth/models/response"
	"cinema-web/internal/pkg/api"
	"cinema-web/internal/pkg/log"
	"context"
	"net/http"
)

type repositories struct {
	api api.Fetcher
	log log.Logger
}

type Repositories interface {
	FetchCSRFToken(ctx context.Context) (string, error)
	Login(ctx context.Context, csrfToken string, req *request.Login) (response.Login, error)
	Logout(ctx context.Context, token, csrfToken string) error
	// ProbeToken fails when the backend rejects token.
	ProbeToken(ctx context.Context, token string) error
}

func New(api api.Fetcher, log log.Logger) Repositories {
	return &repositories{
		api: api,
		log: log,
	}
}

// FetchCSRFToken implements Repositories.
func (r *repositories) FetchCSRFToken(ctx context.Context) (string, error) {
	var resp response.CSRF
	if err := r.api.FetchJSON(ctx, api.Request{Path: "/csrf/"}, &resp); err != nil {
		r.log.Error(ctx, "error fetch csrf token", err)
		return "", err
	}
	return resp.CSRFToken, nil
}

// Login implements Repositories.
func (r *repositories) Login(ctx context.Context, csrfToken string, req *request.Login) (response.Login, error) {
	var resp response.Login
	err := r.api.FetchJSON(ctx, api.Request{
		Method:    http.MethodPost,
		Path:      "/login/",
		Body:      req,
		CSRFToken: csrfToken,
	}, &resp)
	if err != nil {
		return response.Login{}, err
	}
	return resp, nil
}

// Logout implements Repositories.
func (r *repositories) Logout(ctx context.Context, token, csrfToken string) error {
	return r.api.FetchJSON(ctx, api.Request{
		Method:    http.MethodPost,
		Path:      "/logout/",
		Token:     token,
		CSRFToken: csrfToken,
	}, nil)
}

// ProbeToken implements Repositories.
func (r *repositories) ProbeToken(ctx context.Context, token string) error {
	return r.api.FetchJSON(ctx, api.Request{Path: "/movies/", Token: token}, nil)
}
