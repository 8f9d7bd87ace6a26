package api

import (
	goerrors "errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/goccy/go-json"
)

// APIError is returned for any non 2xx backend response.
type APIError struct {
	StatusCode int
	Status     string
	Method     string
	Endpoint   string
	Body       string
}

func (e *APIError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("%s %s: %s", e.Method, e.Endpoint, e.Status)
	}
	return fmt.Sprintf("%s %s: %s: %s", e.Method, e.Endpoint, e.Status, e.Body)
}

// HTTPStatus maps the backend status onto the status shown to the browser.
func (e *APIError) HTTPStatus() int {
	switch e.StatusCode {
	case http.StatusBadRequest, http.StatusUnauthorized, http.StatusForbidden, http.StatusNotFound, http.StatusConflict:
		return e.StatusCode
	default:
		return http.StatusBadGateway
	}
}

// Detail extracts the message the backend put in the body, if any.
func (e *APIError) Detail() string {
	var body map[string]any
	if err := json.Unmarshal([]byte(e.Body), &body); err != nil {
		return ""
	}
	for _, key := range []string{"error", "detail", "message", "non_field_errors"} {
		switch v := body[key].(type) {
		case string:
			return v
		case []any:
			parts := make([]string, 0, len(v))
			for _, p := range v {
				parts = append(parts, fmt.Sprint(p))
			}
			return strings.Join(parts, " ")
		}
	}
	return ""
}

func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if goerrors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

func IsNotFound(err error) bool {
	apiErr, ok := AsAPIError(err)
	return ok && apiErr.StatusCode == http.StatusNotFound
}

func IsUnauthorized(err error) bool {
	apiErr, ok := AsAPIError(err)
	return ok && (apiErr.StatusCode == http.StatusUnauthorized || apiErr.StatusCode == http.StatusForbidden)
}
