package errors

import (
	goerrors "errors"
	"net/http"
)

type CustomError struct {
	Code    int
	Message string
}

func (e *CustomError) Error() string {
	return e.Message
}

func BadRequest(msg string) error {
	return &CustomError{Code: http.StatusBadRequest, Message: msg}
}

func UnauthorizedError(msg string) error {
	return &CustomError{Code: http.StatusUnauthorized, Message: msg}
}

func NotFound(msg string) error {
	return &CustomError{Code: http.StatusNotFound, Message: msg}
}

func Conflict(msg string) error {
	return &CustomError{Code: http.StatusConflict, Message: msg}
}

func BadGateway(msg string) error {
	return &CustomError{Code: http.StatusBadGateway, Message: msg}
}

func InternalServerError(msg string) error {
	return &CustomError{Code: http.StatusInternalServerError, Message: msg}
}

// Code returns the HTTP status carried by err, 500 when it carries none.
func Code(err error) int {
	var ce *CustomError
	if goerrors.As(err, &ce) {
		return ce.Code
	}
	var coded interface{ HTTPStatus() int }
	if goerrors.As(err, &coded) {
		return coded.HTTPStatus()
	}
	return http.StatusInternalServerError
}

// Message returns the user facing message of err.
func Message(err error) string {
	var ce *CustomError
	if goerrors.As(err, &ce) {
		return ce.Message
	}
	return http.StatusText(Code(err))
}
