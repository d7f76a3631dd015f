package errors

import (
	goerrors "errors"
	"fmt"
	"net/http"
	"strings"
)

// Error is the error returned to clients: a message safe to show and the HTTP status it maps to.
type Error struct {
	Message string `json:"message"`
	Status  int    `json:"status"`
}

func (e *Error) Error() string {
	return e.Message
}

func New(message string, status int) *Error {
	return &Error{
		Message: message,
		Status:  status,
	}
}

var (
	ErrNotFound            = New("not found", http.StatusNotFound)
	ErrForbidden           = New("forbidden", http.StatusForbidden)
	ErrUnauthorized        = New("unauthorized", http.StatusUnauthorized)
	ErrBadRequest          = New("bad request", http.StatusBadRequest)
	ErrInvalidToken        = New("invalid token", http.StatusForbidden)
	ErrInternalServerError = New("internal server error", http.StatusInternalServerError)
)

// GetUniqueContraintError turns a duplicate key error from postgres or sqlite into a 409.
func GetUniqueContraintError(err error) *Error {
	if err == nil {
		return nil
	}
	var apiErr *Error
	if goerrors.As(err, &apiErr) {
		return apiErr
	}
	msg := strings.ToLower(err.Error())
	if strings.Contains(msg, "duplicate key") || strings.Contains(msg, "unique constraint") {
		return New(fmt.Sprintf("already exists: %v", err), http.StatusConflict)
	}
	return ErrInternalServerError
}

// StatusOf reports the HTTP status carried by err, or 500 when err is not an *Error.
func StatusOf(err error) int {
	var apiErr *Error
	if goerrors.As(err, &apiErr) {
		return apiErr.Status
	}
	return http.StatusInternalServerError
}
