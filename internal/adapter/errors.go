package adapter

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-product-keeper/models"
)

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrNotFound            = errors.New("product not found")
	ErrMethodNotAllowed    = errors.New("method not allowed")
	ErrInternalServerError = errors.New("internal server error")
	ErrUnexpectedStatus    = errors.New("unexpected response status")
	ErrEmptyAddress        = errors.New("empty address")
)

// APIError is a non-2xx response of the products API. It unwraps to the
// sentinel error matching its status code.
type APIError struct {
	StatusCode int
	Response   models.ErrorResponse

	kind error
}

func (e *APIError) Error() string {
	msg := e.Response.Error
	if msg == "" {
		msg = e.kind.Error()
	}

	switch {
	case len(e.Response.Fields) > 0:
		return fmt.Sprintf("http %d: %s: %v", e.StatusCode, msg, e.Response.Fields)
	case e.Response.ID != 0:
		return fmt.Sprintf("http %d: %s: id %d", e.StatusCode, msg, e.Response.ID)
	default:
		return fmt.Sprintf("http %d: %s", e.StatusCode, msg)
	}
}

func (e *APIError) Unwrap() error {
	return e.kind
}
