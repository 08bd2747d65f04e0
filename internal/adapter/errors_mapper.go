package adapter

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-product-keeper/models"
)

var statusErrors = map[int]error{
	http.StatusBadRequest:          ErrBadRequest,
	http.StatusUnauthorized:        ErrUnauthorized,
	http.StatusNotFound:            ErrNotFound,
	http.StatusMethodNotAllowed:    ErrMethodNotAllowed,
	http.StatusInternalServerError: ErrInternalServerError,
}

// mapHTTPError returns nil for a 2xx response and an *APIError otherwise.
// A body that is not an ErrorResponse is kept as the error message.
func mapHTTPError(resp *resty.Response) error {
	if resp.IsSuccess() {
		return nil
	}

	kind, ok := statusErrors[resp.StatusCode()]
	if !ok {
		kind = ErrUnexpectedStatus
	}

	apiErr := &APIError{StatusCode: resp.StatusCode(), kind: kind}

	var body models.ErrorResponse
	if err := json.Unmarshal(resp.Body(), &body); err == nil && body.Error != "" {
		apiErr.Response = body
		return apiErr
	}

	apiErr.Response.Error = strings.TrimSpace(string(resp.Body()))
	if apiErr.Response.Error == "" {
		apiErr.Response.Error = http.StatusText(resp.StatusCode())
	}

	return apiErr
}
