package models

// ErrorResponse is the JSON body written for every non-2xx response of the
// products API.
//
// Only the fields relevant to the failure are populated: ID for a missing
// product, Fields for payload violations.
type ErrorResponse struct {
	// Error is a short human-readable description of the failure.
	Error string `json:"error"`

	// ID is the product identifier that could not be found.
	ID int64 `json:"id,omitempty"`

	// Fields maps each invalid payload field to the reason it was rejected.
	Fields map[string]string `json:"fields,omitempty"`
}
