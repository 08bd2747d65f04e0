package http

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-product-keeper/internal/app"
	"github.com/MKhiriev/go-product-keeper/internal/service"
	"github.com/MKhiriev/go-product-keeper/models"
)

func TestStatusFromOutcome(t *testing.T) {
	tests := []struct {
		name string
		out  service.Outcome
		want int
	}{
		{"list success", service.Outcome{Kind: service.OutcomeSuccess, Operation: service.OperationList}, http.StatusOK},
		{"get success", service.Outcome{Kind: service.OutcomeSuccess, Operation: service.OperationGet}, http.StatusOK},
		{"create success", service.Outcome{Kind: service.OutcomeSuccess, Operation: service.OperationCreate}, http.StatusCreated},
		{"update success", service.Outcome{Kind: service.OutcomeSuccess, Operation: service.OperationUpdate}, http.StatusOK},
		{"delete success", service.Outcome{Kind: service.OutcomeSuccess, Operation: service.OperationDelete}, http.StatusNoContent},
		{"not found", service.Outcome{Kind: service.OutcomeNotFound, Operation: service.OperationGet}, http.StatusNotFound},
		{"invalid payload", service.Outcome{Kind: service.OutcomeInvalidPayload, Operation: service.OperationCreate}, http.StatusBadRequest},
		{"unauthorized", service.Outcome{Kind: service.OutcomeUnauthorized, Operation: service.OperationUpdate}, http.StatusUnauthorized},
		{"missing token", service.Outcome{Kind: service.OutcomeMissingToken, Operation: service.OperationDelete}, http.StatusUnauthorized},
		{"internal", service.Outcome{Kind: service.OutcomeInternal, Operation: service.OperationList}, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := statusFromOutcome(tt.out)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStatusFromOutcome_UnknownKind(t *testing.T) {
	for _, kind := range []service.OutcomeKind{0, 42} {
		got, err := statusFromOutcome(service.Outcome{Kind: kind})
		assert.ErrorIs(t, err, ErrUnknownOutcome)
		assert.Equal(t, http.StatusInternalServerError, got)
	}
}

func TestErrorResponseFromOutcome(t *testing.T) {
	fields := map[string]string{"name": "must not be empty"}

	tests := []struct {
		name string
		out  service.Outcome
		want models.ErrorResponse
	}{
		{
			name: "not found carries id",
			out:  service.Outcome{Kind: service.OutcomeNotFound, ID: 12},
			want: models.ErrorResponse{Error: app.MsgProductNotFound, ID: 12},
		},
		{
			name: "invalid payload carries fields",
			out:  service.Outcome{Kind: service.OutcomeInvalidPayload, Fields: fields},
			want: models.ErrorResponse{Error: app.MsgInvalidPayload, Fields: fields},
		},
		{
			name: "missing token",
			out:  service.Outcome{Kind: service.OutcomeMissingToken},
			want: models.ErrorResponse{Error: app.MsgMissingToken},
		},
		{
			name: "unauthorized",
			out:  service.Outcome{Kind: service.OutcomeUnauthorized},
			want: models.ErrorResponse{Error: app.MsgTokenIsExpiredOrInvalid},
		},
		{
			name: "internal hides the cause",
			out:  service.Outcome{Kind: service.OutcomeInternal, Err: assert.AnError},
			want: models.ErrorResponse{Error: app.MsgInternalServerError},
		},
		{
			name: "unknown kind",
			out:  service.Outcome{Kind: 99},
			want: models.ErrorResponse{Error: app.MsgInternalServerError},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, errorResponseFromOutcome(tt.out))
		})
	}
}
