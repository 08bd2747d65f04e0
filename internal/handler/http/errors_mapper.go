package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-product-keeper/internal/app"
	"github.com/MKhiriev/go-product-keeper/internal/service"
	"github.com/MKhiriev/go-product-keeper/models"
)

var outcomeStatusMap = map[service.OutcomeKind]int{
	service.OutcomeNotFound:       http.StatusNotFound,
	service.OutcomeInvalidPayload: http.StatusBadRequest,
	service.OutcomeUnauthorized:   http.StatusUnauthorized,
	service.OutcomeMissingToken:   http.StatusUnauthorized,
	service.OutcomeInternal:       http.StatusInternalServerError,
}

// statusFromOutcome is the single place where outcomes become status codes.
// Success depends on the operation: 201 for create, 204 for delete, 200
// otherwise.
func statusFromOutcome(out service.Outcome) (int, error) {
	if out.Kind == service.OutcomeSuccess {
		switch out.Operation {
		case service.OperationCreate:
			return http.StatusCreated, nil
		case service.OperationDelete:
			return http.StatusNoContent, nil
		default:
			return http.StatusOK, nil
		}
	}

	if status, ok := outcomeStatusMap[out.Kind]; ok {
		return status, nil
	}

	return http.StatusInternalServerError, fmt.Errorf("%w: %d", ErrUnknownOutcome, out.Kind)
}

// errorResponseFromOutcome builds the body of a non-success response. Lower
// layer errors are never copied into it.
func errorResponseFromOutcome(out service.Outcome) models.ErrorResponse {
	switch out.Kind {
	case service.OutcomeNotFound:
		return models.ErrorResponse{Error: app.MsgProductNotFound, ID: out.ID}
	case service.OutcomeInvalidPayload:
		return models.ErrorResponse{Error: app.MsgInvalidPayload, Fields: out.Fields}
	case service.OutcomeMissingToken:
		return models.ErrorResponse{Error: app.MsgMissingToken}
	case service.OutcomeUnauthorized:
		return models.ErrorResponse{Error: app.MsgTokenIsExpiredOrInvalid}
	default:
		return models.ErrorResponse{Error: app.MsgInternalServerError}
	}
}
