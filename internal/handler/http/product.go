package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-product-keeper/internal/logger"
	"github.com/MKhiriev/go-product-keeper/internal/service"
	"github.com/MKhiriev/go-product-keeper/internal/utils"
	"github.com/MKhiriev/go-product-keeper/models"
)

// maxPayloadBytes limits the size of a product payload.
const maxPayloadBytes = 1 << 20

func (h *Handler) listProducts(w http.ResponseWriter, r *http.Request) {
	h.writeOutcome(w, r, h.services.ProductService.List(r.Context()))
}

func (h *Handler) getProduct(w http.ResponseWriter, r *http.Request) {
	h.writeOutcome(w, r, h.services.ProductService.Get(r.Context(), productIDFromRequest(r)))
}

func (h *Handler) createProduct(w http.ResponseWriter, r *http.Request) {
	out := h.services.ProductService.Create(r.Context(), authorizationHeader(r), payloadDecoder(w, r))
	h.writeOutcome(w, r, out)
}

func (h *Handler) updateProduct(w http.ResponseWriter, r *http.Request) {
	out := h.services.ProductService.Update(r.Context(), productIDFromRequest(r), authorizationHeader(r), payloadDecoder(w, r))
	h.writeOutcome(w, r, out)
}

func (h *Handler) deleteProduct(w http.ResponseWriter, r *http.Request) {
	out := h.services.ProductService.Delete(r.Context(), productIDFromRequest(r), authorizationHeader(r))
	h.writeOutcome(w, r, out)
}

// writeOutcome renders an Outcome: status from statusFromOutcome, the product
// or product list for successes, an ErrorResponse otherwise.
func (h *Handler) writeOutcome(w http.ResponseWriter, r *http.Request, out service.Outcome) {
	log := logger.FromRequest(r)

	h.metrics.observeOutcome(out)

	status, err := statusFromOutcome(out)
	if err != nil {
		log.Err(err).Str("func", "*Handler.writeOutcome").Stringer("operation", out.Operation).Send()
	}

	if out.Kind == service.OutcomeInternal && out.Err != nil {
		log.Err(out.Err).Str("func", "*Handler.writeOutcome").Stringer("operation", out.Operation).Msg("request failed")
	}

	if status == http.StatusUnauthorized {
		w.Header().Set("WWW-Authenticate", "Bearer")
	}

	var body any
	switch {
	case status == http.StatusNoContent:
		utils.WriteNoContent(w)
		return
	case out.Kind == service.OutcomeSuccess && out.Operation == service.OperationList:
		products := out.Products
		if products == nil {
			products = []models.Product{}
		}
		body = products
	case out.Kind == service.OutcomeSuccess:
		body = out.Product
	default:
		body = errorResponseFromOutcome(out)
	}

	if _, err = utils.WriteJSON(w, body, status); err != nil {
		log.Err(err).Str("func", "*Handler.writeOutcome").Msg("error writing response")
	}
}

// productIDFromRequest reads the {id} path parameter. The route pattern only
// admits digits, so the only parse failure is a value beyond int64. Such an
// id is mapped to 0, which the store never assigns, and the request ends as
// NotFound after the usual token and payload checks.
func productIDFromRequest(r *http.Request) int64 {
	id, err := strconv.ParseInt(chi.URLParam(r, productIDParam), 10, 64)
	if err != nil {
		return 0
	}
	return id
}

func authorizationHeader(r *http.Request) string {
	return r.Header.Get("Authorization")
}

// payloadDecoder returns a decoder over the size-limited request body. The
// body is not read until the service calls it. The body must hold exactly one
// JSON value; anything but whitespace after it is rejected.
func payloadDecoder(w http.ResponseWriter, r *http.Request) service.PayloadDecoder {
	return func(v any) error {
		dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxPayloadBytes))
		if err := dec.Decode(v); err != nil {
			return err
		}

		if _, err := dec.Token(); !errors.Is(err, io.EOF) {
			return errTrailingData
		}
		return nil
	}
}
