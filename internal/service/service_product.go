package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-product-keeper/internal/app"
	"github.com/MKhiriev/go-product-keeper/internal/logger"
	"github.com/MKhiriev/go-product-keeper/internal/store"
	"github.com/MKhiriev/go-product-keeper/internal/utils"
	"github.com/MKhiriev/go-product-keeper/internal/validators"
	"github.com/MKhiriev/go-product-keeper/models"
)

// FieldBody is the key of the violation reported when the request body
// cannot be decoded at all.
const FieldBody = "body"

// productService is the concrete implementation of ProductService.
//
// Mutating operations run strictly in this order: token check, payload
// decoding, payload validation, one store call. A failed step ends the
// operation, so a rejected request never reaches the store.
type productService struct {
	productRepository store.ProductRepository
	authService       AuthService
	validator         validators.Validator

	logger *logger.Logger
}

func NewProductService(productRepository store.ProductRepository, authService AuthService, validator validators.Validator, logger *logger.Logger) ProductService {
	return &productService{
		productRepository: productRepository,
		authService:       authService,
		validator:         validator,
		logger:            logger,
	}
}

func (s *productService) List(ctx context.Context) Outcome {
	products, err := s.productRepository.List(ctx)
	if err != nil {
		return s.storeFailure(ctx, OperationList, 0, err)
	}

	out := success(OperationList)
	out.Products = products
	return out
}

func (s *productService) Get(ctx context.Context, id int64) Outcome {
	product, err := s.productRepository.Get(ctx, id)
	if err != nil {
		return s.storeFailure(ctx, OperationGet, id, err)
	}

	out := success(OperationGet)
	out.Product = product
	return out
}

func (s *productService) Create(ctx context.Context, authorization string, decode PayloadDecoder) Outcome {
	ctx, denied, ok := s.authorize(ctx, OperationCreate, authorization)
	if !ok {
		return denied
	}

	input, rejected, ok := s.decodeAndValidate(ctx, OperationCreate, decode)
	if !ok {
		return rejected
	}

	product, err := s.productRepository.Create(ctx, input)
	if err != nil {
		return s.storeFailure(ctx, OperationCreate, 0, err)
	}

	logMutation(ctx, "productService.Create", product.ID, "product created")

	out := success(OperationCreate)
	out.Product = product
	return out
}

func (s *productService) Update(ctx context.Context, id int64, authorization string, decode PayloadDecoder) Outcome {
	ctx, denied, ok := s.authorize(ctx, OperationUpdate, authorization)
	if !ok {
		return denied
	}

	input, rejected, ok := s.decodeAndValidate(ctx, OperationUpdate, decode)
	if !ok {
		return rejected
	}

	product, err := s.productRepository.Update(ctx, id, input)
	if err != nil {
		return s.storeFailure(ctx, OperationUpdate, id, err)
	}

	logMutation(ctx, "productService.Update", id, "product updated")

	out := success(OperationUpdate)
	out.Product = product
	return out
}

func (s *productService) Delete(ctx context.Context, id int64, authorization string) Outcome {
	ctx, denied, ok := s.authorize(ctx, OperationDelete, authorization)
	if !ok {
		return denied
	}

	if err := s.productRepository.Delete(ctx, id); err != nil {
		return s.storeFailure(ctx, OperationDelete, id, err)
	}

	logMutation(ctx, "productService.Delete", id, "product deleted")

	return success(OperationDelete)
}

// authorize checks the Authorization header value. On success it returns ctx
// enriched with the token subject and ok == true. Otherwise it returns the
// MissingToken or Unauthorized outcome to hand back to the caller.
func (s *productService) authorize(ctx context.Context, op Operation, authorization string) (context.Context, Outcome, bool) {
	log := logger.FromContext(ctx)

	tokenString, err := utils.ParseBearerToken(authorization)
	if err != nil {
		log.Debug().
			Str("func", "productService.authorize").
			Stringer("operation", op).
			Bool("header_present", authorization != "").
			Msg("no bearer token provided")
		return ctx, failure(OutcomeMissingToken, op, fmt.Errorf("%w: %w", ErrMissingToken, err)), false
	}

	token, err := s.authService.ParseToken(ctx, tokenString)
	if err != nil {
		log.Warn().
			Err(err).
			Str("func", "productService.authorize").
			Stringer("operation", op).
			Msg("bearer token rejected")
		return ctx, failure(OutcomeUnauthorized, op, err), false
	}

	// the subject is recorded, not used for ownership checks
	log.Debug().
		Str("func", "productService.authorize").
		Stringer("operation", op).
		Int64("user_id", token.UserID).
		Msg("request authorized")

	return utils.WithUserID(ctx, token.UserID), Outcome{}, true
}

// decodeAndValidate reads the payload with decode and checks it. ok is false
// when the payload is unreadable or violates a rule; the returned Outcome is
// then InvalidPayload.
func (s *productService) decodeAndValidate(ctx context.Context, op Operation, decode PayloadDecoder) (models.ProductInput, Outcome, bool) {
	log := logger.FromContext(ctx)

	var input models.ProductInput
	if decode == nil {
		return input, invalidPayload(op, map[string]string{FieldBody: app.MsgBodyRequired}, ErrInvalidPayload), false
	}

	if err := decode(&input); err != nil {
		log.Debug().Err(err).Str("func", "productService.decodeAndValidate").Stringer("operation", op).Msg("payload is not decodable")
		return input, invalidPayload(op, map[string]string{FieldBody: app.MsgMalformedJSON}, fmt.Errorf("%w: %w", ErrInvalidPayload, err)), false
	}

	err := s.validator.Validate(ctx, input)
	if err == nil {
		return input, Outcome{}, true
	}

	var validationErr *validators.ValidationError
	if errors.As(err, &validationErr) {
		log.Debug().
			Str("func", "productService.decodeAndValidate").
			Stringer("operation", op).
			Any("fields", validationErr.Fields).
			Msg("payload rejected")
		return input, invalidPayload(op, validationErr.Fields, fmt.Errorf("%w: %w", ErrInvalidPayload, err)), false
	}

	// a validator misconfiguration is not the client's fault
	log.Err(err).Str("func", "productService.decodeAndValidate").Stringer("operation", op).Msg("validator failed")
	return input, failure(OutcomeInternal, op, err), false
}

// storeFailure maps a repository error to an Outcome. A missing product is
// NotFound; anything else is Internal and is logged here.
func (s *productService) storeFailure(ctx context.Context, op Operation, id int64, err error) Outcome {
	if errors.Is(err, store.ErrProductNotFound) {
		return notFound(op, id)
	}

	logger.FromContext(ctx).Err(err).
		Str("func", "productService.storeFailure").
		Stringer("operation", op).
		Int64("id", id).
		Msg("store call failed")

	return failure(OutcomeInternal, op, err)
}

// logMutation records a successful mutation together with the user id that
// authorize stored in ctx.
func logMutation(ctx context.Context, funcName string, id int64, msg string) {
	event := logger.FromContext(ctx).Info().
		Str("func", funcName).
		Int64("id", id)

	if userID, ok := utils.GetUserIDFromContext(ctx); ok {
		event = event.Int64("user_id", userID)
	}

	event.Msg(msg)
}
