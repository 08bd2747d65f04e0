package validators

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-product-keeper/models"
)

// Field names of a product payload, as they appear in JSON.
const (
	FieldName  = "name"
	FieldMaker = "maker"
	FieldPrice = "price"
)

// Violation messages reported in ValidationError.Fields.
const (
	MsgRequired      = "must not be empty"
	MsgPricePositive = "must be greater than zero"
)

// ProductValidator checks product payloads against structural rules.
// It never consults storage and keeps no state.
type ProductValidator struct{}

// NewProductValidator constructs a ProductValidator.
func NewProductValidator() Validator {
	return &ProductValidator{}
}

// Validate accepts models.ProductInput and models.Product, by value or
// pointer. Every rule for the requested fields is evaluated and all
// violations are reported together in a *ValidationError. With no fields the
// whole payload is checked.
func (v *ProductValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.ProductInput:
		return v.validateProductInput(value, fields...)
	case *models.ProductInput:
		if value == nil {
			return v.validateProductInput(models.ProductInput{}, fields...)
		}
		return v.validateProductInput(*value, fields...)
	case models.Product:
		return v.validateProductInput(productToInput(value), fields...)
	case *models.Product:
		if value == nil {
			return v.validateProductInput(models.ProductInput{}, fields...)
		}
		return v.validateProductInput(productToInput(*value), fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *ProductValidator) validateProductInput(input models.ProductInput, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldMaker, FieldPrice}
	}

	violations := make(map[string]string)
	for _, f := range fields {
		switch f {
		case FieldName:
			if strings.TrimSpace(input.Name) == "" {
				violations[FieldName] = MsgRequired
			}
		case FieldMaker:
			if strings.TrimSpace(input.Maker) == "" {
				violations[FieldMaker] = MsgRequired
			}
		case FieldPrice:
			if input.Price <= 0 {
				violations[FieldPrice] = MsgPricePositive
			}
		default:
			return ErrUnknownField
		}
	}

	if len(violations) > 0 {
		return &ValidationError{Fields: violations}
	}

	return nil
}

func productToInput(p models.Product) models.ProductInput {
	return models.ProductInput{Name: p.Name, Maker: p.Maker, Price: p.Price}
}
