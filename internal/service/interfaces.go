package service

import (
	"context"

	"github.com/MKhiriev/go-product-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// PayloadDecoder fills v from the request body. It is invoked at most once
// per request, and only after the bearer token has been accepted.
type PayloadDecoder func(v any) error

// AuthService verifies bearer tokens.
type AuthService interface {
	// ParseToken validates a raw token (without the "Bearer " marker) and
	// returns the decoded token. Any failure is ErrTokenIsExpiredOrInvalid.
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// ProductService orchestrates the product operations. Every method returns
// an Outcome; no method returns an error.
//
// authorization is the raw Authorization header value, empty when the header
// is absent.
type ProductService interface {
	List(ctx context.Context) Outcome
	Get(ctx context.Context, id int64) Outcome
	Create(ctx context.Context, authorization string, decode PayloadDecoder) Outcome
	Update(ctx context.Context, id int64, authorization string, decode PayloadDecoder) Outcome
	Delete(ctx context.Context, id int64, authorization string) Outcome
}

// AppInfoService exposes the build metadata of the running binary.
type AppInfoService interface {
	GetAppInfo(ctx context.Context) models.AppBuildInfo
}
