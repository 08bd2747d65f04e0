// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client side of the products API.
//
// [ProductAdapter] hides the HTTP transport from the command-line client.
// Non-2xx responses are mapped by mapHTTPError to the sentinel errors in
// errors.go, so callers can branch with [errors.Is] (e.g. [ErrNotFound] for
// 404, [ErrUnauthorized] for 401) and read the decoded body from [*APIError].
package adapter

import (
	"context"

	"github.com/MKhiriev/go-product-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// ProductAdapter is a client of the products API.
type ProductAdapter interface {
	// SetToken stores the bearer token attached to mutating requests.
	SetToken(token string)

	// Token returns the stored bearer token, or an empty string.
	Token() string

	// List returns every product.
	List(ctx context.Context) ([]models.Product, error)

	// Get returns the product with the given id, or [ErrNotFound].
	Get(ctx context.Context, id int64) (models.Product, error)

	// Create stores a new product and returns it with its assigned id.
	Create(ctx context.Context, input models.ProductInput) (models.Product, error)

	// Update replaces the fields of an existing product.
	Update(ctx context.Context, id int64, input models.ProductInput) (models.Product, error)

	// Delete removes the product with the given id.
	Delete(ctx context.Context, id int64) error

	// Version returns the build information of the server.
	Version(ctx context.Context) (models.AppBuildInfo, error)
}
