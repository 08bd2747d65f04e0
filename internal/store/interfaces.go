package store

import (
	"context"

	"github.com/MKhiriev/go-product-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// ProductRepository is the persistence contract for products.
//
// Get, Update and Delete return ErrProductNotFound when no product has the
// given id. Create assigns the id. Implementations are safe for concurrent use.
type ProductRepository interface {
	List(ctx context.Context) ([]models.Product, error)
	Get(ctx context.Context, id int64) (models.Product, error)
	Create(ctx context.Context, input models.ProductInput) (models.Product, error)
	Update(ctx context.Context, id int64, input models.ProductInput) (models.Product, error)
	Delete(ctx context.Context, id int64) error
}

// ErrorClassificator decides whether a failed database call may be retried.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
