package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-product-keeper/internal/logger"
	"github.com/MKhiriev/go-product-keeper/models"
)

// productRepository is the SQL implementation of [ProductRepository]. The
// same code serves PostgreSQL and SQLite; only the placeholder format of the
// generated statements differs.
//
// Reads, updates and deletes are idempotent and are retried on transient
// errors. Inserts run once.
type productRepository struct {
	*DB
	queries productQueries
	logger  *logger.Logger
}

// NewProductRepository constructs a [ProductRepository] backed by db.
func NewProductRepository(db *DB, logger *logger.Logger) ProductRepository {
	logger.Debug().Str("dialect", db.dialect).Msg("creating product repository")
	return &productRepository{
		DB:      db,
		queries: newProductQueries(db.dialect),
		logger:  logger,
	}
}

func (p *productRepository) List(ctx context.Context) ([]models.Product, error) {
	log := logger.FromContext(ctx)

	query, args, err := p.queries.list()
	if err != nil {
		log.Err(err).Str("func", "productRepository.List").Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var products []models.Product
	err = p.withRetry(ctx, func() error {
		var queryErr error
		products, queryErr = p.queryProducts(ctx, query, args...)
		return queryErr
	})
	if err != nil {
		log.Err(err).Str("func", "productRepository.List").Msg("failed to list products")
		return nil, err
	}

	return products, nil
}

func (p *productRepository) Get(ctx context.Context, id int64) (models.Product, error) {
	log := logger.FromContext(ctx)

	query, args, err := p.queries.get(id)
	if err != nil {
		log.Err(err).Str("func", "productRepository.Get").Int64("id", id).Msg("failed to build query")
		return models.Product{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var product models.Product
	err = p.withRetry(ctx, func() error {
		return p.QueryRowContext(ctx, query, args...).Scan(&product.ID, &product.Name, &product.Maker, &product.Price)
	})

	if err = p.rowError(ctx, "productRepository.Get", id, err); err != nil {
		return models.Product{}, err
	}

	return product, nil
}

func (p *productRepository) Create(ctx context.Context, input models.ProductInput) (models.Product, error) {
	log := logger.FromContext(ctx)

	query, args, err := p.queries.create(input)
	if err != nil {
		log.Err(err).Str("func", "productRepository.Create").Msg("failed to build query")
		return models.Product{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var product models.Product
	if err = p.QueryRowContext(ctx, query, args...).Scan(&product.ID, &product.Name, &product.Maker, &product.Price); err != nil {
		log.Err(err).Str("func", "productRepository.Create").Msg("failed to insert product")
		return models.Product{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	log.Debug().Str("func", "productRepository.Create").Int64("id", product.ID).Msg("product created")

	return product, nil
}

func (p *productRepository) Update(ctx context.Context, id int64, input models.ProductInput) (models.Product, error) {
	log := logger.FromContext(ctx)

	query, args, err := p.queries.update(id, input)
	if err != nil {
		log.Err(err).Str("func", "productRepository.Update").Int64("id", id).Msg("failed to build query")
		return models.Product{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var product models.Product
	err = p.withRetry(ctx, func() error {
		return p.QueryRowContext(ctx, query, args...).Scan(&product.ID, &product.Name, &product.Maker, &product.Price)
	})

	if err = p.rowError(ctx, "productRepository.Update", id, err); err != nil {
		return models.Product{}, err
	}

	return product, nil
}

func (p *productRepository) Delete(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	query, args, err := p.queries.delete(id)
	if err != nil {
		log.Err(err).Str("func", "productRepository.Delete").Int64("id", id).Msg("failed to build query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var affected int64
	err = p.withRetry(ctx, func() error {
		result, execErr := p.ExecContext(ctx, query, args...)
		if execErr != nil {
			return execErr
		}
		affected, execErr = result.RowsAffected()
		return execErr
	})
	if err != nil {
		log.Err(err).Str("func", "productRepository.Delete").Int64("id", id).Msg("failed to delete product")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if affected == 0 {
		return ErrProductNotFound
	}

	return nil
}

// queryProducts runs a multi-row product query. An empty result is an empty,
// non-nil slice.
func (p *productRepository) queryProducts(ctx context.Context, query string, args ...any) ([]models.Product, error) {
	rows, err := p.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	products := make([]models.Product, 0, 50)
	for rows.Next() {
		var product models.Product
		if err = rows.Scan(&product.ID, &product.Name, &product.Maker, &product.Price); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		products = append(products, product)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return products, nil
}

// rowError translates the error of a single-row statement addressed by id.
func (p *productRepository) rowError(ctx context.Context, funcName string, id int64, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, sql.ErrNoRows):
		return ErrProductNotFound
	default:
		logger.FromContext(ctx).Err(err).Str("func", funcName).Int64("id", id).Msg("failed to execute query")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
}
