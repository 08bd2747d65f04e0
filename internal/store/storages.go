package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-product-keeper/internal/config"
	"github.com/MKhiriev/go-product-keeper/internal/logger"
)

// Storages groups the repositories used by the service layer together with
// the connection they share.
type Storages struct {
	ProductRepository ProductRepository

	db *DB
}

// NewStorages opens the backend selected by cfg.DB.Driver, applies
// migrations for SQL backends and builds the repositories on top of it.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	var (
		db  *DB
		err error
	)

	switch cfg.DB.Driver {
	case config.DriverMemory:
		log.Info().Str("func", "NewStorages").Msg("using in-memory product storage")
		return &Storages{ProductRepository: NewMemoryProductRepository(log)}, nil
	case config.DriverPostgres:
		db, err = NewConnectPostgres(ctx, cfg.DB, log)
	case config.DriverSQLite:
		db, err = NewConnectSQLite(ctx, cfg.DB, log)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, cfg.DB.Driver)
	}
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(); err != nil {
		log.Err(err).Str("func", "NewStorages").Str("driver", cfg.DB.Driver).Msg("failed to apply migrations")
		closeQuietly(db, log)
		return nil, err
	}

	return &Storages{
		ProductRepository: NewProductRepository(db, log),
		db:                db,
	}, nil
}

// closeQuietly closes db on a failed setup path. The close error is only
// logged so the caller keeps returning the original failure.
func closeQuietly(db *DB, log *logger.Logger) {
	if err := db.Close(); err != nil {
		log.Err(err).Str("func", "NewStorages").Msg("error closing database after failed setup")
	}
}

// Close releases the database connection, if any.
func (s *Storages) Close() error {
	if s == nil || s.db == nil {
		return nil
	}

	return s.db.Close()
}
