package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/MKhiriev/go-product-keeper/internal/logger"
	"github.com/MKhiriev/go-product-keeper/migrations"
)

// retryDelays are the pauses between attempts of a retryable database call.
// Their count is the number of retries after the first attempt.
var retryDelays = []time.Duration{100 * time.Millisecond, 300 * time.Millisecond, 500 * time.Millisecond}

// DB is a database connection bound to one SQL dialect.
type DB struct {
	*sql.DB
	dialect            string
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// Migrate applies the embedded schema migrations of the connection's dialect.
func (db *DB) Migrate() error {
	if err := migrations.Migrate(db.DB, db.dialect); err != nil {
		return fmt.Errorf("%w: %w", ErrMigratingDB, err)
	}

	return nil
}

// withRetry runs fn and repeats it while the error is classified as
// retryable, up to len(retryDelays) extra attempts. Waiting stops early when
// ctx is done.
func (db *DB) withRetry(ctx context.Context, fn func() error) error {
	err := fn()

	for attempt, delay := range retryDelays {
		if err == nil || db.errorClassificator == nil || db.errorClassificator.Classify(err) != Retryable {
			return err
		}

		logger.FromContext(ctx).Warn().
			Err(err).
			Str("func", "DB.withRetry").
			Int("attempt", attempt+1).
			Dur("delay", delay).
			Msg("retryable database error, retrying")

		select {
		case <-ctx.Done():
			return fmt.Errorf("%w: %w", ctx.Err(), err)
		case <-time.After(delay):
		}

		err = fn()
	}

	return err
}
