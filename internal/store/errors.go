package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrProductNotFound is returned when no product has the requested id.
	ErrProductNotFound = errors.New("product was not found")

	// ErrUnsupportedDriver is returned by [NewStorages] for a driver name
	// other than postgres, sqlite or memory.
	ErrUnsupportedDriver = errors.New("unsupported storage driver")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a statement against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when scanning a single result row fails.
	ErrScanningRow = errors.New("failed to scan product row")

	// ErrScanningRows is returned when iterating a multi-row result fails.
	ErrScanningRows = errors.New("failed to scan product rows")

	// ErrConnectingDB is returned when the database cannot be opened or pinged.
	ErrConnectingDB = errors.New("error connecting database")

	// ErrMigratingDB is returned when applying schema migrations fails.
	ErrMigratingDB = errors.New("error migrating database")
)
