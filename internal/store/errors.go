package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrStorageNotFound is returned when a query targets a storage id that
	// does not exist in the local cache.
	ErrStorageNotFound = errors.New("storage was not found")

	// ErrVaultNotFound is returned when a query targets a vault that does not
	// exist under the given storage.
	ErrVaultNotFound = errors.New("vault was not found")

	// ErrItemNotFound is returned when a query or update targets an item that
	// does not exist in the local cache.
	ErrItemNotFound = errors.New("item was not found")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. an empty IN-clause argument list).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when the database rejects or fails to
	// execute a query.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when a result row cannot be scanned into the
	// target model.
	ErrScanningRow = errors.New("error scanning row")

	// ErrScanningRows is returned when an iteration error is detected after
	// the result set is exhausted.
	ErrScanningRows = errors.New("error scanning rows")
)
