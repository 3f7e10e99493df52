package tabular

import (
	"context"
	"errors"
)

var (
	// ErrTableUnavailable wraps connection/auth/not-found failures at the
	// storage boundary. Fatal to the current operation, never retried here.
	ErrTableUnavailable = errors.New("backing table unavailable")

	// ErrNotFound reports that an update/delete target id does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrMalformedCell tags a cell that failed to decode and was replaced by
	// its default. Diagnostic only; loads still succeed.
	ErrMalformedCell = errors.New("malformed cell")
)

// Table is the backing medium: an ordered header row plus data rows, with no
// per-row update and no transactions. Mutating or removing a row is only
// possible by rewriting the whole table.
//
// Implementations: spreadsheet file (excelize), DynamoDB row items, in-memory.
type Table interface {
	// ReadAll returns the current header and every data row. A table that was
	// never written returns an empty header and no rows.
	ReadAll(ctx context.Context) (header []string, rows [][]string, err error)

	// WriteHeader sets the header row without touching data rows. Used once,
	// when an empty table is first touched.
	WriteHeader(ctx context.Context, header []string) error

	// Append adds one data row after the last existing row.
	Append(ctx context.Context, row []string) error

	// RewriteAll replaces the entire contents, header included.
	RewriteAll(ctx context.Context, header []string, rows [][]string) error
}
