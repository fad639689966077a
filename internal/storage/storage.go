package storage

import (
	"errors"
	"fmt"

	"sqlplayground/internal/sql"
)

var (
	// ErrTableNotFound is the target of every *TableNotFoundError.
	ErrTableNotFound = errors.New("table not found")

	// ErrTxDone is returned when a finished transaction is used again.
	ErrTxDone = errors.New("transaction already committed or rolled back")

	// ErrReadOnly is returned when a read-only transaction tries to write.
	ErrReadOnly = errors.New("read-only transaction")
)

// TableNotFoundError reports a reference to a table that does not exist.
type TableNotFoundError struct {
	Name string
}

func (e *TableNotFoundError) Error() string {
	return fmt.Sprintf("table %s not found", e.Name)
}

func (e *TableNotFoundError) Is(target error) bool { return target == ErrTableNotFound }

// Tx represents a storage-level transaction.
//
// Rows are addressed by their position in the table. Positions are stable for
// the life of a transaction except across DeleteAt.
type Tx interface {
	// Tables lists table names in creation order.
	Tables() []string

	// Columns returns the declared columns of a table.
	Columns(tableName string) ([]sql.Column, error)

	// Scan returns a copy of every row of a table, in insertion order.
	Scan(tableName string) (cols []string, rows []sql.Row, err error)

	// Insert appends a row and returns its position.
	Insert(tableName string, row sql.Row) (int, error)

	// Set overwrites one cell of the row at position idx.
	Set(tableName string, idx, col int, v sql.Value) error

	// DeleteAt removes the rows at the given positions.
	DeleteAt(tableName string, idxs []int) error
}

// Engine is a storage engine that can create and manage transactions.
type Engine interface {
	// Begin starts a new transaction.
	// readOnly = true means the transaction must not perform writes.
	Begin(readOnly bool) (Tx, error)

	// Commit finishes a transaction and makes its changes visible.
	Commit(tx Tx) error

	// Rollback aborts a transaction and discards its changes.
	Rollback(tx Tx) error

	// CreateTable creates a new empty table with the given columns.
	CreateTable(name string, cols []sql.Column) error
}
