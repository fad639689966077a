package engine

import (
	"fmt"
	"strings"

	"sqlplayground/internal/sql"
	"sqlplayground/internal/storage"
)

// DBEngine is the main database engine struct. It evaluates statements
// against the store it was constructed with and keeps no other state.
type DBEngine struct {
	store storage.Engine
}

// New creates a new DBEngine over store. The caller owns the store and
// decides which tables it holds.
func New(store storage.Engine) *DBEngine {
	return &DBEngine{store: store}
}

// withTx runs fn inside one transaction, committing on success and rolling
// back on error or panic. Everything fn reads and writes is one critical
// section of the store.
func (e *DBEngine) withTx(readOnly bool, fn func(tx storage.Tx) error) error {
	tx, err := e.store.Begin(readOnly)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	defer func() {
		if r := recover(); r != nil {
			_ = e.store.Rollback(tx)
			panic(r)
		}
	}()

	if err := fn(tx); err != nil {
		_ = e.store.Rollback(tx)
		return err
	}

	if err := e.store.Commit(tx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

// ListTables returns the names of all tables in creation order.
func (e *DBEngine) ListTables() ([]string, error) {
	var names []string
	err := e.withTx(true, func(tx storage.Tx) error {
		names = tx.Tables()
		return nil
	})
	return names, err
}

// SelectAll returns all rows from the given table.
func (e *DBEngine) SelectAll(tableName string) ([]string, []sql.Row, error) {
	var (
		cols []string
		rows []sql.Row
	)
	err := e.withTx(true, func(tx storage.Tx) error {
		var err error
		cols, rows, err = tx.Scan(strings.ToLower(tableName))
		return err
	})
	if err != nil {
		return nil, nil, err
	}
	return cols, rows, nil
}
