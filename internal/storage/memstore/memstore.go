package memstore

import (
	"fmt"
	"sort"
	"sync"

	"sqlplayground/internal/sql"
	"sqlplayground/internal/storage"
)

type table struct {
	name string
	cols []sql.Column
	rows []sql.Row
}

type memEngine struct {
	mu     sync.RWMutex
	tables map[string]*table
	order  []string
}

// New creates a new in-memory storage engine.
//
// A transaction holds the engine lock from Begin until Commit or Rollback:
// shared for read-only transactions, exclusive otherwise. A goroutine must
// not begin a second transaction while it still holds one.
func New() storage.Engine {
	return &memEngine{
		tables: make(map[string]*table),
	}
}

// memTx represents a transaction on top of memEngine.
type memTx struct {
	eng      *memEngine
	readOnly bool
	done     bool

	// rows of each table as they were before this transaction first wrote it
	undo map[string][]sql.Row
}

// Begin starts a new transaction.
func (e *memEngine) Begin(readOnly bool) (storage.Tx, error) {
	if readOnly {
		e.mu.RLock()
	} else {
		e.mu.Lock()
	}
	return &memTx{
		eng:      e,
		readOnly: readOnly,
	}, nil
}

// Commit finishes a transaction. Changes were applied in place, so this only
// drops the undo state and releases the lock.
func (e *memEngine) Commit(tx storage.Tx) error {
	mtx, err := e.own(tx)
	if err != nil {
		return err
	}
	mtx.finish()
	return nil
}

// Rollback aborts a transaction, restoring every table it wrote.
func (e *memEngine) Rollback(tx storage.Tx) error {
	mtx, err := e.own(tx)
	if err != nil {
		return err
	}
	for name, rows := range mtx.undo {
		e.tables[name].rows = rows
	}
	mtx.finish()
	return nil
}

func (e *memEngine) own(tx storage.Tx) (*memTx, error) {
	mtx, ok := tx.(*memTx)
	if !ok || mtx.eng != e {
		return nil, fmt.Errorf("transaction does not belong to this engine")
	}
	if mtx.done {
		return nil, storage.ErrTxDone
	}
	return mtx, nil
}

func (tx *memTx) finish() {
	tx.done = true
	tx.undo = nil
	if tx.readOnly {
		tx.eng.mu.RUnlock()
	} else {
		tx.eng.mu.Unlock()
	}
}

// CreateTable creates a new table in memory. It must not be called while
// the calling goroutine holds a transaction.
func (e *memEngine) CreateTable(name string, cols []sql.Column) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if _, exists := e.tables[name]; exists {
		return fmt.Errorf("table %s already exists", name)
	}
	if len(cols) == 0 {
		return fmt.Errorf("table %s has no columns", name)
	}

	e.tables[name] = &table{
		name: name,
		cols: append([]sql.Column(nil), cols...),
		rows: make([]sql.Row, 0),
	}
	e.order = append(e.order, name)

	return nil
}

func (tx *memTx) table(name string) (*table, error) {
	if tx.done {
		return nil, storage.ErrTxDone
	}
	t, ok := tx.eng.tables[name]
	if !ok {
		return nil, &storage.TableNotFoundError{Name: name}
	}
	return t, nil
}

// writable returns the table for a write, saving its rows for Rollback the
// first time this transaction touches it.
func (tx *memTx) writable(name string) (*table, error) {
	if tx.readOnly {
		return nil, storage.ErrReadOnly
	}
	t, err := tx.table(name)
	if err != nil {
		return nil, err
	}
	if tx.undo == nil {
		tx.undo = make(map[string][]sql.Row)
	}
	if _, saved := tx.undo[name]; !saved {
		tx.undo[name] = copyRows(t.rows)
	}
	return t, nil
}

func (tx *memTx) Tables() []string {
	return append([]string(nil), tx.eng.order...)
}

func (tx *memTx) Columns(tableName string) ([]sql.Column, error) {
	t, err := tx.table(tableName)
	if err != nil {
		return nil, err
	}
	return append([]sql.Column(nil), t.cols...), nil
}

func (tx *memTx) Scan(tableName string) (col []string, rows []sql.Row, err error) {
	t, err := tx.table(tableName)
	if err != nil {
		return nil, nil, err
	}

	// Return a deep copy to prevent callers from mutating stored data.
	return sql.ColumnNames(t.cols), copyRows(t.rows), nil
}

// Insert adds a row into a table inside this transaction.
func (tx *memTx) Insert(tableName string, row sql.Row) (int, error) {
	t, err := tx.writable(tableName)
	if err != nil {
		return 0, err
	}

	if len(row) != len(t.cols) {
		return 0, fmt.Errorf("column count mismatch: expected %d, got %d", len(t.cols), len(row))
	}

	t.rows = append(t.rows, row.Clone())
	return len(t.rows) - 1, nil
}

func (tx *memTx) Set(tableName string, idx, col int, v sql.Value) error {
	t, err := tx.writable(tableName)
	if err != nil {
		return err
	}
	if idx < 0 || idx >= len(t.rows) {
		return fmt.Errorf("row %d out of range in table %s", idx, tableName)
	}
	if col < 0 || col >= len(t.cols) {
		return fmt.Errorf("column %d out of range in table %s", col, tableName)
	}

	// The undo copy shares no rows with t.rows, so writing in place is safe.
	t.rows[idx][col] = v
	return nil
}

// DeleteAt removes rows from the highest position down so that earlier
// removals never shift a position still to be removed.
func (tx *memTx) DeleteAt(tableName string, idxs []int) error {
	t, err := tx.writable(tableName)
	if err != nil {
		return err
	}

	sorted := append([]int(nil), idxs...)
	sort.Sort(sort.Reverse(sort.IntSlice(sorted)))

	for i, idx := range sorted {
		if idx < 0 || idx >= len(t.rows) {
			return fmt.Errorf("row %d out of range in table %s", idx, tableName)
		}
		if i > 0 && sorted[i-1] == idx {
			continue
		}
		t.rows = append(t.rows[:idx], t.rows[idx+1:]...)
	}
	return nil
}

func copyRows(rows []sql.Row) []sql.Row {
	out := make([]sql.Row, len(rows))
	for i, r := range rows {
		out[i] = r.Clone()
	}
	return out
}
