package engine

import (
	"fmt"

	"sqlplayground/internal/sql"
	"sqlplayground/internal/storage"
)

// applyUpdate writes assignments, in order, onto every row matching where.
// It returns the number of rows matched, whether or not a value changed.
func applyUpdate(tx storage.Tx, table string, where *sql.WhereExpr, assigns []sql.Assignment) (int, error) {
	cols, rows, err := tx.Scan(table)
	if err != nil {
		return 0, err
	}

	// Resolve every column before touching a row.
	assignIdx := make([]int, len(assigns))
	for i, a := range assigns {
		idx := columnIndex(cols, a.Column)
		if idx == -1 {
			return 0, fmt.Errorf("%w %q in SET list of table %s", ErrUnknownColumn, a.Column, table)
		}
		assignIdx[i] = idx
	}

	matched := matchRows(cols, rows, where)
	for _, rowIdx := range matched {
		for j, a := range assigns {
			if err := tx.Set(table, rowIdx, assignIdx[j], a.Value); err != nil {
				return 0, fmt.Errorf("update: %w", err)
			}
		}
	}
	return len(matched), nil
}

// applyDelete removes every row matching where and returns how many.
func applyDelete(tx storage.Tx, table string, where *sql.WhereExpr) (int, error) {
	cols, rows, err := tx.Scan(table)
	if err != nil {
		return 0, err
	}

	matched := matchRows(cols, rows, where)
	if len(matched) == 0 {
		return 0, nil
	}
	if err := tx.DeleteAt(table, matched); err != nil {
		return 0, fmt.Errorf("delete: %w", err)
	}
	return len(matched), nil
}
