package engine

import (
	"sqlplayground/internal/sql"
	"sqlplayground/internal/storage"
)

// executeSelect filters, sorts, limits and projects a copy of the table.
func (e *DBEngine) executeSelect(stmt *sql.SelectStmt) (Result, error) {
	var (
		cols []string
		rows []sql.Row
	)
	err := e.withTx(true, func(tx storage.Tx) error {
		var err error
		cols, rows, err = tx.Scan(stmt.TableName)
		return err
	})
	if err != nil {
		return Result{}, err
	}

	rows = filterRowsWhere(cols, rows, stmt.Where)

	if stmt.OrderBy != nil {
		sortRows(cols, rows, stmt.OrderBy)
	}

	if stmt.Limit != nil && *stmt.Limit < len(rows) {
		rows = rows[:*stmt.Limit]
	}

	if stmt.Columns != nil {
		cols, rows = projectColumns(cols, rows, stmt.Columns)
	}

	return Result{
		Type:    ResultRead,
		Columns: cols,
		Rows:    rows,
		Count:   len(rows),
	}, nil
}
