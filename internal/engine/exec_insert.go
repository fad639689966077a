package engine

import (
	"fmt"

	"sqlplayground/internal/sql"
	"sqlplayground/internal/storage"
)

// executeInsert appends one row. Values map positionally onto the declared
// columns, so the table may be empty.
func (e *DBEngine) executeInsert(stmt *sql.InsertStmt) (Result, error) {
	var res Result
	err := e.withTx(false, func(tx storage.Tx) error {
		cols, err := tx.Columns(stmt.TableName)
		if err != nil {
			return err
		}

		if len(stmt.Values) != len(cols) {
			return fmt.Errorf("%w: value count (%d) does not match column count (%d) for table %s",
				ErrValueCountMismatch, len(stmt.Values), len(cols), stmt.TableName)
		}

		if _, err := tx.Insert(stmt.TableName, stmt.Values); err != nil {
			return fmt.Errorf("insert: %w", err)
		}

		res = Result{
			Type:         ResultWrite,
			Message:      "Insert successful",
			AffectedRows: 1,
		}
		for i, c := range cols {
			if c.PrimaryKey {
				id := stmt.Values[i]
				res.LastInsertID = &id
				break
			}
		}
		return nil
	})
	if err != nil {
		return Result{}, err
	}
	return res, nil
}
