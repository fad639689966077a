package engine

import (
	"sqlplayground/internal/sql"
	"sqlplayground/internal/storage"
)

func (e *DBEngine) executeUpdate(stmt *sql.UpdateStmt) (Result, error) {
	var affected int
	err := e.withTx(false, func(tx storage.Tx) error {
		var err error
		affected, err = applyUpdate(tx, stmt.TableName, stmt.Where, stmt.Assignments)
		return err
	})
	if err != nil {
		return Result{}, err
	}

	return Result{
		Type:         ResultWrite,
		Message:      "Update successful",
		AffectedRows: affected,
	}, nil
}
