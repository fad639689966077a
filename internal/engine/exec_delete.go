package engine

import (
	"sqlplayground/internal/sql"
	"sqlplayground/internal/storage"
)

func (e *DBEngine) executeDelete(stmt *sql.DeleteStmt) (Result, error) {
	var deleted int
	err := e.withTx(false, func(tx storage.Tx) error {
		var err error
		deleted, err = applyDelete(tx, stmt.TableName, stmt.Where)
		return err
	})
	if err != nil {
		return Result{}, err
	}

	return Result{
		Type:         ResultWrite,
		Message:      "Delete successful",
		AffectedRows: deleted,
	}, nil
}
