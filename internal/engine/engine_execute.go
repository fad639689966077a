package engine

import (
	"fmt"

	"sqlplayground/internal/sql"
)

// ExecuteQuery parses and executes a single statement. It never fails:
// every error, including a panic while evaluating, comes back as a Result
// of type ResultError and leaves the tables as they were.
func (e *DBEngine) ExecuteQuery(query string) (res Result) {
	defer func() {
		if r := recover(); r != nil {
			kind, _ := sql.Classify(query)
			res = errorResult(fmt.Errorf("error parsing %s query: %v", kind, r))
		}
	}()

	stmt, err := sql.Parse(query)
	if err != nil {
		return errorResult(err)
	}

	res, err = e.Execute(stmt)
	if err != nil {
		return errorResult(err)
	}
	return res
}

// Execute takes a parsed SQL Statement and executes it using the engine.
func (e *DBEngine) Execute(stmt sql.Statement) (Result, error) {
	switch s := stmt.(type) {
	case *sql.SelectStmt:
		return e.executeSelect(s)
	case *sql.InsertStmt:
		return e.executeInsert(s)
	case *sql.UpdateStmt:
		return e.executeUpdate(s)
	case *sql.DeleteStmt:
		return e.executeDelete(s)
	default:
		return Result{}, fmt.Errorf("unsupported statement type %T", stmt)
	}
}
