package engine

import (
	"strings"

	"sqlplayground/internal/sql"
	"sqlplayground/internal/storage"
)

// ColumnInfo describes one column for display.
type ColumnInfo struct {
	Name      string `json:"name"`
	Type      string `json:"type"`
	IsPrimary bool   `json:"isPrimary"`
}

// TableSchema describes one table for display. It is derived on every call
// from the declared columns and is never cached.
type TableSchema struct {
	TableName string       `json:"tableName"`
	Columns   []ColumnInfo `json:"columns"`
}

// GetSchema returns the schema of one table.
func (e *DBEngine) GetSchema(tableName string) (TableSchema, error) {
	var ts TableSchema
	err := e.withTx(true, func(tx storage.Tx) error {
		var err error
		ts, err = describeTable(tx, strings.ToLower(tableName))
		return err
	})
	return ts, err
}

// GetSchemas returns the schema of every table, keyed by table name.
func (e *DBEngine) GetSchemas() (map[string]TableSchema, error) {
	out := make(map[string]TableSchema)
	err := e.withTx(true, func(tx storage.Tx) error {
		for _, name := range tx.Tables() {
			ts, err := describeTable(tx, name)
			if err != nil {
				return err
			}
			out[name] = ts
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func describeTable(tx storage.Tx, name string) (TableSchema, error) {
	cols, err := tx.Columns(name)
	if err != nil {
		return TableSchema{}, err
	}

	ts := TableSchema{TableName: name, Columns: make([]ColumnInfo, len(cols))}
	for i, c := range cols {
		ts.Columns[i] = ColumnInfo{
			Name:      c.Name,
			Type:      typeName(c.Type),
			IsPrimary: c.PrimaryKey,
		}
	}
	return ts, nil
}

func typeName(t sql.DataType) string {
	if t == sql.TypeNumber {
		return "INTEGER"
	}
	return "TEXT"
}
