package engine

import (
	"bytes"
	"encoding/json"

	"sqlplayground/internal/sql"
)

// ResultType tags which shape of Result is populated.
type ResultType int

const (
	ResultRead ResultType = iota
	ResultWrite
	ResultError
)

// Result is the envelope returned for every statement. Exactly one shape is
// populated:
//   - ResultRead: Columns, Rows and Count
//   - ResultWrite: Message, AffectedRows and, for INSERT, LastInsertID
//   - ResultError: Error
type Result struct {
	Type ResultType

	Columns []string
	Rows    []sql.Row
	Count   int

	Message      string
	AffectedRows int
	LastInsertID *sql.Value

	Error string
}

// Success reports whether the statement applied.
func (r Result) Success() bool { return r.Type != ResultError }

// Records returns each row as a column name to value mapping.
func (r Result) Records() []map[string]sql.Value {
	out := make([]map[string]sql.Value, len(r.Rows))
	for i, row := range r.Rows {
		rec := make(map[string]sql.Value, len(r.Columns))
		for j, col := range r.Columns {
			if j < len(row) {
				rec[col] = row[j]
			}
		}
		out[i] = rec
	}
	return out
}

// MarshalJSON encodes the populated shape only. Rows become objects whose
// keys keep the column order of the result.
func (r Result) MarshalJSON() ([]byte, error) {
	switch r.Type {
	case ResultError:
		return json.Marshal(struct {
			Error string `json:"error"`
		}{r.Error})
	case ResultWrite:
		return json.Marshal(struct {
			Success      bool       `json:"success"`
			Message      string     `json:"message"`
			AffectedRows int        `json:"affectedRows"`
			LastInsertID *sql.Value `json:"lastInsertId,omitempty"`
		}{true, r.Message, r.AffectedRows, r.LastInsertID})
	}

	rows := make([]json.RawMessage, len(r.Rows))
	for i, row := range r.Rows {
		obj, err := marshalRecord(r.Columns, row)
		if err != nil {
			return nil, err
		}
		rows[i] = obj
	}
	return json.Marshal(struct {
		Success bool              `json:"success"`
		Columns []string          `json:"columns"`
		Rows    []json.RawMessage `json:"rows"`
		Count   int               `json:"count"`
	}{true, r.Columns, rows, r.Count})
}

func marshalRecord(cols []string, row sql.Row) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, col := range cols {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(col)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')

		v := sql.Null()
		if i < len(row) {
			v = row[i]
		}
		val, err := v.MarshalJSON()
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func errorResult(err error) Result {
	return Result{Type: ResultError, Error: errorMessage(err)}
}
