package playground

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"
	"text/tabwriter"
	"time"

	"sqlplayground/internal/engine"
)

// WriteOutcome renders out as text: a table for reads, a status line for
// writes and an error line for failures.
func WriteOutcome(w io.Writer, out Outcome) error {
	res := out.Result
	var err error
	switch res.Type {
	case engine.ResultError:
		_, err = fmt.Fprintf(w, "Error: %s\n", res.Error)
		return err
	case engine.ResultWrite:
		_, err = fmt.Fprintf(w, "%s: %d %s affected", res.Message, res.AffectedRows, pluralRows(res.AffectedRows))
		if err == nil && res.LastInsertID != nil {
			_, err = fmt.Fprintf(w, " (last insert id %s)", res.LastInsertID)
		}
	default:
		if err = writeTable(w, res); err == nil {
			_, err = fmt.Fprintf(w, "%d %s", res.Count, pluralRows(res.Count))
		}
	}
	if err != nil {
		return err
	}

	if _, err := fmt.Fprintf(w, " in %s\n", formatElapsed(out.Elapsed)); err != nil {
		return err
	}
	if out.Explanation != "" {
		_, err = fmt.Fprintln(w, out.Explanation)
	}
	return err
}

func writeTable(w io.Writer, res engine.Result) error {
	if len(res.Rows) == 0 {
		return nil
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(res.Columns, "\t"))
	for _, row := range res.Rows {
		cells := make([]string, len(row))
		for i, v := range row {
			cells[i] = v.String()
		}
		fmt.Fprintln(tw, strings.Join(cells, "\t"))
	}
	return tw.Flush()
}

// WriteOutcomeJSON writes out as one JSON object.
func WriteOutcomeJSON(w io.Writer, out Outcome) error {
	return json.NewEncoder(w).Encode(struct {
		Query       string        `json:"query"`
		Result      engine.Result `json:"result"`
		ElapsedMS   float64       `json:"elapsedMs"`
		Explanation string        `json:"explanation,omitempty"`
	}{out.Query, out.Result, elapsedMS(out.Elapsed), out.Explanation})
}

// WriteSchemas lists every table with its columns, tables sorted by name.
func WriteSchemas(w io.Writer, schemas map[string]engine.TableSchema) error {
	names := make([]string, 0, len(schemas))
	for name := range schemas {
		names = append(names, name)
	}
	sort.Strings(names)

	for i, name := range names {
		if i > 0 {
			fmt.Fprintln(w)
		}
		if err := WriteSchema(w, schemas[name]); err != nil {
			return err
		}
	}
	return nil
}

// WriteSchema lists the columns of one table.
func WriteSchema(w io.Writer, ts engine.TableSchema) error {
	fmt.Fprintf(w, "Table: %s\n", ts.TableName)
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "Column\tType\tKey")
	for _, c := range ts.Columns {
		key := ""
		if c.IsPrimary {
			key = "PRIMARY KEY"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", c.Name, c.Type, key)
	}
	return tw.Flush()
}

func pluralRows(n int) string {
	if n == 1 {
		return "row"
	}
	return "rows"
}

func elapsedMS(d time.Duration) float64 {
	return float64(d.Microseconds()) / 1000
}

func formatElapsed(d time.Duration) string {
	return fmt.Sprintf("%.2f ms", elapsedMS(d))
}
