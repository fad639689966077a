package engine

import (
	"sort"
	"strings"

	"sqlplayground/internal/sql"
)

// columnIndex returns the position of name in cols, or -1.
func columnIndex(cols []string, name string) int {
	for i, c := range cols {
		if c == name {
			return i
		}
	}
	return -1
}

// matchRows returns the positions of the rows satisfying where, in table
// order. A nil where matches every row; a column the table does not have
// matches none.
func matchRows(cols []string, rows []sql.Row, where *sql.WhereExpr) []int {
	var out []int
	if where == nil {
		for i := range rows {
			out = append(out, i)
		}
		return out
	}

	idx := columnIndex(cols, where.Column)
	if idx == -1 {
		return nil
	}

	for i, row := range rows {
		if idx < len(row) && valuesEqual(row[idx], where.Value) {
			out = append(out, i)
		}
	}
	return out
}

// filterRowsWhere keeps the rows satisfying where, preserving order.
func filterRowsWhere(cols []string, rows []sql.Row, where *sql.WhereExpr) []sql.Row {
	idxs := matchRows(cols, rows, where)
	out := make([]sql.Row, len(idxs))
	for i, idx := range idxs {
		out[i] = rows[idx]
	}
	return out
}

// valuesEqual compares two values with loose equality, so the number 3
// equals the strings "3" and " 3 ":
//   - NULL equals only NULL
//   - values of the same type compare directly
//   - a string compared to a number is converted to a number first, and a
//     string that is not numeric equals no number
func valuesEqual(a, b sql.Value) bool {
	switch {
	case a.Type == sql.TypeNull || b.Type == sql.TypeNull:
		return a.Type == b.Type
	case a.Type == b.Type && a.Type == sql.TypeNumber:
		return a.F64 == b.F64
	case a.Type == b.Type:
		return a.S == b.S
	case a.Type == sql.TypeNumber:
		f, ok := sql.ParseNumber(b.S)
		return ok && f == a.F64
	default:
		f, ok := sql.ParseNumber(a.S)
		return ok && f == b.F64
	}
}

// compareValues orders a and b: two strings compare lexically, anything
// else numerically after converting strings to numbers. Pairs that cannot be
// ordered (a NULL, or a string that is not numeric against a number) compare
// as equal.
func compareValues(a, b sql.Value) int {
	if a.Type == sql.TypeNull || b.Type == sql.TypeNull {
		return 0
	}
	if a.Type == sql.TypeString && b.Type == sql.TypeString {
		return strings.Compare(a.S, b.S)
	}

	x, okx := toNumber(a)
	y, oky := toNumber(b)
	switch {
	case !okx || !oky:
		return 0
	case x < y:
		return -1
	case x > y:
		return 1
	default:
		return 0
	}
}

func toNumber(v sql.Value) (float64, bool) {
	if v.Type == sql.TypeNumber {
		return v.F64, true
	}
	return sql.ParseNumber(v.S)
}

// sortRows stable-sorts rows in place by one column. Ties keep their
// relative order. Sorting by a column the table does not have is a no-op.
func sortRows(cols []string, rows []sql.Row, ob *sql.OrderBy) {
	idx := columnIndex(cols, ob.Column)
	if idx == -1 {
		return
	}
	sort.SliceStable(rows, func(i, j int) bool {
		c := compareValues(rows[i][idx], rows[j][idx])
		if ob.Desc {
			return c > 0
		}
		return c < 0
	})
}

// projectColumns returns only the requested columns (in that order).
// A requested column the table does not have reads as NULL.
func projectColumns(allCols []string, rows []sql.Row, requestedCols []string) ([]string, []sql.Row) {
	indexes := make([]int, len(requestedCols))
	for i, name := range requestedCols {
		indexes[i] = columnIndex(allCols, name)
	}

	outCols := make([]string, len(requestedCols))
	copy(outCols, requestedCols)

	outRows := make([]sql.Row, 0, len(rows))
	for _, r := range rows {
		proj := make(sql.Row, len(indexes))
		for i, idx := range indexes {
			if idx < 0 || idx >= len(r) {
				proj[i] = sql.Null()
				continue
			}
			proj[i] = r[idx]
		}
		outRows = append(outRows, proj)
	}

	return outCols, outRows
}
