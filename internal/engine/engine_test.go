package engine

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"sqlplayground/internal/fixture"
	"sqlplayground/internal/sql"
	"sqlplayground/internal/storage"
	"sqlplayground/internal/storage/memstore"
)

func newSeededEngine(t *testing.T) *DBEngine {
	t.Helper()
	store, err := fixture.NewStore()
	if err != nil {
		t.Fatalf("NewStore failed: %v", err)
	}
	return New(store)
}

func mustQuery(t *testing.T, eng *DBEngine, query string) Result {
	t.Helper()
	res := eng.ExecuteQuery(query)
	if !res.Success() {
		t.Fatalf("ExecuteQuery(%q) failed: %s", query, res.Error)
	}
	return res
}

func mustSelectAll(t *testing.T, eng *DBEngine, table string) ([]string, []sql.Row) {
	t.Helper()
	cols, rows, err := eng.SelectAll(table)
	if err != nil {
		t.Fatalf("SelectAll(%s) failed: %v", table, err)
	}
	return cols, rows
}

func column(t *testing.T, res Result, name string) []sql.Value {
	t.Helper()
	idx := columnIndex(res.Columns, name)
	if idx == -1 {
		t.Fatalf("column %q not in result columns %v", name, res.Columns)
	}
	out := make([]sql.Value, len(res.Rows))
	for i, r := range res.Rows {
		out[i] = r[idx]
	}
	return out
}

func numbers(vals []sql.Value) []float64 {
	out := make([]float64, len(vals))
	for i, v := range vals {
		out[i] = v.F64
	}
	return out
}

func equalFloats(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestExecuteSelect_All(t *testing.T) {
	eng := newSeededEngine(t)

	res := mustQuery(t, eng, "SELECT * FROM employees;")

	if res.Type != ResultRead {
		t.Fatalf("expected read result, got %v", res.Type)
	}
	expectedCols := []string{"id", "name", "department", "salary"}
	if strings.Join(res.Columns, ",") != strings.Join(expectedCols, ",") {
		t.Fatalf("expected columns %v, got %v", expectedCols, res.Columns)
	}
	if res.Count != 5 || len(res.Rows) != 5 {
		t.Fatalf("expected 5 rows, got count=%d len=%d", res.Count, len(res.Rows))
	}
	if got := numbers(column(t, res, "id")); !equalFloats(got, []float64{1, 2, 3, 4, 5}) {
		t.Fatalf("rows out of insertion order: %v", got)
	}
}

func TestExecuteSelect_WhereString(t *testing.T) {
	eng := newSeededEngine(t)

	res := mustQuery(t, eng, `SELECT name, salary FROM employees WHERE department = "Engineering"`)

	if strings.Join(res.Columns, ",") != "name,salary" {
		t.Fatalf("unexpected columns: %v", res.Columns)
	}
	if res.Count != 2 {
		t.Fatalf("expected 2 rows, got %d", res.Count)
	}
	names := column(t, res, "name")
	if names[0].S != "John Doe" || names[1].S != "Bob Johnson" {
		t.Fatalf("unexpected rows: %v", res.Rows)
	}
}

func TestExecuteSelect_WhereIsLooselyTyped(t *testing.T) {
	eng := newSeededEngine(t)

	for _, q := range []string{
		"SELECT * FROM employees WHERE id = 3",
		"SELECT * FROM employees WHERE id = '3'",
		`SELECT * FROM employees WHERE id = " 3 "`,
		"SELECT * FROM employees WHERE id = 3.0",
		"SELECT * FROM employees WHERE id = 0x3",
		"SELECT * FROM employees WHERE id = '0b11'",
	} {
		res := mustQuery(t, eng, q)
		if res.Count != 1 || res.Rows[0][1].S != "Bob Johnson" {
			t.Fatalf("%q: expected Bob Johnson only, got %v", q, res.Rows)
		}
	}

	res := mustQuery(t, eng, "SELECT * FROM employees WHERE id = 'three'")
	if res.Count != 0 {
		t.Fatalf("expected no rows for non-numeric string, got %d", res.Count)
	}
}

func TestExecuteSelect_WhereSubsetProperty(t *testing.T) {
	eng := newSeededEngine(t)
	_, all := mustSelectAll(t, eng, "projects")

	res := mustQuery(t, eng, "SELECT * FROM projects WHERE status = 'In Progress'")

	var want []float64
	for _, r := range all {
		if r[3].S == "In Progress" {
			want = append(want, r[0].F64)
		}
	}
	if got := numbers(column(t, res, "id")); !equalFloats(got, want) {
		t.Fatalf("expected ids %v, got %v", want, got)
	}
}

func TestExecuteSelect_UnknownWhereColumnMatchesNothing(t *testing.T) {
	eng := newSeededEngine(t)

	res := mustQuery(t, eng, "SELECT * FROM employees WHERE nickname = 'JD'")
	if res.Count != 0 {
		t.Fatalf("expected 0 rows, got %d", res.Count)
	}
}

func TestExecuteQuery_MalformedWhereMatchesNothing(t *testing.T) {
	eng := newSeededEngine(t)

	for _, q := range []string{
		"SELECT * FROM employees WHERE id =",
		"SELECT * FROM employees WHERE first name = 'x'",
		"SELECT * FROM employees WHERE 1 = 1",
		"SELECT * FROM employees WHERE = 3",
	} {
		res := mustQuery(t, eng, q)
		if res.Count != 0 {
			t.Fatalf("%q: expected 0 rows, got %d", q, res.Count)
		}
	}

	res := mustQuery(t, eng, "DELETE FROM employees WHERE id =")
	if res.AffectedRows != 0 {
		t.Fatalf("expected nothing deleted, got %d", res.AffectedRows)
	}
	if _, rows := mustSelectAll(t, eng, "employees"); len(rows) != 5 {
		t.Fatalf("expected 5 rows to remain, got %d", len(rows))
	}
}

func TestExecuteSelect_UnrecognizedWhereMatchesAll(t *testing.T) {
	eng := newSeededEngine(t)

	res := mustQuery(t, eng, "SELECT * FROM employees WHERE salary > 80000")
	if res.Count != 5 {
		t.Fatalf("expected all 5 rows, got %d", res.Count)
	}
}

func TestExecuteSelect_OrderBy(t *testing.T) {
	eng := newSeededEngine(t)

	res := mustQuery(t, eng, "SELECT * FROM departments ORDER BY budget DESC")
	if got := numbers(column(t, res, "budget")); !equalFloats(got, []float64{500000, 300000, 200000}) {
		t.Fatalf("unexpected DESC order: %v", got)
	}

	res = mustQuery(t, eng, "SELECT * FROM employees ORDER BY salary")
	got := numbers(column(t, res, "salary"))
	for i := 1; i < len(got); i++ {
		if got[i-1] > got[i] {
			t.Fatalf("salaries not non-decreasing: %v", got)
		}
	}

	res = mustQuery(t, eng, "SELECT name FROM departments ORDER BY name")
	names := column(t, res, "name")
	if names[0].S != "Engineering" || names[1].S != "HR" || names[2].S != "Marketing" {
		t.Fatalf("unexpected lexical order: %v", names)
	}
}

func TestExecuteSelect_OrderByIsStable(t *testing.T) {
	eng := newSeededEngine(t)

	res := mustQuery(t, eng, "SELECT id, department FROM employees ORDER BY department desc")
	if got := numbers(column(t, res, "id")); !equalFloats(got, []float64{2, 5, 4, 1, 3}) {
		t.Fatalf("expected ties in original order, got ids %v", got)
	}

	res = mustQuery(t, eng, "SELECT id FROM employees ORDER BY nickname")
	if got := numbers(column(t, res, "id")); !equalFloats(got, []float64{1, 2, 3, 4, 5}) {
		t.Fatalf("sorting by a missing column changed order: %v", got)
	}
}

func TestExecuteSelect_Limit(t *testing.T) {
	eng := newSeededEngine(t)

	res := mustQuery(t, eng, "SELECT * FROM employees ORDER BY salary DESC LIMIT 2")
	if res.Count != 2 {
		t.Fatalf("expected 2 rows, got %d", res.Count)
	}
	if got := numbers(column(t, res, "salary")); !equalFloats(got, []float64{90000, 85000}) {
		t.Fatalf("unexpected rows: %v", got)
	}

	res = mustQuery(t, eng, "SELECT * FROM employees LIMIT 0")
	if res.Count != 0 || len(res.Rows) != 0 {
		t.Fatalf("expected no rows for LIMIT 0, got %d", res.Count)
	}

	res = mustQuery(t, eng, "SELECT * FROM departments LIMIT 50")
	if res.Count != 3 {
		t.Fatalf("expected 3 rows, got %d", res.Count)
	}
}

func TestExecuteSelect_ProjectionMissingColumnIsNull(t *testing.T) {
	eng := newSeededEngine(t)

	res := mustQuery(t, eng, "SELECT salary, nickname, name FROM employees WHERE id = 1")
	if strings.Join(res.Columns, ",") != "salary,nickname,name" {
		t.Fatalf("unexpected columns: %v", res.Columns)
	}
	row := res.Rows[0]
	if row[0] != sql.Number(85000) || !row[1].IsNull() || row[2] != sql.String("John Doe") {
		t.Fatalf("unexpected projected row: %+v", row)
	}
}

func TestExecuteSelect_ResultIsACopy(t *testing.T) {
	eng := newSeededEngine(t)

	res := mustQuery(t, eng, "SELECT * FROM employees")
	res.Rows[0][1] = sql.String("Changed")

	_, rows := mustSelectAll(t, eng, "employees")
	if rows[0][1].S != "John Doe" {
		t.Fatalf("table changed through a result row: %v", rows[0])
	}
}

func TestExecuteInsert_RoundTrip(t *testing.T) {
	eng := newSeededEngine(t)

	res := mustQuery(t, eng, `INSERT INTO employees VALUES (6,'New',"IT",70000)`)
	if res.Type != ResultWrite || res.AffectedRows != 1 || res.Message != "Insert successful" {
		t.Fatalf("unexpected insert result: %+v", res)
	}
	if res.LastInsertID == nil || *res.LastInsertID != sql.Number(6) {
		t.Fatalf("expected lastInsertId 6, got %v", res.LastInsertID)
	}

	sel := mustQuery(t, eng, "SELECT * FROM employees WHERE id = 6")
	if sel.Count != 1 {
		t.Fatalf("expected 1 row, got %d", sel.Count)
	}
	want := sql.Row{sql.Number(6), sql.String("New"), sql.String("IT"), sql.Number(70000)}
	for i := range want {
		if sel.Rows[0][i] != want[i] {
			t.Fatalf("column %d: expected %+v, got %+v", i, want[i], sel.Rows[0][i])
		}
	}
}

func TestExecuteInsert_DuplicateIDAllowed(t *testing.T) {
	eng := newSeededEngine(t)

	mustQuery(t, eng, "INSERT INTO departments VALUES (1, 'Legal', 10)")

	res := mustQuery(t, eng, "SELECT * FROM departments WHERE id = 1")
	if res.Count != 2 {
		t.Fatalf("expected 2 rows with id 1, got %d", res.Count)
	}
}

func TestExecuteInsert_ValueCountMismatch(t *testing.T) {
	eng := newSeededEngine(t)

	_, err := eng.Execute(&sql.InsertStmt{TableName: "employees", Values: sql.Row{sql.Number(9)}})
	if !errors.Is(err, ErrValueCountMismatch) {
		t.Fatalf("expected ErrValueCountMismatch, got %v", err)
	}

	res := eng.ExecuteQuery("INSERT INTO employees VALUES (6, 'Too Few')")
	if res.Success() || !strings.Contains(res.Error, "value count (2) does not match column count (4)") {
		t.Fatalf("unexpected result: %+v", res)
	}
	if _, rows := mustSelectAll(t, eng, "employees"); len(rows) != 5 {
		t.Fatalf("failed insert changed the table: %d rows", len(rows))
	}
}

func TestExecuteInsert_BlankValues(t *testing.T) {
	eng := newSeededEngine(t)

	mustQuery(t, eng, "INSERT INTO departments VALUES (4, , 1000)")
	mustQuery(t, eng, "INSERT INTO departments VALUES (5, 'Ops', 2000, )")

	_, rows := mustSelectAll(t, eng, "departments")
	if len(rows) != 5 {
		t.Fatalf("expected 5 rows, got %d", len(rows))
	}
	if rows[3][1] != sql.Number(0) {
		t.Fatalf("expected blank value stored as 0, got %+v", rows[3])
	}
	if rows[4][1] != sql.String("Ops") || rows[4][2] != sql.Number(2000) {
		t.Fatalf("unexpected row after trailing comma: %+v", rows[4])
	}

	res := eng.ExecuteQuery("INSERT INTO departments VALUES ()")
	if res.Success() || !strings.Contains(res.Error, "value count (0) does not match column count (3)") {
		t.Fatalf("unexpected result: %+v", res)
	}
}

func TestExecuteInsert_EmptyTable(t *testing.T) {
	eng := newSeededEngine(t)

	mustQuery(t, eng, "DELETE FROM projects")
	res := mustQuery(t, eng, "INSERT INTO projects VALUES (9, 'Fresh Start', 1, 'Planning', 10)")
	if res.AffectedRows != 1 {
		t.Fatalf("expected insert into empty table to succeed, got %+v", res)
	}
}

func TestExecuteUpdate_Basic(t *testing.T) {
	eng := newSeededEngine(t)
	_, before := mustSelectAll(t, eng, "employees")

	res := mustQuery(t, eng, "UPDATE employees SET salary = 95000 WHERE id = 3")
	if res.Type != ResultWrite || res.AffectedRows != 1 || res.Message != "Update successful" {
		t.Fatalf("unexpected update result: %+v", res)
	}

	_, after := mustSelectAll(t, eng, "employees")
	for i := range before {
		for j := range before[i] {
			want := before[i][j]
			if i == 2 && j == 3 {
				want = sql.Number(95000)
			}
			if after[i][j] != want {
				t.Fatalf("row %d col %d: expected %+v, got %+v", i, j, want, after[i][j])
			}
		}
	}
}

func TestExecuteUpdate_IsIdempotent(t *testing.T) {
	eng := newSeededEngine(t)

	q := "UPDATE employees SET department = 'Sales', salary = 1 WHERE department = 'Marketing'"
	first := mustQuery(t, eng, q)
	_, state1 := mustSelectAll(t, eng, "employees")
	second := mustQuery(t, eng, "UPDATE employees SET department = 'Sales', salary = 1 WHERE department = 'Sales'")
	third := mustQuery(t, eng, q)

	if first.AffectedRows != 2 || second.AffectedRows != 2 {
		t.Fatalf("expected 2 matched rows, got %d and %d", first.AffectedRows, second.AffectedRows)
	}
	if third.AffectedRows != 0 {
		t.Fatalf("expected no Marketing rows left, got %d", third.AffectedRows)
	}

	again := mustQuery(t, eng, "UPDATE employees SET salary = 95000 WHERE id = 3")
	again2 := mustQuery(t, eng, "UPDATE employees SET salary = 95000 WHERE id = 3")
	if again.AffectedRows != again2.AffectedRows {
		t.Fatalf("repeated update reported %d then %d", again.AffectedRows, again2.AffectedRows)
	}

	_, state2 := mustSelectAll(t, eng, "employees")
	for i := range state1 {
		if i == 2 {
			continue
		}
		for j := range state1[i] {
			if state1[i][j] != state2[i][j] {
				t.Fatalf("row %d changed between identical updates", i)
			}
		}
	}
}

func TestExecuteUpdate_LastAssignmentWinsAndNoWhere(t *testing.T) {
	eng := newSeededEngine(t)

	res := mustQuery(t, eng, "UPDATE departments SET budget = 1, budget = 2")
	if res.AffectedRows != 3 {
		t.Fatalf("expected all 3 rows matched, got %d", res.AffectedRows)
	}
	_, rows := mustSelectAll(t, eng, "departments")
	for _, r := range rows {
		if r[2] != sql.Number(2) {
			t.Fatalf("expected budget 2, got %+v", r[2])
		}
	}
}

func TestExecuteUpdate_UnknownColumn(t *testing.T) {
	eng := newSeededEngine(t)

	_, err := eng.Execute(&sql.UpdateStmt{
		TableName:   "employees",
		Assignments: []sql.Assignment{{Column: "salary", Value: sql.Number(1)}, {Column: "bonus", Value: sql.Number(1)}},
	})
	if !errors.Is(err, ErrUnknownColumn) {
		t.Fatalf("expected ErrUnknownColumn, got %v", err)
	}

	_, rows := mustSelectAll(t, eng, "employees")
	if rows[0][3] != sql.Number(85000) {
		t.Fatalf("failed update changed data: %+v", rows[0])
	}
}

func TestExecuteDelete(t *testing.T) {
	eng := newSeededEngine(t)

	res := mustQuery(t, eng, "DELETE FROM employees WHERE id = 5")
	if res.Type != ResultWrite || res.AffectedRows != 1 || res.Message != "Delete successful" {
		t.Fatalf("unexpected delete result: %+v", res)
	}
	_, rows := mustSelectAll(t, eng, "employees")
	if len(rows) != 4 {
		t.Fatalf("expected 4 rows, got %d", len(rows))
	}

	res = mustQuery(t, eng, "DELETE FROM employees WHERE department = 'Engineering'")
	if res.AffectedRows != 2 {
		t.Fatalf("expected 2 deleted rows, got %d", res.AffectedRows)
	}
	_, rows = mustSelectAll(t, eng, "employees")
	if len(rows) != 2 || rows[0][1].S != "Jane Smith" || rows[1][1].S != "Alice Brown" {
		t.Fatalf("unexpected remaining rows: %v", rows)
	}

	res = mustQuery(t, eng, "DELETE FROM employees")
	if res.AffectedRows != 2 {
		t.Fatalf("expected 2 deleted rows, got %d", res.AffectedRows)
	}
	if _, rows = mustSelectAll(t, eng, "employees"); len(rows) != 0 {
		t.Fatalf("expected empty table, got %d rows", len(rows))
	}
}

func TestExecuteDelete_IdenticalRowsAreDistinct(t *testing.T) {
	eng := newSeededEngine(t)

	mustQuery(t, eng, "INSERT INTO departments VALUES (7, 'Twin', 1)")
	mustQuery(t, eng, "INSERT INTO departments VALUES (7, 'Twin', 1)")

	res := mustQuery(t, eng, "DELETE FROM departments WHERE name = 'Twin'")
	if res.AffectedRows != 2 {
		t.Fatalf("expected both identical rows deleted, got %d", res.AffectedRows)
	}
	if _, rows := mustSelectAll(t, eng, "departments"); len(rows) != 3 {
		t.Fatalf("expected 3 rows left, got %d", len(rows))
	}
}

func TestExecuteQuery_UnknownTable(t *testing.T) {
	eng := newSeededEngine(t)

	for _, q := range []string{
		"SELECT * FROM customers",
		"INSERT INTO customers VALUES (1)",
		"UPDATE customers SET a = 1",
		"DELETE FROM customers",
	} {
		stmt, err := sql.Parse(q)
		if err != nil {
			t.Fatalf("Parse(%q) failed: %v", q, err)
		}
		if _, err := eng.Execute(stmt); !errors.Is(err, storage.ErrTableNotFound) {
			t.Fatalf("%q: expected ErrTableNotFound, got %v", q, err)
		}
		res := eng.ExecuteQuery(q)
		if res.Type != ResultError || res.Error != "table customers not found" {
			t.Fatalf("%q: unexpected result %+v", q, res)
		}
	}

	for _, tbl := range fixture.Tables() {
		if _, rows := mustSelectAll(t, eng, tbl.Name); len(rows) != len(tbl.Rows) {
			t.Fatalf("%s changed: %d rows", tbl.Name, len(rows))
		}
	}
}

func TestExecuteQuery_ErrorEnvelopes(t *testing.T) {
	eng := newSeededEngine(t)

	res := eng.ExecuteQuery("DROP TABLE employees")
	if res.Success() || res.Error != UnsupportedMessage {
		t.Fatalf("unexpected result: %+v", res)
	}

	res = eng.ExecuteQuery("SELECT * employees")
	if res.Success() || !strings.HasPrefix(res.Error, "invalid SELECT query format") {
		t.Fatalf("unexpected result: %+v", res)
	}

	res = eng.ExecuteQuery(`INSERT INTO employees VALUES (6, "oops)`)
	if res.Success() || !strings.HasPrefix(res.Error, "error parsing INSERT query") {
		t.Fatalf("unexpected result: %+v", res)
	}
}

type panicStore struct {
	storage.Engine
}

func (panicStore) Begin(bool) (storage.Tx, error) { panic("boom") }

func TestExecuteQuery_RecoversPanics(t *testing.T) {
	eng := New(panicStore{memstore.New()})

	res := eng.ExecuteQuery("SELECT * FROM employees")
	if res.Success() || res.Error != "error parsing SELECT query: boom" {
		t.Fatalf("unexpected result: %+v", res)
	}
}

func TestResultJSON(t *testing.T) {
	eng := newSeededEngine(t)

	read := mustQuery(t, eng, "SELECT name, id FROM departments WHERE id = 2")
	b, err := json.Marshal(read)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	want := `{"success":true,"columns":["name","id"],"rows":[{"name":"Marketing","id":2}],"count":1}`
	if string(b) != want {
		t.Fatalf("unexpected JSON:\n got %s\nwant %s", b, want)
	}

	write := mustQuery(t, eng, "INSERT INTO departments VALUES (4, 'Legal', 1.5)")
	b, _ = json.Marshal(write)
	want = `{"success":true,"message":"Insert successful","affectedRows":1,"lastInsertId":4}`
	if string(b) != want {
		t.Fatalf("unexpected JSON:\n got %s\nwant %s", b, want)
	}

	b, _ = json.Marshal(eng.ExecuteQuery("VACUUM"))
	want = `{"error":"` + UnsupportedMessage + `"}`
	if string(b) != want {
		t.Fatalf("unexpected JSON:\n got %s\nwant %s", b, want)
	}
}

func TestResultRecords(t *testing.T) {
	eng := newSeededEngine(t)

	res := mustQuery(t, eng, "SELECT * FROM departments WHERE name = 'HR'")
	recs := res.Records()
	if len(recs) != 1 || recs[0]["budget"] != sql.Number(200000) || recs[0]["name"] != sql.String("HR") {
		t.Fatalf("unexpected records: %v", recs)
	}
}

func TestGetSchema(t *testing.T) {
	eng := newSeededEngine(t)

	ts, err := eng.GetSchema("Projects")
	if err != nil {
		t.Fatalf("GetSchema failed: %v", err)
	}
	want := []ColumnInfo{
		{Name: "id", Type: "INTEGER", IsPrimary: true},
		{Name: "name", Type: "TEXT"},
		{Name: "department_id", Type: "INTEGER"},
		{Name: "status", Type: "TEXT"},
		{Name: "budget", Type: "INTEGER"},
	}
	if ts.TableName != "projects" || len(ts.Columns) != len(want) {
		t.Fatalf("unexpected schema: %+v", ts)
	}
	for i := range want {
		if ts.Columns[i] != want[i] {
			t.Fatalf("column %d: expected %+v, got %+v", i, want[i], ts.Columns[i])
		}
	}

	if _, err := eng.GetSchema("nope"); !errors.Is(err, storage.ErrTableNotFound) {
		t.Fatalf("expected ErrTableNotFound, got %v", err)
	}
}

func TestGetSchemas_EmptyTable(t *testing.T) {
	eng := newSeededEngine(t)
	mustQuery(t, eng, "DELETE FROM employees")

	all, err := eng.GetSchemas()
	if err != nil {
		t.Fatalf("GetSchemas failed: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 schemas, got %d", len(all))
	}
	if len(all["employees"].Columns) != 4 {
		t.Fatalf("empty table lost its schema: %+v", all["employees"])
	}

	names, err := eng.ListTables()
	if err != nil {
		t.Fatalf("ListTables failed: %v", err)
	}
	if strings.Join(names, ",") != "employees,departments,projects" {
		t.Fatalf("unexpected table list: %v", names)
	}
}

func TestValuesEqual(t *testing.T) {
	cases := []struct {
		a, b sql.Value
		want bool
	}{
		{sql.Number(3), sql.Number(3), true},
		{sql.Number(3), sql.String("3"), true},
		{sql.String("3.0"), sql.Number(3), true},
		{sql.Number(0), sql.String(""), true},
		{sql.Number(3), sql.String("3x"), false},
		{sql.Number(26), sql.String("0x1A"), true},
		{sql.Number(0.25), sql.String("0x1p-2"), false},
		{sql.String("a"), sql.String("A"), false},
		{sql.Null(), sql.Null(), true},
		{sql.Null(), sql.Number(0), false},
		{sql.String(""), sql.Null(), false},
	}
	for _, c := range cases {
		if got := valuesEqual(c.a, c.b); got != c.want {
			t.Fatalf("valuesEqual(%+v, %+v) = %v, want %v", c.a, c.b, got, c.want)
		}
	}
}

func TestCompareValues(t *testing.T) {
	cases := []struct {
		a, b sql.Value
		want int
	}{
		{sql.Number(1), sql.Number(2), -1},
		{sql.String("b"), sql.String("a"), 1},
		{sql.String("10"), sql.String("9"), -1},
		{sql.String("10"), sql.Number(9), 1},
		{sql.String("x"), sql.Number(9), 0},
		{sql.Null(), sql.Number(9), 0},
	}
	for _, c := range cases {
		if got := compareValues(c.a, c.b); got != c.want {
			t.Fatalf("compareValues(%+v, %+v) = %d, want %d", c.a, c.b, got, c.want)
		}
	}
}
