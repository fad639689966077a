package sql

import "testing"

func TestExplain(t *testing.T) {
	cases := []struct {
		query string
		want  string
	}{
		{
			"SELECT * FROM employees;",
			"This query retrieves data from the 'employees' table.",
		},
		{
			`SELECT name, salary FROM employees WHERE department = "Engineering"`,
			`This query retrieves data from the 'employees' table showing the name, salary columns with specific conditions (where department equals "Engineering").`,
		},
		{
			"SELECT name FROM employees",
			"This query retrieves data from the 'employees' table showing the name column.",
		},
		{
			"SELECT id, name, department, salary FROM employees LIMIT 1",
			"This query retrieves data from the 'employees' table showing 4 specific columns showing at most 1 result.",
		},
		{
			"SELECT * FROM departments ORDER BY budget DESC LIMIT 2",
			"This query retrieves data from the 'departments' table sorted by budget in descending order showing at most 2 results.",
		},
		{
			"SELECT * FROM departments WHERE budget > 1 ORDER BY name",
			"This query retrieves data from the 'departments' table with specific conditions sorted by name in ascending order.",
		},
		{
			`INSERT INTO employees VALUES (6, "New Person", "IT", 70000);`,
			"This query adds a new record to the 'employees' table.",
		},
		{
			"UPDATE employees SET salary = 95000 WHERE id = 3;",
			"This query modifies data in the 'employees' table for specific records (where id equals 3).",
		},
		{
			"UPDATE employees SET salary = 1",
			"This query modifies data in the 'employees' table for all records.",
		},
		{
			"DELETE FROM employees WHERE id = 5;",
			"This query removes data from the 'employees' table for specific records (where id equals 5).",
		},
		{
			"DELETE FROM projects",
			"This query removes data from the 'projects' table for all records.",
		},
	}
	for _, c := range cases {
		if got := Explain(c.query); got != c.want {
			t.Fatalf("Explain(%q)\n got: %s\nwant: %s", c.query, got, c.want)
		}
	}
}

func TestExplain_Degrades(t *testing.T) {
	cases := []struct {
		query string
		want  string
	}{
		{"SELECT garbage", "This query retrieves data."},
		{
			"SELECT * FROM Employees WHERE id = 1 LIMIT -1",
			"This query retrieves data from the 'employees' table with specific conditions (where id equals 1).",
		},
		{"INSERT INTO", "This query adds a new record to the 'specified' table."},
		{"INSERT INTO projects VALUES 1", "This query adds a new record to the 'projects' table."},
		{"UPDATE", "This query modifies existing data for all records."},
		{"UPDATE employees", "This query modifies data in the 'employees' table for all records."},
		{
			"UPDATE employees SET WHERE id = 2",
			"This query modifies data in the 'employees' table for specific records (where id equals 2).",
		},
		{"DELETE FROM employees WHERE '", "This query removes data from the 'employees' table for specific records."},
		{"DELETE FROM projects extra", "This query removes data from the 'projects' table for all records."},
		{"DROP TABLE employees", "This query performs a database operation."},
		{"", "This query performs a database operation."},
	}
	for _, c := range cases {
		if got := Explain(c.query); got != c.want {
			t.Fatalf("Explain(%q)\n got: %s\nwant: %s", c.query, got, c.want)
		}
	}
}

func TestExplain_LooseWhere(t *testing.T) {
	got := Explain("DELETE FROM employees WHERE a b = 1")
	want := "This query removes data from the 'employees' table for specific records (where a b equals 1)."
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}
