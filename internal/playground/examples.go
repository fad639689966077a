package playground

// Examples is the catalog of ready-made statements offered for reuse.
var Examples = []string{
	"SELECT * FROM employees;",
	`SELECT name, salary FROM employees WHERE department = "Engineering";`,
	"SELECT * FROM departments ORDER BY budget DESC;",
	`SELECT * FROM projects WHERE status = "In Progress";`,
	`INSERT INTO employees VALUES (6, "New Person", "IT", 70000);`,
	"UPDATE employees SET salary = 95000 WHERE id = 3;",
	"DELETE FROM employees WHERE id = 5;",
}
