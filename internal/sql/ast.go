package sql

// Statement is the common interface for all SQL statements.
type Statement interface {
	stmtNode()
	// Table returns the name of the table the statement targets.
	Table() string
}

// WhereExpr is a single "column = literal" condition.
type WhereExpr struct {
	Column  string
	Op      string
	Value   Value
	Literal string // literal as written, quotes included
}

// Assignment is one "column = literal" pair of an UPDATE ... SET list.
type Assignment struct {
	Column string
	Value  Value
}

// OrderBy is the ORDER BY clause of a SELECT.
type OrderBy struct {
	Column string
	Desc   bool
}

// SelectStmt represents a parsed SELECT statement.
//
// Columns is nil for SELECT *. RawWhere holds the WHERE clause text whenever
// one was written; Where is nil when that text is not a single equality, in
// which case the clause matches every row.
type SelectStmt struct {
	TableName string
	Columns   []string
	Where     *WhereExpr
	RawWhere  string
	OrderBy   *OrderBy
	Limit     *int
}

// InsertStmt represents a parsed INSERT INTO ... VALUES (...) statement.
type InsertStmt struct {
	TableName string
	Values    Row
}

// UpdateStmt represents a parsed UPDATE statement.
type UpdateStmt struct {
	TableName   string
	Assignments []Assignment
	Where       *WhereExpr
	RawWhere    string
}

// DeleteStmt represents a parsed DELETE statement.
type DeleteStmt struct {
	TableName string
	Where     *WhereExpr
	RawWhere  string
}

func (*SelectStmt) stmtNode() {}
func (*InsertStmt) stmtNode() {}
func (*UpdateStmt) stmtNode() {}
func (*DeleteStmt) stmtNode() {}

func (s *SelectStmt) Table() string { return s.TableName }
func (s *InsertStmt) Table() string { return s.TableName }
func (s *UpdateStmt) Table() string { return s.TableName }
func (s *DeleteStmt) Table() string { return s.TableName }
