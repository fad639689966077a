package sql

import (
	"strconv"
)

// parseSelect parses:
//
//	SELECT * FROM employees;
//	SELECT name, salary FROM employees WHERE department = 'Engineering';
//	SELECT * FROM departments ORDER BY budget DESC LIMIT 2;
//
// The WHERE, ORDER BY and LIMIT clauses are optional but must appear in
// that order.
func parseSelect(p *parser) (Statement, error) {
	if err := p.expectKeyword("select"); err != nil {
		return nil, err
	}

	cols, err := parseSelectList(p)
	if err != nil {
		return nil, err
	}

	if err := p.expectKeyword("from"); err != nil {
		return nil, err
	}
	table, err := p.tableName()
	if err != nil {
		return nil, err
	}

	stmt := &SelectStmt{TableName: table, Columns: cols}

	stmt.Where, stmt.RawWhere, err = p.parseOptionalWhere(func(i int) bool {
		return p.isKeywordPair(i, "order", "by") || p.toks[i].Is("limit")
	})
	if err != nil {
		return nil, err
	}

	if p.isKeywordPair(p.pos, "order", "by") {
		p.next()
		p.next()
		ob, err := parseOrderBy(p)
		if err != nil {
			return nil, err
		}
		stmt.OrderBy = ob
	}

	if p.peek().Is("limit") {
		p.next()
		t, err := p.expect(TokenNumber)
		if err != nil {
			return nil, err
		}
		n, err := strconv.Atoi(t.Text)
		if err != nil || n < 0 {
			return nil, p.errorf("LIMIT: expected a non-negative integer, found %q", t.Text)
		}
		stmt.Limit = &n
	}

	if err := p.expectEOF(); err != nil {
		return nil, err
	}
	return stmt, nil
}

// parseSelectList parses "*" or a comma-separated list of column names.
// A nil result means all columns.
func parseSelectList(p *parser) ([]string, error) {
	toks := p.until(func(i int) bool { return p.toks[i].Is("from") })
	if len(toks) == 0 {
		return nil, p.errorf("missing column list")
	}
	if len(toks) == 1 && toks[0].Type == TokenStar {
		return nil, nil
	}

	var cols []string
	for _, part := range splitCommaSeparated(toks) {
		if len(part) != 1 || part[0].Type != TokenIdent {
			return nil, p.errorf("invalid column %q in SELECT list", p.text(part))
		}
		cols = append(cols, normalizeIdent(part[0].Text))
	}
	return cols, nil
}

// parseOrderBy parses "<column> [direction]". Only DESC (any case) sorts
// descending; any other direction word sorts ascending.
func parseOrderBy(p *parser) (*OrderBy, error) {
	col := p.peek()
	if col.Type != TokenIdent || col.Is("limit") {
		return nil, p.errorf("ORDER BY: expected a column name, found %s", describe(col))
	}
	p.next()

	ob := &OrderBy{Column: normalizeIdent(col.Text)}
	if dir := p.peek(); dir.Type == TokenIdent && !dir.Is("limit") {
		p.next()
		ob.Desc = dir.Is("desc")
	}
	return ob, nil
}
