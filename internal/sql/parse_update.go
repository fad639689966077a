package sql

// parseUpdate parses:
//
//	UPDATE tableName SET col1 = value1, col2 = value2 [WHERE column = literal];
//
// Without WHERE every row is updated.
func parseUpdate(p *parser) (Statement, error) {
	if err := p.expectKeyword("update"); err != nil {
		return nil, err
	}
	table, err := p.tableName()
	if err != nil {
		return nil, err
	}
	if err := p.expectKeyword("set"); err != nil {
		return nil, err
	}

	assignToks := p.until(func(i int) bool { return p.toks[i].Is("where") })
	if len(assignToks) == 0 {
		return nil, p.errorf("missing assignments after SET")
	}

	var assignments []Assignment
	for _, def := range splitCommaSeparated(assignToks) {
		a, err := parseAssignment(p, def)
		if err != nil {
			return nil, err
		}
		assignments = append(assignments, a)
	}

	where, raw, err := p.parseOptionalWhere(func(int) bool { return false })
	if err != nil {
		return nil, err
	}
	if err := p.expectEOF(); err != nil {
		return nil, err
	}

	return &UpdateStmt{
		TableName:   table,
		Assignments: assignments,
		Where:       where,
		RawWhere:    raw,
	}, nil
}

// parseAssignment parses one "column = literal" of a SET list.
func parseAssignment(p *parser, def []Token) (Assignment, error) {
	if len(def) < 2 || def[0].Type != TokenIdent || def[1].Type != TokenEq {
		return Assignment{}, p.errorf("expected column = value in SET, found %q", p.text(def))
	}
	for _, t := range def[2:] {
		if t.Type == TokenEq {
			return Assignment{}, p.errorf("invalid assignment %q", p.text(def))
		}
	}
	val, _ := p.parseLiteral(def[2:])
	return Assignment{
		Column: normalizeIdent(def[0].Text),
		Value:  val,
	}, nil
}
