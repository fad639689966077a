package sql

// parseInsert parses an INSERT INTO ... VALUES (...) statement.
// Example supported syntax:
//
//	INSERT INTO employees VALUES (6, 'New Person', "IT", 70000);
func parseInsert(p *parser) (Statement, error) {
	if err := p.expectKeyword("insert"); err != nil {
		return nil, err
	}
	if err := p.expectKeyword("into"); err != nil {
		return nil, err
	}
	table, err := p.tableName()
	if err != nil {
		return nil, err
	}
	if err := p.expectKeyword("values"); err != nil {
		return nil, err
	}
	if _, err := p.expect(TokenLParen); err != nil {
		return nil, err
	}

	depth := 0
	toks := p.until(func(i int) bool {
		switch p.toks[i].Type {
		case TokenLParen:
			depth++
		case TokenRParen:
			if depth == 0 {
				return true
			}
			depth--
		}
		return false
	})
	if _, err := p.expect(TokenRParen); err != nil {
		return nil, err
	}
	if err := p.expectEOF(); err != nil {
		return nil, err
	}

	// A blank element coerces to 0, except a trailing one, which is dropped:
	// "(1, , 2)" has three values, "(1, 2, )" two and "()" none.
	parts := splitCommaSeparated(toks)
	if len(parts[len(parts)-1]) == 0 {
		parts = parts[:len(parts)-1]
	}
	vals := make(Row, 0, len(parts))
	for _, part := range parts {
		v, _ := p.parseLiteral(part)
		vals = append(vals, v)
	}

	return &InsertStmt{
		TableName: table,
		Values:    vals,
	}, nil
}
