package sql

// parseDelete parses:
//
//	DELETE FROM tableName [WHERE column = literal];
//
// Without WHERE every row is deleted.
func parseDelete(p *parser) (Statement, error) {
	if err := p.expectKeyword("delete"); err != nil {
		return nil, err
	}
	if err := p.expectKeyword("from"); err != nil {
		return nil, err
	}
	table, err := p.tableName()
	if err != nil {
		return nil, err
	}

	where, raw, err := p.parseOptionalWhere(func(int) bool { return false })
	if err != nil {
		return nil, err
	}
	if err := p.expectEOF(); err != nil {
		return nil, err
	}

	return &DeleteStmt{
		TableName: table,
		Where:     where,
		RawWhere:  raw,
	}, nil
}
