package sql

import (
	"fmt"
	"strings"
)

// Parse parses a single SQL statement string into an AST Statement.
// Leading and trailing whitespace and one trailing semicolon are ignored.
func Parse(query string) (Statement, error) {
	q := TrimStatement(query)

	kind, ok := Classify(q)
	if !ok {
		return nil, ErrUnsupportedStatement
	}

	toks, err := Lex(q)
	if err != nil {
		return nil, fmt.Errorf("error parsing %s query: %w", kind, err)
	}
	p := &parser{src: q, toks: toks, kind: kind}

	switch kind {
	case KindSelect:
		return parseSelect(p)
	case KindInsert:
		return parseInsert(p)
	case KindUpdate:
		return parseUpdate(p)
	case KindDelete:
		return parseDelete(p)
	}
	return nil, ErrUnsupportedStatement
}

// Classify inspects only the leading keyword sequence of query, ignoring
// case: "select", "insert into", "update" or "delete from".
func Classify(query string) (Kind, bool) {
	fields := strings.Fields(strings.ToLower(leadingWords(query, 2)))
	if len(fields) == 0 {
		return "", false
	}
	switch fields[0] {
	case "select":
		return KindSelect, true
	case "update":
		return KindUpdate, true
	case "insert":
		if len(fields) >= 2 && fields[1] == "into" {
			return KindInsert, true
		}
	case "delete":
		if len(fields) >= 2 && fields[1] == "from" {
			return KindDelete, true
		}
	}
	return "", false
}

// leadingWords returns the first n runs of identifier characters in s,
// separated by single spaces. "SELECT*FROM t" yields "SELECT".
func leadingWords(s string, n int) string {
	var words []string
	i := 0
	for len(words) < n {
		for i < len(s) && isSpace(s[i]) {
			i++
		}
		start := i
		for i < len(s) && isIdentPart(s[i]) {
			i++
		}
		if start == i {
			break
		}
		words = append(words, s[start:i])
	}
	return strings.Join(words, " ")
}

// TrimStatement removes surrounding whitespace and one trailing semicolon,
// the normalization Parse applies before reading a statement.
func TrimStatement(query string) string {
	q := strings.TrimSpace(query)
	if strings.HasSuffix(q, ";") {
		q = strings.TrimSpace(q[:len(q)-1])
	}
	return q
}
