package sql

import (
	"fmt"
	"strings"
)

// Explain describes in plain English what query would do. It only looks at
// the text, never at table contents, and never fails: text that does not
// parse gets a generic sentence for its leading keyword.
func Explain(query string) string {
	stmt, err := Parse(query)
	if err != nil {
		return explainFallback(query)
	}

	switch s := stmt.(type) {
	case *SelectStmt:
		return explainSelect(s)
	case *InsertStmt:
		return fmt.Sprintf("This query adds a new record to the '%s' table.", s.TableName)
	case *UpdateStmt:
		return "This query modifies data in the '" + s.TableName + "' table" +
			explainTarget(s.Where, s.RawWhere) + "."
	case *DeleteStmt:
		return "This query removes data from the '" + s.TableName + "' table" +
			explainTarget(s.Where, s.RawWhere) + "."
	}
	return explainFallback(query)
}

func explainSelect(s *SelectStmt) string {
	var b strings.Builder
	fmt.Fprintf(&b, "This query retrieves data from the '%s' table", s.TableName)

	switch n := len(s.Columns); {
	case n == 0:
	case n <= 3:
		fmt.Fprintf(&b, " showing the %s column%s", strings.Join(s.Columns, ", "), plural(n))
	default:
		fmt.Fprintf(&b, " showing %d specific columns", n)
	}

	if s.RawWhere != "" {
		b.WriteString(" with specific conditions")
		if s.Where != nil {
			fmt.Fprintf(&b, " (where %s equals %s)", s.Where.Column, s.Where.Literal)
		}
	}

	if s.OrderBy != nil {
		dir := "ascending"
		if s.OrderBy.Desc {
			dir = "descending"
		}
		fmt.Fprintf(&b, " sorted by %s in %s order", s.OrderBy.Column, dir)
	}

	if s.Limit != nil {
		fmt.Fprintf(&b, " showing at most %d result%s", *s.Limit, plural(*s.Limit))
	}

	b.WriteString(".")
	return b.String()
}

func explainTarget(where *WhereExpr, raw string) string {
	switch {
	case raw == "":
		return " for all records"
	case where == nil:
		return " for specific records"
	default:
		return fmt.Sprintf(" for specific records (where %s equals %s)", where.Column, where.Literal)
	}
}

// explainFallback describes text that does not parse. It still names the
// table and the WHERE condition when it can find them in the tokens.
func explainFallback(query string) string {
	q := TrimStatement(query)
	kind, ok := Classify(q)
	if !ok {
		return "This query performs a database operation."
	}
	toks := lexPrefix(q)

	switch kind {
	case KindSelect:
		s := "This query retrieves data"
		if t := identAfter(toks, "from"); t != "" {
			s += " from the '" + t + "' table"
		}
		if cond, ok := fallbackWhere(q, toks, "order", "limit"); ok {
			s += " with specific conditions" + cond
		}
		return s + "."
	case KindInsert:
		t := identAfter(toks, "into")
		if t == "" {
			t = "specified"
		}
		return "This query adds a new record to the '" + t + "' table."
	case KindUpdate:
		s := "This query modifies existing data"
		if t := identAfter(toks, "update"); t != "" {
			s = "This query modifies data in the '" + t + "' table"
		}
		return s + fallbackTarget(q, toks) + "."
	default:
		s := "This query removes data"
		if t := identAfter(toks, "from"); t != "" {
			s += " from the '" + t + "' table"
		}
		return s + fallbackTarget(q, toks) + "."
	}
}

func fallbackTarget(q string, toks []Token) string {
	cond, ok := fallbackWhere(q, toks)
	if !ok {
		return " for all records"
	}
	return " for specific records" + cond
}

// fallbackWhere finds a WHERE keyword in toks. The condition runs to the end
// of q or to the first of the stop keywords. When it contains '=', cond
// describes the text around the first one.
func fallbackWhere(q string, toks []Token, stop ...string) (cond string, ok bool) {
	start := -1
	for i, t := range toks {
		if t.Is("where") {
			start = i
			break
		}
	}
	if start == -1 {
		return "", false
	}

	end := len(q)
	for _, t := range toks[start+1:] {
		if isAnyKeyword(t, stop) {
			end = t.Pos
			break
		}
	}

	parts := strings.SplitN(q[toks[start].End:end], "=", 3)
	if len(parts) < 2 {
		return "", true
	}
	return fmt.Sprintf(" (where %s equals %s)",
		normalizeIdent(strings.TrimSpace(parts[0])), strings.TrimSpace(parts[1])), true
}

// lexPrefix returns the tokens of q up to the first lexing error.
func lexPrefix(q string) []Token {
	l := NewLexer(q)
	var toks []Token
	for {
		t, err := l.NextToken()
		if err != nil || t.Type == TokenEOF {
			return toks
		}
		toks = append(toks, t)
	}
}

// identAfter returns the identifier following the first keyword kw, or "".
func identAfter(toks []Token, kw string) string {
	for i := 0; i+1 < len(toks); i++ {
		if toks[i].Is(kw) && toks[i+1].Type == TokenIdent {
			return normalizeIdent(toks[i+1].Text)
		}
	}
	return ""
}

func isAnyKeyword(t Token, kws []string) bool {
	for _, kw := range kws {
		if t.Is(kw) {
			return true
		}
	}
	return false
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}
