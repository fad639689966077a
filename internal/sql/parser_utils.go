package sql

import (
	"strings"
)

// parser walks the token stream of one statement.
type parser struct {
	src  string
	toks []Token
	pos  int
	kind Kind
}

func (p *parser) peek() Token {
	return p.toks[p.pos]
}

func (p *parser) next() Token {
	t := p.toks[p.pos]
	if t.Type != TokenEOF {
		p.pos++
	}
	return t
}

func (p *parser) atEOF() bool {
	return p.peek().Type == TokenEOF
}

// expectKeyword consumes the keyword kw or fails with a format error.
func (p *parser) expectKeyword(kw string) error {
	t := p.peek()
	if !t.Is(kw) {
		return p.errorf("expected %s, found %s", strings.ToUpper(kw), describe(t))
	}
	p.next()
	return nil
}

func (p *parser) expect(tt TokenType) (Token, error) {
	t := p.peek()
	if t.Type != tt {
		return Token{}, p.errorf("expected %s, found %s", tt, describe(t))
	}
	return p.next(), nil
}

// tableName consumes an identifier naming a table.
func (p *parser) tableName() (string, error) {
	t := p.peek()
	if t.Type != TokenIdent {
		return "", p.errorf("expected table name, found %s", describe(t))
	}
	p.next()
	return normalizeIdent(t.Text), nil
}

func (p *parser) expectEOF() error {
	if !p.atEOF() {
		return p.errorf("unexpected %s", describe(p.peek()))
	}
	return nil
}

// until consumes tokens up to (not including) EOF or the first token for
// which stop returns true.
func (p *parser) until(stop func(i int) bool) []Token {
	start := p.pos
	for !p.atEOF() && !stop(p.pos) {
		p.pos++
	}
	return p.toks[start:p.pos]
}

// isKeywordPair reports whether tokens i and i+1 are the keywords a and b.
func (p *parser) isKeywordPair(i int, a, b string) bool {
	return i+1 < len(p.toks) && p.toks[i].Is(a) && p.toks[i+1].Is(b)
}

func (p *parser) errorf(format string, args ...any) error {
	return formatErrorf(p.kind, format, args...)
}

// text returns the source text spanned by toks.
func (p *parser) text(toks []Token) string {
	if len(toks) == 0 {
		return ""
	}
	return p.src[toks[0].Pos:toks[len(toks)-1].End]
}

func describe(t Token) string {
	if t.Type == TokenEOF {
		return "end of query"
	}
	return "\"" + t.Text + "\""
}

// normalizeIdent folds an identifier to lower case; table and column names
// are case-insensitive.
func normalizeIdent(s string) string {
	return strings.ToLower(s)
}

// splitCommaSeparated splits toks on top-level commas. Quoted strings are
// single tokens, so a comma inside quotes never splits a value.
func splitCommaSeparated(toks []Token) [][]Token {
	var out [][]Token
	start := 0
	for i, t := range toks {
		if t.Type == TokenComma {
			out = append(out, toks[start:i])
			start = i + 1
		}
	}
	return append(out, toks[start:])
}

// CoerceLiteral converts a literal as written into a Value:
//   - 'text' or "text" becomes a string with the quotes stripped
//   - a numeral becomes a number, and blank text becomes 0
//   - anything else is kept verbatim as a string
func CoerceLiteral(lit string) Value {
	s := strings.TrimSpace(lit)
	if len(s) >= 2 && (s[0] == '\'' || s[0] == '"') && s[len(s)-1] == s[0] {
		return String(s[1 : len(s)-1])
	}
	if f, ok := ParseNumber(s); ok {
		return Number(f)
	}
	return String(s)
}

// parseLiteral coerces the source text spanned by toks. No tokens is the
// blank literal, which coerces to 0.
func (p *parser) parseLiteral(toks []Token) (Value, string) {
	raw := p.text(toks)
	return CoerceLiteral(raw), raw
}

// parseCondition parses a WHERE clause made of toks.
//
// A clause without exactly one '=' is not a recognized equality: it yields a
// nil expression and matches every row. With one '=', the text on the left
// names the column and the text on the right is the literal. Neither side is
// checked further: a left side that is not a column of the table matches no
// rows.
func (p *parser) parseCondition(toks []Token) *WhereExpr {
	eq := -1
	for i, t := range toks {
		if t.Type == TokenEq {
			if eq != -1 {
				return nil
			}
			eq = i
		}
	}
	if eq == -1 {
		return nil
	}

	val, raw := p.parseLiteral(toks[eq+1:])
	return &WhereExpr{
		Column:  normalizeIdent(p.text(toks[:eq])),
		Op:      "=",
		Value:   val,
		Literal: raw,
	}
}

// parseOptionalWhere consumes "WHERE <cond>" when present. The condition ends
// at EOF or where stop returns true.
func (p *parser) parseOptionalWhere(stop func(i int) bool) (*WhereExpr, string, error) {
	if !p.peek().Is("where") {
		return nil, "", nil
	}
	p.next()
	toks := p.until(stop)
	if len(toks) == 0 {
		return nil, "", p.errorf("empty WHERE clause")
	}
	return p.parseCondition(toks), p.text(toks), nil
}
