package sql

import (
	"fmt"
	"strings"
)

// TokenType represents the type of a lexical token.
type TokenType int

const (
	TokenEOF TokenType = iota
	TokenIdent
	TokenNumber
	TokenString

	TokenEq        // =
	TokenComma     // ,
	TokenLParen    // (
	TokenRParen    // )
	TokenStar      // *
	TokenSemicolon // ;
	TokenSymbol    // any other operator character: < > ! ...
)

var tokenNames = map[TokenType]string{
	TokenEOF:       "EOF",
	TokenIdent:     "IDENT",
	TokenNumber:    "NUMBER",
	TokenString:    "STRING",
	TokenEq:        "=",
	TokenComma:     ",",
	TokenLParen:    "(",
	TokenRParen:    ")",
	TokenStar:      "*",
	TokenSemicolon: ";",
	TokenSymbol:    "SYMBOL",
}

func (t TokenType) String() string {
	if name, ok := tokenNames[t]; ok {
		return name
	}
	return fmt.Sprintf("Token(%d)", t)
}

var singleCharTokens = map[byte]TokenType{
	'=': TokenEq,
	',': TokenComma,
	'(': TokenLParen,
	')': TokenRParen,
	'*': TokenStar,
	';': TokenSemicolon,
}

// Token is one lexical token. Text is the exact source slice [Pos, End),
// quotes included for string tokens.
type Token struct {
	Type TokenType
	Text string
	Pos  int
	End  int
}

func (t Token) String() string {
	return fmt.Sprintf("{%s %q}", t.Type, t.Text)
}

// Is reports whether t is an identifier spelling keyword kw, ignoring case.
// Keywords are not reserved: the parser decides by position.
func (t Token) Is(kw string) bool {
	return t.Type == TokenIdent && strings.EqualFold(t.Text, kw)
}

// Lexer tokenizes SQL input.
type Lexer struct {
	input string
	pos   int
}

// NewLexer creates a new lexer for the given input.
func NewLexer(input string) *Lexer {
	return &Lexer{input: input}
}

// Lex tokenizes the whole input. The returned slice always ends with a
// TokenEOF token.
func Lex(input string) ([]Token, error) {
	l := NewLexer(input)
	var toks []Token
	for {
		tok, err := l.NextToken()
		if err != nil {
			return nil, err
		}
		toks = append(toks, tok)
		if tok.Type == TokenEOF {
			return toks, nil
		}
	}
}

func (l *Lexer) peekAt(off int) byte {
	if l.pos+off >= len(l.input) {
		return 0
	}
	return l.input[l.pos+off]
}

func (l *Lexer) skipWhitespace() {
	for l.pos < len(l.input) && isSpace(l.input[l.pos]) {
		l.pos++
	}
}

// NextToken returns the next token from the input.
func (l *Lexer) NextToken() (Token, error) {
	l.skipWhitespace()

	start := l.pos
	if start >= len(l.input) {
		return Token{Type: TokenEOF, Pos: start, End: start}, nil
	}

	ch := l.input[start]
	if tt, ok := singleCharTokens[ch]; ok {
		l.pos++
		return l.emit(tt, start), nil
	}

	switch {
	case ch == '\'' || ch == '"':
		return l.readString(ch)
	case isDigit(ch) || (ch == '.' && isDigit(l.peekAt(1))):
		return l.readNumber(), nil
	case (ch == '-' || ch == '+') && (isDigit(l.peekAt(1)) || (l.peekAt(1) == '.' && isDigit(l.peekAt(2)))):
		l.pos++
		return l.readNumberFrom(start), nil
	case isIdentStart(ch):
		for l.pos < len(l.input) && isIdentPart(l.input[l.pos]) {
			l.pos++
		}
		return l.emit(TokenIdent, start), nil
	default:
		l.pos++
		return l.emit(TokenSymbol, start), nil
	}
}

func (l *Lexer) emit(tt TokenType, start int) Token {
	return Token{Type: tt, Text: l.input[start:l.pos], Pos: start, End: l.pos}
}

// readString consumes a quoted string. There are no escapes: the string ends
// at the next matching quote character.
func (l *Lexer) readString(quote byte) (Token, error) {
	start := l.pos
	l.pos++
	for l.pos < len(l.input) {
		if l.input[l.pos] == quote {
			l.pos++
			return l.emit(TokenString, start), nil
		}
		l.pos++
	}
	return Token{}, fmt.Errorf("unterminated string literal starting at offset %d", start)
}

func (l *Lexer) readNumber() Token {
	return l.readNumberFrom(l.pos)
}

func (l *Lexer) readNumberFrom(start int) Token {
	for l.pos < len(l.input) && isDigit(l.input[l.pos]) {
		l.pos++
	}
	if l.peekAt(0) == '.' {
		l.pos++
		for l.pos < len(l.input) && isDigit(l.input[l.pos]) {
			l.pos++
		}
	}
	if c := l.peekAt(0); c == 'e' || c == 'E' {
		off := 1
		if s := l.peekAt(1); s == '+' || s == '-' {
			off = 2
		}
		if isDigit(l.peekAt(off)) {
			l.pos += off
			for l.pos < len(l.input) && isDigit(l.input[l.pos]) {
				l.pos++
			}
		}
	}
	return l.emit(TokenNumber, start)
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f' || c == '\v'
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isIdentStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c >= 0x80
}

func isIdentPart(c byte) bool {
	return isIdentStart(c) || isDigit(c)
}
