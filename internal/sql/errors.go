package sql

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedStatement is returned when the leading keyword is not
	// SELECT, INSERT INTO, UPDATE or DELETE FROM.
	ErrUnsupportedStatement = errors.New("only SELECT, INSERT, UPDATE, and DELETE queries are supported")

	// ErrFormat is the target of every *FormatError.
	ErrFormat = errors.New("invalid query format")
)

// Kind names a statement kind in error messages and explanations.
type Kind string

const (
	KindSelect Kind = "SELECT"
	KindInsert Kind = "INSERT"
	KindUpdate Kind = "UPDATE"
	KindDelete Kind = "DELETE"
)

// FormatError reports statement text that does not have the structure its
// leading keyword requires.
type FormatError struct {
	Kind   Kind
	Detail string
}

func (e *FormatError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("invalid %s query format", e.Kind)
	}
	return fmt.Sprintf("invalid %s query format: %s", e.Kind, e.Detail)
}

func (e *FormatError) Unwrap() error { return ErrFormat }

func formatErrorf(kind Kind, format string, args ...any) error {
	return &FormatError{Kind: kind, Detail: fmt.Sprintf(format, args...)}
}
