package engine

import (
	"errors"

	"sqlplayground/internal/sql"
)

// UnsupportedMessage is the error text returned for statements that are not
// SELECT, INSERT, UPDATE or DELETE.
const UnsupportedMessage = "Only SELECT, INSERT, UPDATE, and DELETE queries are supported in this demo"

var (
	// ErrValueCountMismatch is returned by INSERT when the number of values
	// differs from the number of columns of the table.
	ErrValueCountMismatch = errors.New("value count mismatch")

	// ErrUnknownColumn is returned by UPDATE when SET names a column the
	// table does not declare.
	ErrUnknownColumn = errors.New("unknown column")
)

func errorMessage(err error) string {
	if errors.Is(err, sql.ErrUnsupportedStatement) {
		return UnsupportedMessage
	}
	return err.Error()
}
