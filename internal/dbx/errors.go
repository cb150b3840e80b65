package dbx

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

const (
	uniqueViolationCode       = "23505"
	invalidTextRepresentation = "22P02"
)

// IsUniqueViolation reports whether err comes from postgres rejecting a
// duplicate key.
func IsUniqueViolation(err error) bool {
	return hasCode(err, uniqueViolationCode)
}

// IsInvalidText reports whether postgres could not parse a parameter as its
// column type, e.g. a malformed uuid.
func IsInvalidText(err error) bool {
	return hasCode(err, invalidTextRepresentation)
}

func hasCode(err error, code string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == code
}
