package dbx

import (
	"fmt"

	"github.com/jmoiron/sqlx"
)

// In expands slice arguments of a query written with '?' placeholders and
// rebinds it to postgres-style $N placeholders.
func In(query string, args ...any) (string, []any, error) {
	q, expanded, err := sqlx.In(query, args...)
	if err != nil {
		return "", nil, fmt.Errorf("expand query: %w", err)
	}
	return sqlx.Rebind(sqlx.DOLLAR, q), expanded, nil
}
