// Package postgres implements the repositories on PostgreSQL through pgxpool.
package postgres

import (
	"fmt"
	"strings"
	"time"
	"wellness-service/internal/domain/repository"
)

// where builds the WHERE clause shared by per-user listings.
// timeColumn is bounded by From and To; activeColumn may be empty.
func where(filter repository.Filter, timeColumn, activeColumn string) (string, []any) {
	clauses := []string{"user_id = $1"}
	args := []any{filter.UserID}

	if filter.From != nil {
		args = append(args, filter.From.UTC())
		clauses = append(clauses, fmt.Sprintf("%s >= $%d", timeColumn, len(args)))
	}
	if filter.To != nil {
		args = append(args, filter.To.UTC())
		clauses = append(clauses, fmt.Sprintf("%s <= $%d", timeColumn, len(args)))
	}
	if filter.ActiveOnly && activeColumn != "" {
		clauses = append(clauses, activeColumn+" = TRUE")
	}

	return " WHERE " + strings.Join(clauses, " AND "), args
}

// utc normalizes a timestamp read back from TIMESTAMPTZ
func utc(t *time.Time) {
	*t = t.UTC()
}
