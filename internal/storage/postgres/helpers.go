package postgres

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// scanner is satisfied by both pgx.Row and pgx.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// pgErrorCode returns the SQLSTATE and constraint name of a Postgres error.
func pgErrorCode(err error) (code, constraint string) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code, pgErr.ConstraintName
	}
	return "", ""
}

// escapeLike escapes LIKE wildcards so user input matches literally.
func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}

// queryBuilder accumulates WHERE conditions and their positional args.
type queryBuilder struct {
	conditions []string
	args       []interface{}
}

// arg appends a value and returns its placeholder.
func (b *queryBuilder) arg(v interface{}) string {
	b.args = append(b.args, v)
	return fmt.Sprintf("$%d", len(b.args))
}

func (b *queryBuilder) where(cond string) {
	b.conditions = append(b.conditions, cond)
}

// build constructs the SQL query for a list based on the collected filters.
func (b *queryBuilder) build(baseQuery, orderBy string, limit, offset int) string {
	var sb strings.Builder
	sb.WriteString(baseQuery)

	if len(b.conditions) > 0 {
		sb.WriteString(" WHERE ")
		sb.WriteString(strings.Join(b.conditions, " AND "))
	}

	sb.WriteString(" ORDER BY ")
	sb.WriteString(orderBy)

	if limit > 0 {
		sb.WriteString(" LIMIT " + b.arg(limit))
		sb.WriteString(" OFFSET " + b.arg(offset))
	}

	return sb.String()
}
