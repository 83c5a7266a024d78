package sqlite

import (
	"database/sql"
	"fmt"
	"strings"
	"time"
)

// hierarchySeparator joins hierarchy path segments in the hierarchy column.
const hierarchySeparator = " > "

// joinHierarchy renders a hierarchy path for storage. Returns an invalid
// NullString for empty paths so the column stays NULL.
func joinHierarchy(hierarchy []string) sql.NullString {
	if len(hierarchy) == 0 {
		return sql.NullString{}
	}
	return sql.NullString{String: strings.Join(hierarchy, hierarchySeparator), Valid: true}
}

// splitHierarchy parses a stored hierarchy column back into a path.
func splitHierarchy(col sql.NullString) []string {
	if !col.Valid || col.String == "" {
		return nil
	}
	return strings.Split(col.String, hierarchySeparator)
}

// nullString wraps a string for a nullable column, storing "" as NULL.
func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

// parseRFC3339 parses an RFC3339 formatted timestamp string.
// Returns an error if parsing fails with a descriptive message including the field name.
func parseRFC3339(value, fieldName string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse %s: %w", fieldName, err)
	}
	return t, nil
}

// appendPagination appends LIMIT and OFFSET clauses to a query builder if values are > 0.
func appendPagination(query *strings.Builder, args *[]any, limit, offset int) {
	if limit > 0 {
		query.WriteString(" LIMIT ?")
		*args = append(*args, limit)
	}
	if offset > 0 {
		query.WriteString(" OFFSET ?")
		*args = append(*args, offset)
	}
}
