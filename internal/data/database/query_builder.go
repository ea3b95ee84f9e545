package database

// Package database builds the parameterized list queries the audit log
// runs: SELECT with sanitized identifiers, AND-combined conditions,
// ordering, and offset pagination. Identifiers are quoted through
// pgx.Identifier so caller-supplied column names can never splice SQL.

import (
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
)

// ConditionType is the SQL comparison operator of a Condition.
type ConditionType string

const (
	Equal              ConditionType = "="
	NotEqual           ConditionType = "!="
	GreaterThanOrEqual ConditionType = ">="
	LessThan           ConditionType = "<"
	In                 ConditionType = "IN"

	defaultLimit  = -1
	defaultOffset = -1
)

// Condition is one WHERE predicate. In-conditions carry Values; all
// other operators carry a single Value.
type Condition struct {
	Field  string
	Type   ConditionType
	Value  any
	Values []any
}

// WhereCond builds a single-value comparison condition.
func WhereCond(field string, condType ConditionType, value any) Condition {
	return Condition{Field: field, Type: condType, Value: value}
}

// WhereIn builds an IN condition over the given values. An empty value
// list is rejected at build time rather than producing `IN ()`.
func WhereIn(field string, values ...any) Condition {
	return Condition{Field: field, Type: In, Values: values}
}

// ListQueryOptions collects the parts of a list query.
type ListQueryOptions struct {
	Table      string
	Columns    []string
	Conditions []Condition
	OrderBy    string
	OrderDir   string
	Limit      int
	Offset     int
	CountOnly  bool
}

// ListQueryOption mutates ListQueryOptions.
type ListQueryOption func(*ListQueryOptions)

// NewListQueryOptions creates options for the given table.
func NewListQueryOptions(table string, opts ...ListQueryOption) *ListQueryOptions {
	o := &ListQueryOptions{
		Table:  table,
		Limit:  defaultLimit,
		Offset: defaultOffset,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithColumns selects specific columns instead of *.
func WithColumns(columns ...string) ListQueryOption {
	return func(o *ListQueryOptions) { o.Columns = columns }
}

// WithCondition appends one WHERE condition.
func WithCondition(cond Condition) ListQueryOption {
	return func(o *ListQueryOptions) { o.Conditions = append(o.Conditions, cond) }
}

// WithOrderBy sets the sort column and direction (ASC or DESC).
func WithOrderBy(column, direction string) ListQueryOption {
	return func(o *ListQueryOptions) {
		o.OrderBy = column
		o.OrderDir = direction
	}
}

// WithLimit caps the result set.
func WithLimit(limit int) ListQueryOption {
	return func(o *ListQueryOptions) { o.Limit = limit }
}

// WithOffset skips rows for pagination.
func WithOffset(offset int) ListQueryOption {
	return func(o *ListQueryOptions) { o.Offset = offset }
}

// WithCountOnly turns the query into SELECT COUNT(*), dropping order
// and pagination.
func WithCountOnly() ListQueryOption {
	return func(o *ListQueryOptions) { o.CountOnly = true }
}

// sanitizeIdentifier quotes a single identifier, stripping any
// embedded quotes first.
func sanitizeIdentifier(identifier string) string {
	cleaned := strings.ReplaceAll(identifier, `"`, "")
	return pgx.Identifier{cleaned}.Sanitize()
}

// sanitizeQualifiedIdentifier handles dotted names like
// auth_events.created_at, quoting each part.
func sanitizeQualifiedIdentifier(identifier string) string {
	parts := strings.Split(identifier, ".")
	sanitized := make([]string, len(parts))
	for i, part := range parts {
		sanitized[i] = sanitizeIdentifier(part)
	}
	return strings.Join(sanitized, ".")
}

func buildSelectClause(o *ListQueryOptions) string {
	if o.CountOnly {
		return "SELECT COUNT(*)"
	}
	if len(o.Columns) == 0 {
		return "SELECT *"
	}
	cols := make([]string, len(o.Columns))
	for i, col := range o.Columns {
		cols[i] = sanitizeQualifiedIdentifier(col)
	}
	return "SELECT " + strings.Join(cols, ", ")
}

func buildWhereClause(conditions []Condition, args *[]any) (string, error) {
	if len(conditions) == 0 {
		return "", nil
	}
	clauses := make([]string, 0, len(conditions))
	for _, cond := range conditions {
		field := sanitizeQualifiedIdentifier(cond.Field)
		switch cond.Type {
		case In:
			if len(cond.Values) == 0 {
				return "", fmt.Errorf("in condition on %s has no values", cond.Field)
			}
			placeholders := make([]string, len(cond.Values))
			for i, v := range cond.Values {
				*args = append(*args, v)
				placeholders[i] = fmt.Sprintf("$%d", len(*args))
			}
			clauses = append(clauses, fmt.Sprintf("%s IN (%s)", field, strings.Join(placeholders, ", ")))
		case Equal, NotEqual, GreaterThanOrEqual, LessThan:
			*args = append(*args, cond.Value)
			clauses = append(clauses, fmt.Sprintf("%s %s $%d", field, cond.Type, len(*args)))
		default:
			return "", fmt.Errorf("unsupported condition type %q", cond.Type)
		}
	}
	return " WHERE " + strings.Join(clauses, " AND "), nil
}

func buildPaginationAndOrderClause(o *ListQueryOptions, args *[]any) string {
	if o.CountOnly {
		return ""
	}
	var sb strings.Builder
	if o.OrderBy != "" {
		direction := "ASC"
		if strings.EqualFold(o.OrderDir, "DESC") {
			direction = "DESC"
		}
		sb.WriteString(" ORDER BY ")
		sb.WriteString(sanitizeQualifiedIdentifier(o.OrderBy))
		sb.WriteString(" ")
		sb.WriteString(direction)
	}
	if o.Limit > 0 {
		*args = append(*args, o.Limit)
		fmt.Fprintf(&sb, " LIMIT $%d", len(*args))
	}
	if o.Offset > 0 {
		*args = append(*args, o.Offset)
		fmt.Fprintf(&sb, " OFFSET $%d", len(*args))
	}
	return sb.String()
}

// BuildListQuery assembles the final SQL and its positional arguments.
func BuildListQuery(o *ListQueryOptions) (string, []any, error) {
	args := make([]any, 0, len(o.Conditions)+2)

	query := buildSelectClause(o) + " FROM " + sanitizeQualifiedIdentifier(o.Table)
	where, err := buildWhereClause(o.Conditions, &args)
	if err != nil {
		return "", nil, err
	}
	query += where
	query += buildPaginationAndOrderClause(o, &args)
	return query, args, nil
}
