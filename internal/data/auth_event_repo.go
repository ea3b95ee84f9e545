package data

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/socialnet-labs/ui-api/internal/data/database"
	"github.com/socialnet-labs/ui-api/internal/data/pgxutil"
	"github.com/socialnet-labs/ui-api/internal/domain/audit"
	apperrors "github.com/socialnet-labs/ui-api/internal/errors"
)

// AuthEventRepo provides database operations for the auth-event audit log.
type AuthEventRepo struct {
	DB           *sql.DB
	timeProvider TimeProvider
}

// NewAuthEventRepo creates a new AuthEventRepo instance with the given database connection.
func NewAuthEventRepo(db *sql.DB) *AuthEventRepo {
	return &AuthEventRepo{
		DB:           db,
		timeProvider: &RealTimeProvider{},
	}
}

// authEventColumns is the column list for auth event SELECT queries;
// it matches the authEventRow db tags.
var authEventColumns = []string{"id", "principal", "intent", "outcome", "error_code", "created_at"}

const (
	defaultRecentLimit = 20
	defaultListLimit   = 50
	maxListLimit       = 200
)

// authEventRow mirrors the auth_events table for pgx row collection.
type authEventRow struct {
	ID        uuid.UUID    `db:"id"`
	Principal string       `db:"principal"`
	Intent    string       `db:"intent"`
	Outcome   string       `db:"outcome"`
	ErrorCode string       `db:"error_code"`
	CreatedAt sql.NullTime `db:"created_at"`
}

func (r authEventRow) toDomain() audit.AuthEvent {
	ev := audit.AuthEvent{
		ID:        r.ID.String(),
		Principal: r.Principal,
		Intent:    r.Intent,
		Outcome:   audit.Outcome(r.Outcome),
		ErrorCode: r.ErrorCode,
	}
	if r.CreatedAt.Valid {
		ev.CreatedAt = r.CreatedAt.Time
	}
	return ev
}

// Record inserts one bootstrap outcome.
func (r *AuthEventRepo) Record(ctx context.Context, event audit.AuthEvent) error {
	if event.Outcome == "" {
		return apperrors.ValidationField("outcome", "outcome is required")
	}

	id := uuid.New()
	if event.ID != "" {
		parsed, err := uuid.Parse(event.ID)
		if err != nil {
			return apperrors.ValidationField("id", "event ID must be a UUID")
		}
		id = parsed
	}

	createdAt := event.CreatedAt
	if createdAt.IsZero() {
		createdAt = r.timeProvider.Now()
	}

	query := `
		INSERT INTO auth_events (id, principal, intent, outcome, error_code, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`

	err := pgxutil.WithPgxConn(ctx, r.DB, func(pgxConn *pgx.Conn) error {
		_, execErr := pgxConn.Exec(ctx, query,
			id, event.Principal, event.Intent, string(event.Outcome), event.ErrorCode, createdAt,
		)
		return execErr
	})
	if err != nil {
		return apperrors.MapDBError(fmt.Errorf("record auth event: %w", err))
	}
	return nil
}

// Recent returns the newest events first, bounded by limit.
func (r *AuthEventRepo) Recent(ctx context.Context, limit int) ([]audit.AuthEvent, error) {
	if limit <= 0 {
		limit = defaultRecentLimit
	}

	opts := database.NewListQueryOptions("auth_events",
		database.WithColumns(authEventColumns...),
		database.WithOrderBy("created_at", "DESC"),
		database.WithLimit(limit),
	)
	events, err := r.queryEvents(ctx, opts)
	if err != nil {
		return nil, apperrors.MapDBError(fmt.Errorf("list auth events: %w", err))
	}
	return events, nil
}

// List returns one page of the audit log narrowed by filter, newest
// first, along with the unpaged total for the same filter.
func (r *AuthEventRepo) List(ctx context.Context, filter audit.Filter) (audit.Page, error) {
	limit := filter.Limit
	switch {
	case limit <= 0:
		limit = defaultListLimit
	case limit > maxListLimit:
		limit = maxListLimit
	}
	offset := filter.Offset
	if offset < 0 {
		offset = 0
	}

	conditions := make([]database.ListQueryOption, 0, 3)
	if filter.Principal != "" {
		conditions = append(conditions,
			database.WithCondition(database.WhereCond("principal", database.Equal, filter.Principal)))
	}
	if len(filter.Outcomes) > 0 {
		values := make([]any, len(filter.Outcomes))
		for i, outcome := range filter.Outcomes {
			values[i] = string(outcome)
		}
		conditions = append(conditions,
			database.WithCondition(database.WhereIn("outcome", values...)))
	}
	if !filter.Since.IsZero() {
		conditions = append(conditions,
			database.WithCondition(database.WhereCond("created_at", database.GreaterThanOrEqual, filter.Since)))
	}

	countOpts := database.NewListQueryOptions("auth_events",
		append(conditions, database.WithCountOnly())...)
	total, err := r.countEvents(ctx, countOpts)
	if err != nil {
		return audit.Page{}, apperrors.MapDBError(fmt.Errorf("count filtered auth events: %w", err))
	}

	pageOpts := database.NewListQueryOptions("auth_events",
		append(conditions,
			database.WithColumns(authEventColumns...),
			database.WithOrderBy("created_at", "DESC"),
			database.WithLimit(limit),
			database.WithOffset(offset),
		)...)
	events, err := r.queryEvents(ctx, pageOpts)
	if err != nil {
		return audit.Page{}, apperrors.MapDBError(fmt.Errorf("list filtered auth events: %w", err))
	}
	return audit.Page{Events: events, Total: total}, nil
}

func (r *AuthEventRepo) queryEvents(ctx context.Context, opts *database.ListQueryOptions) ([]audit.AuthEvent, error) {
	query, args, err := database.BuildListQuery(opts)
	if err != nil {
		return nil, err
	}

	var events []audit.AuthEvent
	err = pgxutil.WithPgxConn(ctx, r.DB, func(pgxConn *pgx.Conn) error {
		rows, queryErr := pgxConn.Query(ctx, query, args...)
		if queryErr != nil {
			return queryErr
		}
		defer rows.Close()

		collected, collectErr := pgx.CollectRows(rows, pgx.RowToStructByName[authEventRow])
		if collectErr != nil {
			return collectErr
		}
		events = make([]audit.AuthEvent, 0, len(collected))
		for _, row := range collected {
			events = append(events, row.toDomain())
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return events, nil
}

func (r *AuthEventRepo) countEvents(ctx context.Context, opts *database.ListQueryOptions) (int64, error) {
	query, args, err := database.BuildListQuery(opts)
	if err != nil {
		return 0, err
	}

	var total int64
	err = pgxutil.WithPgxConn(ctx, r.DB, func(pgxConn *pgx.Conn) error {
		return pgxConn.QueryRow(ctx, query, args...).Scan(&total)
	})
	if err != nil {
		return 0, err
	}
	return total, nil
}

// CountsByOutcome aggregates how often each outcome was recorded.
func (r *AuthEventRepo) CountsByOutcome(ctx context.Context) (map[audit.Outcome]int64, error) {
	query := `
		SELECT outcome, COUNT(*) AS total
		FROM auth_events
		GROUP BY outcome`

	counts := make(map[audit.Outcome]int64)
	err := pgxutil.WithPgxConn(ctx, r.DB, func(pgxConn *pgx.Conn) error {
		rows, queryErr := pgxConn.Query(ctx, query)
		if queryErr != nil {
			return queryErr
		}
		defer rows.Close()

		for rows.Next() {
			var outcome string
			var total int64
			if scanErr := rows.Scan(&outcome, &total); scanErr != nil {
				return scanErr
			}
			counts[audit.Outcome(outcome)] = total
		}
		return rows.Err()
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return counts, nil
		}
		return nil, apperrors.MapDBError(fmt.Errorf("count auth events: %w", err))
	}
	return counts, nil
}
