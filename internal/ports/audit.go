package ports

import (
	"context"

	"github.com/socialnet-labs/ui-api/internal/domain/audit"
)

// AuthEventRecorder persists bootstrap outcomes for the admin
// dashboard's recent-activity panel and audit-log browser. Recording
// is best-effort: failures are logged by callers and never alter a
// bootstrap decision.
type AuthEventRecorder interface {
	Record(ctx context.Context, event audit.AuthEvent) error
	Recent(ctx context.Context, limit int) ([]audit.AuthEvent, error)
	List(ctx context.Context, filter audit.Filter) (audit.Page, error)
	CountsByOutcome(ctx context.Context) (map[audit.Outcome]int64, error)
}
