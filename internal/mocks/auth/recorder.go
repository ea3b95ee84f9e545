package auth

import (
	"context"
	"sync"

	"github.com/socialnet-labs/ui-api/internal/domain/audit"
	"github.com/socialnet-labs/ui-api/internal/ports"
)

var _ ports.AuthEventRecorder = (*RecorderSpy)(nil)

// RecorderSpy captures recorded auth events in memory so tests can
// assert on bootstrap outcomes.
type RecorderSpy struct {
	mu     sync.Mutex
	events []audit.AuthEvent

	// RecordErr, when set, is returned by Record.
	RecordErr error
}

func (r *RecorderSpy) Record(_ context.Context, event audit.AuthEvent) error {
	if r.RecordErr != nil {
		return r.RecordErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
	return nil
}

func (r *RecorderSpy) Recent(_ context.Context, limit int) ([]audit.AuthEvent, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]audit.AuthEvent, 0, limit)
	for i := len(r.events) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, r.events[i])
	}
	return out, nil
}

func (r *RecorderSpy) List(_ context.Context, filter audit.Filter) (audit.Page, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	matched := make([]audit.AuthEvent, 0, len(r.events))
	for i := len(r.events) - 1; i >= 0; i-- {
		ev := r.events[i]
		if filter.Principal != "" && ev.Principal != filter.Principal {
			continue
		}
		if len(filter.Outcomes) > 0 && !containsOutcome(filter.Outcomes, ev.Outcome) {
			continue
		}
		if !filter.Since.IsZero() && ev.CreatedAt.Before(filter.Since) {
			continue
		}
		matched = append(matched, ev)
	}

	page := audit.Page{Total: int64(len(matched))}
	start := filter.Offset
	if start < 0 {
		start = 0
	}
	if start >= len(matched) {
		return page, nil
	}
	end := len(matched)
	if filter.Limit > 0 && start+filter.Limit < end {
		end = start + filter.Limit
	}
	page.Events = matched[start:end]
	return page, nil
}

func containsOutcome(outcomes []audit.Outcome, outcome audit.Outcome) bool {
	for _, o := range outcomes {
		if o == outcome {
			return true
		}
	}
	return false
}

func (r *RecorderSpy) CountsByOutcome(_ context.Context) (map[audit.Outcome]int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	counts := make(map[audit.Outcome]int64)
	for _, ev := range r.events {
		counts[ev.Outcome]++
	}
	return counts, nil
}

// Events returns a copy of all recorded events in order.
func (r *RecorderSpy) Events() []audit.AuthEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]audit.AuthEvent, len(r.events))
	copy(out, r.events)
	return out
}

// Outcomes returns the recorded outcomes in order.
func (r *RecorderSpy) Outcomes() []audit.Outcome {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]audit.Outcome, 0, len(r.events))
	for _, ev := range r.events {
		out = append(out, ev.Outcome)
	}
	return out
}
