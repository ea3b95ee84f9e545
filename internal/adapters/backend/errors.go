package backend

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"

	apperrors "github.com/socialnet-labs/ui-api/internal/errors"
)

// mapTransportError classifies request-level failures.
func mapTransportError(method string, err error) error {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return apperrors.Wrap(err, apperrors.ErrCodeTimeout, fmt.Sprintf("backend call %s timed out", method))
	case errors.Is(err, context.Canceled):
		return apperrors.Wrap(err, apperrors.ErrCodeCanceled, fmt.Sprintf("backend call %s canceled", method))
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return apperrors.Wrap(err, apperrors.ErrCodeTimeout, fmt.Sprintf("backend call %s timed out", method))
	}
	return apperrors.Wrap(err, apperrors.ErrCodeUnavailable, fmt.Sprintf("backend call %s failed", method))
}

// mapStatusError classifies non-200 gateway responses.
func mapStatusError(method string, status int) error {
	msg := fmt.Sprintf("backend call %s returned status %d", method, status)
	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return apperrors.Forbidden(msg)
	case status == http.StatusNotFound:
		return apperrors.NotFound(msg)
	case status == http.StatusTooManyRequests || status >= http.StatusInternalServerError:
		return apperrors.Unavailable(msg)
	default:
		return apperrors.Internal(msg)
	}
}

// mapBackendReject classifies an application-level rejection string
// from the backend into an AppError.
func mapBackendReject(method, reject string) error {
	msg := fmt.Sprintf("backend %s: %s", method, reject)
	lower := strings.ToLower(reject)
	switch {
	case strings.Contains(lower, "not found"):
		return apperrors.NotFound(msg)
	case strings.Contains(lower, "already exists"):
		return apperrors.Conflict(msg)
	case strings.Contains(lower, "unauthorized") || strings.Contains(lower, "only admins"):
		return apperrors.Forbidden(msg)
	case strings.Contains(lower, "anonymous"):
		return apperrors.Unauthenticated(msg)
	default:
		return apperrors.Internal(msg)
	}
}
