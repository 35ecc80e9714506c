// Package command contains write operations (CQRS - Commands).
//
// Domain errors are returned unchanged so callers can print their category
// message; infrastructure errors are wrapped with the command name.
package command

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/alem-hub/university-hub/internal/application/query"
	"github.com/alem-hub/university-hub/internal/domain/shared"
	"github.com/alem-hub/university-hub/pkg/logger"
)

// ReportInvalidator drops cached reports after a write.
type ReportInvalidator interface {
	Invalidate(ctx context.Context, keys ...string) error
}

// NewCorrelationID returns a fresh correlation ID.
func NewCorrelationID() string {
	return uuid.NewString()
}

func correlationID(id string) string {
	if id == "" {
		return NewCorrelationID()
	}
	return id
}

// wrap leaves domain errors untouched and prefixes the rest with op.
func wrap(op string, err error) error {
	if err == nil || shared.IsDomain(err) {
		return err
	}
	return fmt.Errorf("%s: %w", op, err)
}

// invalidateCourse drops the cached report of a course. Failures are logged
// and never fail the write.
func invalidateCourse(ctx context.Context, cache ReportInvalidator, code string) {
	if cache == nil {
		return
	}
	if err := cache.Invalidate(ctx, query.CourseReportKey(code)); err != nil {
		logger.FromContext(ctx).Warn("report cache invalidation failed",
			logger.CourseCode(code), logger.Err(err))
	}
}

func logWith(ctx context.Context, op, id string) *logger.Logger {
	return logger.FromContext(ctx).WithCorrelationID(id).With(logger.Operation(op))
}
