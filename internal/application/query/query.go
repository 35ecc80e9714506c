// Package query contains read operations following CQRS pattern.
// Queries never modify state; they only read and return data.
// Each query is a self-contained use case with its own request/response types.
package query

import (
	"context"
	"fmt"

	"github.com/alem-hub/university-hub/internal/domain/shared"
)

// ReportCache stores rendered reports by key. Implementations decode into
// dest and report whether the key was present.
type ReportCache interface {
	Load(ctx context.Context, key string, dest any) (bool, error)
	Store(ctx context.Context, key string, report any) error
	Invalidate(ctx context.Context, keys ...string) error
}

// CourseReportKey is the cache key of a course report.
func CourseReportKey(code string) string {
	return "course:" + code
}

// NoopCache never stores anything.
type NoopCache struct{}

var _ ReportCache = NoopCache{}

// Load always misses.
func (NoopCache) Load(context.Context, string, any) (bool, error) { return false, nil }

// Store discards the report.
func (NoopCache) Store(context.Context, string, any) error { return nil }

// Invalidate does nothing.
func (NoopCache) Invalidate(context.Context, ...string) error { return nil }

func wrap(op string, err error) error {
	if err == nil || shared.IsDomain(err) {
		return err
	}
	return fmt.Errorf("%s: %w", op, err)
}
