package query

import (
	"context"
	"errors"

	"github.com/alem-hub/university-hub/internal/domain/course"
	"github.com/alem-hub/university-hub/internal/domain/enrollment"
)

// EnrollmentCountQuery asks for the roster length of a course.
type EnrollmentCountQuery struct {
	CourseCode string
}

// EnrollmentCountHandler handles EnrollmentCountQuery over an enrollment
// manager view of the stored rosters.
type EnrollmentCountHandler struct {
	courses course.Repository
}

// NewEnrollmentCountHandler creates a new EnrollmentCountHandler.
func NewEnrollmentCountHandler(courses course.Repository) *EnrollmentCountHandler {
	return &EnrollmentCountHandler{courses: courses}
}

// Handle returns the count, 0 for an unknown course.
func (h *EnrollmentCountHandler) Handle(ctx context.Context, q EnrollmentCountQuery) (int, error) {
	manager := enrollment.NewManager()

	c, err := h.courses.GetByCode(ctx, q.CourseCode)
	switch {
	case err == nil:
		manager.Track(c)
	case errors.Is(err, course.ErrCourseNotFound):
	default:
		return 0, wrap("enrollment_count", err)
	}

	return manager.Count(q.CourseCode), nil
}
