package command

import (
	"context"
	"errors"

	"github.com/alem-hub/university-hub/internal/domain/course"
	"github.com/alem-hub/university-hub/internal/domain/enrollment"
	"github.com/alem-hub/university-hub/pkg/logger"
)

// ══════════════════════════════════════════════════════════════════════════════
// DROP STUDENT COMMAND
// Removes every occurrence of a student from a roster. Unknown courses are a
// no-op.
// ══════════════════════════════════════════════════════════════════════════════

// DropStudentCommand names a course and a student.
type DropStudentCommand struct {
	CourseCode string
	StudentID  string

	// CorrelationID for tracing.
	CorrelationID string
}

// Validate validates the command.
func (c DropStudentCommand) Validate() error {
	if c.CourseCode == "" {
		return errors.New("drop_student: course_code is required")
	}
	if c.StudentID == "" {
		return errors.New("drop_student: student_id is required")
	}
	return nil
}

// DropStudentResult reports how many roster entries were removed.
type DropStudentResult struct {
	CourseCode string
	Removed    int
	Remaining  int
}

// DropStudentHandler handles DropStudentCommand.
type DropStudentHandler struct {
	courses course.Repository
	reports ReportInvalidator
}

// NewDropStudentHandler creates a new DropStudentHandler.
func NewDropStudentHandler(courses course.Repository, reports ReportInvalidator) *DropStudentHandler {
	return &DropStudentHandler{courses: courses, reports: reports}
}

// Handle executes the command.
func (h *DropStudentHandler) Handle(ctx context.Context, cmd DropStudentCommand) (*DropStudentResult, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	log := logWith(ctx, "drop_student", correlationID(cmd.CorrelationID))

	c, err := h.courses.GetByCode(ctx, cmd.CourseCode)
	if err != nil {
		if errors.Is(err, course.ErrCourseNotFound) {
			return &DropStudentResult{CourseCode: cmd.CourseCode}, nil
		}
		return nil, wrap("drop_student", err)
	}

	manager := enrollment.NewManager()
	manager.Track(c)
	removed := manager.Drop(c.Code, cmd.StudentID)

	if removed > 0 {
		if err := h.courses.Update(ctx, c); err != nil {
			return nil, wrap("drop_student", err)
		}
		invalidateCourse(ctx, h.reports, c.Code)
	}

	log.Debug("student dropped", logger.CourseCode(c.Code), logger.PersonID(cmd.StudentID),
		logger.Int("removed", removed))
	return &DropStudentResult{CourseCode: c.Code, Removed: removed, Remaining: manager.Count(c.Code)}, nil
}
