package command

import (
	"context"
	"errors"

	"github.com/alem-hub/university-hub/internal/domain/course"
	"github.com/alem-hub/university-hub/internal/domain/person"
	"github.com/alem-hub/university-hub/internal/domain/shared"
	"github.com/alem-hub/university-hub/pkg/logger"
)

// ══════════════════════════════════════════════════════════════════════════════
// ASSIGN INSTRUCTOR COMMAND
// Replaces the course instructor unconditionally.
// ══════════════════════════════════════════════════════════════════════════════

// AssignInstructorCommand names a course and a professor.
type AssignInstructorCommand struct {
	CourseCode  string
	ProfessorID string

	// CorrelationID for tracing.
	CorrelationID string
}

// Validate validates the command.
func (c AssignInstructorCommand) Validate() error {
	if c.CourseCode == "" {
		return errors.New("assign_instructor: course_code is required")
	}
	if c.ProfessorID == "" {
		return errors.New("assign_instructor: professor_id is required")
	}
	return nil
}

// AssignInstructorResult reports the replaced instructor, if any.
type AssignInstructorResult struct {
	CourseCode         string
	ProfessorID        string
	PreviousInstructor string
}

// AssignInstructorHandler handles AssignInstructorCommand.
type AssignInstructorHandler struct {
	courses course.Repository
	people  person.Repository
	reports ReportInvalidator
}

// NewAssignInstructorHandler creates a new AssignInstructorHandler.
func NewAssignInstructorHandler(courses course.Repository, people person.Repository, reports ReportInvalidator) *AssignInstructorHandler {
	return &AssignInstructorHandler{courses: courses, people: people, reports: reports}
}

// Handle executes the command.
func (h *AssignInstructorHandler) Handle(ctx context.Context, cmd AssignInstructorCommand) (*AssignInstructorResult, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	log := logWith(ctx, "assign_instructor", correlationID(cmd.CorrelationID))

	prof, err := h.people.GetByID(ctx, cmd.ProfessorID)
	if err != nil {
		return nil, wrap("assign_instructor", err)
	}
	if !prof.IsProfessor() {
		return nil, shared.NewDomainError("course", "SetInstructor", shared.ErrWrongVariant,
			"Instructor must be a professor: "+prof.ID)
	}

	c, err := h.courses.GetByCode(ctx, cmd.CourseCode)
	if err != nil {
		return nil, wrap("assign_instructor", err)
	}

	previous := c.InstructorID
	c.SetInstructor(prof.ID)

	if err := h.courses.Update(ctx, c); err != nil {
		return nil, wrap("assign_instructor", err)
	}
	invalidateCourse(ctx, h.reports, c.Code)

	log.Debug("instructor assigned", logger.CourseCode(c.Code), logger.PersonID(prof.ID))
	return &AssignInstructorResult{CourseCode: c.Code, ProfessorID: prof.ID, PreviousInstructor: previous}, nil
}
