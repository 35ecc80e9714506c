package command

import (
	"context"
	"errors"

	"github.com/alem-hub/university-hub/internal/domain/course"
	"github.com/alem-hub/university-hub/internal/domain/enrollment"
	"github.com/alem-hub/university-hub/internal/domain/person"
	"github.com/alem-hub/university-hub/internal/domain/shared"
	"github.com/alem-hub/university-hub/pkg/logger"
)

// ══════════════════════════════════════════════════════════════════════════════
// ENROLL STUDENT COMMAND
// Appends a student to a course roster through the enrollment manager, which
// operates on the course's own roster.
// ══════════════════════════════════════════════════════════════════════════════

// EnrollStudentCommand names a course and a student.
type EnrollStudentCommand struct {
	CourseCode string
	StudentID  string

	// CorrelationID for tracing.
	CorrelationID string
}

// Validate validates the command.
func (c EnrollStudentCommand) Validate() error {
	if c.CourseCode == "" {
		return errors.New("enroll_student: course_code is required")
	}
	if c.StudentID == "" {
		return errors.New("enroll_student: student_id is required")
	}
	return nil
}

// EnrollStudentResult is returned on success.
type EnrollStudentResult struct {
	CourseCode string
	StudentID  string
	Enrolled   int
	Capacity   int
}

// EnrollStudentHandler handles EnrollStudentCommand.
type EnrollStudentHandler struct {
	courses course.Repository
	people  person.Repository
	reports ReportInvalidator
}

// NewEnrollStudentHandler creates a new EnrollStudentHandler.
func NewEnrollStudentHandler(courses course.Repository, people person.Repository, reports ReportInvalidator) *EnrollStudentHandler {
	return &EnrollStudentHandler{courses: courses, people: people, reports: reports}
}

// Handle executes the command. A full course yields an enrollment error and
// leaves the stored roster unchanged.
func (h *EnrollStudentHandler) Handle(ctx context.Context, cmd EnrollStudentCommand) (*EnrollStudentResult, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	log := logWith(ctx, "enroll_student", correlationID(cmd.CorrelationID))

	student, err := h.people.GetByID(ctx, cmd.StudentID)
	if err != nil {
		return nil, wrap("enroll_student", err)
	}
	if !student.IsStudent() {
		return nil, shared.NewEnrollmentError("enrollment", "Enroll", shared.ErrWrongVariant,
			"Only students can enroll: "+student.ID)
	}

	c, err := h.courses.GetByCode(ctx, cmd.CourseCode)
	if err != nil {
		return nil, wrap("enroll_student", err)
	}

	manager := enrollment.NewManager()
	manager.Track(c)
	if err := manager.Enroll(c.Code, student.ID); err != nil {
		log.Debug("enrollment rejected", logger.CourseCode(c.Code), logger.PersonID(student.ID), logger.Err(err))
		return nil, err
	}

	if err := h.courses.Update(ctx, c); err != nil {
		return nil, wrap("enroll_student", err)
	}
	invalidateCourse(ctx, h.reports, c.Code)

	log.Debug("student enrolled", logger.CourseCode(c.Code), logger.PersonID(student.ID),
		logger.Int("enrolled", c.EnrollmentCount()))
	return &EnrollStudentResult{
		CourseCode: c.Code,
		StudentID:  student.ID,
		Enrolled:   c.EnrollmentCount(),
		Capacity:   c.Capacity(),
	}, nil
}
