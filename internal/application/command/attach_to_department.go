package command

import (
	"context"
	"errors"

	"github.com/alem-hub/university-hub/internal/domain/course"
	"github.com/alem-hub/university-hub/internal/domain/department"
	"github.com/alem-hub/university-hub/internal/domain/person"
	"github.com/alem-hub/university-hub/internal/domain/shared"
	"github.com/alem-hub/university-hub/pkg/logger"
)

// ══════════════════════════════════════════════════════════════════════════════
// ATTACH TO DEPARTMENT COMMAND
// Links existing professors and courses to a department by handle.
// ══════════════════════════════════════════════════════════════════════════════

// AttachToDepartmentCommand lists the handles to append.
type AttachToDepartmentCommand struct {
	Department   string
	ProfessorIDs []string
	CourseCodes  []string

	// CorrelationID for tracing.
	CorrelationID string
}

// Validate validates the command.
func (c AttachToDepartmentCommand) Validate() error {
	if c.Department == "" {
		return errors.New("attach_to_department: department is required")
	}
	if len(c.ProfessorIDs) == 0 && len(c.CourseCodes) == 0 {
		return errors.New("attach_to_department: nothing to attach")
	}
	return nil
}

// AttachToDepartmentResult reports the department link counts.
type AttachToDepartmentResult struct {
	Department string
	Professors int
	Courses    int
}

// AttachToDepartmentHandler handles AttachToDepartmentCommand.
type AttachToDepartmentHandler struct {
	departments department.Repository
	people      person.Repository
	courses     course.Repository
}

// NewAttachToDepartmentHandler creates a new AttachToDepartmentHandler.
func NewAttachToDepartmentHandler(departments department.Repository, people person.Repository, courses course.Repository) *AttachToDepartmentHandler {
	return &AttachToDepartmentHandler{departments: departments, people: people, courses: courses}
}

// Handle executes the command. Every handle is checked before anything is
// appended.
func (h *AttachToDepartmentHandler) Handle(ctx context.Context, cmd AttachToDepartmentCommand) (*AttachToDepartmentResult, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	log := logWith(ctx, "attach_to_department", correlationID(cmd.CorrelationID))

	d, err := h.departments.GetByName(ctx, cmd.Department)
	if err != nil {
		return nil, wrap("attach_to_department", err)
	}

	for _, id := range cmd.ProfessorIDs {
		p, err := h.people.GetByID(ctx, id)
		if err != nil {
			return nil, wrap("attach_to_department", err)
		}
		if !p.IsProfessor() {
			return nil, shared.NewDomainError("department", "AddProfessor", shared.ErrWrongVariant,
				"Not a professor: "+p.ID)
		}
	}
	for _, code := range cmd.CourseCodes {
		if _, err := h.courses.GetByCode(ctx, code); err != nil {
			return nil, wrap("attach_to_department", err)
		}
	}

	for _, id := range cmd.ProfessorIDs {
		d.AddProfessor(id)
	}
	for _, code := range cmd.CourseCodes {
		d.AddCourse(code)
	}

	if err := h.departments.Update(ctx, d); err != nil {
		return nil, wrap("attach_to_department", err)
	}

	log.Debug("department links updated", logger.Department(d.Name),
		logger.Int("professors", len(cmd.ProfessorIDs)), logger.Int("courses", len(cmd.CourseCodes)))
	return &AttachToDepartmentResult{
		Department: d.Name,
		Professors: len(d.ProfessorIDs()),
		Courses:    len(d.CourseCodes()),
	}, nil
}
