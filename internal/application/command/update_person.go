package command

import (
	"context"
	"errors"

	"github.com/alem-hub/university-hub/internal/domain/course"
	"github.com/alem-hub/university-hub/internal/domain/person"
	"github.com/alem-hub/university-hub/pkg/logger"
)

// ══════════════════════════════════════════════════════════════════════════════
// UPDATE PERSON COMMAND
// Applies validated setter changes. ID and kind never change. Renaming a
// professor drops the cached reports of the courses they teach.
// ══════════════════════════════════════════════════════════════════════════════

// UpdatePersonCommand contains optional field updates.
// nil values mean "don't change".
type UpdatePersonCommand struct {
	PersonID string

	Name    *string
	Age     *int
	Contact *string
	GPA     *float64

	// CorrelationID for tracing.
	CorrelationID string
}

// Validate validates the command.
func (c UpdatePersonCommand) Validate() error {
	if c.PersonID == "" {
		return errors.New("update_person: person_id is required")
	}
	return nil
}

// UpdatePersonResult lists what changed.
type UpdatePersonResult struct {
	PersonID      string
	ChangedFields []string
}

// UpdatePersonHandler handles UpdatePersonCommand.
type UpdatePersonHandler struct {
	people  person.Repository
	courses course.Repository
	reports ReportInvalidator
}

// NewUpdatePersonHandler creates a new UpdatePersonHandler.
func NewUpdatePersonHandler(people person.Repository, courses course.Repository, reports ReportInvalidator) *UpdatePersonHandler {
	return &UpdatePersonHandler{people: people, courses: courses, reports: reports}
}

// Handle executes the command. Nothing is saved if any setter fails.
func (h *UpdatePersonHandler) Handle(ctx context.Context, cmd UpdatePersonCommand) (*UpdatePersonResult, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	log := logWith(ctx, "update_person", correlationID(cmd.CorrelationID))

	p, err := h.people.GetByID(ctx, cmd.PersonID)
	if err != nil {
		return nil, wrap("update_person", err)
	}

	changed := make([]string, 0, 4)
	renamed := false

	if cmd.Name != nil && *cmd.Name != p.Name {
		if err := p.SetName(*cmd.Name); err != nil {
			return nil, err
		}
		changed = append(changed, "name")
		renamed = true
	}
	if cmd.Age != nil && *cmd.Age != p.Age {
		if err := p.SetAge(*cmd.Age); err != nil {
			return nil, err
		}
		changed = append(changed, "age")
	}
	if cmd.Contact != nil && *cmd.Contact != p.Contact {
		if err := p.SetContact(*cmd.Contact); err != nil {
			return nil, err
		}
		changed = append(changed, "contact")
	}
	if cmd.GPA != nil {
		if err := p.SetGPA(*cmd.GPA); err != nil {
			return nil, err
		}
		changed = append(changed, "gpa")
	}

	if len(changed) > 0 {
		if err := h.people.Update(ctx, p); err != nil {
			return nil, wrap("update_person", err)
		}
		log.Debug("person updated", logger.PersonID(p.ID), logger.Any("fields", changed))

		if renamed && p.IsProfessor() {
			h.invalidateTaught(ctx, p.ID)
		}
	}

	return &UpdatePersonResult{PersonID: p.ID, ChangedFields: changed}, nil
}

// invalidateTaught drops the reports that render the instructor's name.
func (h *UpdatePersonHandler) invalidateTaught(ctx context.Context, professorID string) {
	if h.reports == nil || h.courses == nil {
		return
	}
	courses, err := h.courses.List(ctx)
	if err != nil {
		logger.FromContext(ctx).Warn("report cache invalidation skipped",
			logger.PersonID(professorID), logger.Err(err))
		return
	}
	for _, c := range courses {
		if c.InstructorID == professorID {
			invalidateCourse(ctx, h.reports, c.Code)
		}
	}
}
