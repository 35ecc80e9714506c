package command

import (
	"context"
	"errors"

	"github.com/alem-hub/university-hub/internal/domain/course"
	"github.com/alem-hub/university-hub/pkg/logger"
)

// ══════════════════════════════════════════════════════════════════════════════
// UPDATE COURSE COMMAND
// Edits the catalogue fields of a course. Code, roster and instructor are
// changed by their own commands.
// ══════════════════════════════════════════════════════════════════════════════

// UpdateCourseCommand contains optional field updates.
// nil values mean "don't change".
type UpdateCourseCommand struct {
	CourseCode string

	Title       *string
	Credits     *int
	Description *string

	// CorrelationID for tracing.
	CorrelationID string
}

// Validate validates the command.
func (c UpdateCourseCommand) Validate() error {
	if c.CourseCode == "" {
		return errors.New("update_course: course_code is required")
	}
	return nil
}

// UpdateCourseResult lists what changed.
type UpdateCourseResult struct {
	CourseCode    string
	ChangedFields []string
}

// UpdateCourseHandler handles UpdateCourseCommand.
type UpdateCourseHandler struct {
	courses course.Repository
	reports ReportInvalidator
}

// NewUpdateCourseHandler creates a new UpdateCourseHandler.
func NewUpdateCourseHandler(courses course.Repository, reports ReportInvalidator) *UpdateCourseHandler {
	return &UpdateCourseHandler{courses: courses, reports: reports}
}

// Handle executes the command. Nothing is saved if the credit count is
// rejected.
func (h *UpdateCourseHandler) Handle(ctx context.Context, cmd UpdateCourseCommand) (*UpdateCourseResult, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	log := logWith(ctx, "update_course", correlationID(cmd.CorrelationID))

	c, err := h.courses.GetByCode(ctx, cmd.CourseCode)
	if err != nil {
		return nil, wrap("update_course", err)
	}

	changed := make([]string, 0, 3)
	if cmd.Credits != nil && *cmd.Credits != c.Credits {
		if err := c.SetCredits(*cmd.Credits); err != nil {
			return nil, err
		}
		changed = append(changed, "credits")
	}
	if cmd.Title != nil && *cmd.Title != c.Title {
		c.Title = *cmd.Title
		changed = append(changed, "title")
	}
	if cmd.Description != nil && *cmd.Description != c.Description {
		c.Description = *cmd.Description
		changed = append(changed, "description")
	}

	if len(changed) > 0 {
		if err := h.courses.Update(ctx, c); err != nil {
			return nil, wrap("update_course", err)
		}
		invalidateCourse(ctx, h.reports, c.Code)
		log.Debug("course updated", logger.CourseCode(c.Code), logger.Any("fields", changed))
	}

	return &UpdateCourseResult{CourseCode: c.Code, ChangedFields: changed}, nil
}
