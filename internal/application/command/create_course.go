package command

import (
	"context"

	"github.com/alem-hub/university-hub/internal/domain/course"
	"github.com/alem-hub/university-hub/pkg/logger"
)

// ══════════════════════════════════════════════════════════════════════════════
// CREATE COURSE COMMAND
// ══════════════════════════════════════════════════════════════════════════════

// CreateCourseCommand contains the data for a new course.
type CreateCourseCommand struct {
	Code        string
	Title       string
	Credits     int
	Description string

	// Capacity falls back to the handler default when zero.
	Capacity int

	// CorrelationID for tracing.
	CorrelationID string
}

// CreateCourseResult is returned on success.
type CreateCourseResult struct {
	Code     string
	Capacity int
}

// CreateCourseHandler handles CreateCourseCommand.
type CreateCourseHandler struct {
	courses         course.Repository
	defaultCapacity int
}

// NewCreateCourseHandler creates a new CreateCourseHandler.
func NewCreateCourseHandler(courses course.Repository, defaultCapacity int) *CreateCourseHandler {
	if defaultCapacity <= 0 {
		defaultCapacity = course.DefaultCapacity
	}
	return &CreateCourseHandler{courses: courses, defaultCapacity: defaultCapacity}
}

// Handle executes the command.
func (h *CreateCourseHandler) Handle(ctx context.Context, cmd CreateCourseCommand) (*CreateCourseResult, error) {
	log := logWith(ctx, "create_course", correlationID(cmd.CorrelationID))

	capacity := cmd.Capacity
	if capacity <= 0 {
		capacity = h.defaultCapacity
	}

	c, err := course.NewCourse(course.NewCourseParams{
		Code:        cmd.Code,
		Title:       cmd.Title,
		Credits:     cmd.Credits,
		Description: cmd.Description,
		Capacity:    capacity,
	})
	if err != nil {
		return nil, err
	}

	if err := h.courses.Create(ctx, c); err != nil {
		return nil, wrap("create_course", err)
	}

	log.Debug("course created", logger.CourseCode(c.Code), logger.Int("capacity", c.Capacity()))
	return &CreateCourseResult{Code: c.Code, Capacity: c.Capacity()}, nil
}
