package command

import (
	"context"
	"errors"

	"github.com/alem-hub/university-hub/internal/domain/course"
	"github.com/alem-hub/university-hub/pkg/logger"
)

// ScheduleCourseCommand places a course in a time slot and room. Scheduling
// a course again overwrites its slot.
type ScheduleCourseCommand struct {
	CourseCode string
	Time       string
	Room       string

	// Seats is the room size; zero skips the seating check.
	Seats int

	// CorrelationID for tracing.
	CorrelationID string
}

// Validate validates the command.
func (c ScheduleCourseCommand) Validate() error {
	if c.CourseCode == "" {
		return errors.New("schedule_course: course_code is required")
	}
	if c.Time == "" || c.Room == "" {
		return errors.New("schedule_course: time and room are required")
	}
	if c.Seats < 0 {
		return errors.New("schedule_course: seats cannot be negative")
	}
	return nil
}

// ScheduleCourseHandler handles ScheduleCourseCommand.
type ScheduleCourseHandler struct {
	courses  course.Repository
	schedule course.ScheduleRepository
	reports  ReportInvalidator
}

// NewScheduleCourseHandler creates a new ScheduleCourseHandler.
func NewScheduleCourseHandler(courses course.Repository, schedule course.ScheduleRepository, reports ReportInvalidator) *ScheduleCourseHandler {
	return &ScheduleCourseHandler{courses: courses, schedule: schedule, reports: reports}
}

// Handle executes the command and returns the stored slot.
func (h *ScheduleCourseHandler) Handle(ctx context.Context, cmd ScheduleCourseCommand) (*course.Slot, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	log := logWith(ctx, "schedule_course", correlationID(cmd.CorrelationID))

	c, err := h.courses.GetByCode(ctx, cmd.CourseCode)
	if err != nil {
		return nil, wrap("schedule_course", err)
	}

	if cmd.Seats > 0 {
		room, err := course.NewClassroom(cmd.Room, cmd.Seats)
		if err != nil {
			return nil, err
		}
		if err := room.Seat(c); err != nil {
			return nil, err
		}
	}

	slot := course.Slot{CourseCode: cmd.CourseCode, Time: cmd.Time, Room: cmd.Room}
	if err := h.schedule.SaveSlot(ctx, slot); err != nil {
		return nil, wrap("schedule_course", err)
	}
	invalidateCourse(ctx, h.reports, slot.CourseCode)

	log.Debug("course scheduled", logger.CourseCode(slot.CourseCode), logger.String("slot", slot.String()))
	return &slot, nil
}
