package command

import (
	"context"
	"errors"

	"github.com/alem-hub/university-hub/internal/domain/person"
	"github.com/alem-hub/university-hub/pkg/logger"
)

// LogTAHoursCommand records teaching-assistant hours for a graduate student.
// Nothing is persisted; the handler returns the confirmation line.
type LogTAHoursCommand struct {
	StudentID string
	Hours     float64

	// CorrelationID for tracing.
	CorrelationID string
}

// Validate validates the command.
func (c LogTAHoursCommand) Validate() error {
	if c.StudentID == "" {
		return errors.New("log_ta_hours: student_id is required")
	}
	return nil
}

// LogTAHoursHandler handles LogTAHoursCommand.
type LogTAHoursHandler struct {
	people person.Repository
}

// NewLogTAHoursHandler creates a new LogTAHoursHandler.
func NewLogTAHoursHandler(people person.Repository) *LogTAHoursHandler {
	return &LogTAHoursHandler{people: people}
}

// Handle executes the command.
func (h *LogTAHoursHandler) Handle(ctx context.Context, cmd LogTAHoursCommand) (string, error) {
	if err := cmd.Validate(); err != nil {
		return "", err
	}
	log := logWith(ctx, "log_ta_hours", correlationID(cmd.CorrelationID))

	p, err := h.people.GetByID(ctx, cmd.StudentID)
	if err != nil {
		return "", wrap("log_ta_hours", err)
	}

	line, err := p.LogTAHours(cmd.Hours)
	if err != nil {
		return "", err
	}

	log.Debug("ta hours logged", logger.PersonID(p.ID), logger.Float64("hours", cmd.Hours))
	return line, nil
}
