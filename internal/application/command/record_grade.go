package command

import (
	"context"
	"errors"

	"github.com/alem-hub/university-hub/internal/domain/grading"
	"github.com/alem-hub/university-hub/pkg/logger"
)

// ══════════════════════════════════════════════════════════════════════════════
// RECORD GRADE COMMAND
// Inserts or overwrites the grade of a student.
// ══════════════════════════════════════════════════════════════════════════════

// RecordGradeCommand contains a grade entry.
type RecordGradeCommand struct {
	StudentID string
	Grade     float64

	// CorrelationID for tracing.
	CorrelationID string
}

// Validate validates the command shape. The range check belongs to the
// grade book and yields a grade error.
func (c RecordGradeCommand) Validate() error {
	if c.StudentID == "" {
		return errors.New("record_grade: student_id is required")
	}
	return nil
}

// RecordGradeResult is returned on success.
type RecordGradeResult struct {
	StudentID string
	Grade     float64
}

// RecordGradeHandler handles RecordGradeCommand.
type RecordGradeHandler struct {
	grades grading.Repository
}

// NewRecordGradeHandler creates a new RecordGradeHandler.
func NewRecordGradeHandler(grades grading.Repository) *RecordGradeHandler {
	return &RecordGradeHandler{grades: grades}
}

// Handle executes the command.
func (h *RecordGradeHandler) Handle(ctx context.Context, cmd RecordGradeCommand) (*RecordGradeResult, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	log := logWith(ctx, "record_grade", correlationID(cmd.CorrelationID))

	if err := grading.ValidateGrade(cmd.Grade); err != nil {
		return nil, err
	}

	entry := grading.Entry{StudentID: cmd.StudentID, Grade: cmd.Grade}
	if err := h.grades.SaveGrade(ctx, entry); err != nil {
		return nil, wrap("record_grade", err)
	}

	log.Debug("grade recorded", logger.PersonID(entry.StudentID), logger.Grade(entry.Grade))
	return &RecordGradeResult{StudentID: entry.StudentID, Grade: entry.Grade}, nil
}
