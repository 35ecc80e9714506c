package query

import (
	"context"
	"errors"

	"github.com/alem-hub/university-hub/internal/domain/grading"
	"github.com/alem-hub/university-hub/internal/domain/shared"
)

// GradeSummaryQuery asks for the grade book aggregates.
type GradeSummaryQuery struct {
	// PassGrade is the failing threshold; zero means grading.DefaultPassGrade.
	PassGrade float64
}

// Validate validates the query and applies defaults.
func (q *GradeSummaryQuery) Validate() error {
	if q.PassGrade < grading.MinGrade || q.PassGrade > grading.MaxGrade {
		return errors.New("pass grade must be between 0 and 100")
	}
	if q.PassGrade == 0 {
		q.PassGrade = grading.DefaultPassGrade
	}
	return nil
}

// GradeSummaryDTO carries the aggregates of the grade book.
type GradeSummaryDTO struct {
	Count   int     `json:"count"`
	Average float64 `json:"average"`

	// Highest is meaningful only when HasHighest is set.
	Highest    float64 `json:"highest"`
	HasHighest bool    `json:"has_highest"`

	PassGrade float64  `json:"pass_grade"`
	Failing   []string `json:"failing"`
}

// GradeSummaryHandler handles GradeSummaryQuery.
type GradeSummaryHandler struct {
	grades grading.Repository
}

// NewGradeSummaryHandler creates a new GradeSummaryHandler.
func NewGradeSummaryHandler(grades grading.Repository) *GradeSummaryHandler {
	return &GradeSummaryHandler{grades: grades}
}

// Handle executes the query.
func (h *GradeSummaryHandler) Handle(ctx context.Context, q GradeSummaryQuery) (*GradeSummaryDTO, error) {
	if err := q.Validate(); err != nil {
		return nil, shared.WrapError("query", "GradeSummary", shared.ErrValidation, err.Error(), err)
	}

	gb, err := h.grades.Load(ctx)
	if err != nil {
		return nil, wrap("grade_summary", err)
	}

	highest, ok := gb.HighestGrade()
	return &GradeSummaryDTO{
		Count:      gb.Len(),
		Average:    gb.AverageGrade(),
		Highest:    highest,
		HasHighest: ok,
		PassGrade:  q.PassGrade,
		Failing:    gb.FailingStudents(q.PassGrade),
	}, nil
}
