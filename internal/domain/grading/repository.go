package grading

import "context"

// Repository is the grade ledger. Saving a grade for a student that already
// has one replaces it.
type Repository interface {
	// SaveGrade upserts a single grade.
	SaveGrade(ctx context.Context, entry Entry) error

	// Load returns the current grade book.
	Load(ctx context.Context) (*GradeBook, error)
}
