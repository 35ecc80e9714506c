package postgres

import (
	"context"
	"fmt"

	"github.com/alem-hub/university-hub/internal/domain/grading"
)

// GradeRepository implements grading.Repository on the grades table.
type GradeRepository struct {
	conn *Connection
}

var _ grading.Repository = (*GradeRepository)(nil)

// NewGradeRepository creates a new GradeRepository.
func NewGradeRepository(conn *Connection) *GradeRepository {
	return &GradeRepository{conn: conn}
}

// SaveGrade upserts a grade after checking its range.
func (r *GradeRepository) SaveGrade(ctx context.Context, entry grading.Entry) error {
	if err := grading.ValidateGrade(entry.Grade); err != nil {
		return err
	}

	_, err := r.conn.Exec(ctx, `
		INSERT INTO grades (student_id, grade) VALUES ($1, $2)
		ON CONFLICT (student_id) DO UPDATE SET grade = EXCLUDED.grade, recorded_at = NOW()
	`, entry.StudentID, entry.Grade)
	if err != nil {
		return fmt.Errorf("failed to save grade: %w", err)
	}
	return nil
}

// Load returns every stored grade as a grade book.
func (r *GradeRepository) Load(ctx context.Context) (*grading.GradeBook, error) {
	rows, err := r.conn.Query(ctx, `SELECT student_id, grade FROM grades`)
	if err != nil {
		return nil, fmt.Errorf("failed to load grades: %w", err)
	}
	defer rows.Close()

	entries := make([]grading.Entry, 0)
	for rows.Next() {
		var e grading.Entry
		if err := rows.Scan(&e.StudentID, &e.Grade); err != nil {
			return nil, fmt.Errorf("failed to scan grade: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return grading.FromEntries(entries)
}
