// Package sqlite keeps the grade ledger in a local SQLite file.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/alem-hub/university-hub/internal/domain/grading"
)

const schema = `
CREATE TABLE IF NOT EXISTS grades (
    student_id TEXT PRIMARY KEY,
    grade REAL NOT NULL CHECK (grade >= 0 AND grade <= 100),
    recorded_at TEXT NOT NULL DEFAULT (datetime('now'))
);
`

// GradeLedger implements grading.Repository on a SQLite database.
type GradeLedger struct {
	db *sql.DB
}

var _ grading.Repository = (*GradeLedger)(nil)

// Open opens or creates the ledger at path and ensures the schema.
func Open(ctx context.Context, path string) (*GradeLedger, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("sqlite: open %s: %w", path, err)
	}
	// One writer; SQLite serialises anyway.
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("sqlite: create schema: %w", err)
	}
	return &GradeLedger{db: db}, nil
}

// Close closes the database.
func (l *GradeLedger) Close() error {
	return l.db.Close()
}

// SaveGrade upserts a grade after checking its range.
func (l *GradeLedger) SaveGrade(ctx context.Context, entry grading.Entry) error {
	if err := grading.ValidateGrade(entry.Grade); err != nil {
		return err
	}

	_, err := l.db.ExecContext(ctx, `
		INSERT INTO grades (student_id, grade) VALUES (?, ?)
		ON CONFLICT (student_id) DO UPDATE SET grade = excluded.grade, recorded_at = datetime('now')
	`, entry.StudentID, entry.Grade)
	if err != nil {
		return fmt.Errorf("sqlite: save grade: %w", err)
	}
	return nil
}

// Load returns every stored grade as a grade book.
func (l *GradeLedger) Load(ctx context.Context) (*grading.GradeBook, error) {
	rows, err := l.db.QueryContext(ctx, `SELECT student_id, grade FROM grades`)
	if err != nil {
		return nil, fmt.Errorf("sqlite: load grades: %w", err)
	}
	defer rows.Close()

	entries := make([]grading.Entry, 0)
	for rows.Next() {
		var e grading.Entry
		if err := rows.Scan(&e.StudentID, &e.Grade); err != nil {
			return nil, fmt.Errorf("sqlite: scan grade: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return grading.FromEntries(entries)
}
