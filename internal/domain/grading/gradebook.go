// Package grading records one numeric grade per student and answers the
// aggregate questions asked of it: average, maximum and failing students.
package grading

import (
	"fmt"
	"sort"

	"github.com/alem-hub/university-hub/internal/domain/shared"
)

const domainName = "grading"

const (
	// MinGrade and MaxGrade bound an accepted grade, both inclusive.
	MinGrade = 0.0
	MaxGrade = 100.0

	// DefaultPassGrade is the threshold below which a student is failing.
	DefaultPassGrade = 50.0
)

// Entry is a single student grade.
type Entry struct {
	StudentID string  `json:"student_id" yaml:"student_id"`
	Grade     float64 `json:"grade" yaml:"grade"`
}

// GradeBook maps a student ID to its latest grade.
type GradeBook struct {
	grades map[string]float64
}

// NewGradeBook creates an empty grade book.
func NewGradeBook() *GradeBook {
	return &GradeBook{grades: make(map[string]float64)}
}

// FromEntries rebuilds a grade book. Later entries overwrite earlier ones.
func FromEntries(entries []Entry) (*GradeBook, error) {
	gb := NewGradeBook()
	for _, e := range entries {
		if err := gb.AddGrade(e.StudentID, e.Grade); err != nil {
			return nil, err
		}
	}
	return gb, nil
}

// ValidateGrade checks that grade lies within [MinGrade, MaxGrade].
func ValidateGrade(grade float64) error {
	if grade < MinGrade || grade > MaxGrade {
		return shared.NewGradeError(domainName, "AddGrade", shared.ErrValueOutOfRange,
			fmt.Sprintf("Invalid grade entry: %f", grade))
	}
	return nil
}

// AddGrade inserts or overwrites the grade of studentID.
func (gb *GradeBook) AddGrade(studentID string, grade float64) error {
	if err := ValidateGrade(grade); err != nil {
		return err
	}
	gb.grades[studentID] = grade
	return nil
}

// Grade returns the grade of studentID.
func (gb *GradeBook) Grade(studentID string) (float64, bool) {
	g, ok := gb.grades[studentID]
	return g, ok
}

// Len returns the number of graded students.
func (gb *GradeBook) Len() int {
	return len(gb.grades)
}

// AverageGrade returns the arithmetic mean, or 0 for an empty book.
func (gb *GradeBook) AverageGrade() float64 {
	if len(gb.grades) == 0 {
		return 0
	}
	var sum float64
	for _, g := range gb.grades {
		sum += g
	}
	return sum / float64(len(gb.grades))
}

// HighestGrade returns the maximum grade. ok is false for an empty book.
func (gb *GradeBook) HighestGrade() (highest float64, ok bool) {
	for _, g := range gb.grades {
		if !ok || g > highest {
			highest, ok = g, true
		}
	}
	return highest, ok
}

// FailingStudents returns the IDs graded strictly below passGrade, ordered
// by student ID.
func (gb *GradeBook) FailingStudents(passGrade float64) []string {
	failing := make([]string, 0)
	for _, id := range gb.studentIDs() {
		if gb.grades[id] < passGrade {
			failing = append(failing, id)
		}
	}
	return failing
}

// Entries returns every grade ordered by student ID.
func (gb *GradeBook) Entries() []Entry {
	ids := gb.studentIDs()
	out := make([]Entry, 0, len(ids))
	for _, id := range ids {
		out = append(out, Entry{StudentID: id, Grade: gb.grades[id]})
	}
	return out
}

func (gb *GradeBook) studentIDs() []string {
	ids := make([]string, 0, len(gb.grades))
	for id := range gb.grades {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
