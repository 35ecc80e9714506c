package course

import (
	"github.com/alem-hub/university-hub/internal/domain/shared"
)

// DefaultCapacity is the seat limit of a course roster.
const DefaultCapacity = 30

// Roster is the ordered list of student IDs enrolled in one course.
// It is the single source of truth for enrollment: the Course and the
// enrollment manager share the same *Roster.
type Roster struct {
	code     string
	capacity int
	students []string
}

// NewRoster creates an empty roster. A non-positive capacity falls back to
// DefaultCapacity.
func NewRoster(code string, capacity int) *Roster {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Roster{code: code, capacity: capacity, students: make([]string, 0)}
}

// Code returns the course code the roster belongs to.
func (r *Roster) Code() string { return r.code }

// Capacity returns the seat limit.
func (r *Roster) Capacity() int { return r.capacity }

// Len returns the number of enrolled entries.
func (r *Roster) Len() int { return len(r.students) }

// IsFull reports whether no seat is left.
func (r *Roster) IsFull() bool { return len(r.students) >= r.capacity }

// Add appends a student ID. The same ID may be added more than once.
func (r *Roster) Add(studentID string) error {
	if r.IsFull() {
		return shared.NewEnrollmentError(domainName, "EnrollStudent", shared.ErrCapacityExceeded,
			"Course is full: "+r.code)
	}
	r.students = append(r.students, studentID)
	return nil
}

// Remove deletes every occurrence of studentID, keeping the order of the
// remaining entries. It returns how many entries were removed.
func (r *Roster) Remove(studentID string) int {
	kept := r.students[:0]
	removed := 0
	for _, id := range r.students {
		if id == studentID {
			removed++
			continue
		}
		kept = append(kept, id)
	}
	r.students = kept
	return removed
}

// Students returns a copy of the roster in enrollment order.
func (r *Roster) Students() []string {
	out := make([]string, len(r.students))
	copy(out, r.students)
	return out
}

func (r *Roster) clone() *Roster {
	return &Roster{code: r.code, capacity: r.capacity, students: r.Students()}
}
