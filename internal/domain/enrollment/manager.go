// Package enrollment tracks which students are enrolled in which course.
//
// The manager does not keep a second list per course: it shares the
// *course.Roster of every tracked course, so enrolling through the manager
// or through the course changes the same roster and counts never diverge.
// A code that was never tracked gets its own roster on first enrollment.
package enrollment

import "github.com/alem-hub/university-hub/internal/domain/course"

// Manager maps course codes to rosters.
type Manager struct {
	rosters map[string]*course.Roster
}

// NewManager creates a manager with no tracked courses.
func NewManager() *Manager {
	return &Manager{rosters: make(map[string]*course.Roster)}
}

// Track makes the manager operate on the roster of c. Tracking a course
// again replaces the previous roster for its code.
func (m *Manager) Track(c *course.Course) {
	m.rosters[c.Code] = c.Roster()
}

// Enroll appends studentID to the course roster, creating the roster if
// the code is unknown.
func (m *Manager) Enroll(courseCode, studentID string) error {
	r, ok := m.rosters[courseCode]
	if !ok {
		r = course.NewRoster(courseCode, course.DefaultCapacity)
		m.rosters[courseCode] = r
	}
	return r.Add(studentID)
}

// Drop removes every occurrence of studentID from the course roster and
// returns how many were removed. Unknown codes are a no-op.
func (m *Manager) Drop(courseCode, studentID string) int {
	r, ok := m.rosters[courseCode]
	if !ok {
		return 0
	}
	return r.Remove(studentID)
}

// Count returns the roster length, 0 for an unknown code.
func (m *Manager) Count(courseCode string) int {
	r, ok := m.rosters[courseCode]
	if !ok {
		return 0
	}
	return r.Len()
}

// Students returns the roster of a course, nil for an unknown code.
func (m *Manager) Students(courseCode string) []string {
	r, ok := m.rosters[courseCode]
	if !ok {
		return nil
	}
	return r.Students()
}
