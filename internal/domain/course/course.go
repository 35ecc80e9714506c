// Package course contains courses, their rosters and the classroom schedule.
// Courses refer to people by ID handles; they never hold person records.
package course

import (
	"fmt"
	"strings"

	"github.com/alem-hub/university-hub/internal/domain/shared"
)

const domainName = "course"

// ══════════════════════════════════════════════════════════════════════════════
// MAIN ENTITY: COURSE
// ══════════════════════════════════════════════════════════════════════════════

// Course is a unit of teaching with an optional instructor and a roster.
type Course struct {
	Code        string
	Title       string
	Credits     int
	Description string

	// InstructorID is the professor handle; empty when unassigned.
	InstructorID string

	roster *Roster
}

// NewCourseParams contains the parameters for creating a course.
type NewCourseParams struct {
	Code        string
	Title       string
	Credits     int
	Description string

	// Capacity defaults to DefaultCapacity when zero.
	Capacity int
}

// NewCourse creates a course with an empty roster.
func NewCourse(params NewCourseParams) (*Course, error) {
	if strings.TrimSpace(params.Code) == "" {
		return nil, shared.NewDomainError(domainName, "New", shared.ErrInvalidID, "Course code cannot be empty.")
	}
	if params.Credits <= 0 {
		return nil, errInvalidCredits("New")
	}

	return &Course{
		Code:        params.Code,
		Title:       params.Title,
		Credits:     params.Credits,
		Description: params.Description,
		roster:      NewRoster(params.Code, params.Capacity),
	}, nil
}

// Restore rebuilds a stored course. Students beyond capacity are rejected
// with the same enrollment error a live enrollment would produce.
func Restore(params NewCourseParams, instructorID string, students []string) (*Course, error) {
	c, err := NewCourse(params)
	if err != nil {
		return nil, err
	}
	c.InstructorID = instructorID
	for _, id := range students {
		if err := c.roster.Add(id); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// ══════════════════════════════════════════════════════════════════════════════
// DOMAIN METHODS
// ══════════════════════════════════════════════════════════════════════════════

// SetInstructor replaces the instructor handle unconditionally.
func (c *Course) SetInstructor(professorID string) {
	c.InstructorID = professorID
}

// HasInstructor reports whether an instructor is assigned.
func (c *Course) HasInstructor() bool {
	return c.InstructorID != ""
}

// SetCredits replaces the credit count.
func (c *Course) SetCredits(credits int) error {
	if credits <= 0 {
		return errInvalidCredits("SetCredits")
	}
	c.Credits = credits
	return nil
}

// EnrollStudent appends a student to the roster. Fails with an enrollment
// error once the roster is at capacity. Duplicates are not rejected.
func (c *Course) EnrollStudent(studentID string) error {
	return c.Roster().Add(studentID)
}

// Roster returns the shared roster.
func (c *Course) Roster() *Roster {
	if c.roster == nil {
		c.roster = NewRoster(c.Code, DefaultCapacity)
	}
	return c.roster
}

// Capacity returns the roster's seat limit.
func (c *Course) Capacity() int {
	return c.Roster().Capacity()
}

// EnrollmentCount returns the roster length.
func (c *Course) EnrollmentCount() int {
	return c.Roster().Len()
}

// Students returns the enrolled student IDs in order.
func (c *Course) Students() []string {
	return c.Roster().Students()
}

// Summary renders the one-line course description.
func (c *Course) Summary() string {
	return fmt.Sprintf("Course Code: %s, Title: %s, Credits: %d", c.Code, c.Title, c.Credits)
}

// Clone creates a deep copy of the course, roster included.
func (c *Course) Clone() *Course {
	if c == nil {
		return nil
	}
	clone := *c
	clone.roster = c.Roster().clone()
	return &clone
}

func errInvalidCredits(op string) error {
	return shared.NewDomainError(domainName, op, shared.ErrValueOutOfRange, "Credits must be positive.")
}

// ══════════════════════════════════════════════════════════════════════════════
// DOMAIN ERRORS
// ══════════════════════════════════════════════════════════════════════════════

var (
	// ErrCourseNotFound is returned by repositories for unknown codes.
	ErrCourseNotFound = shared.NewDomainError(domainName, "Find", shared.ErrNotFound, "course not found")

	// ErrCourseAlreadyExists is returned when a code is registered twice.
	ErrCourseAlreadyExists = shared.NewDomainError(domainName, "Create", shared.ErrAlreadyExists, "course already exists")
)
