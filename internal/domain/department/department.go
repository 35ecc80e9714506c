// Package department groups professors and courses under a department and
// departments under the university. Every link is an ID handle, so a course
// enrolled after it was added to a department is seen with its live roster.
package department

import (
	"fmt"
	"strings"

	"github.com/alem-hub/university-hub/internal/domain/shared"
)

const domainName = "department"

// Department groups professors and courses under a name.
type Department struct {
	Name     string
	Location string
	Budget   float64

	professorIDs []string
	courseCodes  []string
}

// NewDepartmentParams contains the parameters for creating a department.
type NewDepartmentParams struct {
	Name     string
	Location string
	Budget   float64
}

// NewDepartment creates an empty department.
func NewDepartment(params NewDepartmentParams) (*Department, error) {
	if strings.TrimSpace(params.Name) == "" {
		return nil, shared.NewDomainError(domainName, "New", shared.ErrEmptyValue, "Department name cannot be empty.")
	}
	if params.Budget < 0 {
		return nil, shared.NewDomainError(domainName, "New", shared.ErrValueOutOfRange, "Department budget cannot be negative.")
	}
	return &Department{
		Name:         params.Name,
		Location:     params.Location,
		Budget:       params.Budget,
		professorIDs: make([]string, 0),
		courseCodes:  make([]string, 0),
	}, nil
}

// Restore rebuilds a stored department with its links.
func Restore(params NewDepartmentParams, professorIDs, courseCodes []string) (*Department, error) {
	d, err := NewDepartment(params)
	if err != nil {
		return nil, err
	}
	d.professorIDs = append(d.professorIDs, professorIDs...)
	d.courseCodes = append(d.courseCodes, courseCodes...)
	return d, nil
}

// AddProfessor appends a professor handle.
func (d *Department) AddProfessor(professorID string) {
	d.professorIDs = append(d.professorIDs, professorID)
}

// AddCourse appends a course handle.
func (d *Department) AddCourse(courseCode string) {
	d.courseCodes = append(d.courseCodes, courseCode)
}

// ProfessorIDs returns the professor handles in insertion order.
func (d *Department) ProfessorIDs() []string {
	return append([]string(nil), d.professorIDs...)
}

// CourseCodes returns the course handles in insertion order.
func (d *Department) CourseCodes() []string {
	return append([]string(nil), d.courseCodes...)
}

// Summary renders the one-line department description.
func (d *Department) Summary() string {
	return fmt.Sprintf("Department: %s, Location: %s, Budget: $%s", d.Name, d.Location, shared.FormatNumber(d.Budget))
}

// Clone creates a deep copy of the department.
func (d *Department) Clone() *Department {
	if d == nil {
		return nil
	}
	clone := *d
	clone.professorIDs = d.ProfessorIDs()
	clone.courseCodes = d.CourseCodes()
	return &clone
}

var (
	// ErrDepartmentNotFound is returned by repositories for unknown names.
	ErrDepartmentNotFound = shared.NewDomainError(domainName, "Find", shared.ErrNotFound, "department not found")

	// ErrDepartmentAlreadyExists is returned when a name is registered twice.
	ErrDepartmentAlreadyExists = shared.NewDomainError(domainName, "Create", shared.ErrAlreadyExists, "department already exists")
)
