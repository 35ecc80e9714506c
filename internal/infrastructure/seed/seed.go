// Package seed reads a university roster from YAML.
//
// A roster file lists people, courses, departments, grades and schedule
// slots. Decoding only checks the shape of the document; domain validation
// happens when the entries are turned into records.
package seed

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/alem-hub/university-hub/internal/domain/course"
	"github.com/alem-hub/university-hub/internal/domain/department"
	"github.com/alem-hub/university-hub/internal/domain/person"
)

// Document is a whole roster file.
type Document struct {
	University  string            `yaml:"university"`
	People      []PersonEntry     `yaml:"people"`
	Courses     []CourseEntry     `yaml:"courses"`
	Departments []DepartmentEntry `yaml:"departments"`
	Grades      []GradeEntry      `yaml:"grades"`
	Schedule    []SlotEntry       `yaml:"schedule"`
}

// PersonEntry is one person of any kind. Fields that do not apply to the
// kind are ignored.
type PersonEntry struct {
	person.Identity `yaml:",inline"`
	Kind            person.Kind `yaml:"kind"`

	EnrollmentDate string  `yaml:"enrollment_date"`
	Program        string  `yaml:"program"`
	GPA            float64 `yaml:"gpa"`

	Major              string `yaml:"major"`
	Minor              string `yaml:"minor"`
	ExpectedGraduation string `yaml:"expected_graduation"`

	ResearchTopic string `yaml:"research_topic"`
	Advisor       string `yaml:"advisor"`
	ThesisTitle   string `yaml:"thesis_title"`

	Department     string `yaml:"department"`
	Specialization string `yaml:"specialization"`
	HireDate       string `yaml:"hire_date"`
}

// CourseEntry is one course with its instructor and roster.
type CourseEntry struct {
	Code        string   `yaml:"code"`
	Title       string   `yaml:"title"`
	Credits     int      `yaml:"credits"`
	Description string   `yaml:"description"`
	Capacity    int      `yaml:"capacity"`
	Instructor  string   `yaml:"instructor"`
	Students    []string `yaml:"students"`
}

// DepartmentEntry is one department and its links.
type DepartmentEntry struct {
	Name       string   `yaml:"name"`
	Location   string   `yaml:"location"`
	Budget     float64  `yaml:"budget"`
	Professors []string `yaml:"professors"`
	Courses    []string `yaml:"courses"`
}

// GradeEntry is one recorded grade.
type GradeEntry struct {
	StudentID string  `yaml:"student"`
	Grade     float64 `yaml:"grade"`
}

// SlotEntry places a course in a room at a time.
type SlotEntry struct {
	Course string `yaml:"course"`
	Time   string `yaml:"time"`
	Room   string `yaml:"room"`

	// Seats is optional; when set the roster must fit in the room.
	Seats int `yaml:"seats"`
}

// ErrEmptyDocument is returned for a file with no records.
var ErrEmptyDocument = errors.New("seed document is empty")

// LoadFile reads and decodes a roster file.
func LoadFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed %s: %w", path, err)
	}
	return Decode(bytes.NewReader(data))
}

// Decode parses a roster document. Unknown keys are rejected.
func Decode(r io.Reader) (*Document, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc Document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyDocument
		}
		return nil, fmt.Errorf("decode seed: %w", err)
	}

	for i, p := range doc.People {
		if !p.Kind.IsValid() {
			return nil, fmt.Errorf("decode seed: people[%d] (%s): unknown kind %q", i, p.ID, p.Kind)
		}
	}
	return &doc, nil
}

// Params turns the entry into constructor parameters for its kind.
func (e PersonEntry) Params() person.Params {
	params := person.Params{Identity: e.Identity, Kind: e.Kind}

	switch e.Kind.Family() {
	case person.FamilyStudent:
		sp := &person.StudentProfile{EnrollmentDate: e.EnrollmentDate, Program: e.Program, GPA: e.GPA}
		switch e.Kind {
		case person.KindUndergraduate:
			sp.Undergraduate = &person.UndergraduateProfile{
				Major: e.Major, Minor: e.Minor, ExpectedGraduation: e.ExpectedGraduation,
			}
		case person.KindGraduate:
			sp.Graduate = &person.GraduateProfile{
				ResearchTopic: e.ResearchTopic, Advisor: e.Advisor, ThesisTitle: e.ThesisTitle,
			}
		}
		params.Student = sp
	case person.FamilyProfessor:
		params.Professor = &person.ProfessorProfile{
			Department: e.Department, Specialization: e.Specialization, HireDate: e.HireDate,
		}
	}
	return params
}

// Params turns the entry into course constructor parameters.
func (e CourseEntry) Params() course.NewCourseParams {
	return course.NewCourseParams{
		Code:        e.Code,
		Title:       e.Title,
		Credits:     e.Credits,
		Description: e.Description,
		Capacity:    e.Capacity,
	}
}

// Params turns the entry into department constructor parameters.
func (e DepartmentEntry) Params() department.NewDepartmentParams {
	return department.NewDepartmentParams{Name: e.Name, Location: e.Location, Budget: e.Budget}
}
