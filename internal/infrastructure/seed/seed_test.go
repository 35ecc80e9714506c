package seed

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alem-hub/university-hub/internal/domain/course"
	"github.com/alem-hub/university-hub/internal/domain/person"
)

const roster = `
university: State University
people:
  - kind: undergraduate
    name: Alice
    age: 20
    id: S123
    contact: alice@email.com
    enrollment_date: "2022"
    program: CS
    gpa: 3.5
    major: CS
    minor: Math
    expected_graduation: "2025"
  - kind: graduate
    name: Bob
    age: 25
    id: S124
    contact: bob@email.com
    program: Physics
    gpa: 3.8
    research_topic: Quantum
    advisor: Dr. Smith
    thesis_title: Dark Matter
  - kind: assistant_professor
    name: Dr. Jane
    age: 40
    id: P123
    contact: jane@email.com
    department: Science
    specialization: Biology
    hire_date: "2015"
courses:
  - code: CS101
    title: Intro to CS
    credits: 3
    instructor: P123
    students: [S123, S124]
departments:
  - name: Computer Science
    location: Building A
    budget: 100000
    professors: [P123]
    courses: [CS101]
grades:
  - student: S123
    grade: 90
schedule:
  - course: CS101
    time: Mon 10:00
    room: R101
    seats: 40
`

func TestDecode_BuildsRecords(t *testing.T) {
	doc, err := Decode(strings.NewReader(roster))
	require.NoError(t, err)

	assert.Equal(t, "State University", doc.University)
	require.Len(t, doc.People, 3)
	require.Len(t, doc.Courses, 1)
	require.Len(t, doc.Departments, 1)

	alice, err := person.New(doc.People[0].Params())
	require.NoError(t, err)
	assert.Equal(t, "Name: Alice, Age: 20, ID: S123, Contact: alice@email.com\n"+
		"Program: CS, GPA: 3.5\n"+
		"Major: CS, Minor: Math, Grad Date: 2025\n", alice.DisplayDetails())

	bob, err := person.New(doc.People[1].Params())
	require.NoError(t, err)
	pay, err := bob.CalculatePayment()
	require.NoError(t, err)
	assert.Equal(t, 8000.0, pay)

	jane, err := person.New(doc.People[2].Params())
	require.NoError(t, err)
	assert.True(t, jane.IsProfessor())
	assert.Nil(t, jane.Student)

	c, err := course.Restore(doc.Courses[0].Params(), doc.Courses[0].Instructor, doc.Courses[0].Students)
	require.NoError(t, err)
	assert.Equal(t, 2, c.EnrollmentCount())

	assert.Equal(t, "Computer Science", doc.Departments[0].Params().Name)
	assert.Equal(t, GradeEntry{StudentID: "S123", Grade: 90}, doc.Grades[0])
	assert.Equal(t, SlotEntry{Course: "CS101", Time: "Mon 10:00", Room: "R101", Seats: 40}, doc.Schedule[0])
}

func TestDecode_RejectsUnknownKind(t *testing.T) {
	_, err := Decode(strings.NewReader("people:\n  - kind: dean\n    id: D1\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown kind "dean"`)
}

func TestDecode_RejectsUnknownField(t *testing.T) {
	_, err := Decode(strings.NewReader("faculty: []\n"))
	require.Error(t, err)
}

func TestDecode_Empty(t *testing.T) {
	_, err := Decode(strings.NewReader(""))
	assert.ErrorIs(t, err, ErrEmptyDocument)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roster.yaml")
	require.NoError(t, os.WriteFile(path, []byte(roster), 0o644))

	doc, err := LoadFile(path)
	require.NoError(t, err)
	assert.Len(t, doc.People, 3)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}
