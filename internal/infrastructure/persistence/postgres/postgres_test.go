package postgres

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alem-hub/university-hub/internal/domain/course"
	"github.com/alem-hub/university-hub/internal/domain/department"
	"github.com/alem-hub/university-hub/internal/domain/grading"
	"github.com/alem-hub/university-hub/internal/domain/person"
	"github.com/alem-hub/university-hub/internal/domain/shared"
)

func TestPersonRow_RoundTrip(t *testing.T) {
	bob, err := person.NewGraduate(person.StudentParams{
		Identity: person.Identity{Name: "Bob", Age: 25, ID: "S124", Contact: "bob@email.com"},
		Program:  "Physics",
		GPA:      3.8,
	}, person.GraduateProfile{ResearchTopic: "Quantum", Advisor: "Dr. Smith", ThesisTitle: "Dark Matter"})
	require.NoError(t, err)

	lee, err := person.NewFullProfessor(person.ProfessorParams{
		Identity:       person.Identity{Name: "Dr. Lee", Age: 50, ID: "P125", Contact: "lee@email.com"},
		Department:     "CS",
		Specialization: "AI",
		HireDate:       "2005",
	})
	require.NoError(t, err)

	for _, p := range []*person.Person{bob, lee} {
		row := rowFromPerson(p)
		assert.Len(t, row.args(), 17)

		got, err := row.toPerson()
		require.NoError(t, err)
		assert.Equal(t, p, got)
	}

	// Professors leave every student column NULL.
	row := rowFromPerson(lee)
	assert.Nil(t, row.gpa)
	assert.Nil(t, row.program)
	assert.Nil(t, row.major)
}

func TestPersonRow_CorruptKind(t *testing.T) {
	row := personRow{id: "X1", kind: "dean", name: "X", age: 30, contact: "x@y"}
	_, err := row.toPerson()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "corrupt person row X1")
}

func TestMigrations_Ordered(t *testing.T) {
	migs := Migrations()
	require.NotEmpty(t, migs)
	for i, m := range migs {
		assert.Equal(t, i+1, m.Version)
		assert.NotEmpty(t, m.UpSQL, m.Name)
		assert.NotEmpty(t, m.DownSQL, m.Name)
	}
}

func TestErrorHelpers(t *testing.T) {
	assert.True(t, IsUniqueViolation(&pgconn.PgError{Code: "23505"}))
	assert.False(t, IsUniqueViolation(errors.New("23505")))
	assert.True(t, IsForeignKeyViolation(&pgconn.PgError{Code: "23503"}))
	assert.False(t, IsNoRows(nil))
}

// Integration tests run only against a throwaway database.
func connectForTest(t *testing.T) *Connection {
	t.Helper()
	url := os.Getenv("UNIVERSITY_TEST_DATABASE_URL")
	if url == "" {
		t.Skip("UNIVERSITY_TEST_DATABASE_URL not set")
	}

	ctx := context.Background()
	conn, err := Connect(ctx, url, PoolOptions{MaxConns: 2})
	require.NoError(t, err)
	t.Cleanup(conn.Close)

	m := NewMigrator(conn)
	for {
		status, err := m.Status(ctx)
		require.NoError(t, err)
		anyApplied := false
		for _, s := range status {
			anyApplied = anyApplied || s.IsApplied
		}
		if !anyApplied {
			break
		}
		require.NoError(t, m.Rollback(ctx))
	}
	_, err = m.Migrate(ctx)
	require.NoError(t, err)
	return conn
}

func TestRepositories_Integration(t *testing.T) {
	conn := connectForTest(t)
	ctx := context.Background()
	repos := NewRepositories(conn)

	jane, err := person.NewAssistantProfessor(person.ProfessorParams{
		Identity:   person.Identity{Name: "Dr. Jane", Age: 40, ID: "P123", Contact: "jane@email.com"},
		Department: "Science", Specialization: "Biology", HireDate: "2015",
	})
	require.NoError(t, err)
	require.NoError(t, repos.People.Create(ctx, jane))
	assert.True(t, shared.IsAlreadyExists(repos.People.Create(ctx, jane)))

	c, err := course.NewCourse(course.NewCourseParams{Code: "CS101", Title: "Intro to CS", Credits: 3})
	require.NoError(t, err)
	require.NoError(t, repos.Courses.Create(ctx, c))

	c.SetInstructor("P123")
	require.NoError(t, c.EnrollStudent("S123"))
	require.NoError(t, c.EnrollStudent("S124"))
	require.NoError(t, repos.Courses.Update(ctx, c))

	// The instructor column references people.
	ghost := c.Clone()
	ghost.SetInstructor("P999")
	assert.ErrorIs(t, repos.Courses.Update(ctx, ghost), person.ErrPersonNotFound)

	got, err := repos.Courses.GetByCode(ctx, "CS101")
	require.NoError(t, err)
	assert.Equal(t, "P123", got.InstructorID)
	assert.Equal(t, []string{"S123", "S124"}, got.Students())

	d, err := department.NewDepartment(department.NewDepartmentParams{Name: "Computer Science", Location: "Building A", Budget: 100000})
	require.NoError(t, err)
	d.AddProfessor("P123")
	d.AddCourse("CS101")
	require.NoError(t, repos.Departments.Create(ctx, d))

	gotDept, err := repos.Departments.GetByName(ctx, "Computer Science")
	require.NoError(t, err)
	assert.Equal(t, []string{"CS101"}, gotDept.CourseCodes())

	require.NoError(t, repos.Schedule.SaveSlot(ctx, course.Slot{CourseCode: "CS101", Time: "Mon 10:00", Room: "R101"}))
	slot, ok, err := repos.Schedule.GetSlot(ctx, "CS101")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "R101", slot.Room)

	require.NoError(t, repos.Grades.SaveGrade(ctx, grading.Entry{StudentID: "S123", Grade: 90}))
	require.NoError(t, repos.Grades.SaveGrade(ctx, grading.Entry{StudentID: "S123", Grade: 70}))
	gb, err := repos.Grades.Load(ctx)
	require.NoError(t, err)
	g, _ := gb.Grade("S123")
	assert.Equal(t, 70.0, g)
}
