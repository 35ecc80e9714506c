package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alem-hub/university-hub/internal/domain/course"
	"github.com/alem-hub/university-hub/internal/domain/department"
	"github.com/alem-hub/university-hub/internal/domain/grading"
	"github.com/alem-hub/university-hub/internal/domain/person"
	"github.com/alem-hub/university-hub/internal/domain/shared"
)

func newAlice(t *testing.T) *person.Person {
	t.Helper()
	p, err := person.NewUndergraduate(person.StudentParams{
		Identity:       person.Identity{Name: "Alice", Age: 20, ID: "S123", Contact: "alice@email.com"},
		EnrollmentDate: "2022",
		Program:        "CS",
		GPA:            3.5,
	}, person.UndergraduateProfile{Major: "CS", Minor: "Math", ExpectedGraduation: "2025"})
	require.NoError(t, err)
	return p
}

func TestPersonRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewStore().People()

	alice := newAlice(t)
	require.NoError(t, repo.Create(ctx, alice))

	err := repo.Create(ctx, alice)
	assert.True(t, shared.IsAlreadyExists(err))

	got, err := repo.GetByID(ctx, "S123")
	require.NoError(t, err)
	assert.Equal(t, alice, got)

	// Stored records are isolated from caller mutations.
	require.NoError(t, got.SetName("Alicia"))
	again, err := repo.GetByID(ctx, "S123")
	require.NoError(t, err)
	assert.Equal(t, "Alice", again.Name)

	require.NoError(t, repo.Update(ctx, got))
	again, err = repo.GetByID(ctx, "S123")
	require.NoError(t, err)
	assert.Equal(t, "Alicia", again.Name)

	_, err = repo.GetByID(ctx, "nobody")
	assert.True(t, shared.IsNotFound(err))

	list, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestCourseRepository_PersistsRosterOnUpdate(t *testing.T) {
	ctx := context.Background()
	repo := NewStore().Courses()

	c, err := course.NewCourse(course.NewCourseParams{Code: "CS101", Title: "Intro to CS", Credits: 3})
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, c))

	loaded, err := repo.GetByCode(ctx, "CS101")
	require.NoError(t, err)
	require.NoError(t, loaded.EnrollStudent("S123"))
	loaded.SetInstructor("P123")

	stale, err := repo.GetByCode(ctx, "CS101")
	require.NoError(t, err)
	assert.Equal(t, 0, stale.EnrollmentCount())

	require.NoError(t, repo.Update(ctx, loaded))
	fresh, err := repo.GetByCode(ctx, "CS101")
	require.NoError(t, err)
	assert.Equal(t, []string{"S123"}, fresh.Students())
	assert.Equal(t, "P123", fresh.InstructorID)

	missing, err := course.NewCourse(course.NewCourseParams{Code: "X1", Credits: 1})
	require.NoError(t, err)
	assert.True(t, shared.IsNotFound(repo.Update(ctx, missing)))
}

func TestDepartmentRepository_ListOrder(t *testing.T) {
	ctx := context.Background()
	repo := NewStore().Departments()

	for _, name := range []string{"Physics", "Computer Science", "Biology"} {
		d, err := department.NewDepartment(department.NewDepartmentParams{Name: name})
		require.NoError(t, err)
		require.NoError(t, repo.Create(ctx, d))
	}

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "Physics", list[0].Name)
	assert.Equal(t, "Biology", list[2].Name)

	_, err = repo.GetByName(ctx, "Law")
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestScheduleRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewStore().Schedule()

	require.NoError(t, repo.SaveSlot(ctx, course.Slot{CourseCode: "CS101", Time: "Mon 10:00", Room: "R101"}))
	require.NoError(t, repo.SaveSlot(ctx, course.Slot{CourseCode: "CS101", Time: "Tue 11:00", Room: "R102"}))

	slot, ok, err := repo.GetSlot(ctx, "CS101")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "R102", slot.Room)

	slots, err := repo.ListSlots(ctx)
	require.NoError(t, err)
	assert.Len(t, slots, 1)
}

func TestGradeLedger(t *testing.T) {
	ctx := context.Background()
	ledger := NewStore().Grades()

	require.NoError(t, ledger.SaveGrade(ctx, grading.Entry{StudentID: "S123", Grade: 90}))
	require.NoError(t, ledger.SaveGrade(ctx, grading.Entry{StudentID: "S124", Grade: 45}))
	require.Error(t, ledger.SaveGrade(ctx, grading.Entry{StudentID: "S125", Grade: 101}))

	gb, err := ledger.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, gb.Len())
	assert.Equal(t, 67.5, gb.AverageGrade())

	// The loaded book is a copy.
	require.NoError(t, gb.AddGrade("S999", 10))
	again, err := ledger.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, again.Len())
}
