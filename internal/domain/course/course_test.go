package course

import (
	"errors"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alem-hub/university-hub/internal/domain/shared"
)

func newCS101(t *testing.T) *Course {
	t.Helper()
	c, err := NewCourse(NewCourseParams{Code: "CS101", Title: "Intro to CS", Credits: 3, Description: "Basics of programming"})
	require.NoError(t, err)
	return c
}

func TestNewCourse_Credits(t *testing.T) {
	for _, credits := range []int{0, -1} {
		c, err := NewCourse(NewCourseParams{Code: "CS101", Title: "Intro", Credits: credits})
		require.Error(t, err)
		assert.Nil(t, c)
		assert.Equal(t, "Credits must be positive.", err.Error())
		assert.True(t, errors.Is(err, shared.ErrValueOutOfRange))
	}

	c := newCS101(t)
	assert.Equal(t, DefaultCapacity, c.Capacity())
	assert.Equal(t, 0, c.EnrollmentCount())
	assert.False(t, c.HasInstructor())
}

func TestNewCourse_EmptyCode(t *testing.T) {
	_, err := NewCourse(NewCourseParams{Code: " ", Credits: 3})
	require.Error(t, err)
	assert.True(t, shared.IsValidation(err))
}

func TestEnrollStudent_CapacityBound(t *testing.T) {
	c := newCS101(t)

	for i := 0; i < DefaultCapacity; i++ {
		require.NoError(t, c.EnrollStudent(fmt.Sprintf("S%03d", i)))
	}

	err := c.EnrollStudent("S999")
	require.Error(t, err)
	assert.Equal(t, "Enrollment Error: Course is full: CS101", err.Error())
	assert.Equal(t, shared.CategoryEnrollment, shared.CategoryOf(err))
	assert.True(t, errors.Is(err, shared.ErrCapacityExceeded))
	assert.Equal(t, DefaultCapacity, c.EnrollmentCount())
}

func TestEnrollStudent_AllowsDuplicates(t *testing.T) {
	c := newCS101(t)

	require.NoError(t, c.EnrollStudent("S123"))
	require.NoError(t, c.EnrollStudent("S123"))

	assert.Equal(t, 2, c.EnrollmentCount())
}

func TestSetInstructor_ReplacesUnconditionally(t *testing.T) {
	c := newCS101(t)

	c.SetInstructor("P123")
	assert.Equal(t, "P123", c.InstructorID)

	c.SetInstructor("P124")
	assert.Equal(t, "P124", c.InstructorID)

	c.SetInstructor("")
	assert.False(t, c.HasInstructor())
}

func TestSetCredits(t *testing.T) {
	c := newCS101(t)

	require.Error(t, c.SetCredits(0))
	assert.Equal(t, 3, c.Credits)

	require.NoError(t, c.SetCredits(4))
	assert.Equal(t, 4, c.Credits)
}

func TestSummary(t *testing.T) {
	assert.Equal(t, "Course Code: CS101, Title: Intro to CS, Credits: 3", newCS101(t).Summary())
}

func TestRoster_RemoveKeepsOrder(t *testing.T) {
	r := NewRoster("CS101", 0)
	for _, id := range []string{"S1", "S2", "S3", "S2", "S4"} {
		require.NoError(t, r.Add(id))
	}

	assert.Equal(t, 2, r.Remove("S2"))
	assert.Equal(t, 0, r.Remove("S9"))

	if diff := cmp.Diff([]string{"S1", "S3", "S4"}, r.Students()); diff != "" {
		t.Errorf("roster mismatch (-want +got):\n%s", diff)
	}
}

func TestRestore(t *testing.T) {
	c, err := Restore(NewCourseParams{Code: "MATH202", Title: "Linear Algebra", Credits: 4, Capacity: 2}, "P200", []string{"S1", "S2"})
	require.NoError(t, err)
	assert.Equal(t, "P200", c.InstructorID)
	assert.Equal(t, []string{"S1", "S2"}, c.Students())

	_, err = Restore(NewCourseParams{Code: "MATH202", Title: "Linear Algebra", Credits: 4, Capacity: 1}, "", []string{"S1", "S2"})
	require.Error(t, err)
	assert.Equal(t, shared.CategoryEnrollment, shared.CategoryOf(err))
}

func TestClone_CopiesRoster(t *testing.T) {
	c := newCS101(t)
	require.NoError(t, c.EnrollStudent("S1"))

	clone := c.Clone()
	require.NoError(t, clone.EnrollStudent("S2"))

	assert.Equal(t, 1, c.EnrollmentCount())
	assert.Equal(t, 2, clone.EnrollmentCount())
}

func TestSchedule_Overwrites(t *testing.T) {
	s := NewSchedule()
	s.AddSchedule("CS101", "Mon 10:00", "R101")
	s.AddSchedule("MATH202", "Tue 09:00", "R202")
	s.AddSchedule("CS101", "Wed 14:00", "R303")

	slot, ok := s.Slot("CS101")
	require.True(t, ok)
	assert.Equal(t, "Schedule: CS101 at Wed 14:00 in R303", slot.String())
	assert.Equal(t, 2, s.Len())

	_, ok = s.Slot("PHY100")
	assert.False(t, ok)

	slots := s.Slots()
	require.Len(t, slots, 2)
	assert.Equal(t, "CS101", slots[0].CourseCode)
	assert.Equal(t, "MATH202", slots[1].CourseCode)
}

func TestNewClassroom(t *testing.T) {
	room, err := NewClassroom("R101", 40)
	require.NoError(t, err)
	assert.Equal(t, Classroom{RoomNumber: "R101", Capacity: 40}, room)

	_, err = NewClassroom("", 40)
	require.Error(t, err)
	_, err = NewClassroom("R101", 0)
	require.Error(t, err)
}

func TestClassroom_Seat(t *testing.T) {
	c, err := NewCourse(NewCourseParams{Code: "CS101", Title: "Intro to CS", Credits: 3})
	require.NoError(t, err)
	require.NoError(t, c.EnrollStudent("S1"))
	require.NoError(t, c.EnrollStudent("S2"))

	assert.NoError(t, Classroom{RoomNumber: "R101", Capacity: 2}.Seat(c))

	err = Classroom{RoomNumber: "R7", Capacity: 1}.Seat(c)
	require.Error(t, err)
	assert.Equal(t, "Enrollment Error: Room R7 seats 1, CS101 has 2 students", err.Error())
	assert.ErrorIs(t, err, shared.ErrCapacityExceeded)
}
