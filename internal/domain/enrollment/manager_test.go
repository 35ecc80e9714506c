package enrollment

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alem-hub/university-hub/internal/domain/course"
	"github.com/alem-hub/university-hub/internal/domain/shared"
)

func TestManager_EnrollAndDrop(t *testing.T) {
	m := NewManager()
	require.NoError(t, m.Enroll("CS101", "S1"))
	require.NoError(t, m.Enroll("CS101", "S2"))

	assert.Equal(t, 1, m.Drop("CS101", "S2"))
	assert.Equal(t, 1, m.Count("CS101"))
	assert.Equal(t, []string{"S1"}, m.Students("CS101"))
}

func TestManager_UnknownCourse(t *testing.T) {
	m := NewManager()

	assert.Equal(t, 0, m.Count("NOPE"))
	assert.Equal(t, 0, m.Drop("NOPE", "S1"))
	assert.Nil(t, m.Students("NOPE"))
}

func TestManager_DropRemovesAllOccurrences(t *testing.T) {
	m := NewManager()
	for _, id := range []string{"S1", "S2", "S1", "S3"} {
		require.NoError(t, m.Enroll("CS101", id))
	}

	assert.Equal(t, 2, m.Drop("CS101", "S1"))
	assert.Equal(t, []string{"S2", "S3"}, m.Students("CS101"))
}

func TestManager_SharesCourseRoster(t *testing.T) {
	c, err := course.NewCourse(course.NewCourseParams{Code: "CS101", Title: "Intro to CS", Credits: 3})
	require.NoError(t, err)

	m := NewManager()
	m.Track(c)

	require.NoError(t, c.EnrollStudent("S1"))
	require.NoError(t, m.Enroll("CS101", "S2"))

	assert.Equal(t, 2, m.Count("CS101"))
	assert.Equal(t, 2, c.EnrollmentCount())

	m.Drop("CS101", "S1")
	assert.Equal(t, []string{"S2"}, c.Students())
}

func TestManager_Capacity(t *testing.T) {
	m := NewManager()
	for i := 0; i < course.DefaultCapacity; i++ {
		require.NoError(t, m.Enroll("CS101", fmt.Sprintf("S%d", i)))
	}

	err := m.Enroll("CS101", "late")
	require.Error(t, err)
	assert.Equal(t, shared.CategoryEnrollment, shared.CategoryOf(err))
	assert.Equal(t, course.DefaultCapacity, m.Count("CS101"))
	assert.Equal(t, course.DefaultCapacity, len(m.Students("CS101")))
}
