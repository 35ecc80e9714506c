package department

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alem-hub/university-hub/internal/domain/shared"
)

func TestNewDepartment(t *testing.T) {
	d, err := NewDepartment(NewDepartmentParams{Name: "Computer Science", Location: "Building A", Budget: 100000})
	require.NoError(t, err)
	assert.Equal(t, "Department: Computer Science, Location: Building A, Budget: $100000", d.Summary())
	assert.Empty(t, d.ProfessorIDs())
	assert.Empty(t, d.CourseCodes())

	_, err = NewDepartment(NewDepartmentParams{Name: ""})
	require.Error(t, err)
	assert.True(t, shared.IsValidation(err))

	_, err = NewDepartment(NewDepartmentParams{Name: "Math", Budget: -1})
	require.Error(t, err)
}

func TestDepartment_Links(t *testing.T) {
	d, err := NewDepartment(NewDepartmentParams{Name: "Computer Science"})
	require.NoError(t, err)

	d.AddProfessor("P123")
	d.AddProfessor("P124")
	d.AddCourse("CS101")

	assert.Equal(t, []string{"P123", "P124"}, d.ProfessorIDs())
	assert.Equal(t, []string{"CS101"}, d.CourseCodes())

	// Returned slices are copies.
	ids := d.ProfessorIDs()
	ids[0] = "X"
	assert.Equal(t, "P123", d.ProfessorIDs()[0])

	clone := d.Clone()
	clone.AddCourse("CS102")
	assert.Len(t, d.CourseCodes(), 1)
	assert.Len(t, clone.CourseCodes(), 2)
}

func TestRestore(t *testing.T) {
	d, err := Restore(NewDepartmentParams{Name: "Physics", Location: "Building C", Budget: 50000}, []string{"P1"}, []string{"PHY100", "PHY200"})
	require.NoError(t, err)
	assert.Equal(t, []string{"P1"}, d.ProfessorIDs())
	assert.Equal(t, []string{"PHY100", "PHY200"}, d.CourseCodes())
}

func TestUniversity_AddDepartment(t *testing.T) {
	u := NewUniversity("State University")
	u.AddDepartment("Computer Science")
	u.AddDepartment("Mathematics")

	assert.Equal(t, []string{"Computer Science", "Mathematics"}, u.Departments())
}
