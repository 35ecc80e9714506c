package shared

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDomainError_RendersCategoryPrefix(t *testing.T) {
	tests := []struct {
		name string
		err  *DomainError
		want string
	}{
		{"general", NewDomainError("person", "New", ErrInvalidID, "Invalid ID provided"), "Invalid ID provided"},
		{"enrollment", NewEnrollmentError("course", "EnrollStudent", ErrCapacityExceeded, "Course is full: CS101"), "Enrollment Error: Course is full: CS101"},
		{"grade", NewGradeError("grading", "AddGrade", ErrValueOutOfRange, "Invalid grade entry: 101.000000"), "Grade Error: Invalid grade entry: 101.000000"},
		{"payment", NewPaymentError("person", "CalculatePayment", ErrValueOutOfRange, "Invalid GPA for payment calculation"), "Payment Error: Invalid GPA for payment calculation"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestDomainError_IsMatchesKind(t *testing.T) {
	err := NewEnrollmentError("course", "EnrollStudent", ErrCapacityExceeded, "Course is full: CS101")
	wrapped := fmt.Errorf("enroll: %w", err)

	assert.True(t, errors.Is(wrapped, ErrCapacityExceeded))
	assert.False(t, errors.Is(wrapped, ErrNotFound))
	assert.Equal(t, CategoryEnrollment, CategoryOf(wrapped))
	assert.True(t, IsDomain(wrapped))
}

func TestWrapError_KeepsCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := WrapError("course", "Save", ErrNotFound, "course lookup failed", cause)

	assert.Equal(t, "course lookup failed: connection refused", err.Error())
	assert.True(t, errors.Is(err, cause))
	assert.True(t, IsNotFound(err))
	assert.Equal(t, "course.Save", err.Location())
}

func TestCategoryOf_NonDomainError(t *testing.T) {
	err := errors.New("boom")

	assert.Equal(t, CategoryGeneral, CategoryOf(err))
	assert.False(t, IsDomain(err))

	_, ok := AsDomainError(err)
	require.False(t, ok)
}

func TestIsValidation(t *testing.T) {
	assert.True(t, IsValidation(NewDomainError("person", "New", ErrEmptyValue, "Name cannot be empty.")))
	assert.True(t, IsValidation(NewDomainError("person", "New", ErrValueOutOfRange, "Invalid age.")))
	assert.False(t, IsValidation(NewDomainError("course", "Get", ErrNotFound, "course not found")))
}
