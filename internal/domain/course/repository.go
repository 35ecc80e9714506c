package course

import "context"

// Repository stores courses keyed by code, roster and instructor included.
type Repository interface {
	// Create stores a new course.
	// Returns ErrCourseAlreadyExists if the code is taken.
	Create(ctx context.Context, c *Course) error

	// Update replaces the course, its instructor and its roster.
	// Returns ErrCourseNotFound if the code is unknown.
	Update(ctx context.Context, c *Course) error

	// GetByCode returns a course by code.
	// Returns ErrCourseNotFound if the code is unknown.
	GetByCode(ctx context.Context, code string) (*Course, error)

	// List returns all courses in creation order.
	List(ctx context.Context) ([]*Course, error)
}

// ScheduleRepository stores one slot per course code.
type ScheduleRepository interface {
	// SaveSlot stores the slot, replacing any slot for the same course.
	SaveSlot(ctx context.Context, slot Slot) error

	// GetSlot returns the slot of a course; ok is false when none is set.
	GetSlot(ctx context.Context, courseCode string) (slot Slot, ok bool, err error)

	// ListSlots returns all slots ordered by course code.
	ListSlots(ctx context.Context) ([]Slot, error)
}
