package department

import "context"

// Repository stores departments keyed by name.
type Repository interface {
	// Create stores a new department.
	// Returns ErrDepartmentAlreadyExists if the name is taken.
	Create(ctx context.Context, d *Department) error

	// Update replaces the department and its links.
	// Returns ErrDepartmentNotFound if the name is unknown.
	Update(ctx context.Context, d *Department) error

	// GetByName returns a department by name.
	// Returns ErrDepartmentNotFound if the name is unknown.
	GetByName(ctx context.Context, name string) (*Department, error)

	// List returns all departments in creation order.
	List(ctx context.Context) ([]*Department, error)
}
