package person

import "context"

// ══════════════════════════════════════════════════════════════════════════════
// REPOSITORY INTERFACE
// Implementations live in infrastructure/persistence.
// ══════════════════════════════════════════════════════════════════════════════

// Repository stores people keyed by ID.
type Repository interface {
	// Create stores a new person.
	// Returns an ErrAlreadyExists domain error if the ID is taken.
	Create(ctx context.Context, p *Person) error

	// Update replaces an existing person.
	// Returns ErrPersonNotFound if the ID is unknown.
	Update(ctx context.Context, p *Person) error

	// GetByID returns a person by ID.
	// Returns ErrPersonNotFound if the ID is unknown.
	GetByID(ctx context.Context, id string) (*Person, error)

	// List returns all people in registration order.
	List(ctx context.Context) ([]*Person, error)
}
