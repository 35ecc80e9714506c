package command

import (
	"context"
	"errors"

	"github.com/alem-hub/university-hub/internal/domain/person"
	"github.com/alem-hub/university-hub/pkg/logger"
)

// ══════════════════════════════════════════════════════════════════════════════
// REGISTER PERSON COMMAND
// Builds a student or professor record and stores it.
// ══════════════════════════════════════════════════════════════════════════════

// RegisterPersonCommand contains the data for a new person.
type RegisterPersonCommand struct {
	// Person holds identity, kind and profile.
	Person person.Params

	// CorrelationID for tracing.
	CorrelationID string
}

// Validate validates the command shape. Field rules are enforced by the
// person constructor.
func (c RegisterPersonCommand) Validate() error {
	if !c.Person.Kind.IsValid() {
		return errors.New("register_person: unknown kind " + string(c.Person.Kind))
	}
	return nil
}

// RegisterPersonResult is returned on success.
type RegisterPersonResult struct {
	PersonID string
	Kind     person.Kind
}

// RegisterPersonHandler handles RegisterPersonCommand.
type RegisterPersonHandler struct {
	people person.Repository
}

// NewRegisterPersonHandler creates a new RegisterPersonHandler.
func NewRegisterPersonHandler(people person.Repository) *RegisterPersonHandler {
	return &RegisterPersonHandler{people: people}
}

// Handle executes the command.
func (h *RegisterPersonHandler) Handle(ctx context.Context, cmd RegisterPersonCommand) (*RegisterPersonResult, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	log := logWith(ctx, "register_person", correlationID(cmd.CorrelationID))

	p, err := person.New(cmd.Person)
	if err != nil {
		return nil, err
	}

	if err := h.people.Create(ctx, p); err != nil {
		return nil, wrap("register_person", err)
	}

	log.Debug("person registered", logger.PersonID(p.ID), logger.String("kind", string(p.Kind)))
	return &RegisterPersonResult{PersonID: p.ID, Kind: p.Kind}, nil
}
