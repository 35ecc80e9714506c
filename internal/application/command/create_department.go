package command

import (
	"context"

	"github.com/alem-hub/university-hub/internal/domain/department"
	"github.com/alem-hub/university-hub/pkg/logger"
)

// CreateDepartmentCommand contains the data for a new department.
type CreateDepartmentCommand struct {
	Name     string
	Location string
	Budget   float64

	// CorrelationID for tracing.
	CorrelationID string
}

// CreateDepartmentResult is returned on success.
type CreateDepartmentResult struct {
	Name string
}

// CreateDepartmentHandler handles CreateDepartmentCommand.
type CreateDepartmentHandler struct {
	departments department.Repository
}

// NewCreateDepartmentHandler creates a new CreateDepartmentHandler.
func NewCreateDepartmentHandler(departments department.Repository) *CreateDepartmentHandler {
	return &CreateDepartmentHandler{departments: departments}
}

// Handle executes the command.
func (h *CreateDepartmentHandler) Handle(ctx context.Context, cmd CreateDepartmentCommand) (*CreateDepartmentResult, error) {
	log := logWith(ctx, "create_department", correlationID(cmd.CorrelationID))

	d, err := department.NewDepartment(department.NewDepartmentParams{
		Name:     cmd.Name,
		Location: cmd.Location,
		Budget:   cmd.Budget,
	})
	if err != nil {
		return nil, err
	}

	if err := h.departments.Create(ctx, d); err != nil {
		return nil, wrap("create_department", err)
	}

	log.Debug("department created", logger.Department(d.Name))
	return &CreateDepartmentResult{Name: d.Name}, nil
}
