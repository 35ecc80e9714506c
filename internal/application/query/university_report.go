package query

import (
	"context"

	"github.com/alem-hub/university-hub/internal/domain/course"
	"github.com/alem-hub/university-hub/internal/domain/department"
)

// UniversityReportQuery names the university. Every stored department
// belongs to it.
type UniversityReportQuery struct {
	Name string
}

// UniversityReportDTO aggregates every department report.
type UniversityReportDTO struct {
	Name        string                `json:"name"`
	Departments []DepartmentReportDTO `json:"departments"`
	TotalBudget float64               `json:"total_budget"`
}

// UniversityReportHandler handles UniversityReportQuery.
type UniversityReportHandler struct {
	departments department.Repository
	reports     *DepartmentReportHandler
}

// NewUniversityReportHandler creates a new UniversityReportHandler.
func NewUniversityReportHandler(departments department.Repository, courses course.Repository) *UniversityReportHandler {
	return &UniversityReportHandler{
		departments: departments,
		reports:     NewDepartmentReportHandler(departments, courses),
	}
}

// Handle executes the query.
func (h *UniversityReportHandler) Handle(ctx context.Context, q UniversityReportQuery) (*UniversityReportDTO, error) {
	stored, err := h.departments.List(ctx)
	if err != nil {
		return nil, wrap("university_report", err)
	}

	u := department.NewUniversity(q.Name)
	byName := make(map[string]*department.Department, len(stored))
	for _, d := range stored {
		u.AddDepartment(d.Name)
		byName[d.Name] = d
	}

	dto := &UniversityReportDTO{Name: u.Name, Departments: make([]DepartmentReportDTO, 0, len(stored))}
	for _, name := range u.Departments() {
		d := byName[name]
		report, err := h.reports.build(ctx, d)
		if err != nil {
			return nil, err
		}
		dto.Departments = append(dto.Departments, *report)
		dto.TotalBudget += d.Budget
	}
	return dto, nil
}
