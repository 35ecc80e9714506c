package query

import (
	"context"
	"errors"

	"github.com/alem-hub/university-hub/internal/domain/course"
	"github.com/alem-hub/university-hub/internal/domain/department"
	"github.com/alem-hub/university-hub/internal/domain/shared"
)

// ══════════════════════════════════════════════════════════════════════════════
// DEPARTMENT REPORT QUERY
// Departments hold course handles, so counts always reflect the current
// rosters, including enrollments made after the course was attached.
// ══════════════════════════════════════════════════════════════════════════════

// DepartmentReportQuery names the department.
type DepartmentReportQuery struct {
	Name string
}

// Validate validates the query.
func (q *DepartmentReportQuery) Validate() error {
	if q.Name == "" {
		return errors.New("department name is required")
	}
	return nil
}

// CourseCountDTO is one course line of a department report.
type CourseCountDTO struct {
	Code     string `json:"code"`
	Title    string `json:"title"`
	Enrolled int    `json:"enrolled"`
}

// DepartmentReportDTO is the rendered state of a department.
type DepartmentReportDTO struct {
	Name       string           `json:"name"`
	Summary    string           `json:"summary"`
	Professors []string         `json:"professors"`
	Courses    []CourseCountDTO `json:"courses"`

	// TotalEnrolled counts roster entries across all courses.
	TotalEnrolled int `json:"total_enrolled"`
}

// DepartmentReportHandler handles DepartmentReportQuery.
type DepartmentReportHandler struct {
	departments department.Repository
	courses     course.Repository
}

// NewDepartmentReportHandler creates a new DepartmentReportHandler.
func NewDepartmentReportHandler(departments department.Repository, courses course.Repository) *DepartmentReportHandler {
	return &DepartmentReportHandler{departments: departments, courses: courses}
}

// Handle executes the query.
func (h *DepartmentReportHandler) Handle(ctx context.Context, q DepartmentReportQuery) (*DepartmentReportDTO, error) {
	if err := q.Validate(); err != nil {
		return nil, shared.WrapError("query", "DepartmentReport", shared.ErrValidation, err.Error(), err)
	}

	d, err := h.departments.GetByName(ctx, q.Name)
	if err != nil {
		return nil, wrap("department_report", err)
	}
	return h.build(ctx, d)
}

func (h *DepartmentReportHandler) build(ctx context.Context, d *department.Department) (*DepartmentReportDTO, error) {
	codes := d.CourseCodes()
	dto := &DepartmentReportDTO{
		Name:       d.Name,
		Summary:    d.Summary(),
		Professors: d.ProfessorIDs(),
		Courses:    make([]CourseCountDTO, 0, len(codes)),
	}

	for _, code := range codes {
		c, err := h.courses.GetByCode(ctx, code)
		if err != nil {
			if errors.Is(err, course.ErrCourseNotFound) {
				dto.Courses = append(dto.Courses, CourseCountDTO{Code: code})
				continue
			}
			return nil, wrap("department_report", err)
		}
		dto.Courses = append(dto.Courses, CourseCountDTO{Code: c.Code, Title: c.Title, Enrolled: c.EnrollmentCount()})
		dto.TotalEnrolled += c.EnrollmentCount()
	}
	return dto, nil
}
