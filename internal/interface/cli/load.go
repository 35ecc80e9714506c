package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/alem-hub/university-hub/internal/application/command"
	"github.com/alem-hub/university-hub/internal/application/query"
	"github.com/alem-hub/university-hub/internal/domain/shared"
	"github.com/alem-hub/university-hub/internal/infrastructure/seed"
	"github.com/alem-hub/university-hub/pkg/logger"
)

// LoadRoster imports a decoded roster through the command handlers and
// prints the resulting payroll. The first domain error stops the import.
func LoadRoster(ctx context.Context, app *App, doc *seed.Document, out io.Writer) error {
	c := app.Commands
	log := app.Log.With(logger.Operation("load"))

	for _, p := range doc.People {
		if _, err := c.RegisterPerson.Handle(ctx, command.RegisterPersonCommand{Person: p.Params()}); err != nil {
			return err
		}
	}

	for _, entry := range doc.Courses {
		params := entry.Params()
		if _, err := c.CreateCourse.Handle(ctx, command.CreateCourseCommand{
			Code:        params.Code,
			Title:       params.Title,
			Credits:     params.Credits,
			Description: params.Description,
			Capacity:    params.Capacity,
		}); err != nil {
			return err
		}
		if entry.Instructor != "" {
			if _, err := c.AssignInstructor.Handle(ctx, command.AssignInstructorCommand{
				CourseCode: params.Code, ProfessorID: entry.Instructor,
			}); err != nil {
				return err
			}
		}
		for _, id := range entry.Students {
			if _, err := c.EnrollStudent.Handle(ctx, command.EnrollStudentCommand{
				CourseCode: params.Code, StudentID: id,
			}); err != nil {
				return err
			}
		}
	}

	for _, entry := range doc.Departments {
		params := entry.Params()
		if _, err := c.CreateDepartment.Handle(ctx, command.CreateDepartmentCommand{
			Name: params.Name, Location: params.Location, Budget: params.Budget,
		}); err != nil {
			return err
		}
		if len(entry.Professors) == 0 && len(entry.Courses) == 0 {
			continue
		}
		if _, err := c.AttachToDepartment.Handle(ctx, command.AttachToDepartmentCommand{
			Department: params.Name, ProfessorIDs: entry.Professors, CourseCodes: entry.Courses,
		}); err != nil {
			return err
		}
	}

	for _, slot := range doc.Schedule {
		if _, err := c.ScheduleCourse.Handle(ctx, command.ScheduleCourseCommand{
			CourseCode: slot.Course, Time: slot.Time, Room: slot.Room, Seats: slot.Seats,
		}); err != nil {
			return err
		}
	}

	for _, g := range doc.Grades {
		if _, err := c.RecordGrade.Handle(ctx, command.RecordGradeCommand{StudentID: g.StudentID, Grade: g.Grade}); err != nil {
			return err
		}
	}

	log.Info("roster imported",
		logger.Int("people", len(doc.People)),
		logger.Int("courses", len(doc.Courses)),
		logger.Int("departments", len(doc.Departments)),
		logger.Int("grades", len(doc.Grades)))

	if doc.University != "" {
		uni, err := app.Queries.UniversityReport.Handle(ctx, query.UniversityReportQuery{Name: doc.University})
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "University: %s, Departments: %d, Budget: $%s\n",
			uni.Name, len(uni.Departments), shared.FormatNumber(uni.TotalBudget))
	}

	payroll, err := app.Queries.Payroll.Handle(ctx, query.PayrollQuery{})
	if err != nil {
		return err
	}
	for _, e := range payroll.Entries {
		if err := printPayrollEntry(out, e); err != nil {
			return err
		}
	}
	fmt.Fprintf(out, "Total payroll: $%s\n", shared.FormatNumber(payroll.Total))
	return nil
}
