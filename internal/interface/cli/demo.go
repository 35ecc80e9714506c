package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/alem-hub/university-hub/internal/application/command"
	"github.com/alem-hub/university-hub/internal/application/query"
	"github.com/alem-hub/university-hub/internal/domain/person"
	"github.com/alem-hub/university-hub/pkg/logger"
)

// ══════════════════════════════════════════════════════════════════════════════
// SCRIPTED DEMO
// Builds the sample university and prints its state. The first domain error
// stops the script.
// ══════════════════════════════════════════════════════════════════════════════

const demoCourse = "CS101"

func demoPeople() []person.Params {
	return []person.Params{
		{
			Identity: person.Identity{Name: "Alice", Age: 20, ID: "S123", Contact: "alice@email.com"},
			Kind:     person.KindUndergraduate,
			Student: &person.StudentProfile{
				EnrollmentDate: "2021-09-01", Program: "CS", GPA: 3.5,
				Undergraduate: &person.UndergraduateProfile{Major: "CS", Minor: "Math", ExpectedGraduation: "2025"},
			},
		},
		{
			Identity: person.Identity{Name: "Bob", Age: 25, ID: "S124", Contact: "bob@email.com"},
			Kind:     person.KindGraduate,
			Student: &person.StudentProfile{
				EnrollmentDate: "2019-09-01", Program: "Physics", GPA: 3.8,
				Graduate: &person.GraduateProfile{ResearchTopic: "Quantum", Advisor: "Dr. Smith", ThesisTitle: "Dark Matter"},
			},
		},
		{
			Identity:  person.Identity{Name: "Dr. Jane", Age: 40, ID: "P123", Contact: "jane@email.com"},
			Kind:      person.KindAssistantProfessor,
			Professor: &person.ProfessorProfile{Department: "Science", Specialization: "Biology", HireDate: "2015"},
		},
		{
			Identity:  person.Identity{Name: "Dr. Smith", Age: 45, ID: "P124", Contact: "smith@email.com"},
			Kind:      person.KindAssociateProfessor,
			Professor: &person.ProfessorProfile{Department: "Physics", Specialization: "Quantum Mechanics", HireDate: "2010"},
		},
		{
			Identity:  person.Identity{Name: "Dr. Lee", Age: 50, ID: "P125", Contact: "lee@email.com"},
			Kind:      person.KindFullProfessor,
			Professor: &person.ProfessorProfile{Department: "CS", Specialization: "AI", HireDate: "2005"},
		},
	}
}

// RunDemo runs the scripted sequence against app and writes to out.
func RunDemo(ctx context.Context, app *App, out io.Writer) error {
	c, q := app.Commands, app.Queries
	ctx = logger.WithContext(ctx, app.Log.WithCorrelationID(command.NewCorrelationID()))

	fmt.Fprintln(out, "University System Initialized.")

	for _, p := range demoPeople() {
		if _, err := c.RegisterPerson.Handle(ctx, command.RegisterPersonCommand{Person: p}); err != nil {
			return err
		}
	}

	payroll, err := q.Payroll.Handle(ctx, query.PayrollQuery{})
	if err != nil {
		return err
	}
	for _, e := range payroll.Entries {
		if err := printPayrollEntry(out, e); err != nil {
			return err
		}
	}

	line, err := c.LogTAHours.Handle(ctx, command.LogTAHoursCommand{StudentID: "S124", Hours: 10})
	if err != nil {
		return err
	}
	fmt.Fprintln(out, line)

	if _, err := c.CreateCourse.Handle(ctx, command.CreateCourseCommand{
		Code: demoCourse, Title: "Intro to CS", Credits: 3, Description: "Basics of programming",
	}); err != nil {
		return err
	}
	if _, err := c.AssignInstructor.Handle(ctx, command.AssignInstructorCommand{
		CourseCode: demoCourse, ProfessorID: "P123",
	}); err != nil {
		return err
	}
	for _, id := range []string{"S123", "S124"} {
		if _, err := c.EnrollStudent.Handle(ctx, command.EnrollStudentCommand{CourseCode: demoCourse, StudentID: id}); err != nil {
			return err
		}
	}
	if _, err := c.ScheduleCourse.Handle(ctx, command.ScheduleCourseCommand{
		CourseCode: demoCourse, Time: "Mon 10:00", Room: "R101",
	}); err != nil {
		return err
	}

	report, err := q.CourseReport.Handle(ctx, query.CourseReportQuery{CourseCode: demoCourse})
	if err != nil {
		return err
	}
	printCourseReport(out, report)

	if _, err := c.CreateDepartment.Handle(ctx, command.CreateDepartmentCommand{
		Name: "Computer Science", Location: "Building A", Budget: 100000,
	}); err != nil {
		return err
	}
	if _, err := c.AttachToDepartment.Handle(ctx, command.AttachToDepartmentCommand{
		Department:   "Computer Science",
		ProfessorIDs: []string{"P123", "P125"},
		CourseCodes:  []string{demoCourse},
	}); err != nil {
		return err
	}
	dept, err := q.DepartmentReport.Handle(ctx, query.DepartmentReportQuery{Name: "Computer Science"})
	if err != nil {
		return err
	}
	printDepartmentReport(out, dept)

	uni, err := q.UniversityReport.Handle(ctx, query.UniversityReportQuery{Name: app.Config.App.Name})
	if err != nil {
		return err
	}
	app.Log.Debug("university assembled", logger.String("university", uni.Name),
		logger.RecordCount(len(uni.Departments)))

	for _, g := range []command.RecordGradeCommand{
		{StudentID: "S123", Grade: 90},
		{StudentID: "S124", Grade: 45},
	} {
		if _, err := c.RecordGrade.Handle(ctx, g); err != nil {
			return err
		}
	}
	grades, err := q.GradeSummary.Handle(ctx, query.GradeSummaryQuery{PassGrade: app.Config.Domain.PassGrade})
	if err != nil {
		return err
	}
	printGradeSummary(out, grades)

	count, err := q.EnrollmentCount.Handle(ctx, query.EnrollmentCountQuery{CourseCode: demoCourse})
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Enrollment in %s: %d\n", demoCourse, count)

	if _, err := c.DropStudent.Handle(ctx, command.DropStudentCommand{CourseCode: demoCourse, StudentID: "S124"}); err != nil {
		return err
	}
	count, err = q.EnrollmentCount.Handle(ctx, query.EnrollmentCountQuery{CourseCode: demoCourse})
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Enrollment in %s after drop: %d\n", demoCourse, count)

	return nil
}
