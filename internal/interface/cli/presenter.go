package cli

import (
	"fmt"
	"io"

	"github.com/alem-hub/university-hub/internal/application/query"
	"github.com/alem-hub/university-hub/internal/domain/shared"
)

const separator = "------------------"

// printPayrollEntry writes the details block and payment of one person. A
// payment failure is returned after the details are written.
func printPayrollEntry(w io.Writer, e query.PayrollEntryDTO) error {
	fmt.Fprint(w, e.Details)
	if e.Err != nil {
		return e.Err
	}
	fmt.Fprintf(w, "Payment: $%s\n", shared.FormatNumber(e.Payment))
	fmt.Fprintln(w, separator)
	return nil
}

func printCourseReport(w io.Writer, r *query.CourseReportDTO) {
	fmt.Fprintln(w, r.Summary)
	if r.InstructorName != "" {
		fmt.Fprintf(w, "Instructor: %s\n", r.InstructorName)
	}
	if r.Schedule != "" {
		fmt.Fprintln(w, r.Schedule)
	}
}

func printGradeSummary(w io.Writer, g *query.GradeSummaryDTO) {
	fmt.Fprintf(w, "Average Grade: %s\n", shared.FormatNumber(g.Average))
	if g.HasHighest {
		fmt.Fprintf(w, "Highest Grade: %s\n", shared.FormatNumber(g.Highest))
	} else {
		fmt.Fprintln(w, "Highest Grade: none")
	}
	for _, id := range g.Failing {
		fmt.Fprintf(w, "Failing: %s\n", id)
	}
}

func printDepartmentReport(w io.Writer, d *query.DepartmentReportDTO) {
	fmt.Fprintln(w, d.Summary)
}
