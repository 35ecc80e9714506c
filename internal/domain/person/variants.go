package person

import (
	"fmt"
	"strings"

	"github.com/alem-hub/university-hub/internal/domain/shared"
)

// variant is one row of the dispatch table.
type variant struct {
	family  Family
	payment float64

	// checksGPA rejects payment for a GPA outside 0.0-4.0.
	checksGPA bool

	// details appends the subtype line; nil when the kind adds nothing.
	details func(p *Person, b *strings.Builder)
}

// Tuition tiers for students, salary tiers for professors.
var variants = map[Kind]variant{
	KindStudent:            {family: FamilyStudent, payment: 10000, checksGPA: true},
	KindUndergraduate:      {family: FamilyStudent, payment: 12000, details: undergraduateLine},
	KindGraduate:           {family: FamilyStudent, payment: 8000, details: graduateLine},
	KindAssistantProfessor: {family: FamilyProfessor, payment: 50000},
	KindAssociateProfessor: {family: FamilyProfessor, payment: 65000},
	KindFullProfessor:      {family: FamilyProfessor, payment: 80000},
}

// DisplayDetails renders the record: the person line, then the family line,
// then the subtype line. Every line ends with a newline.
func (p *Person) DisplayDetails() string {
	var b strings.Builder

	fmt.Fprintf(&b, "Name: %s, Age: %d, ID: %s, Contact: %s\n", p.Name, p.Age, p.ID, p.Contact)

	switch {
	case p.IsStudent() && p.Student != nil:
		fmt.Fprintf(&b, "Program: %s, GPA: %s\n", p.Student.Program, shared.FormatNumber(p.Student.GPA))
	case p.IsProfessor() && p.Professor != nil:
		fmt.Fprintf(&b, "Dept: %s, Specialization: %s, Hire Date: %s\n",
			p.Professor.Department, p.Professor.Specialization, p.Professor.HireDate)
	}

	if v, ok := variants[p.Kind]; ok && v.details != nil {
		v.details(p, &b)
	}

	return b.String()
}

func undergraduateLine(p *Person, b *strings.Builder) {
	if p.Student == nil || p.Student.Undergraduate == nil {
		return
	}
	ug := p.Student.Undergraduate
	fmt.Fprintf(b, "Major: %s, Minor: %s, Grad Date: %s\n", ug.Major, ug.Minor, ug.ExpectedGraduation)
}

func graduateLine(p *Person, b *strings.Builder) {
	if p.Student == nil || p.Student.Graduate == nil {
		return
	}
	g := p.Student.Graduate
	fmt.Fprintf(b, "Research: %s, Advisor: %s, Thesis: %s\n", g.ResearchTopic, g.Advisor, g.ThesisTitle)
}

// CalculatePayment returns the tuition or salary of the variant.
// A plain student with a GPA outside 0.0-4.0 gets a payment error; the
// undergraduate and graduate tiers are flat.
func (p *Person) CalculatePayment() (float64, error) {
	v, ok := variants[p.Kind]
	if !ok {
		return 0, shared.NewPaymentError(domainName, "CalculatePayment", shared.ErrWrongVariant,
			"Unknown person kind: "+string(p.Kind))
	}

	if v.checksGPA {
		if p.Student == nil || !validGPA(p.Student.GPA) {
			return 0, shared.NewPaymentError(domainName, "CalculatePayment", shared.ErrValueOutOfRange,
				"Invalid GPA for payment calculation")
		}
	}

	return v.payment, nil
}

// LogTAHours reports teaching-assistant hours for a graduate student.
// Nothing is stored.
func (p *Person) LogTAHours(hours float64) (string, error) {
	if p.Kind != KindGraduate {
		return "", shared.NewDomainError(domainName, "LogTAHours", shared.ErrWrongVariant,
			"TAship is only available to graduate students")
	}
	if hours < 0 {
		return "", shared.NewDomainError(domainName, "LogTAHours", shared.ErrValueOutOfRange,
			"TAship hours cannot be negative")
	}
	return fmt.Sprintf("TAship: %s hrs logged.", shared.FormatNumber(hours)), nil
}
