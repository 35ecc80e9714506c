package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/alem-hub/university-hub/internal/domain/person"
)

// PersonRepository implements person.Repository on the people table. The
// variant is flattened into nullable family columns.
type PersonRepository struct {
	conn *Connection
}

var _ person.Repository = (*PersonRepository)(nil)

// NewPersonRepository creates a new PersonRepository.
func NewPersonRepository(conn *Connection) *PersonRepository {
	return &PersonRepository{conn: conn}
}

const personColumns = `
	id, kind, name, age, contact,
	enrollment_date, program, gpa, major, minor, expected_graduation,
	research_topic, advisor, thesis_title,
	department, specialization, hire_date`

// personRow is the flat column set of one person.
type personRow struct {
	id, kind, name, contact string
	age                     int

	enrollmentDate, program          *string
	gpa                              *float64
	major, minor, expectedGraduation *string

	researchTopic, advisor, thesisTitle  *string
	department, specialization, hireDate *string
}

func rowFromPerson(p *person.Person) personRow {
	r := personRow{id: p.ID, kind: string(p.Kind), name: p.Name, age: p.Age, contact: p.Contact}
	if sp := p.Student; sp != nil {
		r.enrollmentDate, r.program, r.gpa = &sp.EnrollmentDate, &sp.Program, &sp.GPA
		if ug := sp.Undergraduate; ug != nil {
			r.major, r.minor, r.expectedGraduation = &ug.Major, &ug.Minor, &ug.ExpectedGraduation
		}
		if g := sp.Graduate; g != nil {
			r.researchTopic, r.advisor, r.thesisTitle = &g.ResearchTopic, &g.Advisor, &g.ThesisTitle
		}
	}
	if pp := p.Professor; pp != nil {
		r.department, r.specialization, r.hireDate = &pp.Department, &pp.Specialization, &pp.HireDate
	}
	return r
}

func (r personRow) args() []any {
	return []any{
		r.id, r.kind, r.name, r.age, r.contact,
		r.enrollmentDate, r.program, r.gpa, r.major, r.minor, r.expectedGraduation,
		r.researchTopic, r.advisor, r.thesisTitle,
		r.department, r.specialization, r.hireDate,
	}
}

func (r personRow) toPerson() (*person.Person, error) {
	params := person.Params{
		Identity: person.Identity{Name: r.name, Age: r.age, ID: r.id, Contact: r.contact},
		Kind:     person.Kind(r.kind),
	}

	switch params.Kind.Family() {
	case person.FamilyStudent:
		sp := &person.StudentProfile{EnrollmentDate: deref(r.enrollmentDate), Program: deref(r.program)}
		if r.gpa != nil {
			sp.GPA = *r.gpa
		}
		switch params.Kind {
		case person.KindUndergraduate:
			sp.Undergraduate = &person.UndergraduateProfile{
				Major: deref(r.major), Minor: deref(r.minor), ExpectedGraduation: deref(r.expectedGraduation),
			}
		case person.KindGraduate:
			sp.Graduate = &person.GraduateProfile{
				ResearchTopic: deref(r.researchTopic), Advisor: deref(r.advisor), ThesisTitle: deref(r.thesisTitle),
			}
		}
		params.Student = sp
	case person.FamilyProfessor:
		params.Professor = &person.ProfessorProfile{
			Department: deref(r.department), Specialization: deref(r.specialization), HireDate: deref(r.hireDate),
		}
	}

	p, err := person.New(params)
	if err != nil {
		return nil, fmt.Errorf("corrupt person row %s: %w", r.id, err)
	}
	return p, nil
}

// Create stores a new person.
func (r *PersonRepository) Create(ctx context.Context, p *person.Person) error {
	query := `
		INSERT INTO people (` + personColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
	`

	if _, err := r.conn.Exec(ctx, query, rowFromPerson(p).args()...); err != nil {
		if IsUniqueViolation(err) {
			return person.ErrPersonAlreadyExists
		}
		return fmt.Errorf("failed to create person: %w", err)
	}
	return nil
}

// Update replaces the mutable columns of an existing person.
func (r *PersonRepository) Update(ctx context.Context, p *person.Person) error {
	query := `
		UPDATE people SET
			kind = $2, name = $3, age = $4, contact = $5,
			enrollment_date = $6, program = $7, gpa = $8, major = $9, minor = $10, expected_graduation = $11,
			research_topic = $12, advisor = $13, thesis_title = $14,
			department = $15, specialization = $16, hire_date = $17,
			updated_at = NOW()
		WHERE id = $1
	`

	tag, err := r.conn.Exec(ctx, query, rowFromPerson(p).args()...)
	if err != nil {
		return fmt.Errorf("failed to update person: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return person.ErrPersonNotFound
	}
	return nil
}

// GetByID returns a person by ID.
func (r *PersonRepository) GetByID(ctx context.Context, id string) (*person.Person, error) {
	query := `SELECT ` + personColumns + ` FROM people WHERE id = $1`

	p, err := scanPerson(r.conn.QueryRow(ctx, query, id))
	if err != nil {
		if IsNoRows(err) {
			return nil, person.ErrPersonNotFound
		}
		return nil, err
	}
	return p, nil
}

// List returns all people in registration order.
func (r *PersonRepository) List(ctx context.Context) ([]*person.Person, error) {
	rows, err := r.conn.Query(ctx, `SELECT `+personColumns+` FROM people ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("failed to list people: %w", err)
	}
	defer rows.Close()

	out := make([]*person.Person, 0)
	for rows.Next() {
		p, err := scanPerson(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func scanPerson(row pgx.Row) (*person.Person, error) {
	var r personRow
	err := row.Scan(
		&r.id, &r.kind, &r.name, &r.age, &r.contact,
		&r.enrollmentDate, &r.program, &r.gpa, &r.major, &r.minor, &r.expectedGraduation,
		&r.researchTopic, &r.advisor, &r.thesisTitle,
		&r.department, &r.specialization, &r.hireDate,
	)
	if err != nil {
		if IsNoRows(err) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to scan person: %w", err)
	}
	return r.toPerson()
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
