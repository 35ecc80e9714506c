// Package person contains the people of the university: students and
// professors. A Person is a closed tagged variant: Kind selects the payment
// schedule and the details rendering from a fixed dispatch table.
package person

import (
	"github.com/alem-hub/university-hub/internal/domain/shared"
)

// ══════════════════════════════════════════════════════════════════════════════
// ENUMS
// ══════════════════════════════════════════════════════════════════════════════

// Kind is the concrete variant of a person record.
type Kind string

const (
	// KindStudent is a plain student without a degree level.
	KindStudent Kind = "student"
	// KindUndergraduate is an undergraduate student.
	KindUndergraduate Kind = "undergraduate"
	// KindGraduate is a graduate student.
	KindGraduate Kind = "graduate"
	// KindAssistantProfessor is the entry professor rank.
	KindAssistantProfessor Kind = "assistant_professor"
	// KindAssociateProfessor is the middle professor rank.
	KindAssociateProfessor Kind = "associate_professor"
	// KindFullProfessor is the senior professor rank.
	KindFullProfessor Kind = "full_professor"
)

// IsValid reports whether the kind is one of the known variants.
func (k Kind) IsValid() bool {
	_, ok := variants[k]
	return ok
}

// Family returns the family the kind belongs to.
func (k Kind) Family() Family {
	if v, ok := variants[k]; ok {
		return v.family
	}
	return FamilyUnknown
}

// Family groups kinds that share a profile.
type Family string

const (
	FamilyUnknown   Family = ""
	FamilyStudent   Family = "student"
	FamilyProfessor Family = "professor"
)

// ══════════════════════════════════════════════════════════════════════════════
// MAIN ENTITY: PERSON
// ══════════════════════════════════════════════════════════════════════════════

// Identity is the data every person carries.
type Identity struct {
	Name    string `validate:"required" json:"name" yaml:"name"`
	Age     int    `validate:"min=1,max=120" json:"age" yaml:"age"`
	ID      string `validate:"required" json:"id" yaml:"id"`
	Contact string `validate:"contains=@" json:"contact" yaml:"contact"`
}

// StudentProfile holds the student part of the record.
type StudentProfile struct {
	EnrollmentDate string  `json:"enrollment_date" yaml:"enrollment_date"`
	Program        string  `json:"program" yaml:"program"`
	GPA            float64 `json:"gpa" yaml:"gpa"`

	// Exactly one of these is set for undergraduates and graduates.
	Undergraduate *UndergraduateProfile `json:"undergraduate,omitempty" yaml:"undergraduate,omitempty"`
	Graduate      *GraduateProfile      `json:"graduate,omitempty" yaml:"graduate,omitempty"`
}

// UndergraduateProfile holds undergraduate-only fields.
type UndergraduateProfile struct {
	Major              string `json:"major" yaml:"major"`
	Minor              string `json:"minor" yaml:"minor"`
	ExpectedGraduation string `json:"expected_graduation" yaml:"expected_graduation"`
}

// GraduateProfile holds graduate-only fields.
type GraduateProfile struct {
	ResearchTopic string `json:"research_topic" yaml:"research_topic"`
	Advisor       string `json:"advisor" yaml:"advisor"`
	ThesisTitle   string `json:"thesis_title" yaml:"thesis_title"`
}

// ProfessorProfile holds the professor part of the record.
type ProfessorProfile struct {
	Department     string `json:"department" yaml:"department"`
	Specialization string `json:"specialization" yaml:"specialization"`
	HireDate       string `json:"hire_date" yaml:"hire_date"`
}

// Person is a student or a professor. ID and Kind are fixed at construction;
// Name, Age, Contact and GPA change only through the validated setters.
type Person struct {
	Identity

	Kind Kind

	// Student is non-nil for the student family.
	Student *StudentProfile

	// Professor is non-nil for the professor family.
	Professor *ProfessorProfile
}

// ══════════════════════════════════════════════════════════════════════════════
// FACTORY
// ══════════════════════════════════════════════════════════════════════════════

// Params contains everything needed to build any variant.
type Params struct {
	Identity
	Kind      Kind
	Student   *StudentProfile
	Professor *ProfessorProfile
}

// New validates params and builds a person. No partially built person is
// returned on failure.
func New(params Params) (*Person, error) {
	if err := validateIdentity("New", params.Identity); err != nil {
		return nil, err
	}

	v, ok := variants[params.Kind]
	if !ok {
		return nil, shared.NewDomainError(domainName, "New", shared.ErrInvalidInput,
			"Unknown person kind: "+string(params.Kind))
	}

	p := &Person{Identity: params.Identity, Kind: params.Kind}

	switch v.family {
	case FamilyStudent:
		if params.Student == nil {
			return nil, shared.NewDomainError(domainName, "New", shared.ErrInvalidInput,
				"Student profile is required for "+string(params.Kind))
		}
		sp := params.Student.clone()
		switch params.Kind {
		case KindUndergraduate:
			if sp.Undergraduate == nil {
				return nil, shared.NewDomainError(domainName, "New", shared.ErrInvalidInput,
					"Undergraduate profile is required")
			}
			sp.Graduate = nil
		case KindGraduate:
			if sp.Graduate == nil {
				return nil, shared.NewDomainError(domainName, "New", shared.ErrInvalidInput,
					"Graduate profile is required")
			}
			sp.Undergraduate = nil
		default:
			sp.Undergraduate, sp.Graduate = nil, nil
		}
		p.Student = sp
	case FamilyProfessor:
		if params.Professor == nil {
			return nil, shared.NewDomainError(domainName, "New", shared.ErrInvalidInput,
				"Professor profile is required for "+string(params.Kind))
		}
		prof := *params.Professor
		p.Professor = &prof
	}

	return p, nil
}

// StudentParams are the common student constructor arguments.
type StudentParams struct {
	Identity
	EnrollmentDate string
	Program        string
	GPA            float64
}

func (sp StudentParams) profile() *StudentProfile {
	return &StudentProfile{EnrollmentDate: sp.EnrollmentDate, Program: sp.Program, GPA: sp.GPA}
}

// NewStudent creates a plain student.
func NewStudent(params StudentParams) (*Person, error) {
	return New(Params{Identity: params.Identity, Kind: KindStudent, Student: params.profile()})
}

// NewUndergraduate creates an undergraduate student.
func NewUndergraduate(params StudentParams, ug UndergraduateProfile) (*Person, error) {
	sp := params.profile()
	sp.Undergraduate = &ug
	return New(Params{Identity: params.Identity, Kind: KindUndergraduate, Student: sp})
}

// NewGraduate creates a graduate student.
func NewGraduate(params StudentParams, g GraduateProfile) (*Person, error) {
	sp := params.profile()
	sp.Graduate = &g
	return New(Params{Identity: params.Identity, Kind: KindGraduate, Student: sp})
}

// ProfessorParams are the professor constructor arguments.
type ProfessorParams struct {
	Identity
	Department     string
	Specialization string
	HireDate       string
}

func newProfessor(kind Kind, params ProfessorParams) (*Person, error) {
	return New(Params{
		Identity: params.Identity,
		Kind:     kind,
		Professor: &ProfessorProfile{
			Department:     params.Department,
			Specialization: params.Specialization,
			HireDate:       params.HireDate,
		},
	})
}

// NewAssistantProfessor creates an assistant professor.
func NewAssistantProfessor(params ProfessorParams) (*Person, error) {
	return newProfessor(KindAssistantProfessor, params)
}

// NewAssociateProfessor creates an associate professor.
func NewAssociateProfessor(params ProfessorParams) (*Person, error) {
	return newProfessor(KindAssociateProfessor, params)
}

// NewFullProfessor creates a full professor.
func NewFullProfessor(params ProfessorParams) (*Person, error) {
	return newProfessor(KindFullProfessor, params)
}

// ══════════════════════════════════════════════════════════════════════════════
// DOMAIN METHODS
// ══════════════════════════════════════════════════════════════════════════════

// Family returns the family of the person's kind.
func (p *Person) Family() Family {
	return p.Kind.Family()
}

// IsStudent reports whether the person belongs to the student family.
func (p *Person) IsStudent() bool {
	return p.Family() == FamilyStudent
}

// IsProfessor reports whether the person belongs to the professor family.
func (p *Person) IsProfessor() bool {
	return p.Family() == FamilyProfessor
}

// SetName replaces the name.
func (p *Person) SetName(name string) error {
	id := p.Identity
	id.Name = name
	if err := validateIdentity("SetName", id); err != nil {
		return err
	}
	p.Name = name
	return nil
}

// SetAge replaces the age.
func (p *Person) SetAge(age int) error {
	id := p.Identity
	id.Age = age
	if err := validateIdentity("SetAge", id); err != nil {
		return err
	}
	p.Age = age
	return nil
}

// SetContact replaces the contact.
func (p *Person) SetContact(contact string) error {
	id := p.Identity
	id.Contact = contact
	if err := validateIdentity("SetContact", id); err != nil {
		return err
	}
	p.Contact = contact
	return nil
}

// SetGPA replaces the GPA of a student.
func (p *Person) SetGPA(gpa float64) error {
	if !p.IsStudent() {
		return shared.NewDomainError(domainName, "SetGPA", shared.ErrWrongVariant,
			"GPA is only defined for students")
	}
	if !validGPA(gpa) {
		return shared.NewDomainError(domainName, "SetGPA", shared.ErrValueOutOfRange,
			"GPA must be between 0.0 and 4.0")
	}
	p.Student.GPA = gpa
	return nil
}

// GPA returns the student's GPA and false for professors.
func (p *Person) GPA() (float64, bool) {
	if !p.IsStudent() {
		return 0, false
	}
	return p.Student.GPA, true
}

// Clone creates a deep copy of the person.
func (p *Person) Clone() *Person {
	if p == nil {
		return nil
	}

	clone := *p
	if p.Student != nil {
		clone.Student = p.Student.clone()
	}
	if p.Professor != nil {
		prof := *p.Professor
		clone.Professor = &prof
	}
	return &clone
}

func (sp *StudentProfile) clone() *StudentProfile {
	c := *sp
	if sp.Undergraduate != nil {
		ug := *sp.Undergraduate
		c.Undergraduate = &ug
	}
	if sp.Graduate != nil {
		g := *sp.Graduate
		c.Graduate = &g
	}
	return &c
}

func validGPA(gpa float64) bool {
	return gpa >= 0.0 && gpa <= 4.0
}

const domainName = "person"

// ══════════════════════════════════════════════════════════════════════════════
// DOMAIN ERRORS
// ══════════════════════════════════════════════════════════════════════════════

var (
	// ErrPersonNotFound is returned by repositories for unknown IDs.
	ErrPersonNotFound = shared.NewDomainError(domainName, "Find", shared.ErrNotFound, "person not found")

	// ErrPersonAlreadyExists is returned when an ID is registered twice.
	ErrPersonAlreadyExists = shared.NewDomainError(domainName, "Create", shared.ErrAlreadyExists, "person already exists")
)
