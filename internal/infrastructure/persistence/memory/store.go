// Package memory implements every repository in process memory.
//
// Records are cloned on the way in and on the way out, so a caller holding a
// record never sees writes it did not persist through Update. Insertion order
// is kept for List.
package memory

import (
	"context"
	"sync"

	"github.com/alem-hub/university-hub/internal/domain/course"
	"github.com/alem-hub/university-hub/internal/domain/department"
	"github.com/alem-hub/university-hub/internal/domain/grading"
	"github.com/alem-hub/university-hub/internal/domain/person"
)

// Store holds all records.
type Store struct {
	mu sync.RWMutex

	people      map[string]*person.Person
	personOrder []string

	courses     map[string]*course.Course
	courseOrder []string

	departments     map[string]*department.Department
	departmentOrder []string

	schedule *course.Schedule
	grades   *grading.GradeBook
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		people:      make(map[string]*person.Person),
		courses:     make(map[string]*course.Course),
		departments: make(map[string]*department.Department),
		schedule:    course.NewSchedule(),
		grades:      grading.NewGradeBook(),
	}
}

// People returns the person repository view.
func (s *Store) People() *PersonRepository { return &PersonRepository{s: s} }

// Courses returns the course repository view.
func (s *Store) Courses() *CourseRepository { return &CourseRepository{s: s} }

// Departments returns the department repository view.
func (s *Store) Departments() *DepartmentRepository { return &DepartmentRepository{s: s} }

// Schedule returns the schedule repository view.
func (s *Store) Schedule() *ScheduleRepository { return &ScheduleRepository{s: s} }

// Grades returns the grade ledger view.
func (s *Store) Grades() *GradeLedger { return &GradeLedger{s: s} }

// ══════════════════════════════════════════════════════════════════════════════
// PEOPLE
// ══════════════════════════════════════════════════════════════════════════════

// PersonRepository implements person.Repository.
type PersonRepository struct{ s *Store }

var _ person.Repository = (*PersonRepository)(nil)

// Create stores a new person.
func (r *PersonRepository) Create(ctx context.Context, p *person.Person) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.people[p.ID]; ok {
		return person.ErrPersonAlreadyExists
	}
	r.s.people[p.ID] = p.Clone()
	r.s.personOrder = append(r.s.personOrder, p.ID)
	return nil
}

// Update replaces an existing person.
func (r *PersonRepository) Update(ctx context.Context, p *person.Person) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.people[p.ID]; !ok {
		return person.ErrPersonNotFound
	}
	r.s.people[p.ID] = p.Clone()
	return nil
}

// GetByID returns a person by ID.
func (r *PersonRepository) GetByID(ctx context.Context, id string) (*person.Person, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	p, ok := r.s.people[id]
	if !ok {
		return nil, person.ErrPersonNotFound
	}
	return p.Clone(), nil
}

// List returns all people in registration order.
func (r *PersonRepository) List(ctx context.Context) ([]*person.Person, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]*person.Person, 0, len(r.s.personOrder))
	for _, id := range r.s.personOrder {
		out = append(out, r.s.people[id].Clone())
	}
	return out, nil
}

// ══════════════════════════════════════════════════════════════════════════════
// COURSES
// ══════════════════════════════════════════════════════════════════════════════

// CourseRepository implements course.Repository.
type CourseRepository struct{ s *Store }

var _ course.Repository = (*CourseRepository)(nil)

// Create stores a new course.
func (r *CourseRepository) Create(ctx context.Context, c *course.Course) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.courses[c.Code]; ok {
		return course.ErrCourseAlreadyExists
	}
	r.s.courses[c.Code] = c.Clone()
	r.s.courseOrder = append(r.s.courseOrder, c.Code)
	return nil
}

// Update replaces the course, instructor and roster included.
func (r *CourseRepository) Update(ctx context.Context, c *course.Course) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.courses[c.Code]; !ok {
		return course.ErrCourseNotFound
	}
	r.s.courses[c.Code] = c.Clone()
	return nil
}

// GetByCode returns a course by code.
func (r *CourseRepository) GetByCode(ctx context.Context, code string) (*course.Course, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	c, ok := r.s.courses[code]
	if !ok {
		return nil, course.ErrCourseNotFound
	}
	return c.Clone(), nil
}

// List returns all courses in creation order.
func (r *CourseRepository) List(ctx context.Context) ([]*course.Course, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]*course.Course, 0, len(r.s.courseOrder))
	for _, code := range r.s.courseOrder {
		out = append(out, r.s.courses[code].Clone())
	}
	return out, nil
}

// ══════════════════════════════════════════════════════════════════════════════
// DEPARTMENTS
// ══════════════════════════════════════════════════════════════════════════════

// DepartmentRepository implements department.Repository.
type DepartmentRepository struct{ s *Store }

var _ department.Repository = (*DepartmentRepository)(nil)

// Create stores a new department.
func (r *DepartmentRepository) Create(ctx context.Context, d *department.Department) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.departments[d.Name]; ok {
		return department.ErrDepartmentAlreadyExists
	}
	r.s.departments[d.Name] = d.Clone()
	r.s.departmentOrder = append(r.s.departmentOrder, d.Name)
	return nil
}

// Update replaces the department and its links.
func (r *DepartmentRepository) Update(ctx context.Context, d *department.Department) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.departments[d.Name]; !ok {
		return department.ErrDepartmentNotFound
	}
	r.s.departments[d.Name] = d.Clone()
	return nil
}

// GetByName returns a department by name.
func (r *DepartmentRepository) GetByName(ctx context.Context, name string) (*department.Department, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	d, ok := r.s.departments[name]
	if !ok {
		return nil, department.ErrDepartmentNotFound
	}
	return d.Clone(), nil
}

// List returns all departments in creation order.
func (r *DepartmentRepository) List(ctx context.Context) ([]*department.Department, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]*department.Department, 0, len(r.s.departmentOrder))
	for _, name := range r.s.departmentOrder {
		out = append(out, r.s.departments[name].Clone())
	}
	return out, nil
}

// ══════════════════════════════════════════════════════════════════════════════
// SCHEDULE AND GRADES
// ══════════════════════════════════════════════════════════════════════════════

// ScheduleRepository implements course.ScheduleRepository.
type ScheduleRepository struct{ s *Store }

var _ course.ScheduleRepository = (*ScheduleRepository)(nil)

// SaveSlot stores or replaces the slot of a course.
func (r *ScheduleRepository) SaveSlot(ctx context.Context, slot course.Slot) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.schedule.Put(slot)
	return nil
}

// GetSlot returns the slot of a course.
func (r *ScheduleRepository) GetSlot(ctx context.Context, courseCode string) (course.Slot, bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	slot, ok := r.s.schedule.Slot(courseCode)
	return slot, ok, nil
}

// ListSlots returns all slots ordered by course code.
func (r *ScheduleRepository) ListSlots(ctx context.Context) ([]course.Slot, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	return r.s.schedule.Slots(), nil
}

// GradeLedger implements grading.Repository.
type GradeLedger struct{ s *Store }

var _ grading.Repository = (*GradeLedger)(nil)

// SaveGrade upserts a grade.
func (l *GradeLedger) SaveGrade(ctx context.Context, entry grading.Entry) error {
	l.s.mu.Lock()
	defer l.s.mu.Unlock()

	return l.s.grades.AddGrade(entry.StudentID, entry.Grade)
}

// Load returns a copy of the grade book.
func (l *GradeLedger) Load(ctx context.Context) (*grading.GradeBook, error) {
	l.s.mu.RLock()
	defer l.s.mu.RUnlock()

	return grading.FromEntries(l.s.grades.Entries())
}
