package department

// University aggregates departments by name.
type University struct {
	Name string

	departments []string
}

// NewUniversity creates a university without departments.
func NewUniversity(name string) *University {
	return &University{Name: name, departments: make([]string, 0)}
}

// AddDepartment appends a department handle.
func (u *University) AddDepartment(name string) {
	u.departments = append(u.departments, name)
}

// Departments returns the department handles in insertion order.
func (u *University) Departments() []string {
	return append([]string(nil), u.departments...)
}
