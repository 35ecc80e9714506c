package postgres

// Repositories bundles every repository over one connection.
type Repositories struct {
	People      *PersonRepository
	Courses     *CourseRepository
	Schedule    *ScheduleRepository
	Departments *DepartmentRepository
	Grades      *GradeRepository
}

// NewRepositories creates all repositories over conn.
func NewRepositories(conn *Connection) *Repositories {
	return &Repositories{
		People:      NewPersonRepository(conn),
		Courses:     NewCourseRepository(conn),
		Schedule:    NewScheduleRepository(conn),
		Departments: NewDepartmentRepository(conn),
		Grades:      NewGradeRepository(conn),
	}
}
