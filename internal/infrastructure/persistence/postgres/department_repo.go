package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/alem-hub/university-hub/internal/domain/department"
)

// DepartmentRepository implements department.Repository. Professor and
// course handles are stored in link tables ordered by position.
type DepartmentRepository struct {
	conn *Connection
}

var _ department.Repository = (*DepartmentRepository)(nil)

// NewDepartmentRepository creates a new DepartmentRepository.
func NewDepartmentRepository(conn *Connection) *DepartmentRepository {
	return &DepartmentRepository{conn: conn}
}

// Create stores a new department with its links.
func (r *DepartmentRepository) Create(ctx context.Context, d *department.Department) error {
	err := r.conn.WithTx(ctx, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx,
			`INSERT INTO departments (name, location, budget) VALUES ($1, $2, $3)`,
			d.Name, d.Location, d.Budget); err != nil {
			return err
		}
		return writeLinks(ctx, tx, d)
	})
	if err != nil {
		if IsUniqueViolation(err) {
			return department.ErrDepartmentAlreadyExists
		}
		return fmt.Errorf("failed to create department: %w", err)
	}
	return nil
}

// Update replaces the department row and rewrites its links.
func (r *DepartmentRepository) Update(ctx context.Context, d *department.Department) error {
	err := r.conn.WithTx(ctx, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx,
			`UPDATE departments SET location = $2, budget = $3 WHERE name = $1`,
			d.Name, d.Location, d.Budget)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return department.ErrDepartmentNotFound
		}
		if _, err := tx.Exec(ctx, `DELETE FROM department_professors WHERE department = $1`, d.Name); err != nil {
			return err
		}
		if _, err := tx.Exec(ctx, `DELETE FROM department_courses WHERE department = $1`, d.Name); err != nil {
			return err
		}
		return writeLinks(ctx, tx, d)
	})
	if err != nil {
		if errors.Is(err, department.ErrDepartmentNotFound) {
			return err
		}
		return fmt.Errorf("failed to update department: %w", err)
	}
	return nil
}

func writeLinks(ctx context.Context, q Querier, d *department.Department) error {
	for i, id := range d.ProfessorIDs() {
		if _, err := q.Exec(ctx,
			`INSERT INTO department_professors (department, position, professor_id) VALUES ($1, $2, $3)`,
			d.Name, i, id); err != nil {
			return err
		}
	}
	for i, code := range d.CourseCodes() {
		if _, err := q.Exec(ctx,
			`INSERT INTO department_courses (department, position, course_code) VALUES ($1, $2, $3)`,
			d.Name, i, code); err != nil {
			return err
		}
	}
	return nil
}

// GetByName returns a department by name.
func (r *DepartmentRepository) GetByName(ctx context.Context, name string) (*department.Department, error) {
	params := department.NewDepartmentParams{Name: name}
	err := r.conn.QueryRow(ctx,
		`SELECT location, budget FROM departments WHERE name = $1`, name,
	).Scan(&params.Location, &params.Budget)
	if err != nil {
		if IsNoRows(err) {
			return nil, department.ErrDepartmentNotFound
		}
		return nil, fmt.Errorf("failed to get department: %w", err)
	}

	professors, err := r.column(ctx,
		`SELECT professor_id FROM department_professors WHERE department = $1 ORDER BY position`, name)
	if err != nil {
		return nil, err
	}
	courses, err := r.column(ctx,
		`SELECT course_code FROM department_courses WHERE department = $1 ORDER BY position`, name)
	if err != nil {
		return nil, err
	}
	return department.Restore(params, professors, courses)
}

// List returns all departments in creation order.
func (r *DepartmentRepository) List(ctx context.Context) ([]*department.Department, error) {
	names, err := r.column(ctx, `SELECT name FROM departments ORDER BY seq`)
	if err != nil {
		return nil, err
	}

	out := make([]*department.Department, 0, len(names))
	for _, name := range names {
		d, err := r.GetByName(ctx, name)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, nil
}

func (r *DepartmentRepository) column(ctx context.Context, query string, args ...any) ([]string, error) {
	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query departments: %w", err)
	}
	values, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("failed to scan departments: %w", err)
	}
	return values, nil
}
