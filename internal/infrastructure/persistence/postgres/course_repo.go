package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/alem-hub/university-hub/internal/domain/course"
	"github.com/alem-hub/university-hub/internal/domain/person"
)

// CourseRepository implements course.Repository. The roster lives in
// course_roster, one row per entry, ordered by position.
type CourseRepository struct {
	conn *Connection
}

var _ course.Repository = (*CourseRepository)(nil)

// NewCourseRepository creates a new CourseRepository.
func NewCourseRepository(conn *Connection) *CourseRepository {
	return &CourseRepository{conn: conn}
}

// Create stores a new course with its roster.
func (r *CourseRepository) Create(ctx context.Context, c *course.Course) error {
	err := r.conn.WithTx(ctx, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx, `
			INSERT INTO courses (code, title, credits, description, capacity, instructor_id)
			VALUES ($1, $2, $3, $4, $5, NULLIF($6, ''))
		`, c.Code, c.Title, c.Credits, c.Description, c.Capacity(), c.InstructorID)
		if err != nil {
			return err
		}
		return writeRoster(ctx, tx, c)
	})
	if err != nil {
		if IsUniqueViolation(err) {
			return course.ErrCourseAlreadyExists
		}
		if IsForeignKeyViolation(err) {
			return person.ErrPersonNotFound
		}
		return fmt.Errorf("failed to create course: %w", err)
	}
	return nil
}

// Update replaces the course row and rewrites its roster.
func (r *CourseRepository) Update(ctx context.Context, c *course.Course) error {
	err := r.conn.WithTx(ctx, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, `
			UPDATE courses SET title = $2, credits = $3, description = $4, capacity = $5,
				instructor_id = NULLIF($6, '')
			WHERE code = $1
		`, c.Code, c.Title, c.Credits, c.Description, c.Capacity(), c.InstructorID)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return course.ErrCourseNotFound
		}
		if _, err := tx.Exec(ctx, `DELETE FROM course_roster WHERE course_code = $1`, c.Code); err != nil {
			return err
		}
		return writeRoster(ctx, tx, c)
	})
	if err != nil {
		if errors.Is(err, course.ErrCourseNotFound) {
			return err
		}
		if IsForeignKeyViolation(err) {
			return person.ErrPersonNotFound
		}
		return fmt.Errorf("failed to update course: %w", err)
	}
	return nil
}

func writeRoster(ctx context.Context, q Querier, c *course.Course) error {
	for i, id := range c.Students() {
		if _, err := q.Exec(ctx,
			`INSERT INTO course_roster (course_code, position, student_id) VALUES ($1, $2, $3)`,
			c.Code, i, id); err != nil {
			return err
		}
	}
	return nil
}

// GetByCode returns a course by code.
func (r *CourseRepository) GetByCode(ctx context.Context, code string) (*course.Course, error) {
	var (
		params       course.NewCourseParams
		instructorID *string
	)
	err := r.conn.QueryRow(ctx, `
		SELECT code, title, credits, description, capacity, instructor_id
		FROM courses WHERE code = $1
	`, code).Scan(&params.Code, &params.Title, &params.Credits, &params.Description, &params.Capacity, &instructorID)
	if err != nil {
		if IsNoRows(err) {
			return nil, course.ErrCourseNotFound
		}
		return nil, fmt.Errorf("failed to get course: %w", err)
	}

	students, err := r.roster(ctx, code)
	if err != nil {
		return nil, err
	}
	return course.Restore(params, deref(instructorID), students)
}

// List returns all courses in creation order.
func (r *CourseRepository) List(ctx context.Context) ([]*course.Course, error) {
	rows, err := r.conn.Query(ctx, `SELECT code FROM courses ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("failed to list courses: %w", err)
	}
	codes, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("failed to scan course codes: %w", err)
	}

	out := make([]*course.Course, 0, len(codes))
	for _, code := range codes {
		c, err := r.GetByCode(ctx, code)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

func (r *CourseRepository) roster(ctx context.Context, code string) ([]string, error) {
	rows, err := r.conn.Query(ctx,
		`SELECT student_id FROM course_roster WHERE course_code = $1 ORDER BY position`, code)
	if err != nil {
		return nil, fmt.Errorf("failed to load roster: %w", err)
	}
	students, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("failed to scan roster: %w", err)
	}
	return students, nil
}

// ══════════════════════════════════════════════════════════════════════════════
// SCHEDULE
// ══════════════════════════════════════════════════════════════════════════════

// ScheduleRepository implements course.ScheduleRepository.
type ScheduleRepository struct {
	conn *Connection
}

var _ course.ScheduleRepository = (*ScheduleRepository)(nil)

// NewScheduleRepository creates a new ScheduleRepository.
func NewScheduleRepository(conn *Connection) *ScheduleRepository {
	return &ScheduleRepository{conn: conn}
}

// SaveSlot upserts the slot of a course.
func (r *ScheduleRepository) SaveSlot(ctx context.Context, slot course.Slot) error {
	_, err := r.conn.Exec(ctx, `
		INSERT INTO course_schedule (course_code, time_slot, room) VALUES ($1, $2, $3)
		ON CONFLICT (course_code) DO UPDATE SET time_slot = EXCLUDED.time_slot, room = EXCLUDED.room
	`, slot.CourseCode, slot.Time, slot.Room)
	if err != nil {
		return fmt.Errorf("failed to save slot: %w", err)
	}
	return nil
}

// GetSlot returns the slot of a course.
func (r *ScheduleRepository) GetSlot(ctx context.Context, courseCode string) (course.Slot, bool, error) {
	slot := course.Slot{CourseCode: courseCode}
	err := r.conn.QueryRow(ctx,
		`SELECT time_slot, room FROM course_schedule WHERE course_code = $1`, courseCode,
	).Scan(&slot.Time, &slot.Room)
	if err != nil {
		if IsNoRows(err) {
			return course.Slot{}, false, nil
		}
		return course.Slot{}, false, fmt.Errorf("failed to get slot: %w", err)
	}
	return slot, true, nil
}

// ListSlots returns all slots ordered by course code.
func (r *ScheduleRepository) ListSlots(ctx context.Context) ([]course.Slot, error) {
	rows, err := r.conn.Query(ctx,
		`SELECT course_code, time_slot, room FROM course_schedule ORDER BY course_code`)
	if err != nil {
		return nil, fmt.Errorf("failed to list slots: %w", err)
	}
	defer rows.Close()

	out := make([]course.Slot, 0)
	for rows.Next() {
		var s course.Slot
		if err := rows.Scan(&s.CourseCode, &s.Time, &s.Room); err != nil {
			return nil, fmt.Errorf("failed to scan slot: %w", err)
		}
		out = append(out, s)
	}
	return out, rows.Err()
}
