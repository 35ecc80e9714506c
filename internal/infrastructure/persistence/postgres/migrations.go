package postgres

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/jackc/pgx/v5"
)

// Migration is one versioned schema change.
type Migration struct {
	Version   int
	Name      string
	UpSQL     string
	DownSQL   string
	AppliedAt time.Time
	IsApplied bool
}

// Migrations returns the embedded schema history in version order.
func Migrations() []Migration {
	return []Migration{
		{Version: 1, Name: "create_people", UpSQL: migration001Up, DownSQL: migration001Down},
		{Version: 2, Name: "create_courses", UpSQL: migration002Up, DownSQL: migration002Down},
		{Version: 3, Name: "create_departments", UpSQL: migration003Up, DownSQL: migration003Down},
		{Version: 4, Name: "create_grades", UpSQL: migration004Up, DownSQL: migration004Down},
	}
}

// Migrator applies migrations and records them in schema_migrations.
type Migrator struct {
	conn       *Connection
	migrations []Migration
	tableName  string
}

// NewMigrator creates a migrator with the embedded migrations.
func NewMigrator(conn *Connection) *Migrator {
	return &Migrator{conn: conn, migrations: Migrations(), tableName: "schema_migrations"}
}

func (m *Migrator) ensureTable(ctx context.Context) error {
	query := fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %s (
			version INTEGER PRIMARY KEY,
			name TEXT NOT NULL,
			applied_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW()
		)
	`, m.tableName)

	if _, err := m.conn.Exec(ctx, query); err != nil {
		return fmt.Errorf("failed to create migrations table: %w", err)
	}
	return nil
}

func (m *Migrator) applied(ctx context.Context) (map[int]time.Time, error) {
	rows, err := m.conn.Query(ctx, fmt.Sprintf("SELECT version, applied_at FROM %s ORDER BY version", m.tableName))
	if err != nil {
		return nil, fmt.Errorf("failed to query applied migrations: %w", err)
	}
	defer rows.Close()

	applied := make(map[int]time.Time)
	for rows.Next() {
		var version int
		var appliedAt time.Time
		if err := rows.Scan(&version, &appliedAt); err != nil {
			return nil, fmt.Errorf("failed to scan migration row: %w", err)
		}
		applied[version] = appliedAt
	}
	return applied, rows.Err()
}

// Migrate applies all pending migrations and returns how many ran.
func (m *Migrator) Migrate(ctx context.Context) (int, error) {
	if err := m.ensureTable(ctx); err != nil {
		return 0, err
	}

	applied, err := m.applied(ctx)
	if err != nil {
		return 0, err
	}

	count := 0
	for _, mig := range m.migrations {
		if _, ok := applied[mig.Version]; ok {
			continue
		}

		err := m.conn.WithTx(ctx, func(tx pgx.Tx) error {
			if _, err := tx.Exec(ctx, mig.UpSQL); err != nil {
				return fmt.Errorf("failed to execute migration %d: %w", mig.Version, err)
			}
			_, err := tx.Exec(ctx, fmt.Sprintf("INSERT INTO %s (version, name) VALUES ($1, $2)", m.tableName),
				mig.Version, mig.Name)
			return err
		})
		if err != nil {
			return count, fmt.Errorf("%w: version %d: %v", ErrMigrationFailed, mig.Version, err)
		}
		count++
	}
	return count, nil
}

// Rollback reverts the most recent applied migration.
func (m *Migrator) Rollback(ctx context.Context) error {
	if err := m.ensureTable(ctx); err != nil {
		return err
	}

	applied, err := m.applied(ctx)
	if err != nil {
		return err
	}

	versions := make([]int, 0, len(applied))
	for v := range applied {
		versions = append(versions, v)
	}
	if len(versions) == 0 {
		return nil
	}
	sort.Ints(versions)
	last := versions[len(versions)-1]

	var mig *Migration
	for i := range m.migrations {
		if m.migrations[i].Version == last {
			mig = &m.migrations[i]
			break
		}
	}
	if mig == nil || mig.DownSQL == "" {
		return fmt.Errorf("%w: missing down SQL for migration %d", ErrMigrationFailed, last)
	}

	return m.conn.WithTx(ctx, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, mig.DownSQL); err != nil {
			return fmt.Errorf("failed to rollback migration %d: %w", last, err)
		}
		_, err := tx.Exec(ctx, fmt.Sprintf("DELETE FROM %s WHERE version = $1", m.tableName), last)
		return err
	})
}

// Status returns every known migration with its applied state.
func (m *Migrator) Status(ctx context.Context) ([]Migration, error) {
	if err := m.ensureTable(ctx); err != nil {
		return nil, err
	}

	applied, err := m.applied(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]Migration, len(m.migrations))
	copy(out, m.migrations)
	for i := range out {
		if at, ok := applied[out[i].Version]; ok {
			out[i].IsApplied = true
			out[i].AppliedAt = at
		}
	}
	return out, nil
}

// ══════════════════════════════════════════════════════════════════════════════
// MIGRATION 001: PEOPLE
// ══════════════════════════════════════════════════════════════════════════════

const migration001Up = `
CREATE TABLE IF NOT EXISTS people (
    id VARCHAR(64) PRIMARY KEY,
    seq BIGSERIAL NOT NULL,
    kind VARCHAR(32) NOT NULL,
    name VARCHAR(200) NOT NULL,
    age INTEGER NOT NULL,
    contact VARCHAR(200) NOT NULL,

    -- student family
    enrollment_date VARCHAR(32),
    program VARCHAR(100),
    gpa DOUBLE PRECISION,
    major VARCHAR(100),
    minor VARCHAR(100),
    expected_graduation VARCHAR(32),
    research_topic VARCHAR(200),
    advisor VARCHAR(200),
    thesis_title VARCHAR(300),

    -- professor family
    department VARCHAR(100),
    specialization VARCHAR(100),
    hire_date VARCHAR(32),

    created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW(),
    updated_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW(),

    CONSTRAINT valid_kind CHECK (kind IN ('student', 'undergraduate', 'graduate',
        'assistant_professor', 'associate_professor', 'full_professor')),
    CONSTRAINT valid_age CHECK (age BETWEEN 1 AND 120)
);

CREATE INDEX IF NOT EXISTS idx_people_kind ON people(kind);
CREATE INDEX IF NOT EXISTS idx_people_seq ON people(seq);
`

const migration001Down = `
DROP TABLE IF EXISTS people;
`

// ══════════════════════════════════════════════════════════════════════════════
// MIGRATION 002: COURSES, ROSTERS AND SCHEDULE
// ══════════════════════════════════════════════════════════════════════════════

const migration002Up = `
CREATE TABLE IF NOT EXISTS courses (
    code VARCHAR(32) PRIMARY KEY,
    seq BIGSERIAL NOT NULL,
    title VARCHAR(200) NOT NULL,
    credits INTEGER NOT NULL,
    description TEXT NOT NULL DEFAULT '',
    capacity INTEGER NOT NULL DEFAULT 30,
    instructor_id VARCHAR(64) REFERENCES people(id) ON DELETE SET NULL,

    CONSTRAINT valid_credits CHECK (credits > 0),
    CONSTRAINT valid_capacity CHECK (capacity > 0)
);

-- Roster entries keep enrollment order; a student may appear more than once.
CREATE TABLE IF NOT EXISTS course_roster (
    course_code VARCHAR(32) NOT NULL REFERENCES courses(code) ON DELETE CASCADE,
    position INTEGER NOT NULL,
    student_id VARCHAR(64) NOT NULL,
    PRIMARY KEY (course_code, position)
);

CREATE TABLE IF NOT EXISTS course_schedule (
    course_code VARCHAR(32) PRIMARY KEY,
    time_slot VARCHAR(64) NOT NULL,
    room VARCHAR(32) NOT NULL
);
`

const migration002Down = `
DROP TABLE IF EXISTS course_schedule;
DROP TABLE IF EXISTS course_roster;
DROP TABLE IF EXISTS courses;
`

// ══════════════════════════════════════════════════════════════════════════════
// MIGRATION 003: DEPARTMENTS
// ══════════════════════════════════════════════════════════════════════════════

const migration003Up = `
CREATE TABLE IF NOT EXISTS departments (
    name VARCHAR(100) PRIMARY KEY,
    seq BIGSERIAL NOT NULL,
    location VARCHAR(200) NOT NULL DEFAULT '',
    budget DOUBLE PRECISION NOT NULL DEFAULT 0,

    CONSTRAINT valid_budget CHECK (budget >= 0)
);

CREATE TABLE IF NOT EXISTS department_professors (
    department VARCHAR(100) NOT NULL REFERENCES departments(name) ON DELETE CASCADE,
    position INTEGER NOT NULL,
    professor_id VARCHAR(64) NOT NULL,
    PRIMARY KEY (department, position)
);

CREATE TABLE IF NOT EXISTS department_courses (
    department VARCHAR(100) NOT NULL REFERENCES departments(name) ON DELETE CASCADE,
    position INTEGER NOT NULL,
    course_code VARCHAR(32) NOT NULL,
    PRIMARY KEY (department, position)
);
`

const migration003Down = `
DROP TABLE IF EXISTS department_courses;
DROP TABLE IF EXISTS department_professors;
DROP TABLE IF EXISTS departments;
`

// ══════════════════════════════════════════════════════════════════════════════
// MIGRATION 004: GRADES
// ══════════════════════════════════════════════════════════════════════════════

const migration004Up = `
CREATE TABLE IF NOT EXISTS grades (
    student_id VARCHAR(64) PRIMARY KEY,
    grade DOUBLE PRECISION NOT NULL,
    recorded_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW(),

    CONSTRAINT valid_grade CHECK (grade >= 0 AND grade <= 100)
);
`

const migration004Down = `
DROP TABLE IF EXISTS grades;
`
