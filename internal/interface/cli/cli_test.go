package cli

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alem-hub/university-hub/config"
	"github.com/alem-hub/university-hub/internal/application/query"
	"github.com/alem-hub/university-hub/internal/domain/person"
	"github.com/alem-hub/university-hub/pkg/logger"
)

const demoOutput = `University System Initialized.
Name: Alice, Age: 20, ID: S123, Contact: alice@email.com
Program: CS, GPA: 3.5
Major: CS, Minor: Math, Grad Date: 2025
Payment: $12000
------------------
Name: Bob, Age: 25, ID: S124, Contact: bob@email.com
Program: Physics, GPA: 3.8
Research: Quantum, Advisor: Dr. Smith, Thesis: Dark Matter
Payment: $8000
------------------
Name: Dr. Jane, Age: 40, ID: P123, Contact: jane@email.com
Dept: Science, Specialization: Biology, Hire Date: 2015
Payment: $50000
------------------
Name: Dr. Smith, Age: 45, ID: P124, Contact: smith@email.com
Dept: Physics, Specialization: Quantum Mechanics, Hire Date: 2010
Payment: $65000
------------------
Name: Dr. Lee, Age: 50, ID: P125, Contact: lee@email.com
Dept: CS, Specialization: AI, Hire Date: 2005
Payment: $80000
------------------
TAship: 10 hrs logged.
Course Code: CS101, Title: Intro to CS, Credits: 3
Instructor: Dr. Jane
Schedule: CS101 at Mon 10:00 in R101
Department: Computer Science, Location: Building A, Budget: $100000
Average Grade: 67.5
Highest Grade: 90
Failing: S124
Enrollment in CS101: 2
Enrollment in CS101 after drop: 1
`

// isolate runs the test in an empty directory with a memory-only setup.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	chdir(t, dir)
	for key, value := range map[string]string{
		"CONFIG_FILE":    "",
		"STORE_BACKEND":  "memory",
		"GRADES_BACKEND": "memory",
		"REDIS_DISABLED": "true",
		"LOG_OUTPUT":     "none",
		"LOG_FORMAT":     "json",
		"ERROR_LOG_PATH": "errors.log",
		"PASS_GRADE":     "50",
	} {
		t.Setenv(key, value)
	}
	return dir
}

func TestDemo_LiteralOutput(t *testing.T) {
	dir := isolate(t)
	var stdout, stderr bytes.Buffer

	require.NoError(t, Execute(context.Background(), nil, &stdout, &stderr))
	assert.Equal(t, demoOutput, stdout.String())
	assert.Empty(t, stderr.String())

	_, err := os.Stat(filepath.Join(dir, "errors.log"))
	assert.True(t, errors.Is(err, os.ErrNotExist), "errors.log must not be created on success")
}

func TestDemo_SubcommandMatchesDefault(t *testing.T) {
	isolate(t)
	var stdout, stderr bytes.Buffer

	require.NoError(t, Execute(context.Background(), []string{"demo"}, &stdout, &stderr))
	assert.Equal(t, demoOutput, stdout.String())
}

func TestDemo_DomainErrorIsReportedAndLogged(t *testing.T) {
	dir := isolate(t)
	var stdout, stderr bytes.Buffer

	root := NewRootCommand(Options{
		Stdout: &stdout,
		Stderr: &stderr,
		OpenStores: func(ctx context.Context, cfg *config.Config, log *logger.Logger) (*Stores, error) {
			stores := MemoryStores()
			taken, err := person.NewStudent(person.StudentParams{
				Identity: person.Identity{Name: "Other", Age: 30, ID: "S123", Contact: "other@email.com"},
			})
			if err != nil {
				return nil, err
			}
			return stores, stores.People.Create(ctx, taken)
		},
	})
	root.SetArgs([]string{})

	require.NoError(t, root.ExecuteContext(context.Background()))
	assert.Equal(t, "University System Initialized.\n", stdout.String())
	assert.Equal(t, "Error: person already exists\n", stderr.String())

	logged, err := os.ReadFile(filepath.Join(dir, "errors.log"))
	require.NoError(t, err)
	assert.Equal(t, "person already exists\n", string(logged))
}

func TestExecute_InfrastructureErrorFails(t *testing.T) {
	isolate(t)
	var stdout, stderr bytes.Buffer

	root := NewRootCommand(Options{
		Stdout: &stdout,
		Stderr: &stderr,
		OpenStores: func(context.Context, *config.Config, *logger.Logger) (*Stores, error) {
			return nil, errors.New("dial tcp: connection refused")
		},
	})
	root.SetArgs([]string{"demo"})

	err := root.ExecuteContext(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection refused")
	assert.Empty(t, stdout.String())
}

func TestMigrate_RequiresPostgres(t *testing.T) {
	isolate(t)
	var stdout, stderr bytes.Buffer

	err := Execute(context.Background(), []string{"migrate"}, &stdout, &stderr)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "STORE_BACKEND=postgres")
}

const seedRoster = `
university: State University
people:
  - kind: full_professor
    name: Dr. Lee
    age: 50
    id: P125
    contact: lee@email.com
    department: CS
    specialization: AI
    hire_date: "2005"
  - kind: student
    name: Carol
    age: 19
    id: S200
    contact: carol@email.com
    program: Math
    gpa: 3.1
courses:
  - code: MA101
    title: Calculus
    credits: 4
    instructor: P125
    students: [S200]
departments:
  - name: Mathematics
    location: Building C
    budget: 25000
    professors: [P125]
    courses: [MA101]
grades:
  - student: S200
    grade: 88
schedule:
  - course: MA101
    time: Tue 09:00
    room: R12
`

func TestLoad_ImportsRosterAndPrintsPayroll(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "roster.yaml")
	require.NoError(t, os.WriteFile(path, []byte(seedRoster), 0o644))

	var stdout, stderr bytes.Buffer
	require.NoError(t, Execute(context.Background(), []string{"load", "--seed", path}, &stdout, &stderr))
	assert.Empty(t, stderr.String())

	out := stdout.String()
	assert.Contains(t, out, "University: State University, Departments: 1, Budget: $25000\n")
	assert.Contains(t, out, "Name: Dr. Lee, Age: 50, ID: P125, Contact: lee@email.com\n")
	assert.Contains(t, out, "Payment: $80000\n")
	assert.Contains(t, out, "Payment: $10000\n")
	assert.Contains(t, out, "Total payroll: $90000\n")
}

func TestLoad_MissingFile(t *testing.T) {
	isolate(t)
	var stdout, stderr bytes.Buffer

	err := Execute(context.Background(), []string{"load", "--seed", "missing.yaml"}, &stdout, &stderr)
	assert.Error(t, err)
}

func TestNewLogger_Outputs(t *testing.T) {
	cfg := &config.Config{Observability: config.ObservabilityConfig{LogLevel: "info", LogFormat: "json", LogOutput: "none"}}
	var stderr bytes.Buffer

	log, closeLog, err := newLogger(cfg, false, &stderr)
	require.NoError(t, err)
	log.Info("hidden")
	closeLog()
	assert.Empty(t, stderr.String())

	log, closeLog, err = newLogger(cfg, true, &stderr)
	require.NoError(t, err)
	log.Debug("shown")
	closeLog()
	assert.Contains(t, stderr.String(), `"message":"shown"`)
}

func TestNewLogger_FileOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hub.log")
	cfg := &config.Config{Observability: config.ObservabilityConfig{LogLevel: "info", LogFormat: "json", LogOutput: path}}
	var stderr bytes.Buffer

	log, closeLog, err := newLogger(cfg, false, &stderr)
	require.NoError(t, err)
	log.Info("to file")
	closeLog()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"message":"to file"`)
	assert.Empty(t, stderr.String())

	cfg.Observability.LogOutput = filepath.Join(t.TempDir(), "absent", "hub.log")
	_, _, err = newLogger(cfg, false, &stderr)
	assert.Error(t, err)
}

func TestPrintGradeSummary_FailingLines(t *testing.T) {
	var out bytes.Buffer
	printGradeSummary(&out, &query.GradeSummaryDTO{
		Count: 3, Average: 55, Highest: 90, HasHighest: true, Failing: []string{"S124", "S125"},
	})
	assert.Equal(t, "Average Grade: 55\nHighest Grade: 90\nFailing: S124\nFailing: S125\n", out.String())

	out.Reset()
	printGradeSummary(&out, &query.GradeSummaryDTO{Count: 1, Average: 90, Highest: 90, HasHighest: true})
	assert.Equal(t, "Average Grade: 90\nHighest Grade: 90\n", out.String())
}

// chdir switches the working directory for the duration of the test and
// restores it on cleanup (testing.T.Chdir needs Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatal(err)
		}
	})
}
