// Package cli exposes the university hub as a cobra command tree.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/alem-hub/university-hub/config"
	"github.com/alem-hub/university-hub/internal/application/command"
	"github.com/alem-hub/university-hub/internal/application/query"
	"github.com/alem-hub/university-hub/internal/domain/course"
	"github.com/alem-hub/university-hub/internal/domain/department"
	"github.com/alem-hub/university-hub/internal/domain/grading"
	"github.com/alem-hub/university-hub/internal/domain/person"
	"github.com/alem-hub/university-hub/internal/domain/shared"
	"github.com/alem-hub/university-hub/internal/infrastructure/errorlog"
	"github.com/alem-hub/university-hub/internal/infrastructure/persistence/memory"
	"github.com/alem-hub/university-hub/internal/infrastructure/persistence/postgres"
	rediscache "github.com/alem-hub/university-hub/internal/infrastructure/persistence/redis"
	"github.com/alem-hub/university-hub/internal/infrastructure/persistence/sqlite"
	"github.com/alem-hub/university-hub/pkg/logger"
	"github.com/alem-hub/university-hub/pkg/retry"
)

// ══════════════════════════════════════════════════════════════════════════════
// STORES
// ══════════════════════════════════════════════════════════════════════════════

// Stores are the repositories every handler is built from.
type Stores struct {
	People      person.Repository
	Courses     course.Repository
	Schedule    course.ScheduleRepository
	Departments department.Repository
	Grades      grading.Repository
	Reports     query.ReportCache

	// Postgres is set only for the postgres backend.
	Postgres *postgres.Connection

	closers []func() error
}

// MemoryStores returns stores backed by one in-memory arena.
func MemoryStores() *Stores {
	s := memory.NewStore()
	return &Stores{
		People:      s.People(),
		Courses:     s.Courses(),
		Schedule:    s.Schedule(),
		Departments: s.Departments(),
		Grades:      s.Grades(),
		Reports:     query.NoopCache{},
	}
}

// OpenStores connects the backends selected by cfg.
func OpenStores(ctx context.Context, cfg *config.Config, log *logger.Logger) (*Stores, error) {
	stores := MemoryStores()

	if cfg.Store.Backend == config.BackendPostgres {
		opts := postgres.PoolOptions{
			MaxConns:        int32(cfg.Database.MaxConns),
			MinConns:        int32(cfg.Database.MinConns),
			MaxConnLifetime: cfg.Database.ConnMaxLifetime,
			MaxConnIdleTime: cfg.Database.ConnMaxIdleTime,
		}
		conn, err := retry.Value(ctx, func(ctx context.Context) (*postgres.Connection, error) {
			return postgres.Connect(ctx, cfg.Database.URL, opts)
		}, retryLogging(log, config.BackendPostgres))
		if err != nil {
			return nil, err
		}
		repos := postgres.NewRepositories(conn)
		stores.People = repos.People
		stores.Courses = repos.Courses
		stores.Schedule = repos.Schedule
		stores.Departments = repos.Departments
		stores.Grades = repos.Grades
		stores.Postgres = conn
		stores.closers = append(stores.closers, func() error { conn.Close(); return nil })
	}
	log.Debug("record store ready", logger.Backend(cfg.Store.Backend))

	if cfg.Grades.Backend == config.BackendSQLite {
		ledger, err := sqlite.Open(ctx, cfg.Grades.SQLitePath)
		if err != nil {
			_ = stores.Close()
			return nil, err
		}
		stores.Grades = ledger
		stores.closers = append(stores.closers, ledger.Close)
		log.Debug("grade ledger ready", logger.Backend(config.BackendSQLite), logger.String("path", cfg.Grades.SQLitePath))
	}

	if !cfg.Redis.Disabled {
		redisCfg := rediscache.Config{
			URL:          cfg.Redis.URL,
			Host:         cfg.Redis.Host,
			Port:         cfg.Redis.Port,
			Password:     cfg.Redis.Password,
			DB:           cfg.Redis.DB,
			PoolSize:     cfg.Redis.PoolSize,
			DialTimeout:  cfg.Redis.DialTimeout,
			ReadTimeout:  cfg.Redis.ReadTimeout,
			WriteTimeout: cfg.Redis.WriteTimeout,
		}
		cache, err := retry.Value(ctx, func(ctx context.Context) (*rediscache.Cache, error) {
			return rediscache.NewCache(ctx, redisCfg)
		}, retryLogging(log, "redis"))
		if err != nil {
			_ = stores.Close()
			return nil, err
		}
		stores.Reports = rediscache.NewReportCache(cache, cfg.Redis.ReportTTL)
		stores.closers = append(stores.closers, cache.Close)
		log.Debug("report cache ready", logger.Backend("redis"))
	}

	return stores, nil
}

func retryLogging(log *logger.Logger, backend string) retry.Option {
	return retry.WithOnRetry(func(attempt int, err error, delay time.Duration) {
		log.Warn("backend not reachable, retrying",
			logger.Backend(backend), logger.Int("attempt", attempt), logger.Duration("delay", delay), logger.Err(err))
	})
}

// Close releases every backend in reverse order of opening.
func (s *Stores) Close() error {
	var errs []error
	for i := len(s.closers) - 1; i >= 0; i-- {
		if err := s.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	s.closers = nil
	return errors.Join(errs...)
}

// ══════════════════════════════════════════════════════════════════════════════
// APPLICATION
// ══════════════════════════════════════════════════════════════════════════════

// Commands groups the write handlers.
type Commands struct {
	RegisterPerson     *command.RegisterPersonHandler
	UpdatePerson       *command.UpdatePersonHandler
	CreateCourse       *command.CreateCourseHandler
	UpdateCourse       *command.UpdateCourseHandler
	AssignInstructor   *command.AssignInstructorHandler
	EnrollStudent      *command.EnrollStudentHandler
	DropStudent        *command.DropStudentHandler
	RecordGrade        *command.RecordGradeHandler
	CreateDepartment   *command.CreateDepartmentHandler
	AttachToDepartment *command.AttachToDepartmentHandler
	ScheduleCourse     *command.ScheduleCourseHandler
	LogTAHours         *command.LogTAHoursHandler
}

// Queries groups the read handlers.
type Queries struct {
	CourseReport     *query.CourseReportHandler
	EnrollmentCount  *query.EnrollmentCountHandler
	GradeSummary     *query.GradeSummaryHandler
	Payroll          *query.PayrollHandler
	DepartmentReport *query.DepartmentReportHandler
	UniversityReport *query.UniversityReportHandler
}

// App is the wired application.
type App struct {
	Config   *config.Config
	Log      *logger.Logger
	ErrorLog *errorlog.Writer
	Stores   *Stores
	Commands Commands
	Queries  Queries
}

// NewApp builds every handler over stores.
func NewApp(cfg *config.Config, log *logger.Logger, stores *Stores) *App {
	return &App{
		Config:   cfg,
		Log:      log,
		ErrorLog: errorlog.New(cfg.Observability.ErrorLogPath),
		Stores:   stores,
		Commands: Commands{
			RegisterPerson:     command.NewRegisterPersonHandler(stores.People),
			UpdatePerson:       command.NewUpdatePersonHandler(stores.People, stores.Courses, stores.Reports),
			CreateCourse:       command.NewCreateCourseHandler(stores.Courses, cfg.Domain.CourseCapacity),
			UpdateCourse:       command.NewUpdateCourseHandler(stores.Courses, stores.Reports),
			AssignInstructor:   command.NewAssignInstructorHandler(stores.Courses, stores.People, stores.Reports),
			EnrollStudent:      command.NewEnrollStudentHandler(stores.Courses, stores.People, stores.Reports),
			DropStudent:        command.NewDropStudentHandler(stores.Courses, stores.Reports),
			RecordGrade:        command.NewRecordGradeHandler(stores.Grades),
			CreateDepartment:   command.NewCreateDepartmentHandler(stores.Departments),
			AttachToDepartment: command.NewAttachToDepartmentHandler(stores.Departments, stores.People, stores.Courses),
			ScheduleCourse:     command.NewScheduleCourseHandler(stores.Courses, stores.Schedule, stores.Reports),
			LogTAHours:         command.NewLogTAHoursHandler(stores.People),
		},
		Queries: Queries{
			CourseReport:     query.NewCourseReportHandler(stores.Courses, stores.People, stores.Schedule, stores.Reports),
			EnrollmentCount:  query.NewEnrollmentCountHandler(stores.Courses),
			GradeSummary:     query.NewGradeSummaryHandler(stores.Grades),
			Payroll:          query.NewPayrollHandler(stores.People),
			DepartmentReport: query.NewDepartmentReportHandler(stores.Departments, stores.Courses),
			UniversityReport: query.NewUniversityReportHandler(stores.Departments, stores.Courses),
		},
	}
}

// Report finishes a run. Domain errors are printed as "Error: <message>",
// appended to the error log and swallowed; anything else is returned.
func (a *App) Report(err error, stderr io.Writer) error {
	if err == nil {
		return nil
	}
	if !shared.IsDomain(err) {
		return err
	}

	fmt.Fprintln(stderr, "Error: "+err.Error())
	a.Log.Warn("domain error handled", logger.Err(err))
	if logErr := a.ErrorLog.LogError(err); logErr != nil {
		return logErr
	}
	return nil
}
