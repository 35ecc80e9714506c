package query

import (
	"context"
	"errors"

	"github.com/alem-hub/university-hub/internal/domain/course"
	"github.com/alem-hub/university-hub/internal/domain/person"
	"github.com/alem-hub/university-hub/internal/domain/shared"
	"github.com/alem-hub/university-hub/pkg/logger"
)

// ══════════════════════════════════════════════════════════════════════════════
// COURSE REPORT QUERY
// Summary, instructor, roster and schedule of one course. Results are cached
// until a command touching the course invalidates them.
// ══════════════════════════════════════════════════════════════════════════════

// CourseReportQuery names the course.
type CourseReportQuery struct {
	CourseCode string

	// SkipCache forces a fresh read.
	SkipCache bool
}

// Validate validates the query.
func (q *CourseReportQuery) Validate() error {
	if q.CourseCode == "" {
		return errors.New("course_code is required")
	}
	return nil
}

// CourseReportDTO is the rendered state of a course.
type CourseReportDTO struct {
	Code    string `json:"code"`
	Title   string `json:"title"`
	Credits int    `json:"credits"`
	Summary string `json:"summary"`

	InstructorID   string `json:"instructor_id,omitempty"`
	InstructorName string `json:"instructor_name,omitempty"`

	Students []string `json:"students"`
	Enrolled int      `json:"enrolled"`
	Capacity int      `json:"capacity"`

	// Schedule is the rendered slot line, empty when unscheduled.
	Schedule string `json:"schedule,omitempty"`

	FromCache bool `json:"-"`
}

// HasInstructor reports whether an instructor is assigned.
func (d *CourseReportDTO) HasInstructor() bool {
	return d.InstructorID != ""
}

// CourseReportHandler handles CourseReportQuery.
type CourseReportHandler struct {
	courses  course.Repository
	people   person.Repository
	schedule course.ScheduleRepository
	cache    ReportCache
}

// NewCourseReportHandler creates a new CourseReportHandler. A nil cache
// disables caching.
func NewCourseReportHandler(
	courses course.Repository,
	people person.Repository,
	schedule course.ScheduleRepository,
	cache ReportCache,
) *CourseReportHandler {
	if cache == nil {
		cache = NoopCache{}
	}
	return &CourseReportHandler{courses: courses, people: people, schedule: schedule, cache: cache}
}

// Handle executes the query.
func (h *CourseReportHandler) Handle(ctx context.Context, q CourseReportQuery) (*CourseReportDTO, error) {
	if err := q.Validate(); err != nil {
		return nil, shared.WrapError("query", "CourseReport", shared.ErrValidation, err.Error(), err)
	}
	log := logger.FromContext(ctx).With(logger.Operation("course_report"), logger.CourseCode(q.CourseCode))
	key := CourseReportKey(q.CourseCode)

	if !q.SkipCache {
		var cached CourseReportDTO
		hit, err := h.cache.Load(ctx, key, &cached)
		if err != nil {
			log.Warn("report cache read failed", logger.Err(err))
		}
		if hit {
			log.Debug("course report served", logger.CacheHit(true))
			cached.FromCache = true
			return &cached, nil
		}
	}

	c, err := h.courses.GetByCode(ctx, q.CourseCode)
	if err != nil {
		return nil, wrap("course_report", err)
	}

	dto := &CourseReportDTO{
		Code:         c.Code,
		Title:        c.Title,
		Credits:      c.Credits,
		Summary:      c.Summary(),
		InstructorID: c.InstructorID,
		Students:     c.Students(),
		Enrolled:     c.EnrollmentCount(),
		Capacity:     c.Capacity(),
	}

	if c.HasInstructor() {
		prof, err := h.people.GetByID(ctx, c.InstructorID)
		switch {
		case err == nil:
			dto.InstructorName = prof.Name
		case errors.Is(err, person.ErrPersonNotFound):
			// Dangling handle: keep the ID, leave the name empty.
		default:
			return nil, wrap("course_report", err)
		}
	}

	if h.schedule != nil {
		slot, ok, err := h.schedule.GetSlot(ctx, c.Code)
		if err != nil {
			return nil, wrap("course_report", err)
		}
		if ok {
			dto.Schedule = slot.String()
		}
	}

	if err := h.cache.Store(ctx, key, dto); err != nil {
		log.Warn("report cache write failed", logger.Err(err))
	}
	log.Debug("course report served", logger.CacheHit(false))
	return dto, nil
}
