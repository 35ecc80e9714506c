package course

import (
	"fmt"
	"sort"
	"strings"

	"github.com/alem-hub/university-hub/internal/domain/shared"
)

// Classroom is a room that can host a course.
type Classroom struct {
	RoomNumber string
	Capacity   int
}

// NewClassroom validates and creates a classroom.
func NewClassroom(room string, capacity int) (Classroom, error) {
	if strings.TrimSpace(room) == "" {
		return Classroom{}, shared.NewDomainError(domainName, "NewClassroom", shared.ErrEmptyValue,
			"Room number cannot be empty.")
	}
	if capacity <= 0 {
		return Classroom{}, shared.NewDomainError(domainName, "NewClassroom", shared.ErrValueOutOfRange,
			"Room capacity must be positive.")
	}
	return Classroom{RoomNumber: room, Capacity: capacity}, nil
}

// Seat fails with an enrollment error when the course roster does not fit
// in the room.
func (r Classroom) Seat(c *Course) error {
	if n := c.EnrollmentCount(); n > r.Capacity {
		return shared.NewEnrollmentError(domainName, "Seat", shared.ErrCapacityExceeded,
			fmt.Sprintf("Room %s seats %d, %s has %d students", r.RoomNumber, r.Capacity, c.Code, n))
	}
	return nil
}

// Slot is where and when a course meets.
type Slot struct {
	CourseCode string
	Time       string
	Room       string
}

// String renders the slot as a schedule line.
func (s Slot) String() string {
	return fmt.Sprintf("Schedule: %s at %s in %s", s.CourseCode, s.Time, s.Room)
}

// Schedule maps a course code to its slot. Re-adding a code overwrites the
// previous slot.
type Schedule struct {
	slots map[string]Slot
}

// NewSchedule creates an empty schedule.
func NewSchedule() *Schedule {
	return &Schedule{slots: make(map[string]Slot)}
}

// AddSchedule stores the slot for courseCode.
func (s *Schedule) AddSchedule(courseCode, time, room string) {
	s.slots[courseCode] = Slot{CourseCode: courseCode, Time: time, Room: room}
}

// Slot returns the slot of a course.
func (s *Schedule) Slot(courseCode string) (Slot, bool) {
	slot, ok := s.slots[courseCode]
	return slot, ok
}

// Slots returns all slots ordered by course code.
func (s *Schedule) Slots() []Slot {
	out := make([]Slot, 0, len(s.slots))
	for _, slot := range s.slots {
		out = append(out, slot)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CourseCode < out[j].CourseCode })
	return out
}

// Len returns the number of scheduled courses.
func (s *Schedule) Len() int {
	return len(s.slots)
}

// Put stores a complete slot, overwriting any slot for the same course.
func (s *Schedule) Put(slot Slot) {
	s.slots[slot.CourseCode] = slot
}
