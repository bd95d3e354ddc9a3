// Package schedule contains the pure timetable core: conflict detection over
// a set of committed assignments and the greedy auto-generator. Nothing in
// this package performs I/O; callers load state, call in, and persist out.
package schedule

import (
	"fmt"

	"github.com/samber/lo"

	"github.com/classgrid/timetable-backend/internal/model"
)

// MissingCourseLabel is substituted when a conflicting assignment references
// a course that has since been deleted.
const MissingCourseLabel = "N/A"

// Candidate is a proposed class session to be checked against the timetable.
type Candidate struct {
	CourseID     int
	InstructorID int
	RoomID       int
	Day          string
	StartTime    model.ClockMinutes
	EndTime      model.ClockMinutes
}

// FindConflicts scans every existing assignment and returns human-readable
// descriptions of instructor and room double-bookings the candidate would
// cause. courseNames maps course IDs to display names for message text;
// missing entries fall back to MissingCourseLabel.
//
// A single existing assignment can contribute both an instructor and a room
// conflict. Results are deduplicated by exact message text, preserving
// first-seen order. Pure function: no side effects.
func FindConflicts(existing []model.Assignment, courseNames map[int]string, cand Candidate) []string {
	var conflicts []string

	for _, a := range existing {
		if a.Day != cand.Day {
			continue
		}
		if !model.Overlaps(cand.StartTime, cand.EndTime, a.StartTime, a.EndTime) {
			continue
		}
		if a.InstructorID == cand.InstructorID {
			conflicts = append(conflicts, fmt.Sprintf(
				"Instructor conflict: Already teaching %s at this time", courseLabel(courseNames, a.CourseID)))
		}
		if a.RoomID == cand.RoomID {
			conflicts = append(conflicts, fmt.Sprintf(
				"Room conflict: Already in use for %s at this time", courseLabel(courseNames, a.CourseID)))
		}
	}

	return lo.Uniq(conflicts)
}

func courseLabel(courseNames map[int]string, courseID int) string {
	if name, ok := courseNames[courseID]; ok && name != "" {
		return name
	}
	return MissingCourseLabel
}
