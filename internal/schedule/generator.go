package schedule

import (
	"errors"

	"github.com/google/uuid"

	"github.com/classgrid/timetable-backend/internal/model"
)

// ErrNothingToSchedule is returned when any of the generator's input
// collections is empty.
var ErrNothingToSchedule = errors.New("nothing to schedule: courses, instructors and rooms are all required")

// GeneratorStartTimes is the fixed set of session start times, on the hour.
// The gap between 12:00 and 14:00 is the lunch break and is never scheduled.
var GeneratorStartTimes = []model.ClockMinutes{
	8 * 60, 9 * 60, 10 * 60, 11 * 60, 12 * 60, 14 * 60, 15 * 60, 16 * 60,
}

// Generate builds a fresh timetable from scratch over the fixed slot grid of
// five weekdays times eight start times. It walks courses in input order,
// placing WeeklyFrequency sessions per course with a single cursor advancing
// row-major through the grid. Instructor and room for the i-th session of a
// course are picked round-robin (i modulo list length) without availability
// awareness; placements the conflict checker rejects advance the cursor and
// retry the same session at the next slot.
//
// The cursor guard is evaluated per course at the top of the session loop, so
// a course late in input order can be starved even when earlier slots would
// have suited it. The allocation policy is part of the observable contract;
// a fairer one would change generated output.
//
// Generate never fails mid-run: when the grid saturates it returns fewer
// assignments than requested. Only empty inputs are an error.
func Generate(courses []model.Course, instructors []model.Instructor, rooms []model.Room) ([]model.Assignment, error) {
	if len(courses) == 0 || len(instructors) == 0 || len(rooms) == 0 {
		return nil, ErrNothingToSchedule
	}

	totalSlots := len(model.Weekdays) * len(GeneratorStartTimes)

	courseNames := make(map[int]string, len(courses))
	for _, c := range courses {
		courseNames[c.ID] = c.Name
	}

	var placed []model.Assignment
	slotIndex := 0

	for _, course := range courses {
		for i := 0; i < course.WeeklyFrequency; i++ {
			if slotIndex >= totalSlots {
				break
			}

			dayIndex := (slotIndex / len(GeneratorStartTimes)) % len(model.Weekdays)
			timeIndex := slotIndex % len(GeneratorStartTimes)

			start := GeneratorStartTimes[timeIndex]
			end := sessionEnd(start, course.DurationMinutes)

			instructor := instructors[i%len(instructors)]
			room := rooms[i%len(rooms)]

			cand := Candidate{
				CourseID:     course.ID,
				InstructorID: instructor.ID,
				RoomID:       room.ID,
				Day:          model.Weekdays[dayIndex],
				StartTime:    start,
				EndTime:      end,
			}

			if conflicts := FindConflicts(placed, courseNames, cand); len(conflicts) == 0 {
				placed = append(placed, model.Assignment{
					ID:           uuid.New(),
					CourseID:     cand.CourseID,
					InstructorID: cand.InstructorID,
					RoomID:       cand.RoomID,
					Day:          cand.Day,
					StartTime:    cand.StartTime,
					EndTime:      cand.EndTime,
				})
				slotIndex++
			} else {
				// Retry the same session index at the next slot.
				slotIndex++
				i--
			}
		}
	}

	return placed, nil
}

// sessionEnd rounds a session up to whole hours: end hour = start hour plus
// ceil(duration / 60). Generated slots do not model sub-hour precision.
func sessionEnd(start model.ClockMinutes, durationMinutes int) model.ClockMinutes {
	hours := (durationMinutes + 59) / 60
	endHour := int(start)/60 + hours
	return model.ClockMinutes(endHour * 60)
}
