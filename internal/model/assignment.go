package model

import (
	"time"

	"github.com/google/uuid"
)

// Weekday labels for the five teaching days, in timetable order.
var Weekdays = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"}

// IsWeekday reports whether day is one of the five teaching day labels.
func IsWeekday(day string) bool {
	for _, d := range Weekdays {
		if d == day {
			return true
		}
	}
	return false
}

// Assignment is one scheduled class session: a course taught by an instructor
// in a room on a weekday over a [StartTime, EndTime) interval. The full set of
// assignments is the timetable.
//
// Entity references are plain IDs without foreign keys: deleting a course,
// instructor or room never cascades here, so an assignment may point at an
// entity that no longer exists. Display code substitutes "N/A" in that case.
type Assignment struct {
	ID           uuid.UUID    `json:"id"`
	CourseID     int          `json:"course_id"`
	InstructorID int          `json:"instructor_id"`
	RoomID       int          `json:"room_id"`
	Day          string       `json:"day"`
	StartTime    ClockMinutes `json:"start_time"`
	EndTime      ClockMinutes `json:"end_time"`
	CreatedAt    time.Time    `json:"created_at"`
}

// ScheduleRequest is the payload for scheduling a class manually or running a
// conflict pre-check.
type ScheduleRequest struct {
	CourseID     int    `json:"course_id" binding:"required,min=1"`
	InstructorID int    `json:"instructor_id" binding:"required,min=1"`
	RoomID       int    `json:"room_id" binding:"required,min=1"`
	Day          string `json:"day" binding:"required"`
	StartTime    string `json:"start_time" binding:"required"`
	EndTime      string `json:"end_time" binding:"required"`
}
