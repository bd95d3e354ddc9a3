package model

import "github.com/google/uuid"

// ScheduledClass is a display-ready assignment with entity labels resolved.
// Labels for deleted courses, instructors or rooms read "N/A".
type ScheduledClass struct {
	ID             uuid.UUID    `json:"id"`
	CourseName     string       `json:"course_name"`
	InstructorName string       `json:"instructor_name"`
	RoomNumber     string       `json:"room_number"`
	Day            string       `json:"day"`
	StartTime      ClockMinutes `json:"start_time"`
	EndTime        ClockMinutes `json:"end_time"`
}

// DayView lists one weekday's classes sorted by start time.
type DayView struct {
	Day     string           `json:"day"`
	Classes []ScheduledClass `json:"classes"`
}

// WeeklyView is the whole timetable grouped per weekday, Monday first.
type WeeklyView struct {
	Days []DayView `json:"days"`
}

// InstructorSchedule is one instructor's classes sorted by day then start time.
type InstructorSchedule struct {
	InstructorID int              `json:"instructor_id"`
	Name         string           `json:"name"`
	Department   string           `json:"department"`
	Classes      []ScheduledClass `json:"classes"`
}

// RoomSchedule is one room's classes sorted by day then start time.
type RoomSchedule struct {
	RoomID   int              `json:"room_id"`
	Number   string           `json:"number"`
	Building string           `json:"building"`
	Capacity int              `json:"capacity"`
	Classes  []ScheduledClass `json:"classes"`
}

// DashboardStats mirrors the entity counters on the dashboard.
type DashboardStats struct {
	Courses          int `json:"courses"`
	Instructors      int `json:"instructors"`
	Rooms            int `json:"rooms"`
	ScheduledClasses int `json:"scheduled_classes"`
}
