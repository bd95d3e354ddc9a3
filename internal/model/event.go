package model

import "time"

// Timetable change event types published on the Redis events channel and
// fanned out to WebSocket subscribers.
const (
	EventClassScheduled     = "class_scheduled"
	EventClassRemoved       = "class_removed"
	EventTimetableCleared   = "timetable_cleared"
	EventTimetableGenerated = "timetable_generated"
)

// TimetableEvent notifies subscribers that the timetable changed.
type TimetableEvent struct {
	Type string `json:"type"`
	// PlacedCount is set for generation events.
	PlacedCount int       `json:"placed_count,omitempty"`
	At          time.Time `json:"at"`
}
