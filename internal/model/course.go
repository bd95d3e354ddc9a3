package model

import "time"

// Course represents a course offered by a department. DurationMinutes is the
// length of a single session; WeeklyFrequency is how many sessions per week
// the generator should place.
type Course struct {
	ID              int       `json:"id"`
	Code            string    `json:"code"`
	Name            string    `json:"name"`
	Department      string    `json:"department"`
	DurationMinutes int       `json:"duration_minutes"`
	WeeklyFrequency int       `json:"weekly_frequency"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// CreateCourseRequest is the payload for creating or updating a course.
type CreateCourseRequest struct {
	Code            string `json:"code" binding:"required,min=2,max=20"`
	Name            string `json:"name" binding:"required,min=2,max=100"`
	Department      string `json:"department" binding:"required,min=2,max=100"`
	DurationMinutes int    `json:"duration_minutes" binding:"required,min=1,max=480"`
	WeeklyFrequency int    `json:"weekly_frequency" binding:"required,min=1,max=40"`
}
