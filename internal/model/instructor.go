package model

import "time"

// Instructor represents a teaching staff member. MaxClasses is an advisory
// weekly cap; the conflict checker does not enforce it.
type Instructor struct {
	ID         int       `json:"id"`
	Name       string    `json:"name"`
	Department string    `json:"department"`
	Email      string    `json:"email"`
	MaxClasses int       `json:"max_classes"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// CreateInstructorRequest is the payload for creating or updating an instructor.
type CreateInstructorRequest struct {
	Name       string `json:"name" binding:"required,min=2,max=100"`
	Department string `json:"department" binding:"required,min=2,max=100"`
	Email      string `json:"email" binding:"required,email"`
	MaxClasses int    `json:"max_classes" binding:"required,min=1,max=40"`
}
