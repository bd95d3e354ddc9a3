package model

import "time"

// Room represents a physical room classes can be scheduled into.
type Room struct {
	ID        int       `json:"id"`
	Number    string    `json:"number"`
	Building  string    `json:"building"`
	Capacity  int       `json:"capacity"`
	Equipment string    `json:"equipment"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateRoomRequest is the payload for creating or updating a room.
type CreateRoomRequest struct {
	Number   string `json:"number" binding:"required,min=1,max=20"`
	Building string `json:"building" binding:"required,min=1,max=100"`
	Capacity int    `json:"capacity" binding:"required,min=1,max=2000"`
	// Equipment is a free-text list ("projector, whiteboard"). Optional.
	Equipment string `json:"equipment" binding:"max=500"`
}
