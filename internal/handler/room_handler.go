package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/classgrid/timetable-backend/internal/model"
	"github.com/classgrid/timetable-backend/internal/repository"
	"github.com/classgrid/timetable-backend/internal/response"
	"github.com/classgrid/timetable-backend/internal/service"
	"github.com/classgrid/timetable-backend/internal/validator"
)

// RoomHandler handles room management (CRUD).
type RoomHandler struct {
	roomService *service.RoomService
}

func NewRoomHandler(roomService *service.RoomService) *RoomHandler {
	return &RoomHandler{roomService: roomService}
}

// GetAll godoc
// GET /api/v1/rooms
func (h *RoomHandler) GetAll(c *gin.Context) {
	rooms, err := h.roomService.GetAll(c.Request.Context())
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	if rooms == nil {
		rooms = []model.Room{}
	}

	response.Success(c, http.StatusOK, gin.H{"rooms": rooms})
}

// Create godoc
// POST /api/v1/rooms
func (h *RoomHandler) Create(c *gin.Context) {
	var req model.CreateRoomRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	room := &model.Room{
		Number:    req.Number,
		Building:  req.Building,
		Capacity:  req.Capacity,
		Equipment: req.Equipment,
	}
	if err := h.roomService.Create(c.Request.Context(), room); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			response.Fail(c, http.StatusConflict, response.ErrConflict)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"room": room})
}

// Update godoc
// PUT /api/v1/rooms/:id
func (h *RoomHandler) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	var req model.CreateRoomRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	room := &model.Room{
		ID:        id,
		Number:    req.Number,
		Building:  req.Building,
		Capacity:  req.Capacity,
		Equipment: req.Equipment,
	}
	if err := h.roomService.Update(c.Request.Context(), room); err != nil {
		if errors.Is(err, repository.ErrNoRows) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "room updated successfully"})
}

// Delete godoc
// DELETE /api/v1/rooms/:id
func (h *RoomHandler) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	if err := h.roomService.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, repository.ErrNoRows) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "room deleted successfully"})
}
