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

// InstructorHandler handles instructor management (CRUD).
type InstructorHandler struct {
	instructorService *service.InstructorService
}

func NewInstructorHandler(instructorService *service.InstructorService) *InstructorHandler {
	return &InstructorHandler{instructorService: instructorService}
}

// GetAll godoc
// GET /api/v1/instructors
func (h *InstructorHandler) GetAll(c *gin.Context) {
	instructors, err := h.instructorService.GetAll(c.Request.Context())
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	if instructors == nil {
		instructors = []model.Instructor{}
	}

	response.Success(c, http.StatusOK, gin.H{"instructors": instructors})
}

// Create godoc
// POST /api/v1/instructors
func (h *InstructorHandler) Create(c *gin.Context) {
	var req model.CreateInstructorRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	instructor := &model.Instructor{
		Name:       req.Name,
		Department: req.Department,
		Email:      req.Email,
		MaxClasses: req.MaxClasses,
	}
	if err := h.instructorService.Create(c.Request.Context(), instructor); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			response.Fail(c, http.StatusConflict, response.ErrConflict)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"instructor": instructor})
}

// Update godoc
// PUT /api/v1/instructors/:id
func (h *InstructorHandler) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	var req model.CreateInstructorRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	instructor := &model.Instructor{
		ID:         id,
		Name:       req.Name,
		Department: req.Department,
		Email:      req.Email,
		MaxClasses: req.MaxClasses,
	}
	if err := h.instructorService.Update(c.Request.Context(), instructor); err != nil {
		if errors.Is(err, repository.ErrNoRows) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "instructor updated successfully"})
}

// Delete godoc
// DELETE /api/v1/instructors/:id
func (h *InstructorHandler) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	if err := h.instructorService.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, repository.ErrNoRows) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "instructor deleted successfully"})
}
