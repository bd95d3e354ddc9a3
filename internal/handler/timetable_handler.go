package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/classgrid/timetable-backend/internal/model"
	"github.com/classgrid/timetable-backend/internal/repository"
	"github.com/classgrid/timetable-backend/internal/response"
	"github.com/classgrid/timetable-backend/internal/schedule"
	"github.com/classgrid/timetable-backend/internal/service"
	"github.com/classgrid/timetable-backend/internal/validator"
)

// TimetableHandler exposes the schedule: manual entry, conflict pre-check,
// bulk generation, deletion, and the read views.
type TimetableHandler struct {
	scheduleService *service.ScheduleService
}

func NewTimetableHandler(scheduleService *service.ScheduleService) *TimetableHandler {
	return &TimetableHandler{scheduleService: scheduleService}
}

// candidateFromRequest validates the request fields the binding layer cannot
// express: weekday label, clock format, and interval ordering. Returns a field
// error map on failure, mirroring validator.Bind.
func candidateFromRequest(req *model.ScheduleRequest) (schedule.Candidate, map[string]string) {
	fields := make(map[string]string)

	if !model.IsWeekday(req.Day) {
		fields["day"] = "day must be one of Monday through Friday"
	}
	start, err := model.ParseClock(req.StartTime)
	if err != nil {
		fields["start_time"] = "start_time must be a zero-padded 24-hour HH:MM string"
	}
	end, err := model.ParseClock(req.EndTime)
	if err != nil {
		fields["end_time"] = "end_time must be a zero-padded 24-hour HH:MM string"
	}
	if len(fields) == 0 && start >= end {
		fields["end_time"] = "end_time must be after start_time"
	}
	if len(fields) > 0 {
		return schedule.Candidate{}, fields
	}

	return schedule.Candidate{
		CourseID:     req.CourseID,
		InstructorID: req.InstructorID,
		RoomID:       req.RoomID,
		Day:          req.Day,
		StartTime:    start,
		EndTime:      end,
	}, nil
}

// ListSchedules godoc
// GET /api/v1/schedules
func (h *TimetableHandler) ListSchedules(c *gin.Context) {
	assignments, err := h.scheduleService.List(c.Request.Context())
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	if assignments == nil {
		assignments = []model.Assignment{}
	}

	response.Success(c, http.StatusOK, gin.H{"schedules": assignments})
}

// ScheduleClass godoc
// POST /api/v1/schedules
// Manual entry path: rejected with the conflict list when the slot is taken.
func (h *TimetableHandler) ScheduleClass(c *gin.Context) {
	var req model.ScheduleRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}
	cand, fields := candidateFromRequest(&req)
	if fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	created, conflicts, err := h.scheduleService.ScheduleClass(c.Request.Context(), cand)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	if len(conflicts) > 0 {
		response.FailWithConflicts(c, http.StatusConflict, response.ErrScheduleConflict, conflicts)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"schedule": created})
}

// CheckConflicts godoc
// POST /api/v1/schedules/check
// Pure pre-check: returns the conflict list without mutating anything.
func (h *TimetableHandler) CheckConflicts(c *gin.Context) {
	var req model.ScheduleRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}
	cand, fields := candidateFromRequest(&req)
	if fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	conflicts, err := h.scheduleService.CheckConflicts(c.Request.Context(), cand)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	if conflicts == nil {
		conflicts = []string{}
	}

	response.Success(c, http.StatusOK, gin.H{"conflicts": conflicts})
}

// DeleteSchedule godoc
// DELETE /api/v1/schedules/:id
func (h *TimetableHandler) DeleteSchedule(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	if err := h.scheduleService.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, repository.ErrNoRows) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "schedule deleted successfully"})
}

// ClearSchedules godoc
// DELETE /api/v1/schedules
func (h *TimetableHandler) ClearSchedules(c *gin.Context) {
	if err := h.scheduleService.Clear(c.Request.Context()); err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "all schedules cleared"})
}

// GenerateTimetable godoc
// POST /api/v1/timetable/generate
// Destructive full rebuild: discards every existing schedule entry, including
// manually entered ones, before placing the new set.
func (h *TimetableHandler) GenerateTimetable(c *gin.Context) {
	placed, err := h.scheduleService.Generate(c.Request.Context())
	if err != nil {
		if errors.Is(err, schedule.ErrNothingToSchedule) {
			response.Fail(c, http.StatusUnprocessableEntity, response.ErrNothingToSchedule)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"placed_count": placed})
}

// WeeklyView godoc
// GET /api/v1/timetable/weekly
func (h *TimetableHandler) WeeklyView(c *gin.Context) {
	view, err := h.scheduleService.WeeklyView(c.Request.Context())
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"timetable": view})
}

// InstructorView godoc
// GET /api/v1/timetable/instructors
func (h *TimetableHandler) InstructorView(c *gin.Context) {
	views, err := h.scheduleService.InstructorView(c.Request.Context())
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"instructors": views})
}

// RoomView godoc
// GET /api/v1/timetable/rooms
func (h *TimetableHandler) RoomView(c *gin.Context) {
	views, err := h.scheduleService.RoomView(c.Request.Context())
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"rooms": views})
}

// Dashboard godoc
// GET /api/v1/dashboard
func (h *TimetableHandler) Dashboard(c *gin.Context) {
	stats, err := h.scheduleService.Stats(c.Request.Context())
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"stats": stats})
}
