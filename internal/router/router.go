package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/classgrid/timetable-backend/internal/config"
	"github.com/classgrid/timetable-backend/internal/handler"
	"github.com/classgrid/timetable-backend/internal/middleware"
	"github.com/classgrid/timetable-backend/internal/response"
)

// Handlers groups all handler instances for route setup.
type Handlers struct {
	Course     *handler.CourseHandler
	Instructor *handler.InstructorHandler
	Room       *handler.RoomHandler
	Timetable  *handler.TimetableHandler
	WS         *handler.WSHandler
}

// SetupRouter configures all Gin route groups with appropriate middlewares.
func SetupRouter(handlers *Handlers, cfg *config.Config) *gin.Engine {
	gin.SetMode(cfg.GinMode)
	router := gin.Default()

	// ─── CORS ──────────────────────────────────────────────────────────
	// If AllowedOrigins is set in config, restrict to that list;
	// otherwise allow all (*) so dev works without extra config.
	corsConfig := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"}
	corsConfig.ExposeHeaders = []string{"X-Request-ID"}
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	// Apply request ID middleware globally so every response includes metadata.
	router.Use(response.RequestIDMiddleware())

	// Health check.
	router.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, gin.H{"status": "ok"})
	})

	// Rate limiter for the destructive full-rebuild endpoint
	// (10 requests per minute per IP).
	generateLimiter := middleware.NewRateLimiter(10, time.Minute)

	api := router.Group("/api/v1")
	{
		// Course management
		api.GET("/courses", handlers.Course.GetAll)
		api.POST("/courses", handlers.Course.Create)
		api.PUT("/courses/:id", handlers.Course.Update)
		api.DELETE("/courses/:id", handlers.Course.Delete)

		// Instructor management
		api.GET("/instructors", handlers.Instructor.GetAll)
		api.POST("/instructors", handlers.Instructor.Create)
		api.PUT("/instructors/:id", handlers.Instructor.Update)
		api.DELETE("/instructors/:id", handlers.Instructor.Delete)

		// Room management
		api.GET("/rooms", handlers.Room.GetAll)
		api.POST("/rooms", handlers.Room.Create)
		api.PUT("/rooms/:id", handlers.Room.Update)
		api.DELETE("/rooms/:id", handlers.Room.Delete)

		// Schedule entries
		api.GET("/schedules", handlers.Timetable.ListSchedules)
		api.POST("/schedules", handlers.Timetable.ScheduleClass)
		api.POST("/schedules/check", handlers.Timetable.CheckConflicts)
		api.DELETE("/schedules/:id", handlers.Timetable.DeleteSchedule)
		api.DELETE("/schedules", handlers.Timetable.ClearSchedules)

		// Timetable views and generation
		api.POST("/timetable/generate", generateLimiter.Middleware(), handlers.Timetable.GenerateTimetable)
		api.GET("/timetable/weekly", handlers.Timetable.WeeklyView)
		api.GET("/timetable/instructors", handlers.Timetable.InstructorView)
		api.GET("/timetable/rooms", handlers.Timetable.RoomView)

		// Dashboard
		api.GET("/dashboard", handlers.Timetable.Dashboard)
	}

	// ─── WebSocket Group ───────────────────────────────────────────────
	ws := router.Group("/ws/v1")
	{
		ws.GET("/timetable/stream", handlers.WS.TimetableStream)
	}

	return router
}
