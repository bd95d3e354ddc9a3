package main

import (
	"context"
	"fmt"
	"time"

	"github.com/classgrid/timetable-backend/internal/config"
	"github.com/classgrid/timetable-backend/internal/database"
	"github.com/classgrid/timetable-backend/internal/logger"
	"github.com/classgrid/timetable-backend/internal/model"
	"github.com/classgrid/timetable-backend/internal/repository"
	"github.com/classgrid/timetable-backend/internal/service"
)

func main() {
	cfg := config.Load()
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := database.NewPostgresPool(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	courseService := service.NewCourseService(repository.NewCourseRepository(pool), log)
	instructorService := service.NewInstructorService(repository.NewInstructorRepository(pool))
	roomService := service.NewRoomService(repository.NewRoomRepository(pool))

	fmt.Println("=== Seeding Demo Courses, Instructors and Rooms ===")

	courses := []model.Course{
		{Code: "CS101", Name: "Introduction to Programming", Department: "Computer Science", DurationMinutes: 60, WeeklyFrequency: 3},
		{Code: "CS201", Name: "Data Structures", Department: "Computer Science", DurationMinutes: 90, WeeklyFrequency: 2},
		{Code: "MATH110", Name: "Calculus I", Department: "Mathematics", DurationMinutes: 60, WeeklyFrequency: 3},
		{Code: "MATH220", Name: "Linear Algebra", Department: "Mathematics", DurationMinutes: 60, WeeklyFrequency: 2},
		{Code: "PHYS101", Name: "Mechanics", Department: "Physics", DurationMinutes: 120, WeeklyFrequency: 2},
		{Code: "ENG105", Name: "Academic Writing", Department: "English", DurationMinutes: 60, WeeklyFrequency: 1},
	}
	for i := range courses {
		if err := courseService.Create(ctx, &courses[i]); err != nil {
			log.Fatal().Err(err).Str("code", courses[i].Code).Msg("Failed to create course")
		}
		fmt.Printf("Created course %s (id=%d)\n", courses[i].Code, courses[i].ID)
	}

	instructors := []model.Instructor{
		{Name: "Dr. Amara Okafor", Department: "Computer Science", Email: "a.okafor@example.edu", MaxClasses: 10},
		{Name: "Prof. Lukas Meier", Department: "Mathematics", Email: "l.meier@example.edu", MaxClasses: 8},
		{Name: "Dr. Sofia Ramirez", Department: "Physics", Email: "s.ramirez@example.edu", MaxClasses: 8},
		{Name: "Dr. Mei-Ling Chen", Department: "English", Email: "m.chen@example.edu", MaxClasses: 6},
	}
	for i := range instructors {
		if err := instructorService.Create(ctx, &instructors[i]); err != nil {
			log.Fatal().Err(err).Str("name", instructors[i].Name).Msg("Failed to create instructor")
		}
		fmt.Printf("Created instructor %s (id=%d)\n", instructors[i].Name, instructors[i].ID)
	}

	rooms := []model.Room{
		{Number: "A-101", Building: "Science Block", Capacity: 60, Equipment: "projector, whiteboard"},
		{Number: "A-204", Building: "Science Block", Capacity: 40, Equipment: "projector"},
		{Number: "B-012", Building: "Engineering Hall", Capacity: 120, Equipment: "projector, lab benches"},
		{Number: "C-301", Building: "Humanities Wing", Capacity: 30, Equipment: "whiteboard"},
	}
	for i := range rooms {
		if err := roomService.Create(ctx, &rooms[i]); err != nil {
			log.Fatal().Err(err).Str("number", rooms[i].Number).Msg("Failed to create room")
		}
		fmt.Printf("Created room %s (id=%d)\n", rooms[i].Number, rooms[i].ID)
	}

	fmt.Println("=== Done ===")
}
