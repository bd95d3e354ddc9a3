package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/classgrid/timetable-backend/internal/config"
	"github.com/classgrid/timetable-backend/internal/model"
	"github.com/classgrid/timetable-backend/internal/repository"
	"github.com/classgrid/timetable-backend/internal/schedule"
)

// scheduleLockID is the advisory lock key serializing every timetable
// mutation. Check-then-append and clear-then-rebuild both read the current
// assignment set before writing, so concurrent writers must be excluded for
// the whole operation.
const scheduleLockID int64 = 0x7419_0001

// ScheduleService owns the assignment collection. All mutations run in a
// transaction holding the schedule advisory lock; reads outside mutations go
// straight to the pool.
type ScheduleService struct {
	pool           *pgxpool.Pool
	assignmentRepo *repository.AssignmentRepository
	courseRepo     *repository.CourseRepository
	instructorRepo *repository.InstructorRepository
	roomRepo       *repository.RoomRepository
	rdb            *redis.Client
	cfg            *config.Config
	log            zerolog.Logger
}

// NewScheduleService creates a new ScheduleService.
func NewScheduleService(
	pool *pgxpool.Pool,
	assignmentRepo *repository.AssignmentRepository,
	courseRepo *repository.CourseRepository,
	instructorRepo *repository.InstructorRepository,
	roomRepo *repository.RoomRepository,
	rdb *redis.Client,
	cfg *config.Config,
	log zerolog.Logger,
) *ScheduleService {
	return &ScheduleService{
		pool:           pool,
		assignmentRepo: assignmentRepo,
		courseRepo:     courseRepo,
		instructorRepo: instructorRepo,
		roomRepo:       roomRepo,
		rdb:            rdb,
		cfg:            cfg,
		log:            log.With().Str("component", "schedule_service").Logger(),
	}
}

// ScheduleClass attempts to commit one class session. On a double-booking it
// returns the conflict descriptions and mutates nothing; on success it returns
// the created assignment with a fresh ID.
func (s *ScheduleService) ScheduleClass(ctx context.Context, cand schedule.Candidate) (*model.Assignment, []string, error) {
	names, err := s.courseRepo.NamesByID(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("load course names: %w", err)
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock($1)`, scheduleLockID); err != nil {
		return nil, nil, fmt.Errorf("acquire schedule lock: %w", err)
	}

	existing, err := s.assignmentRepo.ListTx(ctx, tx)
	if err != nil {
		return nil, nil, fmt.Errorf("load assignments: %w", err)
	}

	if conflicts := schedule.FindConflicts(existing, names, cand); len(conflicts) > 0 {
		return nil, conflicts, nil
	}

	a := &model.Assignment{
		ID:           uuid.New(),
		CourseID:     cand.CourseID,
		InstructorID: cand.InstructorID,
		RoomID:       cand.RoomID,
		Day:          cand.Day,
		StartTime:    cand.StartTime,
		EndTime:      cand.EndTime,
	}
	if err := s.assignmentRepo.InsertTx(ctx, tx, a); err != nil {
		return nil, nil, fmt.Errorf("insert assignment: %w", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, nil, fmt.Errorf("commit: %w", err)
	}

	s.notifyChange(ctx, model.TimetableEvent{Type: model.EventClassScheduled, At: time.Now().UTC()})
	return a, nil, nil
}

// CheckConflicts runs the conflict checker against the committed timetable
// without mutating anything.
func (s *ScheduleService) CheckConflicts(ctx context.Context, cand schedule.Candidate) ([]string, error) {
	names, err := s.courseRepo.NamesByID(ctx)
	if err != nil {
		return nil, fmt.Errorf("load course names: %w", err)
	}
	existing, err := s.assignmentRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("load assignments: %w", err)
	}
	return schedule.FindConflicts(existing, names, cand), nil
}

// Generate discards the whole timetable and rebuilds it from the current
// courses, instructors and rooms. The precondition check runs before anything
// is cleared; the clear-and-rebuild itself is one transaction, so readers
// never observe a partially built timetable. Returns the number of sessions
// placed, which may undercount the total requested when the grid saturates.
func (s *ScheduleService) Generate(ctx context.Context) (int, error) {
	courses, err := s.courseRepo.GetAll(ctx)
	if err != nil {
		return 0, fmt.Errorf("load courses: %w", err)
	}
	instructors, err := s.instructorRepo.GetAll(ctx)
	if err != nil {
		return 0, fmt.Errorf("load instructors: %w", err)
	}
	rooms, err := s.roomRepo.GetAll(ctx)
	if err != nil {
		return 0, fmt.Errorf("load rooms: %w", err)
	}

	placed, err := schedule.Generate(courses, instructors, rooms)
	if err != nil {
		// Precondition failure: existing assignments stay untouched.
		return 0, err
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock($1)`, scheduleLockID); err != nil {
		return 0, fmt.Errorf("acquire schedule lock: %w", err)
	}
	if err := s.assignmentRepo.ReplaceAllTx(ctx, tx, placed); err != nil {
		return 0, fmt.Errorf("replace assignments: %w", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("commit: %w", err)
	}

	s.log.Info().Int("placed", len(placed)).Int("courses", len(courses)).Msg("Timetable generated")
	s.notifyChange(ctx, model.TimetableEvent{Type: model.EventTimetableGenerated, PlacedCount: len(placed), At: time.Now().UTC()})
	return len(placed), nil
}

// List returns the raw assignment collection.
func (s *ScheduleService) List(ctx context.Context) ([]model.Assignment, error) {
	return s.assignmentRepo.List(ctx)
}

// Delete removes a single assignment. No cascade, no re-validation of the
// remaining entries.
func (s *ScheduleService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.assignmentRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.notifyChange(ctx, model.TimetableEvent{Type: model.EventClassRemoved, At: time.Now().UTC()})
	return nil
}

// Clear removes every assignment.
func (s *ScheduleService) Clear(ctx context.Context) error {
	if err := s.assignmentRepo.Clear(ctx); err != nil {
		return err
	}
	s.notifyChange(ctx, model.TimetableEvent{Type: model.EventTimetableCleared, At: time.Now().UTC()})
	return nil
}

// Stats returns the dashboard entity counters.
func (s *ScheduleService) Stats(ctx context.Context) (*model.DashboardStats, error) {
	var stats model.DashboardStats
	var err error
	if stats.Courses, err = s.courseRepo.Count(ctx); err != nil {
		return nil, err
	}
	if stats.Instructors, err = s.instructorRepo.Count(ctx); err != nil {
		return nil, err
	}
	if stats.Rooms, err = s.roomRepo.Count(ctx); err != nil {
		return nil, err
	}
	if stats.ScheduledClasses, err = s.assignmentRepo.Count(ctx); err != nil {
		return nil, err
	}
	return &stats, nil
}

// WeeklyView returns the timetable grouped per weekday, serving the Redis
// snapshot when present and rebuilding it on a miss.
func (s *ScheduleService) WeeklyView(ctx context.Context) (*model.WeeklyView, error) {
	cached, err := s.rdb.Get(ctx, config.CacheKey.WeeklyViewKey()).Result()
	if err == nil && cached != "" {
		var view model.WeeklyView
		if err := json.Unmarshal([]byte(cached), &view); err == nil {
			return &view, nil
		}
		// Corrupt snapshot: fall through and rebuild.
	} else if err != nil && !errors.Is(err, redis.Nil) {
		s.log.Warn().Err(err).Msg("Weekly view cache read failed")
	}

	return s.RebuildWeeklyCache(ctx)
}

// RebuildWeeklyCache recomputes the weekly view from PostgreSQL and rewrites
// the Redis snapshot. The snapshot worker calls this after every mutation.
func (s *ScheduleService) RebuildWeeklyCache(ctx context.Context) (*model.WeeklyView, error) {
	labels, err := s.loadLabels(ctx)
	if err != nil {
		return nil, err
	}
	assignments, err := s.assignmentRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("load assignments: %w", err)
	}

	view := &model.WeeklyView{Days: make([]model.DayView, 0, len(model.Weekdays))}
	for _, day := range model.Weekdays {
		dayView := model.DayView{Day: day, Classes: []model.ScheduledClass{}}
		for _, a := range assignments {
			if a.Day == day {
				dayView.Classes = append(dayView.Classes, labels.resolve(a))
			}
		}
		sort.SliceStable(dayView.Classes, func(i, j int) bool {
			return dayView.Classes[i].StartTime < dayView.Classes[j].StartTime
		})
		view.Days = append(view.Days, dayView)
	}

	if raw, err := json.Marshal(view); err == nil {
		if err := s.rdb.Set(ctx, config.CacheKey.WeeklyViewKey(), raw, s.cfg.ViewCacheTTL).Err(); err != nil {
			s.log.Warn().Err(err).Msg("Weekly view cache write failed")
		}
	}
	return view, nil
}

// InstructorView returns every instructor with their sorted classes.
func (s *ScheduleService) InstructorView(ctx context.Context) ([]model.InstructorSchedule, error) {
	labels, err := s.loadLabels(ctx)
	if err != nil {
		return nil, err
	}
	assignments, err := s.assignmentRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("load assignments: %w", err)
	}

	views := make([]model.InstructorSchedule, 0, len(labels.instructors))
	for _, inst := range labels.instructors {
		view := model.InstructorSchedule{
			InstructorID: inst.ID,
			Name:         inst.Name,
			Department:   inst.Department,
			Classes:      []model.ScheduledClass{},
		}
		for _, a := range assignments {
			if a.InstructorID == inst.ID {
				view.Classes = append(view.Classes, labels.resolve(a))
			}
		}
		sortByDayAndStart(view.Classes)
		views = append(views, view)
	}
	return views, nil
}

// RoomView returns every room with its sorted classes.
func (s *ScheduleService) RoomView(ctx context.Context) ([]model.RoomSchedule, error) {
	labels, err := s.loadLabels(ctx)
	if err != nil {
		return nil, err
	}
	assignments, err := s.assignmentRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("load assignments: %w", err)
	}

	views := make([]model.RoomSchedule, 0, len(labels.rooms))
	for _, rm := range labels.rooms {
		view := model.RoomSchedule{
			RoomID:   rm.ID,
			Number:   rm.Number,
			Building: rm.Building,
			Capacity: rm.Capacity,
			Classes:  []model.ScheduledClass{},
		}
		for _, a := range assignments {
			if a.RoomID == rm.ID {
				view.Classes = append(view.Classes, labels.resolve(a))
			}
		}
		sortByDayAndStart(view.Classes)
		views = append(views, view)
	}
	return views, nil
}

// ────────────────────────────────────────────────────────────────────────────
// Internal helpers
// ────────────────────────────────────────────────────────────────────────────

// entityLabels resolves assignment references to display labels, tolerating
// dangling IDs permanently since deletion never cascades.
type entityLabels struct {
	courseNames map[int]string
	instructors []model.Instructor
	rooms       []model.Room
	instByID    map[int]model.Instructor
	roomByID    map[int]model.Room
}

func (s *ScheduleService) loadLabels(ctx context.Context) (*entityLabels, error) {
	names, err := s.courseRepo.NamesByID(ctx)
	if err != nil {
		return nil, fmt.Errorf("load course names: %w", err)
	}
	instructors, err := s.instructorRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load instructors: %w", err)
	}
	rooms, err := s.roomRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load rooms: %w", err)
	}

	labels := &entityLabels{
		courseNames: names,
		instructors: instructors,
		rooms:       rooms,
		instByID:    make(map[int]model.Instructor, len(instructors)),
		roomByID:    make(map[int]model.Room, len(rooms)),
	}
	for _, i := range instructors {
		labels.instByID[i.ID] = i
	}
	for _, r := range rooms {
		labels.roomByID[r.ID] = r
	}
	return labels, nil
}

func (l *entityLabels) resolve(a model.Assignment) model.ScheduledClass {
	sc := model.ScheduledClass{
		ID:             a.ID,
		CourseName:     schedule.MissingCourseLabel,
		InstructorName: schedule.MissingCourseLabel,
		RoomNumber:     schedule.MissingCourseLabel,
		Day:            a.Day,
		StartTime:      a.StartTime,
		EndTime:        a.EndTime,
	}
	if name, ok := l.courseNames[a.CourseID]; ok && name != "" {
		sc.CourseName = name
	}
	if inst, ok := l.instByID[a.InstructorID]; ok {
		sc.InstructorName = inst.Name
	}
	if rm, ok := l.roomByID[a.RoomID]; ok {
		sc.RoomNumber = rm.Number
	}
	return sc
}

func sortByDayAndStart(classes []model.ScheduledClass) {
	dayOrder := make(map[string]int, len(model.Weekdays))
	for i, d := range model.Weekdays {
		dayOrder[d] = i
	}
	sort.SliceStable(classes, func(i, j int) bool {
		if dayOrder[classes[i].Day] != dayOrder[classes[j].Day] {
			return dayOrder[classes[i].Day] < dayOrder[classes[j].Day]
		}
		return classes[i].StartTime < classes[j].StartTime
	})
}

// notifyChange invalidates the weekly snapshot, queues a rebuild for the
// snapshot worker, and publishes the event for WebSocket fanout. Failures are
// logged, not surfaced: the source of truth already committed.
func (s *ScheduleService) notifyChange(ctx context.Context, event model.TimetableEvent) {
	if err := s.rdb.Del(ctx, config.CacheKey.WeeklyViewKey()).Err(); err != nil {
		s.log.Warn().Err(err).Msg("Weekly view cache invalidation failed")
	}
	if err := s.rdb.RPush(ctx, config.CacheKey.RefreshQueueKey(), event.Type).Err(); err != nil {
		s.log.Warn().Err(err).Msg("Refresh queue push failed")
	}
	raw, err := json.Marshal(event)
	if err != nil {
		s.log.Error().Err(err).Msg("Event marshal failed")
		return
	}
	if err := s.rdb.Publish(ctx, config.CacheKey.EventsChannel(), raw).Err(); err != nil {
		s.log.Warn().Err(err).Str("event", event.Type).Msg("Event publish failed")
	}
}
