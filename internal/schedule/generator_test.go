package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/classgrid/timetable-backend/internal/model"
)

func course(id int, name string, duration, frequency int) model.Course {
	return model.Course{ID: id, Code: name, Name: name, Department: "CS", DurationMinutes: duration, WeeklyFrequency: frequency}
}

func instructor(id int, name string) model.Instructor {
	return model.Instructor{ID: id, Name: name, Department: "CS", Email: name + "@example.edu", MaxClasses: 10}
}

func room(id int, number string) model.Room {
	return model.Room{ID: id, Number: number, Building: "Main", Capacity: 40}
}

func TestGeneratePreconditions(t *testing.T) {
	courses := []model.Course{course(1, "Calculus I", 60, 1)}
	instructors := []model.Instructor{instructor(10, "Ada")}
	rooms := []model.Room{room(20, "101")}

	cases := []struct {
		name        string
		courses     []model.Course
		instructors []model.Instructor
		rooms       []model.Room
	}{
		{"no courses", nil, instructors, rooms},
		{"no instructors", courses, nil, rooms},
		{"no rooms", courses, instructors, nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			placed, err := Generate(tc.courses, tc.instructors, tc.rooms)
			assert.ErrorIs(t, err, ErrNothingToSchedule)
			assert.Nil(t, placed)
		})
	}
}

func TestGenerateSingleCourseRetriesPastSelfCollisions(t *testing.T) {
	// One instructor and one room with two-hour sessions: consecutive slots
	// overlap the previous placement, so the generator must skip would-be
	// collisions and still place all three sessions.
	courses := []model.Course{course(1, "Calculus I", 120, 3)}
	instructors := []model.Instructor{instructor(10, "Ada")}
	rooms := []model.Room{room(20, "101")}

	placed, err := Generate(courses, instructors, rooms)
	require.NoError(t, err)
	require.Len(t, placed, 3)

	// 09:00 and 11:00 starts were skipped as conflicting.
	assert.Equal(t, "08:00", placed[0].StartTime.String())
	assert.Equal(t, "10:00", placed[1].StartTime.String())
	assert.Equal(t, "12:00", placed[2].StartTime.String())

	names := map[int]string{1: "Calculus I"}
	for i, a := range placed {
		assert.Equal(t, 1, a.CourseID)
		assert.Equal(t, 10, a.InstructorID)
		assert.Equal(t, 20, a.RoomID)
		assert.Contains(t, model.Weekdays, a.Day)
		assert.Contains(t, GeneratorStartTimes, a.StartTime)
		assert.NotEqual(t, [16]byte{}, [16]byte(a.ID))

		rest := make([]model.Assignment, 0, len(placed)-1)
		rest = append(rest, placed[:i]...)
		rest = append(rest, placed[i+1:]...)
		cand := Candidate{
			CourseID:     a.CourseID,
			InstructorID: a.InstructorID,
			RoomID:       a.RoomID,
			Day:          a.Day,
			StartTime:    a.StartTime,
			EndTime:      a.EndTime,
		}
		assert.Empty(t, FindConflicts(rest, names, cand), "generated assignments overlap")
	}
}

func TestGenerateFillsGridRowMajorWithLunchGap(t *testing.T) {
	// 60-minute sessions with a shared instructor force one session per slot,
	// walking Monday's eight start times in order before touching Tuesday.
	courses := []model.Course{course(1, "Calculus I", 60, 9)}
	instructors := []model.Instructor{instructor(10, "Ada")}
	rooms := []model.Room{room(20, "101")}

	placed, err := Generate(courses, instructors, rooms)
	require.NoError(t, err)
	require.Len(t, placed, 9)

	for i := 0; i < 8; i++ {
		assert.Equal(t, "Monday", placed[i].Day)
		assert.Equal(t, GeneratorStartTimes[i], placed[i].StartTime)
	}
	assert.Equal(t, "Tuesday", placed[8].Day)
	assert.Equal(t, GeneratorStartTimes[0], placed[8].StartTime)

	// 12:00 session ends at 13:00, 14:00 is the next start: the lunch gap
	// stays empty.
	assert.Equal(t, "12:00", placed[4].StartTime.String())
	assert.Equal(t, "13:00", placed[4].EndTime.String())
	assert.Equal(t, "14:00", placed[5].StartTime.String())
}

func TestGenerateRoundRobinOverInstructorsAndRooms(t *testing.T) {
	courses := []model.Course{course(1, "Calculus I", 60, 4)}
	instructors := []model.Instructor{instructor(10, "Ada"), instructor(11, "Grace")}
	rooms := []model.Room{room(20, "101"), room(21, "102"), room(22, "103")}

	placed, err := Generate(courses, instructors, rooms)
	require.NoError(t, err)
	require.Len(t, placed, 4)

	// Session i takes instructors[i%2] and rooms[i%3]. With distinct slots
	// there are no conflicts, so no retries shift the pattern.
	assert.Equal(t, []int{10, 11, 10, 11}, []int{placed[0].InstructorID, placed[1].InstructorID, placed[2].InstructorID, placed[3].InstructorID})
	assert.Equal(t, []int{20, 21, 22, 20}, []int{placed[0].RoomID, placed[1].RoomID, placed[2].RoomID, placed[3].RoomID})
}

func TestGenerateRoundsSessionEndUpToWholeHours(t *testing.T) {
	courses := []model.Course{course(1, "Lab", 90, 1)}
	instructors := []model.Instructor{instructor(10, "Ada")}
	rooms := []model.Room{room(20, "101")}

	placed, err := Generate(courses, instructors, rooms)
	require.NoError(t, err)
	require.Len(t, placed, 1)

	assert.Equal(t, "08:00", placed[0].StartTime.String())
	assert.Equal(t, "10:00", placed[0].EndTime.String())
}

func TestGenerateSaturatedGridUndercounts(t *testing.T) {
	// 50 requested sessions against a 40-slot grid with a single instructor:
	// the generator degrades to fewer placements instead of failing.
	courses := []model.Course{course(1, "Calculus I", 60, 50)}
	instructors := []model.Instructor{instructor(10, "Ada")}
	rooms := []model.Room{room(20, "101")}

	placed, err := Generate(courses, instructors, rooms)
	require.NoError(t, err)
	assert.Len(t, placed, 40)
}

func TestGenerateLaterCourseSeesExhaustedCursor(t *testing.T) {
	// The cursor is shared across courses and never rewinds: once the first
	// course consumes the grid, later courses place nothing even though their
	// instructors and rooms are free. Intentional parity with the original
	// allocation behavior.
	courses := []model.Course{
		course(1, "Calculus I", 60, 40),
		course(2, "Linear Algebra", 60, 2),
	}
	instructors := []model.Instructor{instructor(10, "Ada")}
	rooms := []model.Room{room(20, "101")}

	placed, err := Generate(courses, instructors, rooms)
	require.NoError(t, err)
	require.Len(t, placed, 40)
	for _, a := range placed {
		assert.Equal(t, 1, a.CourseID)
	}
}

func TestGenerateMultipleCoursesShareTheGridWithoutConflicts(t *testing.T) {
	courses := []model.Course{
		course(1, "Calculus I", 60, 3),
		course(2, "Linear Algebra", 60, 2),
		course(3, "Physics", 120, 2),
	}
	instructors := []model.Instructor{instructor(10, "Ada"), instructor(11, "Grace")}
	rooms := []model.Room{room(20, "101"), room(21, "102")}

	placed, err := Generate(courses, instructors, rooms)
	require.NoError(t, err)
	require.Len(t, placed, 7)

	names := map[int]string{1: "Calculus I", 2: "Linear Algebra", 3: "Physics"}
	for i, a := range placed {
		rest := make([]model.Assignment, 0, len(placed)-1)
		rest = append(rest, placed[:i]...)
		rest = append(rest, placed[i+1:]...)
		cand := Candidate{
			CourseID:     a.CourseID,
			InstructorID: a.InstructorID,
			RoomID:       a.RoomID,
			Day:          a.Day,
			StartTime:    a.StartTime,
			EndTime:      a.EndTime,
		}
		assert.Empty(t, FindConflicts(rest, names, cand))
	}
}
