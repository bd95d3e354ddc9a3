package schedule

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/classgrid/timetable-backend/internal/model"
)

func mustClock(t *testing.T, s string) model.ClockMinutes {
	t.Helper()
	c, err := model.ParseClock(s)
	require.NoError(t, err)
	return c
}

func assignment(t *testing.T, courseID, instructorID, roomID int, day, start, end string) model.Assignment {
	t.Helper()
	return model.Assignment{
		ID:           uuid.New(),
		CourseID:     courseID,
		InstructorID: instructorID,
		RoomID:       roomID,
		Day:          day,
		StartTime:    mustClock(t, start),
		EndTime:      mustClock(t, end),
	}
}

func candidate(t *testing.T, courseID, instructorID, roomID int, day, start, end string) Candidate {
	t.Helper()
	return Candidate{
		CourseID:     courseID,
		InstructorID: instructorID,
		RoomID:       roomID,
		Day:          day,
		StartTime:    mustClock(t, start),
		EndTime:      mustClock(t, end),
	}
}

func TestFindConflicts(t *testing.T) {
	names := map[int]string{1: "Calculus I", 2: "Linear Algebra"}

	t.Run("empty timetable has no conflicts", func(t *testing.T) {
		got := FindConflicts(nil, names, candidate(t, 1, 10, 20, "Monday", "09:00", "10:00"))
		assert.Empty(t, got)
	})

	t.Run("instructor overlap on same day conflicts", func(t *testing.T) {
		existing := []model.Assignment{assignment(t, 1, 10, 20, "Monday", "09:00", "10:00")}

		got := FindConflicts(existing, names, candidate(t, 2, 10, 21, "Monday", "09:30", "10:30"))
		require.Len(t, got, 1)
		assert.Equal(t, "Instructor conflict: Already teaching Calculus I at this time", got[0])
	})

	t.Run("room overlap on same day conflicts", func(t *testing.T) {
		existing := []model.Assignment{assignment(t, 1, 10, 20, "Monday", "09:00", "10:00")}

		got := FindConflicts(existing, names, candidate(t, 2, 11, 20, "Monday", "09:30", "10:30"))
		require.Len(t, got, 1)
		assert.Equal(t, "Room conflict: Already in use for Calculus I at this time", got[0])
	})

	t.Run("same instructor and room yields both conflicts", func(t *testing.T) {
		existing := []model.Assignment{assignment(t, 1, 10, 20, "Monday", "09:00", "10:00")}

		got := FindConflicts(existing, names, candidate(t, 1, 10, 20, "Monday", "09:00", "10:00"))
		require.Len(t, got, 2)
		assert.Contains(t, got[0], "Instructor conflict")
		assert.Contains(t, got[1], "Room conflict")
	})

	t.Run("different day never conflicts", func(t *testing.T) {
		existing := []model.Assignment{assignment(t, 1, 10, 20, "Monday", "09:00", "10:00")}

		got := FindConflicts(existing, names, candidate(t, 2, 10, 20, "Tuesday", "09:00", "10:00"))
		assert.Empty(t, got)
	})

	t.Run("touching endpoints do not overlap", func(t *testing.T) {
		existing := []model.Assignment{assignment(t, 1, 10, 20, "Monday", "09:00", "10:00")}

		got := FindConflicts(existing, names, candidate(t, 2, 10, 20, "Monday", "10:00", "11:00"))
		assert.Empty(t, got)

		got = FindConflicts(existing, names, candidate(t, 2, 10, 20, "Monday", "08:00", "09:00"))
		assert.Empty(t, got)
	})

	t.Run("conflict detection is symmetric", func(t *testing.T) {
		a := assignment(t, 1, 10, 20, "Monday", "09:00", "11:00")
		b := assignment(t, 2, 10, 21, "Monday", "10:00", "12:00")

		fromA := FindConflicts([]model.Assignment{a}, names, candidate(t, 2, 10, 21, "Monday", "10:00", "12:00"))
		fromB := FindConflicts([]model.Assignment{b}, names, candidate(t, 1, 10, 20, "Monday", "09:00", "11:00"))
		assert.NotEmpty(t, fromA)
		assert.NotEmpty(t, fromB)
	})

	t.Run("duplicate messages are collapsed", func(t *testing.T) {
		// Two identical sessions of the same course produce the exact same
		// instructor and room messages; each must appear once.
		existing := []model.Assignment{
			assignment(t, 1, 10, 20, "Monday", "09:00", "10:00"),
			assignment(t, 1, 10, 20, "Monday", "09:00", "10:00"),
		}

		got := FindConflicts(existing, names, candidate(t, 2, 10, 20, "Monday", "09:00", "10:00"))
		assert.Len(t, got, 2)
	})

	t.Run("dangling course reference falls back to placeholder", func(t *testing.T) {
		existing := []model.Assignment{assignment(t, 99, 10, 20, "Monday", "09:00", "10:00")}

		got := FindConflicts(existing, names, candidate(t, 2, 10, 21, "Monday", "09:00", "10:00"))
		require.Len(t, got, 1)
		assert.Equal(t, "Instructor conflict: Already teaching N/A at this time", got[0])
	})

	t.Run("does not mutate its inputs", func(t *testing.T) {
		existing := []model.Assignment{assignment(t, 1, 10, 20, "Monday", "09:00", "10:00")}
		before := existing[0]

		FindConflicts(existing, names, candidate(t, 2, 10, 20, "Monday", "09:30", "10:30"))
		assert.Equal(t, before, existing[0])
		assert.Len(t, existing, 1)
	})
}

// Committed assignments must stay pairwise conflict-free: re-checking each one
// against the rest of the set always comes back empty.
func TestCommittedSetStaysConsistent(t *testing.T) {
	names := map[int]string{1: "Calculus I", 2: "Linear Algebra", 3: "Physics"}
	committed := []model.Assignment{
		assignment(t, 1, 10, 20, "Monday", "08:00", "09:00"),
		assignment(t, 2, 10, 21, "Monday", "09:00", "10:00"),
		assignment(t, 3, 11, 20, "Monday", "09:00", "10:00"),
		assignment(t, 1, 10, 20, "Tuesday", "08:00", "09:00"),
	}

	for i, a := range committed {
		rest := make([]model.Assignment, 0, len(committed)-1)
		rest = append(rest, committed[:i]...)
		rest = append(rest, committed[i+1:]...)

		cand := Candidate{
			CourseID:     a.CourseID,
			InstructorID: a.InstructorID,
			RoomID:       a.RoomID,
			Day:          a.Day,
			StartTime:    a.StartTime,
			EndTime:      a.EndTime,
		}
		assert.Empty(t, FindConflicts(rest, names, cand), "assignment %d conflicts with the rest of the set", i)
	}
}
