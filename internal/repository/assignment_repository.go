package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/classgrid/timetable-backend/internal/model"
)

// AssignmentRepository persists the timetable. The Tx-suffixed methods run
// inside the schedule service's transactions so check-then-append and
// clear-then-rebuild stay atomic.
type AssignmentRepository struct {
	pool *pgxpool.Pool
}

func NewAssignmentRepository(pool *pgxpool.Pool) *AssignmentRepository {
	return &AssignmentRepository{pool: pool}
}

const assignmentColumns = `id, course_id, instructor_id, room_id, day, start_minutes, end_minutes, created_at`

func scanAssignments(rows pgx.Rows) ([]model.Assignment, error) {
	defer rows.Close()

	var assignments []model.Assignment
	for rows.Next() {
		var a model.Assignment
		var start, end int
		if err := rows.Scan(&a.ID, &a.CourseID, &a.InstructorID, &a.RoomID, &a.Day, &start, &end, &a.CreatedAt); err != nil {
			return nil, err
		}
		a.StartTime = model.ClockMinutes(start)
		a.EndTime = model.ClockMinutes(end)
		assignments = append(assignments, a)
	}
	return assignments, rows.Err()
}

// List returns every assignment ordered by insertion time.
func (r *AssignmentRepository) List(ctx context.Context) ([]model.Assignment, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+assignmentColumns+` FROM assignments ORDER BY created_at ASC, id ASC`)
	if err != nil {
		return nil, err
	}
	return scanAssignments(rows)
}

// ListTx returns every assignment inside an open transaction, so the caller
// sees a consistent timetable while holding the schedule lock.
func (r *AssignmentRepository) ListTx(ctx context.Context, tx pgx.Tx) ([]model.Assignment, error) {
	rows, err := tx.Query(ctx,
		`SELECT `+assignmentColumns+` FROM assignments ORDER BY created_at ASC, id ASC`)
	if err != nil {
		return nil, err
	}
	return scanAssignments(rows)
}

// InsertTx appends a single assignment inside an open transaction.
func (r *AssignmentRepository) InsertTx(ctx context.Context, tx pgx.Tx, a *model.Assignment) error {
	return tx.QueryRow(ctx,
		`INSERT INTO assignments (id, course_id, instructor_id, room_id, day, start_minutes, end_minutes)
		 VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING created_at`,
		a.ID, a.CourseID, a.InstructorID, a.RoomID, a.Day, int(a.StartTime), int(a.EndTime),
	).Scan(&a.CreatedAt)
}

// ReplaceAllTx clears the timetable and bulk-inserts the given assignments in
// one transaction. Readers never observe the intermediate empty state.
func (r *AssignmentRepository) ReplaceAllTx(ctx context.Context, tx pgx.Tx, assignments []model.Assignment) error {
	if _, err := tx.Exec(ctx, `DELETE FROM assignments`); err != nil {
		return err
	}
	for i := range assignments {
		if err := r.InsertTx(ctx, tx, &assignments[i]); err != nil {
			return err
		}
	}
	return nil
}

// Delete removes one assignment. Never cascades and never re-validates the
// remaining entries.
func (r *AssignmentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM assignments WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNoRows
	}
	return nil
}

// Clear removes every assignment.
func (r *AssignmentRepository) Clear(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM assignments`)
	return err
}

func (r *AssignmentRepository) Count(ctx context.Context) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM assignments`).Scan(&n)
	return n, err
}
