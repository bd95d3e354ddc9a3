package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/classgrid/timetable-backend/internal/model"
)

type CourseRepository struct {
	pool *pgxpool.Pool
}

func NewCourseRepository(pool *pgxpool.Pool) *CourseRepository {
	return &CourseRepository{pool: pool}
}

func (r *CourseRepository) Create(ctx context.Context, c *model.Course) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO courses (code, name, department, duration_minutes, weekly_frequency)
		 VALUES ($1, $2, $3, $4, $5) RETURNING id, created_at, updated_at`,
		c.Code, c.Name, c.Department, c.DurationMinutes, c.WeeklyFrequency,
	).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
}

func (r *CourseRepository) GetAll(ctx context.Context) ([]model.Course, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, code, name, department, duration_minutes, weekly_frequency, created_at, updated_at
		 FROM courses ORDER BY id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var courses []model.Course
	for rows.Next() {
		var c model.Course
		if err := rows.Scan(&c.ID, &c.Code, &c.Name, &c.Department, &c.DurationMinutes, &c.WeeklyFrequency, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		courses = append(courses, c)
	}
	return courses, rows.Err()
}

// NamesByID returns a course ID → name lookup used for conflict message text.
func (r *CourseRepository) NamesByID(ctx context.Context) (map[int]string, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, name FROM courses`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	names := make(map[int]string)
	for rows.Next() {
		var id int
		var name string
		if err := rows.Scan(&id, &name); err != nil {
			return nil, err
		}
		names[id] = name
	}
	return names, rows.Err()
}

func (r *CourseRepository) Update(ctx context.Context, c *model.Course) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE courses SET code = $1, name = $2, department = $3, duration_minutes = $4, weekly_frequency = $5, updated_at = NOW()
		 WHERE id = $6`,
		c.Code, c.Name, c.Department, c.DurationMinutes, c.WeeklyFrequency, c.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNoRows
	}
	return nil
}

// Delete removes a course. Schedule entries referencing it are left in place;
// display code substitutes a placeholder for the missing name.
func (r *CourseRepository) Delete(ctx context.Context, id int) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM courses WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNoRows
	}
	return nil
}

func (r *CourseRepository) Count(ctx context.Context) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM courses`).Scan(&n)
	return n, err
}
