package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/classgrid/timetable-backend/internal/model"
)

type InstructorRepository struct {
	pool *pgxpool.Pool
}

func NewInstructorRepository(pool *pgxpool.Pool) *InstructorRepository {
	return &InstructorRepository{pool: pool}
}

func (r *InstructorRepository) Create(ctx context.Context, i *model.Instructor) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO instructors (name, department, email, max_classes)
		 VALUES ($1, $2, $3, $4) RETURNING id, created_at, updated_at`,
		i.Name, i.Department, i.Email, i.MaxClasses,
	).Scan(&i.ID, &i.CreatedAt, &i.UpdatedAt)
}

func (r *InstructorRepository) GetAll(ctx context.Context) ([]model.Instructor, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, name, department, email, max_classes, created_at, updated_at
		 FROM instructors ORDER BY id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var instructors []model.Instructor
	for rows.Next() {
		var i model.Instructor
		if err := rows.Scan(&i.ID, &i.Name, &i.Department, &i.Email, &i.MaxClasses, &i.CreatedAt, &i.UpdatedAt); err != nil {
			return nil, err
		}
		instructors = append(instructors, i)
	}
	return instructors, rows.Err()
}

func (r *InstructorRepository) Update(ctx context.Context, i *model.Instructor) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE instructors SET name = $1, department = $2, email = $3, max_classes = $4, updated_at = NOW()
		 WHERE id = $5`,
		i.Name, i.Department, i.Email, i.MaxClasses, i.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNoRows
	}
	return nil
}

func (r *InstructorRepository) Delete(ctx context.Context, id int) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM instructors WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNoRows
	}
	return nil
}

func (r *InstructorRepository) Count(ctx context.Context) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM instructors`).Scan(&n)
	return n, err
}
