package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/classgrid/timetable-backend/internal/model"
)

type RoomRepository struct {
	pool *pgxpool.Pool
}

func NewRoomRepository(pool *pgxpool.Pool) *RoomRepository {
	return &RoomRepository{pool: pool}
}

func (r *RoomRepository) Create(ctx context.Context, rm *model.Room) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO rooms (number, building, capacity, equipment)
		 VALUES ($1, $2, $3, $4) RETURNING id, created_at, updated_at`,
		rm.Number, rm.Building, rm.Capacity, rm.Equipment,
	).Scan(&rm.ID, &rm.CreatedAt, &rm.UpdatedAt)
}

func (r *RoomRepository) GetAll(ctx context.Context) ([]model.Room, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, number, building, capacity, equipment, created_at, updated_at
		 FROM rooms ORDER BY id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rooms []model.Room
	for rows.Next() {
		var rm model.Room
		if err := rows.Scan(&rm.ID, &rm.Number, &rm.Building, &rm.Capacity, &rm.Equipment, &rm.CreatedAt, &rm.UpdatedAt); err != nil {
			return nil, err
		}
		rooms = append(rooms, rm)
	}
	return rooms, rows.Err()
}

func (r *RoomRepository) Update(ctx context.Context, rm *model.Room) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE rooms SET number = $1, building = $2, capacity = $3, equipment = $4, updated_at = NOW()
		 WHERE id = $5`,
		rm.Number, rm.Building, rm.Capacity, rm.Equipment, rm.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNoRows
	}
	return nil
}

func (r *RoomRepository) Delete(ctx context.Context, id int) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM rooms WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNoRows
	}
	return nil
}

func (r *RoomRepository) Count(ctx context.Context) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM rooms`).Scan(&n)
	return n, err
}
