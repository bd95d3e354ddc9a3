package service

import (
	"context"

	"github.com/classgrid/timetable-backend/internal/model"
	"github.com/classgrid/timetable-backend/internal/repository"
)

type RoomService struct {
	roomRepo *repository.RoomRepository
}

func NewRoomService(roomRepo *repository.RoomRepository) *RoomService {
	return &RoomService{roomRepo: roomRepo}
}

func (s *RoomService) GetAll(ctx context.Context) ([]model.Room, error) {
	return s.roomRepo.GetAll(ctx)
}

func (s *RoomService) Create(ctx context.Context, r *model.Room) error {
	return s.roomRepo.Create(ctx, r)
}

func (s *RoomService) Update(ctx context.Context, r *model.Room) error {
	return s.roomRepo.Update(ctx, r)
}

func (s *RoomService) Delete(ctx context.Context, id int) error {
	return s.roomRepo.Delete(ctx, id)
}
