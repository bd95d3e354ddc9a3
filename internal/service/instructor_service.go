package service

import (
	"context"

	"github.com/classgrid/timetable-backend/internal/model"
	"github.com/classgrid/timetable-backend/internal/repository"
)

type InstructorService struct {
	instructorRepo *repository.InstructorRepository
}

func NewInstructorService(instructorRepo *repository.InstructorRepository) *InstructorService {
	return &InstructorService{instructorRepo: instructorRepo}
}

func (s *InstructorService) GetAll(ctx context.Context) ([]model.Instructor, error) {
	return s.instructorRepo.GetAll(ctx)
}

func (s *InstructorService) Create(ctx context.Context, i *model.Instructor) error {
	return s.instructorRepo.Create(ctx, i)
}

func (s *InstructorService) Update(ctx context.Context, i *model.Instructor) error {
	return s.instructorRepo.Update(ctx, i)
}

func (s *InstructorService) Delete(ctx context.Context, id int) error {
	return s.instructorRepo.Delete(ctx, id)
}
