package service

import (
	"context"
	"encoding/json"
	"time"

	"lexiscreen_backend/internal/model"
	"lexiscreen_backend/internal/repository"
	"lexiscreen_backend/pkg/logger"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const (
	assignmentCacheKey = "assignments:all"
	assignmentCacheTTL = 5 * time.Minute
)

// AssignmentService manages teacher-authored passages. The full list is
// cached: every student catalog fetch reads it.
type AssignmentService struct {
	AssignmentRepo *repository.AssignmentRepository
	Redis          *redis.Client
}

func NewAssignmentService(assignmentRepo *repository.AssignmentRepository, rdb *redis.Client) *AssignmentService {
	return &AssignmentService{
		AssignmentRepo: assignmentRepo,
		Redis:          rdb,
	}
}

func (s *AssignmentService) Create(ctx context.Context, assignment *model.Assignment) error {
	if assignment.TaskType == "" {
		assignment.TaskType = model.AssignmentTaskHybrid
	}
	if err := s.AssignmentRepo.Create(assignment); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *AssignmentService) Update(ctx context.Context, assignment *model.Assignment) error {
	if err := s.AssignmentRepo.Update(assignment); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *AssignmentService) Delete(ctx context.Context, id uint) error {
	if err := s.AssignmentRepo.Delete(id); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *AssignmentService) FindByID(id uint) (*model.Assignment, error) {
	return s.AssignmentRepo.FindByID(id)
}

// List returns all assignments, cache first.
func (s *AssignmentService) List(ctx context.Context) ([]model.Assignment, error) {
	if s.Redis != nil {
		if raw, err := s.Redis.Get(ctx, assignmentCacheKey).Bytes(); err == nil {
			var cached []model.Assignment
			if err := json.Unmarshal(raw, &cached); err == nil {
				return cached, nil
			}
		}
	}

	assignments, err := s.AssignmentRepo.FindAll()
	if err != nil {
		return nil, err
	}

	if s.Redis != nil {
		if raw, err := json.Marshal(assignments); err == nil {
			if err := s.Redis.Set(ctx, assignmentCacheKey, raw, assignmentCacheTTL).Err(); err != nil {
				logger.Log.Warn("assignment cache write failed", zap.Error(err))
			}
		}
	}
	return assignments, nil
}

func (s *AssignmentService) invalidate(ctx context.Context) {
	if s.Redis == nil {
		return
	}
	if err := s.Redis.Del(ctx, assignmentCacheKey).Err(); err != nil {
		logger.Log.Warn("assignment cache invalidation failed", zap.Error(err))
	}
}
