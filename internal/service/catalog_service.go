package service

import (
	"context"

	"lexiscreen_backend/internal/exercise"
)

// CatalogService assembles the exercise list a student sees: the static
// set for their risk label plus one hybrid entry per teacher assignment.
type CatalogService struct {
	Screening   *ScreeningService
	Assignments *AssignmentService
}

func NewCatalogService(screeningService *ScreeningService, assignmentService *AssignmentService) *CatalogService {
	return &CatalogService{
		Screening:   screeningService,
		Assignments: assignmentService,
	}
}

func (s *CatalogService) CatalogForUser(ctx context.Context, userID uint) ([]exercise.Exercise, error) {
	riskLevel, err := s.Screening.RiskLevel(ctx, userID)
	if err != nil {
		return nil, err
	}

	catalog := exercise.CatalogFor(riskLevel)

	assignments, err := s.Assignments.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, a := range assignments {
		catalog = append(catalog, exercise.NewAssignmentExercise(a.ID, a.Title, a.Text))
	}
	return catalog, nil
}

// FindForUser resolves one exercise by catalog id.
func (s *CatalogService) FindForUser(ctx context.Context, userID uint, exerciseID string) (exercise.Exercise, bool, error) {
	catalog, err := s.CatalogForUser(ctx, userID)
	if err != nil {
		return exercise.Exercise{}, false, err
	}
	ex, ok := exercise.FindExercise(catalog, exerciseID)
	return ex, ok, nil
}
