package service

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"lexiscreen_backend/internal/model"
	"lexiscreen_backend/internal/repository"
	"lexiscreen_backend/internal/screening"
	"lexiscreen_backend/internal/util"
	"lexiscreen_backend/pkg/logger"
	"lexiscreen_backend/pkg/monitoring"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const riskCacheTTL = 24 * time.Hour

// ScreeningService runs the question battery. Assessments live in
// memory, one per user; only the finished outcome is persisted.
type ScreeningService struct {
	mu          sync.Mutex
	assessments map[uint]*screening.Assessment

	ScreeningRepo *repository.ScreeningRepository
	UserRepo      *repository.UserRepository
	Classifier    RiskClassifier
	Redis         *redis.Client
}

func NewScreeningService(
	screeningRepo *repository.ScreeningRepository,
	userRepo *repository.UserRepository,
	classifier RiskClassifier,
	rdb *redis.Client,
) *ScreeningService {
	return &ScreeningService{
		assessments:   make(map[uint]*screening.Assessment),
		ScreeningRepo: screeningRepo,
		UserRepo:      userRepo,
		Classifier:    classifier,
		Redis:         rdb,
	}
}

// Questions exposes the battery. Expected answers never serialize.
func (s *ScreeningService) Questions() []screening.Question {
	return screening.Questions()
}

// Start begins a fresh assessment, replacing any abandoned run.
func (s *ScreeningService) Start(userID uint, demo screening.Demographics) (*screening.Assessment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a := screening.NewAssessment()
	if err := a.Start(demo); err != nil {
		return nil, err
	}
	s.assessments[userID] = a
	return a, nil
}

type AnswerOutcome struct {
	Correct   bool `json:"correct"`
	Finished  bool `json:"finished"`
	NextIndex int  `json:"nextIndex"`
}

func (s *ScreeningService) Answer(userID uint, questionID int, answer string) (*AnswerOutcome, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.assessments[userID]
	if !ok {
		return nil, util.ErrScreeningNotFound
	}

	correct, err := a.Submit(questionID, answer)
	if err != nil {
		return nil, err
	}
	return &AnswerOutcome{
		Correct:   correct,
		Finished:  a.State() == screening.StateFinished,
		NextIndex: a.Index(),
	}, nil
}

// SequenceVisible reports whether the memory question is still in its
// reveal window.
func (s *ScreeningService) SequenceVisible(userID uint) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.assessments[userID]
	if !ok {
		return false, util.ErrScreeningNotFound
	}
	return a.SequenceVisible(), nil
}

// Finish classifies a completed assessment, persists the run and stores
// the label on the user. The in-memory assessment is dropped only on
// success so a classifier outage can be retried.
func (s *ScreeningService) Finish(ctx context.Context, userID uint) (*model.ScreeningRecord, error) {
	s.mu.Lock()
	a, ok := s.assessments[userID]
	s.mu.Unlock()
	if !ok {
		return nil, util.ErrScreeningNotFound
	}
	if a.State() != screening.StateFinished {
		return nil, screening.ErrNotInProgress
	}

	payload := a.Payload()
	prediction, err := s.Classifier.Classify(ctx, payload)
	if err != nil {
		return nil, err
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	demo := a.Demographics()
	record := &model.ScreeningRecord{
		UserID:         userID,
		Age:            demo.Age,
		Gender:         demo.Gender,
		NativeLangCode: demo.NativeLangCode,
		Payload:        raw,
		RiskLevel:      prediction.RiskLevel,
		Probability:    prediction.Probability,
	}
	if err := s.ScreeningRepo.Create(record); err != nil {
		return nil, err
	}
	if err := s.UserRepo.UpdateRiskLevel(userID, prediction.RiskLevel); err != nil {
		return nil, err
	}
	s.cacheRiskLevel(ctx, userID, prediction.RiskLevel)

	monitoring.ScreeningsCompleted.Inc()
	monitoring.ClassificationsByLabel.WithLabelValues(prediction.RiskLevel).Inc()
	logger.Log.Info("screening classified",
		zap.Uint("userID", userID),
		zap.String("riskLevel", prediction.RiskLevel),
		zap.Float64("probability", prediction.Probability))

	s.mu.Lock()
	delete(s.assessments, userID)
	s.mu.Unlock()

	return record, nil
}

// RiskLevel resolves the user's current label, cache first.
func (s *ScreeningService) RiskLevel(ctx context.Context, userID uint) (string, error) {
	key := riskCacheKey(userID)
	if s.Redis != nil {
		if val, err := s.Redis.Get(ctx, key).Result(); err == nil && val != "" {
			return val, nil
		}
	}

	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		return "", err
	}
	if user.RiskLevel != "" {
		s.cacheRiskLevel(ctx, userID, user.RiskLevel)
	}
	return user.RiskLevel, nil
}

func (s *ScreeningService) cacheRiskLevel(ctx context.Context, userID uint, riskLevel string) {
	if s.Redis == nil {
		return
	}
	if err := s.Redis.Set(ctx, riskCacheKey(userID), riskLevel, riskCacheTTL).Err(); err != nil {
		logger.Log.Warn("risk cache write failed", zap.Error(err))
	}
}

func riskCacheKey(userID uint) string {
	return fmt.Sprintf("risk:%d", userID)
}

// History returns past screening runs, newest first.
func (s *ScreeningService) History(userID uint) ([]model.ScreeningRecord, error) {
	return s.ScreeningRepo.FindByUser(userID)
}
