package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"lexiscreen_backend/internal/config"
	"lexiscreen_backend/internal/screening"
	"lexiscreen_backend/internal/util"
	"lexiscreen_backend/pkg/logger"

	"go.uber.org/zap"
)

// RiskClassifier turns a feature payload into a risk label.
type RiskClassifier interface {
	Classify(ctx context.Context, payload screening.FeaturePayload) (*Prediction, error)
}

type Prediction struct {
	RiskLevel   string  `json:"riskLevel"`
	Probability float64 `json:"probability"`
}

// ClassifierService calls the external inference endpoint. Failures are
// surfaced, never swallowed: a user must not be labeled low-risk because
// the model was down.
type ClassifierService struct {
	config *config.ClassifierConfig
	client *http.Client
}

func NewClassifierService(cfg *config.ClassifierConfig) *ClassifierService {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &ClassifierService{
		config: cfg,
		client: &http.Client{Timeout: timeout},
	}
}

func (s *ClassifierService) Classify(ctx context.Context, payload screening.FeaturePayload) (*Prediction, error) {
	jsonData, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", s.config.BaseURL+"/predict", bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if s.config.APIKey != "" {
		req.Header.Set("X-API-Key", s.config.APIKey)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		logger.Log.Error("classifier request failed", zap.Error(err))
		return nil, util.ErrClassifierUnavailable
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		logger.Log.Error("classifier returned non-200", zap.Int("status", resp.StatusCode))
		return nil, util.ErrClassifierUnavailable
	}

	var prediction Prediction
	if err := json.NewDecoder(resp.Body).Decode(&prediction); err != nil {
		logger.Log.Error("classifier response malformed", zap.Error(err))
		return nil, util.ErrClassifierUnavailable
	}
	if prediction.RiskLevel == "" {
		return nil, fmt.Errorf("classifier response missing risk level: %w", util.ErrClassifierUnavailable)
	}

	return &prediction, nil
}
