package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"lexiscreen_backend/internal/config"
	"lexiscreen_backend/internal/screening"
	"lexiscreen_backend/internal/util"
	"lexiscreen_backend/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func init() {
	logger.Log = zap.NewNop()
}

func newClassifier(url string) *ClassifierService {
	return NewClassifierService(&config.ClassifierConfig{
		BaseURL:        url,
		APIKey:         "test-key",
		TimeoutSeconds: 2,
	})
}

func samplePayload() screening.FeaturePayload {
	return screening.BuildPayload(screening.Demographics{Age: 9, Gender: "female", NativeLangCode: 1}, nil)
}

func TestClassifySuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/predict", r.URL.Path)
		assert.Equal(t, "POST", r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, "test-key", r.Header.Get("X-API-Key"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"riskLevel":"High Risk","probability":0.87}`))
	}))
	defer srv.Close()

	prediction, err := newClassifier(srv.URL).Classify(context.Background(), samplePayload())
	require.NoError(t, err)
	assert.Equal(t, "High Risk", prediction.RiskLevel)
	assert.InDelta(t, 0.87, prediction.Probability, 1e-9)
}

func TestClassifyNon200(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := newClassifier(srv.URL).Classify(context.Background(), samplePayload())
	assert.ErrorIs(t, err, util.ErrClassifierUnavailable)
}

func TestClassifyMalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json`))
	}))
	defer srv.Close()

	_, err := newClassifier(srv.URL).Classify(context.Background(), samplePayload())
	assert.ErrorIs(t, err, util.ErrClassifierUnavailable)
}

func TestClassifyMissingLabel(t *testing.T) {
	// A syntactically valid answer without a label must not pass as a
	// low-risk outcome.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"probability":0.5}`))
	}))
	defer srv.Close()

	_, err := newClassifier(srv.URL).Classify(context.Background(), samplePayload())
	assert.ErrorIs(t, err, util.ErrClassifierUnavailable)
}

func TestClassifyConnectionRefused(t *testing.T) {
	_, err := newClassifier("http://127.0.0.1:1").Classify(context.Background(), samplePayload())
	assert.ErrorIs(t, err, util.ErrClassifierUnavailable)
}
