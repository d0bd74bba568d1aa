package service

import (
	"context"
	"fmt"
	"sync"

	"lexiscreen_backend/internal/exercise"
	"lexiscreen_backend/internal/model"
	"lexiscreen_backend/internal/repository"
	"lexiscreen_backend/internal/speech"
	"lexiscreen_backend/internal/util"
	"lexiscreen_backend/pkg/logger"
	"lexiscreen_backend/pkg/monitoring"

	"go.uber.org/zap"
)

// GameplayTunables is read per session creation so config hot reloads
// apply to new sessions without restarting.
type GameplayTunables func() (exercise.Config, bool)

type sessionEntry struct {
	userID  uint
	session *exercise.Session
}

// SessionService owns the live exercise sessions. Session state is in
// memory; only completion results and unlock progress are persisted.
type SessionService struct {
	mu      sync.Mutex
	entries map[string]*sessionEntry

	Catalog      *CatalogService
	ProgressRepo *repository.ProgressRepository
	Results      *ResultService
	Tunables     GameplayTunables
}

func NewSessionService(
	catalog *CatalogService,
	progressRepo *repository.ProgressRepository,
	results *ResultService,
	tunables GameplayTunables,
) *SessionService {
	return &SessionService{
		entries:      make(map[string]*sessionEntry),
		Catalog:      catalog,
		ProgressRepo: progressRepo,
		Results:      results,
		Tunables:     tunables,
	}
}

// Create opens a session on one catalog exercise, restoring the user's
// unlock progress.
func (s *SessionService) Create(ctx context.Context, userID uint, exerciseID string) (*exercise.Session, error) {
	ex, ok, err := s.Catalog.FindForUser(ctx, userID, exerciseID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, util.ErrExerciseNotFound
	}

	snapshot, err := s.ProgressRepo.Snapshot(userID)
	if err != nil {
		return nil, err
	}

	cfg, captureEnabled := s.Tunables()
	sess := exercise.NewSession(ex, exercise.RestoreProgress(snapshot), cfg,
		exercise.WithSpeech(speech.NewRelayCapture(captureEnabled), speech.NewPlaybackState()))

	s.mu.Lock()
	s.entries[sess.ID] = &sessionEntry{userID: userID, session: sess}
	s.mu.Unlock()

	return sess, nil
}

func (s *SessionService) Get(userID uint, sessionID string) (*exercise.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.entries[sessionID]
	if !ok || entry.userID != userID {
		return nil, util.ErrSessionNotFound
	}
	return entry.session, nil
}

// Event is one gameplay action from the client. Action selects the verb;
// the other fields carry its arguments.
type Event struct {
	Action     string  `json:"action" binding:"required"`
	Index      int     `json:"index"`
	Option     string  `json:"option"`
	Mode       string  `json:"mode"`
	Transcript string  `json:"transcript"`
	Text       string  `json:"text"`
	Rate       float64 `json:"rate"`
}

// Dispatch applies one event under the session lock and handles the
// side effects of completion: persisting unlock progress and, for
// assignment content, submitting a result.
func (s *SessionService) Dispatch(ctx context.Context, userID uint, sessionID string, ev Event) (*exercise.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[sessionID]
	if !ok || entry.userID != userID {
		return nil, util.ErrSessionNotFound
	}
	sess := entry.session

	before := sess.State
	submission, err := s.apply(sess, ev)
	if err != nil {
		return nil, err
	}

	if submission != nil {
		result := &model.Result{
			StudentID:    userID,
			AssignmentID: submission.AssignmentID,
			Accuracy:     submission.Accuracy,
			Mode:         string(submission.Mode),
			Content:      submission.Content,
		}
		if err := s.Results.Submit(result); err != nil {
			return nil, err
		}
	}

	if before != exercise.StateResult && sess.State == exercise.StateResult {
		s.persistCompletion(userID, sess)
	}

	return sess, nil
}

func (s *SessionService) apply(sess *exercise.Session, ev Event) (*exercise.Submission, error) {
	switch ev.Action {
	case "chooseMode":
		return nil, sess.ChooseMode(exercise.TaskMode(ev.Mode))
	case "selectLevel":
		return nil, sess.SelectLevel(ev.Index)
	case "begin":
		return nil, sess.Begin()
	case "clickCell":
		return nil, sess.ClickGridCell(ev.Index)
	case "choose":
		return nil, sess.Choose(ev.Option)
	case "flip":
		return nil, sess.Flip()
	case "markLearned":
		return nil, sess.MarkLearned()
	case "tracingDone":
		return nil, sess.TracingDone()
	case "finishReading":
		return nil, sess.FinishReading()
	case "toggleNarration":
		return nil, sess.ToggleNarration()
	case "setRate":
		return nil, sess.SetNarrationRate(ev.Rate)
	case "finishAssisted":
		return nil, sess.FinishAssistedRead()
	case "startListening":
		return nil, sess.StartListening()
	case "pushTranscript":
		return nil, sess.PushTranscript(ev.Transcript)
	case "stopListening":
		return sess.StopListening()
	case "submitWriting":
		return sess.SubmitWriting(ev.Text)
	case "dismissError":
		sess.DismissError()
		return nil, nil
	default:
		return nil, fmt.Errorf("unknown action %q", ev.Action)
	}
}

func (s *SessionService) persistCompletion(userID uint, sess *exercise.Session) {
	exerciseID := sess.Exercise.ID
	maxUnlocked := sess.MaxUnlocked()
	if err := s.ProgressRepo.Upsert(userID, exerciseID, maxUnlocked); err != nil {
		logger.Log.Error("progress persist failed",
			zap.Uint("userID", userID),
			zap.String("exerciseID", exerciseID),
			zap.Error(err))
	}
	monitoring.LevelCompletions.WithLabelValues(string(sess.Exercise.GameType)).Inc()
}

// Close tears a session down and forgets it.
func (s *SessionService) Close(userID uint, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[sessionID]
	if !ok || entry.userID != userID {
		return util.ErrSessionNotFound
	}
	entry.session.Close()
	delete(s.entries, sessionID)
	return nil
}
