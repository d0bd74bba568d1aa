package exercise

import (
	"errors"
	"math/rand"
	"strings"
	"time"

	"lexiscreen_backend/internal/matcher"
	"lexiscreen_backend/internal/speech"

	"github.com/google/uuid"
)

type SessionState string

const (
	StateLevelSelect SessionState = "levelSelect"
	StateStart       SessionState = "start"
	StatePlaying     SessionState = "playing"
	StateQuestion    SessionState = "question"
	StateResult      SessionState = "result"
)

type TaskMode string

const (
	ModeReading TaskMode = "reading"
	ModeWriting TaskMode = "writing"
)

var (
	ErrLevelLocked       = errors.New("level is locked")
	ErrUnknownLevel      = errors.New("no such level")
	ErrBadTransition     = errors.New("operation not valid in current state")
	ErrWrongGame         = errors.New("operation not valid for this game type")
	ErrSpeechUnavailable = errors.New("speech capture not available")
	ErrNotListening      = errors.New("speech capture not active")
	ErrInvalidRate       = errors.New("narration rate out of range")
	ErrModeRequired      = errors.New("assignment sessions need a task mode")
)

// Narration rate bounds: 0.5x to 2.0x in quarter steps.
const (
	MinNarrationRate  = 0.5
	MaxNarrationRate  = 2.0
	NarrationRateStep = 0.25
)

// Config carries the tunable gameplay constants. They are configuration,
// not hard-coded policy: deployments may retune them.
type Config struct {
	// PassAccuracy gates read-aloud completion for catalog content.
	PassAccuracy int
	// GridTargetProbability is the per-cell chance of the hunt target.
	GridTargetProbability float64
}

func DefaultConfig() Config {
	return Config{PassAccuracy: 50, GridTargetProbability: 0.25}
}

// Submission is the result reported to the grading store when an
// assignment-backed level completes.
type Submission struct {
	AssignmentID uint
	Accuracy     int
	Mode         TaskMode
	Content      string
}

// Session drives a single exercise attempt:
// levelSelect -> start -> playing -> {question} -> result.
// It owns its state exclusively; the session service serializes events.
type Session struct {
	ID       string
	Exercise Exercise

	State      SessionState
	Mode       TaskMode
	LevelIndex int

	// ErrorFlag is the transient retry signal. A miss never costs
	// progress; the player dismisses the flag and tries again.
	ErrorFlag bool

	Grid     []GridCell
	Flipped  bool
	WPM      int
	Accuracy int

	Transcript   string
	WritingInput string

	narrationRate float64
	readingStart  time.Time

	progress *Progress
	cfg      Config
	rng      *rand.Rand
	now      func() time.Time
	capture  speech.Capture
	narrator speech.Narrator
}

type SessionOption func(*Session)

func WithRand(rng *rand.Rand) SessionOption {
	return func(s *Session) { s.rng = rng }
}

func WithSessionClock(now func() time.Time) SessionOption {
	return func(s *Session) { s.now = now }
}

func WithSpeech(capture speech.Capture, narrator speech.Narrator) SessionOption {
	return func(s *Session) {
		s.capture = capture
		s.narrator = narrator
	}
}

func NewSession(ex Exercise, progress *Progress, cfg Config, opts ...SessionOption) *Session {
	s := &Session{
		ID:            uuid.New().String(),
		Exercise:      ex,
		State:         StateLevelSelect,
		Mode:          ModeReading,
		narrationRate: 1.0,
		progress:      progress,
		cfg:           cfg,
		rng:           rand.New(rand.NewSource(time.Now().UnixNano())),
		now:           time.Now,
		capture:       speech.NewRelayCapture(true),
		narrator:      speech.NewPlaybackState(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Session) level() Level {
	return s.Exercise.Levels[s.LevelIndex]
}

// sourceText is the passage behind reading, narration and scoring.
func (s *Session) sourceText() string {
	switch d := s.level().Data.(type) {
	case AssistedReadData:
		return d.Text
	case ReadAloudData:
		return d.Text
	case SpeedReadData:
		return d.Text
	case AssignmentData:
		return d.Text
	}
	return ""
}

// NarrationRate returns the current playback rate.
func (s *Session) NarrationRate() float64 { return s.narrationRate }

// MaxUnlocked exposes the unlock bound for this session's exercise.
func (s *Session) MaxUnlocked() int {
	return s.progress.MaxUnlocked(s.Exercise.ID)
}

// ChooseMode picks reading or writing for an assignment session and
// moves to the instruction screen. Assignments have a single level.
func (s *Session) ChooseMode(mode TaskMode) error {
	if !s.Exercise.IsAssignment {
		return ErrWrongGame
	}
	if s.State != StateLevelSelect {
		return ErrBadTransition
	}
	if mode != ModeReading && mode != ModeWriting {
		return ErrModeRequired
	}
	s.Mode = mode
	s.LevelIndex = 0
	s.State = StateStart
	return nil
}

// SelectLevel picks a catalog level, gated by unlock progress.
func (s *Session) SelectLevel(index int) error {
	if s.State != StateLevelSelect {
		return ErrBadTransition
	}
	if index < 0 || index >= len(s.Exercise.Levels) {
		return ErrUnknownLevel
	}
	if !s.progress.IsUnlocked(s.Exercise.ID, index) {
		return ErrLevelLocked
	}
	s.LevelIndex = index
	s.State = StateStart
	return nil
}

// Begin enters play. Game-specific setup happens here, and happens again
// on every entry: a gridHunt board is regenerated, never reused.
func (s *Session) Begin() error {
	if s.State != StateStart {
		return ErrBadTransition
	}
	s.State = StatePlaying
	s.ErrorFlag = false
	s.Flipped = false
	s.Transcript = ""

	switch d := s.level().Data.(type) {
	case GridHuntData:
		s.Grid = GenerateGrid(d, s.cfg.GridTargetProbability, s.rng)
	case SpeedReadData:
		s.readingStart = s.now()
	}
	return nil
}

// ClickGridCell handles a hunt click. A distractor raises the transient
// error flag; finding every target completes the level.
func (s *Session) ClickGridCell(index int) error {
	if s.State != StatePlaying {
		return ErrBadTransition
	}
	if s.Exercise.GameType != GameGridHunt {
		return ErrWrongGame
	}
	if index < 0 || index >= len(s.Grid) {
		return ErrUnknownLevel
	}

	cell := &s.Grid[index]
	if !cell.Target {
		s.ErrorFlag = true
		return nil
	}
	cell.Found = true

	for _, c := range s.Grid {
		if c.Target && !c.Found {
			return nil
		}
	}
	s.completeLevel()
	return nil
}

// Choose answers a multiple-choice prompt: the choice and memoryGrid
// games while playing, and the speed-read comprehension question in its
// question sub-state. A wrong pick is a retryable miss.
func (s *Session) Choose(option string) error {
	var correct string
	switch d := s.level().Data.(type) {
	case ChoiceData:
		if s.State != StatePlaying {
			return ErrBadTransition
		}
		correct = d.Correct
	case MemoryGridData:
		if s.State != StatePlaying {
			return ErrBadTransition
		}
		correct = d.Target
	case SpeedReadData:
		if s.State != StateQuestion {
			return ErrBadTransition
		}
		correct = d.Correct
	default:
		return ErrWrongGame
	}

	if option != correct {
		s.ErrorFlag = true
		return nil
	}
	s.completeLevel()
	return nil
}

// Flip turns the vocabulary card over (and back).
func (s *Session) Flip() error {
	if s.State != StatePlaying || s.Exercise.GameType != GameVocab {
		return ErrWrongGame
	}
	s.Flipped = !s.Flipped
	return nil
}

// MarkLearned completes a vocabulary card.
func (s *Session) MarkLearned() error {
	if s.State != StatePlaying || s.Exercise.GameType != GameVocab {
		return ErrWrongGame
	}
	s.completeLevel()
	return nil
}

// TracingDone completes a tracing level. Success is explicit; there is
// no automatic correctness check on the drawn strokes.
func (s *Session) TracingDone() error {
	if s.State != StatePlaying || s.Exercise.GameType != GameTracing {
		return ErrWrongGame
	}
	s.completeLevel()
	return nil
}

// FinishReading ends the timed passage of a speed-read level, computes
// words per minute and moves to the comprehension question.
func (s *Session) FinishReading() error {
	if s.State != StatePlaying || s.Exercise.GameType != GameSpeedRead {
		return ErrWrongGame
	}
	elapsed := s.now().Sub(s.readingStart).Seconds()
	if elapsed > 0 {
		words := len(strings.Fields(s.sourceText()))
		s.WPM = int(float64(words)/elapsed*60 + 0.5)
	}
	s.State = StateQuestion
	return nil
}

// ToggleNarration starts or stops assisted-reading playback at the
// current rate.
func (s *Session) ToggleNarration() error {
	if s.State != StatePlaying || s.Exercise.GameType != GameAssistedRead {
		return ErrWrongGame
	}
	if s.narrator.Speaking() {
		s.narrator.Cancel()
		return nil
	}
	s.narrator.Speak(s.sourceText(), s.narrationRate)
	return nil
}

// FinishAssistedRead completes an assisted-reading level. Like tracing,
// done is the student's call; any running narration is cancelled.
func (s *Session) FinishAssistedRead() error {
	if s.State != StatePlaying || s.Exercise.GameType != GameAssistedRead {
		return ErrWrongGame
	}
	if s.narrator.Speaking() {
		s.narrator.Cancel()
	}
	s.completeLevel()
	return nil
}

// SetNarrationRate adjusts playback speed. If narration is running it
// restarts immediately at the new rate rather than queueing the change.
func (s *Session) SetNarrationRate(rate float64) error {
	if s.Exercise.GameType != GameAssistedRead {
		return ErrWrongGame
	}
	if !validRate(rate) {
		return ErrInvalidRate
	}
	s.narrationRate = rate
	if s.narrator.Speaking() {
		s.narrator.Cancel()
		s.narrator.Speak(s.sourceText(), rate)
	}
	return nil
}

func validRate(rate float64) bool {
	if rate < MinNarrationRate || rate > MaxNarrationRate {
		return false
	}
	steps := (rate - MinNarrationRate) / NarrationRateStep
	return steps == float64(int(steps))
}

func (s *Session) readAloudActive() bool {
	if s.Exercise.GameType == GameReadAloud {
		return true
	}
	return s.Exercise.GameType == GameHybrid && s.Mode == ModeReading
}

// StartListening opens transcript capture for a read-aloud attempt.
func (s *Session) StartListening() error {
	if s.State != StatePlaying || !s.readAloudActive() {
		return ErrWrongGame
	}
	if !s.capture.Available() {
		return ErrSpeechUnavailable
	}
	s.Transcript = ""
	s.capture.Start()
	return nil
}

// PushTranscript relays the latest interim recognizer result. Interim
// results replace, not append: the recognizer always resends the full
// utterance so far.
func (s *Session) PushTranscript(interim string) error {
	if !s.capture.Active() {
		return ErrNotListening
	}
	s.capture.Push(interim)
	s.Transcript = interim
	return nil
}

// StopListening ends capture and scores the transcript against the
// passage. Assignment attempts always complete and yield a submission
// for the grading store; catalog attempts complete only at or above the
// pass accuracy, otherwise the miss flag is raised and the player may
// retry without losing progress.
func (s *Session) StopListening() (*Submission, error) {
	if s.State != StatePlaying || !s.readAloudActive() {
		return nil, ErrWrongGame
	}
	if !s.capture.Active() {
		return nil, ErrNotListening
	}

	final := s.capture.Stop()
	s.Transcript = final
	s.Accuracy = matcher.Score(s.sourceText(), final)

	if d, ok := s.level().Data.(AssignmentData); ok {
		s.completeLevel()
		return &Submission{
			AssignmentID: d.AssignmentID,
			Accuracy:     s.Accuracy,
			Mode:         ModeReading,
			Content:      final,
		}, nil
	}

	if s.Accuracy >= s.cfg.PassAccuracy {
		s.completeLevel()
		return nil, nil
	}
	s.ErrorFlag = true
	return nil, nil
}

// SubmitWriting hands in free text. Assignment responses are scored
// against the source passage and always complete; generic writing
// exercises complete on submission alone, graded only for presence.
func (s *Session) SubmitWriting(text string) (*Submission, error) {
	if s.State != StatePlaying {
		return nil, ErrBadTransition
	}
	switch d := s.level().Data.(type) {
	case AssignmentData:
		if s.Mode != ModeWriting {
			return nil, ErrWrongGame
		}
		s.WritingInput = text
		s.Accuracy = matcher.Score(d.Text, text)
		s.completeLevel()
		return &Submission{
			AssignmentID: d.AssignmentID,
			Accuracy:     s.Accuracy,
			Mode:         ModeWriting,
			Content:      text,
		}, nil
	case WritingData:
		s.WritingInput = text
		s.completeLevel()
		return nil, nil
	default:
		return nil, ErrWrongGame
	}
}

// DismissError clears the transient miss flag.
func (s *Session) DismissError() {
	s.ErrorFlag = false
}

// Close tears the session down. Narration and capture must never outlive
// the session.
func (s *Session) Close() {
	s.narrator.Cancel()
	if s.capture.Active() {
		s.capture.Stop()
	}
}

// completeLevel records unlock progress and enters the terminal result
// state. Result offers only exit; replaying means a fresh session.
func (s *Session) completeLevel() {
	s.progress.RecordCompletion(s.Exercise.ID, s.LevelIndex)
	s.ErrorFlag = false
	s.State = StateResult
}
