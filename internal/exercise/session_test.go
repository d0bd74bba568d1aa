package exercise

import (
	"math/rand"
	"testing"
	"time"

	"lexiscreen_backend/internal/speech"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type tickClock struct {
	cur time.Time
}

func (c *tickClock) now() time.Time          { return c.cur }
func (c *tickClock) advance(d time.Duration) { c.cur = c.cur.Add(d) }

func choiceExercise() Exercise {
	return Exercise{
		ID: "ex-choice", GameType: GameChoice,
		Levels: []Level{
			{Number: 1, Data: ChoiceData{Question: "2, 4, 6, ?", Options: []string{"7", "8"}, Correct: "8"}},
			{Number: 2, Data: ChoiceData{Question: "1, 1, 2, ?", Options: []string{"3", "4"}, Correct: "3"}},
		},
	}
}

func gridExercise() Exercise {
	return Exercise{
		ID: "ex-grid", GameType: GameGridHunt,
		Levels: []Level{
			{Number: 1, Data: GridHuntData{Target: "b", Distractors: []string{"d", "p"}, GridSize: 9}},
		},
	}
}

func readAloudExercise(text string) Exercise {
	return Exercise{
		ID: "ex-read", GameType: GameReadAloud,
		Levels: []Level{{Number: 1, Data: ReadAloudData{Text: text}}},
	}
}

func startPlaying(t *testing.T, s *Session) {
	t.Helper()
	require.NoError(t, s.SelectLevel(0))
	require.NoError(t, s.Begin())
	require.Equal(t, StatePlaying, s.State)
}

func TestSelectLevelGating(t *testing.T) {
	s := NewSession(choiceExercise(), NewProgress(), DefaultConfig())

	assert.ErrorIs(t, s.SelectLevel(1), ErrLevelLocked)
	assert.ErrorIs(t, s.SelectLevel(5), ErrUnknownLevel)
	assert.Equal(t, StateLevelSelect, s.State)

	require.NoError(t, s.SelectLevel(0))
	assert.Equal(t, StateStart, s.State)

	// Once beyond level select, picking again is rejected.
	assert.ErrorIs(t, s.SelectLevel(0), ErrBadTransition)
}

func TestSecondLevelUnlocksAfterCompletion(t *testing.T) {
	progress := NewProgress()
	s := NewSession(choiceExercise(), progress, DefaultConfig())
	startPlaying(t, s)
	require.NoError(t, s.Choose("8"))
	require.Equal(t, StateResult, s.State)
	assert.Equal(t, 1, progress.MaxUnlocked("ex-choice"))

	// Replay means a fresh session over the same progress.
	next := NewSession(choiceExercise(), progress, DefaultConfig())
	assert.NoError(t, next.SelectLevel(1))
}

func TestChoiceWrongAnswerIsRetryable(t *testing.T) {
	progress := NewProgress()
	s := NewSession(choiceExercise(), progress, DefaultConfig())
	startPlaying(t, s)

	require.NoError(t, s.Choose("7"))
	assert.True(t, s.ErrorFlag)
	assert.Equal(t, StatePlaying, s.State)
	assert.Equal(t, 0, progress.MaxUnlocked("ex-choice"))

	s.DismissError()
	assert.False(t, s.ErrorFlag)

	require.NoError(t, s.Choose("8"))
	assert.Equal(t, StateResult, s.State)
	assert.False(t, s.ErrorFlag)
}

func TestGridHuntCompletion(t *testing.T) {
	progress := NewProgress()
	cfg := DefaultConfig()
	cfg.GridTargetProbability = 1.0 // every cell a target
	s := NewSession(gridExercise(), progress, cfg, WithRand(rand.New(rand.NewSource(1))))
	startPlaying(t, s)
	require.Len(t, s.Grid, 9)

	for i := 0; i < 8; i++ {
		require.NoError(t, s.ClickGridCell(i))
		assert.Equal(t, StatePlaying, s.State, "cell %d", i)
	}
	require.NoError(t, s.ClickGridCell(8))
	assert.Equal(t, StateResult, s.State)
	assert.Equal(t, 1, progress.MaxUnlocked("ex-grid"))
}

func TestGridHuntDistractorClick(t *testing.T) {
	progress := NewProgress()
	cfg := DefaultConfig()
	cfg.GridTargetProbability = 0 // every cell a distractor
	s := NewSession(gridExercise(), progress, cfg, WithRand(rand.New(rand.NewSource(1))))
	startPlaying(t, s)

	require.NoError(t, s.ClickGridCell(4))
	assert.True(t, s.ErrorFlag)
	assert.Equal(t, StatePlaying, s.State)
	assert.Equal(t, 0, progress.MaxUnlocked("ex-grid"))

	assert.ErrorIs(t, s.ClickGridCell(99), ErrUnknownLevel)
}

func TestGridRegeneratedOnEachEntry(t *testing.T) {
	cfg := DefaultConfig()
	s := NewSession(gridExercise(), NewProgress(), cfg, WithRand(rand.New(rand.NewSource(7))))
	startPlaying(t, s)
	first := make([]GridCell, len(s.Grid))
	copy(first, s.Grid)

	// Finish the board, then play the level again in a new session
	// sharing the rand source semantics: boards must not carry Found
	// marks or layout over.
	for i := range s.Grid {
		if s.Grid[i].Target {
			require.NoError(t, s.ClickGridCell(i))
		}
	}

	again := NewSession(gridExercise(), NewProgress(), cfg, WithRand(rand.New(rand.NewSource(8))))
	startPlaying(t, again)
	for _, c := range again.Grid {
		assert.False(t, c.Found)
	}
}

func TestVocabFlipAndLearn(t *testing.T) {
	ex := Exercise{
		ID: "ex-vocab", GameType: GameVocab,
		Levels: []Level{{Number: 1, Data: VocabData{Word: "luminous", Definition: "giving off light"}}},
	}
	s := NewSession(ex, NewProgress(), DefaultConfig())
	startPlaying(t, s)

	require.NoError(t, s.Flip())
	assert.True(t, s.Flipped)
	require.NoError(t, s.Flip())
	assert.False(t, s.Flipped)

	require.NoError(t, s.MarkLearned())
	assert.Equal(t, StateResult, s.State)
}

func TestMemoryGridChoose(t *testing.T) {
	ex := Exercise{
		ID: "ex-mem", GameType: GameMemoryGrid,
		Levels: []Level{{Number: 1, Data: MemoryGridData{Items: []string{"🍎", "🍌"}, Target: "🍎"}}},
	}
	s := NewSession(ex, NewProgress(), DefaultConfig())
	startPlaying(t, s)

	require.NoError(t, s.Choose("🍌"))
	assert.True(t, s.ErrorFlag)
	require.NoError(t, s.Choose("🍎"))
	assert.Equal(t, StateResult, s.State)
}

func TestTracingDone(t *testing.T) {
	ex := Exercise{
		ID: "ex-trace", GameType: GameTracing,
		Levels: []Level{{Number: 1, Data: TracingData{Letter: "b"}}},
	}
	s := NewSession(ex, NewProgress(), DefaultConfig())
	startPlaying(t, s)

	require.NoError(t, s.TracingDone())
	assert.Equal(t, StateResult, s.State)
}

func TestSpeedReadWPMAndQuestion(t *testing.T) {
	// Ten words read in twenty seconds is thirty words per minute.
	ex := Exercise{
		ID: "ex-speed", GameType: GameSpeedRead,
		Levels: []Level{{Number: 1, Data: SpeedReadData{
			Text:     "one two three four five six seven eight nine ten",
			Question: "How many words?",
			Options:  []string{"ten", "nine"},
			Correct:  "ten",
		}}},
	}
	clock := &tickClock{cur: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)}
	s := NewSession(ex, NewProgress(), DefaultConfig(), WithSessionClock(clock.now))
	startPlaying(t, s)

	clock.advance(20 * time.Second)
	require.NoError(t, s.FinishReading())
	assert.Equal(t, 30, s.WPM)
	assert.Equal(t, StateQuestion, s.State)

	// The comprehension question follows the same retry rules as choice.
	require.NoError(t, s.Choose("nine"))
	assert.True(t, s.ErrorFlag)
	assert.Equal(t, StateQuestion, s.State)

	require.NoError(t, s.Choose("ten"))
	assert.Equal(t, StateResult, s.State)
}

func TestReadAloudPassThreshold(t *testing.T) {
	s := NewSession(readAloudExercise("the cat sat on the mat"), NewProgress(), DefaultConfig())
	startPlaying(t, s)

	// A transcript scoring below the bound raises the miss flag.
	require.NoError(t, s.StartListening())
	require.NoError(t, s.PushTranscript("banana"))
	sub, err := s.StopListening()
	require.NoError(t, err)
	assert.Nil(t, sub)
	assert.True(t, s.ErrorFlag)
	assert.Equal(t, StatePlaying, s.State)
	assert.Equal(t, 0, s.Accuracy)

	// Retry at exactly the bound passes.
	s.DismissError()
	require.NoError(t, s.StartListening())
	require.NoError(t, s.PushTranscript("the cat"))
	sub, err = s.StopListening()
	require.NoError(t, err)
	assert.Nil(t, sub)
	assert.Equal(t, 50, s.Accuracy)
	assert.Equal(t, StateResult, s.State)
}

func TestReadAloudCaptureLifecycle(t *testing.T) {
	s := NewSession(readAloudExercise("hello there"), NewProgress(), DefaultConfig())
	startPlaying(t, s)

	assert.ErrorIs(t, s.PushTranscript("hi"), ErrNotListening)
	_, err := s.StopListening()
	assert.ErrorIs(t, err, ErrNotListening)

	require.NoError(t, s.StartListening())
	require.NoError(t, s.PushTranscript("hello"))
	require.NoError(t, s.PushTranscript("hello there"))
	assert.Equal(t, "hello there", s.Transcript)
}

func TestReadAloudCaptureUnavailable(t *testing.T) {
	s := NewSession(readAloudExercise("hello"), NewProgress(), DefaultConfig(),
		WithSpeech(speech.NewRelayCapture(false), speech.NewPlaybackState()))
	startPlaying(t, s)

	assert.ErrorIs(t, s.StartListening(), ErrSpeechUnavailable)
}

func TestAssignmentReadingAlwaysSubmits(t *testing.T) {
	progress := NewProgress()
	ex := NewAssignmentExercise(12, "Week 3", "the cat sat on the mat")
	s := NewSession(ex, progress, DefaultConfig())

	require.NoError(t, s.ChooseMode(ModeReading))
	require.NoError(t, s.Begin())
	require.NoError(t, s.StartListening())
	require.NoError(t, s.PushTranscript("nothing close"))
	sub, err := s.StopListening()
	require.NoError(t, err)

	// Even a failing score completes and is handed in for grading.
	require.NotNil(t, sub)
	assert.Equal(t, uint(12), sub.AssignmentID)
	assert.Equal(t, ModeReading, sub.Mode)
	assert.Equal(t, 0, sub.Accuracy)
	assert.Equal(t, "nothing close", sub.Content)
	assert.Equal(t, StateResult, s.State)
	assert.Equal(t, 1, progress.MaxUnlocked("db-12"))
}

func TestAssignmentWritingSubmits(t *testing.T) {
	ex := NewAssignmentExercise(3, "Essay", "a b c d")
	s := NewSession(ex, NewProgress(), DefaultConfig())

	require.NoError(t, s.ChooseMode(ModeWriting))
	require.NoError(t, s.Begin())
	sub, err := s.SubmitWriting("a b")
	require.NoError(t, err)

	require.NotNil(t, sub)
	assert.Equal(t, ModeWriting, sub.Mode)
	assert.Equal(t, 50, sub.Accuracy)
	assert.Equal(t, "a b", sub.Content)
	assert.Equal(t, StateResult, s.State)
}

func TestChooseModeValidation(t *testing.T) {
	assignment := NewSession(NewAssignmentExercise(1, "t", "x"), NewProgress(), DefaultConfig())
	assert.ErrorIs(t, assignment.ChooseMode("listening"), ErrModeRequired)

	catalog := NewSession(choiceExercise(), NewProgress(), DefaultConfig())
	assert.ErrorIs(t, catalog.ChooseMode(ModeReading), ErrWrongGame)
}

func TestGenericWritingCompletesWithoutSubmission(t *testing.T) {
	ex := Exercise{
		ID: "ex-write", GameType: GameWriting,
		Levels: []Level{{Number: 1, Data: WritingData{Prompt: "Describe your day."}}},
	}
	s := NewSession(ex, NewProgress(), DefaultConfig())
	startPlaying(t, s)

	sub, err := s.SubmitWriting("It rained all morning.")
	require.NoError(t, err)
	assert.Nil(t, sub)
	assert.Equal(t, "It rained all morning.", s.WritingInput)
	assert.Equal(t, StateResult, s.State)
}

func TestAssistedReadNarration(t *testing.T) {
	narrator := speech.NewPlaybackState()
	ex := Exercise{
		ID: "ex-assist", GameType: GameAssistedRead,
		Levels: []Level{{Number: 1, Data: AssistedReadData{Title: "t", Text: "soft words"}}},
	}
	s := NewSession(ex, NewProgress(), DefaultConfig(),
		WithSpeech(speech.NewRelayCapture(true), narrator))
	startPlaying(t, s)

	require.NoError(t, s.ToggleNarration())
	assert.True(t, narrator.Speaking())
	assert.Equal(t, 1.0, narrator.Rate())

	// Changing rate mid-narration restarts at the new rate immediately.
	require.NoError(t, s.SetNarrationRate(1.25))
	assert.True(t, narrator.Speaking())
	assert.Equal(t, 1.25, narrator.Rate())
	assert.Equal(t, 1.25, s.NarrationRate())

	require.NoError(t, s.ToggleNarration())
	assert.False(t, narrator.Speaking())

	// A rate change while idle does not start playback.
	require.NoError(t, s.SetNarrationRate(0.75))
	assert.False(t, narrator.Speaking())
}

func TestAssistedReadCompletion(t *testing.T) {
	narrator := speech.NewPlaybackState()
	ex := Exercise{
		ID: "ex-assist", GameType: GameAssistedRead,
		Levels: []Level{
			{Number: 1, Data: AssistedReadData{Title: "a", Text: "soft words"}},
			{Number: 2, Data: AssistedReadData{Title: "b", Text: "more words"}},
		},
	}
	s := NewSession(ex, NewProgress(), DefaultConfig(),
		WithSpeech(speech.NewRelayCapture(true), narrator))
	startPlaying(t, s)

	// Done mid-narration: playback stops, the level completes and the
	// next one unlocks.
	require.NoError(t, s.ToggleNarration())
	require.NoError(t, s.FinishAssistedRead())
	assert.False(t, narrator.Speaking())
	assert.Equal(t, StateResult, s.State)
	assert.Equal(t, 1, s.MaxUnlocked())

	// Only valid while playing.
	assert.ErrorIs(t, s.FinishAssistedRead(), ErrWrongGame)
}

func TestFinishAssistedReadWrongGame(t *testing.T) {
	s := NewSession(choiceExercise(), NewProgress(), DefaultConfig())
	startPlaying(t, s)
	assert.ErrorIs(t, s.FinishAssistedRead(), ErrWrongGame)
}

func TestSetNarrationRateBounds(t *testing.T) {
	ex := Exercise{
		ID: "ex-assist", GameType: GameAssistedRead,
		Levels: []Level{{Number: 1, Data: AssistedReadData{Title: "t", Text: "x"}}},
	}
	s := NewSession(ex, NewProgress(), DefaultConfig())

	for _, rate := range []float64{0.25, 0.6, 2.25, -1} {
		assert.ErrorIs(t, s.SetNarrationRate(rate), ErrInvalidRate, "rate %v", rate)
	}
	for _, rate := range []float64{0.5, 0.75, 1.0, 1.75, 2.0} {
		assert.NoError(t, s.SetNarrationRate(rate), "rate %v", rate)
	}
}

func TestOperationsRejectedOutsidePlay(t *testing.T) {
	s := NewSession(gridExercise(), NewProgress(), DefaultConfig())

	assert.ErrorIs(t, s.Begin(), ErrBadTransition)
	assert.ErrorIs(t, s.ClickGridCell(0), ErrBadTransition)

	require.NoError(t, s.SelectLevel(0))
	assert.ErrorIs(t, s.ClickGridCell(0), ErrBadTransition)

	// Gameplay verbs from the wrong game are rejected, not ignored.
	require.NoError(t, s.Begin())
	assert.ErrorIs(t, s.Flip(), ErrWrongGame)
	assert.ErrorIs(t, s.FinishReading(), ErrWrongGame)
	assert.ErrorIs(t, s.StartListening(), ErrWrongGame)
}

func TestCloseTearsDownAudio(t *testing.T) {
	narrator := speech.NewPlaybackState()
	capture := speech.NewRelayCapture(true)
	ex := Exercise{
		ID: "ex-assist", GameType: GameAssistedRead,
		Levels: []Level{{Number: 1, Data: AssistedReadData{Title: "t", Text: "x"}}},
	}
	s := NewSession(ex, NewProgress(), DefaultConfig(), WithSpeech(capture, narrator))
	startPlaying(t, s)
	require.NoError(t, s.ToggleNarration())

	s.Close()
	assert.False(t, narrator.Speaking())
	assert.False(t, capture.Active())
}
