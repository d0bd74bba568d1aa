package screening

import (
	"errors"
	"time"
)

type State string

const (
	StateIdle       State = "idle"
	StateInProgress State = "inProgress"
	StateFinished   State = "finished"
)

// MemoryRevealWindow is how long a memory question's sequence stays
// visible before the answer input is accepted.
const MemoryRevealWindow = 3 * time.Second

var (
	ErrDemographicsRequired = errors.New("age and gender are required before starting")
	ErrAlreadyStarted       = errors.New("assessment already in progress")
	ErrNotInProgress        = errors.New("assessment not in progress")
	ErrWrongQuestion        = errors.New("answer does not target the current question")
)

// Demographics are collected before the battery starts and travel with
// the feature payload.
type Demographics struct {
	Age            int    `json:"age"`
	Gender         string `json:"gender"`
	NativeLangCode int    `json:"nativeLangCode"`
}

// AnswerRecord is the per-question outcome kept for the duration of one
// run. Correctness is stored as the raw score {10, 0}, not the raw answer.
type AnswerRecord struct {
	QuestionID int
	Score      int
	ElapsedMS  int64
}

// Assessment drives one screening run: idle -> inProgress(index) ->
// finished. It is owned by a single session; callers serialize access.
type Assessment struct {
	state         State
	demographics  Demographics
	index         int
	records       map[int]AnswerRecord
	questionStart time.Time
	now           func() time.Time
}

// Option configures an Assessment; used by tests to inject a clock.
type Option func(*Assessment)

func WithClock(now func() time.Time) Option {
	return func(a *Assessment) { a.now = now }
}

func NewAssessment(opts ...Option) *Assessment {
	a := &Assessment{
		state:   StateIdle,
		records: make(map[int]AnswerRecord),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Start validates demographics and enters the first question. A missing
// age or gender blocks the transition entirely: state and index are
// untouched and the caller gets a validation error to surface.
func (a *Assessment) Start(d Demographics) error {
	if a.state == StateInProgress {
		return ErrAlreadyStarted
	}
	if d.Age <= 0 || d.Gender == "" {
		return ErrDemographicsRequired
	}
	if d.NativeLangCode == 0 {
		d.NativeLangCode = 1
	}
	a.state = StateInProgress
	a.demographics = d
	a.index = 0
	a.records = make(map[int]AnswerRecord)
	a.questionStart = a.now()
	return nil
}

func (a *Assessment) State() State { return a.state }
func (a *Assessment) Index() int { return a.index }
func (a *Assessment) Demographics() Demographics { return a.demographics }

// Current returns the question being answered.
func (a *Assessment) Current() (Question, error) {
	if a.state != StateInProgress {
		return Question{}, ErrNotInProgress
	}
	return questions[a.index], nil
}

// SequenceVisible reports whether the current memory question is still in
// its reveal window. Modeling the window as a deadline instead of a
// callback timer means a "timer" firing after the state moved on cannot
// corrupt anything: the deadline simply stops mattering.
func (a *Assessment) SequenceVisible() bool {
	if a.state != StateInProgress {
		return false
	}
	if questions[a.index].Type != QuestionMemory {
		return false
	}
	return a.now().Before(a.questionStart.Add(MemoryRevealWindow))
}

// Submit records the answer for the current question and advances. The
// returned bool is true exactly once, on the transition to finished.
//
// Correctness: memory questions compare the typed sequence exactly;
// choice questions compare against the catalog answer; reaction questions
// count any tap as correct. A correct answer scores 10, a wrong one 0.
func (a *Assessment) Submit(questionID int, answer string) (bool, error) {
	if a.state != StateInProgress {
		return false, ErrNotInProgress
	}
	q := questions[a.index]
	if questionID != q.ID {
		return false, ErrWrongQuestion
	}

	correct := false
	switch q.Type {
	case QuestionMemory:
		correct = answer == q.Sequence
	case QuestionChoice:
		correct = answer == q.Correct
	case QuestionReaction:
		correct = true
	}

	score := 0
	if correct {
		score = 10
	}
	a.records[q.ID] = AnswerRecord{
		QuestionID: q.ID,
		Score:      score,
		ElapsedMS:  a.now().Sub(a.questionStart).Milliseconds(),
	}

	if a.index < len(questions)-1 {
		a.index++
		a.questionStart = a.now()
		return false, nil
	}

	a.state = StateFinished
	return true, nil
}

// Payload builds the classifier feature payload from the collected
// records. Valid in any state: missing answers fall back to documented
// defaults, so an abandoned run still yields a fully populated payload.
func (a *Assessment) Payload() FeaturePayload {
	return BuildPayload(a.demographics, a.records)
}
