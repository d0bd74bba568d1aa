package screening

type QuestionType string

const (
	QuestionChoice   QuestionType = "choice"
	QuestionMemory   QuestionType = "memory"
	QuestionReaction QuestionType = "reaction"
)

// Question is a static entry of the screening battery. The catalog is
// fixed configuration and is never mutated at runtime.
type Question struct {
	ID           int          `json:"id"`
	Category     string       `json:"category"`
	Type         QuestionType `json:"type"`
	Prompt       string       `json:"prompt"`
	Options      []string     `json:"options,omitempty"`
	Correct      string       `json:"-"`
	Sequence     string       `json:"sequence,omitempty"`
	InputPrompt  string       `json:"inputPrompt,omitempty"`
	TimeLimitSec int          `json:"timeLimitSec"`
}

var questions = []Question{
	{
		ID:           1,
		Category:     "Phonological Awareness",
		Type:         QuestionChoice,
		Prompt:       "Which word rhymes with 'CAT'?",
		Options:      []string{"Dog", "Bat", "Car", "Fish"},
		Correct:      "Bat",
		TimeLimitSec: 10,
	},
	{
		ID:           2,
		Category:     "Visual Perception",
		Type:         QuestionChoice,
		Prompt:       "Find the letter 'b' hidden in the group.",
		Options:      []string{"d", "p", "b", "q"},
		Correct:      "b",
		TimeLimitSec: 5,
	},
	{
		ID:           3,
		Category:     "Working Memory",
		Type:         QuestionMemory,
		Prompt:       "Memorize this sequence: 5 - 9 - 2",
		Sequence:     "592",
		InputPrompt:  "Enter the sequence you just saw:",
		TimeLimitSec: 5,
	},
	{
		ID:           4,
		Category:     "Spelling & Decoding",
		Type:         QuestionChoice,
		Prompt:       "Which of these is a nonsense (fake) word?",
		Options:      []string{"Train", "Blop", "House", "Jump"},
		Correct:      "Blop",
		TimeLimitSec: 10,
	},
	{
		ID:           5,
		Category:     "Rapid Naming",
		Type:         QuestionReaction,
		Prompt:       "Click the button as fast as you can!",
		TimeLimitSec: 3,
	},
}

// Questions returns a copy of the screening battery in presentation order.
func Questions() []Question {
	out := make([]Question, len(questions))
	copy(out, questions)
	return out
}

// QuestionCount is the length of the battery.
func QuestionCount() int {
	return len(questions)
}
