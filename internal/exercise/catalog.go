package exercise

import "fmt"

// Risk labels as the classifier emits them. Anything that is not the
// normal sentinel routes to the higher-support catalog, so an unknown or
// missing label fails safe toward more support.
const (
	RiskNormal = "Normal"
	RiskHigh   = "High Risk"
)

var normalCatalog = []Exercise{
	{
		ID: "n1", Title: "Speed Reading Sprint", Duration: "5 min", Kind: "Cognitive",
		Desc: "Read a text and test your WPM.", GameType: GameSpeedRead,
		Levels: []Level{
			{Number: 1, Data: SpeedReadData{
				Text:     "Machine learning is a field of inquiry devoted to understanding and building methods that 'learn'.",
				Question: "What does it build?", Options: []string{"Biology", "Methods"}, Correct: "Methods",
			}},
			{Number: 2, Data: SpeedReadData{
				Text:     "Artificial intelligence leverages computers and machines to mimic the problem-solving and decision-making capabilities of the human mind.",
				Question: "What does AI mimic?", Options: []string{"Human Mind", "Animals"}, Correct: "Human Mind",
			}},
			{Number: 3, Data: SpeedReadData{
				Text:     "Deep learning eliminates some of data pre-processing that is typically involved with machine learning. These algorithms can ingest unstructured data.",
				Question: "What data type?", Options: []string{"Structured", "Unstructured"}, Correct: "Unstructured",
			}},
		},
	},
	{
		ID: "n2", Title: "Vocabulary Builder", Duration: "10 min", Kind: "Language",
		Desc: "Master complex words.", GameType: GameVocab,
		Levels: []Level{
			{Number: 1, Data: VocabData{Word: "Ebullient", Definition: "Cheerful and full of energy.", Usage: "She sounded ebullient and happy."}},
			{Number: 2, Data: VocabData{Word: "Ephemeral", Definition: "Lasting for a very short time.", Usage: "Fashions are ephemeral, changing with every season."}},
			{Number: 3, Data: VocabData{Word: "Serendipity", Definition: "The occurrence of events by chance in a happy way.", Usage: "It was pure serendipity that we met."}},
		},
	},
	{
		ID: "n3", Title: "Memory Palace", Duration: "15 min", Kind: "Memory",
		Desc: "Visual recall challenge.", GameType: GameMemoryGrid,
		Levels: []Level{
			{Number: 1, Data: MemoryGridData{Items: []string{"🌟", "🍎", "🚗"}, Target: "🍎"}},
			{Number: 2, Data: MemoryGridData{Items: []string{"🐶", "🐱", "🐭", "🐹"}, Target: "🐭"}},
			{Number: 3, Data: MemoryGridData{Items: []string{"⚽", "🏀", "🏈", "⚾", "🎾", "🏐"}, Target: "🏈"}},
		},
	},
	{
		ID: "n4", Title: "Logic Patterns", Duration: "8 min", Kind: "Logic",
		Desc: "Complete the sequence.", GameType: GameChoice,
		Levels: []Level{
			{Number: 1, Data: ChoiceData{Question: "2, 4, 8, ...", Options: []string{"16", "20"}, Correct: "16"}},
			{Number: 2, Data: ChoiceData{Question: "A, C, E, ...", Options: []string{"F", "G"}, Correct: "G"}},
			{Number: 3, Data: ChoiceData{Question: "100, 90, 80, ...", Options: []string{"70", "60"}, Correct: "70"}},
		},
	},
	{
		ID: "n5", Title: "Creative Writing", Duration: "20 min", Kind: "Creativity",
		Desc: "Write a short story.", GameType: GameWriting,
		Levels: []Level{
			{Number: 1, Data: WritingData{Prompt: "Write about a flying turtle."}},
			{Number: 2, Data: WritingData{Prompt: "Describe a city under the ocean."}},
		},
	},
}

var highRiskCatalog = []Exercise{
	{
		ID: "h1", Title: "Assisted Reading", Duration: "10 min", Kind: "Auditory",
		Desc: "Listen and follow along.", GameType: GameAssistedRead,
		Levels: []Level{
			{Number: 1, Data: AssistedReadData{Title: "The Cat", Text: "The cat moves softly across the floor, silent and calm. Its eyes glow with curiosity in the quiet room. It loves warm corners and gentle naps. With a flick of its tail, it shows its mood. The cat is both playful and proud."}},
			{Number: 2, Data: AssistedReadData{Title: "The Dog", Text: "The dog waits by the door, full of joy. Its tail wags at the sound of footsteps. Always loyal, it guards its home. It loves long walks and kind words. The dog is a true friend."}},
			{Number: 3, Data: AssistedReadData{Title: "The Bird", Text: "The bird sings as the morning begins. Its wings flutter lightly in the air. Bright feathers catch the sunlight. It hops from branch to branch happily. The bird fills the day with music."}},
		},
	},
	{
		ID: "h2", Title: "Read Aloud Challenge", Duration: "15 min", Kind: "Speech",
		Desc: "Read accurately.", GameType: GameReadAloud,
		Levels: []Level{
			{Number: 1, Data: ReadAloudData{Text: "The sun rises with warm golden light. It fills the sky with brightness and hope. Everything wakes under its glow."}},
			{Number: 2, Data: ReadAloudData{Text: "The moon shines softly in the night sky. It watches over the quiet world. Its calm light brings peace."}},
			{Number: 3, Data: ReadAloudData{Text: "The mountain stands tall and strong. Its peak touches the clouds above. It guards the land in silence."}},
		},
	},
	{
		ID: "h3", Title: "Letter Discrimination", Duration: "5 min", Kind: "Visual",
		Desc: "Find the target letter.", GameType: GameGridHunt,
		Levels: []Level{
			{Number: 1, Data: GridHuntData{Target: "b", Distractors: []string{"d"}, GridSize: 9}},
			{Number: 2, Data: GridHuntData{Target: "p", Distractors: []string{"q"}, GridSize: 16}},
			{Number: 3, Data: GridHuntData{Target: "m", Distractors: []string{"w", "n"}, GridSize: 25}},
		},
	},
	{
		ID: "h4", Title: "Letter Tracing", Duration: "15 min", Kind: "Motor Skills",
		Desc: "Trace the letters.", GameType: GameTracing,
		Levels: []Level{
			{Number: 1, Data: TracingData{Letter: "a"}},
			{Number: 2, Data: TracingData{Letter: "b"}},
			{Number: 3, Data: TracingData{Letter: "e"}},
		},
	},
	{
		ID: "h5", Title: "Sound Matching", Duration: "10 min", Kind: "Phonics",
		Desc: "Match the sounds.", GameType: GameChoice,
		Levels: []Level{
			{Number: 1, Data: ChoiceData{Question: "Rhymes with Tree?", Options: []string{"Bee", "Car"}, Correct: "Bee"}},
			{Number: 2, Data: ChoiceData{Question: "Starts with 'S'?", Options: []string{"Sun", "Moon"}, Correct: "Sun"}},
			{Number: 3, Data: ChoiceData{Question: "Rhymes with Frog?", Options: []string{"Dog", "Cat"}, Correct: "Dog"}},
		},
	},
}

// CatalogFor selects the exercise catalog by risk label. Only the exact
// normal sentinel routes to the low-support catalog.
func CatalogFor(riskLabel string) []Exercise {
	if riskLabel == RiskNormal {
		return copyCatalog(normalCatalog)
	}
	return copyCatalog(highRiskCatalog)
}

func copyCatalog(src []Exercise) []Exercise {
	out := make([]Exercise, len(src))
	copy(out, src)
	for i := range out {
		levels := make([]Level, len(src[i].Levels))
		copy(levels, src[i].Levels)
		out[i].Levels = levels
	}
	return out
}

// NewAssignmentExercise materializes a teacher assignment as a
// single-level hybrid exercise.
func NewAssignmentExercise(assignmentID uint, title, text string) Exercise {
	return Exercise{
		ID:           fmt.Sprintf("db-%d", assignmentID),
		Title:        title,
		Duration:     "10 min",
		Kind:         "Assignment",
		Desc:         "Read the passage aloud, or write a response to it.",
		GameType:     GameHybrid,
		IsAssignment: true,
		Levels: []Level{
			{Number: 1, Data: AssignmentData{AssignmentID: assignmentID, Title: title, Text: text}},
		},
	}
}

// FindExercise looks an exercise up by id in the given catalog.
func FindExercise(catalog []Exercise, id string) (Exercise, bool) {
	for _, ex := range catalog {
		if ex.ID == id {
			return ex, true
		}
	}
	return Exercise{}, false
}
