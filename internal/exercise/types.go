package exercise

type GameType string

const (
	GameSpeedRead    GameType = "speedRead"
	GameVocab        GameType = "vocab"
	GameMemoryGrid   GameType = "memoryGrid"
	GameChoice       GameType = "choice"
	GameWriting      GameType = "writing"
	GameAssistedRead GameType = "assistedRead"
	GameReadAloud    GameType = "readAloud"
	GameGridHunt     GameType = "gridHunt"
	GameTracing      GameType = "tracing"
	// GameHybrid is a teacher assignment offering both a read-aloud and a
	// writing mode over the same source text.
	GameHybrid GameType = "hybrid"
)

// LevelData is the gameType-specific payload of a level. One variant per
// game type keeps the dispatch exhaustive instead of a conditional chain.
type LevelData interface {
	Game() GameType
}

type SpeedReadData struct {
	Text     string   `json:"text"`
	Question string   `json:"question"`
	Options  []string `json:"options"`
	Correct  string   `json:"-"`
}

type VocabData struct {
	Word       string `json:"word"`
	Definition string `json:"definition"`
	Usage      string `json:"usage"`
}

type MemoryGridData struct {
	Items  []string `json:"items"`
	Target string   `json:"target"`
}

type ChoiceData struct {
	Question string   `json:"question"`
	Options  []string `json:"options"`
	Correct  string   `json:"-"`
}

type WritingData struct {
	Prompt string `json:"prompt"`
}

type AssistedReadData struct {
	Title string `json:"title"`
	Text  string `json:"text"`
}

type ReadAloudData struct {
	Text string `json:"text"`
}

type GridHuntData struct {
	Target      string   `json:"target"`
	Distractors []string `json:"distractors"`
	GridSize    int      `json:"gridSize"`
}

type TracingData struct {
	Letter string `json:"letter"`
}

type AssignmentData struct {
	AssignmentID uint   `json:"assignmentId"`
	Title        string `json:"title"`
	Text         string `json:"text"`
}

func (SpeedReadData) Game() GameType    { return GameSpeedRead }
func (VocabData) Game() GameType        { return GameVocab }
func (MemoryGridData) Game() GameType   { return GameMemoryGrid }
func (ChoiceData) Game() GameType       { return GameChoice }
func (WritingData) Game() GameType      { return GameWriting }
func (AssistedReadData) Game() GameType { return GameAssistedRead }
func (ReadAloudData) Game() GameType    { return GameReadAloud }
func (GridHuntData) Game() GameType     { return GameGridHunt }
func (TracingData) Game() GameType      { return GameTracing }
func (AssignmentData) Game() GameType   { return GameHybrid }

// Level is one ordered difficulty step of an exercise. Immutable once
// the catalog is loaded.
type Level struct {
	Number int       `json:"level"`
	Data   LevelData `json:"data"`
}

// Exercise is a catalog entry. Static except for assignment-backed
// hybrid exercises, which are materialized from the assignment store.
type Exercise struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Duration     string   `json:"duration"`
	Kind         string   `json:"type"`
	Desc         string   `json:"desc"`
	GameType     GameType `json:"gameType"`
	IsAssignment bool     `json:"isDbAssignment"`
	Levels       []Level  `json:"levels"`
}
