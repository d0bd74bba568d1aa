package exercise

import "math/rand"

// GridCell is one cell of a gridHunt board.
type GridCell struct {
	Index  int    `json:"id"`
	Char   string `json:"char"`
	Target bool   `json:"-"`
	Found  bool   `json:"found"`
}

// GenerateGrid populates a hunt board: each cell flips a biased coin with
// the given target probability and otherwise draws a distractor uniformly
// at random. The rand source is injected so tests can be deterministic;
// callers regenerate on every re-entry into play.
func GenerateGrid(data GridHuntData, targetProbability float64, rng *rand.Rand) []GridCell {
	cells := make([]GridCell, data.GridSize)
	for i := range cells {
		cells[i].Index = i
		if rng.Float64() < targetProbability {
			cells[i].Char = data.Target
			cells[i].Target = true
		} else {
			cells[i].Char = data.Distractors[rng.Intn(len(data.Distractors))]
		}
	}
	return cells
}
