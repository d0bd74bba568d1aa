package exercise

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateGridShape(t *testing.T) {
	data := GridHuntData{Target: "b", Distractors: []string{"d", "p", "q"}, GridSize: 36}
	cells := GenerateGrid(data, 0.25, rand.New(rand.NewSource(1)))

	require.Len(t, cells, 36)
	for i, c := range cells {
		assert.Equal(t, i, c.Index)
		assert.False(t, c.Found)
		if c.Target {
			assert.Equal(t, "b", c.Char)
		} else {
			assert.Contains(t, data.Distractors, c.Char)
		}
	}
}

func TestGenerateGridProbabilityExtremes(t *testing.T) {
	data := GridHuntData{Target: "m", Distractors: []string{"n"}, GridSize: 9}
	rng := rand.New(rand.NewSource(2))

	for _, c := range GenerateGrid(data, 1.0, rng) {
		assert.True(t, c.Target)
		assert.Equal(t, "m", c.Char)
	}
	for _, c := range GenerateGrid(data, 0.0, rng) {
		assert.False(t, c.Target)
		assert.Equal(t, "n", c.Char)
	}
}

func TestGenerateGridIsIndependentPerCall(t *testing.T) {
	data := GridHuntData{Target: "b", Distractors: []string{"d", "p"}, GridSize: 25}
	rng := rand.New(rand.NewSource(3))

	first := GenerateGrid(data, 0.25, rng)
	first[0].Found = true
	second := GenerateGrid(data, 0.25, rng)
	assert.False(t, second[0].Found)
}
