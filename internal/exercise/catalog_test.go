package exercise

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogForNormalRisk(t *testing.T) {
	catalog := CatalogFor(RiskNormal)

	require.Len(t, catalog, 5)
	ids := make([]string, 0, len(catalog))
	for _, ex := range catalog {
		ids = append(ids, ex.ID)
		assert.NotEmpty(t, ex.Levels, "exercise %s has no levels", ex.ID)
		assert.False(t, ex.IsAssignment)
	}
	assert.Equal(t, []string{"n1", "n2", "n3", "n4", "n5"}, ids)
}

func TestCatalogForHighRisk(t *testing.T) {
	catalog := CatalogFor(RiskHigh)

	require.Len(t, catalog, 5)
	assert.Equal(t, "h1", catalog[0].ID)
	assert.Equal(t, GameAssistedRead, catalog[0].GameType)
	assert.Equal(t, GameGridHunt, catalog[2].GameType)
}

func TestCatalogForUnknownLabelFallsBackToHighSupport(t *testing.T) {
	// Any label other than the exact normal label gets the supportive set.
	for _, label := range []string{"", "normal", "High Risk", "Moderate"} {
		catalog := CatalogFor(label)
		require.NotEmpty(t, catalog, "label %q", label)
		assert.Equal(t, "h1", catalog[0].ID, "label %q", label)
	}
}

func TestCatalogForReturnsIndependentCopies(t *testing.T) {
	a := CatalogFor(RiskNormal)
	a[0].Title = "mutated"
	a[0].Levels[0] = Level{}

	b := CatalogFor(RiskNormal)
	assert.Equal(t, "Speed Reading Sprint", b[0].Title)
	assert.NotEqual(t, Level{}, b[0].Levels[0])
}

func TestNewAssignmentExercise(t *testing.T) {
	ex := NewAssignmentExercise(7, "Week 3 Passage", "The quick brown fox.")

	assert.Equal(t, "db-7", ex.ID)
	assert.Equal(t, GameHybrid, ex.GameType)
	assert.True(t, ex.IsAssignment)
	require.Len(t, ex.Levels, 1)

	data, ok := ex.Levels[0].Data.(AssignmentData)
	require.True(t, ok)
	assert.Equal(t, uint(7), data.AssignmentID)
	assert.Equal(t, "The quick brown fox.", data.Text)
}

func TestFindExercise(t *testing.T) {
	catalog := CatalogFor(RiskHigh)

	ex, ok := FindExercise(catalog, "h3")
	require.True(t, ok)
	assert.Equal(t, "Letter Discrimination", ex.Title)

	_, ok = FindExercise(catalog, "n1")
	assert.False(t, ok)
}
