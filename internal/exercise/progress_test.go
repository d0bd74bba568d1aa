package exercise

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProgressFreshUnlocksOnlyFirstLevel(t *testing.T) {
	p := NewProgress()

	assert.Equal(t, 0, p.MaxUnlocked("h3"))
	assert.True(t, p.IsUnlocked("h3", 0))
	assert.False(t, p.IsUnlocked("h3", 1))
}

func TestProgressCompletionAdvancesBound(t *testing.T) {
	p := NewProgress()

	assert.True(t, p.RecordCompletion("n1", 0))
	assert.True(t, p.IsUnlocked("n1", 1))
	assert.False(t, p.IsUnlocked("n1", 2))

	assert.True(t, p.RecordCompletion("n1", 1))
	assert.Equal(t, 2, p.MaxUnlocked("n1"))

	// Other exercises are untouched.
	assert.Equal(t, 0, p.MaxUnlocked("n2"))
}

func TestProgressReplayNeverRegresses(t *testing.T) {
	p := NewProgress()
	p.RecordCompletion("h1", 0)
	p.RecordCompletion("h1", 1)
	p.RecordCompletion("h1", 2)
	assert.Equal(t, 3, p.MaxUnlocked("h1"))

	// Replaying an earlier level must not move the bound.
	assert.False(t, p.RecordCompletion("h1", 0))
	assert.Equal(t, 3, p.MaxUnlocked("h1"))

	// Beating the frontier level again is idempotent.
	moved := p.RecordCompletion("h1", 2)
	assert.True(t, moved)
	assert.Equal(t, 3, p.MaxUnlocked("h1"))
}

func TestProgressRestoreRoundTrip(t *testing.T) {
	p := NewProgress()
	p.RecordCompletion("n1", 0)
	p.RecordCompletion("n3", 0)
	p.RecordCompletion("n3", 1)

	restored := RestoreProgress(p.Snapshot())
	assert.Equal(t, 1, restored.MaxUnlocked("n1"))
	assert.Equal(t, 2, restored.MaxUnlocked("n3"))
	assert.Equal(t, 0, restored.MaxUnlocked("n5"))

	// Snapshot is a copy, not a view.
	snap := restored.Snapshot()
	snap["n1"] = 99
	assert.Equal(t, 1, restored.MaxUnlocked("n1"))
}
