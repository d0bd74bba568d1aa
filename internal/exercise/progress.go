package exercise

// Progress tracks, per exercise, the highest unlocked level index
// (0-based). A missing entry means only level 0 is playable. Owned by a
// single session; the owning service serializes access.
type Progress struct {
	unlocked map[string]int
}

func NewProgress() *Progress {
	return &Progress{unlocked: make(map[string]int)}
}

// RestoreProgress builds a tracker from a stored snapshot.
func RestoreProgress(snapshot map[string]int) *Progress {
	p := NewProgress()
	for id, max := range snapshot {
		if max > 0 {
			p.unlocked[id] = max
		}
	}
	return p
}

// MaxUnlocked returns the highest selectable level index for an exercise.
func (p *Progress) MaxUnlocked(exerciseID string) int {
	return p.unlocked[exerciseID]
}

// IsUnlocked reports whether levelIndex is at or below the unlock bound.
func (p *Progress) IsUnlocked(exerciseID string, levelIndex int) bool {
	return levelIndex <= p.unlocked[exerciseID]
}

// RecordCompletion advances the unlock bound to levelIndex+1 when the
// completed level is at or past the current bound. Monotonic and
// idempotent: replaying an already-unlocked level never regresses or
// double-advances. Returns true when the bound actually moved.
func (p *Progress) RecordCompletion(exerciseID string, levelIndex int) bool {
	if levelIndex < p.unlocked[exerciseID] {
		return false
	}
	p.unlocked[exerciseID] = levelIndex + 1
	return true
}

// Snapshot returns a copy suitable for persistence.
func (p *Progress) Snapshot() map[string]int {
	out := make(map[string]int, len(p.unlocked))
	for id, max := range p.unlocked {
		out[id] = max
	}
	return out
}
