package matcher_test

import (
	"testing"

	"lexiscreen_backend/internal/matcher"

	"github.com/stretchr/testify/assert"
)

func TestScoreIgnoresCaseAndPunctuation(t *testing.T) {
	assert.Equal(t, 100, matcher.Score("The cat sat on the mat", "the CAT sat on the mat!!"))
}

func TestScorePartialMatch(t *testing.T) {
	assert.Equal(t, 50, matcher.Score("a b c d", "a b"))
}

func TestScoreEmptyCandidate(t *testing.T) {
	assert.Equal(t, 0, matcher.Score("hello world", ""))
	assert.Equal(t, 0, matcher.Score("hello world", "   "))
	assert.Equal(t, 0, matcher.Score("hello world", "...!!"))
}

func TestScoreEmptyTarget(t *testing.T) {
	assert.Equal(t, 0, matcher.Score("", "anything at all"))
	assert.Equal(t, 0, matcher.Score("?!", "anything"))
}

func TestScoreOrderInsensitive(t *testing.T) {
	assert.Equal(t, 100, matcher.Score("the sun is hot", "hot is the sun"))
}

func TestScoreCountsEveryTargetOccurrence(t *testing.T) {
	// "the" appears twice in the target and once in the candidate; both
	// target occurrences still count.
	assert.Equal(t, 67, matcher.Score("the cat the", "the"))
}

func TestScoreAlwaysInRange(t *testing.T) {
	inputs := []struct{ target, candidate string }{
		{"", ""},
		{"one", "one one one one"},
		{"a b c", "x y z"},
		{"repeat repeat repeat", "repeat"},
		{"The quick brown fox jumps over the dog", "the quick brown fox jumps over the dog"},
	}
	for _, in := range inputs {
		got := matcher.Score(in.target, in.candidate)
		assert.GreaterOrEqual(t, got, 0)
		assert.LessOrEqual(t, got, 100)
	}
}

func TestScoreIdempotent(t *testing.T) {
	first := matcher.Score("I like to play in the park", "i like to play")
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, matcher.Score("I like to play in the park", "i like to play"))
	}
}

func TestTokenize(t *testing.T) {
	assert.Equal(t, []string{"the", "sun", "is", "hot"}, matcher.Tokenize("The sun is hot."))
	assert.Empty(t, matcher.Tokenize(""))
}
