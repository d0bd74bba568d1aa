package matcher

import (
	"strings"
)

// punctuation stripped before tokenizing. Spoken transcripts and typed
// submissions carry commas and sentence punctuation that must not affect
// word matching.
const punctuation = ".,!?;:()"

// Tokenize lowercases s, strips punctuation and splits it into word tokens.
func Tokenize(s string) []string {
	cleaned := strings.Map(func(r rune) rune {
		if strings.ContainsRune(punctuation, r) {
			return -1
		}
		return r
	}, strings.ToLower(s))
	return strings.Fields(cleaned)
}

// Score compares a candidate transcript or written submission against the
// target text and returns an accuracy percentage in [0,100].
//
// Matching is case-insensitive, punctuation-insensitive and
// order-insensitive: each occurrence of a target word counts as a match if
// the word appears anywhere in the candidate. An empty candidate always
// scores 0, which guards against empty-transcript false positives.
func Score(target, candidate string) int {
	targetWords := Tokenize(target)
	if len(targetWords) == 0 {
		return 0
	}

	candidateWords := Tokenize(candidate)
	if len(candidateWords) == 0 {
		return 0
	}

	candidateSet := make(map[string]struct{}, len(candidateWords))
	for _, w := range candidateWords {
		candidateSet[w] = struct{}{}
	}

	matches := 0
	for _, w := range targetWords {
		if _, ok := candidateSet[w]; ok {
			matches++
		}
	}

	acc := int(float64(matches)/float64(len(targetWords))*100 + 0.5)
	if acc > 100 {
		acc = 100
	}
	return acc
}
