// Package analytics implements the mood and sentiment engine: lexical
// sentiment classification, mood-tag extraction, streak calculation, and
// trend/aggregate statistics. Every function is pure and total: no I/O, no
// shared state, and a defined result for empty input.
package analytics

import "strings"

// Label is the coarse sentiment classification for a text span
type Label string

const (
	LabelPositive Label = "positive"
	LabelNeutral  Label = "neutral"
	LabelNegative Label = "negative"
)

// ScoreScale converts a raw match-count score into the persisted
// sentiment_score range before clamping.
const ScoreScale = 10

// Bounds of the persisted sentiment_score.
const (
	ScoreMin = -100
	ScoreMax = 100
)

// positiveWords and negativeWords are matched by substring containment on
// lowercased input, so "happiness" matches "happy". This is deliberate and
// differs from the exact-token matching in ExtractTags.
var positiveWords = []string{
	"happy", "joy", "grateful", "excited", "calm", "peaceful",
	"love", "wonderful", "amazing", "hopeful", "proud", "content",
	"relaxed", "good", "great",
}

var negativeWords = []string{
	"sad", "angry", "anxious", "stressed", "worried", "depressed",
	"lonely", "frustrated", "afraid", "scared", "upset", "tired",
	"hopeless", "awful", "terrible",
}

// Classify maps a text span to a sentiment label and a raw signed score.
// The label follows a presence rule: positive if any positive word is found
// and no negative word, negative for the converse, neutral otherwise
// (including both-present and neither-present). The score counts matches:
// (#positive) - (#negative). Empty text yields neutral, 0.
func Classify(text string) (Label, int) {
	lower := strings.ToLower(text)

	posCount := 0
	for _, w := range positiveWords {
		if strings.Contains(lower, w) {
			posCount++
		}
	}

	negCount := 0
	for _, w := range negativeWords {
		if strings.Contains(lower, w) {
			negCount++
		}
	}

	label := LabelNeutral
	if posCount > 0 && negCount == 0 {
		label = LabelPositive
	} else if negCount > 0 && posCount == 0 {
		label = LabelNegative
	}

	return label, posCount - negCount
}

// SentimentScore derives the persisted journal sentiment score: the raw
// Classify count scaled by ScoreScale and clamped to [ScoreMin, ScoreMax].
func SentimentScore(text string) int {
	_, raw := Classify(text)

	score := raw * ScoreScale
	if score > ScoreMax {
		return ScoreMax
	}
	if score < ScoreMin {
		return ScoreMin
	}
	return score
}
