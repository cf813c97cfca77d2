package analytics

import "strings"

// moodVocabulary is the fixed emotion vocabulary for tag extraction.
// Unlike the classifier's substring containment, tags require an exact token
// match: "happiness" does not yield the "happy" tag.
var moodVocabulary = []string{
	"happy", "sad", "angry", "anxious", "calm", "excited", "tired",
	"stressed", "grateful", "lonely", "hopeful", "frustrated", "content",
	"overwhelmed", "peaceful", "worried", "proud", "scared", "joyful",
}

// ExtractTags returns the subset of the mood vocabulary whose exact token
// form appears in the whitespace-tokenized, lowercased text. Each tag appears
// at most once; order follows the vocabulary and is not part of the contract.
func ExtractTags(text string) []string {
	tokens := make(map[string]bool)
	for _, tok := range strings.Fields(strings.ToLower(text)) {
		tokens[tok] = true
	}

	tags := []string{}
	for _, word := range moodVocabulary {
		if tokens[word] {
			tags = append(tags, word)
		}
	}
	return tags
}
