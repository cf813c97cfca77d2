package analytics

import (
	"sort"
	"testing"
)

func TestExtractTags_ExactTokens(t *testing.T) {
	tags := ExtractTags("I feel happy and calm today")

	sort.Strings(tags)
	want := []string{"calm", "happy"}
	if len(tags) != len(want) {
		t.Fatalf("ExtractTags() = %v, want %v", tags, want)
	}
	for i := range want {
		if tags[i] != want[i] {
			t.Errorf("ExtractTags()[%d] = %q, want %q", i, tags[i], want[i])
		}
	}
}

func TestExtractTags_NoSubstringMatch(t *testing.T) {
	// "happiness" is not the token "happy"; extraction is exact-match only.
	tags := ExtractTags("I feel happiness")
	if len(tags) != 0 {
		t.Errorf("ExtractTags() = %v, want empty", tags)
	}
}

func TestExtractTags_Empty(t *testing.T) {
	if tags := ExtractTags(""); len(tags) != 0 {
		t.Errorf("ExtractTags(\"\") = %v, want empty", tags)
	}
}

func TestExtractTags_CaseInsensitive(t *testing.T) {
	tags := ExtractTags("Feeling GRATEFUL")
	if len(tags) != 1 || tags[0] != "grateful" {
		t.Errorf("ExtractTags() = %v, want [grateful]", tags)
	}
}

func TestExtractTags_Unique(t *testing.T) {
	tags := ExtractTags("happy happy happy")
	if len(tags) != 1 || tags[0] != "happy" {
		t.Errorf("ExtractTags() = %v, want [happy]", tags)
	}
}
