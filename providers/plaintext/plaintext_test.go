package plaintext

import (
	"testing"
)

func TestCharacterBoundaries(t *testing.T) {
	text := "abc"
	got := CharacterBoundaries(text)
	want := []int{0, 1, 2, 3}
	if len(got) != len(want) {
		t.Fatalf("CharacterBoundaries(%q) = %v, want %v", text, got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("CharacterBoundaries(%q)[%d] = %d, want %d", text, i, got[i], want[i])
		}
	}
}

func TestGraphemeBoundaries(t *testing.T) {
	// two ASCII letters are two one-byte grapheme clusters.
	text := "ab"
	got := GraphemeBoundaries(text)
	if len(got) != 2 || got[0] != 1 || got[1] != 2 {
		t.Errorf("GraphemeBoundaries(%q) = %v, want [1 2]", text, got)
	}
}

func TestWordBoundaries(t *testing.T) {
	text := "hi there"
	got := WordBoundaries(text)
	if len(got) == 0 {
		t.Fatalf("WordBoundaries(%q) returned no boundaries", text)
	}
	if got[len(got)-1] != len(text) {
		t.Errorf("last boundary = %d, want %d (end of text)", got[len(got)-1], len(text))
	}
}

func TestSentenceBoundaries(t *testing.T) {
	text := "One sentence. Another sentence."
	got := SentenceBoundaries(text)
	if len(got) != 2 {
		t.Fatalf("SentenceBoundaries(%q) = %v, want 2 boundaries", text, got)
	}
	if got[1] != len(text) {
		t.Errorf("last boundary = %d, want %d", got[1], len(text))
	}
}

func TestNewlineRunBoundariesByLength(t *testing.T) {
	text := "a\nb\n\nc"
	runs := NewlineRunBoundariesByLength(text)
	if len(runs) != 2 {
		t.Fatalf("NewlineRunBoundariesByLength(%q) returned %d run-length groups, want 2", text, len(runs))
	}
	// single-newline run group (shorter, finer) must come before the
	// double-newline run group (longer, coarser).
	if len(runs[0]) == 0 || len(runs[1]) == 0 {
		t.Fatalf("expected both run-length groups to be non-empty, got %v", runs)
	}
}

func TestProviderAnalyzeRefinement(t *testing.T) {
	p := New()
	text := "Hello there. General Kenobi!\n\nYou are a bold one."
	b := p.Analyze(text)

	if b.MaxLevel() < 3 {
		t.Fatalf("MaxLevel() = %d, want at least 3 (char/grapheme/word/sentence)", b.MaxLevel())
	}
	// The coarsest level's breakpoints must all exist in level 0.
	for level := 1; level <= b.MaxLevel(); level++ {
		for offset := 0; offset <= len(text); offset++ {
			if b.Contains(level, offset) && !b.Contains(0, offset) {
				t.Errorf("level %d contains offset %d which level 0 does not (refinement violated)", level, offset)
			}
		}
	}
}
