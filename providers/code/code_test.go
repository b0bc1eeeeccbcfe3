package code

import (
	"testing"

	"github.com/gomantics/semchunk/providers/code/languages"
)

func TestNewRejectsUnsupportedLanguage(t *testing.T) {
	if _, err := New("not-a-real-language"); err == nil {
		t.Error("New() with an unregistered language should fail")
	}
}

func TestNewRejectsGenericLanguage(t *testing.T) {
	if _, err := New(languages.Generic); err == nil {
		t.Error("New(languages.Generic) should fail: Generic has no tree-sitter grammar")
	}
}

func TestAnalyzeProducesRefinedLevels(t *testing.T) {
	p, err := New(languages.Go)
	if err != nil {
		t.Fatalf("New(Go) error = %v", err)
	}

	source := `package main

func add(a, b int) int {
	return a + b
}

func sub(a, b int) int {
	return a - b
}
`
	b := p.Analyze(source)
	if b.MaxLevel() < plaintextLevels {
		t.Fatalf("MaxLevel() = %d, want at least %d (plaintext fallback + at least one AST level)", b.MaxLevel(), plaintextLevels)
	}

	for level := 1; level <= b.MaxLevel(); level++ {
		for offset := 0; offset <= len(source); offset++ {
			if b.Contains(level, offset) && !b.Contains(0, offset) {
				t.Errorf("level %d contains offset %d which level 0 does not (refinement violated)", level, offset)
			}
		}
	}
}

func TestAnalyzeFallsBackOnUnparsableInput(t *testing.T) {
	p, err := New(languages.Go)
	if err != nil {
		t.Fatalf("New(Go) error = %v", err)
	}

	// Deliberately broken syntax: the tree will contain error nodes and the
	// provider must fall back to the plain-text levels instead of panicking
	// or returning a degenerate Boundaries.
	source := "func broken( {{{ not valid go at all"
	b := p.Analyze(source)
	if b.MaxLevel() < 3 {
		t.Fatalf("fallback Boundaries MaxLevel() = %d, want at least 3 (plain-text levels)", b.MaxLevel())
	}
}

func TestAnalyzeLevelZeroCoversEveryOffset(t *testing.T) {
	p, err := New(languages.Go)
	if err != nil {
		t.Fatalf("New(Go) error = %v", err)
	}
	source := `package main`
	b := p.Analyze(source)
	// Level 0 must still cover every byte offset regardless of AST shape.
	for i := 0; i <= len(source); i++ {
		if !b.Contains(0, i) {
			t.Errorf("level 0 missing offset %d", i)
		}
	}
}
