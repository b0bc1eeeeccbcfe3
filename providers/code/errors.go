package code

import (
	"fmt"

	"github.com/gomantics/semchunk/providers/code/languages"
)

var (
	// ErrUnsupportedLanguage is returned when the requested language has no
	// registered grammar at all.
	ErrUnsupportedLanguage = fmt.Errorf("unsupported language")
	// ErrNoASTSupport is returned when a language is registered but carries
	// no tree-sitter grammar (e.g. Generic).
	ErrNoASTSupport = fmt.Errorf("language does not support AST parsing")
	// ErrParseFailed is returned when tree-sitter itself fails to produce a
	// tree (distinct from producing a tree with error nodes in it, which the
	// Provider tolerates via its plain-text fallback).
	ErrParseFailed = fmt.Errorf("failed to parse code")
)

// ProviderError wraps a parse or language-resolution failure with the
// language that triggered it.
type ProviderError struct {
	Language languages.LanguageName
	Err      error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("%s: %v", e.Language, e.Err)
}

func (e *ProviderError) Unwrap() error { return e.Err }
