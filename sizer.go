package semchunk

import (
	"unicode"
	"unicode/utf8"

	"github.com/pkoukk/tiktoken-go"
	"github.com/rivo/uniseg"
)

// Sizer measures a string in caller-defined units. Implementations must be
// pure and monotone non-decreasing: extending a string (keeping its prefix)
// must never decrease the reported size. The Engine relies on monotonicity
// for the correctness of its binary search.
type Sizer interface {
	Size(s string) int
}

// SizerFunc adapts a plain function to the Sizer interface, mirroring the
// teacher's TokenCounter callback shape.
type SizerFunc func(s string) int

// Size implements Sizer.
func (f SizerFunc) Size(s string) int { return f(s) }

// ByteSizer measures the number of bytes in a chunk. It is the cheapest
// possible Sizer and is trivially monotone.
type ByteSizer struct{}

// Size implements Sizer.
func (ByteSizer) Size(s string) int { return len(s) }

// CharacterSizer measures the number of Unicode scalar values (runes) in a
// chunk.
type CharacterSizer struct{}

// Size implements Sizer.
func (CharacterSizer) Size(s string) int { return utf8.RuneCountInString(s) }

// GraphemeSizer measures the number of extended grapheme clusters, using the
// same Unicode segmentation tables as the plain-text level provider so that
// sizing and splitting agree on what a "character" is.
type GraphemeSizer struct{}

// Size implements Sizer.
func (GraphemeSizer) Size(s string) int { return uniseg.GraphemeClusterCount(s) }

// WordSizer measures the number of Unicode words (UAX #29 word boundaries),
// counting only segments that contain at least one letter, digit, or
// symbol — whitespace-only segments between words are not counted. This
// mirrors the teacher's SimpleTokenCounter ("whitespace-separated words")
// but derived from the same Unicode tables the plain-text provider uses
// rather than strings.Fields, so it agrees with word-level boundaries for
// non-ASCII input.
type WordSizer struct{}

// Size implements Sizer.
func (WordSizer) Size(s string) int {
	n := 0
	state := -1
	for len(s) > 0 {
		var word string
		word, s, state = uniseg.FirstWordInString(s, state)
		if wordIsContent(word) {
			n++
		}
	}
	return n
}

func wordIsContent(word string) bool {
	for _, r := range word {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSymbol(r) {
			return true
		}
	}
	return false
}

// TokenSizer wraps a BPE tokenizer, measuring a chunk's contribution to a
// downstream encode call. Per §4.2, this excludes padding tokens (the
// underlying Encode call never pads) and, by policy, adds a fixed overhead
// for the special/BOS/EOS tokens the tokenizer would prepend/append around
// the chunk when it is encoded on its own — callers that don't want that
// overhead counted can construct a TokenSizer with no SpecialTokenOverhead.
type TokenSizer struct {
	enc             *tiktoken.Tiktoken
	allowedSpecial  []string
	specialOverhead int
}

// TokenSizerOption configures a TokenSizer.
type TokenSizerOption func(*TokenSizer)

// WithSpecialTokenOverhead sets the fixed number of tokens to add to every
// measurement, representing BOS/EOS or other special tokens a downstream
// encode call would add around the chunk.
func WithSpecialTokenOverhead(n int) TokenSizerOption {
	return func(t *TokenSizer) { t.specialOverhead = n }
}

// WithAllowedSpecialTokens passes through literal special-token strings
// (e.g. "<|endoftext|>") that should be encoded as their single special
// token rather than rejected or split into ordinary BPE tokens.
func WithAllowedSpecialTokens(tokens ...string) TokenSizerOption {
	return func(t *TokenSizer) { t.allowedSpecial = tokens }
}

// NewTokenSizer builds a TokenSizer from a tiktoken encoding name (e.g.
// "cl100k_base", "o200k_base").
func NewTokenSizer(encoding string, opts ...TokenSizerOption) (*TokenSizer, error) {
	enc, err := tiktoken.GetEncoding(encoding)
	if err != nil {
		return nil, err
	}
	t := &TokenSizer{enc: enc}
	for _, opt := range opts {
		opt(t)
	}
	return t, nil
}

// NewTokenSizerForModel builds a TokenSizer from a model name (e.g.
// "gpt-4"), resolving the model's encoding the way tiktoken-go does.
func NewTokenSizerForModel(model string, opts ...TokenSizerOption) (*TokenSizer, error) {
	enc, err := tiktoken.EncodingForModel(model)
	if err != nil {
		return nil, err
	}
	t := &TokenSizer{enc: enc}
	for _, opt := range opts {
		opt(t)
	}
	return t, nil
}

// Size implements Sizer.
func (t *TokenSizer) Size(s string) int {
	toks := t.enc.Encode(s, t.allowedSpecial, nil)
	return len(toks) + t.specialOverhead
}
