// Package plaintext implements semchunk.LevelProvider over Unicode text
// segmentation, per spec §4.3's plain-text levels: characters, grapheme
// clusters, words and sentences (UAX #29, via rivo/uniseg), topped with one
// extra level per distinct run-length of consecutive newlines found in the
// text — the coarsest boundary a plain document offers, since a document
// has no headings or AST to fall back on.
package plaintext

import (
	"github.com/gomantics/semchunk"
	"github.com/rivo/uniseg"
)

// Provider is the plain-text LevelProvider.
type Provider struct{}

// New creates a plain-text Provider. It carries no state — all of its
// output is derived fresh from each Analyze call's text.
func New() *Provider {
	return &Provider{}
}

// Analyze implements semchunk.LevelProvider.
func (p *Provider) Analyze(text string) *semchunk.Boundaries {
	b := semchunk.NewBuilder(len(text))

	b.AddFinestLevel(CharacterBoundaries(text))
	b.AddLevel(GraphemeBoundaries(text))
	b.AddLevel(WordBoundaries(text))
	b.AddLevel(SentenceBoundaries(text))

	for _, run := range NewlineRunBoundariesByLength(text) {
		b.AddLevel(run)
	}

	return b.Build()
}

// CharacterBoundaries returns every UTF-8 scalar-value boundary in text,
// i.e. the finest possible split points.
func CharacterBoundaries(text string) []int {
	bounds := make([]int, 0, len(text)+1)
	for i := range text {
		bounds = append(bounds, i)
	}
	bounds = append(bounds, len(text))
	return bounds
}

// GraphemeBoundaries returns the end of every extended grapheme cluster.
func GraphemeBoundaries(text string) []int {
	var bounds []int
	state := -1
	pos := 0
	for len(text) > 0 {
		var cluster string
		cluster, text, _, state = uniseg.FirstGraphemeClusterInString(text, state)
		pos += len(cluster)
		bounds = append(bounds, pos)
	}
	return bounds
}

// WordBoundaries returns the end of every Unicode word (UAX #29).
func WordBoundaries(text string) []int {
	var bounds []int
	state := -1
	pos := 0
	for len(text) > 0 {
		var word string
		word, text, state = uniseg.FirstWordInString(text, state)
		pos += len(word)
		bounds = append(bounds, pos)
	}
	return bounds
}

// SentenceBoundaries returns the end of every Unicode sentence (UAX #29).
func SentenceBoundaries(text string) []int {
	var bounds []int
	state := -1
	pos := 0
	for len(text) > 0 {
		var sentence string
		sentence, text, state = uniseg.FirstSentenceInString(text, state)
		pos += len(sentence)
		bounds = append(bounds, pos)
	}
	return bounds
}

// NewlineRunBoundariesByLength finds every maximal run of consecutive
// newline units (`\r\n`, `\n` or `\r`, each counting as one unit) in text,
// and groups the boundary *after* each run into every threshold level the
// run's length qualifies for. Longer runs are coarser, per §4.3 ("L_k..L_5:
// consecutive-newline runs, where each distinct run length m >= 1 forms its
// own level, longer runs are higher"): level m's breakpoints are the ends of
// every run whose length is >= m, not just runs of exactly length m. This
// cumulative membership is what makes the refinement property hold — a
// length-4 run's end is, by construction, also a boundary at levels 1..3 —
// whereas partitioning runs by exact length would let a long run's end
// vanish from a coarser level whenever no shorter run happens to end at the
// same offset elsewhere in the text. The returned slice is ordered from
// level 1 (finest of this group) to the longest observed run length
// (coarsest), matching Builder's finest-to-coarsest AddLevel order.
func NewlineRunBoundariesByLength(text string) [][]int {
	type run struct{ end, length int }
	var runs []run

	i := 0
	maxLen := 0
	for i < len(text) {
		if !isNewlineStart(text, i) {
			i++
			continue
		}
		runLen := 0
		for i < len(text) {
			size := newlineUnitSize(text, i)
			if size == 0 {
				break
			}
			i += size
			runLen++
		}
		runs = append(runs, run{end: i, length: runLen})
		if runLen > maxLen {
			maxLen = runLen
		}
	}

	out := make([][]int, maxLen)
	for _, r := range runs {
		for m := 1; m <= r.length; m++ {
			out[m-1] = append(out[m-1], r.end)
		}
	}
	return out
}

func isNewlineStart(text string, i int) bool {
	return newlineUnitSize(text, i) > 0
}

// newlineUnitSize returns the byte length of the newline unit starting at
// i ("\r\n" counts as one unit), or 0 if there is none.
func newlineUnitSize(text string, i int) int {
	if i >= len(text) {
		return 0
	}
	switch text[i] {
	case '\n', '\r':
		if text[i] == '\r' && i+1 < len(text) && text[i+1] == '\n' {
			return 2
		}
		return 1
	default:
		return 0
	}
}
