package semchunk

import "sort"

// Boundaries holds, for one input text, the full breakpoint table a
// LevelProvider produces: for every level 0..MaxLevel, the sorted set of
// byte offsets at which a section at that level starts or ends. Level 0 is
// always the finest (individual characters); MaxLevel is the coarsest.
//
// Per §4.3's refinement requirement, a coarser level's breakpoint set must
// be a subset of every finer level's breakpoint set, so that a level-k
// section's range is exactly the union of one or more adjacent level-(k-1)
// sections. Boundaries enforces this at construction time (see Builder)
// rather than trusting each provider to get it right by hand.
type Boundaries struct {
	levels [][]int // levels[L], L == 0 is finest; each slice starts with 0 and ends with len(text)
}

// MaxLevel returns the coarsest level index in the table.
func (b *Boundaries) MaxLevel() int { return len(b.levels) - 1 }

// Contains reports whether offset is a breakpoint at the given level, i.e.
// the start or end of a section there. It is true for len(text), where no
// section begins.
func (b *Boundaries) Contains(level, offset int) bool {
	lv := b.levels[level]
	i := sort.SearchInts(lv, offset)
	return i < len(lv) && lv[i] == offset
}

// NextEnd returns the end of the section at level that starts at offset. ok
// is false if offset does not begin a section at that level, or if offset
// is already the end of the text (no section starts there).
func (b *Boundaries) NextEnd(level, offset int) (end int, ok bool) {
	lv := b.levels[level]
	i := sort.SearchInts(lv, offset)
	if i >= len(lv) || lv[i] != offset {
		return 0, false
	}
	if i+1 >= len(lv) {
		return 0, false
	}
	return lv[i+1], true
}

// endsFrom returns the slice of level's breakpoints strictly after offset,
// i.e. the successive ends of the level's sections starting at offset. The
// caller must have already established that offset begins a section at
// level (Contains(level, offset) == true).
func (b *Boundaries) endsFrom(level, offset int) []int {
	lv := b.levels[level]
	i := sort.SearchInts(lv, offset)
	return lv[i+1:]
}

// Builder assembles a Boundaries table bottom-up, from the finest level to
// the coarsest, intersecting every coarser candidate set against the
// immediately-finer level's set (plus the text's own start/end). This makes
// the refinement property hold by construction: it is impossible to add a
// breakpoint at level L that is not already present at level L-1, because
// AddLevel filters it out before storing it.
type Builder struct {
	textLen int
	levels  [][]int // built so far, finest first
}

// NewBuilder starts a Builder for a text of the given byte length. The
// caller must add at least a level-0 (character) set before calling Build.
func NewBuilder(textLen int) *Builder {
	return &Builder{textLen: textLen}
}

// AddFinestLevel adds level 0: the full set of breakpoints with no
// filtering (typically every UTF-8 scalar-value boundary). Breakpoints
// outside [0, textLen] are discarded; 0 and textLen are always present in
// the result regardless of what candidates contains.
func (bl *Builder) AddFinestLevel(candidates []int) {
	bl.levels = append(bl.levels, bl.normalize(candidates))
}

// AddLevel adds the next coarser level on top of the one most recently
// added, keeping only the candidate breakpoints that already exist in that
// finer level (plus 0 and textLen, which are always kept).
func (bl *Builder) AddLevel(candidates []int) {
	finer := bl.levels[len(bl.levels)-1]
	filtered := make([]int, 0, len(candidates))
	for _, c := range candidates {
		if c <= 0 || c >= bl.textLen {
			continue
		}
		i := sort.SearchInts(finer, c)
		if i < len(finer) && finer[i] == c {
			filtered = append(filtered, c)
		}
	}
	bl.levels = append(bl.levels, bl.normalize(filtered))
}

func (bl *Builder) normalize(candidates []int) []int {
	set := make(map[int]struct{}, len(candidates)+2)
	set[0] = struct{}{}
	set[bl.textLen] = struct{}{}
	for _, c := range candidates {
		if c >= 0 && c <= bl.textLen {
			set[c] = struct{}{}
		}
	}
	out := make([]int, 0, len(set))
	for c := range set {
		out = append(out, c)
	}
	sort.Ints(out)
	return out
}

// Build finalizes the table. Levels are stored coarsest-last in the order
// they were added (finest first), matching Boundaries' level indexing.
func (bl *Builder) Build() *Boundaries {
	return &Boundaries{levels: bl.levels}
}
