package semchunk

import (
	"unicode/utf8"
)

// cursor is the explicit, stateful iterator behind Chunks, ChunkByteIndices
// and ChunkCharIndices. Per the design notes in §9, iteration is a plain
// cursor with a next() operation rather than a coroutine — this keeps the
// binary-search invariants auditable and the whole thing single-threaded
// and allocation-light.
type cursor struct {
	engine     *Engine
	text       string
	boundaries *Boundaries
	cache      *sizerCache
	chars      *charOffsetTracker
	trackChars bool

	offset int
	done   bool
}

func newCursor(e *Engine, text string) *cursor {
	return &cursor{
		engine:     e,
		text:       text,
		boundaries: e.provider.Analyze(text),
		cache:      newSizerCache(e.sizer, text),
		chars:      newCharOffsetTracker(text),
	}
}

// next produces the next chunk, or ok == false once the input is exhausted.
func (c *cursor) next() (Chunk, bool) {
	if c.done {
		return Chunk{}, false
	}
	n := len(c.text)
	if c.offset >= n {
		c.done = true
		return Chunk{}, false
	}

	o := c.offset
	level, end, found := c.selectLevel(o)
	if !found {
		_, size := utf8.DecodeRuneInString(c.text[o:])
		if size == 0 {
			size = 1
		}
		level, end = 0, o+size
	} else {
		k := c.selectK(o, level)
		k = c.extendFlat(o, level, k)
		k = c.shortestTie(o, level, k)
		ends := c.boundaries.endsFrom(level, o)
		end = ends[k-1]
	}

	outText := c.text[o:end]

	if c.engine.trim {
		preserveIndent := false
		if ip, ok := c.engine.provider.(IndentPreserving); ok {
			preserveIndent = ip.PreserveIndent()
		}
		outText = applyTrim(outText, preserveIndent)
	}

	var charOffset int
	if c.trackChars {
		charOffset = c.chars.charOffset(o)
	}

	nextOffset := end
	if c.engine.overlap > 0 {
		if start := overlapStart(c.boundaries, c.cache, o, end, level, c.engine.overlap); start > o {
			nextOffset = start
		}
	}

	c.cache.advancePast(nextOffset)
	c.offset = nextOffset
	if end >= n {
		c.done = true
	}

	return Chunk{ByteOffset: o, CharOffset: charOffset, Text: outText}, true
}

// selectLevel implements §4.4 step 1: the highest level whose first section
// starting at o already fits within max.
func (c *cursor) selectLevel(o int) (level, end int, ok bool) {
	max := c.engine.capacity.max
	for lvl := c.boundaries.MaxLevel(); lvl >= 0; lvl-- {
		e, has := c.boundaries.NextEnd(lvl, o)
		if !has {
			continue
		}
		if c.cache.size(o, e) <= max {
			return lvl, e, true
		}
	}
	return 0, 0, false
}

// selectK implements §4.4 step 2: binary search for the largest k with
// fits(k) == true.
func (c *cursor) selectK(o, level int) int {
	ends := c.boundaries.endsFrom(level, o)
	max := c.engine.capacity.max

	lo, hi := 1, len(ends)
	largest := 0
	for lo <= hi {
		mid := (lo + hi) / 2
		if c.cache.size(o, ends[mid-1]) <= max {
			largest = mid
			lo = mid + 1
		} else {
			hi = mid - 1
		}
	}
	return largest
}

// extendFlat implements §4.4 step 3: inspect sections immediately following
// k as long as appending each leaves the measured size unchanged.
func (c *cursor) extendFlat(o, level, k int) int {
	ends := c.boundaries.endsFrom(level, o)
	if k <= 0 || k > len(ends) {
		return k
	}
	baseSize := c.cache.size(o, ends[k-1])
	for k < len(ends) && c.cache.size(o, ends[k]) == baseSize {
		k++
	}
	return k
}

// shortestTie implements the §8 property-6 tie-break: of the k values in
// [1, k] that measure to the same size k itself does, the shortest is
// canonical (e.g. trailing whitespace a Sizer ignores shouldn't be kept
// just because it was there). This must run last — anything that runs
// after it and is free to grow forward would just walk the result back
// across the same flat span it was chosen from.
func (c *cursor) shortestTie(o, level, k int) int {
	if k <= 1 {
		return k
	}
	ends := c.boundaries.endsFrom(level, o)
	targetSize := c.cache.size(o, ends[k-1])

	lo, hi := 1, k
	shortest := k
	for lo <= hi {
		mid := (lo + hi) / 2
		if c.cache.size(o, ends[mid-1]) == targetSize {
			shortest = mid
			hi = mid - 1
		} else {
			lo = mid + 1
		}
	}
	return shortest
}
