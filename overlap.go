package semchunk

import "sort"

// overlapStart implements §4.5: starting at the end of the chunk just
// emitted and walking backwards through the level-or-higher sections inside
// [start, end), greedily include whole sections into the overlap prefix as
// long as its size stays within the overlap budget. The returned offset may
// equal end — this happens when no same-level section inside the emitted
// span is small enough on its own to fit the budget, i.e. no overlap at all.
// Per §9's open question, the search never descends below level to look for
// smaller sections; "take none" is the specified behaviour when nothing at
// level fits.
//
// The cursor folds the overlap directly into where the next chunk's search
// begins — rather than precomputing prefix text and prepending it to the
// next core span — so that the next chunk's own level/binary-search
// selection runs starting from the overlap boundary, exactly as if the
// input began there. This is what keeps consecutive overlapping chunks
// sized by the same rules as any other chunk instead of growing unbounded
// by the overlap on top of a full core span.
func overlapStart(b *Boundaries, cache *sizerCache, start, end, level, overlap int) int {
	if overlap <= 0 || start >= end {
		return end
	}

	lv := b.levels[level]
	startIdx := sort.SearchInts(lv, start)
	endIdx := sort.SearchInts(lv, end)

	prefixStart := end
	for i := endIdx - 1; i >= startIdx; i-- {
		candidate := lv[i]
		if cache.size(candidate, end) > overlap {
			break
		}
		prefixStart = candidate
	}
	return prefixStart
}
