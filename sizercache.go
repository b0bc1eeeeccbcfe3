package semchunk

import (
	lru "github.com/hashicorp/golang-lru/v2"
)

// sizeCacheCapacity bounds the SizerCache's backing LRU. Per §4.2 the
// distinct (offset, length) probes made during one chunk's binary search
// are bounded by the search depth, so a small fixed capacity amortizes the
// common case (repeated tokenizer calls against overlapping prefixes of the
// same base offset) without ever growing unbounded across a long input.
const sizeCacheCapacity = 256

// cacheKey identifies a candidate slice by its (start, length) pair, rather
// than storing the slice itself — this lets two different chunks that
// happen to probe the same span share a cache hit without hashing the
// input text itself.
type cacheKey struct {
	start, length int
}

// sizerCache memoizes (offset, length) -> size for the lifetime of one
// chunking call, per §4.2. It is not safe for concurrent use; each Cursor
// owns its own instance.
type sizerCache struct {
	sizer Sizer
	text  string
	cache *lru.Cache[cacheKey, int]
}

func newSizerCache(sizer Sizer, text string) *sizerCache {
	c, _ := lru.New[cacheKey, int](sizeCacheCapacity)
	return &sizerCache{sizer: sizer, text: text, cache: c}
}

// size returns the measured size of text[start:end], memoizing the result.
func (c *sizerCache) size(start, end int) int {
	key := cacheKey{start: start, length: end - start}
	if v, ok := c.cache.Get(key); ok {
		return v
	}
	v := c.sizer.Size(c.text[start:end])
	c.cache.Add(key, v)
	return v
}

// advancePast drops cached entries whose start lies strictly before edge.
// The engine calls this once it emits a chunk: those probes can never be
// reissued because the cursor only moves forward, so freeing them keeps the
// cache small without needing an LRU eviction to do it for us.
func (c *sizerCache) advancePast(edge int) {
	for _, key := range c.cache.Keys() {
		if key.start < edge {
			c.cache.Remove(key)
		}
	}
}
