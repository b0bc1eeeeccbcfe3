// Package semchunk splits text into contiguous chunks that fit a
// caller-specified capacity, preferring to break at the highest-ranked
// semantic boundary available (paragraph over sentence over word over
// grapheme over character, or the Markdown/code analogues a LevelProvider
// supplies), with optional overlap carried between consecutive chunks.
//
// A minimal setup pairs a Sizer with a LevelProvider:
//
//	engine, err := semchunk.New(
//		semchunk.WithCapacity(semchunk.NewCapacity(1500)),
//		semchunk.WithSizer(semchunk.CharacterSizer{}),
//		semchunk.WithProvider(plaintext.New()),
//	)
//	for chunk := range engine.Chunks(text) {
//		...
//	}
package semchunk

import "errors"

// Sentinel errors returned by New and NewCapacityBounds, checkable with
// errors.Is.
var (
	// ErrInvalidCapacity is returned when a Capacity's desired size exceeds
	// its max size.
	ErrInvalidCapacity = errors.New("desired capacity exceeds max capacity")

	// ErrInvalidOverlap is returned when the configured overlap is not
	// strictly smaller than the desired capacity, which would prevent the
	// cursor from ever making forward progress.
	ErrInvalidOverlap = errors.New("overlap must be smaller than desired capacity")

	// ErrNoSizer is returned when New is given no Sizer.
	ErrNoSizer = errors.New("sizer must be specified")

	// ErrNoProvider is returned when New is given no LevelProvider.
	ErrNoProvider = errors.New("provider must be specified")
)
