package semchunk

import "iter"

// Default configuration values, mirroring the teacher's DefaultMaxSize /
// DefaultOverlap constants.
const (
	// DefaultCapacity is used when no WithCapacity option is given.
	DefaultCapacity = 1500

	// DefaultOverlap is used when no WithOverlapSize option is given.
	DefaultOverlap = 0
)

// config holds the configuration for an Engine, assembled by New from a set
// of Options over newDefaultConfig's defaults — the same functional-options
// shape the teacher uses for Chunker (WithMaxSize, WithOverlap, WithLanguage).
type config struct {
	capacity Capacity
	overlap  int
	trim     bool
	sizer    Sizer
	provider LevelProvider
}

func newDefaultConfig() *config {
	return &config{
		capacity: NewCapacity(DefaultCapacity),
		overlap:  DefaultOverlap,
	}
}

// Option configures an Engine built by New.
type Option func(*config)

// WithCapacity sets the Capacity candidate chunk sizes are classified
// against. Defaults to NewCapacity(DefaultCapacity).
func WithCapacity(c Capacity) Option {
	return func(cfg *config) { cfg.capacity = c }
}

// WithOverlapSize sets the maximum size, in Sizer units, of content shared
// between adjacent chunks. Must be strictly less than the configured
// Capacity's desired size, checked at New time. Defaults to DefaultOverlap
// (no overlap).
func WithOverlapSize(n int) Option {
	return func(cfg *config) { cfg.overlap = n }
}

// WithTrim enables or disables whitespace stripping of emitted chunk text,
// per §4.6. Defaults to disabled.
func WithTrim(trim bool) Option {
	return func(cfg *config) { cfg.trim = trim }
}

// WithSizer sets the Sizer used to measure candidate chunk sizes. Required:
// New fails with ErrNoSizer if no Sizer is configured.
func WithSizer(s Sizer) Option {
	return func(cfg *config) { cfg.sizer = s }
}

// WithProvider sets the LevelProvider used to find semantic boundaries.
// Required: New fails with ErrNoProvider if no Provider is configured.
func WithProvider(p LevelProvider) Option {
	return func(cfg *config) { cfg.provider = p }
}

// Engine is the semantic chunking engine: given its Options, it splits any
// input text into a lazy sequence of chunks whose size fits Capacity,
// preferring the coarsest semantic boundary available at each step.
//
// An Engine is safe to reuse for many chunking calls — and, so long as its
// Sizer and Provider are themselves safe for concurrent use, safe to share
// across goroutines chunking disjoint inputs. Each call to Chunks,
// ChunkByteIndices or ChunkCharIndices owns its own Cursor and therefore its
// own SizerCache.
type Engine struct {
	capacity Capacity
	overlap  int
	trim     bool
	sizer    Sizer
	provider LevelProvider
}

// New constructs an Engine from a set of Options, failing with
// ErrInvalidCapacity, ErrInvalidOverlap, ErrNoSizer, or ErrNoProvider. It
// never fails once constructed.
func New(opts ...Option) (*Engine, error) {
	cfg := newDefaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.sizer == nil {
		return nil, ErrNoSizer
	}
	if cfg.provider == nil {
		return nil, ErrNoProvider
	}
	if cfg.capacity.desired > cfg.capacity.max {
		return nil, ErrInvalidCapacity
	}
	if cfg.overlap >= cfg.capacity.desired {
		return nil, ErrInvalidOverlap
	}

	return &Engine{
		capacity: cfg.capacity,
		overlap:  cfg.overlap,
		trim:     cfg.trim,
		sizer:    cfg.sizer,
		provider: cfg.provider,
	}, nil
}

// Chunk is one emitted record: its byte offset into the original input, its
// character offset (number of Unicode scalar values preceding it — only
// populated by ChunkCharIndices), and its text.
type Chunk struct {
	ByteOffset int
	CharOffset int
	Text       string
}

// Chunks returns a lazy sequence of chunk text, discarding offsets.
func (e *Engine) Chunks(text string) iter.Seq[string] {
	return func(yield func(string) bool) {
		c := newCursor(e, text)
		for {
			chunk, ok := c.next()
			if !ok {
				return
			}
			if !yield(chunk.Text) {
				return
			}
		}
	}
}

// ChunkByteIndices returns a lazy sequence of (byte offset, text) pairs.
func (e *Engine) ChunkByteIndices(text string) iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		c := newCursor(e, text)
		for {
			chunk, ok := c.next()
			if !ok {
				return
			}
			if !yield(chunk.ByteOffset, chunk.Text) {
				return
			}
		}
	}
}

// ChunkCharIndices returns a lazy sequence of Chunk records carrying both
// the byte offset and the character offset.
func (e *Engine) ChunkCharIndices(text string) iter.Seq[Chunk] {
	return func(yield func(Chunk) bool) {
		c := newCursor(e, text)
		c.trackChars = true
		for {
			chunk, ok := c.next()
			if !ok {
				return
			}
			if !yield(chunk) {
				return
			}
		}
	}
}
