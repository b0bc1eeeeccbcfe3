package semchunk

// LevelProvider produces a Boundaries table for a given input: the ordered
// set of byte-offset sections at each semantic level, per §4.3. Concrete
// providers (plain text, Markdown, code) live in the providers/ subpackages
// so the core engine does not need to import their third-party
// dependencies directly.
//
// Construction-time failures (an unusable code grammar, an internally
// inconsistent parse) belong to the provider's own constructor, not to
// Analyze: per §7, only Engine construction fails — iteration never does,
// so Analyze itself must not error. A provider that cannot make sense of
// part of its input falls back to coarser-grained levels internally
// instead of failing.
type LevelProvider interface {
	Analyze(text string) *Boundaries
}
