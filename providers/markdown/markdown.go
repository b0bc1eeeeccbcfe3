// Package markdown implements semchunk.LevelProvider over a CommonMark (plus
// GFM extensions) parse, per spec §4.3(b): headings > thematic breaks >
// block containers > block leaves > inline elements > soft line breaks,
// bottoming out in the same Unicode sentence/word/grapheme/character levels
// the plain-text provider uses.
package markdown

import (
	"github.com/gomantics/semchunk"
	"github.com/gomantics/semchunk/providers/plaintext"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	extast "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
)

// Provider is the Markdown LevelProvider.
type Provider struct {
	md goldmark.Markdown
}

// New creates a Markdown Provider configured with the common GFM
// extensions: tables, task lists, strikethrough, and footnotes.
func New() *Provider {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			extension.Table,
			extension.Strikethrough,
			extension.TaskList,
			extension.Footnote,
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
	)
	return &Provider{md: md}
}

// PreserveIndent implements semchunk.IndentPreserving: Markdown chunks that
// span multiple lines must keep interior indentation so rendered list
// items and block quotes stay parseable after trimming.
func (p *Provider) PreserveIndent() bool { return true }

// category buckets collect AST node spans by the semantic rank they
// belong to, finest (closest to inline text) first.
type category int

const (
	catSoftBreak category = iota
	catInline
	catBlockLeaf
	catBlockContainer
	catThematicBreak
	catHeading // one sub-level per heading depth is derived separately
)

// Analyze implements semchunk.LevelProvider.
func (p *Provider) Analyze(input string) *semchunk.Boundaries {
	source := []byte(input)
	reader := text.NewReader(source)
	doc := p.md.Parser().Parse(reader)

	buckets := map[category][]int{}
	headingsByDepth := map[int][]int{} // 1 (H1, coarsest) .. 6 (H6, finest)

	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering || n == doc {
			return ast.WalkContinue, nil
		}

		if heading, ok := n.(*ast.Heading); ok {
			if start, end, ok := nodeRange(n, source); ok {
				headingsByDepth[heading.Level] = append(headingsByDepth[heading.Level], start, end)
			}
			return ast.WalkContinue, nil
		}

		if cat, ok := classify(n); ok {
			if start, end, ok := nodeRange(n, source); ok {
				buckets[cat] = append(buckets[cat], start, end)
			}
		}

		if textNode, ok := n.(*ast.Text); ok && textNode.SoftLineBreak() {
			buckets[catSoftBreak] = append(buckets[catSoftBreak], textNode.Segment.Stop)
		}

		return ast.WalkContinue, nil
	})

	b := semchunk.NewBuilder(len(source))
	b.AddFinestLevel(plaintext.CharacterBoundaries(input))
	b.AddLevel(plaintext.GraphemeBoundaries(input))
	b.AddLevel(plaintext.WordBoundaries(input))
	b.AddLevel(plaintext.SentenceBoundaries(input))
	b.AddLevel(buckets[catSoftBreak])
	b.AddLevel(buckets[catInline])
	b.AddLevel(buckets[catBlockLeaf])
	b.AddLevel(buckets[catBlockContainer])
	b.AddLevel(buckets[catThematicBreak])

	for depth := 6; depth >= 1; depth-- {
		b.AddLevel(headingsByDepth[depth])
	}

	return b.Build()
}

// classify maps an AST node to the semantic rank it contributes a boundary
// to. Headings are handled separately by the caller (they get one level per
// depth, not one shared level).
func classify(n ast.Node) (category, bool) {
	switch n.Kind() {
	case ast.KindThematicBreak:
		return catThematicBreak, true
	case ast.KindList, ast.KindListItem, ast.KindBlockquote, extast.KindTable:
		return catBlockContainer, true
	case ast.KindParagraph, ast.KindCodeBlock, ast.KindFencedCodeBlock, ast.KindHTMLBlock,
		extast.KindFootnote:
		return catBlockLeaf, true
	case ast.KindEmphasis, ast.KindLink, ast.KindImage, ast.KindAutoLink,
		ast.KindCodeSpan, ast.KindRawHTML, ast.KindText, ast.KindString,
		extast.KindStrikethrough, extast.KindTableCell, extast.KindTaskCheckBox,
		extast.KindFootnoteLink:
		return catInline, true
	default:
		return 0, false
	}
}

type linesNode interface {
	Lines() *text.Segments
}

// nodeRange returns the byte span a node covers. Leaf block nodes expose it
// through Lines(); an ast.Text leaf exposes it through its own Segment;
// everything else (containers) is derived from its first and last child.
func nodeRange(n ast.Node, source []byte) (start, end int, ok bool) {
	if ln, isLines := n.(linesNode); isLines && n.Type() == ast.TypeBlock {
		lines := ln.Lines()
		if lines.Len() > 0 {
			return lines.At(0).Start, lines.At(lines.Len() - 1).Stop, true
		}
	}
	if t, isText := n.(*ast.Text); isText {
		return t.Segment.Start, t.Segment.Stop, true
	}
	if n.HasChildren() {
		first := n.FirstChild()
		last := n.LastChild()
		fs, _, fok := nodeRange(first, source)
		_, le, lok := nodeRange(last, source)
		if fok && lok {
			return fs, le, true
		}
	}
	return 0, 0, false
}
