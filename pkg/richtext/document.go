// Package richtext models notepad content as a tree of blocks and inline
// spans, and provides a selection codec that survives the editing surface
// being torn down and rebuilt: cursor endpoints are serialized as
// child-index paths from the document root plus intra-span rune offsets,
// then replayed against whatever tree the markup parses to later.
package richtext

import (
	"fmt"
	"regexp"
	"strings"
)

// SpanKind discriminates inline span types.
type SpanKind int

const (
	// SpanText is a plain text run.
	SpanText SpanKind = iota
	// SpanLink is a clickable reference written as [label](url) in markup.
	SpanLink
)

// Span is a leaf inline run within a block.
type Span struct {
	Kind SpanKind
	Text string
	URL  string
}

// Block is one line of the document, holding one or more spans.
type Block struct {
	Spans []*Span
}

// Document is a parsed notepad page.
type Document struct {
	Blocks []*Block
}

// Node is the generic tree view used by the selection codec. Containers
// report children; leaves report their markup rune length.
type Node interface {
	ChildCount() int
	Child(i int) Node
	Length() int
}

// ChildCount implements Node.
func (d *Document) ChildCount() int { return len(d.Blocks) }

// Child implements Node.
func (d *Document) Child(i int) Node { return d.Blocks[i] }

// Length implements Node; containers carry no text of their own.
func (d *Document) Length() int { return 0 }

// ChildCount implements Node.
func (b *Block) ChildCount() int { return len(b.Spans) }

// Child implements Node.
func (b *Block) Child(i int) Node { return b.Spans[i] }

// Length implements Node.
func (b *Block) Length() int { return 0 }

// ChildCount implements Node.
func (s *Span) ChildCount() int { return 0 }

// Child implements Node.
func (s *Span) Child(i int) Node { panic("richtext: span has no children") }

// Length implements Node: the rune length of the span's markup form, which
// is the coordinate space the editor works in.
func (s *Span) Length() int { return len([]rune(s.Markup())) }

// Markup renders the span back to its markup form.
func (s *Span) Markup() string {
	if s.Kind == SpanLink {
		return fmt.Sprintf("[%s](%s)", s.Text, s.URL)
	}
	return s.Text
}

var linkPattern = regexp.MustCompile(`\[([^\]\n]*)\]\(([^)\n]+)\)`)

// Parse converts markup into a document. Parsing never fails: anything that
// is not a well-formed link is kept as plain text. Every line becomes a
// block, and every block holds at least one span so cursor paths always have
// a leaf to land on.
func Parse(markup string) *Document {
	lines := strings.Split(markup, "\n")
	doc := &Document{Blocks: make([]*Block, 0, len(lines))}
	for _, line := range lines {
		doc.Blocks = append(doc.Blocks, parseLine(line))
	}
	return doc
}

func parseLine(line string) *Block {
	block := &Block{}
	matches := linkPattern.FindAllStringSubmatchIndex(line, -1)
	last := 0
	for _, m := range matches {
		if m[0] > last {
			block.Spans = append(block.Spans, &Span{Kind: SpanText, Text: line[last:m[0]]})
		}
		block.Spans = append(block.Spans, &Span{
			Kind: SpanLink,
			Text: line[m[2]:m[3]],
			URL:  line[m[4]:m[5]],
		})
		last = m[1]
	}
	if last < len(line) || len(block.Spans) == 0 {
		block.Spans = append(block.Spans, &Span{Kind: SpanText, Text: line[last:]})
	}
	return block
}

// Markup renders the document back to its markup form. Parse and Markup
// round-trip.
func (d *Document) Markup() string {
	var b strings.Builder
	for i, block := range d.Blocks {
		if i > 0 {
			b.WriteByte('\n')
		}
		for _, span := range block.Spans {
			b.WriteString(span.Markup())
		}
	}
	return b.String()
}

// Links returns every link URL in document order. Display numbering follows
// this order, so inserting a link renumbers everything after it.
func (d *Document) Links() []string {
	var urls []string
	for _, block := range d.Blocks {
		for _, span := range block.Spans {
			if span.Kind == SpanLink {
				urls = append(urls, span.URL)
			}
		}
	}
	return urls
}

// RenderText renders the document for display: links collapse to their label
// followed by a bracketed reference number.
func (d *Document) RenderText() string {
	var b strings.Builder
	n := 0
	for i, block := range d.Blocks {
		if i > 0 {
			b.WriteByte('\n')
		}
		for _, span := range block.Spans {
			if span.Kind == SpanLink {
				n++
				fmt.Fprintf(&b, "%s[%d]", span.Text, n)
				continue
			}
			b.WriteString(span.Text)
		}
	}
	return b.String()
}
