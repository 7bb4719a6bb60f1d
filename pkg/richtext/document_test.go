package richtext

import (
	"reflect"
	"testing"
)

func TestParseMarkupRoundTrip(t *testing.T) {
	cases := []string{
		"",
		"plain line",
		"two\nlines",
		"a [link](https://example.com) inline",
		"[lead](https://a.example) then [tail](https://b.example)",
		"broken [link](no-close\nnext line",
		"trailing newline\n",
	}
	for _, markup := range cases {
		doc := Parse(markup)
		if got := doc.Markup(); got != markup {
			t.Fatalf("round trip %q -> %q", markup, got)
		}
	}
}

func TestParseSplitsSpans(t *testing.T) {
	doc := Parse("see [docs](https://example.com/docs) today")
	if len(doc.Blocks) != 1 {
		t.Fatalf("expected 1 block, got %d", len(doc.Blocks))
	}
	spans := doc.Blocks[0].Spans
	if len(spans) != 3 {
		t.Fatalf("expected 3 spans, got %d", len(spans))
	}
	if spans[0].Kind != SpanText || spans[0].Text != "see " {
		t.Fatalf("unexpected lead span: %+v", spans[0])
	}
	if spans[1].Kind != SpanLink || spans[1].Text != "docs" || spans[1].URL != "https://example.com/docs" {
		t.Fatalf("unexpected link span: %+v", spans[1])
	}
	if spans[2].Kind != SpanText || spans[2].Text != " today" {
		t.Fatalf("unexpected tail span: %+v", spans[2])
	}
}

func TestEveryBlockHasALeaf(t *testing.T) {
	doc := Parse("top\n\nbottom")
	if len(doc.Blocks) != 3 {
		t.Fatalf("expected 3 blocks, got %d", len(doc.Blocks))
	}
	for i, block := range doc.Blocks {
		if len(block.Spans) == 0 {
			t.Fatalf("block %d has no spans", i)
		}
	}
}

func TestLinksAndRenderNumbering(t *testing.T) {
	doc := Parse("[one](https://1.example)\nmid [two](https://2.example) end")
	want := []string{"https://1.example", "https://2.example"}
	if got := doc.Links(); !reflect.DeepEqual(got, want) {
		t.Fatalf("links = %v, want %v", got, want)
	}
	rendered := doc.RenderText()
	if rendered != "one[1]\nmid two[2] end" {
		t.Fatalf("unexpected render: %q", rendered)
	}
}
