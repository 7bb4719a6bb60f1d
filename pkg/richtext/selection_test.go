package richtext

import (
	"testing"
)

func TestSerializeDeserializeRoundTrip(t *testing.T) {
	doc := Parse("first [link](https://example.com) line\nsecond line")
	link := doc.Blocks[0].Spans[1]
	tail := doc.Blocks[1].Spans[0]

	sel := Selection{
		Start: Position{Node: link, Offset: 2},
		End:   Position{Node: tail, Offset: 6},
	}
	snap, ok := Serialize(sel, doc)
	if !ok {
		t.Fatal("serialize failed for in-tree selection")
	}

	got, ok := Deserialize(snap, doc)
	if !ok {
		t.Fatal("deserialize failed against unchanged tree")
	}
	if got != sel {
		t.Fatalf("round trip mismatch: %+v vs %+v", got, sel)
	}
}

func TestSerializeRejectsForeignNode(t *testing.T) {
	doc := Parse("content")
	other := Parse("elsewhere")
	stray := other.Blocks[0].Spans[0]

	_, ok := Serialize(Selection{
		Start: Position{Node: stray, Offset: 0},
		End:   Position{Node: stray, Offset: 0},
	}, doc)
	if ok {
		t.Fatal("expected serialize to fail for a node outside the root")
	}
}

func TestDeserializeOutOfRangeIndexFails(t *testing.T) {
	doc := Parse("only line")
	snap := Snapshot{
		StartPath: []int{5, 0},
		EndPath:   []int{5, 0},
	}
	if _, ok := Deserialize(snap, doc); ok {
		t.Fatal("expected out-of-range block index to fail")
	}

	snap = Snapshot{
		StartPath: []int{0, 7},
		EndPath:   []int{0, 7},
	}
	if _, ok := Deserialize(snap, doc); ok {
		t.Fatal("expected out-of-range span index to fail")
	}
}

func TestDeserializeShortPathFails(t *testing.T) {
	doc := Parse("only line")
	snap := Snapshot{
		StartPath: []int{0}, // resolves to a block, not a leaf
		EndPath:   []int{0},
	}
	if _, ok := Deserialize(snap, doc); ok {
		t.Fatal("expected non-leaf path to fail")
	}
}

func TestDeserializeClampsOffsets(t *testing.T) {
	doc := Parse("ab")
	snap := Snapshot{
		StartPath:   []int{0, 0},
		StartOffset: 99,
		EndPath:     []int{0, 0},
		EndOffset:   -3,
	}
	sel, ok := Deserialize(snap, doc)
	if !ok {
		t.Fatal("expected clamped resolution to succeed")
	}
	if sel.Start.Offset != 2 {
		t.Fatalf("start offset = %d, want clamped 2", sel.Start.Offset)
	}
	if sel.End.Offset != 0 {
		t.Fatalf("end offset = %d, want clamped 0", sel.End.Offset)
	}
}

// The snapshot survives a content reparse even when link renumbering changes
// the rendered text, as long as the tree shape is intact.
func TestSnapshotSurvivesReparse(t *testing.T) {
	markup := "see [a](https://a.example) and [b](https://b.example)"
	doc := Parse(markup)
	span := doc.Blocks[0].Spans[3] // link b
	snap, ok := Serialize(Selection{
		Start: Position{Node: span, Offset: 1},
		End:   Position{Node: span, Offset: 1},
	}, doc)
	if !ok {
		t.Fatal("serialize failed")
	}

	fresh := Parse(markup)
	sel, ok := Deserialize(snap, fresh)
	if !ok {
		t.Fatal("deserialize failed after reparse")
	}
	if sel.Start.Node != fresh.Blocks[0].Spans[3] {
		t.Fatal("snapshot resolved to the wrong span after reparse")
	}
}

func TestFlatOffsetBridge(t *testing.T) {
	doc := Parse("alpha\nbeta [x](https://x.example)")

	for _, offset := range []int{0, 3, 5, 6, 9, 11} {
		pos := doc.PositionAt(offset)
		back, ok := doc.OffsetOf(pos)
		if !ok {
			t.Fatalf("offset %d: position not found in tree", offset)
		}
		if back != offset {
			t.Fatalf("offset %d mapped back to %d", offset, back)
		}
	}
}

func TestFlatOffsetClampsPastEnd(t *testing.T) {
	doc := Parse("short")
	pos := doc.PositionAt(1000)
	back, ok := doc.OffsetOf(pos)
	if !ok {
		t.Fatal("clamped position not found in tree")
	}
	if back != 5 {
		t.Fatalf("expected clamp to end offset 5, got %d", back)
	}
}

func TestSnapshotOffsetBridge(t *testing.T) {
	markup := "todo [list](https://l.example)\nsecond"
	doc := Parse(markup)

	snap, ok := doc.SnapshotAtOffset(8)
	if !ok {
		t.Fatal("snapshot at offset failed")
	}

	// Simulate tab switch: tear down, reparse, restore.
	fresh := Parse(markup)
	offset, ok := fresh.OffsetForSnapshot(snap)
	if !ok {
		t.Fatal("offset for snapshot failed")
	}
	if offset != 8 {
		t.Fatalf("cursor restored at %d, want 8", offset)
	}
}

func TestOffsetForSnapshotAfterShapeChange(t *testing.T) {
	doc := Parse("one\ntwo\nthree")
	snap, ok := doc.SnapshotAtOffset(10)
	if !ok {
		t.Fatal("snapshot failed")
	}

	shrunk := Parse("one")
	if _, ok := shrunk.OffsetForSnapshot(snap); ok {
		t.Fatal("expected failure when the block vanished")
	}
	// Caller falls back to a collapsed cursor at the end.
	sel := CollapsedAtEnd(shrunk)
	if end, ok := shrunk.OffsetOf(sel.Start); !ok || end != 3 {
		t.Fatalf("fallback cursor = %d, %v; want 3, true", end, ok)
	}
}
