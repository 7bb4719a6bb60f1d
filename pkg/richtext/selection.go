package richtext

// Position is one live selection endpoint: a leaf span plus a rune offset
// into its markup form.
type Position struct {
	Node   *Span
	Offset int
}

// Selection is a cursor (Start == End) or a text range within a document.
type Selection struct {
	Start Position
	End   Position
}

// Collapsed reports whether the selection is a bare cursor.
func (s Selection) Collapsed() bool {
	return s.Start == s.End
}

// Snapshot is the serializable form of a selection: root-relative child-index
// paths plus intra-span offsets, decoupled from live node pointers so it can
// be stored per tab and replayed after the content is swapped out and back.
type Snapshot struct {
	StartPath   []int `json:"startPath"`
	StartOffset int   `json:"startOffset"`
	EndPath     []int `json:"endPath"`
	EndOffset   int   `json:"endOffset"`
}

// Serialize converts a live selection into a snapshot relative to doc.
// Reports false when either endpoint does not belong to doc.
func Serialize(sel Selection, doc *Document) (Snapshot, bool) {
	startPath, ok := pathTo(doc, sel.Start.Node)
	if !ok {
		return Snapshot{}, false
	}
	endPath, ok := pathTo(doc, sel.End.Node)
	if !ok {
		return Snapshot{}, false
	}
	return Snapshot{
		StartPath:   startPath,
		StartOffset: sel.Start.Offset,
		EndPath:     endPath,
		EndOffset:   sel.End.Offset,
	}, true
}

// Deserialize resolves a snapshot against the current document tree. It
// reports false when any path index is out of bounds at any depth or a path
// resolves to a non-leaf — the content may have changed shape since the
// snapshot was taken. Offsets are clamped to the resolved span's length
// rather than failing: a slightly wrong cursor beats a lost one.
func Deserialize(snap Snapshot, doc *Document) (Selection, bool) {
	start, ok := resolve(doc, snap.StartPath, snap.StartOffset)
	if !ok {
		return Selection{}, false
	}
	end, ok := resolve(doc, snap.EndPath, snap.EndOffset)
	if !ok {
		return Selection{}, false
	}
	return Selection{Start: start, End: end}, true
}

// pathTo walks the tree depth-first looking for target by pointer identity.
func pathTo(node Node, target *Span) ([]int, bool) {
	if span, ok := node.(*Span); ok {
		if span == target {
			return []int{}, true
		}
		return nil, false
	}
	for i := 0; i < node.ChildCount(); i++ {
		if sub, ok := pathTo(node.Child(i), target); ok {
			return append([]int{i}, sub...), true
		}
	}
	return nil, false
}

func resolve(doc *Document, path []int, offset int) (Position, bool) {
	var node Node = doc
	for _, idx := range path {
		if idx < 0 || idx >= node.ChildCount() {
			return Position{}, false
		}
		node = node.Child(idx)
	}
	span, ok := node.(*Span)
	if !ok {
		return Position{}, false
	}
	if offset < 0 {
		offset = 0
	}
	if max := span.Length(); offset > max {
		offset = max
	}
	return Position{Node: span, Offset: offset}, true
}

// CollapsedAtEnd returns a cursor at the very end of the document, the
// fallback position when a stored snapshot no longer resolves.
func CollapsedAtEnd(doc *Document) Selection {
	if len(doc.Blocks) == 0 {
		return Selection{}
	}
	block := doc.Blocks[len(doc.Blocks)-1]
	span := block.Spans[len(block.Spans)-1]
	pos := Position{Node: span, Offset: span.Length()}
	return Selection{Start: pos, End: pos}
}
