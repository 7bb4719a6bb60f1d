package richtext

// The editor works in a flat coordinate space: rune offsets into the markup
// string, where each block boundary costs one newline rune. These helpers
// bridge that space and the tree positions the selection codec stores.

// PositionAt maps a flat markup rune offset to a tree position. Offsets past
// the end of the document clamp to the final span's end; offsets landing on a
// block boundary map to the end of the preceding block's last span.
func (d *Document) PositionAt(offset int) Position {
	if offset < 0 {
		offset = 0
	}
	acc := 0
	for i, block := range d.Blocks {
		blockLen := 0
		for _, span := range block.Spans {
			blockLen += span.Length()
		}
		if offset <= acc+blockLen {
			within := offset - acc
			for _, span := range block.Spans {
				if within <= span.Length() {
					return Position{Node: span, Offset: within}
				}
				within -= span.Length()
			}
		}
		acc += blockLen
		if i < len(d.Blocks)-1 {
			acc++ // newline
		}
	}
	return CollapsedAtEnd(d).Start
}

// OffsetOf maps a tree position back to a flat markup rune offset. Reports
// false when the position's span is not part of this document.
func (d *Document) OffsetOf(pos Position) (int, bool) {
	acc := 0
	for i, block := range d.Blocks {
		for _, span := range block.Spans {
			if span == pos.Node {
				within := pos.Offset
				if within < 0 {
					within = 0
				}
				if within > span.Length() {
					within = span.Length()
				}
				return acc + within, true
			}
			acc += span.Length()
		}
		if i < len(d.Blocks)-1 {
			acc++
		}
	}
	return 0, false
}

// SnapshotAtOffset is the serialize path used by the editor: it converts a
// flat cursor offset straight into a storable snapshot.
func (d *Document) SnapshotAtOffset(offset int) (Snapshot, bool) {
	pos := d.PositionAt(offset)
	return Serialize(Selection{Start: pos, End: pos}, d)
}

// OffsetForSnapshot is the deserialize path used by the editor: it resolves a
// stored snapshot back to a flat cursor offset against the current tree.
// Reports false when the snapshot no longer resolves.
func (d *Document) OffsetForSnapshot(snap Snapshot) (int, bool) {
	sel, ok := Deserialize(snap, d)
	if !ok {
		return 0, false
	}
	return d.OffsetOf(sel.Start)
}
