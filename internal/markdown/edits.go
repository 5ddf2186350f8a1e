package markdown

import (
	"bytes"
	"fmt"
	"slices"
)

// Edit replaces source[Start:End] with Replacement. Offsets always refer to
// the unmodified source; Start == End is an insertion.
type Edit struct {
	Start       int
	End         int
	Replacement []byte
}

// ApplyEdits splices edits into source in a single forward pass.
// Edits may be given in any order but must not overlap. With no edits the
// source slice is returned as is.
func ApplyEdits(source []byte, edits []Edit) ([]byte, error) {
	if len(edits) == 0 {
		return source, nil
	}

	ordered := slices.Clone(edits)
	slices.SortStableFunc(ordered, func(a, b Edit) int {
		if a.Start != b.Start {
			return a.Start - b.Start
		}
		return a.End - b.End
	})

	size := len(source)
	cursor := 0
	for _, e := range ordered {
		switch {
		case e.Start < 0 || e.End < e.Start:
			return nil, fmt.Errorf("edit [%d,%d): invalid range", e.Start, e.End)
		case e.End > len(source):
			return nil, fmt.Errorf("edit [%d,%d): beyond end of source (%d bytes)", e.Start, e.End, len(source))
		case e.Start < cursor:
			return nil, fmt.Errorf("edit [%d,%d): overlaps previous edit ending at %d", e.Start, e.End, cursor)
		}
		cursor = e.End
		size += len(e.Replacement) - (e.End - e.Start)
	}

	var buf bytes.Buffer
	buf.Grow(size)
	cursor = 0
	for _, e := range ordered {
		buf.Write(source[cursor:e.Start])
		buf.Write(e.Replacement)
		cursor = e.End
	}
	buf.Write(source[cursor:])
	return buf.Bytes(), nil
}
