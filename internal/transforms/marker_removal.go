package transforms

import (
	"bytes"
	"regexp"
	"strconv"

	"git.home.luguber.info/inful/mdxtidy/internal/docmodel"
	"git.home.luguber.info/inful/mdxtidy/internal/markdown"
)

// markerPattern matches an "(Eslatma: N)" annotation with the whitespace
// around it.
var markerPattern = regexp.MustCompile(`(\s*)\(Eslatma:\s*\d+\)(\s*)`)

// MarkerRemoval deletes "(Eslatma: N)" annotations.
type MarkerRemoval struct{}

func (MarkerRemoval) Name() string { return NameMarkerRemoval }

func (MarkerRemoval) RequiresFrontmatter() bool { return false }

func (MarkerRemoval) Apply(doc *docmodel.Document) (Result, error) {
	src := doc.Bytes()
	out, removed, err := RemoveMarkers(src)
	if err != nil {
		return Result{}, err
	}
	res := Result{Content: out, Changed: removed > 0}
	if removed > 0 {
		res.Detail = "removed " + strconv.Itoa(removed) + " markers"
	}
	return res, nil
}

// markerSpan is a run of one or more adjacent marker matches. ws holds the
// whitespace pieces of the run in order: leading, between markers, trailing.
type markerSpan struct {
	start, end int
	ws         [][]byte
}

// RemoveMarkers deletes every marker from content and returns the number of
// markers removed.
//
// Adjacent markers are handled as one span. A span at the very start of the
// content is dropped together with its whitespace. Elsewhere the whitespace
// piece with the most newlines (the later one on ties) is kept so paragraph
// and line breaks survive; when the span has no newline it becomes a single
// space, or nothing at the very end of the content.
func RemoveMarkers(content []byte) ([]byte, int, error) {
	matches := markerPattern.FindAllSubmatchIndex(content, -1)
	if len(matches) == 0 {
		return content, 0, nil
	}

	spans := make([]markerSpan, 0, len(matches))
	for _, m := range matches {
		lead := content[m[2]:m[3]]
		trail := content[m[4]:m[5]]
		if n := len(spans); n > 0 && spans[n-1].end == m[0] {
			last := &spans[n-1]
			last.end = m[1]
			last.ws = append(last.ws, lead, trail)
			continue
		}
		spans = append(spans, markerSpan{start: m[0], end: m[1], ws: [][]byte{lead, trail}})
	}

	edits := make([]markdown.Edit, 0, len(spans))
	for _, s := range spans {
		edits = append(edits, markdown.Edit{
			Start:       s.start,
			End:         s.end,
			Replacement: s.replacement(len(content)),
		})
	}

	out, err := markdown.ApplyEdits(content, edits)
	if err != nil {
		return nil, 0, err
	}
	return out, len(matches), nil
}

func (s markerSpan) replacement(contentLen int) []byte {
	if s.start == 0 {
		return nil
	}

	var keep []byte
	most := 0
	for _, piece := range s.ws {
		if n := bytes.Count(piece, []byte("\n")); n > 0 && n >= most {
			keep, most = piece, n
		}
	}
	if keep != nil {
		return append([]byte(nil), keep...)
	}
	if s.end == contentLen {
		return nil
	}
	return []byte(" ")
}
