package markdown

import (
	"bytes"

	"github.com/yuin/goldmark"
	gmast "github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// Heading is an ATX heading located in a Markdown body.
//
// LineStart is the offset of the `#` that opens the heading line and LineEnd
// the offset of its line terminator (or len(body) on the last line).
type Heading struct {
	Level     int
	Text      string
	LineStart int
	LineEnd   int
}

// ParseBody parses a Markdown body (frontmatter already removed) into a Goldmark AST.
func ParseBody(body []byte) gmast.Node {
	md := goldmark.New()
	return md.Parser().Parse(text.NewReader(body))
}

// Headings returns the ATX headings of body in document order.
//
// Only headings whose line starts with `#` in the first column are reported;
// setext headings, indented headings and headings nested in block quotes or
// list items are skipped, and so is anything inside fenced code.
func Headings(body []byte) []Heading {
	root := ParseBody(body)

	headings := make([]Heading, 0)
	_ = gmast.Walk(root, func(n gmast.Node, entering bool) (gmast.WalkStatus, error) {
		if !entering {
			return gmast.WalkContinue, nil
		}
		h, ok := n.(*gmast.Heading)
		if !ok {
			return gmast.WalkContinue, nil
		}
		if h.Lines().Len() == 0 {
			return gmast.WalkSkipChildren, nil
		}

		seg := h.Lines().At(0)
		lineStart := bytes.LastIndexByte(body[:seg.Start], '\n') + 1
		if body[lineStart] != '#' {
			return gmast.WalkSkipChildren, nil
		}
		lineEnd := len(body)
		if nl := bytes.IndexByte(body[seg.Start:], '\n'); nl >= 0 {
			lineEnd = seg.Start + nl
		}

		headings = append(headings, Heading{
			Level:     h.Level,
			Text:      string(bytes.TrimSpace(seg.Value(body))),
			LineStart: lineStart,
			LineEnd:   lineEnd,
		})
		return gmast.WalkSkipChildren, nil
	})

	return headings
}

// FirstHeading returns the first heading of the given level starting at or
// after offset from.
func FirstHeading(headings []Heading, level, from int) (Heading, bool) {
	for _, h := range headings {
		if h.Level == level && h.LineStart >= from {
			return h, true
		}
	}
	return Heading{}, false
}
