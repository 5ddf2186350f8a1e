// Package intro replaces boilerplate blog intros with deterministic variants.
//
// A Generator composes a three-paragraph intro from fixed fragment tables;
// the slug alone decides which fragments are used, so regenerating a
// document always yields the same text. A Rewriter finds the intro span of a
// document and swaps it when it contains a trigger phrase.
package intro

import "strings"

// Meta is the document metadata an intro is generated from.
type Meta struct {
	Title       string
	Description string
	Slug        string
	Category    string
}

// Generator composes intros. The zero value uses the md5 selector.
type Generator struct {
	selector Selector
}

// NewGenerator returns a Generator using selector (md5 when nil).
func NewGenerator(selector Selector) *Generator {
	return &Generator{selector: selector}
}

// Selector returns the selector in use.
func (g *Generator) Selector() Selector {
	if g == nil || g.selector == nil {
		return MD5Selector{}
	}
	return g.selector
}

// Generate returns the intro for m: three trimmed paragraphs separated by
// blank lines, followed by a trailing blank line.
func (g *Generator) Generate(m Meta) string {
	choice := g.Selector().Select(m.Slug)

	local := ""
	if choice.Local >= 0 {
		local = localBits[choice.Local]
	}
	paragraphs := frames[choice.Frame].compose(m, hooks[choice.Hook], local)

	var b strings.Builder
	for i, p := range paragraphs {
		if i > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(strings.TrimSpace(p))
	}
	b.WriteString("\n\n")
	return b.String()
}
