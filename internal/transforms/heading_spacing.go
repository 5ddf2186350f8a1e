package transforms

import (
	"bytes"
	"regexp"

	"git.home.luguber.info/inful/mdxtidy/internal/docmodel"
)

// headingGlued matches an H2 marker stuck to the end of a sentence.
var headingGlued = regexp.MustCompile(`([.!?])##\s+`)

// HeadingSpacing moves an H2 that directly follows sentence punctuation onto
// its own line: "Some sentence.## Heading" becomes
// "Some sentence.\n\n## Heading".
type HeadingSpacing struct{}

func (HeadingSpacing) Name() string { return NameHeadingSpacing }

func (HeadingSpacing) RequiresFrontmatter() bool { return false }

func (HeadingSpacing) Apply(doc *docmodel.Document) (Result, error) {
	src := doc.Bytes()
	out := FixHeadingSpacing(src)
	return Result{Content: out, Changed: !bytes.Equal(src, out)}, nil
}

// FixHeadingSpacing applies the heading spacing fix to content.
func FixHeadingSpacing(content []byte) []byte {
	return headingGlued.ReplaceAll(content, []byte("${1}\n\n## "))
}
