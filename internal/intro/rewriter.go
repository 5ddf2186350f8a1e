package intro

import (
	"regexp"

	"git.home.luguber.info/inful/mdxtidy/internal/docmodel"
	"git.home.luguber.info/inful/mdxtidy/internal/markdown"
)

// Outcome describes what Rewrite did with a document.
type Outcome string

const (
	OutcomeRewritten     Outcome = "rewritten"
	OutcomeNoFrontmatter Outcome = "no_frontmatter"
	OutcomeNoHeading     Outcome = "no_heading"
	OutcomeNoSection     Outcome = "no_section"
	OutcomeNoTrigger     Outcome = "no_trigger"
)

// leadingGap matches the run of blank lines right after the H1 line.
var leadingGap = regexp.MustCompile(`\A(?:[ \t\r\f\v]*\n)+`)

const defaultGap = "\n\n"

// Rewriter replaces boilerplate intros in documents.
type Rewriter struct {
	gen *Generator
}

// NewRewriter returns a Rewriter backed by gen (md5 selector when nil).
func NewRewriter(gen *Generator) *Rewriter {
	if gen == nil {
		gen = NewGenerator(nil)
	}
	return &Rewriter{gen: gen}
}

// Rewrite returns the document content with its intro replaced.
//
// The intro span runs from the end of the first H1 line to the first H2 line
// after it. It is replaced only when it contains a trigger phrase; otherwise
// the original bytes are returned with the reason in Outcome. Everything up
// to the end of the H1 line and from the H2 onward is left as is, and the
// blank lines after the H1 are kept (a single blank line when there are none).
func (r *Rewriter) Rewrite(doc *docmodel.Document) ([]byte, Outcome, error) {
	if !doc.HadFrontmatter() {
		return doc.Bytes(), OutcomeNoFrontmatter, nil
	}

	body := doc.Body()
	headings := markdown.Headings(body)

	h1, ok := markdown.FirstHeading(headings, 1, 0)
	if !ok {
		return doc.Bytes(), OutcomeNoHeading, nil
	}
	h2, ok := markdown.FirstHeading(headings, 2, h1.LineEnd)
	if !ok {
		return doc.Bytes(), OutcomeNoSection, nil
	}

	if !ContainsTrigger(string(body[h1.LineEnd:h2.LineStart])) {
		return doc.Bytes(), OutcomeNoTrigger, nil
	}

	fields := doc.Fields()
	title := fields.Value("title")
	if _, has := fields.Get("title"); !has {
		title = h1.Text
	}
	meta := Meta{
		Title:       title,
		Description: fields.Value("description"),
		Slug:        doc.Slug(),
		Category:    fields.Value("category"),
	}

	gap := defaultGap
	if m := leadingGap.Find(body[h1.LineEnd:h2.LineStart]); m != nil {
		gap = string(m)
	}

	out, err := doc.ApplyBodyEdits([]markdown.Edit{{
		Start:       h1.LineEnd,
		End:         h2.LineStart,
		Replacement: []byte(gap + r.gen.Generate(meta)),
	}})
	if err != nil {
		return nil, "", err
	}
	return out, OutcomeRewritten, nil
}
