package docmodel

import (
	stdErrors "errors"
	"os"
	"path/filepath"
	"strings"

	"git.home.luguber.info/inful/mdxtidy/internal/errors"
	"git.home.luguber.info/inful/mdxtidy/internal/frontmatter"
	"git.home.luguber.info/inful/mdxtidy/internal/markdown"
)

// Document is an MDX file split into its frontmatter block and body.
//
// The split is byte-exact: Bytes reproduces the original content until a
// transform replaces the body.
type Document struct {
	path     string
	slug     string
	original []byte
	fmRaw    []byte
	fields   *frontmatter.Fields
	body     []byte
	hadFM    bool
	style    frontmatter.Style
}

// Parse splits content into a Document. path may be empty; the slug is the
// stem of path.
//
// A document whose frontmatter is never closed is treated as having no
// frontmatter at all.
func Parse(path string, content []byte) *Document {
	fmRaw, body, had, style, err := frontmatter.Split(content)
	if stdErrors.Is(err, frontmatter.ErrMissingClosingDelimiter) {
		fmRaw, body, had = nil, content, false
	}

	doc := &Document{
		path:     path,
		slug:     SlugFromPath(path),
		original: append([]byte(nil), content...),
		body:     append([]byte(nil), body...),
		hadFM:    had,
		style:    style,
	}
	if had {
		doc.fmRaw = append([]byte{}, fmRaw...)
		doc.fields = frontmatter.ParseFields(fmRaw)
	} else {
		doc.fields = frontmatter.NewFields()
	}
	return doc
}

// ParseFile reads a file from disk and parses it into a Document.
func ParseFile(path string) (*Document, error) {
	// #nosec G304 -- path comes from the content directory listing.
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.FileError("read", path, err)
	}
	return Parse(path, content), nil
}

// SlugFromPath returns the filename stem of path.
func SlugFromPath(path string) string {
	base := filepath.Base(path)
	if path == "" || base == "." {
		return ""
	}
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// Path returns the path the document was read from.
func (d *Document) Path() string { return d.path }

// Slug returns the document's filename stem.
func (d *Document) Slug() string { return d.slug }

// Original returns a copy of the original bytes.
func (d *Document) Original() []byte {
	return append([]byte(nil), d.original...)
}

// HadFrontmatter reports whether the document contained a frontmatter block.
func (d *Document) HadFrontmatter() bool {
	return d.hadFM
}

// FrontmatterRaw returns the raw frontmatter bytes (without delimiters), or
// nil when the document has none.
func (d *Document) FrontmatterRaw() []byte {
	if !d.hadFM {
		return nil
	}
	return append([]byte{}, d.fmRaw...)
}

// Fields returns the parsed frontmatter fields. It is empty, never nil, for
// documents without frontmatter.
func (d *Document) Fields() *frontmatter.Fields {
	return d.fields
}

// Body returns the body bytes (frontmatter removed).
func (d *Document) Body() []byte {
	return append([]byte(nil), d.body...)
}

// Style returns the formatting style captured when splitting.
func (d *Document) Style() frontmatter.Style {
	return d.style
}

// Bytes re-joins frontmatter and body into full document bytes.
func (d *Document) Bytes() []byte {
	return frontmatter.Join(d.fmRaw, d.body, d.hadFM, d.style)
}

// WithContent returns a new Document for content at the same path.
func (d *Document) WithContent(content []byte) *Document {
	return Parse(d.path, content)
}

// ApplyBodyEdits applies byte-range edits to the body and returns the full,
// re-joined document bytes. Frontmatter bytes are preserved exactly.
func (d *Document) ApplyBodyEdits(edits []markdown.Edit) ([]byte, error) {
	updated, err := markdown.ApplyEdits(d.body, edits)
	if err != nil {
		return nil, errors.Wrap(err, errors.CategoryParse, errors.SeverityError, "failed to apply body edits").
			WithContext("path", d.path)
	}
	out := frontmatter.Join(d.fmRaw, updated, d.hadFM, d.style)
	return append([]byte(nil), out...), nil
}
