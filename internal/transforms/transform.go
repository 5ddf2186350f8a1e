// Package transforms holds the content rewrites mdxtidy can apply to a
// document and the pipeline that runs them in a fixed order.
package transforms

import (
	"fmt"
	"slices"
	"strings"

	"git.home.luguber.info/inful/mdxtidy/internal/docmodel"
	"git.home.luguber.info/inful/mdxtidy/internal/intro"
)

// Transform names, in pipeline order.
const (
	NameHeadingSpacing = "heading-spacing"
	NameMarkerRemoval  = "marker-removal"
	NameIntroRewrite   = "intro-rewrite"
)

var order = []string{NameHeadingSpacing, NameMarkerRemoval, NameIntroRewrite}

// Names returns every known transform name in pipeline order.
func Names() []string {
	return append([]string(nil), order...)
}

// Transform rewrites the content of a single document.
type Transform interface {
	// Name returns the registry name of the transform.
	Name() string

	// RequiresFrontmatter reports whether documents without a frontmatter
	// block must be skipped.
	RequiresFrontmatter() bool

	// Apply returns the document content after the transform.
	Apply(doc *docmodel.Document) (Result, error)
}

// Result is the outcome of applying one transform.
type Result struct {
	Content []byte
	Changed bool
	// Detail is a transform-specific note for debug logs.
	Detail string
}

// Options configures transform construction.
type Options struct {
	// IntroSelector picks intro fragments; md5 when nil.
	IntroSelector intro.Selector
}

// New returns the transform registered under name.
func New(name string, opts Options) (Transform, error) {
	switch strings.TrimSpace(name) {
	case NameHeadingSpacing:
		return HeadingSpacing{}, nil
	case NameMarkerRemoval:
		return MarkerRemoval{}, nil
	case NameIntroRewrite:
		return NewIntroRewrite(intro.NewGenerator(opts.IntroSelector)), nil
	default:
		return nil, fmt.Errorf("unknown transform %q (valid: %s)", name, strings.Join(order, ", "))
	}
}

// Validate checks that every name is a known transform.
func Validate(names []string) error {
	for _, n := range names {
		if !slices.Contains(order, strings.TrimSpace(n)) {
			return fmt.Errorf("unknown transform %q (valid: %s)", n, strings.Join(order, ", "))
		}
	}
	return nil
}
