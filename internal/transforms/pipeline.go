package transforms

import (
	"bytes"
	"log/slog"
	"slices"
	"strings"

	"git.home.luguber.info/inful/mdxtidy/internal/docmodel"
	"git.home.luguber.info/inful/mdxtidy/internal/errors"
	"git.home.luguber.info/inful/mdxtidy/internal/logfields"
)

// Pipeline applies transforms to a document in pipeline order, re-parsing
// the document between steps.
type Pipeline struct {
	transforms []Transform
	logger     *slog.Logger
}

// PipelineResult is the outcome of running a Pipeline on one document.
type PipelineResult struct {
	Content []byte
	Changed bool
	// Applied lists the transforms that changed the document.
	Applied []string
	// SkippedNoFrontmatter is set when a transform was skipped because the
	// document has no frontmatter block.
	SkippedNoFrontmatter bool
}

// NewPipeline builds a pipeline from transform names. Duplicates are dropped
// and the transforms always run in pipeline order.
func NewPipeline(names []string, opts Options, logger *slog.Logger) (*Pipeline, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if err := Validate(names); err != nil {
		return nil, errors.Wrap(err, errors.CategoryValidation, errors.SeverityFatal, "invalid transform list")
	}

	p := &Pipeline{logger: logger}
	for _, name := range order {
		if !slices.ContainsFunc(names, func(n string) bool { return strings.TrimSpace(n) == name }) {
			continue
		}
		t, err := New(name, opts)
		if err != nil {
			return nil, errors.InternalError("transform registry out of sync", err)
		}
		p.transforms = append(p.transforms, t)
	}
	return p, nil
}

// Names returns the names of the transforms in the pipeline.
func (p *Pipeline) Names() []string {
	names := make([]string, 0, len(p.transforms))
	for _, t := range p.transforms {
		names = append(names, t.Name())
	}
	return names
}

// RequiresFrontmatter reports whether any transform needs frontmatter.
func (p *Pipeline) RequiresFrontmatter() bool {
	return slices.ContainsFunc(p.transforms, func(t Transform) bool { return t.RequiresFrontmatter() })
}

// Apply runs the pipeline on doc.
func (p *Pipeline) Apply(doc *docmodel.Document) (PipelineResult, error) {
	res := PipelineResult{Content: doc.Original()}
	current := doc

	for _, t := range p.transforms {
		if t.RequiresFrontmatter() && !current.HadFrontmatter() {
			res.SkippedNoFrontmatter = true
			p.logger.Debug("Skipping transform: no frontmatter",
				logfields.Transform(t.Name()), logfields.File(doc.Path()))
			continue
		}

		out, err := t.Apply(current)
		if err != nil {
			return PipelineResult{}, errors.TransformFailed(t.Name(), doc.Path(), err)
		}
		if out.Detail != "" {
			p.logger.Debug("Transform applied",
				logfields.Transform(t.Name()), logfields.File(doc.Path()),
				logfields.Changed(out.Changed), slog.String("detail", out.Detail))
		}
		if !out.Changed {
			continue
		}
		res.Applied = append(res.Applied, t.Name())
		res.Content = out.Content
		current = current.WithContent(out.Content)
	}

	res.Changed = !bytes.Equal(res.Content, doc.Original())
	return res, nil
}
