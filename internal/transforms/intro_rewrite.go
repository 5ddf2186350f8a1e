package transforms

import (
	"git.home.luguber.info/inful/mdxtidy/internal/docmodel"
	"git.home.luguber.info/inful/mdxtidy/internal/intro"
)

// IntroRewrite replaces boilerplate blog intros with generated ones.
type IntroRewrite struct {
	rewriter *intro.Rewriter
}

// NewIntroRewrite returns an IntroRewrite using gen.
func NewIntroRewrite(gen *intro.Generator) *IntroRewrite {
	return &IntroRewrite{rewriter: intro.NewRewriter(gen)}
}

func (*IntroRewrite) Name() string { return NameIntroRewrite }

func (*IntroRewrite) RequiresFrontmatter() bool { return true }

func (t *IntroRewrite) Apply(doc *docmodel.Document) (Result, error) {
	out, outcome, err := t.rewriter.Rewrite(doc)
	if err != nil {
		return Result{}, err
	}
	return Result{
		Content: out,
		Changed: outcome == intro.OutcomeRewritten,
		Detail:  string(outcome),
	}, nil
}
