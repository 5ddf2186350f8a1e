package commands

import (
	"fmt"

	"git.home.luguber.info/inful/mdxtidy/internal/errors"
	"git.home.luguber.info/inful/mdxtidy/internal/intro"
)

// IntroCmd implements the 'intro' command.
type IntroCmd struct {
	Slug        string `required:"" help:"Post slug (file name without extension)"`
	Title       string `required:"" help:"Post title"`
	Description string `help:"Post description"`
	Category    string `help:"Post category"`
	Selector    string `help:"Fragment selector (md5|blake3); overrides intro.selector"`
}

func (i *IntroCmd) Run(g *Global, root *CLI) error {
	cfg, err := root.loadConfig(g)
	if err != nil {
		return err
	}
	name := cfg.Intro.Selector
	if i.Selector != "" {
		name = i.Selector
	}
	selector, err := intro.NewSelector(name)
	if err != nil {
		return errors.ValidationFailed("selector", err.Error())
	}
	if i.Slug == "" {
		return errors.ValidationFailed("slug", "must not be empty")
	}

	text := intro.NewGenerator(selector).Generate(intro.Meta{
		Title:       i.Title,
		Description: i.Description,
		Slug:        i.Slug,
		Category:    i.Category,
	})
	_, err = fmt.Fprint(g.Stdout, text)
	return err
}
