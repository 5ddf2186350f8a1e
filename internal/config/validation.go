package config

import (
	"path/filepath"
	"slices"
	"strings"

	"git.home.luguber.info/inful/mdxtidy/internal/errors"
	"git.home.luguber.info/inful/mdxtidy/internal/intro"
	"git.home.luguber.info/inful/mdxtidy/internal/transforms"
)

// Validate checks the configuration for values the runner cannot use.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.ContentDir) == "" {
		return errors.ValidationFailed("content_dir", "must not be empty")
	}
	if _, err := filepath.Match(c.Pattern, ""); err != nil {
		return errors.ValidationFailed("pattern", err.Error())
	}
	if len(c.Transforms) == 0 {
		return errors.ValidationFailed("transforms", "at least one transform is required")
	}
	if err := transforms.Validate(c.Transforms); err != nil {
		return errors.ValidationFailed("transforms", err.Error())
	}
	if !slices.Contains(intro.SelectorNames(), c.Intro.Selector) {
		return errors.ValidationFailed("intro.selector",
			"must be one of "+strings.Join(intro.SelectorNames(), ", "))
	}
	return nil
}
