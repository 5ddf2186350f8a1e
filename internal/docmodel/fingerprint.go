package docmodel

import (
	"strings"

	"github.com/inful/mdfp"
)

// Fingerprint returns the content fingerprint of the document.
//
// The raw frontmatter block (newlines normalized to LF, single trailing
// newline trimmed) and the body are hashed as-is, so any byte change in
// either part changes the fingerprint.
func (d *Document) Fingerprint() string {
	fm := strings.ReplaceAll(string(d.fmRaw), "\r\n", "\n")
	fm = strings.TrimSuffix(fm, "\n")
	return mdfp.CalculateFingerprintFromParts(fm, string(d.body))
}
