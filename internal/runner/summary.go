package runner

import (
	"encoding/json"
	"fmt"
	"io"
	"time"
)

// FileChange describes one document whose content changed.
type FileChange struct {
	Path       string   `json:"path"`
	Transforms []string `json:"transforms"`
	Before     string   `json:"before_fingerprint"`
	After      string   `json:"after_fingerprint"`
}

// FileFailure describes one document that could not be processed.
type FileFailure struct {
	Path  string `json:"path"`
	Error string `json:"error"`
}

// Summary is the result of one Run.
type Summary struct {
	RunID                string        `json:"run_id"`
	ContentDir           string        `json:"content_dir"`
	DryRun               bool          `json:"dry_run"`
	Transforms           []string      `json:"transforms"`
	Scanned              int           `json:"scanned"`
	Changed              int           `json:"changed"`
	SkippedNoFrontmatter int           `json:"skipped_no_frontmatter"`
	Failed               int           `json:"failed"`
	Changes              []FileChange  `json:"changes,omitempty"`
	Failures             []FileFailure `json:"failures,omitempty"`
	Duration             time.Duration `json:"-"`
	DurationMS           float64       `json:"duration_ms"`

	// ReportSkipped is set when a frontmatter-dependent transform ran, which
	// makes the skipped count meaningful in the text line.
	ReportSkipped bool `json:"-"`
}

// Line returns the one-line text summary,
// e.g. "Scanned: 12, changed: 3, skipped(no frontmatter): 1".
func (s *Summary) Line() string {
	line := fmt.Sprintf("Scanned: %d, changed: %d", s.Scanned, s.Changed)
	if s.ReportSkipped {
		line += fmt.Sprintf(", skipped(no frontmatter): %d", s.SkippedNoFrontmatter)
	}
	if s.Failed > 0 {
		line += fmt.Sprintf(", failed: %d", s.Failed)
	}
	return line
}

// WriteText writes the human-readable summary. Dry runs list the files that
// would change before the summary line.
func (s *Summary) WriteText(w io.Writer) error {
	if s.DryRun {
		for _, c := range s.Changes {
			if _, err := fmt.Fprintf(w, "would change: %s\n", c.Path); err != nil {
				return err
			}
		}
	}
	_, err := fmt.Fprintln(w, s.Line())
	return err
}

// WriteJSON writes the summary as an indented JSON object.
func (s *Summary) WriteJSON(w io.Writer) error {
	out := *s
	out.DurationMS = float64(s.Duration.Microseconds()) / 1000
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
