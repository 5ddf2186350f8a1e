package logfields

import (
	"errors"
	"log/slog"
	"testing"
)

// TestHelperKeyNames verifies string-based helper key/value stability.
func TestHelperKeyNames(t *testing.T) {
	cases := []struct {
		name    string
		attrKey string
		attrVal string
		attr    slog.Attr
	}{
		{"RunID", KeyRunID, "r1", RunID("r1")},
		{"Transform", KeyTransform, "intro-rewrite", Transform("intro-rewrite")},
		{"File", KeyFile, "post.mdx", File("post.mdx")},
		{"Slug", KeySlug, "post", Slug("post")},
		{"Dir", KeyDir, "content", Dir("content")},
		{"Selector", KeySelector, "md5", Selector("md5")},
		{"Event", KeyEvent, "WRITE", Event("WRITE")},
	}
	for _, c := range cases {
		if c.attr.Key != c.attrKey {
			t.Fatalf("%s key mismatch: got %s want %s", c.name, c.attr.Key, c.attrKey)
		}
		if c.attr.Value.String() != c.attrVal {
			t.Fatalf("%s value mismatch: got %s want %s", c.name, c.attr.Value.String(), c.attrVal)
		}
	}
}

func TestBoolAndNumericHelpers(t *testing.T) {
	if a := DryRun(true); a.Key != KeyDryRun || !a.Value.Bool() {
		t.Fatalf("DryRun attr wrong: %v", a)
	}
	if a := Changed(false); a.Key != KeyChanged || a.Value.Bool() {
		t.Fatalf("Changed attr wrong: %v", a)
	}
	if a := DurationMS(12.5); a.Key != KeyDurationMS || a.Value.Float64() != 12.5 {
		t.Fatalf("DurationMS attr wrong: %v", a)
	}
}

func TestErrorHelper(t *testing.T) {
	if a := Error(nil); a.Value.String() != "" {
		t.Fatalf("nil error should render empty, got %q", a.Value.String())
	}
	if a := Error(errors.New("boom")); a.Key != KeyError || a.Value.String() != "boom" {
		t.Fatalf("Error attr wrong: %v", a)
	}
}
