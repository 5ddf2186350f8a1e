package markdown

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHeadings_LocatesATXHeadings(t *testing.T) {
	body := []byte("\n# Title\n\nIntro text.\n\n## First\nbody\n\n### Deep\n")

	headings := Headings(body)
	require.Len(t, headings, 3)

	require.Equal(t, 1, headings[0].Level)
	require.Equal(t, "Title", headings[0].Text)
	require.Equal(t, "# Title", string(body[headings[0].LineStart:headings[0].LineEnd]))

	require.Equal(t, 2, headings[1].Level)
	require.Equal(t, "## First", string(body[headings[1].LineStart:headings[1].LineEnd]))

	require.Equal(t, 3, headings[2].Level)
}

func TestHeadings_SkipsFencedCodeAndSetext(t *testing.T) {
	body := []byte("```bash\n# not a heading\n```\n\nSetext\n======\n\n# Real\n")

	headings := Headings(body)
	require.Len(t, headings, 1)
	require.Equal(t, "Real", headings[0].Text)
}

func TestHeadings_SkipsIndentedAndQuoted(t *testing.T) {
	body := []byte("  # indented\n\n> # quoted\n\n## ok\n")

	headings := Headings(body)
	require.Len(t, headings, 1)
	require.Equal(t, "ok", headings[0].Text)
}

func TestHeadings_LastLineWithoutNewline(t *testing.T) {
	body := []byte("# Only")

	headings := Headings(body)
	require.Len(t, headings, 1)
	require.Equal(t, len(body), headings[0].LineEnd)
}

func TestHeadings_CRLF(t *testing.T) {
	body := []byte("# Title\r\n\r\n## Next\r\n")

	headings := Headings(body)
	require.Len(t, headings, 2)
	require.Equal(t, "Title", headings[0].Text)
	require.Equal(t, byte('\n'), body[headings[0].LineEnd])
}

func TestFirstHeading(t *testing.T) {
	headings := []Heading{
		{Level: 2, LineStart: 0},
		{Level: 1, LineStart: 10},
		{Level: 2, LineStart: 20},
	}

	h1, ok := FirstHeading(headings, 1, 0)
	require.True(t, ok)
	require.Equal(t, 10, h1.LineStart)

	h2, ok := FirstHeading(headings, 2, h1.LineStart+1)
	require.True(t, ok)
	require.Equal(t, 20, h2.LineStart)

	_, ok = FirstHeading(headings, 3, 0)
	require.False(t, ok)
}
