package transforms

import (
	"testing"

	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/mdxtidy/internal/docmodel"
)

func TestRemoveMarkers(t *testing.T) {
	cases := []struct {
		name    string
		in      string
		want    string
		removed int
	}{
		{name: "middle", in: "text (Eslatma: 12) more", want: "text more", removed: 1},
		{name: "start", in: "(Eslatma: 1) text", want: "text", removed: 1},
		{name: "end", in: "text (Eslatma: 1)", want: "text", removed: 1},
		{name: "line break kept", in: "a (Eslatma: 1)\nb", want: "a\nb", removed: 1},
		{name: "paragraph break before marker", in: "a\n\n(Eslatma: 3) b", want: "a\n\nb", removed: 1},
		{name: "trailing newline at end", in: "text (Eslatma: 4)\n", want: "text\n", removed: 1},
		{name: "no space inside", in: "x(Eslatma:7)y", want: "x y", removed: 1},
		{name: "adjacent markers", in: "a (Eslatma: 1) (Eslatma: 2) b", want: "a b", removed: 2},
		{name: "adjacent across lines", in: "a (Eslatma: 1)\n(Eslatma: 2) b", want: "a\nb", removed: 2},
		{name: "separate markers", in: "a (Eslatma: 1) b (Eslatma: 2) c", want: "a b c", removed: 2},
		{name: "heading follows", in: "End (Eslatma: 5)\n\n## Next", want: "End\n\n## Next", removed: 1},
		{name: "crlf", in: "a (Eslatma: 1)\r\nb", want: "a\r\nb", removed: 1},
		{name: "no marker", in: "plain (Eslatma) text", want: "plain (Eslatma) text", removed: 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			out, removed, err := RemoveMarkers([]byte(tc.in))
			require.NoError(t, err)
			require.Equal(t, tc.want, string(out))
			require.Equal(t, tc.removed, removed)
		})
	}
}

func TestRemoveMarkers_Idempotent(t *testing.T) {
	once, _, err := RemoveMarkers([]byte("a (Eslatma: 1) b\n\nc (Eslatma: 2)\n"))
	require.NoError(t, err)

	twice, removed, err := RemoveMarkers(once)
	require.NoError(t, err)
	require.Zero(t, removed)
	require.Equal(t, once, twice)
}

func TestMarkerRemoval_Apply(t *testing.T) {
	doc := docmodel.Parse("post.mdx", []byte("# T\n\nMatn (Eslatma: 2) davomi.\n"))

	res, err := MarkerRemoval{}.Apply(doc)
	require.NoError(t, err)
	require.True(t, res.Changed)
	require.Equal(t, "# T\n\nMatn davomi.\n", string(res.Content))
	require.Equal(t, "removed 1 markers", res.Detail)
}
