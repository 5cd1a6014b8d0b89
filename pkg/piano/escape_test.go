package piano_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sublime-music/piano/pkg/piano"
)

func TestEncodeString(t *testing.T) {
	for _, tc := range []struct {
		in       string
		expected string
	}{
		{"", ""},
		{"plain text", "plain text"},
		{"a&b<c", "a&amp;b&lt;c"},
		{`"quoted" 'single'`, "&quot;quoted&quot; &apos;single&apos;"},
		{"<a>&amp;</a>", "&lt;a&gt;&amp;amp;&lt;/a&gt;"},
		{"Motörhead & Sons", "Motörhead &amp; Sons"},
	} {
		t.Run(tc.in, func(t *testing.T) {
			assert.Equal(t, tc.expected, piano.EncodeString(tc.in))
		})
	}
}

var entities = strings.NewReplacer(
	"&amp;", "&",
	"&apos;", "'",
	"&quot;", `"`,
	"&lt;", "<",
	"&gt;", ">",
)

func FuzzEncodeString(f *testing.F) {
	f.Add("a&b<c")
	f.Add(`<tag attr="x">it's</tag>`)
	f.Add("\xff\x00&")

	f.Fuzz(func(t *testing.T, s string) {
		encoded := piano.EncodeString(s)

		assert.NotContains(t, encoded, "<")
		assert.NotContains(t, encoded, ">")
		assert.NotContains(t, encoded, `"`)
		assert.NotContains(t, encoded, "'")
		assert.Equal(t, strings.Count(s, "&")+strings.Count(s, "'")+strings.Count(s, `"`)+strings.Count(s, "<")+strings.Count(s, ">"),
			strings.Count(encoded, "&"))
		assert.Equal(t, s, entities.Replace(encoded))
	})
}
