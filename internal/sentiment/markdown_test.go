package sentiment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConvertMarkdownToText(t *testing.T) {
	cases := map[string]struct {
		in   string
		want string
	}{
		"plain":       {in: "I love this", want: "I love this"},
		"emphasis":    {in: "really **good** and _fun_", want: "really good and fun"},
		"heading":     {in: "# Title\n\nbody text", want: "Title body text"},
		"link":        {in: "read [the docs](https://example.com/docs) now", want: "read the docs now"},
		"bare url":    {in: "see https://example.com/x for more", want: "see for more"},
		"list":        {in: "- one\n- two", want: "one two"},
		"whitespace":  {in: "  spaced \n\n  out  ", want: "spaced out"},
		"inline html": {in: "Hello<br>love", want: "Hello love"},
		"empty":       {in: "", want: ""},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.want, ConvertMarkdownToText(tc.in))
		})
	}
}

func TestRemoveLinks(t *testing.T) {
	assert.Equal(t, "go here and ", RemoveLinks("[go here](https://a.b/c) and www.example.com"))
}
