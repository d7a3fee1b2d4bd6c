package sentiment

import (
	"regexp"
	"strings"

	"github.com/russross/blackfriday/v2"
)

var (
	linkPattern = regexp.MustCompile(`\[(.*?)\]\((https?:\/\/[^\s\)]+)\)`)
	urlPattern  = regexp.MustCompile(`https?://\S+|www\.\S+`)
)

func RemoveLinks(input string) string {
	input = linkPattern.ReplaceAllString(input, "$1") // Keep only the text
	return urlPattern.ReplaceAllString(input, "")
}

// ConvertMarkdownToText flattens markdown into the words a reader would see.
// Link and image text is kept, URLs and raw HTML are dropped.
func ConvertMarkdownToText(input string) string {
	root := blackfriday.New(blackfriday.WithExtensions(blackfriday.CommonExtensions)).
		Parse([]byte(input))

	var b strings.Builder
	root.Walk(func(node *blackfriday.Node, entering bool) blackfriday.WalkStatus {
		switch node.Type {
		case blackfriday.Text, blackfriday.Code:
			if entering {
				b.Write(node.Literal)
			}
		case blackfriday.CodeBlock:
			b.Write(node.Literal)
			b.WriteByte(' ')
		case blackfriday.Softbreak, blackfriday.Hardbreak, blackfriday.HTMLSpan:
			b.WriteByte(' ')
		case blackfriday.Paragraph, blackfriday.Heading, blackfriday.Item, blackfriday.TableCell:
			if !entering {
				b.WriteByte(' ')
			}
		}
		return blackfriday.GoToNext
	})

	return strings.Join(strings.Fields(RemoveLinks(b.String())), " ")
}
