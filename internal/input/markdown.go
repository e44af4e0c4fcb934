package input

import (
	"strings"

	"github.com/russross/blackfriday/v2"
)

// MarkdownToText walks the markdown AST and keeps only readable text. Link
// targets and image URLs are dropped; block elements end with a newline.
func MarkdownToText(md string) string {
	parser := blackfriday.New(blackfriday.WithExtensions(blackfriday.CommonExtensions))
	root := parser.Parse([]byte(md))

	var out strings.Builder
	root.Walk(func(node *blackfriday.Node, entering bool) blackfriday.WalkStatus {
		switch node.Type {
		case blackfriday.Text, blackfriday.Code:
			if entering {
				out.Write(node.Literal)
			}
		case blackfriday.CodeBlock:
			if entering {
				out.Write(node.Literal)
				out.WriteByte('\n')
			}
		case blackfriday.Softbreak, blackfriday.Hardbreak:
			if entering {
				out.WriteByte('\n')
			}
		case blackfriday.Paragraph, blackfriday.Heading, blackfriday.Item, blackfriday.TableCell:
			if !entering {
				out.WriteByte('\n')
			}
		}
		return blackfriday.GoToNext
	})

	return strings.TrimSpace(out.String())
}
