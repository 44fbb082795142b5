package render

import (
	"strings"

	"wikiparse/internal/wikinode"
)

// ToMarkdown lowers a parsed tree to a Markdown-equivalent string.
// Templates and ref tags, which have no Markdown analogue, degrade to
// a readable approximation. HTML tags keep their name but not their
// attributes, and comments and categories are omitted.
func ToMarkdown(nodes []*wikinode.Node) string {
	var b strings.Builder
	writeNodes(&b, nodes)
	return b.String()
}

func writeNodes(b *strings.Builder, nodes []*wikinode.Node) {
	for _, n := range nodes {
		writeNode(b, n)
	}
}

func writeNode(b *strings.Builder, n *wikinode.Node) {
	switch n.Kind {
	case wikinode.Text:
		b.WriteString(n.Content)

	case wikinode.Bold:
		b.WriteString("**")
		writeNodes(b, n.Children)
		b.WriteString("**")

	case wikinode.Italic:
		b.WriteString("_")
		writeNodes(b, n.Children)
		b.WriteString("_")

	case wikinode.Header:
		b.WriteString("\n")
		b.WriteString(strings.Repeat("#", n.Level))
		b.WriteString(" ")
		writeNodes(b, n.Children)
		b.WriteString("\n")

	case wikinode.Link:
		b.WriteString("[")
		b.WriteString(n.Display)
		b.WriteString("](")
		b.WriteString(n.Target)
		b.WriteString(")")

	case wikinode.Category:
		// categories are metadata, not prose; contribute nothing

	case wikinode.File:
		b.WriteString("![")
		b.WriteString(n.Name)
		b.WriteString("](")
		b.WriteString(n.Name)
		b.WriteString(")")

	case wikinode.InterlangLink:
		b.WriteString("[")
		b.WriteString(n.Title)
		b.WriteString("](")
		b.WriteString(n.Lang)
		b.WriteString(":")
		b.WriteString(n.Title)
		b.WriteString(")")

	case wikinode.Template:
		writeTemplate(b, n)

	case wikinode.HTMLTag:
		b.WriteString("<")
		b.WriteString(n.Tag)
		b.WriteString(">")
		writeNodes(b, n.Children)
		if n.Children != nil {
			b.WriteString("</")
			b.WriteString(n.Tag)
			b.WriteString(">")
		}

	case wikinode.Comment:
		// comments never reach the rendered page

	case wikinode.Nowiki:
		b.WriteString("`")
		b.WriteString(n.Content)
		b.WriteString("`")

	case wikinode.Ref:
		b.WriteString(" (")
		writeNodes(b, n.Children)
		b.WriteString(")")

	case wikinode.ListItem:
		b.WriteString("\n")
		b.WriteString(strings.Repeat("  ", n.ListLevel-1))
		if n.ListKind == wikinode.Ordered {
			b.WriteString("1. ")
		} else {
			b.WriteString("- ")
		}
		writeNodes(b, n.Children)

	case wikinode.Table:
		writeTable(b, n)

	default:
		writeNodes(b, n.Children)
	}
}

// writeTemplate renders an invocation's argument values inline since
// Markdown has no template-expansion concept; this is a readable
// approximation, not expansion.
func writeTemplate(b *strings.Builder, n *wikinode.Node) {
	b.WriteString("{{")
	b.WriteString(n.TemplateName)
	for _, arg := range n.Args {
		b.WriteString("|")
		if arg.Kind == wikinode.Named {
			b.WriteString(arg.Key)
			b.WriteString("=")
		}
		if s, ok := arg.Value.PlainString(); ok {
			b.WriteString(s)
		} else {
			for _, part := range arg.Value.Parts {
				if part.Node != nil {
					writeNode(b, part.Node)
				} else {
					b.WriteString(part.Text)
				}
			}
		}
	}
	b.WriteString("}}")
}

// writeTable renders a table's rows as a GFM pipe table. The first row,
// whatever its cell kind, is used as the header row and is followed by
// the separator line GFM requires.
func writeTable(b *strings.Builder, table *wikinode.Node) {
	if len(table.Children) == 0 {
		return
	}
	b.WriteString("\n")
	for i, row := range table.Children {
		b.WriteString("|")
		for _, cell := range row.Children {
			var cb strings.Builder
			writeNodes(&cb, cell.Children)
			b.WriteString(" ")
			b.WriteString(strings.ReplaceAll(cb.String(), "|", "\\|"))
			b.WriteString(" |")
		}
		b.WriteString("\n")
		if i == 0 {
			b.WriteString("|")
			for range row.Children {
				b.WriteString(" --- |")
			}
			b.WriteString("\n")
		}
	}
}
