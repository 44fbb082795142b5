// Package query walks a parsed wikitext tree to answer the extraction
// questions callers actually need, rather than forcing them to
// re-implement tree recursion: which templates are invoked, which
// pages are linked, what the header outline looks like, and what the
// tree reads as plain text. It mirrors the dispatch-by-kind style the
// parser's own link classifier uses, just one layer up the tree.
package query

import "wikiparse/internal/wikinode"

// TemplateUse records one template invocation found while walking a
// tree, alongside the arguments it was called with.
type TemplateUse struct {
	Name string
	Args []wikinode.Arg
}

// FindTemplates returns every template invocation in the tree, in
// document order, including ones nested inside other constructs
// (headers, list items, table cells, tag bodies, other templates).
func FindTemplates(nodes []*wikinode.Node) []TemplateUse {
	var out []TemplateUse
	walk(nodes, func(n *wikinode.Node) {
		if n.Kind == wikinode.Template {
			out = append(out, TemplateUse{Name: n.TemplateName, Args: n.Args})
		}
	})
	return out
}

// LastNamedArg returns the value of the last occurrence of a named
// argument in args, matching wikitext's last-wins override semantics
// for duplicate names.
func LastNamedArg(args []wikinode.Arg, key string) (wikinode.Value, bool) {
	var (
		val   wikinode.Value
		found bool
	)
	for _, a := range args {
		if a.Kind == wikinode.Named && a.Key == key {
			val = a.Value
			found = true
		}
	}
	return val, found
}

// PositionalArgs returns only the positional arguments, in call
// order.
func PositionalArgs(args []wikinode.Arg) []wikinode.Value {
	var out []wikinode.Value
	for _, a := range args {
		if a.Kind == wikinode.Positional {
			out = append(out, a.Value)
		}
	}
	return out
}

// LinkRef is a resolved [[...]] target: a plain link, a file
// reference, or an interlanguage link. Category is reported
// separately since it names a category rather than linking to a page.
type LinkRef struct {
	Kind    wikinode.Kind
	Target  string // Link.Target, File.Name, or "lang:title" for interlang
	Display string
}

// FindLinks returns every link, file reference, and interlanguage
// link in the tree, in document order. Category tags are not
// included; use FindCategories.
func FindLinks(nodes []*wikinode.Node) []LinkRef {
	var out []LinkRef
	walk(nodes, func(n *wikinode.Node) {
		switch n.Kind {
		case wikinode.Link:
			out = append(out, LinkRef{Kind: n.Kind, Target: n.Target, Display: n.Display})
		case wikinode.File:
			out = append(out, LinkRef{Kind: n.Kind, Target: n.Name, Display: n.Name})
		case wikinode.InterlangLink:
			out = append(out, LinkRef{Kind: n.Kind, Target: n.Lang + ":" + n.Title, Display: n.Title})
		}
	})
	return out
}

// FindCategories returns the name of every category tag in the tree.
func FindCategories(nodes []*wikinode.Node) []string {
	var out []string
	walk(nodes, func(n *wikinode.Node) {
		if n.Kind == wikinode.Category {
			out = append(out, n.Name)
		}
	})
	return out
}

// HeaderRef is one entry of a header outline.
type HeaderRef struct {
	Level int
	Text  string
}

// FindHeaders returns the document's header outline in order, with
// each header's body flattened to plain text.
func FindHeaders(nodes []*wikinode.Node) []HeaderRef {
	var out []HeaderRef
	walk(nodes, func(n *wikinode.Node) {
		if n.Kind == wikinode.Header {
			out = append(out, HeaderRef{Level: n.Level, Text: ExtractText(n.Children)})
		}
	})
	return out
}

// ExtractText flattens a node list to its plain-text reading: text
// leaves and nowiki content are concatenated verbatim, comments,
// categories and files are dropped, links contribute their display
// text, and every other construct contributes the flattened text of
// its children, in document order.
func ExtractText(nodes []*wikinode.Node) string {
	var out []byte
	var rec func([]*wikinode.Node)
	rec = func(ns []*wikinode.Node) {
		for _, n := range ns {
			switch n.Kind {
			case wikinode.Text:
				out = append(out, n.Content...)
			case wikinode.Nowiki:
				out = append(out, n.Content...)
			case wikinode.Comment:
				// verbatim markup, not prose
			case wikinode.Link:
				out = append(out, n.Display...)
			case wikinode.Category:
				// contributes nothing to prose
			case wikinode.File:
				// contributes nothing to prose
			default:
				rec(n.Children)
			}
		}
	}
	rec(nodes)
	return string(out)
}

// walk visits every node in the tree, depth-first, in document order.
func walk(nodes []*wikinode.Node, visit func(*wikinode.Node)) {
	for _, n := range nodes {
		visit(n)
		if len(n.Children) > 0 {
			walk(n.Children, visit)
		}
		for _, a := range n.Args {
			if !a.Value.IsString {
				for _, part := range a.Value.Parts {
					if part.Node != nil {
						walk([]*wikinode.Node{part.Node}, visit)
					}
				}
			}
		}
	}
}
