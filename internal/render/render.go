// Package render turns a parsed wikitext tree into HTML. It is
// explicitly lossy and not part of the parser's contract: it lowers
// the tree to an intermediate Markdown-like string and hands that to
// gomarkdown, hooking its code-block rendering through chroma for
// syntax highlighting, the same two-dependency pairing this
// codebase's own markdown handler uses.
package render

import (
	"fmt"
	"io"
	"strings"

	"wikiparse/internal/wikinode"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/ast"
	mdhtml "github.com/gomarkdown/markdown/html"
	mdparser "github.com/gomarkdown/markdown/parser"
)

// ToHTML renders a parsed tree to an HTML document fragment.
func ToHTML(nodes []*wikinode.Node) []byte {
	md := ToMarkdown(nodes)

	extensions := mdparser.CommonExtensions | mdparser.AutoHeadingIDs
	p := mdparser.NewWithExtensions(extensions)

	opts := mdhtml.RendererOptions{
		Flags: mdhtml.CommonFlags | mdhtml.HrefTargetBlank,
		RenderNodeHook: func(w io.Writer, node ast.Node, entering bool) (ast.WalkStatus, bool) {
			if code, ok := node.(*ast.CodeBlock); ok && entering {
				lang := string(code.Info)
				if lang == "" {
					lang = "text"
				}
				w.Write([]byte(highlightCodeBlock(string(code.Literal), lang)))
				return ast.GoToNext, true
			}
			return ast.GoToNext, false
		},
	}
	renderer := mdhtml.NewRenderer(opts)
	return markdown.ToHTML([]byte(md), p, renderer)
}

// highlightCodeBlock runs chroma over code and wraps the result in a
// <pre> block. An unrecognized language uses chroma's fallback lexer;
// a plain escaped block is returned only if tokenizing or formatting
// fails.
func highlightCodeBlock(code, language string) string {
	lexer := lexers.Get(language)
	if lexer == nil {
		lexer = lexers.Fallback
	}
	style := styles.Get("monokai")
	if style == nil {
		style = styles.Fallback
	}
	formatter := chromahtml.New(chromahtml.WithClasses(true), chromahtml.ClassPrefix("chroma-"))

	iterator, err := lexer.Tokenise(nil, code)
	if err != nil {
		return fmt.Sprintf("<pre class=\"chroma\"><code>%s</code></pre>", escapeHTML(code))
	}
	var buf strings.Builder
	if err := formatter.Format(&buf, style, iterator); err != nil {
		return fmt.Sprintf("<pre class=\"chroma\"><code>%s</code></pre>", escapeHTML(code))
	}
	return buf.String()
}

func escapeHTML(s string) string {
	r := strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")
	return r.Replace(s)
}
