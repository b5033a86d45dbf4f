package markdown

import (
	"bytes"
	"io"
	"strings"

	"github.com/alecthomas/chroma/v2"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"

	"github.com/gomarkdown/markdown/ast"
	"github.com/gomarkdown/markdown/html"
)

// highlightHook returns a render hook that replaces fenced code blocks
// carrying a language info string with chroma-highlighted HTML. Blocks
// without a language, and anything chroma chokes on, fall through to the
// default renderer.
func highlightHook(styleName string) html.RenderNodeFunc {
	style := styles.Get(styleName)
	if style == nil {
		style = styles.Fallback
	}
	formatter := chromahtml.New(chromahtml.TabWidth(4))

	return func(w io.Writer, node ast.Node, entering bool) (ast.WalkStatus, bool) {
		code, ok := node.(*ast.CodeBlock)
		if !ok {
			return ast.GoToNext, false
		}
		lang := language(code.Info)
		if lang == "" {
			return ast.GoToNext, false
		}

		var buf bytes.Buffer
		if err := highlight(&buf, string(code.Literal), lang, style, formatter); err != nil {
			return ast.GoToNext, false
		}
		_, _ = w.Write(buf.Bytes())
		return ast.GoToNext, true
	}
}

func highlight(w io.Writer, source, lang string, style *chroma.Style, formatter *chromahtml.Formatter) error {
	lexer := lexers.Get(lang)
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	iterator, err := lexer.Tokenise(nil, source)
	if err != nil {
		return err
	}
	return formatter.Format(w, style, iterator)
}

// language extracts the language name from a fence info string, dropping
// trailing attributes ("go linenos" -> "go").
func language(info []byte) string {
	fields := strings.Fields(string(info))
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}
