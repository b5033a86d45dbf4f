// Package markdown renders a markdown document into a self-contained HTML
// fragment: every local image is inlined as a data URL and every local link
// is redirected through the previewer's /?path= navigation scheme.
package markdown

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/ast"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"

	"github.com/elijah-potter/tatum/internal/embedder"
	"github.com/elijah-potter/tatum/internal/pathresolve"
)

// Result is a rendered document, ready for the page template.
type Result struct {
	// Title is the canonical absolute path of the source document.
	Title string
	// Body is the rendered HTML fragment.
	Body string
}

// Renderer converts markdown files to HTML fragments. It holds no per-render
// state, so a single Renderer may serve concurrent renders of different
// documents.
type Renderer struct {
	highlightStyle string
}

func NewRenderer(highlightStyle string) *Renderer {
	return &Renderer{highlightStyle: highlightStyle}
}

// RenderFile reads, parses, transforms and serializes the document at path.
// Relative references inside the document resolve against the document's own
// absolute path; rewritten links are relativized under cwd.
//
// RenderFile fails only when the source cannot be read or made absolute.
// Unresolvable references inside the document degrade locally and never
// abort the render.
func (r *Renderer) RenderFile(path, cwd string) (Result, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return Result{}, fmt.Errorf("canonicalize %q: %w", path, err)
	}
	src, err := os.ReadFile(abs)
	if err != nil {
		return Result{}, fmt.Errorf("read document: %w", err)
	}

	doc := parse(src)
	transform(doc, abs, cwd)

	return Result{Title: abs, Body: string(r.renderHTML(doc))}, nil
}

// parse parses markdown bytes with the full extension set.
func parse(src []byte) ast.Node {
	extensions := parser.CommonExtensions | parser.AutoHeadingIDs |
		parser.Footnotes | parser.NoEmptyLineBeforeBlock
	p := parser.NewWithExtensions(extensions)
	return p.Parse(src)
}

// transform rewrites every image and link destination in place, in document
// order. External URLs pass through untouched.
func transform(doc ast.Node, base, cwd string) {
	ast.WalkFunc(doc, func(node ast.Node, entering bool) ast.WalkStatus {
		if !entering {
			return ast.GoToNext
		}
		switch n := node.(type) {
		case *ast.Image:
			dest := string(n.Destination)
			if isExternalURL(dest) {
				return ast.GoToNext
			}
			resolved := pathresolve.Resolve(dest, base)
			slog.Debug("embedding image", "path", resolved)
			n.Destination = []byte(embedder.Embed(resolved))
		case *ast.Link:
			if n.NoteID != 0 {
				// Footnote references link inside the page itself.
				return ast.GoToNext
			}
			n.Destination = []byte(RewriteLink(string(n.Destination), base, cwd))
		}
		return ast.GoToNext
	})
}

// renderHTML serializes the AST. The HTML renderer is single-use, so each
// call constructs a fresh one.
func (r *Renderer) renderHTML(doc ast.Node) []byte {
	opts := html.RendererOptions{
		Flags:          html.CommonFlags,
		RenderNodeHook: highlightHook(r.highlightStyle),
	}
	return markdown.Render(doc, html.NewRenderer(opts))
}
