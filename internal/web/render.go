package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

//go:embed templates/*.html
var templateFS embed.FS

// Renderer executes the page template. Generated text is treated as markdown;
// raw HTML inside it is dropped by goldmark, never passed through.
type Renderer struct {
	tmpl *template.Template
	md   goldmark.Markdown
}

// NewRenderer parses the embedded templates.
func NewRenderer() (*Renderer, error) {
	r := &Renderer{
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
			goldmark.WithRendererOptions(
				html.WithHardWraps(),
			),
		),
	}
	tmpl, err := template.New("page.html").
		Funcs(template.FuncMap{"markdown": r.markdown}).
		ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	r.tmpl = tmpl
	return r, nil
}

// Render writes the full page. The page is buffered so a template error never
// leaves a half-written response.
func (r *Renderer) Render(w io.Writer, p Page) error {
	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, "page.html", p); err != nil {
		return fmt.Errorf("render page: %w", err)
	}
	_, err := buf.WriteTo(w)
	return err
}

// markdown converts model output to HTML. On conversion failure the text is
// shown escaped as-is.
func (r *Renderer) markdown(text string) template.HTML {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(text), &buf); err != nil {
		return template.HTML("<pre>" + template.HTMLEscapeString(text) + "</pre>")
	}
	return template.HTML(buf.String())
}
