package http

import (
	"bytes"
	"embed"
	"html/template"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// PageTemplateName is the template rendered for the pipeline page.
const PageTemplateName = "index.tmpl"

// markdownRenderer turns model text into sanitized HTML.
type markdownRenderer struct {
	md     goldmark.Markdown
	policy *bluemonday.Policy
}

func newMarkdownRenderer() *markdownRenderer {
	return &markdownRenderer{
		md:     goldmark.New(goldmark.WithExtensions(extension.GFM)),
		policy: bluemonday.UGCPolicy(),
	}
}

// Render converts src; on a conversion failure the escaped source is returned.
func (r *markdownRenderer) Render(src string) template.HTML {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(src), &buf); err != nil {
		return template.HTML(template.HTMLEscapeString(src))
	}
	return template.HTML(r.policy.SanitizeBytes(buf.Bytes()))
}

// PageTemplate parses the embedded page templates for gin's SetHTMLTemplate.
func PageTemplate() (*template.Template, error) {
	renderer := newMarkdownRenderer()
	funcs := template.FuncMap{
		"markdown": renderer.Render,
	}
	return template.New("pages").Funcs(funcs).ParseFS(templateFS, "templates/*.tmpl")
}
