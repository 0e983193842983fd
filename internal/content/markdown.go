package content

import (
	"bytes"
	"html/template"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"

	"git.home.luguber.info/inful/sitegen/internal/foundation/errors"
	"git.home.luguber.info/inful/sitegen/internal/pricing"
)

// Markdown converts guide copy to HTML. Copy is trusted site configuration,
// so raw HTML blocks (embeds, wrappers) pass through.
type Markdown struct {
	md goldmark.Markdown
}

// NewMarkdown returns a converter with GitHub-style tables enabled.
func NewMarkdown() *Markdown {
	return &Markdown{md: goldmark.New(
		goldmark.WithExtensions(extension.Table),
		goldmark.WithRendererOptions(html.WithUnsafe()),
	)}
}

// Render converts src to HTML.
func (m *Markdown) Render(src string) (template.HTML, error) {
	var buf bytes.Buffer
	if err := m.md.Convert([]byte(src), &buf); err != nil {
		return "", errors.WrapError(err, errors.CategoryRender, "convert markdown copy").Fatal().Build()
	}
	return template.HTML(buf.String()), nil //nolint:gosec // trusted site copy
}

// RenderScaled converts src and scales every dollar amount in the result by m.
func (m *Markdown) RenderScaled(src string, mult pricing.Multiplier) (template.HTML, error) {
	out, err := m.Render(src)
	if err != nil {
		return "", err
	}
	return template.HTML(pricing.ScaleEmbeddedAmounts(string(out), mult)), nil //nolint:gosec // trusted site copy
}
