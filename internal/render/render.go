// Package render turns a page description into the final HTML document.
package render

import (
	"bytes"
	_ "embed"
	"html/template"
	"io"

	"git.home.luguber.info/inful/sitegen/internal/content"
	"git.home.luguber.info/inful/sitegen/internal/foundation/errors"
)

//go:embed templates/page.html.tmpl
var pageTemplate string

//go:embed templates/site.css
var siteCSS string

// Link is an anchor.
type Link struct {
	Href  string
	Label string
}

// NavItem is a navigation entry; Current marks it aria-current="page".
type NavItem struct {
	Link
	Current bool
}

// Nav is the primary navigation and footer link set.
type Nav struct {
	Home  string
	Items []NavItem
	CTA   *Link
}

// Icons are the favicon hrefs.
type Icons struct {
	ICO, SVG, PNG16, PNG32, AppleTouch string
}

// Image is the hero image.
type Image struct {
	Src string
	Alt string
}

// CostBlock is the localized cost heading and paragraph.
type CostBlock struct {
	Heading string
	Body    template.HTML
}

// Listing is a grid of links (cities or states).
type Listing struct {
	Heading string
	Intro   string
	Links   []Link
}

// Contact is the estimate form block.
type Contact struct {
	Embed      template.HTML
	WhyTitle   string
	WhyBullets []string
}

// Page is everything the layout needs. Body blocks render in field order and
// nil/empty blocks are skipped.
type Page struct {
	Title       string
	Description string
	Canonical   string
	Brand       string
	Nav         Nav
	Icons       Icons
	Image       *Image
	Subheading  string

	About        string
	Sections     []content.Section
	LocationCost *CostBlock
	Guide        template.HTML
	Listing      *Listing
	Contact      *Contact

	FooterCTA bool
}

// Renderer executes the embedded page layout.
type Renderer struct {
	tmpl *template.Template
}

// New parses the embedded templates.
func New() (*Renderer, error) {
	tmpl, err := template.New("page").Funcs(template.FuncMap{
		"css": func() template.CSS { return template.CSS(siteCSS) }, //nolint:gosec // embedded stylesheet
	}).Parse(pageTemplate)
	if err != nil {
		return nil, errors.WrapError(err, errors.CategoryInternal, "parse page template").Fatal().Build()
	}
	return &Renderer{tmpl: tmpl}, nil
}

// Render writes the HTML document for p to w.
func (r *Renderer) Render(w io.Writer, p Page) error {
	if p.Title == "" {
		return errors.RenderError("page title must not be empty").WithContext("path", p.Canonical).Build()
	}
	if err := r.tmpl.Execute(w, p); err != nil {
		return errors.WrapError(err, errors.CategoryRender, "execute page template").
			Fatal().WithContext("path", p.Canonical).Build()
	}
	return nil
}

// Bytes renders p into a new buffer.
func (r *Renderer) Bytes(p Page) ([]byte, error) {
	var buf bytes.Buffer
	if err := r.Render(&buf, p); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
