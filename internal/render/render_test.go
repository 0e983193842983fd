package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/sitegen/internal/content"
	"git.home.luguber.info/inful/sitegen/internal/foundation/errors"
)

func samplePage() Page {
	return Page{
		Title:       "Emergency Maintenance Services in Austin, TX",
		Description: "Fast & local",
		Canonical:   "https://example.com/austin-tx/",
		Brand:       "Fix <It> Co",
		Nav: Nav{
			Home: "/",
			Items: []NavItem{
				{Link: Link{Href: "/", Label: "Home"}, Current: true},
				{Link: Link{Href: "/emergency-maintenance-cost/", Label: "Cost"}},
			},
			CTA: &Link{Href: "/contact/", Label: "Get Free Estimate"},
		},
		Icons: Icons{ICO: "/favicon.ico", SVG: "/favicon.svg", PNG16: "/favicon-16x16.png", PNG32: "/favicon-32x32.png", AppleTouch: "/apple-touch-icon.png"},
		Image: &Image{Src: "/hero.webp", Alt: "Hero"},
		About: "We help in Austin, TX.",
		Sections: []content.Section{
			{Heading: "Question?", Body: "Answer."},
		},
		LocationCost: &CostBlock{Heading: "Cost in Austin, TX?", Body: "From <strong>$88</strong>"},
		FooterCTA:    true,
	}
}

func renderDoc(t *testing.T, p Page) *goquery.Document {
	t.Helper()
	r, err := New()
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf, p))
	doc, err := goquery.NewDocumentFromReader(&buf)
	require.NoError(t, err)
	return doc
}

func TestRenderHead(t *testing.T) {
	doc := renderDoc(t, samplePage())
	assert.Equal(t, "Emergency Maintenance Services in Austin, TX", doc.Find("title").Text())
	assert.Equal(t, doc.Find("title").Text(), doc.Find("h1").Text())
	href, _ := doc.Find(`link[rel="canonical"]`).Attr("href")
	assert.Equal(t, "https://example.com/austin-tx/", href)
	desc, _ := doc.Find(`meta[name="description"]`).Attr("content")
	assert.Equal(t, "Fast & local", desc)
	icon, _ := doc.Find(`link[rel="apple-touch-icon"]`).Attr("href")
	assert.Equal(t, "/apple-touch-icon.png", icon)
	assert.Contains(t, doc.Find("style").Text(), "--cta:")
}

func TestRenderNav(t *testing.T) {
	doc := renderDoc(t, samplePage())
	current := doc.Find(`nav a[aria-current="page"]`)
	require.Equal(t, 1, current.Length())
	assert.Equal(t, "Home", current.Text())

	cta := doc.Find("nav a.btn")
	href, _ := cta.Attr("href")
	assert.Equal(t, "/contact/", href)
	assert.Equal(t, 2, doc.Find(".footer-links a").Length())
	assert.Equal(t, 1, doc.Find("footer a.btn").Length())
}

func TestRenderBodyBlocks(t *testing.T) {
	doc := renderDoc(t, samplePage())
	assert.Equal(t, "$88", doc.Find("main strong").Text())
	assert.Equal(t, []string{"Question?", "Cost in Austin, TX?"}, doc.Find("main h2").Map(func(_ int, s *goquery.Selection) string { return s.Text() }))
	alt, _ := doc.Find(".img img").Attr("alt")
	assert.Equal(t, "Hero", alt)
	assert.Equal(t, "Fix <It> Co", doc.Find(".brand span").Text())
}

func TestRenderContactAndListing(t *testing.T) {
	p := samplePage()
	p.Image, p.About, p.Sections, p.LocationCost, p.FooterCTA = nil, "", nil, nil, false
	p.Contact = &Contact{Embed: `<div id="nx_form"></div>`, WhyTitle: "Why", WhyBullets: []string{"a", "b"}}
	p.Listing = &Listing{Heading: "Our Service Area", Intro: "Cities", Links: []Link{{Href: "/austin-tx/", Label: "Austin, TX"}}}

	doc := renderDoc(t, p)
	assert.Equal(t, 0, doc.Find(".img").Length())
	assert.Equal(t, 1, doc.Find("#nx_form").Length())
	assert.Equal(t, 2, doc.Find(".why-item").Length())
	assert.Equal(t, 0, doc.Find("footer a.btn").Length())
	href, _ := doc.Find(".city-grid a").Attr("href")
	assert.Equal(t, "/austin-tx/", href)
}

func TestRenderRequiresTitle(t *testing.T) {
	r, err := New()
	require.NoError(t, err)
	p := samplePage()
	p.Title = ""
	_, err = r.Bytes(p)
	require.Error(t, err)
	assert.True(t, errors.HasCategory(err, errors.CategoryRender))
}

func TestRenderGuideIsRaw(t *testing.T) {
	p := samplePage()
	p.Guide = "<table><tr><td>$1</td></tr></table>"
	doc := renderDoc(t, p)
	assert.Equal(t, 1, doc.Find(".guide table").Length())
	assert.False(t, strings.Contains(doc.Text(), "&lt;table"))
}
