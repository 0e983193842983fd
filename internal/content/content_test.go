package content

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/sitegen/internal/pricing"
)

func TestLocationPhrase(t *testing.T) {
	assert.Equal(t, " in Austin, TX", CityLocation("Austin", "TX").Phrase(""))
	assert.Equal(t, " in Texas", StateLocation("TX", "Texas").Phrase(""))
	assert.Equal(t, " nationwide", Location{}.Phrase(" nationwide"))
	assert.Equal(t, "Austin, TX", CityLocation("Austin", "TX").Label())
	assert.Equal(t, "", Location{}.Label())
}

func TestFill(t *testing.T) {
	text := "Services{loc} today"
	assert.Equal(t, "Services in Austin, TX today", Fill(text, CityLocation("Austin", "TX")))
	assert.Equal(t, "Services today", Fill(text, Location{}))
	assert.Equal(t, "Services nationwide today", FillAbout(text, Location{}))
	assert.Equal(t, "Services in Texas today", FillAbout(text, StateLocation("TX", "Texas")))
}

func TestLocationCost(t *testing.T) {
	h2, p := LocationCost(
		"How Much Does It Cost{loc}?",
		"Costs{loc} range between {cost_lo} and {cost_hi} & more.",
		CityLocation("Austin", "TX"),
		pricing.Range{Low: 88, High: 2750},
	)
	assert.Equal(t, "How Much Does It Cost in Austin, TX?", h2)
	assert.Equal(t, "Costs in Austin, TX range between <strong>$88</strong> and <strong>$2,750</strong> &amp; more.", string(p))
}

func TestLocationCostEscapesCityNames(t *testing.T) {
	_, p := LocationCost("", "{loc}", CityLocation("<b>", "TX"), pricing.Range{Low: 1, High: 2})
	assert.Equal(t, " in &lt;b&gt;, TX", string(p))
}

func TestClampTitle(t *testing.T) {
	assert.Equal(t, "Short", ClampTitle("Short", 70))

	long := strings.Repeat("abcdefghi ", 10)
	got := ClampTitle(long, 70)
	assert.True(t, strings.HasSuffix(got, Ellipsis))
	assert.LessOrEqual(t, utf8.RuneCountInString(got), 70)

	exact := strings.Repeat("é", 70)
	assert.Equal(t, exact, ClampTitle(exact, 70))
	assert.Equal(t, strings.Repeat("é", 69)+Ellipsis, ClampTitle(exact+"é", 70))

	// Trailing spaces before the cut are dropped.
	assert.Equal(t, "ab"+Ellipsis, ClampTitle("ab   cdef", 4))
}

func TestFilenameToAlt(t *testing.T) {
	assert.Equal(t, "Man performing emergency maintenance", FilenameToAlt("man-performing-emergency-maintenance.webp"))
	assert.Equal(t, "Hero image", FilenameToAlt("Hero_Image_2024.PNG"))
	assert.Equal(t, "", FilenameToAlt(""))
}

func TestMarkdownTables(t *testing.T) {
	html, err := NewMarkdown().Render(DefaultCopy().CostBody)
	require.NoError(t, err)

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(string(html)))
	require.NoError(t, err)
	assert.Equal(t, 1, doc.Find("table").Length())
	assert.Equal(t, "$100–$250", doc.Find("tbody tr").First().Find("td").Eq(1).Text())
}

func TestMarkdownRenderScaled(t *testing.T) {
	html, err := NewMarkdown().RenderScaled("Typical: $100–$250, rarely $1,500.", 2.0)
	require.NoError(t, err)
	assert.Contains(t, string(html), "Typical: $200–$500, rarely $3,000.")

	same, err := NewMarkdown().RenderScaled("Typical: $100–$250", pricing.Identity)
	require.NoError(t, err)
	assert.Contains(t, string(same), "$100–$250")
}

func TestWithDefaultsKeepsOverrides(t *testing.T) {
	c := Copy{CostTitle: "Leak Repair Cost", Sections: []Section{{Heading: "H", Body: "B"}}}.WithDefaults()
	assert.Equal(t, "Leak Repair Cost", c.CostTitle)
	assert.Len(t, c.Sections, 1)
	assert.Equal(t, DefaultCopy().H1Title, c.H1Title)
	assert.NotEmpty(t, c.Contact.WhyBullets)
	assert.Equal(t, DefaultCopy().Descriptions.Contact, c.Descriptions.Contact)
}
