package site

import (
	"html/template"
	"path"
	"strings"

	"git.home.luguber.info/inful/sitegen/internal/cities"
	"git.home.luguber.info/inful/sitegen/internal/content"
	"git.home.luguber.info/inful/sitegen/internal/manifest"
	"git.home.luguber.info/inful/sitegen/internal/render"
	"git.home.luguber.info/inful/sitegen/internal/sitemode"
	"git.home.luguber.info/inful/sitegen/internal/urls"
)

// Listing headings.
const (
	serviceAreaHeading = "Our Service Area"
	citiesIntro        = "We provide services nationwide, including in the following cities:"
	statesIntro        = "We provide services nationwide, including in the following states:"
	costCitiesIntro    = "See local price ranges by city:"
	stateCitiesIntro   = "Choose your city to see local details and typical pricing ranges."
)

// Composer is the immutable input of page composition.
type Composer struct {
	Brand         string
	Copy          content.Copy
	Image         string
	Favicons      []string
	TitleMaxRunes int
}

// composer maps manifest pages to render pages for one build.
type composer struct {
	Composer
	store *cities.Store
	r     *urls.Resolver
	md    *content.Markdown
	nav   []render.NavItem
	cta   *render.Link
	icons render.Icons
	image *render.Image
}

func newComposer(c Composer, store *cities.Store, r *urls.Resolver) *composer {
	cp := &composer{Composer: c, store: store, r: r, md: content.NewMarkdown()}
	feats := r.Mode().Features()
	cp.nav = append(cp.nav, render.NavItem{Link: render.Link{Href: r.HomePath(), Label: "Home"}})
	if feats.Cost {
		cp.nav = append(cp.nav, render.NavItem{Link: render.Link{Href: r.CostIndexPath(), Label: "Cost"}})
	}
	if feats.HowTo {
		cp.nav = append(cp.nav, render.NavItem{Link: render.Link{Href: r.HowToPath(), Label: "How-To"}})
	}
	if feats.Contact {
		cp.cta = &render.Link{Href: r.ContactPath(), Label: c.Copy.CTAText}
	}
	cp.icons = iconsFor(c.Favicons, r.AssetHref)
	if c.Image != "" {
		cp.image = &render.Image{Src: r.AssetHref(c.Image), Alt: content.FilenameToAlt(c.Image)}
	}
	return cp
}

// navFor marks the nav item matching kind as current.
func (c *composer) navFor(kind sitemode.PageKind) render.Nav {
	current := kind.NavKey()
	keys := map[string]string{
		c.r.HomePath():      "home",
		c.r.CostIndexPath(): "cost",
		c.r.HowToPath():     "howto",
	}
	items := make([]render.NavItem, len(c.nav))
	for i, it := range c.nav {
		it.Current = keys[it.Href] == current
		items[i] = it
	}
	return render.Nav{Home: c.r.HomePath(), Items: items, CTA: c.cta}
}

// Page composes the render input of p.
func (c *composer) Page(p manifest.Page) (render.Page, error) {
	cp := c.Copy
	loc := p.Location
	out := render.Page{
		Canonical: p.Canonical,
		Brand:     c.Brand,
		Nav:       c.navFor(p.Kind),
		Icons:     c.icons,
		Image:     c.image,
		FooterCTA: true,
	}

	switch p.Kind {
	case sitemode.KindHome:
		out.Title = cp.H1Title
		out.Description = content.Fill(cp.Descriptions.Home, loc)
		c.overview(&out, p)
		if p.Host == "" && c.r.Mode().Pages().CityLinksOnHome {
			out.Listing = c.homeListing()
		}
	case sitemode.KindState:
		out.Title = cp.H1Short + loc.Phrase("")
		out.Description = content.Fill(cp.Descriptions.State, loc)
		c.overview(&out, p)
		out.Listing = c.stateListing(loc)
	case sitemode.KindCity:
		out.Title = cp.H1Short + loc.Phrase("")
		out.Description = content.Fill(cp.Descriptions.City, loc)
		c.overview(&out, p)
	case sitemode.KindCostIndex:
		out.Title = cp.CostTitle
		out.Description = content.Fill(cp.Descriptions.Cost, loc)
		guide, err := c.md.Render(cp.CostBody)
		if err != nil {
			return render.Page{}, err
		}
		out.Guide = guide
		if c.r.Mode().Pages().CityIndexOnCost {
			out.Listing = c.costListing()
		}
	case sitemode.KindCityCost:
		out.Title = cp.CostTitle + loc.Phrase("")
		out.Description = content.Fill(cp.Descriptions.CostCity, loc)
		out.LocationCost = c.costBlock(p)
		guide, err := c.md.RenderScaled(cp.CostBody, p.Multiplier)
		if err != nil {
			return render.Page{}, err
		}
		out.Guide = guide
	case sitemode.KindHowTo:
		out.Title = cp.HowToTitle
		out.Description = content.Fill(cp.Descriptions.HowTo, loc)
		guide, err := c.md.Render(cp.HowToBody)
		if err != nil {
			return render.Page{}, err
		}
		out.Guide = guide
	case sitemode.KindContact, sitemode.KindCityContact:
		out.Title = cp.Contact.Heading
		out.Description = content.Fill(cp.Descriptions.Contact, loc)
		out.Subheading = cp.Contact.Subheading
		out.Image = nil
		out.FooterCTA = false
		out.Contact = &render.Contact{
			Embed:      template.HTML(cp.Contact.Embed), //nolint:gosec // trusted site copy
			WhyTitle:   cp.Contact.WhyTitle,
			WhyBullets: cp.Contact.WhyBullets,
		}
	}
	out.Title = content.ClampTitle(out.Title, c.TitleMaxRunes)
	return out, nil
}

// overview fills the about text, the general sections and the local cost.
func (c *composer) overview(out *render.Page, p manifest.Page) {
	out.About = content.FillAbout(c.Copy.About, p.Location)
	out.Sections = make([]content.Section, len(c.Copy.Sections))
	for i, s := range c.Copy.Sections {
		out.Sections[i] = content.Section{
			Heading: content.Fill(s.Heading, p.Location),
			Body:    content.Fill(s.Body, p.Location),
		}
	}
	out.LocationCost = c.costBlock(p)
}

func (c *composer) costBlock(p manifest.Page) *render.CostBlock {
	h, body := content.LocationCost(c.Copy.LocationCostHeading, c.Copy.LocationCostBody, p.Location, p.Price)
	return &render.CostBlock{Heading: h, Body: body}
}

func (c *composer) homeListing() *render.Listing {
	if c.r.Mode() == sitemode.State {
		l := &render.Listing{Heading: serviceAreaHeading, Intro: statesIntro}
		for _, st := range c.store.States() {
			l.Links = append(l.Links, render.Link{Href: c.r.StatePath(st), Label: cities.StateName(st)})
		}
		return l
	}
	l := &render.Listing{Heading: serviceAreaHeading, Intro: citiesIntro}
	for _, rec := range c.store.Records() {
		l.Links = append(l.Links, render.Link{Href: c.r.CityHref(rec.City, rec.State), Label: rec.City + ", " + rec.State})
	}
	return l
}

func (c *composer) stateListing(loc content.Location) *render.Listing {
	l := &render.Listing{Heading: "Cities we serve in " + loc.Label(), Intro: stateCitiesIntro}
	for _, rec := range c.store.InState(loc.State) {
		l.Links = append(l.Links, render.Link{Href: c.r.CityHref(rec.City, rec.State), Label: rec.City + ", " + rec.State})
	}
	return l
}

func (c *composer) costListing() *render.Listing {
	l := &render.Listing{Heading: serviceAreaHeading, Intro: costCitiesIntro}
	for _, rec := range c.store.Records() {
		l.Links = append(l.Links, render.Link{Href: c.r.CostCityHref(rec.City, rec.State), Label: rec.City + ", " + rec.State})
	}
	return l
}

// iconsFor assigns favicon files to their link slots by file name.
func iconsFor(files []string, href func(string) string) render.Icons {
	var icons render.Icons
	for _, f := range files {
		name := strings.ToLower(path.Base(f))
		switch {
		case strings.HasPrefix(name, "apple-touch"):
			icons.AppleTouch = href(f)
		case strings.HasSuffix(name, ".ico"):
			icons.ICO = href(f)
		case strings.HasSuffix(name, ".svg"):
			icons.SVG = href(f)
		case strings.Contains(name, "16x16"):
			icons.PNG16 = href(f)
		case strings.Contains(name, "32x32"):
			icons.PNG32 = href(f)
		}
	}
	return icons
}
