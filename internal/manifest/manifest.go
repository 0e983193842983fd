// Package manifest enumerates every page a build emits for the selected mode,
// together with the sitemap, robots and host-routing documents derived from
// the pages' canonical URLs. It performs no I/O.
package manifest

import (
	"path"
	"strconv"
	"strings"

	"git.home.luguber.info/inful/sitegen/internal/cities"
	"git.home.luguber.info/inful/sitegen/internal/content"
	"git.home.luguber.info/inful/sitegen/internal/foundation/errors"
	"git.home.luguber.info/inful/sitegen/internal/pricing"
	"git.home.luguber.info/inful/sitegen/internal/sitemode"
	"git.home.luguber.info/inful/sitegen/internal/slug"
	"git.home.luguber.info/inful/sitegen/internal/urls"
)

// Page describes one page instance.
type Page struct {
	Kind      sitemode.PageKind
	Path      string // output directory under the build root, "/..." ending in "/"
	Canonical string
	// Host is the city host label in subdomain mode, "" for the root host.
	Host     string
	Location content.Location
	// Record is set for per-city pages.
	Record     *cities.Record
	Multiplier pricing.Multiplier
	Price      pricing.Range
}

// OutputFile is the page's index.html relative to the build root.
func (p Page) OutputFile() string {
	return strings.TrimPrefix(path.Join(p.Path, "index.html"), "/")
}

// Sitemap is one sitemap.xml/robots.txt pair.
type Sitemap struct {
	Dir  string // "/" or "/{label}/"
	Host string
	URL  string // absolute URL of this sitemap.xml
	URLs []string
}

// Manifest is the complete page set of one build.
type Manifest struct {
	Mode     sitemode.Mode
	Pages    []Page
	Sitemaps []Sitemap
}

// Build enumerates the page set for the resolver's mode.
func Build(store *cities.Store, r *urls.Resolver, base pricing.Range) (*Manifest, error) {
	mode := r.Mode()
	if err := checkHostLabels(store, r); err != nil {
		return nil, err
	}

	b := &builder{store: store, r: r, base: base}
	set := mode.Pages()
	for _, kind := range set.Root {
		b.root(kind)
	}
	switch {
	case len(set.PerState) > 0:
		for _, st := range store.States() {
			for _, kind := range set.PerState {
				b.state(kind, st)
			}
			for _, rec := range store.InState(st) {
				for _, kind := range set.PerCity {
					b.city(kind, rec)
				}
			}
		}
	case set.PerHostSitemaps:
		for _, rec := range store.Records() {
			for _, kind := range set.PerCity {
				b.city(kind, rec)
			}
		}
	default:
		for _, kind := range set.PerCity {
			for _, rec := range store.Records() {
				b.city(kind, rec)
			}
		}
	}

	m := &Manifest{Mode: mode, Pages: b.pages}
	if err := m.checkCollisions(); err != nil {
		return nil, err
	}
	m.Sitemaps = buildSitemaps(m.Pages, r, set.PerHostSitemaps)
	return m, nil
}

type builder struct {
	store *cities.Store
	r     *urls.Resolver
	base  pricing.Range
	pages []Page
}

func (b *builder) add(p Page) {
	if p.Multiplier == 0 {
		p.Multiplier = pricing.Identity
	}
	p.Price = pricing.ScaleRange(b.base, p.Multiplier)
	b.pages = append(b.pages, p)
}

func (b *builder) root(kind sitemode.PageKind) {
	var p string
	switch kind {
	case sitemode.KindHome:
		p = b.r.HomePath()
	case sitemode.KindCostIndex:
		p = b.r.CostIndexPath()
	case sitemode.KindHowTo:
		p = b.r.HowToPath()
	case sitemode.KindContact:
		p = b.r.ContactPath()
	default:
		return
	}
	b.add(Page{Kind: kind, Path: p, Canonical: b.r.Canonical(p)})
}

func (b *builder) state(kind sitemode.PageKind, st string) {
	idx, _ := b.store.StateIndex(st)
	p := b.r.StatePath(st)
	b.add(Page{
		Kind:       kind,
		Path:       p,
		Canonical:  b.r.Canonical(p),
		Location:   content.StateLocation(st, cities.StateName(st)),
		Multiplier: pricing.Multiplier(idx),
	})
}

func (b *builder) city(kind sitemode.PageKind, rec cities.Record) {
	page := Page{
		Kind:       kind,
		Location:   content.CityLocation(rec.City, rec.State),
		Record:     &rec,
		Multiplier: pricing.Multiplier(rec.CostIndex),
	}
	if b.r.Mode() == sitemode.Subdomain {
		page.Host = b.r.HostLabel(rec.City, rec.State)
	}
	switch kind {
	case sitemode.KindCity:
		page.Path, page.Canonical = b.r.CityPath(rec.City, rec.State), b.r.CityCanonical(rec.City, rec.State)
	case sitemode.KindCityCost:
		page.Path, page.Canonical = b.r.CostCityPath(rec.City, rec.State), b.r.CostCityCanonical(rec.City, rec.State)
	case sitemode.KindCityContact:
		page.Path, page.Canonical = b.r.CityContactPath(rec.City, rec.State), b.r.CityContactCanonical(rec.City, rec.State)
		page.Multiplier = pricing.Identity
	default:
		return
	}
	b.add(page)
}

// checkHostLabels rejects cities whose subdomain label is not a DNS label.
func checkHostLabels(store *cities.Store, r *urls.Resolver) error {
	if r.Mode() != sitemode.Subdomain {
		return nil
	}
	for _, rec := range store.Records() {
		label := r.HostLabel(rec.City, rec.State)
		if !slug.ValidHostLabel(label) {
			return errors.ConfigError("city cannot be used as a subdomain label").
				WithContext("value", label).
				WithContext("row", rec.Row).
				Build()
		}
	}
	return nil
}

// checkCollisions fails when two pages would write the same output directory.
func (m *Manifest) checkCollisions() error {
	sources := make([]string, 0, len(m.Pages))
	pathOf := make(map[string]string, len(m.Pages))
	for _, p := range m.Pages {
		src := p.Source()
		sources = append(sources, src)
		pathOf[src] = p.Path
	}
	collisions := slug.Collisions(sources, func(src string) string { return pathOf[src] })
	if len(collisions) == 0 {
		return nil
	}
	c := collisions[0]
	return errors.ValidationError("distinct pages resolve to the same output path").
		WithContext("path", c.Slug).
		WithContext("value", strings.Join(c.Sources, " | ")).
		WithContext("collisions", len(collisions)).
		Build()
}

// Source names the page for error messages: "city Austin, TX (row 2)".
func (p Page) Source() string {
	var b strings.Builder
	b.WriteString(string(p.Kind))
	if label := p.Location.Label(); label != "" {
		b.WriteString(" ")
		b.WriteString(label)
	}
	if p.Record != nil {
		b.WriteString(" (row ")
		b.WriteString(strconv.Itoa(p.Record.Row))
		b.WriteString(")")
	}
	return b.String()
}

// CountByKind tallies pages per kind.
func (m *Manifest) CountByKind() map[sitemode.PageKind]int {
	out := make(map[sitemode.PageKind]int)
	for _, p := range m.Pages {
		out[p.Kind]++
	}
	return out
}

// Lookup returns the page written to the build-relative output file.
func (m *Manifest) Lookup(outputFile string) (Page, bool) {
	for _, p := range m.Pages {
		if p.OutputFile() == outputFile {
			return p, true
		}
	}
	return Page{}, false
}
