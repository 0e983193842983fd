package manifest

import (
	"bytes"
	"encoding/json"
	"encoding/xml"
	"regexp"

	"git.home.luguber.info/inful/sitegen/internal/foundation/errors"
	"git.home.luguber.info/inful/sitegen/internal/urls"
)

const sitemapNamespace = "http://www.sitemaps.org/schemas/sitemap/0.9"

type urlSet struct {
	XMLName xml.Name   `xml:"urlset"`
	Xmlns   string     `xml:"xmlns,attr"`
	URLs    []urlEntry `xml:"url"`
}

type urlEntry struct {
	Loc string `xml:"loc"`
}

// buildSitemaps groups canonicals into the root sitemap and, when perHost is
// set, one sitemap per city host. The root sitemap lists every page. URL is
// left empty when no absolute sitemap URL can be formed; Robots reports that.
func buildSitemaps(pages []Page, r *urls.Resolver, perHost bool) []Sitemap {
	rootURL, _ := r.SitemapURL("/")
	root := Sitemap{Dir: "/", URL: rootURL}
	var (
		hosts  []*Sitemap
		byHost = map[string]*Sitemap{}
	)
	for _, p := range pages {
		root.URLs = append(root.URLs, p.Canonical)
		if !perHost || p.Host == "" {
			continue
		}
		sm, ok := byHost[p.Host]
		if !ok {
			dir := "/" + p.Host + "/"
			u, _ := r.SitemapURL(dir)
			sm = &Sitemap{Dir: dir, Host: p.Host, URL: u}
			byHost[p.Host] = sm
			hosts = append(hosts, sm)
		}
		sm.URLs = append(sm.URLs, p.Canonical)
	}
	out := []Sitemap{root}
	for _, sm := range hosts {
		out = append(out, *sm)
	}
	return out
}

// Robots renders robots.txt for this sitemap's directory.
func (s Sitemap) Robots() (string, error) {
	if s.URL == "" {
		return "", errors.ConfigError("robots.txt needs an absolute sitemap URL; configure a site origin").
			WithContext("path", s.Dir).Build()
	}
	return RobotsTxt(s.URL), nil
}

// XML renders this sitemap's document.
func (s Sitemap) XML() ([]byte, error) { return SitemapXML(s.URLs) }

// SitemapXML renders the sitemap document, one <url><loc> per URL in order.
func SitemapXML(locs []string) ([]byte, error) {
	set := urlSet{Xmlns: sitemapNamespace, URLs: make([]urlEntry, 0, len(locs))}
	for _, u := range locs {
		set.URLs = append(set.URLs, urlEntry{Loc: u})
	}
	out, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		return nil, errors.WrapError(err, errors.CategoryInternal, "marshal sitemap").Fatal().Build()
	}
	return append(append([]byte(xml.Header), out...), '\n'), nil
}

// RobotsTxt allows everything and points at sitemapURL.
func RobotsTxt(sitemapURL string) string {
	return "User-agent: *\nAllow: /\nSitemap: " + sitemapURL + "\n"
}

type routesFile struct {
	Routes []route `json:"routes"`
}

type route struct {
	Src  string      `json:"src"`
	Has  []hostMatch `json:"has"`
	Dest string      `json:"dest"`
}

type hostMatch struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

// RoutesJSON renders the host-routing rules that serve {label}.{domain}/x
// from /{label}/x in the build root. "www" is never treated as a city.
func RoutesJSON(domain string) ([]byte, error) {
	if domain == "" {
		return nil, errors.ConfigError("routing rules need a domain; set a site origin or subdomain base").Build()
	}
	doc := routesFile{Routes: []route{{
		Src: "/(.*)",
		Has: []hostMatch{{
			Type:  "host",
			Value: `(?<city>(?!www$)[a-z0-9-]+)\.` + regexp.QuoteMeta(domain),
		}},
		Dest: "/$city/$1",
	}}}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return nil, errors.WrapError(err, errors.CategoryInternal, "marshal routing rules").Fatal().Build()
	}
	return buf.Bytes(), nil
}
