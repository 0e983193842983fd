// Package urls is the single source of truth for every output path, link and
// canonical URL in a generated site.
//
// Output paths are always root-relative directories ending in "/" under the
// build root. Canonical URLs are absolute when an origin is configured. In
// subdomain mode each city is served from its own host, so its canonical is
// https://{label}.{base}/ while its files live under /{label}/ in the build
// root.
package urls

import (
	"net/url"
	"strings"

	"git.home.luguber.info/inful/sitegen/internal/foundation/errors"
	"git.home.luguber.info/inful/sitegen/internal/sitemode"
	"git.home.luguber.info/inful/sitegen/internal/slug"
)

// Config is the immutable input of a Resolver.
type Config struct {
	Mode sitemode.Mode
	// Origin is scheme+host, e.g. "https://example.com". Empty keeps
	// canonicals root-relative.
	Origin string
	// SubdomainBase overrides the host that city labels are prefixed to.
	SubdomainBase string
	// CostSlug and HowToSlug name the guide directories ("emergency-maintenance-cost").
	CostSlug  string
	HowToSlug string
}

// Resolver computes paths and URLs for one mode.
type Resolver struct {
	mode      sitemode.Mode
	origin    string
	base      string
	costSlug  string
	howToSlug string
}

// New validates cfg and returns a Resolver.
func New(cfg Config) (*Resolver, error) {
	if !cfg.Mode.Valid() {
		return nil, errors.ConfigError("resolver needs a valid site mode").
			WithContext("value", int(cfg.Mode)).Build()
	}
	origin, err := NormalizeOrigin(cfg.Origin)
	if err != nil {
		return nil, err
	}
	costSlug, howToSlug := slug.Slugify(cfg.CostSlug), slug.Slugify(cfg.HowToSlug)
	if costSlug == "" || howToSlug == "" {
		return nil, errors.ConfigError("cost and how-to page slugs must not be empty").
			WithContext("value", cfg.CostSlug+"|"+cfg.HowToSlug).Build()
	}
	if costSlug == "contact" || howToSlug == "contact" || costSlug == howToSlug {
		return nil, errors.ConfigError("cost and how-to page slugs must differ from each other and from contact").
			WithContext("value", costSlug+"|"+howToSlug).Build()
	}

	r := &Resolver{mode: cfg.Mode, origin: origin, costSlug: costSlug, howToSlug: howToSlug}
	if origin != "" {
		u, _ := url.Parse(origin)
		r.base = strings.Trim(strings.ToLower(u.Host), ".")
	}
	if b := strings.Trim(strings.ToLower(strings.TrimSpace(cfg.SubdomainBase)), "."); b != "" {
		r.base = b
	}
	return r, nil
}

// NormalizeOrigin checks that origin is an absolute http(s) URL with a host
// and no path, query or fragment, and strips a trailing slash. An empty
// origin is returned as is.
func NormalizeOrigin(origin string) (string, error) {
	origin = strings.TrimRight(strings.TrimSpace(origin), "/")
	if origin == "" {
		return "", nil
	}
	u, err := url.Parse(origin)
	if err != nil {
		return "", errors.WrapError(err, errors.CategoryConfig, "invalid site origin").
			Fatal().WithContext("value", origin).Build()
	}
	if (u.Scheme != "https" && u.Scheme != "http") || u.Host == "" || u.Path != "" || u.RawQuery != "" || u.Fragment != "" {
		return "", errors.ConfigError("site origin must be an absolute http(s) URL without a path").
			WithContext("value", origin).Build()
	}
	return strings.ToLower(u.Scheme) + "://" + strings.ToLower(u.Host), nil
}

// Mode returns the resolver's mode.
func (r *Resolver) Mode() sitemode.Mode { return r.mode }

// Origin returns the normalized site origin, possibly empty.
func (r *Resolver) Origin() string { return r.origin }

// BaseDomain is the host city labels are prefixed to in subdomain mode: the
// explicit override, else the origin's host, else "".
func (r *Resolver) BaseDomain() string { return r.base }

// Degraded reports whether subdomain canonicals fall back to root-relative
// paths because no base domain is known.
func (r *Resolver) Degraded() bool {
	return r.mode == sitemode.Subdomain && r.base == ""
}

func (r *Resolver) HomePath() string      { return "/" }
func (r *Resolver) ContactPath() string   { return "/contact/" }
func (r *Resolver) CostIndexPath() string { return "/" + r.costSlug + "/" }
func (r *Resolver) HowToPath() string     { return "/" + r.howToSlug + "/" }

// StatePath is the state index page, /{st}/.
func (r *Resolver) StatePath(state string) string {
	return "/" + slug.Slugify(state) + "/"
}

// HostLabel is the subdomain label for a city.
func (r *Resolver) HostLabel(city, state string) string {
	return slug.SubdomainLabel(city, state)
}

// CityPath is the output directory of a city page.
func (r *Resolver) CityPath(city, state string) string {
	switch r.mode {
	case sitemode.State:
		return "/" + slug.Slugify(state) + "/" + slug.Slugify(city) + "/"
	case sitemode.Subdomain:
		return "/" + r.HostLabel(city, state) + "/"
	default:
		return "/" + cityStateSlug(city, state) + "/"
	}
}

// CostCityPath is the output directory of a city's cost page: /cost/{city}-{st}/,
// or /{label}/{cost-slug}/ on the city's own host in subdomain mode.
func (r *Resolver) CostCityPath(city, state string) string {
	if r.mode == sitemode.Subdomain {
		return r.CityPath(city, state) + r.costSlug + "/"
	}
	return "/cost/" + cityStateSlug(city, state) + "/"
}

// CityContactPath is the output directory of a city host's contact page
// (subdomain mode).
func (r *Resolver) CityContactPath(city, state string) string {
	return r.CityPath(city, state) + "contact/"
}

// Canonical prefixes a root-relative path with the origin. Absolute URLs are
// returned unchanged and, without an origin, the path is returned as is.
func (r *Resolver) Canonical(pathOrURL string) string {
	if isAbsolute(pathOrURL) || r.origin == "" {
		return pathOrURL
	}
	return r.origin + pathOrURL
}

// CityCanonical is the canonical URL of a city page.
func (r *Resolver) CityCanonical(city, state string) string {
	if r.mode == sitemode.Subdomain {
		return r.HostURL(r.HostLabel(city, state), "/")
	}
	return r.Canonical(r.CityPath(city, state))
}

// CostCityCanonical is the canonical URL of a city's cost page.
func (r *Resolver) CostCityCanonical(city, state string) string {
	if r.mode == sitemode.Subdomain {
		return r.HostURL(r.HostLabel(city, state), "/"+r.costSlug+"/")
	}
	return r.Canonical(r.CostCityPath(city, state))
}

// CityContactCanonical is the canonical URL of a city host's contact page.
func (r *Resolver) CityContactCanonical(city, state string) string {
	return r.HostURL(r.HostLabel(city, state), "/contact/")
}

// HostURL returns the absolute https URL of hostPath on a city host. Without a base
// domain it degrades to the root-relative build path /{label}{hostPath}.
func (r *Resolver) HostURL(label, hostPath string) string {
	if r.base == "" {
		return "/" + label + hostPath
	}
	return "https://" + label + "." + r.base + hostPath
}

// CityHref is the link target for a city page from a listing.
func (r *Resolver) CityHref(city, state string) string {
	if r.mode == sitemode.Subdomain {
		return r.CityCanonical(city, state)
	}
	return r.CityPath(city, state)
}

// CostCityHref is the link target for a city's cost page from a listing.
func (r *Resolver) CostCityHref(city, state string) string {
	if r.mode == sitemode.Subdomain {
		return r.CostCityCanonical(city, state)
	}
	return r.CostCityPath(city, state)
}

// AssetHref is the link target for a static file copied to the build root.
// City hosts in subdomain mode route every path into their own directory, so
// assets are referenced absolutely on the root origin there.
func (r *Resolver) AssetHref(name string) string {
	p := "/" + strings.TrimLeft(name, "/")
	if r.mode == sitemode.Subdomain {
		return r.Canonical(p)
	}
	return p
}

// SitemapURL is the absolute URL of the sitemap in the build directory dir
// ("/" for the root, "/{label}/" for a city host). Robots files must name an
// absolute sitemap URL, so an error is returned when none can be formed.
func (r *Resolver) SitemapURL(dir string) (string, error) {
	var u string
	label := strings.Trim(dir, "/")
	switch {
	case label == "":
		u = r.Canonical("/sitemap.xml")
	case r.mode == sitemode.Subdomain && r.base != "":
		u = r.HostURL(label, "/sitemap.xml")
	default:
		u = r.Canonical("/" + label + "/sitemap.xml")
	}
	if !isAbsolute(u) {
		return "", errors.ConfigError("robots.txt needs an absolute sitemap URL; configure a site origin").
			WithContext("path", dir).Build()
	}
	return u, nil
}

func cityStateSlug(city, state string) string {
	return slug.Slugify(city) + "-" + slug.Slugify(state)
}

func isAbsolute(s string) bool {
	return strings.HasPrefix(s, "https://") || strings.HasPrefix(s, "http://")
}
