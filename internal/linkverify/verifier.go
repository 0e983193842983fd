// Package linkverify checks a rendered site against its manifest: every page
// must exist, declare exactly the manifest's canonical URL, and link only to
// pages and assets the build produced.
package linkverify

import (
	"context"
	"fmt"
	"net/url"
	"path/filepath"
	"strings"

	"git.home.luguber.info/inful/sitegen/internal/foundation/errors"
	"git.home.luguber.info/inful/sitegen/internal/manifest"
)

// localOrigin stands in for the site host when canonicals are root-relative.
const localOrigin = "https://site.invalid"

// Issue is one verification failure.
type Issue struct {
	Page   string // output file relative to the build root
	Link   string // offending URL, empty for page-level issues
	Reason string
}

func (i Issue) String() string {
	if i.Link == "" {
		return i.Page + ": " + i.Reason
	}
	return fmt.Sprintf("%s: %s (%s)", i.Page, i.Reason, i.Link)
}

// Report summarizes a verification run.
type Report struct {
	Pages  int
	Links  int
	Issues []Issue
}

// OK reports whether no issues were found.
func (r *Report) OK() bool { return len(r.Issues) == 0 }

// Err converts a failed report into a validation error naming the first issue.
func (r *Report) Err() error {
	if r.OK() {
		return nil
	}
	first := r.Issues[0]
	return errors.ValidationError("link verification failed").
		WithContext("path", first.Page).
		WithContext("value", first.String()).
		WithContext("issues", len(r.Issues)).
		Build()
}

// Verifier checks output directories against one manifest.
type Verifier struct {
	m     *manifest.Manifest
	known map[string]bool
	// internal hosts: the origin host and, in subdomain mode, every city host
	hosts map[string]bool
}

// New builds a verifier for m. assetHrefs are the hrefs of copied static files.
func New(m *manifest.Manifest, assetHrefs []string) *Verifier {
	v := &Verifier{m: m, known: make(map[string]bool), hosts: map[string]bool{hostOf(localOrigin): true}}
	add := func(u string) {
		abs := absolute(u)
		v.known[abs] = true
		if h := hostOf(abs); h != "" {
			v.hosts[h] = true
		}
	}
	for _, p := range m.Pages {
		add(p.Canonical)
	}
	for _, a := range assetHrefs {
		add(a)
	}
	for _, sm := range m.Sitemaps {
		if sm.URL != "" {
			add(sm.URL)
		}
	}
	return v
}

// VerifyDir checks every manifest page under dir.
func (v *Verifier) VerifyDir(ctx context.Context, dir string) (*Report, error) {
	report := &Report{}
	for _, page := range v.m.Pages {
		if err := ctx.Err(); err != nil {
			return report, err
		}
		report.Pages++
		out := page.OutputFile()
		doc, err := ExtractFile(filepath.Join(dir, filepath.FromSlash(out)))
		if err != nil {
			if errors.HasCategory(err, errors.CategoryFileSystem) {
				report.Issues = append(report.Issues, Issue{Page: out, Reason: "page missing"})
				continue
			}
			return report, err
		}
		v.verifyPage(page, doc, report)
	}
	return report, nil
}

func (v *Verifier) verifyPage(page manifest.Page, doc *Document, report *Report) {
	out := page.OutputFile()
	switch {
	case len(doc.Canonicals) != 1:
		report.Issues = append(report.Issues, Issue{Page: out, Reason: fmt.Sprintf("expected one canonical tag, found %d", len(doc.Canonicals))})
	case doc.Canonicals[0] != page.Canonical:
		report.Issues = append(report.Issues, Issue{Page: out, Link: doc.Canonicals[0], Reason: "canonical does not match " + page.Canonical})
	}
	if strings.TrimSpace(doc.Title) == "" {
		report.Issues = append(report.Issues, Issue{Page: out, Reason: "empty title"})
	}

	base, err := url.Parse(absolute(page.Canonical))
	if err != nil {
		report.Issues = append(report.Issues, Issue{Page: out, Link: page.Canonical, Reason: "unparsable canonical"})
		return
	}
	for _, link := range doc.Links {
		if !shouldVerify(link.URL) {
			continue
		}
		report.Links++
		ref, err := url.Parse(link.URL)
		if err != nil {
			report.Issues = append(report.Issues, Issue{Page: out, Link: link.URL, Reason: "unparsable link"})
			continue
		}
		target := base.ResolveReference(ref)
		if !v.hosts[strings.ToLower(target.Host)] {
			continue // external
		}
		target.Fragment, target.RawQuery = "", ""
		if !v.known[target.String()] {
			report.Issues = append(report.Issues, Issue{Page: out, Link: link.URL, Reason: "broken internal link"})
		}
	}
}

func absolute(u string) string {
	if strings.HasPrefix(u, "http://") || strings.HasPrefix(u, "https://") {
		return u
	}
	return localOrigin + u
}

func hostOf(u string) string {
	parsed, err := url.Parse(u)
	if err != nil {
		return ""
	}
	return strings.ToLower(parsed.Host)
}
