package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"

	"git.home.luguber.info/inful/sitegen/internal/foundation/errors"
	"git.home.luguber.info/inful/sitegen/internal/manifest"
	"git.home.luguber.info/inful/sitegen/internal/pricing"
	"git.home.luguber.info/inful/sitegen/internal/site"
)

// PlanCmd implements the 'plan' command.
type PlanCmd struct {
	SiteFlags `embed:""`

	Page string `help:"Show only the page written to this output file, e.g. austin-tx/index.html"`
}

func (p *PlanCmd) Run(g *Global, root *CLI) error {
	cfg, err := loadConfig(root, p.SiteFlags)
	if err != nil {
		return err
	}
	plan, err := site.New(cfg).Plan(g.Ctx)
	if err != nil {
		return err
	}
	if p.Page != "" {
		page, ok := plan.Manifest.Lookup(strings.TrimPrefix(p.Page, "/"))
		if !ok {
			return errors.NewError(errors.CategoryNotFound, "no page is written to this output file").
				WithContext("path", p.Page).Build()
		}
		writePage(g.Out, page)
		return nil
	}
	writePlan(g.Out, plan.Manifest)
	return nil
}

func priceRange(r pricing.Range) string {
	return pricing.FormatDollars(r.Low) + "–" + pricing.FormatDollars(r.High)
}

// writePage prints the resolved fields of a single page.
func writePage(w io.Writer, p manifest.Page) {
	_, _ = fmt.Fprintf(w, "source:     %s\n", p.Source())
	_, _ = fmt.Fprintf(w, "output:     %s\n", p.OutputFile())
	_, _ = fmt.Fprintf(w, "canonical:  %s\n", p.Canonical)
	if p.Host != "" {
		_, _ = fmt.Fprintf(w, "host:       %s\n", p.Host)
	}
	_, _ = fmt.Fprintf(w, "multiplier: %s\n", strconv.FormatFloat(float64(p.Multiplier), 'f', -1, 64))
	_, _ = fmt.Fprintf(w, "price:      %s\n", priceRange(p.Price))
}

// writePlan prints one row per page followed by the sitemap locations.
func writePlan(w io.Writer, m *manifest.Manifest) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Kind", "Output", "Canonical", "Price"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)
	for _, p := range m.Pages {
		table.Append([]string{
			string(p.Kind),
			p.OutputFile(),
			p.Canonical,
			priceRange(p.Price),
		})
	}
	table.SetFooter([]string{m.Mode.String(), strconv.Itoa(len(m.Pages)) + " pages", strconv.Itoa(len(m.Sitemaps)) + " sitemaps", ""})
	table.Render()

	for _, sm := range m.Sitemaps {
		loc := sm.URL
		if loc == "" {
			loc = "(no absolute URL)"
		}
		_, _ = fmt.Fprintf(w, "sitemap %s -> %s (%d urls)\n", sm.Dir, loc, len(sm.URLs))
	}
}
