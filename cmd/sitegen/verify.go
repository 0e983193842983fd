package main

import (
	"fmt"

	"git.home.luguber.info/inful/sitegen/internal/site"
)

// VerifyCmd implements the 'verify' command.
type VerifyCmd struct {
	SiteFlags `embed:""`
}

func (v *VerifyCmd) Run(g *Global, root *CLI) error {
	cfg, err := loadConfig(root, v.SiteFlags)
	if err != nil {
		return err
	}
	report, err := site.New(cfg).Verify(g.Ctx)
	if err != nil {
		return err
	}
	for _, issue := range report.Issues {
		_, _ = fmt.Fprintln(g.Out, issue.String())
	}
	_, _ = fmt.Fprintf(g.Out, "Checked %d pages and %d links: %d issues\n", report.Pages, report.Links, len(report.Issues))
	return report.Err()
}
