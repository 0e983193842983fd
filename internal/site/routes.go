package site

import (
	"log/slog"
	"path/filepath"

	"git.home.luguber.info/inful/sitegen/internal/logfields"
	"git.home.luguber.info/inful/sitegen/internal/manifest"
	"git.home.luguber.info/inful/sitegen/internal/sitemode"
)

// writeRoutes writes the host-routing rules for subdomain builds next to the
// promoted output.
func (g *Generator) writeRoutes(p *Plan) error {
	if p == nil || p.Manifest.Mode != sitemode.Subdomain {
		return nil
	}
	data, err := manifest.RoutesJSON(p.Resolver.BaseDomain())
	if err != nil {
		return err
	}
	file := g.cfg.Output.RoutesFile
	if err := writeFile(filepath.Dir(file), filepath.Base(file), data); err != nil {
		return err
	}
	slog.Info("Wrote routing rules", logfields.File(file), slog.String("domain", p.Resolver.BaseDomain()))
	return nil
}
