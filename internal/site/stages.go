package site

import (
	"context"
	"log/slog"
	"path"

	"git.home.luguber.info/inful/sitegen/internal/foundation/errors"
	"git.home.luguber.info/inful/sitegen/internal/linkverify"
	"git.home.luguber.info/inful/sitegen/internal/logfields"
	"git.home.luguber.info/inful/sitegen/internal/render"
)

// stageValidate loads the input and enumerates the manifest. Nothing is
// written before it succeeds.
func stageValidate(ctx context.Context, bs *BuildState) error {
	g := bs.Generator
	plan, err := g.Plan(ctx)
	if err != nil {
		return err
	}
	renderer, err := render.New()
	if err != nil {
		return err
	}
	bs.Plan, bs.renderer = plan, renderer
	bs.assetHrefs = g.assetHrefs(plan.Resolver)

	mode := plan.Manifest.Mode.String()
	if plan.Resolver.Degraded() {
		slog.Warn("No base domain for city hosts; city canonicals fall back to root-relative paths",
			logfields.Mode(mode))
		g.recorder.IncCanonicalFallback(mode)
		bs.Report.Degraded = true
	}

	bs.Report.Cities = plan.Store.Len()
	bs.Report.Pages = len(plan.Manifest.Pages)
	bs.Report.Sitemaps = len(plan.Manifest.Sitemaps)
	g.recorder.SetCities(plan.Store.Len())
	for kind, n := range plan.Manifest.CountByKind() {
		bs.Report.PagesByKind[string(kind)] = n
		g.recorder.AddPages(mode, string(kind), n)
	}
	return nil
}

func stagePrepareOutput(_ context.Context, bs *BuildState) error {
	return bs.Generator.beginStaging()
}

func stageCopyAssets(ctx context.Context, bs *BuildState) error {
	g := bs.Generator
	for _, name := range g.cfg.AssetFiles() {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := copyAsset(g.cfg.Assets.Directory, g.stageDir, name); err != nil {
			return err
		}
	}
	return nil
}

func stageRenderPages(ctx context.Context, bs *BuildState) error {
	g := bs.Generator
	comp := g.composer(bs.Plan)
	for _, p := range bs.Plan.Manifest.Pages {
		if err := ctx.Err(); err != nil {
			return err
		}
		rp, err := comp.Page(p)
		if err != nil {
			return err
		}
		data, err := bs.renderer.Bytes(rp)
		if err != nil {
			return err
		}
		if err := writeFile(g.stageDir, p.OutputFile(), data); err != nil {
			return err
		}
		slog.Debug("Rendered page", logfields.Kind(string(p.Kind)), logfields.Path(p.Path), logfields.Canonical(p.Canonical))
	}
	return nil
}

func stageWriteSitemaps(_ context.Context, bs *BuildState) error {
	g := bs.Generator
	for _, sm := range bs.Plan.Manifest.Sitemaps {
		xml, err := sm.XML()
		if err != nil {
			return err
		}
		robots, err := sm.Robots()
		if err != nil {
			return err
		}
		if err := writeFile(g.stageDir, path.Join(sm.Dir, "sitemap.xml"), xml); err != nil {
			return err
		}
		if err := writeFile(g.stageDir, path.Join(sm.Dir, "robots.txt"), []byte(robots)); err != nil {
			return err
		}
	}
	return nil
}

func stageVerifyLinks(ctx context.Context, bs *BuildState) error {
	report, err := linkverify.New(bs.Plan.Manifest, bs.assetHrefs).VerifyDir(ctx, bs.Generator.stageDir)
	if err != nil {
		return err
	}
	bs.Report.LinksChecked = report.Links
	for _, issue := range report.Issues {
		slog.Error("Link verification issue", logfields.Path(issue.Page), slog.String("issue", issue.String()))
	}
	return report.Err()
}

func stagePromote(_ context.Context, bs *BuildState) error {
	if bs.Plan == nil {
		return errors.InternalError("promote without a validated plan").Build()
	}
	return bs.Generator.finalizeStaging()
}
