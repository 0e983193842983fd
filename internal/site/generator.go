// Package site runs the staged build that turns a manifest into files: it
// renders every page into a sibling staging directory, writes sitemaps and
// robots files, verifies links and promotes the result over the previous
// output in one rename.
package site

import (
	"context"
	"log/slog"
	"path/filepath"

	"github.com/google/uuid"

	"git.home.luguber.info/inful/sitegen/internal/cities"
	"git.home.luguber.info/inful/sitegen/internal/config"
	"git.home.luguber.info/inful/sitegen/internal/linkverify"
	"git.home.luguber.info/inful/sitegen/internal/logfields"
	"git.home.luguber.info/inful/sitegen/internal/manifest"
	"git.home.luguber.info/inful/sitegen/internal/metrics"
	"git.home.luguber.info/inful/sitegen/internal/urls"
)

// Generator builds one site configuration.
type Generator struct {
	cfg       *config.Config
	outputDir string // final output dir
	stageDir  string // staging dir of the current build
	recorder  metrics.Recorder
	stages    []StageDef
}

// New creates a generator for a finalized configuration.
func New(cfg *config.Config) *Generator {
	return &Generator{
		cfg:       cfg,
		outputDir: filepath.Clean(cfg.Output.Directory),
		recorder:  metrics.NoopRecorder{},
		stages:    defaultStages(),
	}
}

// SetRecorder injects a metrics recorder. Returns the generator for chaining.
func (g *Generator) SetRecorder(r metrics.Recorder) *Generator {
	if r == nil {
		g.recorder = metrics.NoopRecorder{}
		return g
	}
	g.recorder = r
	return g
}

// OutputDir is the final output directory.
func (g *Generator) OutputDir() string { return g.outputDir }

// Plan is the resolved page set of a build, computed without writing files.
type Plan struct {
	Store    *cities.Store
	Resolver *urls.Resolver
	Manifest *manifest.Manifest
}

// Plan loads the city records and enumerates the manifest.
func (g *Generator) Plan(ctx context.Context) (*Plan, error) {
	store, err := cities.Load(ctx, g.cfg.Input.Cities)
	if err != nil {
		return nil, err
	}
	r, err := urls.New(g.cfg.Resolver())
	if err != nil {
		return nil, err
	}
	m, err := manifest.Build(store, r, g.cfg.BaseRange())
	if err != nil {
		return nil, err
	}
	return &Plan{Store: store, Resolver: r, Manifest: m}, nil
}

// assetHrefs are the absolute (or, without an origin, root-relative) URLs of
// the copied static files.
func (g *Generator) assetHrefs(r *urls.Resolver) []string {
	files := g.cfg.AssetFiles()
	out := make([]string, 0, len(files))
	for _, f := range files {
		out = append(out, r.Canonical(r.AssetHref(f)))
	}
	return out
}

func (g *Generator) composer(p *Plan) *composer {
	return newComposer(Composer{
		Brand:         g.cfg.Site.Brand,
		Copy:          g.cfg.Copy,
		Image:         g.cfg.Assets.Image,
		Favicons:      g.cfg.Assets.Favicons,
		TitleMaxRunes: g.cfg.Pages.TitleMaxRunes,
	}, p.Store, p.Resolver)
}

// Build runs every stage and, on success, writes the routing rules and the
// build report. A failed build leaves the previous output untouched.
func (g *Generator) Build(ctx context.Context) (*BuildReport, error) {
	mode := g.cfg.Mode().String()
	report := newBuildReport(uuid.NewString(), mode)
	log := slog.With(logfields.BuildID(report.BuildID), logfields.Mode(mode))
	log.Info("Starting site build", logfields.Path(g.outputDir))

	bs := newBuildState(g, report)
	err := runStages(ctx, bs, g.stages)
	if err != nil {
		g.abortStaging()
	} else if rerr := g.writeRoutes(bs.Plan); rerr != nil {
		err = rerr
	}
	report.finish(err)

	g.recorder.ObserveBuildDuration(mode, report.Duration())
	g.recorder.IncBuildOutcome(mode, outcomeLabel(report.Outcome))
	if perr := report.Persist(g.cfg.Output.ReportFile); perr != nil {
		log.Warn("Failed to write build report", logfields.File(g.cfg.Output.ReportFile), logfields.Error(perr))
	}

	if err != nil {
		log.Error("Site build failed", logfields.Error(err), slog.String("summary", report.Summary()))
		return report, err
	}
	log.Info("Site build complete", logfields.Pages(report.Pages), slog.String("summary", report.Summary()))
	return report, nil
}

// Verify re-checks the existing output directory against a fresh manifest.
func (g *Generator) Verify(ctx context.Context) (*linkverify.Report, error) {
	p, err := g.Plan(ctx)
	if err != nil {
		return nil, err
	}
	return linkverify.New(p.Manifest, g.assetHrefs(p.Resolver)).VerifyDir(ctx, g.outputDir)
}

func outcomeLabel(o BuildOutcome) metrics.BuildOutcomeLabel {
	switch o {
	case OutcomeSuccess:
		return metrics.OutcomeSuccess
	case OutcomeCanceled:
		return metrics.OutcomeCanceled
	default:
		return metrics.OutcomeFailed
	}
}
