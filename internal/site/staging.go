package site

import (
	"log/slog"
	"os"

	"git.home.luguber.info/inful/sitegen/internal/foundation/errors"
	"git.home.luguber.info/inful/sitegen/internal/logfields"
)

// stagingDir is the sibling directory a build writes into before promotion.
func stagingDir(outputDir string) string { return outputDir + "_stage" }

// beginStaging creates a fresh sibling staging dir <output>_stage.
func (g *Generator) beginStaging() error {
	stage := stagingDir(g.outputDir)
	if err := os.RemoveAll(stage); err != nil {
		return errors.WrapError(err, errors.CategoryBuild, "clear stale staging directory").
			WithContext("path", stage).Build()
	}
	if err := os.MkdirAll(stage, 0o750); err != nil {
		return errors.WrapError(err, errors.CategoryBuild, "create staging directory").
			WithContext("path", stage).Build()
	}
	g.stageDir = stage
	slog.Debug("Initialized staging directory", slog.String("staging", stage), slog.String("final", g.outputDir))
	return nil
}

// finalizeStaging promotes the staging directory to the output location:
//  1. Move an existing output dir to <output>.prev.
//  2. Rename staging to output.
//  3. Remove the previous output.
func (g *Generator) finalizeStaging() error {
	if g.stageDir == "" {
		return errors.BuildError("no staging directory initialized").Build()
	}
	if _, err := os.Stat(g.stageDir); err != nil {
		return errors.WrapError(err, errors.CategoryBuild, "staging directory missing").
			WithContext("path", g.stageDir).Build()
	}

	prev := g.outputDir + ".prev"
	if err := os.RemoveAll(prev); err != nil {
		return errors.WrapError(err, errors.CategoryBuild, "remove previous backup").
			WithContext("path", prev).Build()
	}
	hadOutput := false
	if _, err := os.Stat(g.outputDir); err == nil {
		if err := os.Rename(g.outputDir, prev); err != nil {
			return errors.WrapError(err, errors.CategoryBuild, "back up existing output").
				WithContext("path", g.outputDir).Build()
		}
		hadOutput = true
	}
	if err := os.Rename(g.stageDir, g.outputDir); err != nil {
		if hadOutput {
			_ = os.Rename(prev, g.outputDir)
		}
		return errors.WrapError(err, errors.CategoryBuild, "promote staging directory").
			WithContext("path", g.stageDir).Build()
	}
	g.stageDir = ""
	if hadOutput {
		if err := os.RemoveAll(prev); err != nil {
			slog.Warn("Failed to remove previous output", logfields.Path(prev), logfields.Error(err))
		}
	}
	slog.Info("Promoted staging directory", logfields.Path(g.outputDir))
	return nil
}

// abortStaging removes the staging directory after a failed build.
func (g *Generator) abortStaging() {
	if g.stageDir == "" {
		return
	}
	dir := g.stageDir
	g.stageDir = ""
	if err := os.RemoveAll(dir); err != nil {
		slog.Warn("Failed to remove staging directory after abort", slog.String("staging", dir), logfields.Error(err))
		return
	}
	slog.Debug("Removed staging directory after abort", slog.String("staging", dir))
}
