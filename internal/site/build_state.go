package site

import "git.home.luguber.info/inful/sitegen/internal/render"

// BuildState carries state across the stages of one build.
type BuildState struct {
	Generator *Generator
	Report    *BuildReport
	// Plan is set by the validate stage.
	Plan       *Plan
	renderer   *render.Renderer
	assetHrefs []string
}

func newBuildState(g *Generator, report *BuildReport) *BuildState {
	return &BuildState{Generator: g, Report: report}
}
