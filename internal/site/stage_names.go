package site

import "context"

// StageName is a strongly-typed identifier for a build stage.
type StageName string

// Canonical stage names, in execution order.
const (
	StageValidate      StageName = "validate"
	StagePrepareOutput StageName = "prepare_output"
	StageCopyAssets    StageName = "copy_assets"
	StageRenderPages   StageName = "render_pages"
	StageWriteSitemaps StageName = "write_sitemaps"
	StageVerifyLinks   StageName = "verify_links"
	StagePromote       StageName = "promote"
)

// Stage executes one step of a build.
type Stage func(ctx context.Context, bs *BuildState) error

// StageDef pairs a stage name with its executing function.
type StageDef struct {
	Name StageName
	Fn   Stage
}

func defaultStages() []StageDef {
	return []StageDef{
		{StageValidate, stageValidate},
		{StagePrepareOutput, stagePrepareOutput},
		{StageCopyAssets, stageCopyAssets},
		{StageRenderPages, stageRenderPages},
		{StageWriteSitemaps, stageWriteSitemaps},
		{StageVerifyLinks, stageVerifyLinks},
		{StagePromote, stagePromote},
	}
}
