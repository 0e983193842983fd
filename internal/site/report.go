package site

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"git.home.luguber.info/inful/sitegen/internal/foundation/errors"
)

// BuildOutcome is the final result state of a build.
type BuildOutcome string

const (
	OutcomeSuccess  BuildOutcome = "success"
	OutcomeFailed   BuildOutcome = "failed"
	OutcomeCanceled BuildOutcome = "canceled"
)

// BuildReport captures what one build did.
type BuildReport struct {
	SchemaVersion  int                         `json:"schema_version"`
	BuildID        string                      `json:"build_id"`
	Mode           string                      `json:"mode"`
	Start          time.Time                   `json:"start"`
	End            time.Time                   `json:"end"`
	Cities         int                         `json:"cities"`
	Pages          int                         `json:"pages"`
	PagesByKind    map[string]int              `json:"pages_by_kind"`
	Sitemaps       int                         `json:"sitemaps"`
	LinksChecked   int                         `json:"links_checked"`
	StageDurations map[StageName]time.Duration `json:"stage_durations_ns"`
	Outcome        BuildOutcome                `json:"outcome"`
	Error          string                      `json:"error,omitempty"`
	// FailedStage is the stage that aborted the build.
	FailedStage StageName `json:"failed_stage,omitempty"`
	Degraded    bool      `json:"degraded,omitempty"`
}

func newBuildReport(id, mode string) *BuildReport {
	return &BuildReport{
		SchemaVersion:  1,
		BuildID:        id,
		Mode:           mode,
		Start:          time.Now(),
		PagesByKind:    make(map[string]int),
		StageDurations: make(map[StageName]time.Duration),
	}
}

// finish stamps the end time and derives the outcome from err.
func (r *BuildReport) finish(err error) {
	r.End = time.Now()
	switch {
	case err == nil:
		r.Outcome = OutcomeSuccess
	case isCanceled(err):
		r.Outcome = OutcomeCanceled
		r.Error = err.Error()
	default:
		r.Outcome = OutcomeFailed
		r.Error = err.Error()
	}
}

// Duration is the wall time of the build.
func (r *BuildReport) Duration() time.Duration { return r.End.Sub(r.Start) }

// Summary returns a human-readable single-line summary.
func (r *BuildReport) Summary() string {
	return fmt.Sprintf("mode=%s cities=%d pages=%d sitemaps=%d links=%d duration=%s outcome=%s",
		r.Mode, r.Cities, r.Pages, r.Sitemaps, r.LinksChecked, r.Duration().Truncate(time.Millisecond), r.Outcome)
}

// Persist writes the report as JSON to path through a temp file and rename.
func (r *BuildReport) Persist(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return errors.WrapError(err, errors.CategoryFileSystem, "ensure report directory").
			WithContext("file", path).Build()
	}
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return errors.WrapError(err, errors.CategoryInternal, "marshal build report").Build()
	}
	tmp := path + ".tmp"
	//nolint:gosec // build reports are meant to be readable
	if err := os.WriteFile(tmp, append(data, '\n'), 0o644); err != nil {
		return errors.WrapError(err, errors.CategoryFileSystem, "write build report").
			WithContext("file", tmp).Build()
	}
	if err := os.Rename(tmp, path); err != nil {
		return errors.WrapError(err, errors.CategoryFileSystem, "rename build report").
			WithContext("file", path).Build()
	}
	return nil
}
