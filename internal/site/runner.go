package site

import (
	"context"
	stderrors "errors"
	"log/slog"
	"time"

	"git.home.luguber.info/inful/sitegen/internal/logfields"
	"git.home.luguber.info/inful/sitegen/internal/metrics"
)

// runStages executes stages in order, recording timing and stopping on the
// first error. Cancellation is checked before every stage.
func runStages(ctx context.Context, bs *BuildState, stages []StageDef) error {
	rec := bs.Generator.recorder
	for _, st := range stages {
		if err := ctx.Err(); err != nil {
			bs.Report.FailedStage = st.Name
			rec.IncStageResult(string(st.Name), metrics.ResultCanceled)
			return err
		}
		t0 := time.Now()
		err := st.Fn(ctx, bs)
		dur := time.Since(t0)
		bs.Report.StageDurations[st.Name] = dur
		rec.ObserveStageDuration(string(st.Name), dur)
		if err != nil {
			bs.Report.FailedStage = st.Name
			if isCanceled(err) {
				rec.IncStageResult(string(st.Name), metrics.ResultCanceled)
			} else {
				rec.IncStageResult(string(st.Name), metrics.ResultFatal)
			}
			slog.Debug("Stage failed", logfields.Stage(string(st.Name)), logfields.Error(err))
			return err
		}
		rec.IncStageResult(string(st.Name), metrics.ResultSuccess)
		slog.Info("Stage complete", logfields.Stage(string(st.Name)), logfields.DurationMS(float64(dur.Microseconds())/1000))
	}
	return nil
}

func isCanceled(err error) bool {
	return stderrors.Is(err, context.Canceled) || stderrors.Is(err, context.DeadlineExceeded)
}
