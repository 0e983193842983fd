package site

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"git.home.luguber.info/inful/sitegen/internal/foundation/errors"
	"git.home.luguber.info/inful/sitegen/internal/logfields"
)

// DefaultDebounce coalesces bursts of file events into one rebuild.
const DefaultDebounce = 300 * time.Millisecond

// WatchOptions selects what Watch observes.
type WatchOptions struct {
	// Paths are files or directories whose changes trigger a rebuild. Files
	// are watched through their parent directory.
	Paths []string
	// Ignore are directory prefixes whose events are dropped (build output).
	Ignore   []string
	Debounce time.Duration
}

// Watch calls rebuild after every debounced change under opts.Paths until ctx
// is done. Rebuilds run one at a time on the calling goroutine.
func Watch(ctx context.Context, opts WatchOptions, rebuild func(context.Context)) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.WrapError(err, errors.CategoryInternal, "create file watcher").Build()
	}
	defer func() { _ = w.Close() }()

	for _, dir := range watchDirs(opts.Paths) {
		if err := w.Add(dir); err != nil {
			return errors.WrapError(err, errors.CategoryFileSystem, "watch directory").WithContext("path", dir).Build()
		}
		slog.Debug("Watching for changes", logfields.Path(dir))
	}
	debounce := opts.Debounce
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	timer := time.NewTimer(debounce)
	timer.Stop()
	defer timer.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if ignoredEvent(ev.Name, opts.Ignore) {
				continue
			}
			slog.Debug("File change detected", logfields.Path(ev.Name), slog.String("op", ev.Op.String()))
			timer.Reset(debounce)
		case <-timer.C:
			slog.Info("Change detected; rebuilding site")
			rebuild(ctx)
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			slog.Warn("Watcher error", logfields.Error(err))
		}
	}
}

// watchDirs maps paths to the unique directories to watch.
func watchDirs(paths []string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, p := range paths {
		if p == "" {
			continue
		}
		dir := filepath.Clean(p)
		if fi, err := os.Stat(dir); err != nil || !fi.IsDir() {
			dir = filepath.Dir(dir)
		}
		if !seen[dir] {
			seen[dir] = true
			out = append(out, dir)
		}
	}
	return out
}

// ignoredEvent drops editor temp files and anything under an ignored prefix.
func ignoredEvent(name string, ignore []string) bool {
	base := filepath.Base(name)
	if strings.HasPrefix(base, ".") || strings.HasSuffix(base, "~") || strings.HasSuffix(base, ".swp") || strings.HasSuffix(base, ".tmp") {
		return true
	}
	clean := filepath.Clean(name)
	for _, prefix := range ignore {
		prefix = filepath.Clean(prefix)
		if clean == prefix || strings.HasPrefix(clean, prefix+string(filepath.Separator)) {
			return true
		}
	}
	return false
}

// WatchPaths are the inputs of a build: config file, city input and assets.
func (g *Generator) WatchPaths(configFile string) WatchOptions {
	paths := []string{configFile, g.cfg.Input.Cities}
	for _, f := range g.cfg.AssetFiles() {
		paths = append(paths, filepath.Join(g.cfg.Assets.Directory, filepath.FromSlash(f)))
	}
	return WatchOptions{
		Paths: paths,
		Ignore: []string{
			g.outputDir,
			stagingDir(g.outputDir),
			g.outputDir + ".prev",
			g.cfg.Output.ReportFile,
			g.cfg.Output.RoutesFile,
		},
	}
}
