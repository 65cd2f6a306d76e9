// Package watch rebuilds generated documents when the dataset or the
// templates change on disk, with optional periodic rebuilds and a
// Prometheus metrics listener.
package watch

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"hash"
	"io"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/go-co-op/gocron/v2"
	prom "github.com/prometheus/client_golang/prometheus"

	"github.com/stuagano/awesome-claude-code/internal/metrics"
)

// Rebuilder is what the watcher drives. The pipeline satisfies it.
type Rebuilder interface {
	Rebuild(ctx context.Context) error
}

// RebuildFunc adapts a plain function to Rebuilder.
type RebuildFunc func(ctx context.Context) error

func (f RebuildFunc) Rebuild(ctx context.Context) error { return f(ctx) }

// Options configure a Watcher.
type Options struct {
	// Paths are watched recursively one level deep: files are watched
	// through their parent directory, directories directly.
	Paths []string

	// Debounce is the quiet window after the last event before a
	// rebuild fires. Must be positive.
	Debounce time.Duration

	// Interval triggers periodic rebuilds. Zero disables the schedule.
	Interval time.Duration

	// MetricsAddr serves Prometheus metrics on that address when set.
	MetricsAddr string

	// Fingerprint, when non-nil, names the files and directories whose
	// combined content hash decides whether a triggered rebuild can be
	// skipped. Directories are hashed recursively.
	Fingerprint []string
}

// Watcher coalesces filesystem events into debounced rebuilds.
type Watcher struct {
	target   Rebuilder
	opts     Options
	logger   *slog.Logger
	registry *prom.Registry

	mu              sync.Mutex
	lastFingerprint string
}

// New validates opts and builds a Watcher. registry may be nil when no
// metrics listener is configured.
func New(target Rebuilder, opts Options, logger *slog.Logger, registry *prom.Registry) (*Watcher, error) {
	if target == nil {
		return nil, fmt.Errorf("rebuild target is required")
	}
	if len(opts.Paths) == 0 {
		return nil, fmt.Errorf("at least one watch path is required")
	}
	if opts.Debounce <= 0 {
		opts.Debounce = 2 * time.Second
	}
	return &Watcher{target: target, opts: opts, logger: logger, registry: registry}, nil
}

// Run watches until ctx is canceled. The initial rebuild runs before
// the first event so the output starts consistent with the inputs.
func (w *Watcher) Run(ctx context.Context) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create file watcher: %w", err)
	}
	defer fsw.Close()

	watched := make(map[string]struct{})
	for _, path := range w.opts.Paths {
		dir, err := watchDir(path)
		if err != nil {
			return err
		}
		if _, ok := watched[dir]; ok {
			continue
		}
		if err := fsw.Add(dir); err != nil {
			return fmt.Errorf("watch %s: %w", dir, err)
		}
		watched[dir] = struct{}{}
	}

	trigger := make(chan string, 1)
	requestRebuild := func(reason string) {
		select {
		case trigger <- reason:
		default:
		}
	}

	var scheduler gocron.Scheduler
	if w.opts.Interval > 0 {
		scheduler, err = gocron.NewScheduler()
		if err != nil {
			return fmt.Errorf("create scheduler: %w", err)
		}
		_, err = scheduler.NewJob(
			gocron.DurationJob(w.opts.Interval),
			gocron.NewTask(func() { requestRebuild("schedule") }),
			gocron.WithName("periodic-rebuild"),
		)
		if err != nil {
			return fmt.Errorf("schedule periodic rebuild: %w", err)
		}
		scheduler.Start()
		defer func() { _ = scheduler.Shutdown() }()
	}

	var metricsServer *http.Server
	if w.opts.MetricsAddr != "" && w.registry != nil {
		mux := http.NewServeMux()
		mux.Handle("/metrics", metrics.HTTPHandler(w.registry))
		metricsServer = &http.Server{Addr: w.opts.MetricsAddr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}
		go func() {
			w.logger.Info("serving metrics", "addr", w.opts.MetricsAddr)
			if err := metricsServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				w.logger.Error("metrics listener failed", "error", err)
			}
		}()
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
			defer cancel()
			_ = metricsServer.Shutdown(shutdownCtx)
		}()
	}

	w.rebuild(ctx, "startup")

	debounce := time.NewTimer(time.Hour)
	stopTimer(debounce)
	pendingReason := ""

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if !relevantOp(event.Op) {
				continue
			}
			w.logger.Debug("filesystem event", "path", event.Name, "op", event.Op.String())
			pendingReason = fmt.Sprintf("change to %s", filepath.Base(event.Name))
			stopTimer(debounce)
			debounce.Reset(w.opts.Debounce)

		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("file watcher error", "error", err)

		case <-debounce.C:
			w.rebuild(ctx, pendingReason)

		case reason := <-trigger:
			w.rebuild(ctx, reason)
		}
	}
}

func (w *Watcher) rebuild(ctx context.Context, reason string) {
	if skip, fp := w.unchanged(); skip {
		w.logger.Info("inputs unchanged, skipping rebuild", "reason", reason, "fingerprint", fp[:12])
		return
	}

	start := time.Now()
	if err := w.target.Rebuild(ctx); err != nil {
		w.logger.Error("rebuild failed", "reason", reason, "error", err)
		return
	}
	w.logger.Info("rebuild complete", "reason", reason, "duration", time.Since(start))
}

// unchanged hashes the fingerprint files and reports whether the hash
// matches the previous check. A mismatch updates the stored value.
func (w *Watcher) unchanged() (bool, string) {
	if len(w.opts.Fingerprint) == 0 {
		return false, ""
	}
	fp := fingerprintFiles(w.opts.Fingerprint)

	w.mu.Lock()
	defer w.mu.Unlock()
	if fp != "" && fp == w.lastFingerprint {
		return true, fp
	}
	w.lastFingerprint = fp
	return false, fp
}

func fingerprintFiles(paths []string) string {
	h := sha256.New()
	for _, path := range paths {
		files, err := expandFingerprintPath(path)
		if err != nil {
			// A missing input always forces a rebuild attempt.
			return ""
		}
		for _, file := range files {
			if err := hashFile(h, file); err != nil {
				return ""
			}
		}
	}
	return hex.EncodeToString(h.Sum(nil))
}

// expandFingerprintPath resolves a fingerprint entry to the files it
// covers: the file itself, or every regular file under a directory in
// sorted order so the hash is stable.
func expandFingerprintPath(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return []string{path}, nil
	}
	var files []string
	err = filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.Type().IsRegular() {
			files = append(files, p)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}

func hashFile(h hash.Hash, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	h.Write([]byte(path))
	h.Write([]byte{0})
	if _, err := io.Copy(h, f); err != nil {
		return err
	}
	h.Write([]byte{0})
	return nil
}

// watchDir maps a path to the directory fsnotify should watch. Watching
// the parent directory survives editors that replace files via rename.
func watchDir(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("stat watch path %s: %w", path, err)
	}
	if info.IsDir() {
		return path, nil
	}
	return filepath.Dir(path), nil
}

func relevantOp(op fsnotify.Op) bool {
	return op.Has(fsnotify.Write) || op.Has(fsnotify.Create) ||
		op.Has(fsnotify.Rename) || op.Has(fsnotify.Remove)
}

func stopTimer(t *time.Timer) {
	if !t.Stop() {
		select {
		case <-t.C:
		default:
		}
	}
}
