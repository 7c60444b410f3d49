// Package reload keeps a query.Service in step with the map file on disk.
//
// The Watcher observes the file's directory, so editors that replace the
// file by rename are seen too. Bursts of events are collapsed into one
// reload after a quiet period. A reload that fails leaves the previously
// published graph in place.
package reload

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/katalvlaran/lvroute/core"
	"github.com/katalvlaran/lvroute/dotfile"
	"github.com/katalvlaran/lvroute/query"
)

// DefaultDebounce is the quiet period used when none is configured.
const DefaultDebounce = 250 * time.Millisecond

// Option configures a Watcher.
type Option func(*Watcher)

// WithDebounce sets the quiet period before a reload. Values ≤ 0 reload on
// every event.
func WithDebounce(d time.Duration) Option {
	return func(w *Watcher) { w.debounce = d }
}

// WithLogger sets the logger. Nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(w *Watcher) {
		if l != nil {
			w.logger = l
		}
	}
}

// WithMetrics counts reload outcomes.
func WithMetrics(m *query.Metrics) Option {
	return func(w *Watcher) { w.metrics = m }
}

// WithGraphOptions configures every graph the Watcher builds.
func WithGraphOptions(opts ...core.GraphOption) Option {
	return func(w *Watcher) { w.graphOpts = opts }
}

// Watcher reloads a map file into a query.Service when it changes.
type Watcher struct {
	path      string
	svc       *query.Service
	debounce  time.Duration
	logger    *slog.Logger
	metrics   *query.Metrics
	graphOpts []core.GraphOption
	fsw       *fsnotify.Watcher
}

// New starts watching the directory that holds path. Call Run to process
// events and Close to release the watch.
func New(path string, svc *query.Service, opts ...Option) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("reload: resolve %s: %w", path, err)
	}
	w := &Watcher{
		path:     abs,
		svc:      svc,
		debounce: DefaultDebounce,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(w)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("reload: %w", err)
	}
	if err = fsw.Add(filepath.Dir(abs)); err != nil {
		_ = fsw.Close()
		return nil, fmt.Errorf("reload: watch %s: %w", filepath.Dir(abs), err)
	}
	w.fsw = fsw

	return w, nil
}

// Reload loads the file now and publishes the result on success.
func (w *Watcher) Reload(ctx context.Context) error {
	began := time.Now()
	g, err := dotfile.LoadFile(ctx, w.path, w.graphOpts...)
	if err != nil {
		w.metrics.ObserveReload(query.ReloadFailed)
		w.logger.Warn("graph reload failed, keeping previous graph", "path", w.path, "error", err)
		return err
	}

	w.svc.Publish(g)
	w.metrics.ObserveReload(query.ReloadOK)
	w.logger.Info("graph reloaded", "path", w.path, "elapsed", time.Since(began))

	return nil
}

// Run handles file events until ctx is done or the watcher is closed.
// Reload errors are logged and counted; they do not stop Run.
func (w *Watcher) Run(ctx context.Context) error {
	var (
		timer  *time.Timer
		timerC <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			if !w.relevant(ev) {
				continue
			}
			w.logger.Debug("map file event", "op", ev.Op.String())
			if w.debounce <= 0 {
				_ = w.Reload(ctx)
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
				timerC = timer.C
			} else {
				timer.Reset(w.debounce)
			}

		case <-timerC:
			timer, timerC = nil, nil
			_ = w.Reload(ctx)

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("map watcher error", "error", err)
		}
	}
}

// Close stops watching. Run returns after Close.
func (w *Watcher) Close() error { return w.fsw.Close() }

func (w *Watcher) relevant(ev fsnotify.Event) bool {
	if filepath.Clean(ev.Name) != w.path {
		return false
	}

	return ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) || ev.Has(fsnotify.Rename)
}
