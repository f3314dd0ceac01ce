// Package worker runs the watch-mode loop: it owns the filesystem watch
// and re-runs conversions as the watched target changes.
package worker

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/andrewhowdencom/mdpress/internal/convert"
	"github.com/andrewhowdencom/mdpress/internal/watcher"
)

// Worker converts a watched target whenever it changes. A single goroutine
// consumes change events and runs each conversion to completion before
// starting the next, so output writes never interleave.
type Worker struct {
	conv     *convert.Converter
	target   string
	debounce time.Duration

	changes chan string
}

// New creates a worker for target, which may be a file or a directory.
func New(conv *convert.Converter, target string, debounce time.Duration) *Worker {
	return &Worker{
		conv:     conv,
		target:   target,
		debounce: debounce,
		// One slot: a queued change already covers any burst that
		// arrives while a conversion is running.
		changes: make(chan string, 1),
	}
}

// Run converts the target once, then watches it until SIGINT or SIGTERM.
// Per-conversion errors are logged and do not end the session.
func (w *Worker) Run(ctx context.Context) error {
	slog.Info("starting watch", "target", w.target)

	wtch, err := watcher.New(w.target, w.debounce, w.enqueue)
	if err != nil {
		return fmt.Errorf("failed to start watch: %w", err)
	}
	defer wtch.Close()

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(signals)

	// Convert on startup so the output exists before the first change.
	w.convertTree(ctx)

	for {
		select {
		case path := <-w.changes:
			w.convertPath(ctx, path)
		case sig := <-signals:
			slog.Info("stopping watch", "signal", sig.String())
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func (w *Worker) enqueue(path string) {
	select {
	case w.changes <- path:
	default:
		// A change is already queued; the pending conversion will pick
		// up the state on disk anyway.
	}
}

func (w *Worker) convertPath(ctx context.Context, path string) {
	out, err := w.conv.File(ctx, path)
	if err != nil {
		slog.Error("conversion failed", "input", path, "error", err)
		return
	}
	slog.Info("converted", "input", path, "output", out)
}

func (w *Worker) convertTree(ctx context.Context) {
	written, err := w.conv.Tree(ctx, w.target)
	if err != nil {
		slog.Error("initial conversion failed", "target", w.target, "error", err)
	}
	for _, out := range written {
		slog.Info("converted", "output", out)
	}
}
