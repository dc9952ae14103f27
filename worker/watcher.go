package worker

import (
	"context"
	"log/slog"
	"os"
	"time"

	"snapshot-newsletter/internal/validate"
)

// Watcher re-validates a document whenever its modification time changes
// and logs the outcome.
type Watcher struct {
	DocumentPath string
	Validator    *validate.Validator
	Interval     time.Duration

	lastMod time.Time
	// OnResult, when set, receives every outcome the watcher logs.
	OnResult func(validate.Outcome)
}

func (w *Watcher) Name() string { return "watcher" }

func (w *Watcher) Start(ctx context.Context) error {
	if w.Interval <= 0 {
		w.Interval = 2 * time.Second
	}
	// run immediately then on interval
	w.runOnce()

	t := time.NewTicker(w.Interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-t.C:
			w.runOnce()
		}
	}
}

func (w *Watcher) runOnce() {
	fi, err := os.Stat(w.DocumentPath)
	if err != nil {
		if w.lastMod.IsZero() {
			return
		}
		slog.Warn("watcher: document unavailable", "document", w.DocumentPath, "err", err)
		w.lastMod = time.Time{}
		return
	}
	if fi.ModTime().Equal(w.lastMod) {
		return
	}
	w.lastMod = fi.ModTime()

	res, pre := w.Validator.CheckFile(w.DocumentPath)
	if pre != nil {
		slog.Warn("watcher: document rejected", "document", w.DocumentPath, "outcome", pre.Outcome, "err", pre.Err)
		w.notify(pre.Outcome)
		return
	}
	outcome := res.Outcome()
	switch outcome {
	case validate.OutcomeFailed:
		for _, f := range res.Errors {
			slog.Warn("watcher: error", "rule", f.Rule, "message", f.Message)
		}
		slog.Warn("watcher: validation failed", "document", w.DocumentPath, "errors", len(res.Errors), "warnings", len(res.Warnings))
	case validate.OutcomePassedWithWarnings:
		for _, f := range res.Warnings {
			slog.Info("watcher: warning", "rule", f.Rule, "message", f.Message)
		}
		slog.Info("watcher: validation passed with warnings", "document", w.DocumentPath, "warnings", len(res.Warnings))
	default:
		slog.Info("watcher: validation passed", "document", w.DocumentPath)
	}
	w.notify(outcome)
}

func (w *Watcher) notify(o validate.Outcome) {
	if w.OnResult != nil {
		w.OnResult(o)
	}
}
