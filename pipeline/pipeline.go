// Package pipeline orchestrates document intake: classification,
// extraction, action derivation, and history recording.
package pipeline

import (
	"context"
	"errors"
	"log/slog"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/hazyhaar/intake/action"
	"github.com/hazyhaar/intake/classify"
	"github.com/hazyhaar/intake/extract"
	"github.com/hazyhaar/intake/idgen"
	"github.com/hazyhaar/intake/ledger"
)

// ErrBusy is returned when a submission arrives while another document is
// still being processed. The pipeline handles one document at a time.
var ErrBusy = errors.New("pipeline: processing in progress")

// Submission is one document handed to the pipeline.
type Submission struct {
	Content    string `json:"content"`
	FormatHint string `json:"format_hint"`
	FileName   string `json:"file_name"`
}

// Result is the full outcome of processing one submission. It mirrors the
// ledger entry written for it.
type Result struct {
	ID             string                  `json:"id"`
	FileName       string                  `json:"file_name"`
	ProcessedAt    time.Time               `json:"processed_at"`
	Classification classify.Classification `json:"classification"`
	Extraction     extract.Result          `json:"extraction"`
	Actions        []action.Action         `json:"actions"`
}

// Config carries the pipeline dependencies. The zero value is usable.
type Config struct {
	// IntentRules override the built-in intent keyword rules. Nil keeps
	// the defaults.
	IntentRules []classify.IntentRule

	// IDs mints ledger entry IDs. Nil falls back to "doc_"-prefixed
	// UUIDv7.
	IDs idgen.Generator

	// Logger receives per-stage processing logs. Nil discards them.
	Logger *slog.Logger

	// Now stubs the clock in tests. Nil uses time.Now.
	Now func() time.Time
}

func (c *Config) defaults() {
	if c.IDs == nil {
		c.IDs = idgen.Prefixed("doc_", idgen.Default)
	}
	if c.Logger == nil {
		c.Logger = slog.New(slog.DiscardHandler)
	}
	if c.Now == nil {
		c.Now = time.Now
	}
}

// Pipeline runs submissions through the intake stages and records each
// outcome in its ledger. Safe for concurrent use; concurrent submissions
// beyond the first are rejected with ErrBusy.
type Pipeline struct {
	cfg     Config
	history *ledger.Ledger
	busy    atomic.Bool
}

// New creates a Pipeline with an empty history.
func New(cfg Config) *Pipeline {
	cfg.defaults()
	return &Pipeline{
		cfg:     cfg,
		history: ledger.New(cfg.IDs),
	}
}

// Process runs one submission through classification, extraction, and
// action derivation, appends the outcome to the history, and returns it.
//
// Only one submission runs at a time: a second caller gets ErrBusy
// without touching the history.
func (p *Pipeline) Process(ctx context.Context, sub Submission) (Result, error) {
	if !p.busy.CompareAndSwap(false, true) {
		return Result{}, ErrBusy
	}
	defer p.busy.Store(false)

	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	log := p.cfg.Logger.With("file", sub.FileName, "hint", sub.FormatHint)
	log.InfoContext(ctx, "processing document", "bytes", len(sub.Content))

	// The two classifiers are independent of each other.
	var formatRes classify.FormatResult
	var intentRes classify.IntentResult
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		formatRes = classify.ClassifyFormat(sub.Content, sub.FormatHint)
		return gctx.Err()
	})
	g.Go(func() error {
		intentRes = classify.ClassifyIntent(sub.Content, p.cfg.IntentRules)
		return gctx.Err()
	})
	if err := g.Wait(); err != nil {
		return Result{}, err
	}
	cls := classify.Classification{Format: formatRes, Intent: intentRes}
	log.DebugContext(ctx, "classified",
		"format", cls.Format.Detected,
		"intent", string(cls.Intent.Type),
		"confidence", cls.Intent.Confidence)

	format, _ := classify.NormalizeHint(sub.FormatHint)
	ext := extract.Run(format, sub.Content)

	actions := action.Derive(cls, ext)
	log.InfoContext(ctx, "document processed",
		"kind", string(ext.Kind), "actions", len(actions))

	entry := p.history.Append(ledger.Entry{
		Timestamp:      p.cfg.Now(),
		FileName:       sub.FileName,
		Classification: cls,
		Extraction:     ext,
		Actions:        actions,
	})

	return Result{
		ID:             entry.ID,
		FileName:       entry.FileName,
		ProcessedAt:    entry.Timestamp,
		Classification: entry.Classification,
		Extraction:     entry.Extraction,
		Actions:        entry.Actions,
	}, nil
}

// Busy reports whether a submission is currently being processed.
func (p *Pipeline) Busy() bool {
	return p.busy.Load()
}

// History returns the processed documents, most recent first.
func (p *Pipeline) History() []ledger.Entry {
	return p.history.List()
}

// ClearHistory empties the history and resets the session counters.
func (p *Pipeline) ClearHistory() {
	p.history.Clear()
}

// Stats returns the session counters.
func (p *Pipeline) Stats() ledger.Stats {
	return p.history.Stats()
}

// Formats lists every accepted format hint.
func (p *Pipeline) Formats() []string {
	return classify.SupportedHints()
}
