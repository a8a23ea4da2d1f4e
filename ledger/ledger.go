// Package ledger keeps the in-memory session history of processed
// documents. Entries are owned exclusively by the ledger: inserted at the
// head (most-recent-first), never mutated, removed only by a full clear.
// Lifetime is the process lifetime; there is no durability guarantee.
package ledger

import (
	"sync"
	"time"

	"github.com/hazyhaar/intake/action"
	"github.com/hazyhaar/intake/classify"
	"github.com/hazyhaar/intake/extract"
	"github.com/hazyhaar/intake/idgen"
)

// Entry records one processed document.
type Entry struct {
	ID             string                  `json:"id"`
	Timestamp      time.Time               `json:"timestamp"`
	FileName       string                  `json:"file_name"`
	Classification classify.Classification `json:"classification"`
	Extraction     extract.Result          `json:"extraction"`
	Actions        []action.Action         `json:"actions"`
}

// Stats are the session counters. Cleared together with the entries.
type Stats struct {
	DocumentsProcessed int `json:"documents_processed"`
	ActionsTriggered   int `json:"actions_triggered"`
}

// Ledger is an append-only in-memory history. Safe for concurrent use.
type Ledger struct {
	mu      sync.Mutex
	entries []Entry
	stats   Stats
	newID   idgen.Generator
}

// New creates an empty ledger. A nil generator falls back to
// idgen.Default.
func New(gen idgen.Generator) *Ledger {
	if gen == nil {
		gen = idgen.Default
	}
	return &Ledger{newID: gen}
}

// Append inserts the entry at the head and bumps the session counters.
// The entry is assigned an ID if it has none; the stored copy is
// returned.
func (l *Ledger) Append(e Entry) Entry {
	l.mu.Lock()
	defer l.mu.Unlock()

	if e.ID == "" {
		e.ID = l.newID()
	}
	l.entries = append([]Entry{e}, l.entries...)
	l.stats.DocumentsProcessed++
	l.stats.ActionsTriggered += len(e.Actions)
	return e
}

// List returns a copy of the full history, most recent first.
func (l *Ledger) List() []Entry {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]Entry, len(l.entries))
	copy(out, l.entries)
	return out
}

// Len returns the number of entries.
func (l *Ledger) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}

// Stats returns the session counters.
func (l *Ledger) Stats() Stats {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.stats
}

// Clear empties the history and resets the counters to zero.
func (l *Ledger) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = nil
	l.stats = Stats{}
}
