// Package classify implements the expense-necessity classifier: user
// overrides first, then keyword voting, then amount heuristics, then the
// category default.
package classify

import (
	"context"
	"log/slog"
	"math"
	"strings"
	"sync"

	"github.com/khoward/seedling/internal/model"
	"github.com/khoward/seedling/internal/service"
)

// Classifier decides whether a transaction is necessary. It is safe for
// concurrent use: lookups take a read lock, override updates take the write
// lock so each title sees at most one writer at a time.
type Classifier struct {
	rules     Rules
	recorder  service.OverrideRecorder
	mu        sync.RWMutex
	overrides map[string]bool
}

// New creates a classifier from heuristic rules, a pre-loaded override
// table, and an optional write-through recorder for manual corrections.
// A nil override map is treated as empty; a nil recorder means overrides
// live only in memory.
func New(rules Rules, overrides map[string]bool, recorder service.OverrideRecorder) *Classifier {
	table := make(map[string]bool, len(overrides))
	for title, necessary := range overrides {
		table[model.NormalizeTitle(title)] = necessary
	}
	return &Classifier{
		rules:     rules,
		overrides: table,
		recorder:  recorder,
	}
}

// Classify decides necessity for a (title, amount, category) triple. It
// never fails: unknown categories default to discretionary and non-positive
// or NaN amounts are clamped to zero, which only disarms the amount rule.
func (c *Classifier) Classify(title string, amount float64, category model.Category) bool {
	normalized := model.NormalizeTitle(title)

	// 1. Exact-match user override wins outright.
	if necessary, ok := c.Lookup(normalized); ok {
		return necessary
	}

	// 2. Keyword majority vote.
	if necessary, matched := c.keywordVote(normalized); matched {
		return necessary
	}

	if amount <= 0 || math.IsNaN(amount) {
		amount = 0
	}

	// 3. An unusually expensive instance of a normally-necessary category
	// is more likely a luxury purchase.
	if model.DefaultNecessity(category) {
		if threshold, ok := c.rules.HighAmountThresholds[category]; ok && amount > threshold {
			return false
		}
	}

	// 4. Category default.
	return model.DefaultNecessity(category)
}

// ClassifyTransaction is a convenience wrapper over Classify.
func (c *Classifier) ClassifyTransaction(txn model.Transaction) bool {
	return c.Classify(txn.Title, txn.Amount, txn.Category)
}

// keywordVote scans the normalized title for keyword hits and returns the
// majority outcome. A dead-even split does not count as a match: the tie
// falls through to the amount and category rules.
func (c *Classifier) keywordVote(normalized string) (necessary, matched bool) {
	score := 0
	matches := 0
	for keyword, isNecessary := range c.rules.Keywords {
		if strings.Contains(normalized, keyword) {
			matches++
			if isNecessary {
				score++
			} else {
				score--
			}
		}
	}
	if matches == 0 {
		return false, false
	}
	if score > 0 {
		return true, true
	}
	if score < 0 {
		return false, true
	}
	return false, false
}

// Lookup returns the override for a normalized title, if present. It
// implements service.OverrideSource.
func (c *Classifier) Lookup(normalizedTitle string) (bool, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	necessary, ok := c.overrides[normalizedTitle]
	return necessary, ok
}

// RecordOverride stores a manual user classification for a title. The
// in-memory table is updated immediately; persistence through the recorder
// is best-effort and eventual, so a storage failure is logged rather than
// surfaced into classification.
func (c *Classifier) RecordOverride(ctx context.Context, title string, isNecessary bool) {
	normalized := model.NormalizeTitle(title)
	if normalized == "" {
		return
	}

	c.mu.Lock()
	c.overrides[normalized] = isNecessary
	c.mu.Unlock()

	if c.recorder == nil {
		return
	}
	if err := c.recorder.Record(ctx, normalized, isNecessary); err != nil {
		slog.Warn("Failed to persist classification override",
			"title", normalized,
			"error", err)
	}
}

// Overrides returns a copy of the current override table.
func (c *Classifier) Overrides() map[string]bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make(map[string]bool, len(c.overrides))
	for k, v := range c.overrides {
		out[k] = v
	}
	return out
}
