package engine

import (
	"sort"
	"strconv"

	"go.uber.org/zap"

	"github.com/justthetip/yoto-discovery/internal/domain/catalog"
	"github.com/justthetip/yoto-discovery/internal/domain/query"
	"github.com/justthetip/yoto-discovery/internal/domain/selection"
	"github.com/justthetip/yoto-discovery/internal/metrics"
	"github.com/justthetip/yoto-discovery/internal/vocab"
)

// Ladder thresholds. Whether these should be deployment-configurable is an
// open product question; until then they are named constants.
const (
	// MinCandidates is the accumulated total below which the next tier runs.
	MinCandidates = 3
	// FallbackTake caps the guaranteed-fallback tier's contribution.
	FallbackTake = 10
	// MaxCandidates caps the payload handed to the ranking collaborator.
	MaxCandidates = 100
)

// Ladder runs the five escalating selection passes over a catalog snapshot.
// It holds no per-query state and is safe for concurrent use.
type Ladder struct {
	vocab  *vocab.Table
	logger *zap.Logger
}

// NewLadder creates a tier controller over the given vocabulary.
func NewLadder(table *vocab.Table, logger *zap.Logger) *Ladder {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Ladder{vocab: table, logger: logger}
}

// Run executes the ladder and returns the assembled candidate set.
//
// Tiers accumulate: a later tier appends after, never replaces, earlier
// output, and an item selected once is excluded from every later tier. Age
// is kept strict through tier 4 and only dropped (with all other soft
// constraints) by the guaranteed fallback, which still honors price,
// duration and availability. The ladder therefore returns empty only when
// hard constraints alone eliminate the whole catalog.
func (l *Ladder) Run(items []catalog.Item, cons query.Constraints) []selection.Candidate {
	seen := make(map[string]struct{}, MinCandidates)
	acc := l.runTier(nil, seen, items, cons, selection.TierLiteral, false)

	for _, step := range []struct {
		tier  selection.Tier
		level vocab.Level
	}{
		{selection.TierSynonym, vocab.LevelSynonym},
		{selection.TierBroad, vocab.LevelBroad},
		{selection.TierVeryBroad, vocab.LevelVeryBroad},
	} {
		if len(acc) >= MinCandidates || !cons.HasExpandable() {
			break
		}
		expanded := l.expand(cons, step.level)
		acc = l.runTier(acc, seen, items, expanded, step.tier, true)
	}

	if len(acc) < MinCandidates {
		acc = l.runFallback(acc, seen, items, cons)
	}

	out := Assemble(acc)
	metrics.EngineCandidatesReturned.Observe(float64(len(out)))
	return out
}

// runTier filters and scores the not-yet-selected items and appends the
// tier's contribution in score order.
func (l *Ladder) runTier(
	acc []selection.Candidate, seen map[string]struct{},
	items []catalog.Item, cons query.Constraints,
	tier selection.Tier, expanded bool,
) []selection.Candidate {
	metrics.EngineTierEnteredTotal.WithLabelValues(strconv.Itoa(int(tier))).Inc()

	var picked []selection.Candidate
	for i := range items {
		item := &items[i]
		if _, dup := seen[item.ID]; dup {
			continue
		}
		if !Passes(item, cons) {
			continue
		}
		picked = append(picked, selection.Candidate{
			Item:     *item,
			Score:    Score(item, cons),
			Tier:     tier,
			Expanded: expanded,
		})
	}
	sortByScore(picked)

	for _, c := range picked {
		seen[c.Item.ID] = struct{}{}
	}
	l.logger.Debug("tier complete",
		zap.Int("tier", int(tier)),
		zap.Int("contributed", len(picked)),
		zap.Int("total", len(acc)+len(picked)),
	)
	return append(acc, picked...)
}

// runFallback is the unconditional tier 5: soft constraints are ignored,
// hard constraints and availability still hold, and the remaining items are
// ranked by metadata completeness as a curation proxy.
func (l *Ladder) runFallback(
	acc []selection.Candidate, seen map[string]struct{},
	items []catalog.Item, cons query.Constraints,
) []selection.Candidate {
	metrics.EngineTierEnteredTotal.WithLabelValues(strconv.Itoa(int(selection.TierFallback))).Inc()
	metrics.EngineFallbackTotal.Inc()

	hardOnly := query.Constraints{MaxPrice: cons.MaxPrice, MaxDuration: cons.MaxDuration}

	var picked []selection.Candidate
	for i := range items {
		item := &items[i]
		if _, dup := seen[item.ID]; dup {
			continue
		}
		if !Passes(item, hardOnly) {
			continue
		}
		picked = append(picked, selection.Candidate{
			Item:     *item,
			Score:    item.MetadataCompleteness(),
			Tier:     selection.TierFallback,
			Expanded: true,
		})
	}
	sort.SliceStable(picked, func(i, j int) bool {
		return picked[i].Score > picked[j].Score
	})
	if len(picked) > FallbackTake {
		picked = picked[:FallbackTake]
	}

	for _, c := range picked {
		seen[c.Item.ID] = struct{}{}
	}
	l.logger.Debug("fallback tier complete", zap.Int("contributed", len(picked)))
	return append(acc, picked...)
}

// expand widens keywords via the vocabulary at the given level and, on the
// close-synonym level only, categories via the category-expansion map. Age
// is never relaxed here.
func (l *Ladder) expand(cons query.Constraints, level vocab.Level) query.Constraints {
	out := cons
	if len(cons.Keywords) > 0 {
		out.Keywords = append(append([]string(nil), cons.Keywords...),
			l.vocab.ExpandAll(level, cons.Keywords)...)
	}
	if level == vocab.LevelSynonym && len(cons.Categories) > 0 {
		out.Categories = l.vocab.ExpandCategories(cons.Categories)
	}
	return out
}
