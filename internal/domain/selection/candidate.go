// Package selection holds the per-query candidate set handed to the ranker.
package selection

import "github.com/justthetip/yoto-discovery/internal/domain/catalog"

// Tier identifies which pass of the fallback ladder produced a candidate.
type Tier int

// Ladder tiers, most literal first.
const (
	// TierLiteral matches the constraint set exactly as extracted.
	TierLiteral Tier = iota + 1
	// TierSynonym adds close synonyms and expanded categories.
	TierSynonym
	// TierBroad adds broad semantic categories.
	TierBroad
	// TierVeryBroad adds very broad concept words.
	TierVeryBroad
	// TierFallback drops all soft constraints and ranks by metadata
	// completeness; it only ever respects price/duration and availability.
	TierFallback
)

// IsValid checks that t is one of the five ladder tiers.
func (t Tier) IsValid() bool {
	return t >= TierLiteral && t <= TierFallback
}

// Candidate annotates a catalog item with per-query selection state. The
// item itself is shared with the snapshot and must not be mutated.
type Candidate struct {
	Item     catalog.Item
	Score    int
	Tier     Tier
	Expanded bool
}
