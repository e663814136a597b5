package engine

import "github.com/justthetip/yoto-discovery/internal/domain/selection"

// Assemble merges tier outputs into the final candidate set: tier order is
// preserved, duplicates are dropped by ID (the tiers already enforce
// exclusion, this is the final invariant check) and the payload is capped
// at MaxCandidates.
func Assemble(cands []selection.Candidate) []selection.Candidate {
	seen := make(map[string]struct{}, len(cands))
	out := make([]selection.Candidate, 0, len(cands))
	for _, c := range cands {
		if _, dup := seen[c.Item.ID]; dup {
			continue
		}
		seen[c.Item.ID] = struct{}{}
		out = append(out, c)
		if len(out) == MaxCandidates {
			break
		}
	}
	return out
}
