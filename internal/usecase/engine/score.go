package engine

import (
	"sort"
	"strings"

	"github.com/justthetip/yoto-discovery/internal/domain/catalog"
	"github.com/justthetip/yoto-discovery/internal/domain/query"
	"github.com/justthetip/yoto-discovery/internal/domain/selection"
	"github.com/justthetip/yoto-discovery/internal/vocab"
)

// Relevance weights. Scores order candidates within a tier only; they never
// decide pass/fail and have no fixed range.
const (
	titleKeywordWeight       = 3
	descriptionKeywordWeight = 1
	noveltyBonus             = 2
	agePrecisionBonus        = 5
)

// Score computes the intra-tier relevance of a passing item: keyword hits
// in the title beat hits in the description, new items get a nudge, and an
// item whose age range sits fully inside the requested window outranks one
// that merely overlaps it.
func Score(item *catalog.Item, c query.Constraints) int {
	score := 0
	title := strings.ToLower(item.Title)
	desc := strings.ToLower(item.Description)

	for _, kw := range c.Keywords {
		if vocab.Matches(title, kw) {
			score += titleKeywordWeight
		}
		if vocab.Matches(desc, kw) {
			score += descriptionKeywordWeight
		}
	}
	if item.New {
		score += noveltyBonus
	}
	if c.Ages != nil && item.Ages != nil && item.Ages.Within(*c.Ages) {
		score += agePrecisionBonus
	}
	return score
}

// sortByScore orders candidates descending by score. The sort is stable so
// ties retain catalog order and repeated runs yield identical output.
func sortByScore(cands []selection.Candidate) {
	sort.SliceStable(cands, func(i, j int) bool {
		return cands[i].Score > cands[j].Score
	})
}
