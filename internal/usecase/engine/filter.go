// Package engine implements the tiered candidate-selection ladder: filter,
// scorer, tier controller and result assembler.
package engine

import (
	"strings"

	"github.com/justthetip/yoto-discovery/internal/domain/catalog"
	"github.com/justthetip/yoto-discovery/internal/domain/query"
	"github.com/justthetip/yoto-discovery/internal/vocab"
)

// Passes reports whether an item satisfies the constraint set.
//
// Availability and the hard constraints (price, duration) are exclusionary.
// Soft constraints (age, category, keyword) are an AND of all specified
// checks: a query naming both an age and a keyword is not satisfied by age
// alone. When no soft constraint is specified the item passes on hard
// constraints alone. Absent item fields fail the soft checks that depend on
// them rather than erroring, so one bad record never aborts a pass.
func Passes(item *catalog.Item, c query.Constraints) bool {
	if !item.Available {
		return false
	}
	if c.MaxPrice != nil && item.Price > *c.MaxPrice {
		return false
	}
	if c.MaxDuration != nil && item.Duration > *c.MaxDuration {
		return false
	}

	if !c.HasSoft() {
		return true
	}

	if c.Ages != nil {
		if item.Ages == nil || !item.Ages.Overlaps(*c.Ages) {
			return false
		}
	}
	if len(c.Categories) > 0 && !matchesCategory(item, c.Categories) {
		return false
	}
	if len(c.Keywords) > 0 && !matchesKeyword(item, c.Keywords) {
		return false
	}
	return true
}

// matchesCategory checks for at least one fuzzy (case-insensitive
// substring, either direction) category match.
func matchesCategory(item *catalog.Item, categories []string) bool {
	for _, itemCat := range item.Categories {
		ic := strings.ToLower(itemCat)
		if ic == "" {
			continue
		}
		for _, want := range categories {
			w := strings.ToLower(want)
			if w == "" {
				continue
			}
			if strings.Contains(ic, w) || strings.Contains(w, ic) {
				return true
			}
		}
	}
	return false
}

// matchesKeyword checks for at least one keyword hit in the item's combined
// searchable text under the morphological tolerance rule.
func matchesKeyword(item *catalog.Item, keywords []string) bool {
	text := item.SearchableText()
	for _, kw := range keywords {
		if vocab.Matches(text, kw) {
			return true
		}
	}
	return false
}
