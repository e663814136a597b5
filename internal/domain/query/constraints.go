// Package query holds the structured constraint set parsed from free text.
package query

import "github.com/justthetip/yoto-discovery/internal/domain/catalog"

// Constraints is the structured form of a free-text request. Every field is
// optional; the zero value matches every available item.
//
// MaxPrice and MaxDuration are hard constraints: an item violating either is
// excluded at every tier. Ages, Categories and Keywords are soft constraints
// combined by AND; when none of them is set, items pass on hard constraints
// alone.
type Constraints struct {
	MaxPrice    *float64
	Ages        *catalog.AgeRange
	MaxDuration *int // seconds
	Categories  []string
	Keywords    []string
}

// IsEmpty reports whether no constraint of any kind was recognized.
func (c Constraints) IsEmpty() bool {
	return c.MaxPrice == nil && c.Ages == nil && c.MaxDuration == nil &&
		len(c.Categories) == 0 && len(c.Keywords) == 0
}

// HasSoft reports whether at least one soft constraint is set.
func (c Constraints) HasSoft() bool {
	return c.Ages != nil || len(c.Categories) > 0 || len(c.Keywords) > 0
}

// HasExpandable reports whether the query carries terms the semantic
// vocabulary can broaden (age alone is never expanded).
func (c Constraints) HasExpandable() bool {
	return len(c.Categories) > 0 || len(c.Keywords) > 0
}
