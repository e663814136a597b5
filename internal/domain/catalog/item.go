// Package catalog holds the immutable product catalog snapshot types.
package catalog

import "strings"

// AgeRange is an inclusive [Min, Max] age window in years.
type AgeRange struct {
	Min int
	Max int
}

// Overlaps reports whether the two ranges share at least one year.
func (r AgeRange) Overlaps(o AgeRange) bool {
	return r.Min <= o.Max && o.Min <= r.Max
}

// Within reports whether r is fully contained in o.
func (r AgeRange) Within(o AgeRange) bool {
	return r.Min >= o.Min && r.Max <= o.Max
}

// Item is a single catalog product. Items are loaded once per session and
// never mutated by the engine; per-query annotations live in selection.Candidate.
type Item struct {
	ID          string
	Title       string
	Author      string
	Description string
	Price       float64 // GBP
	Duration    int     // seconds, 0 when unknown
	Ages        *AgeRange
	Categories  []string
	Available   bool
	New         bool
}

// SearchableText returns the lowercased concatenation of all text fields
// that keyword matching runs against.
func (i *Item) SearchableText() string {
	parts := make([]string, 0, 4+len(i.Categories))
	parts = append(parts, i.Title, i.Author, i.Description)
	parts = append(parts, i.Categories...)
	return strings.ToLower(strings.Join(parts, " "))
}

// MetadataCompleteness counts how many curation fields are populated
// (author, description, age data). Used as a popularity proxy by the
// guaranteed-fallback tier: well-curated items rank first.
func (i *Item) MetadataCompleteness() int {
	n := 0
	if strings.TrimSpace(i.Author) != "" {
		n++
	}
	if strings.TrimSpace(i.Description) != "" {
		n++
	}
	if i.Ages != nil {
		n++
	}
	return n
}
