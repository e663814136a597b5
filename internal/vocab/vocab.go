// Package vocab is the static semantic-expansion vocabulary consulted when
// literal keyword matches are scarce. It is read-only and process-wide.
package vocab

import "strings"

// Level is the expansion breadth consulted by a ladder tier.
type Level int

// Expansion breadth levels, narrowest first.
const (
	// LevelSynonym holds close synonyms of a seed term.
	LevelSynonym Level = iota + 1
	// LevelBroad holds broader semantic categories (a specific animal
	// expands to "woodland", "wildlife").
	LevelBroad
	// LevelVeryBroad holds very broad concept words ("adventure",
	// "discovery").
	LevelVeryBroad
)

// IsValid checks that l is a known breadth level.
func (l Level) IsValid() bool {
	return l >= LevelSynonym && l <= LevelVeryBroad
}

// Table maps seed terms to related terms, organized by breadth level.
type Table struct {
	levels     map[Level]map[string][]string
	categories map[string][]string
}

// New creates a table from explicit level data and a category-expansion map.
// Intended for per-locale vocabularies; most callers want Default.
func New(levels map[Level]map[string][]string, categories map[string][]string) *Table {
	if levels == nil {
		levels = map[Level]map[string][]string{}
	}
	if categories == nil {
		categories = map[string][]string{}
	}
	return &Table{levels: levels, categories: categories}
}

// Default returns the built-in English vocabulary.
func Default() *Table {
	return New(defaultLevels, defaultCategoryExpansions)
}

// Expand returns the related terms for word at the given breadth level.
// The lookup tolerates plural/singular variation of the seed. Unknown words
// return nil: absence of vocabulary is never an error.
func (t *Table) Expand(level Level, word string) []string {
	seeds := t.levels[level]
	if seeds == nil {
		return nil
	}
	for _, form := range Forms(word) {
		if terms, ok := seeds[form]; ok {
			return terms
		}
	}
	return nil
}

// ExpandAll returns the deduplicated expansion terms for all words at the
// given level, excluding terms already present in words.
func (t *Table) ExpandAll(level Level, words []string) []string {
	seen := make(map[string]struct{}, len(words))
	for _, w := range words {
		seen[strings.ToLower(w)] = struct{}{}
	}

	var out []string
	for _, w := range words {
		for _, term := range t.Expand(level, w) {
			term = strings.ToLower(term)
			if _, dup := seen[term]; dup {
				continue
			}
			seen[term] = struct{}{}
			out = append(out, term)
		}
	}
	return out
}

// ExpandCategories widens category hints into their neighboring categories
// (used by the close-synonym tier only). The originals are kept first.
func (t *Table) ExpandCategories(categories []string) []string {
	seen := make(map[string]struct{}, len(categories))
	out := make([]string, 0, len(categories))
	for _, c := range categories {
		key := strings.ToLower(c)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, c)
	}
	for _, c := range categories {
		for _, related := range t.categories[strings.ToLower(c)] {
			key := strings.ToLower(related)
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			out = append(out, related)
		}
	}
	return out
}
