// Package extract parses free-text requests into structured constraints.
package extract

import (
	"strconv"
	"strings"

	"github.com/justthetip/yoto-discovery/internal/domain/catalog"
	"github.com/justthetip/yoto-discovery/internal/domain/chat"
	"github.com/justthetip/yoto-discovery/internal/domain/query"
)

// Extractor turns a user utterance into a query.Constraints. Extraction is
// a pure function of the input text: unrecognized phrasing leaves the
// corresponding field unset, never an error.
type Extractor struct {
	cfg  Config
	pats patterns
}

// New creates an extractor with the default English cue vocabulary.
func New() *Extractor {
	return NewWithConfig(DefaultConfig())
}

// NewWithConfig creates an extractor with a custom cue vocabulary.
func NewWithConfig(cfg Config) *Extractor {
	return &Extractor{cfg: cfg, pats: compile(cfg)}
}

// Extract parses a single utterance.
func (e *Extractor) Extract(text string) query.Constraints {
	text = strings.ToLower(strings.TrimSpace(text))
	if text == "" {
		return query.Constraints{}
	}

	c := query.Constraints{
		MaxPrice:    e.price(text),
		Ages:        e.age(text),
		MaxDuration: e.duration(text),
		Categories:  e.categories(text),
	}
	c.Keywords = e.keywords(text)
	return c
}

// ExtractConversation parses the most recent user utterance only. Earlier
// turns are deliberately excluded so accumulated keywords cannot poison the
// filter; they still travel to the ranking collaborator for context.
func (e *Extractor) ExtractConversation(turns []chat.Turn) query.Constraints {
	return e.Extract(chat.LatestUserUtterance(turns))
}

func (e *Extractor) price(text string) *float64 {
	for _, p := range e.pats.price {
		m := p.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		v, err := strconv.ParseFloat(m[1], 64)
		if err != nil || v <= 0 {
			continue
		}
		return &v
	}
	return nil
}

func (e *Extractor) age(text string) *catalog.AgeRange {
	if window, ok := e.earliestBand(text); ok {
		return &window
	}

	if m := e.pats.ageYear.FindStringSubmatch(text); m != nil {
		return e.ageWindow(m[1])
	}
	if m := e.pats.ageNamed.FindStringSubmatch(text); m != nil {
		return e.ageWindow(m[1])
	}
	// "for N" counts as an age only when N is not followed by a price or
	// duration unit.
	if loc := e.pats.ageFor.FindStringSubmatchIndex(text); loc != nil {
		rest := text[loc[1]:]
		if !e.pats.ageUnit.MatchString(rest) {
			return e.ageWindow(text[loc[2]:loc[3]])
		}
	}
	return nil
}

func (e *Extractor) ageWindow(digits string) *catalog.AgeRange {
	n, err := strconv.Atoi(digits)
	if err != nil {
		return nil
	}
	r := catalog.AgeRange{Min: n - e.cfg.AgeWindow, Max: n + e.cfg.AgeWindow}
	if r.Min < 0 {
		r.Min = 0
	}
	return &r
}

func (e *Extractor) duration(text string) *int {
	for _, p := range e.pats.durMin {
		if m := p.FindStringSubmatch(text); m != nil {
			if n, err := strconv.Atoi(m[1]); err == nil && n > 0 {
				secs := n * 60
				return &secs
			}
		}
	}
	if m := e.pats.durHour.FindStringSubmatch(text); m != nil {
		hours := 1
		if m[1] != "" {
			n, err := strconv.Atoi(m[1])
			if err != nil || n <= 0 {
				return nil
			}
			hours = n
		}
		secs := hours * 3600
		return &secs
	}
	if e.pats.quick.MatchString(text) {
		secs := e.cfg.QuickDuration
		return &secs
	}
	return nil
}

func (e *Extractor) categories(text string) []string {
	var out []string
	seen := map[string]struct{}{}
	for _, tok := range e.pats.token.FindAllString(text, -1) {
		cat, ok := e.cfg.CategoryHints[tok]
		if !ok {
			continue
		}
		if _, dup := seen[cat]; dup {
			continue
		}
		seen[cat] = struct{}{}
		out = append(out, cat)
	}
	return out
}

// keywords returns the residual alphabetic tokens longer than two
// characters, lowercased, stop-worded and deduplicated in text order.
func (e *Extractor) keywords(text string) []string {
	stop := make(map[string]struct{}, len(e.cfg.StopWords)+len(e.cfg.AgeBands))
	for _, w := range e.cfg.StopWords {
		stop[w] = struct{}{}
	}
	// Band names were consumed by age extraction.
	for band := range e.cfg.AgeBands {
		stop[band] = struct{}{}
	}

	var out []string
	seen := map[string]struct{}{}
	for _, tok := range e.pats.token.FindAllString(text, -1) {
		if len(tok) <= 2 {
			continue
		}
		if _, isStop := stop[tok]; isStop {
			continue
		}
		if _, dup := seen[tok]; dup {
			continue
		}
		seen[tok] = struct{}{}
		out = append(out, tok)
	}
	return out
}

// earliestBand resolves a query that names several age bands to the one
// mentioned first in the text, so repeated extractions of the same
// utterance always yield the same window. Ties cannot happen for distinct
// whole-word matches but are broken by band name anyway.
func (e *Extractor) earliestBand(text string) (catalog.AgeRange, bool) {
	bestIdx := -1
	bestBand := ""
	for band := range e.cfg.AgeBands {
		idx := indexWord(text, band)
		if idx < 0 {
			continue
		}
		if bestIdx == -1 || idx < bestIdx || (idx == bestIdx && band < bestBand) {
			bestIdx, bestBand = idx, band
		}
	}
	if bestIdx < 0 {
		return catalog.AgeRange{}, false
	}
	return e.cfg.AgeBands[bestBand], true
}

// indexWord returns the offset of the first whole-word occurrence of word
// in text, or -1.
func indexWord(text, word string) int {
	for start := 0; start <= len(text)-len(word); {
		idx := strings.Index(text[start:], word)
		if idx < 0 {
			return -1
		}
		idx += start
		before := idx == 0 || !isLetter(text[idx-1])
		afterIdx := idx + len(word)
		after := afterIdx >= len(text) || !isLetter(text[afterIdx])
		if before && after {
			return idx
		}
		start = idx + 1
	}
	return -1
}

func isLetter(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}
