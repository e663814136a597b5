package extract

import (
	"regexp"
	"strings"

	"github.com/justthetip/yoto-discovery/internal/domain/catalog"
)

// Config holds the cue vocabulary the extractor compiles its patterns from.
// Wordings are product-tuned per locale, so they live here rather than in
// control flow.
type Config struct {
	// CurrencySymbols and CurrencyWords are the explicit currency cues a
	// bare number must carry before it is read as a price. Without one of
	// these, "under 2 year olds" would parse as "under £2".
	CurrencySymbols []string
	CurrencyWords   []string
	// BoundCues precede an upper bound ("under £5"); TrailingBoundCues
	// follow one ("£5 or less").
	BoundCues         []string
	TrailingBoundCues []string
	// AgeWindow widens an explicit age N into [N-AgeWindow, N+AgeWindow].
	AgeWindow int
	// AgeBands maps named bands ("toddler") to fixed windows.
	AgeBands map[string]catalog.AgeRange
	// QuickWords map bare words like "quick" to QuickDuration seconds.
	QuickWords    []string
	QuickDuration int
	// CategoryHints maps common nouns to catalog category tags.
	CategoryHints map[string]string
	// StopWords are dropped from the residual keyword list. Cue words
	// consumed by the patterns above belong here too.
	StopWords []string
}

// DefaultConfig returns the English (UK storefront) cue vocabulary.
func DefaultConfig() Config {
	return Config{
		CurrencySymbols:   []string{"£", "$", "€"},
		CurrencyWords:     []string{"pounds", "pound", "quid", "gbp"},
		BoundCues:         []string{"less than", "under", "below", "maximum", "max", "up to"},
		TrailingBoundCues: []string{"or less", "or under", "maximum", "max"},
		AgeWindow:         1,
		AgeBands: map[string]catalog.AgeRange{
			"baby":         {Min: 0, Max: 2},
			"babies":       {Min: 0, Max: 2},
			"toddler":      {Min: 2, Max: 4},
			"toddlers":     {Min: 2, Max: 4},
			"preschool":    {Min: 3, Max: 5},
			"preschooler":  {Min: 3, Max: 5},
			"preschoolers": {Min: 3, Max: 5},
		},
		QuickWords:    []string{"quick", "short"},
		QuickDuration: 30 * 60,
		CategoryHints: map[string]string{
			"story":       "Stories",
			"stories":     "Stories",
			"tale":        "Stories",
			"tales":       "Stories",
			"audiobook":   "Audiobooks",
			"audiobooks":  "Audiobooks",
			"song":        "Music",
			"songs":       "Music",
			"music":       "Music",
			"rhyme":       "Music",
			"rhymes":      "Music",
			"podcast":     "Podcasts",
			"podcasts":    "Podcasts",
			"educational": "Learning",
			"learning":    "Learning",
			"activity":    "Activities",
			"activities":  "Activities",
		},
		StopWords: []string{
			"the", "and", "for", "with", "that", "this", "are", "was",
			"has", "have", "had", "can", "could", "you", "your", "our",
			"their", "please", "find", "show", "give", "get", "want",
			"need", "would", "like", "love", "looking", "suggest",
			"recommend", "some", "something", "anything", "about",
			"around", "under", "over", "less", "than", "below", "max",
			"maximum", "min", "mins", "minute", "minutes", "hour",
			"hours", "year", "years", "old", "olds", "age", "aged",
			"quick", "short", "pounds", "pound", "quid", "gbp", "kid",
			"kids", "child", "children", "little", "her", "him", "his",
			"she", "they", "them", "there", "what", "when", "who",
			"how", "not", "all", "any", "but", "from", "out", "too",
			"very", "just", "more", "most", "other", "which", "also",
		},
	}
}

// patterns holds the compiled regular expressions for one cue vocabulary.
type patterns struct {
	price    []*regexp.Regexp
	ageYear  *regexp.Regexp
	ageNamed *regexp.Regexp
	ageFor   *regexp.Regexp
	ageUnit  *regexp.Regexp
	durMin   []*regexp.Regexp
	durHour  *regexp.Regexp
	quick    *regexp.Regexp
	token    *regexp.Regexp
}

const number = `(\d{1,3}(?:\.\d{1,2})?)`

func compile(cfg Config) patterns {
	sym := alternation(cfg.CurrencySymbols)
	unit := alternation(cfg.CurrencyWords)
	bound := alternation(cfg.BoundCues)
	trailing := alternation(cfg.TrailingBoundCues)

	return patterns{
		// A price needs a currency cue next to a bound cue, in either
		// order. A bare bounded number is never a price.
		price: []*regexp.Regexp{
			regexp.MustCompile(`(?:` + bound + `)\s*(?:` + sym + `)\s*` + number),
			regexp.MustCompile(`(?:` + sym + `)\s*` + number + `\s*(?:` + trailing + `)`),
			regexp.MustCompile(`(?:` + bound + `)\s*` + number + `\s*(?:` + unit + `)`),
			regexp.MustCompile(number + `\s*(?:` + unit + `)\s*(?:` + trailing + `)`),
		},
		ageYear:  regexp.MustCompile(`(\d{1,2})\s*[- ]?\s*year[- ]?olds?`),
		ageNamed: regexp.MustCompile(`\bage\s+(\d{1,2})\b`),
		ageFor:   regexp.MustCompile(`\bfor\s+(?:a\s+|my\s+)?(\d{1,2})\b`),
		// ageUnit guards the "for N" pattern against durations and
		// prices ("for 10 minutes").
		ageUnit: regexp.MustCompile(`^\s*(?:min|hour|` + unit + `|` + sym + `)`),
		durMin: []*regexp.Regexp{
			regexp.MustCompile(`(?:` + bound + `|shorter than|within)\s*(\d{1,3})\s*min(?:ute)?s?\b`),
			regexp.MustCompile(`(\d{1,3})\s*min(?:ute)?s?\s+(?:or less|or shorter|or under)`),
		},
		durHour: regexp.MustCompile(`(?:` + bound + `|shorter than)\s*(?:(?:a|an)\s+|(\d{1,2})\s*)hours?\b`),
		quick:   regexp.MustCompile(`\b(?:` + alternation(cfg.QuickWords) + `)\b`),
		token:   regexp.MustCompile(`[a-z]+`),
	}
}

func alternation(words []string) string {
	quoted := make([]string, len(words))
	for i, w := range words {
		quoted[i] = regexp.QuoteMeta(w)
	}
	return strings.Join(quoted, "|")
}
