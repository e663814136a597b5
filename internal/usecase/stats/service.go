// Package stats computes catalog-wide aggregates for the stats surface.
package stats

import (
	"sort"

	"github.com/justthetip/yoto-discovery/internal/domain/catalog"
)

// topN caps the category and author leaderboards.
const topN = 15

// NameCount is a labeled tally.
type NameCount struct {
	Name  string
	Count int
}

// PriceStats summarizes the priced part of the catalog.
type PriceStats struct {
	Count   int
	Min     float64
	Max     float64
	Average float64
	Median  float64
	Buckets []NameCount
}

// RuntimeStats summarizes items with runtime data.
type RuntimeStats struct {
	Count          int
	AverageMinutes float64
	TotalHours     float64
	Buckets        []NameCount
}

// Summary is the full catalog statistics report.
type Summary struct {
	Total      int
	Available  int
	New        int
	Price      PriceStats
	Categories []NameCount
	Authors    int
	TopAuthors []NameCount
	Runtime    RuntimeStats
	AgeGroups  []NameCount
}

// Summarize computes catalog statistics over a snapshot. Pure and
// deterministic: leaderboards break count ties alphabetically.
func Summarize(items []catalog.Item) Summary {
	s := Summary{Total: len(items)}

	var prices []float64
	var runtimes []int
	categories := map[string]int{}
	authors := map[string]int{}

	for i := range items {
		it := &items[i]
		if it.Available {
			s.Available++
		}
		if it.New {
			s.New++
		}
		if it.Price > 0 {
			prices = append(prices, it.Price)
		}
		if it.Duration > 0 {
			runtimes = append(runtimes, it.Duration)
		}
		for _, c := range it.Categories {
			categories[c]++
		}
		if it.Author != "" {
			authors[it.Author]++
		}
	}

	s.Price = priceStats(prices)
	s.Categories = top(categories, topN)
	s.Authors = len(authors)
	s.TopAuthors = top(authors, topN)
	s.Runtime = runtimeStats(runtimes)
	s.AgeGroups = ageGroups(items)
	return s
}

func priceStats(prices []float64) PriceStats {
	ps := PriceStats{Count: len(prices)}
	if len(prices) == 0 {
		return ps
	}

	sorted := append([]float64(nil), prices...)
	sort.Float64s(sorted)

	sum := 0.0
	for _, p := range sorted {
		sum += p
	}
	ps.Min = sorted[0]
	ps.Max = sorted[len(sorted)-1]
	ps.Average = sum / float64(len(sorted))
	ps.Median = sorted[len(sorted)/2]

	buckets := []NameCount{
		{Name: "under £10"},
		{Name: "£10-£20"},
		{Name: "£20-£30"},
		{Name: "over £30"},
	}
	for _, p := range sorted {
		switch {
		case p < 10:
			buckets[0].Count++
		case p < 20:
			buckets[1].Count++
		case p < 30:
			buckets[2].Count++
		default:
			buckets[3].Count++
		}
	}
	ps.Buckets = buckets
	return ps
}

func runtimeStats(runtimes []int) RuntimeStats {
	rs := RuntimeStats{Count: len(runtimes)}
	if len(runtimes) == 0 {
		return rs
	}

	total := 0
	buckets := []NameCount{
		{Name: "under 30 min"},
		{Name: "30-60 min"},
		{Name: "1-2 hours"},
		{Name: "over 2 hours"},
	}
	for _, r := range runtimes {
		total += r
		switch {
		case r < 30*60:
			buckets[0].Count++
		case r < 60*60:
			buckets[1].Count++
		case r < 2*60*60:
			buckets[2].Count++
		default:
			buckets[3].Count++
		}
	}
	rs.AverageMinutes = float64(total) / float64(len(runtimes)) / 60
	rs.TotalHours = float64(total) / 3600
	rs.Buckets = buckets
	return rs
}

// ageGroups counts items whose age range overlaps each named band. Bands
// overlap, so an item can appear in several.
func ageGroups(items []catalog.Item) []NameCount {
	bands := []struct {
		name string
		r    catalog.AgeRange
	}{
		{"babies (0-2)", catalog.AgeRange{Min: 0, Max: 2}},
		{"toddlers (2-4)", catalog.AgeRange{Min: 2, Max: 4}},
		{"preschool (3-5)", catalog.AgeRange{Min: 3, Max: 5}},
		{"early elementary (5-8)", catalog.AgeRange{Min: 5, Max: 8}},
		{"middle elementary (8-11)", catalog.AgeRange{Min: 8, Max: 11}},
		{"pre-teen+ (11+)", catalog.AgeRange{Min: 11, Max: 99}},
	}

	out := make([]NameCount, len(bands))
	for i, b := range bands {
		out[i].Name = b.name
		for j := range items {
			if items[j].Ages != nil && items[j].Ages.Overlaps(b.r) {
				out[i].Count++
			}
		}
	}
	return out
}

func top(counts map[string]int, n int) []NameCount {
	out := make([]NameCount, 0, len(counts))
	for name, count := range counts {
		out = append(out, NameCount{Name: name, Count: count})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Name < out[j].Name
	})
	if len(out) > n {
		out = out[:n]
	}
	return out
}
