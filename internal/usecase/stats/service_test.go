package stats

import (
	"testing"

	"github.com/justthetip/yoto-discovery/internal/domain/catalog"
)

func item(id string, price float64, duration int) catalog.Item {
	return catalog.Item{ID: id, Title: "Item " + id, Price: price, Duration: duration, Available: true}
}

func TestSummarize_Counts(t *testing.T) {
	items := []catalog.Item{
		item("a", 9.99, 20*60),
		item("b", 14.99, 45*60),
		item("c", 0, 0),
	}
	items[1].New = true
	items[2].Available = false

	s := Summarize(items)
	if s.Total != 3 || s.Available != 2 || s.New != 1 {
		t.Errorf("counts = %d/%d/%d, want 3/2/1", s.Total, s.Available, s.New)
	}
}

func TestSummarize_PriceStats(t *testing.T) {
	items := []catalog.Item{
		item("a", 5, 0),
		item("b", 15, 0),
		item("c", 25, 0),
		item("d", 35, 0),
		item("e", 0, 0), // unpriced, excluded
	}

	s := Summarize(items)
	p := s.Price
	if p.Count != 4 {
		t.Fatalf("priced count = %d, want 4", p.Count)
	}
	if p.Min != 5 || p.Max != 35 || p.Average != 20 || p.Median != 25 {
		t.Errorf("price stats = %+v", p)
	}

	wantBuckets := map[string]int{
		"under £10": 1, "£10-£20": 1, "£20-£30": 1, "over £30": 1,
	}
	for _, b := range p.Buckets {
		if b.Count != wantBuckets[b.Name] {
			t.Errorf("bucket %s = %d, want %d", b.Name, b.Count, wantBuckets[b.Name])
		}
	}
}

func TestSummarize_RuntimeStats(t *testing.T) {
	items := []catalog.Item{
		item("a", 0, 10*60),
		item("b", 0, 45*60),
		item("c", 0, 90*60),
		item("d", 0, 3*60*60),
	}

	s := Summarize(items)
	r := s.Runtime
	if r.Count != 4 {
		t.Fatalf("runtime count = %d, want 4", r.Count)
	}
	// (10+45+90+180) min / 4
	if r.AverageMinutes != 81.25 {
		t.Errorf("average = %v, want 81.25", r.AverageMinutes)
	}
	if r.TotalHours != 325.0/60 {
		t.Errorf("total hours = %v", r.TotalHours)
	}
	for i, want := range []int{1, 1, 1, 1} {
		if r.Buckets[i].Count != want {
			t.Errorf("bucket %s = %d, want %d", r.Buckets[i].Name, r.Buckets[i].Count, want)
		}
	}
}

func TestSummarize_TopAuthorsTiesAlphabetical(t *testing.T) {
	items := []catalog.Item{item("a", 0, 0), item("b", 0, 0), item("c", 0, 0)}
	items[0].Author = "Zadie"
	items[1].Author = "Alice"
	items[2].Author = "Alice"

	s := Summarize(items)
	if s.Authors != 2 {
		t.Fatalf("distinct authors = %d, want 2", s.Authors)
	}
	if s.TopAuthors[0].Name != "Alice" || s.TopAuthors[0].Count != 2 {
		t.Errorf("top author = %+v", s.TopAuthors[0])
	}

	// equal counts fall back to name order
	items[2].Author = "Beth"
	s = Summarize(items)
	wantOrder := []string{"Alice", "Beth", "Zadie"}
	for i, name := range wantOrder {
		if s.TopAuthors[i].Name != name {
			t.Errorf("top authors[%d] = %s, want %s", i, s.TopAuthors[i].Name, name)
		}
	}
}

func TestSummarize_AgeGroupsOverlap(t *testing.T) {
	it := item("a", 0, 0)
	it.Ages = &catalog.AgeRange{Min: 3, Max: 6}

	s := Summarize([]catalog.Item{it})

	counts := map[string]int{}
	for _, g := range s.AgeGroups {
		counts[g.Name] = g.Count
	}
	// [3,6] touches toddlers, preschool and early elementary
	for _, name := range []string{"toddlers (2-4)", "preschool (3-5)", "early elementary (5-8)"} {
		if counts[name] != 1 {
			t.Errorf("group %s = %d, want 1", name, counts[name])
		}
	}
	for _, name := range []string{"babies (0-2)", "pre-teen+ (11+)"} {
		if counts[name] != 0 {
			t.Errorf("group %s = %d, want 0", name, counts[name])
		}
	}
}

func TestSummarize_Empty(t *testing.T) {
	s := Summarize(nil)
	if s.Total != 0 || s.Price.Count != 0 || s.Runtime.Count != 0 {
		t.Errorf("empty summary not zeroed: %+v", s)
	}
}
