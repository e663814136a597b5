package openai

import (
	"errors"
	"testing"

	"github.com/justthetip/yoto-discovery/internal/domain"
	"github.com/justthetip/yoto-discovery/internal/domain/catalog"
	"github.com/justthetip/yoto-discovery/internal/domain/ranking"
	"github.com/justthetip/yoto-discovery/internal/domain/selection"
)

func candidates(ids ...string) []selection.Candidate {
	out := make([]selection.Candidate, len(ids))
	for i, id := range ids {
		out[i] = selection.Candidate{
			Item: catalog.Item{ID: id, Title: "Item " + id},
			Tier: selection.TierLiteral,
		}
	}
	return out
}

func TestParseOutcome_Rankings(t *testing.T) {
	content := `{"results":[
		{"id":"a","score":91,"reason":"strong match"},
		{"id":"b","score":55,"reason":"ok"}
	]}`

	out, err := parseOutcome(content, candidates("a", "b"))
	if err != nil {
		t.Fatalf("parseOutcome: %v", err)
	}
	if len(out.Rankings) != 2 {
		t.Fatalf("rankings = %d, want 2", len(out.Rankings))
	}
	if out.Rankings[0].ID != "a" || out.Rankings[0].Score != 91 || out.Rankings[0].Reason != "strong match" {
		t.Errorf("rankings[0] = %+v", out.Rankings[0])
	}
}

func TestParseOutcome_UnknownIDsDropped(t *testing.T) {
	content := `{"results":[{"id":"ghost","score":99,"reason":"made up"},{"id":"a","score":50}]}`

	out, err := parseOutcome(content, candidates("a"))
	if err != nil {
		t.Fatalf("parseOutcome: %v", err)
	}
	if len(out.Rankings) != 1 || out.Rankings[0].ID != "a" {
		t.Errorf("rankings = %+v, want ghost dropped", out.Rankings)
	}
}

func TestParseOutcome_ScoresClamped(t *testing.T) {
	content := `{"results":[{"id":"a","score":250},{"id":"b","score":-10}]}`

	out, err := parseOutcome(content, candidates("a", "b"))
	if err != nil {
		t.Fatalf("parseOutcome: %v", err)
	}
	if out.Rankings[0].Score != ranking.MaxScore || out.Rankings[1].Score != ranking.MinScore {
		t.Errorf("rankings = %+v, want clamped scores", out.Rankings)
	}
}

func TestParseOutcome_NeedsMoreInfo(t *testing.T) {
	content := `{"needs_more_info":{"question":"How old is the listener?"}}`

	out, err := parseOutcome(content, candidates("a"))
	if err != nil {
		t.Fatalf("parseOutcome: %v", err)
	}
	if !out.NeedsMoreInfo || out.Question != "How old is the listener?" {
		t.Errorf("outcome = %+v", out)
	}
	if len(out.Rankings) != 0 {
		t.Errorf("unexpected rankings: %v", out.Rankings)
	}
}

func TestParseOutcome_CodeFencedJSON(t *testing.T) {
	content := "```json\n{\"results\":[{\"id\":\"a\",\"score\":80,\"reason\":\"good\"}]}\n```"

	out, err := parseOutcome(content, candidates("a"))
	if err != nil {
		t.Fatalf("parseOutcome: %v", err)
	}
	if len(out.Rankings) != 1 {
		t.Errorf("rankings = %+v", out.Rankings)
	}
}

func TestParseOutcome_InvalidJSON(t *testing.T) {
	_, err := parseOutcome("I would recommend the dinosaur one!", candidates("a"))
	if !errors.Is(err, domain.ErrRankerUnavailable) {
		t.Fatalf("expected ErrRankerUnavailable, got %v", err)
	}
}

func TestStripCodeFence(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{`{"ok":1}`, `{"ok":1}`},
		{"```json\n{\"ok\":1}\n```", `{"ok":1}`},
		{"```\n{\"ok\":1}\n```", `{"ok":1}`},
		{"  {\"ok\":1}  ", `{"ok":1}`},
	}
	for _, tt := range tests {
		if got := stripCodeFence(tt.in); got != tt.want {
			t.Errorf("stripCodeFence(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestCandidatePayloads(t *testing.T) {
	cand := selection.Candidate{
		Item: catalog.Item{
			ID:         "a",
			Title:      "Dinosaur Roar",
			Price:      9.99,
			Ages:       &catalog.AgeRange{Min: 2, Max: 5},
			Categories: []string{"Stories"},
			Available:  true,
		},
		Score: 7,
		Tier:  selection.TierBroad,
	}

	got := candidatePayloads([]selection.Candidate{cand})
	if len(got) != 1 {
		t.Fatalf("payloads = %d, want 1", len(got))
	}
	p := got[0]
	if p.ID != "a" || p.Price != 9.99 || p.Tier != 3 {
		t.Errorf("payload = %+v", p)
	}
	if len(p.AgeRange) != 2 || p.AgeRange[0] != 2 || p.AgeRange[1] != 5 {
		t.Errorf("ageRange = %v, want [2 5]", p.AgeRange)
	}

	noAges := selection.Candidate{Item: catalog.Item{ID: "b"}}
	if got := candidatePayloads([]selection.Candidate{noAges}); got[0].AgeRange != nil {
		t.Errorf("ageRange = %v, want nil for an item without age data", got[0].AgeRange)
	}
}
