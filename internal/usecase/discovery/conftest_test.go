package discovery

import (
	"context"

	"github.com/justthetip/yoto-discovery/internal/domain/catalog"
	"github.com/justthetip/yoto-discovery/internal/domain/chat"
	"github.com/justthetip/yoto-discovery/internal/domain/query"
	"github.com/justthetip/yoto-discovery/internal/domain/ranking"
	"github.com/justthetip/yoto-discovery/internal/domain/selection"
)

type mockExtractor struct {
	constraints query.Constraints
	calls       [][]chat.Turn
}

func (m *mockExtractor) ExtractConversation(turns []chat.Turn) query.Constraints {
	m.calls = append(m.calls, turns)
	return m.constraints
}

type mockSelector struct {
	candidates []selection.Candidate
	calls      int
}

func (m *mockSelector) Run(_ []catalog.Item, _ query.Constraints) []selection.Candidate {
	m.calls++
	return m.candidates
}

type mockRanker struct {
	outcome ranking.Outcome
	err     error
	calls   int
}

func (m *mockRanker) Rank(_ context.Context, _ []selection.Candidate, _ []chat.Turn) (ranking.Outcome, error) {
	m.calls++
	return m.outcome, m.err
}

type mockCache struct {
	entries map[string][]selection.Candidate
	puts    int
}

func newMockCache() *mockCache {
	return &mockCache{entries: map[string][]selection.Candidate{}}
}

func (m *mockCache) Get(_ context.Context, queryText string) ([]selection.Candidate, bool) {
	cands, ok := m.entries[queryText]
	return cands, ok
}

func (m *mockCache) Put(_ context.Context, queryText string, cands []selection.Candidate) {
	m.puts++
	m.entries[queryText] = cands
}

func snapshot() []catalog.Item {
	return []catalog.Item{
		{ID: "a", Title: "First", Available: true},
		{ID: "b", Title: "Second", Available: true},
	}
}

func candidatesFor(ids ...string) []selection.Candidate {
	out := make([]selection.Candidate, len(ids))
	for i, id := range ids {
		out[i] = selection.Candidate{
			Item: catalog.Item{ID: id, Title: "Item " + id, Available: true},
			Tier: selection.TierLiteral,
		}
	}
	return out
}

func userTurn(text string) []chat.Turn {
	return []chat.Turn{{Role: chat.RoleUser, Content: text}}
}
