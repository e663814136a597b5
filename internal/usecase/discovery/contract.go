package discovery

import (
	"context"

	"github.com/justthetip/yoto-discovery/internal/domain/catalog"
	"github.com/justthetip/yoto-discovery/internal/domain/chat"
	"github.com/justthetip/yoto-discovery/internal/domain/query"
	"github.com/justthetip/yoto-discovery/internal/domain/ranking"
	"github.com/justthetip/yoto-discovery/internal/domain/selection"
)

// ConstraintExtractor parses conversation turns into structured constraints.
type ConstraintExtractor interface {
	ExtractConversation(turns []chat.Turn) query.Constraints
}

// Selector runs the tiered candidate-selection ladder over a snapshot.
type Selector interface {
	Run(items []catalog.Item, cons query.Constraints) []selection.Candidate
}

// Ranker is the external semantic-ranking collaborator.
type Ranker interface {
	Rank(ctx context.Context, cands []selection.Candidate, turns []chat.Turn) (ranking.Outcome, error)
}

// CandidateCache memoizes candidate sets keyed on query text.
type CandidateCache interface {
	Get(ctx context.Context, queryText string) ([]selection.Candidate, bool)
	Put(ctx context.Context, queryText string, cands []selection.Candidate)
}
