// Package discovery orchestrates the query-to-candidates pipeline.
package discovery

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/justthetip/yoto-discovery/internal/domain"
	"github.com/justthetip/yoto-discovery/internal/domain/catalog"
	"github.com/justthetip/yoto-discovery/internal/domain/chat"
	"github.com/justthetip/yoto-discovery/internal/domain/query"
	"github.com/justthetip/yoto-discovery/internal/domain/ranking"
	"github.com/justthetip/yoto-discovery/internal/domain/selection"
)

// Service runs discovery requests against a read-only catalog snapshot.
// The snapshot is shared across concurrent requests; all per-query state is
// request-scoped.
type Service struct {
	items     []catalog.Item
	extractor ConstraintExtractor
	selector  Selector
	ranker    Ranker
	cache     CandidateCache
	logger    *zap.Logger
}

// New creates a discovery service.
func New(items []catalog.Item, extractor ConstraintExtractor, selector Selector, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{items: items, extractor: extractor, selector: selector, logger: logger}
}

// WithRanker attaches the ranking collaborator. Without one, responses
// carry the candidate set only.
func (s *Service) WithRanker(r Ranker) *Service {
	s.ranker = r
	return s
}

// WithCache attaches candidate memoization.
func (s *Service) WithCache(c CandidateCache) *Service {
	s.cache = c
	return s
}

// Result is one discovery response.
type Result struct {
	Query         string
	Constraints   query.Constraints
	Candidates    []selection.Candidate
	Rankings      []ranking.Ranking
	NeedsMoreInfo bool
	Question      string
}

// Discover runs the pipeline for one conversation. The candidate set comes
// from the ladder (or the memoization cache); the ranking collaborator is
// consulted afterwards when configured, but its failure never fails the
// request: candidates are always returned.
func (s *Service) Discover(ctx context.Context, turns []chat.Turn) (Result, error) {
	if len(s.items) == 0 {
		return Result{}, domain.ErrCatalogUnavailable
	}

	utterance := strings.TrimSpace(chat.LatestUserUtterance(turns))
	if utterance == "" {
		return Result{}, domain.ErrEmptyQuery
	}

	cons := s.extractor.ExtractConversation(turns)

	cands, cached := s.lookupCache(ctx, utterance)
	if !cached {
		cands = s.selector.Run(s.items, cons)
		s.storeCache(ctx, utterance, cands)
	}

	res := Result{
		Query:       utterance,
		Constraints: cons,
		Candidates:  cands,
	}

	s.logger.Debug("candidates selected",
		zap.Int("count", len(cands)),
		zap.Bool("cached", cached),
	)

	if s.ranker != nil && len(cands) > 0 {
		s.rank(ctx, turns, &res)
	}
	return res, nil
}

// rank consults the collaborator and merges its outcome. Rankings for IDs
// that were never sent are discarded; IDs the collaborator omitted are
// simply not chosen.
func (s *Service) rank(ctx context.Context, turns []chat.Turn, res *Result) {
	outcome, err := s.ranker.Rank(ctx, res.Candidates, turns)
	if err != nil {
		s.logger.Warn("ranking collaborator failed, returning unranked candidates", zap.Error(err))
		return
	}

	if outcome.NeedsMoreInfo {
		res.NeedsMoreInfo = true
		res.Question = outcome.Question
		return
	}

	known := make(map[string]struct{}, len(res.Candidates))
	for _, c := range res.Candidates {
		known[c.Item.ID] = struct{}{}
	}
	for _, r := range outcome.Rankings {
		if _, ok := known[r.ID]; !ok {
			continue
		}
		r.Score = ranking.Clamp(r.Score)
		res.Rankings = append(res.Rankings, r)
	}
}

func (s *Service) lookupCache(ctx context.Context, queryText string) ([]selection.Candidate, bool) {
	if s.cache == nil {
		return nil, false
	}
	return s.cache.Get(ctx, queryText)
}

func (s *Service) storeCache(ctx context.Context, queryText string, cands []selection.Candidate) {
	if s.cache == nil {
		return
	}
	s.cache.Put(ctx, queryText, cands)
}
