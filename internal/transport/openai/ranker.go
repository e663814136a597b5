// Package openai implements the ranking collaborator over an
// OpenAI-compatible chat-completion API.
package openai

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"github.com/justthetip/yoto-discovery/internal/domain"
	"github.com/justthetip/yoto-discovery/internal/domain/chat"
	"github.com/justthetip/yoto-discovery/internal/domain/ranking"
	"github.com/justthetip/yoto-discovery/internal/domain/selection"
	"github.com/justthetip/yoto-discovery/internal/metrics"
)

const systemPrompt = `You help parents pick children's audio content.
You receive a JSON array of candidate products and the conversation so far.
Score each product you would recommend from 0 to 100 with a one-sentence reason.
Only score products from the candidate list; omit products you would not recommend.
If the request is too vague to recommend anything, ask one clarifying question instead.
Respond with JSON only, in one of two shapes:
{"results": [{"id": "...", "score": 87, "reason": "..."}]}
{"needs_more_info": {"question": "..."}}`

// Ranker is the semantic-ranking collaborator client.
type Ranker struct {
	client *openai.Client
	model  string
	logger *zap.Logger
}

// Config holds the collaborator connection settings.
type Config struct {
	APIKey  string
	BaseURL string
	Model   string
	Timeout time.Duration
	Logger  *zap.Logger
}

// NewRanker creates an OpenAI-compatible ranking client.
func NewRanker(cfg *Config) *Ranker {
	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}
	if cfg.Timeout > 0 {
		clientCfg.HTTPClient = &http.Client{Timeout: cfg.Timeout}
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Ranker{
		client: openai.NewClientWithConfig(clientCfg),
		model:  cfg.Model,
		logger: logger,
	}
}

// candidatePayload is the wire shape of one candidate sent to the
// collaborator, keyed by identifier.
type candidatePayload struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Author      string   `json:"author,omitempty"`
	Description string   `json:"description,omitempty"`
	Price       float64  `json:"price"`
	AgeRange    []int    `json:"ageRange,omitempty"`
	Duration    int      `json:"duration,omitempty"`
	Categories  []string `json:"categories,omitempty"`
	Available   bool     `json:"available"`
	New         bool     `json:"new"`
	Tier        int      `json:"tier"`
}

type rankerResponse struct {
	Results []struct {
		ID     string `json:"id"`
		Score  int    `json:"score"`
		Reason string `json:"reason"`
	} `json:"results"`
	NeedsMoreInfo *struct {
		Question string `json:"question"`
	} `json:"needs_more_info"`
}

// Rank sends the candidate set plus conversation context and parses the
// collaborator's verdict. All transport and parse failures are wrapped in
// domain.ErrRankerUnavailable.
func (r *Ranker) Rank(
	ctx context.Context, cands []selection.Candidate, turns []chat.Turn,
) (ranking.Outcome, error) {
	payload, err := json.Marshal(candidatePayloads(cands))
	if err != nil {
		return ranking.Outcome{}, fmt.Errorf("encode candidates: %w", err)
	}

	messages := make([]openai.ChatCompletionMessage, 0, len(turns)+2)
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleSystem,
		Content: systemPrompt,
	})
	for _, t := range turns {
		role := openai.ChatMessageRoleUser
		if t.Role == chat.RoleAssistant {
			role = openai.ChatMessageRoleAssistant
		}
		messages = append(messages, openai.ChatCompletionMessage{Role: role, Content: t.Content})
	}
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: "Candidate products:\n" + string(payload),
	})

	start := time.Now()
	resp, err := r.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:    r.model,
		Messages: messages,
	})
	duration := time.Since(start)

	if err != nil {
		metrics.RankerRequestsTotal.WithLabelValues(r.model, "error").Inc()
		metrics.RankerErrorsTotal.WithLabelValues(r.model, "api_error").Inc()
		return ranking.Outcome{}, fmt.Errorf("chat completion: %v: %w", err, domain.ErrRankerUnavailable)
	}
	if len(resp.Choices) == 0 {
		metrics.RankerRequestsTotal.WithLabelValues(r.model, "error").Inc()
		metrics.RankerErrorsTotal.WithLabelValues(r.model, "empty_response").Inc()
		return ranking.Outcome{}, fmt.Errorf("empty completion: %w", domain.ErrRankerUnavailable)
	}

	metrics.RankerRequestsTotal.WithLabelValues(r.model, "success").Inc()
	metrics.RankerRequestDuration.WithLabelValues(r.model).Observe(duration.Seconds())

	outcome, err := parseOutcome(resp.Choices[0].Message.Content, cands)
	if err != nil {
		metrics.RankerErrorsTotal.WithLabelValues(r.model, "parse_error").Inc()
		return ranking.Outcome{}, err
	}

	r.logger.Debug("ranker responded",
		zap.Int("rankings", len(outcome.Rankings)),
		zap.Bool("needs_more_info", outcome.NeedsMoreInfo),
		zap.Duration("latency", duration),
	)
	return outcome, nil
}

func candidatePayloads(cands []selection.Candidate) []candidatePayload {
	out := make([]candidatePayload, len(cands))
	for i, c := range cands {
		p := candidatePayload{
			ID:          c.Item.ID,
			Title:       c.Item.Title,
			Author:      c.Item.Author,
			Description: c.Item.Description,
			Price:       c.Item.Price,
			Duration:    c.Item.Duration,
			Categories:  c.Item.Categories,
			Available:   c.Item.Available,
			New:         c.Item.New,
			Tier:        int(c.Tier),
		}
		if c.Item.Ages != nil {
			p.AgeRange = []int{c.Item.Ages.Min, c.Item.Ages.Max}
		}
		out[i] = p
	}
	return out
}

// parseOutcome decodes the model's JSON verdict. Scores are clamped and
// rankings for IDs outside the candidate set are dropped; a completion that
// is not valid JSON is a collaborator failure.
func parseOutcome(content string, cands []selection.Candidate) (ranking.Outcome, error) {
	var parsed rankerResponse
	if err := json.Unmarshal([]byte(stripCodeFence(content)), &parsed); err != nil {
		return ranking.Outcome{}, fmt.Errorf("decode ranker response: %v: %w", err, domain.ErrRankerUnavailable)
	}

	if parsed.NeedsMoreInfo != nil {
		return ranking.Outcome{NeedsMoreInfo: true, Question: parsed.NeedsMoreInfo.Question}, nil
	}

	known := make(map[string]struct{}, len(cands))
	for _, c := range cands {
		known[c.Item.ID] = struct{}{}
	}

	var out ranking.Outcome
	for _, r := range parsed.Results {
		if _, ok := known[r.ID]; !ok {
			continue
		}
		out.Rankings = append(out.Rankings, ranking.Ranking{
			ID:     r.ID,
			Score:  ranking.Clamp(r.Score),
			Reason: r.Reason,
		})
	}
	return out, nil
}

// stripCodeFence removes a ```json ... ``` wrapper some models insist on.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
