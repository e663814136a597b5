package httpapi

import (
	statsuc "github.com/justthetip/yoto-discovery/internal/usecase/stats"

	"github.com/justthetip/yoto-discovery/internal/domain/selection"
	discoveryuc "github.com/justthetip/yoto-discovery/internal/usecase/discovery"
)

type itemDTO struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Author      string   `json:"author,omitempty"`
	Description string   `json:"description,omitempty"`
	Price       float64  `json:"price"`
	Duration    int      `json:"duration,omitempty"`
	AgeRange    []int    `json:"ageRange,omitempty"`
	Categories  []string `json:"categories,omitempty"`
	Available   bool     `json:"available"`
	New         bool     `json:"new"`
}

type candidateDTO struct {
	Item     itemDTO `json:"item"`
	Score    int     `json:"score"`
	Tier     int     `json:"tier"`
	Expanded bool    `json:"expanded"`
}

type rankingDTO struct {
	ID     string `json:"id"`
	Score  int    `json:"score"`
	Reason string `json:"reason,omitempty"`
}

type discoverResponse struct {
	Query         string         `json:"query"`
	Candidates    []candidateDTO `json:"candidates"`
	Rankings      []rankingDTO   `json:"rankings,omitempty"`
	NeedsMoreInfo bool           `json:"needsMoreInfo,omitempty"`
	Question      string         `json:"question,omitempty"`
}

func discoverResponseFromResult(res discoveryuc.Result, limit int) discoverResponse {
	cands := res.Candidates
	if limit > 0 && len(cands) > limit {
		cands = cands[:limit]
	}

	out := discoverResponse{
		Query:         res.Query,
		Candidates:    make([]candidateDTO, len(cands)),
		NeedsMoreInfo: res.NeedsMoreInfo,
		Question:      res.Question,
	}
	for i, c := range cands {
		out.Candidates[i] = candidateToDTO(c)
	}
	for _, r := range res.Rankings {
		out.Rankings = append(out.Rankings, rankingDTO{ID: r.ID, Score: r.Score, Reason: r.Reason})
	}
	return out
}

func candidateToDTO(c selection.Candidate) candidateDTO {
	item := itemDTO{
		ID:          c.Item.ID,
		Title:       c.Item.Title,
		Author:      c.Item.Author,
		Description: c.Item.Description,
		Price:       c.Item.Price,
		Duration:    c.Item.Duration,
		Categories:  c.Item.Categories,
		Available:   c.Item.Available,
		New:         c.Item.New,
	}
	if c.Item.Ages != nil {
		item.AgeRange = []int{c.Item.Ages.Min, c.Item.Ages.Max}
	}
	return candidateDTO{
		Item:     item,
		Score:    c.Score,
		Tier:     int(c.Tier),
		Expanded: c.Expanded,
	}
}

type nameCountDTO struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

type statsResponse struct {
	Total     int `json:"total"`
	Available int `json:"available"`
	New       int `json:"new"`
	Price     struct {
		Count   int            `json:"count"`
		Min     float64        `json:"min"`
		Max     float64        `json:"max"`
		Average float64        `json:"average"`
		Median  float64        `json:"median"`
		Buckets []nameCountDTO `json:"buckets"`
	} `json:"price"`
	Categories []nameCountDTO `json:"categories"`
	Authors    int            `json:"authors"`
	TopAuthors []nameCountDTO `json:"topAuthors"`
	Runtime    struct {
		Count          int            `json:"count"`
		AverageMinutes float64        `json:"averageMinutes"`
		TotalHours     float64        `json:"totalHours"`
		Buckets        []nameCountDTO `json:"buckets"`
	} `json:"runtime"`
	AgeGroups []nameCountDTO `json:"ageGroups"`
}

func statsResponseFromSummary(s statsuc.Summary) statsResponse {
	var out statsResponse
	out.Total = s.Total
	out.Available = s.Available
	out.New = s.New
	out.Price.Count = s.Price.Count
	out.Price.Min = s.Price.Min
	out.Price.Max = s.Price.Max
	out.Price.Average = s.Price.Average
	out.Price.Median = s.Price.Median
	out.Price.Buckets = nameCounts(s.Price.Buckets)
	out.Categories = nameCounts(s.Categories)
	out.Authors = s.Authors
	out.TopAuthors = nameCounts(s.TopAuthors)
	out.Runtime.Count = s.Runtime.Count
	out.Runtime.AverageMinutes = s.Runtime.AverageMinutes
	out.Runtime.TotalHours = s.Runtime.TotalHours
	out.Runtime.Buckets = nameCounts(s.Runtime.Buckets)
	out.AgeGroups = nameCounts(s.AgeGroups)
	return out
}

func nameCounts(in []statsuc.NameCount) []nameCountDTO {
	out := make([]nameCountDTO, len(in))
	for i, nc := range in {
		out[i] = nameCountDTO{Name: nc.Name, Count: nc.Count}
	}
	return out
}
