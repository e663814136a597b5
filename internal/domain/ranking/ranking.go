// Package ranking holds the contract types of the external ranking collaborator.
package ranking

// Score bounds for collaborator relevance scores.
const (
	MinScore = 0
	MaxScore = 100
)

// Ranking is the collaborator's verdict for one candidate. The collaborator
// may omit candidates it was sent; an omitted ID means "not chosen".
type Ranking struct {
	ID     string
	Score  int // 0-100
	Reason string
}

// Outcome is the collaborator response: either a ranked subset of the
// candidates, or a request for more information from the user.
type Outcome struct {
	Rankings      []Ranking
	NeedsMoreInfo bool
	Question      string
}

// Clamp forces a collaborator score into the valid range.
func Clamp(score int) int {
	if score < MinScore {
		return MinScore
	}
	if score > MaxScore {
		return MaxScore
	}
	return score
}
