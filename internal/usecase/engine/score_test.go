package engine

import (
	"testing"

	"github.com/justthetip/yoto-discovery/internal/domain/query"
	"github.com/justthetip/yoto-discovery/internal/domain/selection"
)

func TestScore_Weights(t *testing.T) {
	item := makeItem("a", "Dinosaur Roar")
	item.Description = "A dinosaur adventure for little explorers"
	item.New = true
	item.Ages = ages(3, 5)

	c := query.Constraints{
		Ages:     ages(2, 6),
		Keywords: []string{"dinosaur"},
	}

	// title hit (3) + description hit (1) + novelty (2) + full age
	// containment (5)
	want := titleKeywordWeight + descriptionKeywordWeight + noveltyBonus + agePrecisionBonus
	if got := Score(&item, c); got != want {
		t.Errorf("Score = %d, want %d", got, want)
	}
}

func TestScore_TitleBeatsDescription(t *testing.T) {
	inTitle := makeItem("a", "Dinosaur Roar")
	inDesc := makeItem("b", "Big Roars")
	inDesc.Description = "All about dinosaurs"

	c := query.Constraints{Keywords: []string{"dinosaur"}}
	if Score(&inTitle, c) <= Score(&inDesc, c) {
		t.Error("a title hit must outscore a description hit")
	}
}

func TestScore_AgeOverlapWithoutContainment(t *testing.T) {
	item := makeItem("a", "Stories")
	item.Ages = ages(3, 7)

	// overlaps [2,5] but is not contained in it
	if got := Score(&item, query.Constraints{Ages: ages(2, 5)}); got != 0 {
		t.Errorf("Score = %d, want 0 for mere overlap", got)
	}
	if got := Score(&item, query.Constraints{Ages: ages(3, 8)}); got != agePrecisionBonus {
		t.Errorf("Score = %d, want containment bonus", got)
	}
}

func TestScore_EmptyConstraints(t *testing.T) {
	item := makeItem("a", "Anything")
	if got := Score(&item, query.Constraints{}); got != 0 {
		t.Errorf("Score = %d, want 0", got)
	}
}

func TestSortByScore_StableTies(t *testing.T) {
	cands := []selection.Candidate{
		{Item: makeItem("a", "A"), Score: 1},
		{Item: makeItem("b", "B"), Score: 3},
		{Item: makeItem("c", "C"), Score: 1},
		{Item: makeItem("d", "D"), Score: 1},
	}

	sortByScore(cands)

	wantOrder := []string{"b", "a", "c", "d"}
	for i, id := range wantOrder {
		if cands[i].Item.ID != id {
			t.Fatalf("position %d = %s, want %s (ties must keep input order)",
				i, cands[i].Item.ID, id)
		}
	}
}
