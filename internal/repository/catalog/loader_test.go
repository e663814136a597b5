package catalog

import (
	"os"
	"path/filepath"
	"testing"

	domcat "github.com/justthetip/yoto-discovery/internal/domain/catalog"
)

const sampleFeed = `{
  "data": {
    "products": [
      {
        "id": "prod-1",
        "title": "The Gruffalo",
        "author": "Julia Donaldson",
        "blurb": "A mouse took a stroll",
        "description": "Longer marketing copy",
        "price": "9.99",
        "runtime": 1620,
        "ageRange": [3, 7],
        "contentType": ["Stories"],
        "availableForSale": true,
        "flag": "New to Yoto"
      },
      {
        "id": 42,
        "title": "Numeric ID",
        "price": 12.5,
        "availableForSale": false
      },
      {
        "id": "prod-3",
        "title": "Partial Ages",
        "ageRange": [5, null],
        "availableForSale": true
      },
      {
        "id": "",
        "title": ""
      }
    ]
  }
}`

func TestParse_FullRecord(t *testing.T) {
	items, err := Parse([]byte(sampleFeed))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("expected 3 items (empty record skipped), got %d", len(items))
	}

	it := items[0]
	if it.ID != "prod-1" || it.Title != "The Gruffalo" || it.Author != "Julia Donaldson" {
		t.Errorf("identity fields wrong: %+v", it)
	}
	if it.Description != "A mouse took a stroll" {
		t.Errorf("blurb must win over description, got %q", it.Description)
	}
	if it.Price != 9.99 {
		t.Errorf("price = %v, want 9.99", it.Price)
	}
	if it.Duration != 1620 {
		t.Errorf("duration = %d, want 1620", it.Duration)
	}
	if it.Ages == nil || (*it.Ages != domcat.AgeRange{Min: 3, Max: 7}) {
		t.Errorf("ages = %v, want [3,7]", it.Ages)
	}
	if !it.Available || !it.New {
		t.Errorf("availability/novelty flags wrong: %+v", it)
	}
}

func TestParse_NumericIDAndPrice(t *testing.T) {
	items, err := Parse([]byte(sampleFeed))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	it := items[1]
	if it.ID != "42" {
		t.Errorf("numeric id = %q, want \"42\"", it.ID)
	}
	if it.Price != 12.5 {
		t.Errorf("numeric price = %v, want 12.5", it.Price)
	}
	if it.Available || it.New {
		t.Errorf("flags wrong for record without them: %+v", it)
	}
}

func TestParse_PartialAgeRangeDropped(t *testing.T) {
	items, err := Parse([]byte(sampleFeed))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if items[2].Ages != nil {
		t.Errorf("partial age range must map to no age data, got %v", items[2].Ages)
	}
}

func TestParse_BadEnvelope(t *testing.T) {
	if _, err := Parse([]byte("not json")); err == nil {
		t.Fatal("expected an error for an unreadable envelope")
	}
}

func TestParse_EmptyFeed(t *testing.T) {
	items, err := Parse([]byte(`{"data":{"products":[]}}`))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("expected no items, got %d", len(items))
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.json")
	if err := os.WriteFile(path, []byte(sampleFeed), 0o644); err != nil {
		t.Fatal(err)
	}

	items, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("expected 3 items, got %d", len(items))
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}
