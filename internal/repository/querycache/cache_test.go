package querycache

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/justthetip/yoto-discovery/internal/domain/catalog"
	"github.com/justthetip/yoto-discovery/internal/domain/selection"
)

func sampleCandidates() []selection.Candidate {
	return []selection.Candidate{
		{
			Item:  catalog.Item{ID: "a", Title: "First", Price: 9.99, Available: true},
			Score: 7,
			Tier:  selection.TierLiteral,
		},
		{
			Item:     catalog.Item{ID: "b", Title: "Second", Available: true},
			Score:    2,
			Tier:     selection.TierSynonym,
			Expanded: true,
		},
	}
}

func TestCache_RoundTrip(t *testing.T) {
	store := newMockStore()
	cache := New(store, 5*time.Minute, nil, nil)
	ctx := context.Background()

	if _, ok := cache.Get(ctx, "dinosaur stories"); ok {
		t.Fatal("expected a miss on an empty store")
	}

	want := sampleCandidates()
	cache.Put(ctx, "dinosaur stories", want)
	if store.lastTTL != 5*time.Minute {
		t.Errorf("ttl = %v, want 5m", store.lastTTL)
	}

	got, ok := cache.Get(ctx, "dinosaur stories")
	if !ok {
		t.Fatal("expected a hit after Put")
	}
	if len(got) != len(want) {
		t.Fatalf("got %d candidates, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i].Item.ID != want[i].Item.ID || got[i].Tier != want[i].Tier ||
			got[i].Score != want[i].Score || got[i].Expanded != want[i].Expanded {
			t.Errorf("candidate %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestCache_KeyNormalization(t *testing.T) {
	store := newMockStore()
	cache := New(store, time.Minute, nil, nil)
	ctx := context.Background()

	cache.Put(ctx, "Dinosaur   Stories", sampleCandidates())
	if _, ok := cache.Get(ctx, "  dinosaur stories "); !ok {
		t.Error("whitespace and case variants must hit the same key")
	}
	if _, ok := cache.Get(ctx, "dinosaur songs"); ok {
		t.Error("different queries must not collide")
	}
}

func TestCache_KeysAreHashed(t *testing.T) {
	store := newMockStore()
	cache := New(store, time.Minute, nil, nil)

	cache.Put(context.Background(), "dinosaur stories under £5", sampleCandidates())
	for _, key := range store.setCalls {
		if !strings.HasPrefix(key, keyPrefix) {
			t.Errorf("key %q missing prefix %q", key, keyPrefix)
		}
		if strings.Contains(key, "dinosaur") {
			t.Errorf("raw query text leaked into key %q", key)
		}
	}
}

func TestCache_StoreErrorDegradesToMiss(t *testing.T) {
	store := newMockStore()
	store.getErr = errors.New("connection refused")
	cache := New(store, time.Minute, nil, nil)

	if _, ok := cache.Get(context.Background(), "anything"); ok {
		t.Fatal("store failure must read as a miss")
	}
}

func TestCache_PutErrorSwallowed(t *testing.T) {
	store := newMockStore()
	store.setErr = errors.New("connection refused")
	cache := New(store, time.Minute, nil, nil)

	// must not panic or propagate
	cache.Put(context.Background(), "anything", sampleCandidates())
}

func TestCache_CorruptEntryDegradesToMiss(t *testing.T) {
	store := newMockStore()
	cache := New(store, time.Minute, nil, nil)
	ctx := context.Background()

	cache.Put(ctx, "query", sampleCandidates())
	for key := range store.data {
		store.data[key] = []byte("{corrupt")
	}

	if _, ok := cache.Get(ctx, "query"); ok {
		t.Fatal("corrupt payload must read as a miss")
	}
}
