package yoto

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/justthetip/yoto-discovery/internal/domain"
)

func TestFetchCatalog(t *testing.T) {
	const feed = `{"data":{"products":[{"id":"p1","title":"The Gruffalo"}]}}`

	var gotPath, gotQuery, gotAuth, gotClient string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.Query().Get("collection")
		gotAuth = r.Header.Get("Authorization")
		gotClient = r.Header.Get("X-Client")
		_, _ = w.Write([]byte(feed))
	}))
	defer srv.Close()

	c := NewClient(Config{BaseURL: srv.URL, Region: "uk", Token: "Bearer token-123"})
	body, err := c.FetchCatalog(context.Background(), "library")
	if err != nil {
		t.Fatalf("FetchCatalog: %v", err)
	}

	if string(body) != feed {
		t.Errorf("body = %q, want feed returned verbatim", body)
	}
	if gotPath != "/products/v2/uk" {
		t.Errorf("path = %q", gotPath)
	}
	if gotQuery != "library" {
		t.Errorf("collection = %q", gotQuery)
	}
	if gotAuth != "Bearer token-123" {
		t.Errorf("authorization = %q", gotAuth)
	}
	if gotClient != "web-storefront" {
		t.Errorf("x-client = %q", gotClient)
	}
}

func TestFetchCatalog_NoTokenOmitsAuthorization(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "" {
			t.Error("authorization header sent without a configured token")
		}
		_, _ = w.Write([]byte("{}"))
	}))
	defer srv.Close()

	c := NewClient(Config{BaseURL: srv.URL, Region: "uk"})
	if _, err := c.FetchCatalog(context.Background(), "library"); err != nil {
		t.Fatalf("FetchCatalog: %v", err)
	}
}

func TestFetchCatalog_UpstreamStatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	c := NewClient(Config{BaseURL: srv.URL, Region: "uk"})
	_, err := c.FetchCatalog(context.Background(), "library")
	if !errors.Is(err, domain.ErrUpstreamFetch) {
		t.Fatalf("expected ErrUpstreamFetch, got %v", err)
	}
}

func TestFetchCatalog_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close() // refuse connections

	c := NewClient(Config{BaseURL: srv.URL, Region: "uk"})
	_, err := c.FetchCatalog(context.Background(), "library")
	if !errors.Is(err, domain.ErrUpstreamFetch) {
		t.Fatalf("expected ErrUpstreamFetch, got %v", err)
	}
}
