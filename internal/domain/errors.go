// Package domain holds sentinel errors shared across layers.
package domain

import "errors"

var (
	// ErrEmptyQuery signals a discovery request without a user utterance.
	ErrEmptyQuery = errors.New("empty query")
	// ErrCatalogUnavailable signals that no catalog snapshot is loaded.
	ErrCatalogUnavailable = errors.New("catalog unavailable")
	// ErrRankerUnavailable signals a ranking collaborator failure.
	ErrRankerUnavailable = errors.New("ranking service unavailable")
	// ErrUpstreamFetch signals a storefront catalog fetch failure.
	ErrUpstreamFetch = errors.New("upstream catalog fetch failed")
)
