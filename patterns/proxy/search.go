// Package proxy puts stand-ins in front of a full-text search service. The
// real subject maintains a Bluge index; a caching proxy answers repeats
// without touching it; a gate proxy refuses callers that cannot present a
// valid token. All three satisfy Searcher, so the client cannot tell who it
// is really talking to - which is the whole pattern.
package proxy

import (
	"context"
	"errors"
)

var (
	ErrEmptyTerm    = errors.New("search term is empty")
	ErrMissingToken = errors.New("no token presented")
	ErrInvalidToken = errors.New("token rejected")
)

// Searcher is the subject interface shared by the real index and every
// proxy in front of it.
type Searcher interface {
	Search(ctx context.Context, term string) ([]Result, error)
}

// Document is one indexed chat message.
type Document struct {
	ID      string
	Room    string
	Content string
}

// Result is one search hit, best first.
type Result struct {
	ID      string
	Room    string
	Content string
	Score   float64
}
