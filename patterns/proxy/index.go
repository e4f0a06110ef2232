package proxy

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"

	"github.com/blugelabs/bluge"
)

// Index is the real subject: an in-memory Bluge index over chat messages.
// It is deliberately the expensive thing here - every Search opens a reader
// and runs a scored match query - because the proxies exist to keep callers
// away from exactly that cost.
type Index struct {
	log      *slog.Logger
	writer   *bluge.Writer
	searches atomic.Int64
}

// NewIndex opens an in-memory index and stores the given documents. Content
// is the searched field; id and room travel as stored keywords so results
// can be reassembled from the match.
func NewIndex(log *slog.Logger, docs ...Document) (*Index, error) {
	writer, err := bluge.OpenWriter(bluge.InMemoryOnlyConfig())
	if err != nil {
		return nil, fmt.Errorf("opening bluge writer: %w", err)
	}

	idx := &Index{log: log, writer: writer}
	for _, d := range docs {
		if err := idx.Add(d); err != nil {
			_ = writer.Close()
			return nil, err
		}
	}
	return idx, nil
}

// Add indexes one document, replacing any previous version with the same ID.
func (i *Index) Add(d Document) error {
	doc := bluge.NewDocument(d.ID).
		AddField(bluge.NewKeywordField("room", d.Room).StoreValue()).
		AddField(bluge.NewTextField("content", d.Content).StoreValue())

	if err := i.writer.Update(doc.ID(), doc); err != nil {
		return fmt.Errorf("indexing %q: %w", d.ID, err)
	}
	return nil
}

// Search runs a match query over message content and returns hits best
// first. Each call counts against Searches, which is how the caching proxy's
// savings stay observable.
func (i *Index) Search(ctx context.Context, term string) ([]Result, error) {
	if term == "" {
		return nil, ErrEmptyTerm
	}
	i.searches.Add(1)
	i.log.Debug("index searched", "term", term)

	reader, err := i.writer.Reader()
	if err != nil {
		return nil, fmt.Errorf("opening reader: %w", err)
	}
	defer func() {
		_ = reader.Close()
	}()

	query := bluge.NewMatchQuery(term).SetField("content")
	request := bluge.NewTopNSearch(10, query)

	iter, err := reader.Search(ctx, request)
	if err != nil {
		return nil, fmt.Errorf("searching %q: %w", term, err)
	}

	var results []Result
	match, err := iter.Next()
	for err == nil && match != nil {
		r := Result{Score: match.Score}
		err = match.VisitStoredFields(func(field string, value []byte) bool {
			switch field {
			case "_id":
				r.ID = string(value)
			case "room":
				r.Room = string(value)
			case "content":
				r.Content = string(value)
			}
			return true
		})
		if err != nil {
			return nil, fmt.Errorf("reading stored fields: %w", err)
		}
		results = append(results, r)
		match, err = iter.Next()
	}
	if err != nil {
		return nil, fmt.Errorf("iterating matches: %w", err)
	}
	return results, nil
}

// Searches reports how many queries actually reached the index.
func (i *Index) Searches() int64 {
	return i.searches.Load()
}

// Close releases the index.
func (i *Index) Close() error {
	return i.writer.Close()
}
