//go:generate go run go.uber.org/mock/mockgen -source=sink.go -destination=../../mocks/mock_sink.go -package=mocks
// Package factorymethod defers the choice of concrete type to one creation
// function. Callers say which kind of event sink they want and program
// against the Sink interface; only NewSink knows the concrete types.
package factorymethod

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"
)

var ErrUnknownKind = errors.New("unknown sink kind")

// Event is what sinks consume: one moderated chat message ready to leave the
// pipeline.
type Event struct {
	Room    string
	Author  string
	Content string
	At      time.Time
}

// Sink is the product interface. Every sink consumes events one at a time
// and reports the first failure.
type Sink interface {
	Consume(ctx context.Context, e Event) error
}

// Kind names the sink families NewSink can create.
type Kind string

const (
	KindConsole Kind = "console"
	KindMemory  Kind = "memory"
	KindNull    Kind = "null"
)

// NewSink is the factory method. The out writer is used by the console kind
// and ignored by the others.
func NewSink(kind Kind, out io.Writer) (Sink, error) {
	switch kind {
	case KindConsole:
		return &ConsoleSink{out: out}, nil
	case KindMemory:
		return &MemorySink{}, nil
	case KindNull:
		return NullSink{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
}

// Drain feeds events into a sink until the stream ends or the sink refuses
// one. This is the kind of caller the factory exists for: it runs the same
// against every kind.
func Drain(ctx context.Context, s Sink, events ...Event) error {
	for _, e := range events {
		if err := s.Consume(ctx, e); err != nil {
			return fmt.Errorf("draining %q: %w", e.Content, err)
		}
	}
	return nil
}
