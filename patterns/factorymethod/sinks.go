package factorymethod

import (
	"context"
	"fmt"
	"io"
	"sync"
)

// ConsoleSink renders each event as one line on its writer.
type ConsoleSink struct {
	out io.Writer
}

func (s *ConsoleSink) Consume(_ context.Context, e Event) error {
	_, err := fmt.Fprintf(s.out, "[%s] %s: %s\n", e.Room, e.Author, e.Content)
	return err
}

// MemorySink buffers everything it consumes; useful as a capture tap.
type MemorySink struct {
	mu     sync.Mutex
	events []Event
}

func (s *MemorySink) Consume(_ context.Context, e Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, e)
	return nil
}

// Events returns a copy of everything consumed so far, in arrival order.
func (s *MemorySink) Events() []Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Event{}, s.events...)
}

// NullSink accepts and discards. The zero value is ready to use.
type NullSink struct{}

func (NullSink) Consume(context.Context, Event) error {
	return nil
}
