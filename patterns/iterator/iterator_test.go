package iterator

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func seeded() *MessageLog {
	log := NewMessageLog()
	log.Append("alice", "one")
	log.Append("bob", "two")
	log.Append("clara", "three")
	return log
}

func TestLogIterator_ForwardOrder(t *testing.T) {
	req := require.New(t)
	log := seeded()

	it := log.Iterator()
	var contents []string
	for it.HasNext() {
		contents = append(contents, it.Next().Content)
	}

	req.Equal([]string{"one", "two", "three"}, contents)
	req.False(it.HasNext())
	// Next after exhaustion stays harmless
	req.Equal(Message{}, it.Next())
}

func TestLogIterator_ReverseOrder(t *testing.T) {
	req := require.New(t)
	log := seeded()

	rev := log.ReverseIterator()
	var contents []string
	for rev.HasNext() {
		contents = append(contents, rev.Next().Content)
	}

	req.Equal([]string{"three", "two", "one"}, contents)
}

func TestLogIterator_IndependentCursors(t *testing.T) {
	req := require.New(t)
	log := seeded()

	a := log.Iterator()
	b := log.Iterator()

	req.Equal("one", a.Next().Content)
	req.Equal("two", a.Next().Content)
	// b has not moved
	req.Equal("one", b.Next().Content)
}

func TestLogIterator_EmptyLog(t *testing.T) {
	req := require.New(t)
	log := NewMessageLog()

	req.False(log.Iterator().HasNext())
	req.False(log.ReverseIterator().HasNext())
}

func TestAll_RangeAndEarlyBreak(t *testing.T) {
	req := require.New(t)
	log := seeded()

	var seen []string
	for m := range log.All() {
		seen = append(seen, m.Content)
		if len(seen) == 2 {
			break
		}
	}

	req.Equal([]string{"one", "two"}, seen)
}

func TestAppend_StampsDistinctIDs(t *testing.T) {
	req := require.New(t)
	log := NewMessageLog()

	a := log.Append("alice", "same text")
	b := log.Append("bob", "same text")

	req.NotEqual(a.ID, b.ID)
}

func TestDemo_Runs(t *testing.T) {
	var sb strings.Builder
	Demo(&sb)

	out := sb.String()
	require.Contains(t, out, "classic iterator")
	require.Contains(t, out, "newest first")
	require.Contains(t, out, "breaking early")
}
