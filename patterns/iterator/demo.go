package iterator

import (
	"fmt"
	"io"
)

// Demo narrates forward, reverse and range-over-func iteration over the same
// log. Output is deterministic.
func Demo(w io.Writer) {
	log := NewMessageLog()
	log.Append("alice", "did the nightly import finish?")
	log.Append("bob", "yes, 12k rows in 40s")
	log.Append("clara", "nice, closing the ticket")

	fmt.Fprintf(w, "the log holds %d messages; the slice behind it stays private\n\n", log.Len())

	fmt.Fprintln(w, "1) classic iterator, oldest first:")
	it := log.Iterator()
	for it.HasNext() {
		m := it.Next()
		fmt.Fprintf(w, "   %s: %s\n", m.Sender, m.Content)
	}

	fmt.Fprintln(w, "\n2) a second iterator starts over - cursors are per iterator:")
	again := log.Iterator()
	first := again.Next()
	fmt.Fprintf(w, "   first message again: %s: %s\n", first.Sender, first.Content)

	fmt.Fprintln(w, "\n3) reverse iterator, newest first:")
	rev := log.ReverseIterator()
	for rev.HasNext() {
		m := rev.Next()
		fmt.Fprintf(w, "   %s: %s\n", m.Sender, m.Content)
	}

	fmt.Fprintln(w, "\n4) explained simply - the Go 1.23 shape, range over a func:")
	for m := range log.All() {
		fmt.Fprintf(w, "   %s: %s\n", m.Sender, m.Content)
		if m.Sender == "bob" {
			fmt.Fprintln(w, "   (breaking early - yield stops the walk)")
			break
		}
	}
}
