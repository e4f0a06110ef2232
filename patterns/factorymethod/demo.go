package factorymethod

import (
	"context"
	"fmt"
	"io"
	"time"
)

// Demo creates each sink kind through the factory and drains the same event
// stream into all of them. The draining code never learns which kind it got.
func Demo(w io.Writer) {
	ctx := context.Background()
	stream := []Event{
		{Room: "general", Author: "alice", Content: "deploy starts in five", At: time.Unix(1700000000, 0).UTC()},
		{Room: "general", Author: "bob", Content: "ack", At: time.Unix(1700000060, 0).UTC()},
	}

	fmt.Fprintln(w, "one stream, three sinks; the factory picks the concrete type:")
	fmt.Fprintln(w)

	fmt.Fprintln(w, `1) NewSink("console") - events land on the writer:`)
	console, _ := NewSink(KindConsole, w)
	_ = Drain(ctx, console, stream...)
	fmt.Fprintln(w)

	fmt.Fprintln(w, `2) NewSink("memory") - events are buffered for later:`)
	memory, _ := NewSink(KindMemory, nil)
	_ = Drain(ctx, memory, stream...)
	fmt.Fprintf(w, "   buffered %d events, nothing printed\n\n", len(memory.(*MemorySink).Events()))

	fmt.Fprintln(w, `3) NewSink("null") - events vanish, handy when a consumer is optional:`)
	null, _ := NewSink(KindNull, nil)
	_ = Drain(ctx, null, stream...)
	fmt.Fprintln(w, "   consumed and discarded")
	fmt.Fprintln(w)

	fmt.Fprintln(w, `4) an unknown kind is stopped at the factory, not deep in a pipeline:`)
	if _, err := NewSink("kafka", nil); err != nil {
		fmt.Fprintf(w, "   %v\n", err)
	}
}
