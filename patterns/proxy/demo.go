package proxy

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"
)

// Demo stacks the proxies in front of a real index: gate outside, cache
// inside, subject at the core. Scores vary across Bluge versions, so the
// narration prints counters and hit contents, not score values.
func Demo(w io.Writer) {
	log := slog.New(slog.DiscardHandler)
	index, err := NewIndex(log,
		Document{ID: "m1", Room: "ops", Content: "the nightly badger compaction finished in 40 seconds"},
		Document{ID: "m2", Room: "ops", Content: "compaction stalled again, restarting the worker"},
		Document{ID: "m3", Room: "general", Content: "lunch at noon?"},
	)
	if err != nil {
		fmt.Fprintf(w, "building index failed: %v\n", err)
		return
	}
	defer index.Close()

	secret := []byte("demo-secret")
	cache := NewCachingProxy(index)
	gate := NewGateProxy(cache, secret)
	ctx := context.Background()

	fmt.Fprintln(w, "client -> GateProxy -> CachingProxy -> Index (bluge, in memory)")
	fmt.Fprintln(w, "all three satisfy Searcher; the client code below never changes")
	fmt.Fprintln(w)

	fmt.Fprintln(w, "1) no token - the gate refuses, the index never hears about it:")
	if _, err := gate.Search(ctx, "compaction"); err != nil {
		fmt.Fprintf(w, "   %v (index searches so far: %d)\n\n", err, index.Searches())
	}

	token, err := IssueToken(secret, "alice", time.Minute)
	if err != nil {
		fmt.Fprintf(w, "minting token failed: %v\n", err)
		return
	}
	authed := WithToken(ctx, token)

	fmt.Fprintln(w, "2) with a token - first search is a cache miss, the index works:")
	results, err := gate.Search(authed, "compaction")
	if err != nil {
		fmt.Fprintf(w, "   unexpected: %v\n", err)
		return
	}
	for _, r := range results {
		fmt.Fprintf(w, "   [%s] %s: %s\n", r.ID, r.Room, r.Content)
	}
	hits, misses := cache.Stats()
	fmt.Fprintf(w, "   cache hits=%d misses=%d, index searches=%d\n\n", hits, misses, index.Searches())

	fmt.Fprintln(w, "3) the same search again - served from the cache:")
	again, _ := gate.Search(authed, "compaction")
	hits, misses = cache.Stats()
	fmt.Fprintf(w, "   %d result(s), cache hits=%d misses=%d, index searches still %d\n\n",
		len(again), hits, misses, index.Searches())

	fmt.Fprintln(w, "4) a forged token fails at the gate, cached or not:")
	if _, err := gate.Search(WithToken(ctx, token+"tampered"), "compaction"); err != nil {
		fmt.Fprintf(w, "   %v\n\n", err)
	}

	fmt.Fprintln(w, "5) explained simply - a proxy that builds its subject on first use:")
	lazy := NewLazyProxy(func() (Searcher, error) {
		fmt.Fprintln(w, "   (expensive subject constructed just now)")
		return index, nil
	})
	fmt.Fprintf(w, "   before any call, built: %v\n", lazy.Built())
	_, _ = lazy.Search(ctx, "lunch")
	fmt.Fprintf(w, "   after one call, built: %v\n", lazy.Built())
}
