package proxy

import (
	"context"
	"sync"
)

// CachingProxy memoizes results per term. The client keeps calling Search
// exactly as before; repeats are served from the cache and never reach the
// subject. No eviction - the demo vocabulary is finite, and eviction policy
// is someone else's pattern.
type CachingProxy struct {
	subject Searcher

	mu     sync.Mutex
	cache  map[string][]Result
	hits   int64
	misses int64
}

func NewCachingProxy(subject Searcher) *CachingProxy {
	return &CachingProxy{subject: subject, cache: make(map[string][]Result)}
}

// Search answers from the cache when it can; otherwise it delegates once and
// remembers the answer. Errors are not cached, so a failed term retries.
func (p *CachingProxy) Search(ctx context.Context, term string) ([]Result, error) {
	p.mu.Lock()
	if results, ok := p.cache[term]; ok {
		p.hits++
		p.mu.Unlock()
		return results, nil
	}
	p.mu.Unlock()

	results, err := p.subject.Search(ctx, term)
	if err != nil {
		return nil, err
	}

	p.mu.Lock()
	p.misses++
	p.cache[term] = results
	p.mu.Unlock()
	return results, nil
}

// Stats reports cache hits and misses so far.
func (p *CachingProxy) Stats() (hits, misses int64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.hits, p.misses
}
