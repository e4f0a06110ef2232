package proxy

import "context"

// LazyProxy is the explained-simply variant: the smallest useful proxy.
// It holds a constructor instead of a subject and only pays for construction
// when the first call actually arrives. Everything a proxy ever does is
// visible in Search's four lines: maybe do something, then delegate.
type LazyProxy struct {
	build   func() (Searcher, error)
	subject Searcher
}

func NewLazyProxy(build func() (Searcher, error)) *LazyProxy {
	return &LazyProxy{build: build}
}

func (p *LazyProxy) Search(ctx context.Context, term string) ([]Result, error) {
	if p.subject == nil {
		subject, err := p.build()
		if err != nil {
			return nil, err
		}
		p.subject = subject
	}
	return p.subject.Search(ctx, term)
}

// Built reports whether the subject exists yet.
func (p *LazyProxy) Built() bool {
	return p.subject != nil
}
