package singleton

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

const callers = 64

// race fans callers goroutines at an accessor and collects every pointer
// they saw. A barrier channel releases them together to make the first
// access genuinely concurrent.
func race(accessor func() *Settings) []*Settings {
	start := make(chan struct{})
	results := make([]*Settings, callers)

	var wg sync.WaitGroup
	for i := range callers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			results[i] = accessor()
		}()
	}
	close(start)
	wg.Wait()
	return results
}

func TestSafeAccessors_OnePointerOneConstruction(t *testing.T) {
	tests := []struct {
		name     string
		accessor func() *Settings
		counter  string
	}{
		{"mutex", MutexInstance, "mutex"},
		{"double-checked", CheckedInstance, "checked"},
		{"sync.Once", OnceInstance, "once"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)

			results := race(tt.accessor)

			first := results[0]
			req.NotNil(first)
			for _, got := range results {
				req.Same(first, got, "every concurrent caller must see the same instance")
			}
			req.EqualValues(1, Builds()[tt.counter], "constructor must run exactly once")
		})
	}
}

func TestUnsafeInstance_SequentialCallsAgree(t *testing.T) {
	req := require.New(t)

	// single goroutine by design; see the accessor's doc comment
	first := UnsafeInstance()
	req.Same(first, UnsafeInstance())
	req.EqualValues(1, Builds()["unsafe"])
}

func TestLazy_ConstructsOnceUnderConcurrency(t *testing.T) {
	req := require.New(t)

	var builds int
	lazy := NewLazy(func() *Settings {
		builds++ // guarded by the Once, never concurrent
		return &Settings{Theme: "light"}
	})

	start := make(chan struct{})
	results := make([]*Settings, callers)
	var wg sync.WaitGroup
	for i := range callers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			results[i] = lazy.Get()
		}()
	}
	close(start)
	wg.Wait()

	req.Equal(1, builds)
	for _, got := range results {
		req.Same(results[0], got)
	}
}

func TestDemo_Runs(t *testing.T) {
	var sb strings.Builder
	Demo(&sb)

	out := sb.String()
	require.Contains(t, out, "same pointer: true")
	require.Contains(t, out, "constructor ran 1 time(s)")
	require.Contains(t, out, "lazy.Get() == lazy.Get(): true")
}
