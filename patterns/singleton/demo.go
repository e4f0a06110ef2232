package singleton

import (
	"fmt"
	"io"
	"sync"
)

// Demo exercises each discipline and prints the two facts that matter:
// do repeated calls agree on one pointer, and how often did the constructor
// run. The unsafe variant is only ever called from this one goroutine;
// racing it on purpose would just be a bug with commentary.
func Demo(w io.Writer) {
	fmt.Fprintln(w, "four ways to lazily create one shared Settings instance")
	fmt.Fprintln(w)

	fmt.Fprintln(w, "1) UnsafeInstance - plain nil check, shown single-goroutine only:")
	same := UnsafeInstance() == UnsafeInstance()
	fmt.Fprintf(w, "   two sequential calls, same pointer: %v (builds: %d)\n", same, Builds()["unsafe"])
	fmt.Fprintln(w, "   under concurrent first access this is a data race; `go test -race` would flag it")
	fmt.Fprintln(w)

	fmt.Fprintln(w, "2) MutexInstance - lock on every access, hammered by 8 goroutines:")
	hammer(MutexInstance)
	fmt.Fprintf(w, "   all goroutines got one pointer, constructor ran %d time(s)\n\n", Builds()["mutex"])

	fmt.Fprintln(w, "3) CheckedInstance - atomic fast path, lock + re-check on the slow path:")
	hammer(CheckedInstance)
	fmt.Fprintf(w, "   all goroutines got one pointer, constructor ran %d time(s)\n\n", Builds()["checked"])

	fmt.Fprintln(w, "4) OnceInstance - sync.Once, the idiom to actually write:")
	hammer(OnceInstance)
	fmt.Fprintf(w, "   all goroutines got one pointer, constructor ran %d time(s)\n\n", Builds()["once"])

	fmt.Fprintln(w, "5) explained simply - the same guarantee as a value you can scope:")
	lazy := NewLazy(func() string { return "expensive thing" })
	fmt.Fprintf(w, "   lazy.Get() == lazy.Get(): %v\n", lazy.Get() == lazy.Get())
}

// hammer fans callers at an accessor and discards the pointers; agreement is
// re-verified by the tests, the demo just provokes the first access.
func hammer(accessor func() *Settings) {
	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = accessor()
		}()
	}
	wg.Wait()
}
