package coupling

import (
	"fmt"
	"io"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// Demo registers one user through the tightly coupled service and then
// narrates everything that is now impossible to change from out here.
func Demo(w io.Writer) {
	fmt.Fprintln(w, "lesson 1/3 - the before picture: a service that news up its own world")
	fmt.Fprintln(w)

	service := NewWelcomeService(w)

	fmt.Fprintln(w, "1) it does work:")
	start := time.Now()
	hash, err := service.Register("alice", "correct horse battery staple")
	if err != nil {
		fmt.Fprintf(w, "   register failed: %v\n", err)
		return
	}
	fmt.Fprintf(w, "   got a real bcrypt hash back (%d bytes, took %s order of magnitude)\n",
		len(hash), magnitude(time.Since(start)))
	fmt.Fprintln(w)

	fmt.Fprintln(w, "2) now try to change anything without editing Register:")
	fmt.Fprintln(w, "   - send the greeting by email instead?  the notifier type is unexported")
	fmt.Fprintln(w, "     and constructed inside the method. edit the method.")
	fmt.Fprintln(w, "   - test without paying bcrypt's key stretching?  the cost constant is")
	fmt.Fprintln(w, "     in the method. every test of Register runs the real thing.")
	fmt.Fprintln(w, "   - assert the greeting text?  only by parsing console output, because")
	fmt.Fprintln(w, "     the console IS the notifier.")
	fmt.Fprintln(w)

	fmt.Fprintln(w, "3) the verify step works, which proves the hash is real - and slow:")
	err = bcrypt.CompareHashAndPassword(hash, []byte("correct horse battery staple"))
	fmt.Fprintf(w, "   password verifies: %v\n", err == nil)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "lesson 2 (injection) makes both collaborators arrive through the")
	fmt.Fprintln(w, "constructor; nothing else about the service changes.")
}

// magnitude buckets a duration so narration stays stable across machines.
func magnitude(d time.Duration) string {
	switch {
	case d < time.Millisecond:
		return "sub-millisecond"
	case d < 100*time.Millisecond:
		return "tens of milliseconds"
	default:
		return "100ms+"
	}
}
