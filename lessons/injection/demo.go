package injection

import (
	"fmt"
	"io"

	"golang.org/x/crypto/bcrypt"
)

// Demo plays the composition root: the one place in a program that knows
// concrete types and wires them together. Everything below the wiring block
// works purely against interfaces.
func Demo(w io.Writer) {
	fmt.Fprintln(w, "lesson 2/3 - constructor injection and the composition root")
	fmt.Fprintln(w)

	fmt.Fprintln(w, "1) the composition root wires real implementations, once, at the edge:")
	fmt.Fprintln(w, "   service := NewWelcomeService(BcryptHasher{}, ConsoleNotifier{Out: w})")
	service := NewWelcomeService(BcryptHasher{Cost: bcrypt.MinCost}, ConsoleNotifier{Out: w})

	if _, err := service.Register("alice", "correct horse battery staple"); err != nil {
		fmt.Fprintf(w, "   register failed: %v\n", err)
		return
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "2) swapping a collaborator is a wiring change, not an edit:")
	fmt.Fprintln(w, "   same service type, a Notifier that collects instead of printing:")
	capture := &capturingNotifier{}
	quiet := NewWelcomeService(BcryptHasher{Cost: bcrypt.MinCost}, capture)
	_, _ = quiet.Register("bob", "hunter2")
	fmt.Fprintf(w, "   captured instead of printed: %q\n", capture.messages)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "3) what the tests in this package do with the same seam:")
	fmt.Fprintln(w, "   - a fake hasher returns instantly (no key stretching in unit tests)")
	fmt.Fprintln(w, "   - a fake notifier records calls for exact assertions")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "the rule of thumb: accept interfaces, return structs, and keep ALL")
	fmt.Fprintln(w, "knowledge of concrete types in one composition root at the program's")
	fmt.Fprintln(w, "edge. lesson 3 builds a toy container that automates that root.")
}

// capturingNotifier is the demo's stand-in delivery channel.
type capturingNotifier struct {
	messages []string
}

func (n *capturingNotifier) Notify(recipient, message string) error {
	n.messages = append(n.messages, fmt.Sprintf("%s <- %s", recipient, message))
	return nil
}
