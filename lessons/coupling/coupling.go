// Package coupling is the "before" picture of the dependency-injection
// lessons: a service that builds its own collaborators. It works, and that
// is exactly the trap - everything it quietly decided for itself is now a
// decision nobody else can change.
package coupling

import (
	"fmt"
	"io"

	"golang.org/x/crypto/bcrypt"
)

// WelcomeService signs up new users: hash the password, send a greeting.
// The only thing a caller may choose is where the console lives. Which
// hasher, what cost, what a greeting looks like, where it goes - all of
// that is hard-coded in Register and invisible from outside.
type WelcomeService struct {
	out io.Writer
}

func NewWelcomeService(out io.Writer) *WelcomeService {
	return &WelcomeService{out: out}
}

// Register hashes the password and greets the user. Note what this method
// does NOT take: no hasher, no notifier. It constructs both on the spot.
func (s *WelcomeService) Register(name, password string) ([]byte, error) {
	// dependency #1, constructed in place: real bcrypt at default cost.
	// Every test of this method now pays ~70ms of key stretching.
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hashing password for %q: %w", name, err)
	}

	// dependency #2, also constructed in place: the one-and-only console
	// notifier. Want an email instead? Edit this method.
	notifier := consoleNotifier{out: s.out}
	if err := notifier.notify(name, fmt.Sprintf("welcome aboard, %s!", name)); err != nil {
		return nil, fmt.Errorf("greeting %q: %w", name, err)
	}
	return hash, nil
}

// consoleNotifier is unexported on purpose: nothing outside this package can
// provide a different one, which is the lesson.
type consoleNotifier struct {
	out io.Writer
}

func (n consoleNotifier) notify(recipient, message string) error {
	_, err := fmt.Fprintf(n.out, "   [console] to %s: %s\n", recipient, message)
	return err
}
