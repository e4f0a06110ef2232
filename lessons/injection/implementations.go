package injection

import (
	"fmt"
	"io"

	"golang.org/x/crypto/bcrypt"
)

// BcryptHasher is the production PasswordHasher. The cost is a field now -
// in lesson 1 it was a constant buried in a method.
type BcryptHasher struct {
	Cost int
}

func (h BcryptHasher) Hash(password string) ([]byte, error) {
	cost := h.Cost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	return bcrypt.GenerateFromPassword([]byte(password), cost)
}

// ConsoleNotifier is the production Notifier, now exported and one
// implementation among any number.
type ConsoleNotifier struct {
	Out io.Writer
}

func (n ConsoleNotifier) Notify(recipient, message string) error {
	_, err := fmt.Fprintf(n.Out, "   [console] to %s: %s\n", recipient, message)
	return err
}
