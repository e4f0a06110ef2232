// Package injection is lesson 2: the same welcome service as
// lessons/coupling, with its two hidden dependencies promoted to constructor
// parameters. The service declares what it needs as interfaces; somebody
// else decides what satisfies them.
package injection

import (
	"errors"
	"fmt"
)

var ErrEmptyName = errors.New("name is empty")

// PasswordHasher is what the service actually needs from a hasher: one
// method. Declared here, next to its consumer - in Go the user of an
// interface owns it, not the implementation.
type PasswordHasher interface {
	Hash(password string) ([]byte, error)
}

// Notifier delivers a greeting somewhere. Console, email, a test's slice -
// the service neither knows nor cares.
type Notifier interface {
	Notify(recipient, message string) error
}

// WelcomeService is the same object as in lesson 1, minus the secrets: its
// signature now admits everything it depends on.
type WelcomeService struct {
	hasher   PasswordHasher
	notifier Notifier
}

// NewWelcomeService is the injection point. Accept interfaces, return
// structs: callers hand in anything satisfying the two contracts and get
// the concrete service back.
func NewWelcomeService(hasher PasswordHasher, notifier Notifier) *WelcomeService {
	return &WelcomeService{hasher: hasher, notifier: notifier}
}

// Register is line-for-line the lesson 1 logic; only the two "construct a
// collaborator here" spots became field accesses.
func (s *WelcomeService) Register(name, password string) ([]byte, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("hashing password for %q: %w", name, err)
	}
	if err := s.notifier.Notify(name, fmt.Sprintf("welcome aboard, %s!", name)); err != nil {
		return nil, fmt.Errorf("greeting %q: %w", name, err)
	}
	return hash, nil
}
