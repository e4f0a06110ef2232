package injection

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// The fakes below are the payoff of the whole lesson: compare this file with
// lessons/coupling's test, which has no choice but to run real bcrypt and
// parse console text.

type fakeHasher struct {
	calls []string
	err   error
}

func (h *fakeHasher) Hash(password string) ([]byte, error) {
	h.calls = append(h.calls, password)
	if h.err != nil {
		return nil, h.err
	}
	return []byte("hashed:" + password), nil
}

type fakeNotifier struct {
	recipients []string
	messages   []string
	err        error
}

func (n *fakeNotifier) Notify(recipient, message string) error {
	if n.err != nil {
		return n.err
	}
	n.recipients = append(n.recipients, recipient)
	n.messages = append(n.messages, message)
	return nil
}

func TestRegister_HashesAndGreets(t *testing.T) {
	req := require.New(t)
	hasher := &fakeHasher{}
	notifier := &fakeNotifier{}
	service := NewWelcomeService(hasher, notifier)

	hash, err := service.Register("alice", "s3cret")

	req.NoError(err)
	req.Equal([]byte("hashed:s3cret"), hash)
	req.Equal([]string{"s3cret"}, hasher.calls)
	req.Equal([]string{"alice"}, notifier.recipients)
	req.Equal([]string{"welcome aboard, alice!"}, notifier.messages)
}

func TestRegister_EmptyName(t *testing.T) {
	req := require.New(t)
	hasher := &fakeHasher{}
	service := NewWelcomeService(hasher, &fakeNotifier{})

	_, err := service.Register("", "whatever")

	req.ErrorIs(err, ErrEmptyName)
	req.Empty(hasher.calls, "validation must run before any collaborator")
}

func TestRegister_HasherFailureStopsTheGreeting(t *testing.T) {
	req := require.New(t)
	boom := errors.New("entropy outage")
	notifier := &fakeNotifier{}
	service := NewWelcomeService(&fakeHasher{err: boom}, notifier)

	_, err := service.Register("alice", "s3cret")

	req.ErrorIs(err, boom)
	req.Empty(notifier.messages, "no greeting for a failed registration")
}

func TestRegister_NotifierFailureSurfaces(t *testing.T) {
	boom := errors.New("smtp down")
	service := NewWelcomeService(&fakeHasher{}, &fakeNotifier{err: boom})

	_, err := service.Register("alice", "s3cret")
	require.ErrorIs(t, err, boom)
}

// One test keeps the real implementations honest, at the cheapest cost
// bcrypt offers. This is a choice the coupled version never got to make.
func TestRealImplementations_WorkTogether(t *testing.T) {
	req := require.New(t)
	var console strings.Builder
	service := NewWelcomeService(BcryptHasher{Cost: bcrypt.MinCost}, ConsoleNotifier{Out: &console})

	hash, err := service.Register("alice", "s3cret")

	req.NoError(err)
	req.NoError(bcrypt.CompareHashAndPassword(hash, []byte("s3cret")))
	req.Contains(console.String(), "[console] to alice: welcome aboard, alice!")
}

func TestDemo_Runs(t *testing.T) {
	var sb strings.Builder
	Demo(&sb)

	out := sb.String()
	require.Contains(t, out, "lesson 2/3")
	require.Contains(t, out, "composition root")
	require.Contains(t, out, "captured instead of printed")
}
