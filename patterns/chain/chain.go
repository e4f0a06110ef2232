// Package chain runs messages through a moderation pipeline where each stage
// either rejects, transforms, or simply passes the message to the next stage.
// Each kind of check has its own handler; the sender only knows the head of
// the chain.
package chain

import (
	"errors"

	"github.com/google/uuid"
)

var (
	ErrMessageEmpty     = errors.New("message is empty")
	ErrMessageTooLong   = errors.New("message exceeds length limit")
	ErrLanguageRejected = errors.New("message language not allowed")
	ErrNoStages         = errors.New("pipeline needs at least one stage")
	ErrEmptyDictionary  = errors.New("no censored words have been provided")
)

// Message is the unit moving through the pipeline.
type Message struct {
	ID      uuid.UUID
	Sender  string
	Content string
}

func NewMessage(sender, content string) Message {
	return Message{ID: uuid.New(), Sender: sender, Content: content}
}

// Stage is one link of the chain. Handle returns the (possibly rewritten)
// message after the rest of the chain ran, or the first rejection error.
type Stage interface {
	Handle(m Message) (Message, error)
	SetNext(next Stage) Stage
}

// base carries the hand-off plumbing so concrete stages only implement their
// own check.
type base struct {
	next Stage
}

// SetNext wires the successor and returns it, so pipelines read left to
// right: a.SetNext(b).SetNext(c).
func (b *base) SetNext(next Stage) Stage {
	b.next = next
	return next
}

func (b *base) pass(m Message) (Message, error) {
	if b.next == nil {
		// end of the chain: the message survived every check
		return m, nil
	}
	return b.next.Handle(m)
}

// Pipeline links stages in order and returns the head. The caller keeps the
// head only; every other stage is reachable through it.
func Pipeline(stages ...Stage) (Stage, error) {
	if len(stages) == 0 {
		return nil, ErrNoStages
	}
	for i := 0; i < len(stages)-1; i++ {
		stages[i].SetNext(stages[i+1])
	}
	return stages[0], nil
}
