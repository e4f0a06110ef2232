// Package iterator walks a message log without exposing how the log stores
// its entries. The collection hands out iterator objects; callers only ever
// see HasNext/Next.
package iterator

import "github.com/google/uuid"

// Message is a single chat line. The ID is stamped on append so two equal
// texts stay distinguishable.
type Message struct {
	ID      uuid.UUID
	Sender  string
	Content string
}

// MessageLog keeps messages in arrival order. Iteration goes through
// Iterator/ReverseIterator/All; the backing slice stays private.
type MessageLog struct {
	messages []Message
}

func NewMessageLog() *MessageLog {
	return &MessageLog{}
}

// Append stores a new message at the end of the log and returns it.
func (l *MessageLog) Append(sender, content string) Message {
	m := Message{ID: uuid.New(), Sender: sender, Content: content}
	l.messages = append(l.messages, m)
	return m
}

func (l *MessageLog) Len() int {
	return len(l.messages)
}

// Iterator returns a fresh forward iterator. Each iterator owns its own
// cursor, so several can walk the same log independently.
func (l *MessageLog) Iterator() *LogIterator {
	return &LogIterator{log: l, cursor: 0, step: 1}
}

// ReverseIterator walks from the newest message back to the oldest.
func (l *MessageLog) ReverseIterator() *LogIterator {
	return &LogIterator{log: l, cursor: len(l.messages) - 1, step: -1}
}

// LogIterator is the classic iterator object: a cursor over the collection
// plus a direction. Next after exhaustion returns the zero Message.
type LogIterator struct {
	log    *MessageLog
	cursor int
	step   int
}

func (it *LogIterator) HasNext() bool {
	return it.cursor >= 0 && it.cursor < len(it.log.messages)
}

func (it *LogIterator) Next() Message {
	if !it.HasNext() {
		return Message{}
	}
	m := it.log.messages[it.cursor]
	it.cursor += it.step
	return m
}
