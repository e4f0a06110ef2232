package iterator

import "iter"

// All is the explained-simply variant: since Go 1.23 the language has its own
// iterator shape, a function that feeds a yield callback. `for m := range
// log.All()` reads like the classic loop but needs no iterator object, and
// breaking out of the loop stops the walk early through yield's return value.
func (l *MessageLog) All() iter.Seq[Message] {
	return func(yield func(Message) bool) {
		for _, m := range l.messages {
			if !yield(m) {
				return
			}
		}
	}
}
