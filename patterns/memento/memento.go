// Package memento captures and restores an object's state without exposing
// what that state is. The editor hands out opaque snapshots; the history
// stacks them and can put the editor back, but can never look inside.
package memento

import "errors"

var ErrNothingToUndo = errors.New("history is empty")

// TextEditor is the originator: a rune buffer plus an insertion cursor.
// Both travel together in a snapshot, so an undo brings back the text AND
// where you were typing.
type TextEditor struct {
	content []rune
	cursor  int
}

func NewTextEditor() *TextEditor {
	return &TextEditor{}
}

// Type inserts text at the cursor and moves the cursor past it.
func (e *TextEditor) Type(text string) {
	insert := []rune(text)
	tail := append([]rune{}, e.content[e.cursor:]...)
	e.content = append(e.content[:e.cursor], insert...)
	e.content = append(e.content, tail...)
	e.cursor += len(insert)
}

// Seek moves the cursor, clamped to the buffer bounds.
func (e *TextEditor) Seek(pos int) {
	if pos < 0 {
		pos = 0
	}
	if pos > len(e.content) {
		pos = len(e.content)
	}
	e.cursor = pos
}

func (e *TextEditor) Content() string {
	return string(e.content)
}

func (e *TextEditor) Cursor() int {
	return e.cursor
}

// Save captures the current state. The buffer is copied, so snapshots stay
// frozen while the editor moves on.
func (e *TextEditor) Save() Snapshot {
	return Snapshot{
		content: append([]rune{}, e.content...),
		cursor:  e.cursor,
	}
}

// Restore puts the editor back to a previously saved state.
func (e *TextEditor) Restore(s Snapshot) {
	e.content = append([]rune{}, s.content...)
	e.cursor = s.cursor
}

// Snapshot is the memento. Its fields are unexported: outside this package
// a snapshot can only be stored and handed back, never read or edited.
type Snapshot struct {
	content []rune
	cursor  int
}

// History is the caretaker. It stacks snapshots in save order and restores
// them last-in first-out; it has no idea what a snapshot contains.
type History struct {
	editor *TextEditor
	stack  []Snapshot
}

func NewHistory(editor *TextEditor) *History {
	return &History{editor: editor}
}

// Save pushes the editor's current state onto the stack.
func (h *History) Save() {
	h.stack = append(h.stack, h.editor.Save())
}

// Undo restores the most recent snapshot and drops it from the stack.
func (h *History) Undo() error {
	if len(h.stack) == 0 {
		return ErrNothingToUndo
	}
	last := h.stack[len(h.stack)-1]
	h.stack = h.stack[:len(h.stack)-1]
	h.editor.Restore(last)
	return nil
}

// Depth reports how many undo steps are available.
func (h *History) Depth() int {
	return len(h.stack)
}
