package memento

import (
	"fmt"
	"io"
)

// Demo narrates an editing session with two saves, a regrettable edit and
// the undos that walk it back.
func Demo(w io.Writer) {
	editor := NewTextEditor()
	history := NewHistory(editor)

	editor.Type("release notes: ")
	history.Save()
	fmt.Fprintf(w, "1) typed the header and saved (depth %d):\n   %q\n\n", history.Depth(), editor.Content())

	editor.Type("badger compaction is 2x faster")
	history.Save()
	fmt.Fprintf(w, "2) typed the good part and saved again (depth %d):\n   %q\n\n", history.Depth(), editor.Content())

	editor.Seek(15)
	editor.Type("UNVERIFIED!!! ")
	fmt.Fprintf(w, "3) jumped back and typed something regrettable, no save:\n   %q (cursor at %d)\n\n", editor.Content(), editor.Cursor())

	_ = history.Undo()
	fmt.Fprintf(w, "4) undo drops the regret, text AND cursor come back:\n   %q (cursor at %d, depth %d)\n\n", editor.Content(), editor.Cursor(), history.Depth())

	_ = history.Undo()
	fmt.Fprintf(w, "5) undo again, back to the bare header:\n   %q (depth %d)\n\n", editor.Content(), history.Depth())

	fmt.Fprintln(w, "6) the stack is empty now, a third undo refuses:")
	if err := history.Undo(); err != nil {
		fmt.Fprintf(w, "   %v\n\n", err)
	}

	fmt.Fprintln(w, "the history never read a single rune of any of those states;")
	fmt.Fprintln(w, "Snapshot's fields are unexported, so outside this package it is a")
	fmt.Fprintln(w, "token you can only store and hand back.")
}
