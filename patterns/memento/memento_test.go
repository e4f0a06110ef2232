package memento

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTextEditor_TypeInsertsAtCursor(t *testing.T) {
	req := require.New(t)
	ed := NewTextEditor()

	ed.Type("hello world")
	req.Equal("hello world", ed.Content())
	req.Equal(11, ed.Cursor())

	// insert in the middle; cursor lands after the inserted text
	ed.Seek(5)
	ed.Type(",")
	req.Equal("hello, world", ed.Content())
	req.Equal(6, ed.Cursor())
}

func TestTextEditor_CursorIsRuneBased(t *testing.T) {
	req := require.New(t)
	ed := NewTextEditor()

	ed.Type("été")
	req.Equal(3, ed.Cursor())

	ed.Seek(1)
	ed.Type("x")
	req.Equal("éxté", ed.Content())
}

func TestTextEditor_SeekClamps(t *testing.T) {
	req := require.New(t)
	ed := NewTextEditor()
	ed.Type("abc")

	ed.Seek(-5)
	req.Equal(0, ed.Cursor())

	ed.Seek(99)
	req.Equal(3, ed.Cursor())
}

func TestSnapshot_RestoresContentAndCursor(t *testing.T) {
	req := require.New(t)
	ed := NewTextEditor()
	ed.Type("draft one")
	ed.Seek(5)

	snap := ed.Save()
	ed.Type("INSERTED ")
	req.Equal("draftINSERTED  one", ed.Content())

	ed.Restore(snap)
	req.Equal("draft one", ed.Content())
	req.Equal(5, ed.Cursor())
}

func TestSnapshot_ImmuneToLaterEdits(t *testing.T) {
	// Given a snapshot taken before a burst of edits
	req := require.New(t)
	ed := NewTextEditor()
	ed.Type("frozen")
	snap := ed.Save()

	// When the editor keeps mutating its buffer
	ed.Type(" and thawed and refrozen")
	ed.Seek(0)
	ed.Type(">>> ")

	// Then the snapshot still holds the state it captured
	ed.Restore(snap)
	req.Equal("frozen", ed.Content())
}

func TestHistory_UndoIsLIFO(t *testing.T) {
	req := require.New(t)
	ed := NewTextEditor()
	h := NewHistory(ed)

	ed.Type("a")
	h.Save()
	ed.Type("b")
	h.Save()
	ed.Type("c")
	req.Equal(2, h.Depth())

	req.NoError(h.Undo())
	req.Equal("ab", ed.Content())
	req.NoError(h.Undo())
	req.Equal("a", ed.Content())
	req.Equal(0, h.Depth())
}

func TestHistory_UndoOnEmptyStack(t *testing.T) {
	h := NewHistory(NewTextEditor())
	require.ErrorIs(t, h.Undo(), ErrNothingToUndo)
}

func TestDemo_Runs(t *testing.T) {
	var sb strings.Builder
	Demo(&sb)

	out := sb.String()
	require.Contains(t, out, "UNVERIFIED")
	require.Contains(t, out, "history is empty")
	require.NotContains(t, strings.Split(out, "4) undo")[1], "UNVERIFIED")
}
