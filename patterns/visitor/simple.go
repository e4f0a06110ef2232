package visitor

import (
	"fmt"
	"io"
)

// DescribeDispatch is the explained-simply variant: a visitor that narrates
// its own double dispatch. The trick the pattern rests on is two calls, not
// one. a.Accept(v) picks the right Accept through the Attachment interface
// (first dispatch), and that Accept calls the one visitor method matching its
// own concrete type (second dispatch). After both hops, code runs that knows
// BOTH concrete types, with no type switch anywhere.
func DescribeDispatch(w io.Writer, a Attachment) {
	fmt.Fprintf(w, "   hop 1: a.Accept(v) lands in the concrete attachment's Accept\n")
	a.Accept(&narratingVisitor{w: w})
}

type narratingVisitor struct {
	w io.Writer
}

func (v *narratingVisitor) VisitTextNote(n *TextNote) {
	fmt.Fprintf(v.w, "   hop 2: that Accept called VisitTextNote - it is a %q\n", n.Title)
}

func (v *narratingVisitor) VisitImageFile(f *ImageFile) {
	fmt.Fprintf(v.w, "   hop 2: that Accept called VisitImageFile - it is %s\n", f.Name)
}

func (v *narratingVisitor) VisitAudioClip(c *AudioClip) {
	fmt.Fprintf(v.w, "   hop 2: that Accept called VisitAudioClip - it is %s\n", c.Name)
}
