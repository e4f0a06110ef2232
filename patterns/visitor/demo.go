package visitor

import (
	"fmt"
	"io"
	"time"
)

// Demo runs two unrelated operations over the same attachment batch without
// touching a single attachment type.
func Demo(w io.Writer) {
	attachments := []Attachment{
		&TextNote{Title: "standup notes", Body: "blocked on the S3 bucket policy, everything else green"},
		&ImageFile{Name: "flamegraph.png", Width: 1920, Height: 1080, Bytes: 245_120},
		&AudioClip{Name: "retro.ogg", Duration: 95 * time.Second, Bitrate: 64},
	}

	fmt.Fprintln(w, "a message carries three attachments of three concrete types;")
	fmt.Fprintln(w, "each type was written once and will not change again")
	fmt.Fprintln(w)

	fmt.Fprintln(w, "1) operation one, total size - a visitor, not a method on the types:")
	size := &SizeVisitor{}
	for _, a := range attachments {
		a.Accept(size)
	}
	fmt.Fprintf(w, "   %d bytes across the batch\n\n", size.Total)

	fmt.Fprintln(w, "2) operation two, a manifest - added later, zero edits to the types:")
	manifest := &ManifestVisitor{}
	for _, a := range attachments {
		a.Accept(manifest)
	}
	for _, line := range manifest.Lines() {
		fmt.Fprintf(w, "   %s\n", line)
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "3) explained simply - watch one Accept call bounce twice:")
	DescribeDispatch(w, attachments[1])
}
