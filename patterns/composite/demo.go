package composite

import (
	"fmt"
	"io"
)

// Demo builds a small project tree, renders it, and totals sizes at several
// levels to show that one Size() call serves leaf and subtree alike.
func Demo(w io.Writer) {
	src := NewFolder("src",
		NewFile("main.go", 420),
		NewFile("handler.go", 1337),
	)
	docs := NewFolder("docs",
		NewFile("README.md", 900),
	)
	uploads := NewFolder("uploads",
		NewFile("avatar.png", 48_000),
		NewFolder("2026", NewFile("report.pdf", 102_400)),
	)
	root := NewFolder("project", src, docs, uploads, NewFile("go.mod", 180))

	fmt.Fprintln(w, "1) the tree (folders carry the sum of their subtree):")
	Tree(w, root)

	fmt.Fprintln(w, "\n2) one interface, asked at three levels:")
	fmt.Fprintf(w, "   file  main.go:  %d bytes\n", src.Find("main.go").Size())
	fmt.Fprintf(w, "   dir   uploads:  %d bytes\n", uploads.Size())
	fmt.Fprintf(w, "   root  project:  %d bytes\n", root.Size())

	fmt.Fprintln(w, "\n3) growing the structure changes no calling code:")
	uploads.Add(NewFile("voice.ogg", 9_500))
	fmt.Fprintf(w, "   after adding voice.ogg, uploads: %d bytes, project: %d bytes\n",
		uploads.Size(), root.Size())

	fmt.Fprintln(w, "\nthe caller above never checked what kind of entry it held;")
	fmt.Fprintln(w, "recursion lives inside Folder, not in every consumer.")
}
