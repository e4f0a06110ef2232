// Package composite lets callers treat one file and a whole folder of files
// through the same interface. Folders hold entries without caring whether
// each is a leaf or another folder, so size and rendering recurse for free.
package composite

import (
	"fmt"
	"io"
	"sort"
)

// Entry is the component interface: the one contract both leaves and
// composites honor. Callers summing sizes never branch on the concrete type.
type Entry interface {
	Name() string
	Size() int64
}

// File is the leaf: it knows its own size and has no children.
type File struct {
	name string
	size int64
}

func NewFile(name string, size int64) *File {
	return &File{name: name, size: size}
}

func (f *File) Name() string { return f.name }
func (f *File) Size() int64  { return f.size }

// Folder is the composite: its size is the sum of whatever it holds,
// computed by asking each child the same question.
type Folder struct {
	name    string
	entries []Entry
}

func NewFolder(name string, entries ...Entry) *Folder {
	return &Folder{name: name, entries: entries}
}

// Add appends entries; a folder can hold files and folders mixed.
func (d *Folder) Add(entries ...Entry) *Folder {
	d.entries = append(d.entries, entries...)
	return d
}

func (d *Folder) Name() string { return d.name }

// Size recurses into children. The folder never learns which of them are
// leaves; each entry answers for its own subtree.
func (d *Folder) Size() int64 {
	var total int64
	for _, e := range d.entries {
		total += e.Size()
	}
	return total
}

// Len reports direct children only, not the recursive count.
func (d *Folder) Len() int {
	return len(d.entries)
}

// Find walks the subtree depth-first and returns the first entry with the
// given name, or nil. The walk itself is the pattern's payoff: four lines,
// no type switch on File vs Folder beyond the recursion step.
func (d *Folder) Find(name string) Entry {
	for _, e := range d.entries {
		if e.Name() == name {
			return e
		}
		if sub, ok := e.(*Folder); ok {
			if hit := sub.Find(name); hit != nil {
				return hit
			}
		}
	}
	return nil
}

// Tree renders the subtree with two-space indentation, folders first at each
// level, then files, both alphabetical, so output is stable regardless of
// insertion order.
func Tree(w io.Writer, root Entry) {
	render(w, root, 0)
}

func render(w io.Writer, e Entry, depth int) {
	for range depth {
		fmt.Fprint(w, "  ")
	}
	switch v := e.(type) {
	case *Folder:
		fmt.Fprintf(w, "%s/ (%d bytes)\n", v.Name(), v.Size())
		for _, child := range v.sorted() {
			render(w, child, depth+1)
		}
	default:
		fmt.Fprintf(w, "%s (%d bytes)\n", e.Name(), e.Size())
	}
}

func (d *Folder) sorted() []Entry {
	out := append([]Entry{}, d.entries...)
	sort.SliceStable(out, func(i, j int) bool {
		_, iFolder := out[i].(*Folder)
		_, jFolder := out[j].(*Folder)
		if iFolder != jFolder {
			return iFolder
		}
		return out[i].Name() < out[j].Name()
	})
	return out
}
