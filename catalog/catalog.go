// Package catalog is the registry the demo runner reads: every runnable
// walkthrough in the repository, by name, with enough wording to build an
// index from. Each entry's Run writes its narration to the given writer and
// nothing else; entries never interact.
package catalog

import (
	"errors"
	"fmt"
	"io"
	"sort"
)

var ErrUnknownDemo = errors.New("unknown demo")

// Family groups entries for the index listing.
type Family string

const (
	Behavioral Family = "behavioral"
	Creational Family = "creational"
	Structural Family = "structural"
	Lesson     Family = "di lesson"
)

// Entry is one runnable demo.
type Entry struct {
	Name   string
	Family Family
	Blurb  string
	Run    func(w io.Writer)
}

// All returns every entry, lessons last, alphabetical within a family.
// The slice is rebuilt per call so callers can reorder without aliasing.
func All() []Entry {
	out := append([]Entry{}, entries...)
	rank := map[Family]int{Behavioral: 0, Creational: 1, Structural: 2, Lesson: 3}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Family != out[j].Family {
			return rank[out[i].Family] < rank[out[j].Family]
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// Find returns the entry with the given name.
func Find(name string) (Entry, error) {
	for _, e := range entries {
		if e.Name == name {
			return e, nil
		}
	}
	return Entry{}, fmt.Errorf("%w: %q", ErrUnknownDemo, name)
}

// Names lists every demo name in index order, for error messages and
// completion.
func Names() []string {
	all := All()
	names := make([]string, len(all))
	for i, e := range all {
		names[i] = e.Name
	}
	return names
}
