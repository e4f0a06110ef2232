package templatemethod

import (
	"fmt"
	"io"
)

// Demo builds the same reporting window twice, once per format. The skeleton
// runs identically both times; only the Render step differs.
func Demo(w io.Writer) {
	window := StatsSource{Rooms: []RoomStats{
		{Room: "general", Messages: 412, Flagged: 3},
		{Room: "incidents", Messages: 97, Flagged: 11},
		{Room: "random", Messages: 266, Flagged: 0},
	}}

	fmt.Fprintln(w, "one skeleton (collect -> summarize -> render), two formats:")
	fmt.Fprintln(w)

	fmt.Fprintln(w, "--- TextReport ---")
	if err := Build(w, TextReport{window}); err != nil {
		fmt.Fprintf(w, "build failed: %v\n", err)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "--- MarkdownReport ---")
	if err := Build(w, MarkdownReport{window}); err != nil {
		fmt.Fprintf(w, "build failed: %v\n", err)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "both totals lines agree because neither report computed them;")
	fmt.Fprintln(w, "summarize() belongs to the skeleton and cannot be overridden.")
}
