package strategy

import (
	"fmt"
	"io"
)

// Demo runs the same message through every redaction policy, swapping the
// strategy on a single moderator between runs.
func Demo(w io.Writer) {
	const message = "the Badger hid a viper in the logs"
	moderator := NewModerator(StarsStrategy{}, "badger", "viper")

	fmt.Fprintf(w, "input: %q\n", message)
	fmt.Fprintln(w, "one moderator, one dictionary; only the policy changes:")
	fmt.Fprintln(w)

	for _, s := range []CensorStrategy{
		StarsStrategy{},
		CutStrategy{},
		PlaceholderStrategy{},
	} {
		moderator.SetStrategy(s)
		fmt.Fprintf(w, "   %-12s %q\n", moderator.Strategy()+":", moderator.Moderate(message))
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "a strategy does not need a type of its own; a function literal will do:")
	moderator.SetStrategy(CensorFunc(func(string) string { return "█████" }))
	fmt.Fprintf(w, "   %-12s %q\n", "func:", moderator.Moderate(message))
}
