package chain

import (
	"fmt"
	"io"
)

// Demo wires the moderation pipeline and pushes three messages through it:
// one that survives with a rewrite, one stopped mid-chain, one stopped at the
// very first stage.
func Demo(w io.Writer) {
	profanity, err := NewProfanityStage([]string{"badger", "viper", "hemlock"}, '*')
	if err != nil {
		fmt.Fprintf(w, "building censor failed: %v\n", err)
		return
	}

	head, err := Pipeline(
		NewDropEmptyStage(),
		NewLengthStage(120),
		NewLanguageStage("en"),
		profanity,
	)
	if err != nil {
		fmt.Fprintf(w, "building pipeline failed: %v\n", err)
		return
	}

	fmt.Fprintln(w, "pipeline: drop-empty -> length(120) -> language(en) -> profanity")
	fmt.Fprintln(w, "the sender holds only the head; every check decides alone")
	fmt.Fprintln(w)

	inputs := []Message{
		NewMessage("alice", "watch out, that dependency is a real B.4.d.g.e.r to upgrade"),
		NewMessage("bob", "Bonjour à tous, comment allez-vous aujourd'hui ? J'espère que tout va bien."),
		NewMessage("clara", "   "),
	}

	for i, in := range inputs {
		fmt.Fprintf(w, "%d) %s sends: %q\n", i+1, in.Sender, in.Content)
		out, err := head.Handle(in)
		if err != nil {
			fmt.Fprintf(w, "   rejected: %v\n\n", err)
			continue
		}
		fmt.Fprintf(w, "   delivered as: %q\n\n", out.Content)
	}

	fmt.Fprintln(w, "note how the leet-speak variant still matched the dictionary,")
	fmt.Fprintln(w, "and how rejections name the stage's reason, not the stage")
}
