package mediator

import (
	"fmt"
	"io"
)

// Demo runs one room session: joins, a broadcast, a whisper, a leave, and a
// failed delivery, then dumps every inbox.
func Demo(w io.Writer) {
	room := NewChatRoom("war-room")
	alice := NewUser("alice")
	bob := NewUser("bob")
	clara := NewUser("clara")

	fmt.Fprintln(w, "three users join; none of them ever holds a reference to another:")
	for _, u := range []*User{alice, bob, clara} {
		if err := room.Join(u); err != nil {
			fmt.Fprintf(w, "   join failed: %v\n", err)
		}
	}
	fmt.Fprintf(w, "   room size: %d\n\n", room.Size())

	fmt.Fprintln(w, "alice broadcasts - the room decides who hears it:")
	_ = alice.Say("the import job is green again")

	fmt.Fprintln(w, "bob whispers to clara - still through the room:")
	_ = bob.SayTo("clara", "lunch?")

	fmt.Fprintln(w, "clara leaves, then alice tries to whisper to her:")
	room.Leave(clara)
	if err := alice.SayTo("clara", "wait, one more thing"); err != nil {
		fmt.Fprintf(w, "   room answered: %v\n\n", err)
	}

	fmt.Fprintln(w, "inboxes at the end of the session:")
	for _, u := range []*User{alice, bob, clara} {
		fmt.Fprintf(w, "   %s:\n", u.Handle)
		for _, line := range u.Inbox {
			fmt.Fprintf(w, "      %s\n", line)
		}
	}
}
