package bridge

import (
	"fmt"
	"io"
)

// Demo runs both abstractions over both transports: four combinations out of
// four types. The subclass-explosion alternative would already be at
// ConsoleAlert, EmailAlert, ConsoleDigest, EmailDigest.
func Demo(w io.Writer) {
	console := ConsoleTransport{Out: w}
	email := EmailTransport{Out: w, From: "noreply@patterns-lab"}

	fmt.Fprintln(w, "two abstractions (Alert, Digest) x two transports (console, email)")
	fmt.Fprintln(w)

	fmt.Fprintln(w, "1) alert over console:")
	NewAlert(console, "critical").Fire("ops", "disk 94% full on node-3")

	fmt.Fprintln(w, "\n2) the same alert type over email - only the constructor changed:")
	NewAlert(email, "critical").Fire("ops@corp", "disk 94% full on node-3")

	fmt.Fprintln(w, "\n3) digest over console - a different abstraction, same transport:")
	digest := NewDigest(console)
	digest.Add("3 messages flagged in #general")
	digest.Add("1 user muted")
	digest.Flush("moderators")

	fmt.Fprintln(w, "\n4) digest over email:")
	nightly := NewDigest(email)
	nightly.Add("uploads: 112")
	nightly.Add("deletes: 4")
	nightly.Flush("reports@corp")

	fmt.Fprintln(w, "\nan empty digest stays silent:")
	NewDigest(console).Flush("nobody")
	fmt.Fprintln(w, "   (nothing was delivered)")

	fmt.Fprintln(w, "\nadding a fifth transport touches neither Alert nor Digest;")
	fmt.Fprintln(w, "adding a third abstraction touches no transport.")
}
