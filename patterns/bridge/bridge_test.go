package bridge

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// recordingTransport captures deliveries so tests can assert on what crossed
// the bridge instead of parsing rendered output.
type recordingTransport struct {
	deliveries []string
}

func (t *recordingTransport) Deliver(to, subject, body string) {
	t.deliveries = append(t.deliveries, to+"|"+subject+"|"+body)
}

func (t *recordingTransport) Name() string { return "recording" }

func TestAlert_FiresThroughItsTransport(t *testing.T) {
	req := require.New(t)
	transport := &recordingTransport{}

	NewAlert(transport, "critical").Fire("ops", "disk full")

	req.Len(transport.deliveries, 1)
	req.Equal("ops|ALERT (critical)|disk full", transport.deliveries[0])
}

func TestDigest_BatchesUntilFlush(t *testing.T) {
	req := require.New(t)
	transport := &recordingTransport{}
	digest := NewDigest(transport)

	digest.Add("first")
	digest.Add("second")
	req.Empty(transport.deliveries, "nothing delivers before Flush")

	digest.Flush("mods")
	req.Len(transport.deliveries, 1)
	req.Equal("mods|digest, 2 item(s)|first; second", transport.deliveries[0])

	// the flush emptied the digest; flushing again delivers nothing
	digest.Flush("mods")
	req.Len(transport.deliveries, 1)
}

func TestDigest_EmptyFlushDeliversNothing(t *testing.T) {
	transport := &recordingTransport{}
	NewDigest(transport).Flush("nobody")
	require.Empty(t, transport.deliveries)
}

func TestTransports_RenderDifferently(t *testing.T) {
	req := require.New(t)

	var console strings.Builder
	ConsoleTransport{Out: &console}.Deliver("ops", "subject", "body")
	req.Contains(console.String(), "console >> to=ops")

	var email strings.Builder
	EmailTransport{Out: &email, From: "noreply"}.Deliver("ops@corp", "subject", "body")
	req.Contains(email.String(), "From: noreply")
	req.Contains(email.String(), "To: ops@corp")
}

func TestDemo_Runs(t *testing.T) {
	var sb strings.Builder
	Demo(&sb)

	out := sb.String()
	require.Contains(t, out, "alert over console")
	require.Contains(t, out, "ALERT (critical)")
	require.Contains(t, out, "digest, 2 item(s)")
	require.Contains(t, out, "From: noreply@patterns-lab")
}
