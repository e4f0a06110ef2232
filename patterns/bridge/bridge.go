// Package bridge keeps two axes of variation apart: what a notification says
// and how it travels. Each notification type holds a Transport and formats
// its content; each transport renders a delivery. n kinds times m transports
// stays n+m types instead of n*m.
package bridge

import (
	"fmt"
	"io"
	"strings"
)

// Transport is the implementor side of the bridge: it moves a finished
// subject and body to a recipient and knows nothing about alerts or digests.
type Transport interface {
	Deliver(to, subject, body string)
	Name() string
}

// ConsoleTransport renders deliveries as single log-style lines.
type ConsoleTransport struct {
	Out io.Writer
}

func (t ConsoleTransport) Deliver(to, subject, body string) {
	fmt.Fprintf(t.Out, "   console >> to=%s subject=%q %s\n", to, subject, body)
}

func (t ConsoleTransport) Name() string { return "console" }

// EmailTransport renders deliveries as a minimal RFC-style message.
type EmailTransport struct {
	Out  io.Writer
	From string
}

func (t EmailTransport) Deliver(to, subject, body string) {
	fmt.Fprintf(t.Out, "   From: %s\n   To: %s\n   Subject: %s\n\n   %s\n", t.From, to, subject, body)
}

func (t EmailTransport) Name() string { return "email" }

// Alert is one abstraction: a single urgent line, delivered immediately.
type Alert struct {
	transport Transport
	Severity  string
}

func NewAlert(transport Transport, severity string) *Alert {
	return &Alert{transport: transport, Severity: severity}
}

// Fire delivers the alert through whatever transport the alert was built on.
func (a *Alert) Fire(to, text string) {
	subject := fmt.Sprintf("ALERT (%s)", a.Severity)
	a.transport.Deliver(to, subject, text)
}

// Digest is the other abstraction: it accumulates items and delivers them as
// one batch, again through any transport.
type Digest struct {
	transport Transport
	items     []string
}

func NewDigest(transport Transport) *Digest {
	return &Digest{transport: transport}
}

// Add queues one item for the next Flush.
func (d *Digest) Add(item string) {
	d.items = append(d.items, item)
}

// Flush delivers everything queued since the last flush and empties the
// digest. Flushing an empty digest delivers nothing.
func (d *Digest) Flush(to string) {
	if len(d.items) == 0 {
		return
	}
	subject := fmt.Sprintf("digest, %d item(s)", len(d.items))
	body := strings.Join(d.items, "; ")
	d.items = nil
	d.transport.Deliver(to, subject, body)
}
