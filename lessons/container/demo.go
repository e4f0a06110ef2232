package container

import (
	"fmt"
	"io"
	"log/slog"
)

// AppSettings is a bean whose zero value is fine, so plain Register works.
type AppSettings struct {
	Theme    string
	PageSize int
}

// GreetingCards needs a writer, so its bean goes through RegisterFactory.
type GreetingCards struct {
	Out  io.Writer
	Sent int
}

// Send writes one card and counts it; the count is how the demo shows that
// every GetBean hands back the same instance.
func (g *GreetingCards) Send(to string) {
	g.Sent++
	fmt.Fprintf(g.Out, "   [card] dear %s, welcome!\n", to)
}

// Demo walks the container's whole API: register by prototype, register by
// factory, resolve, resolve again, and the three mistakes it refuses.
func Demo(w io.Writer) {
	fmt.Fprintln(w, "lesson 3/3 - a toy IoC container: create by name, cache forever")
	fmt.Fprintln(w)

	c := NewSimpleContainer(slog.New(slog.DiscardHandler))

	fmt.Fprintln(w, "1) register two beans - a zero-value prototype and a factory:")
	_ = c.Register("settings", AppSettings{})
	_ = c.RegisterFactory("cards", func() any { return &GreetingCards{Out: w} })
	fmt.Fprintf(w, "   registry now holds: %v\n\n", c.Names())

	fmt.Fprintln(w, "2) first GetBean builds, second returns the cached instance:")
	first := c.MustGetBean("cards").(*GreetingCards)
	second := c.MustGetBean("cards").(*GreetingCards)
	fmt.Fprintf(w, "   same reference: %v (type %s)\n", first == second, TypeName(first))
	first.Send("alice")
	second.Send("bob")
	fmt.Fprintf(w, "   cards sent through either handle: %d - one bean, two names for it\n\n", first.Sent)

	fmt.Fprintln(w, "3) prototype registration hands out a pointer to the zero value:")
	settings := c.MustGetBean("settings").(*AppSettings)
	fmt.Fprintf(w, "   settings: %+v\n", *settings)
	settings.Theme = "dark"
	fmt.Fprintf(w, "   mutate through the bean, every later GetBean sees it: %+v\n\n",
		*c.MustGetBean("settings").(*AppSettings))

	fmt.Fprintln(w, "4) the mistakes it catches:")
	if err := c.Register("settings", AppSettings{}); err != nil {
		fmt.Fprintf(w, "   re-register:       %v\n", err)
	}
	if err := c.Register("port", 8080); err != nil {
		fmt.Fprintf(w, "   non-struct:        %v\n", err)
	}
	if _, err := c.GetBean("mailer"); err != nil {
		fmt.Fprintf(w, "   unregistered name: %v\n", err)
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "that is the entire trick: a map of builders, a map of instances, a")
	fmt.Fprintln(w, "lock. what Spring, fx, or wire add on top - constructor dependency")
	fmt.Fprintln(w, "graphs, lifetimes, cycle detection - is bookkeeping around this core.")
}
