package abstractfactory

import (
	"fmt"
	"io"
)

// Demo renders one form under both themes, then shows why the factory is the
// unit of consistency: widgets from one family always arrive together.
func Demo(w io.Writer) {
	fmt.Fprintln(w, "the client renders a form; which family it gets is the caller's choice")
	fmt.Fprintln(w)

	for i, factory := range []UIFactory{LightFactory{}, DarkFactory{}} {
		fmt.Fprintf(w, "%d) RenderSettingsForm with %sFactory:\n", i+1, factory.Theme())
		RenderSettingsForm(w, factory)
		fmt.Fprintln(w)
	}

	fmt.Fprintln(w, "3) the point of the family: a factory cannot hand out mixed widgets.")
	fmt.Fprintln(w, "   the concrete types are unexported; the only door is the factory,")
	fmt.Fprintln(w, "   so a dark form holding a light checkbox cannot be constructed.")
}
