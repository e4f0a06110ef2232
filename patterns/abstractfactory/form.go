package abstractfactory

import (
	"fmt"
	"io"
)

// RenderSettingsForm is the client: it builds the same form out of whatever
// family the factory supplies. Nothing in here names a concrete widget, so
// adding a theme means adding a factory, not touching this function.
func RenderSettingsForm(w io.Writer, f UIFactory) {
	button := f.NewButton()
	checkbox := f.NewCheckbox()

	fmt.Fprintf(w, "   settings form, %s theme:\n", f.Theme())
	fmt.Fprintf(w, "   %s\n", checkbox.Paint("mask profanity", true))
	fmt.Fprintf(w, "   %s\n", checkbox.Paint("notify on mention", false))
	fmt.Fprintf(w, "   %s\n", button.Paint("save"))
}
