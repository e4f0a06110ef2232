// Package abstractfactory creates families of widgets that belong together.
// Client code asks one factory for everything it needs, so a form rendered
// under the dark theme can never accidentally hold a light checkbox.
package abstractfactory

// Button is the abstract product on the action side of a form.
type Button interface {
	Paint(label string) string
}

// Checkbox is the abstract product on the option side of a form.
type Checkbox interface {
	Paint(label string, checked bool) string
}

// UIFactory produces one whole widget family. A client holding a UIFactory
// can build a complete form without ever naming a concrete widget type.
type UIFactory interface {
	NewButton() Button
	NewCheckbox() Checkbox
	Theme() string
}

// LightFactory produces the light family.
type LightFactory struct{}

func (LightFactory) NewButton() Button     { return lightButton{} }
func (LightFactory) NewCheckbox() Checkbox { return lightCheckbox{} }
func (LightFactory) Theme() string         { return "light" }

// DarkFactory produces the dark family.
type DarkFactory struct{}

func (DarkFactory) NewButton() Button     { return darkButton{} }
func (DarkFactory) NewCheckbox() Checkbox { return darkCheckbox{} }
func (DarkFactory) Theme() string         { return "dark" }
