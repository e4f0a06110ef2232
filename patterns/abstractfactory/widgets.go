package abstractfactory

import "fmt"

// The concrete widgets are unexported: the only way to obtain one is through
// its family's factory, which is how the families stay unmixed.

type lightButton struct{}

func (lightButton) Paint(label string) string {
	return fmt.Sprintf("( %s )", label)
}

type lightCheckbox struct{}

func (lightCheckbox) Paint(label string, checked bool) string {
	box := "[ ]"
	if checked {
		box = "[x]"
	}
	return fmt.Sprintf("%s %s", box, label)
}

type darkButton struct{}

func (darkButton) Paint(label string) string {
	return fmt.Sprintf("█ %s █", label)
}

type darkCheckbox struct{}

func (darkCheckbox) Paint(label string, checked bool) string {
	box := "▢"
	if checked {
		box = "▣"
	}
	return fmt.Sprintf("%s %s", box, label)
}
