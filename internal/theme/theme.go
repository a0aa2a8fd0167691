// Package theme switches the viewer page between its light and dark presentation.
package theme

// ClassList is the class membership of the root presentation element
type ClassList interface {
	// Toggle flips membership of name and reports whether it is now present
	Toggle(name string) bool
	Contains(name string) bool
}

// Classes names the two marker classes
type Classes struct {
	Light string `koanf:"light_class"`
	Dark  string `koanf:"dark_class"`
}

// DefaultClasses returns the light/dark marker class names
func DefaultClasses() Classes {
	return Classes{Light: "light", Dark: "dark"}
}

// Mode is the presentation mode implied by the class list
type Mode int

const (
	Unknown Mode = iota
	Light
	Dark
)

func (m Mode) String() string {
	switch m {
	case Light:
		return "light"
	case Dark:
		return "dark"
	}
	return "unknown"
}

// Switcher toggles the marker classes on a root element
type Switcher struct {
	root    ClassList
	classes Classes
}

// NewSwitcher creates a Switcher for root
func NewSwitcher(root ClassList, classes Classes) *Switcher {
	return &Switcher{root: root, classes: classes}
}

// Toggle flips both marker classes. Starting from exactly one present,
// exactly one is present afterwards.
func (s *Switcher) Toggle() Mode {
	s.root.Toggle(s.classes.Light)
	s.root.Toggle(s.classes.Dark)
	return s.Mode()
}

// Set puts the root into mode, leaving exactly one marker class present.
// Unknown is treated as Light.
func (s *Switcher) Set(mode Mode) {
	want, other := s.classes.Light, s.classes.Dark
	if mode == Dark {
		want, other = other, want
	}
	if !s.root.Contains(want) {
		s.root.Toggle(want)
	}
	if s.root.Contains(other) {
		s.root.Toggle(other)
	}
}

// Mode reports Light or Dark when exactly one marker class is present
func (s *Switcher) Mode() Mode {
	light := s.root.Contains(s.classes.Light)
	dark := s.root.Contains(s.classes.Dark)
	switch {
	case light && !dark:
		return Light
	case dark && !light:
		return Dark
	}
	return Unknown
}
