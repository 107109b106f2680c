package interaction

import (
	"fmt"

	"github.com/mkravtsov/vannot/internal/content"
)

// Window is an inclusive second range on the video timeline.
type Window struct {
	From float64 `yaml:"from"`
	To   float64 `yaml:"to"`
}

// Contains reports whether second falls inside the window.
func (w Window) Contains(second float64) bool {
	return second >= w.From && second <= w.To
}

// Validate rejects inverted windows.
func (w Window) Validate() error {
	if w.From > w.To {
		return fmt.Errorf("duration window inverted: from %.2f > to %.2f", w.From, w.To)
	}
	return nil
}

// Spec describes one timed annotation. It is owned by the caller and outlives
// any number of show/hide cycles; the Interaction is its single writer and
// mutates position and size in place, so readers (serialization on save, the
// editor) always see the latest values.
type Spec struct {
	Title    string         `yaml:"title,omitempty"`
	Action   content.Action `yaml:"action"`
	Duration Window         `yaml:"duration"`

	// X and Y are percentages of the video surface, 0-100.
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`

	// Width and Height are em units; zero means unset (posters fall back to
	// the default poster size).
	Width  float64 `yaml:"width,omitempty"`
	Height float64 `yaml:"height,omitempty"`

	// Label is an optional HTML caption for the button.
	Label string `yaml:"label,omitempty"`

	// DisplayAsButton selects button (true/absent) or poster (false)
	// presentation. A pointer so explicit false survives YAML round-trips.
	DisplayAsButton *bool `yaml:"displayAsButton,omitempty"`

	// Pause tells the host's scheduler to pause playback when the
	// interaction shows. Read-only from the engine's perspective.
	Pause bool `yaml:"pause,omitempty"`

	// ClassName overrides the CSS class derived from the content library.
	ClassName string `yaml:"className,omitempty"`
}

// Class returns the CSS class for the rendered element.
func (s *Spec) Class() string {
	if s.ClassName != "" {
		return s.ClassName
	}
	return s.Action.ClassName()
}
