// Package ui models the visual elements an interaction produces. The engine
// does not build real DOM; elements are plain data the host attaches to its
// rendering surface when the display event fires.
package ui

// Role identifies what an element represents on screen.
type Role int

const (
	// RoleButton is the small activation control for button-mode interactions.
	RoleButton Role = iota
	// RolePoster is the inline container for poster-mode interactions.
	RolePoster
	// RoleContent is a mount point for instantiated sub-content.
	RoleContent
	// RoleDot is a timeline tick marker.
	RoleDot
)

func (r Role) String() string {
	switch r {
	case RoleButton:
		return "button"
	case RolePoster:
		return "poster"
	case RoleContent:
		return "content"
	case RoleDot:
		return "dot"
	default:
		return "unknown"
	}
}

// Element is a positioned node. X and Y are percentages of the containing
// surface; Width and Height are em units (zero when the element sizes
// itself). FontSizePx is the element's computed font size, 16 unless the host
// styles it differently.
type Element struct {
	Role       Role
	Class      string
	X, Y       float64
	Width      float64
	Height     float64
	FontSizePx float64
	Label      *Label
	Children   []*Element

	// Entered flips one tick after creation so the host's entry transition
	// has a frame to start from.
	Entered bool

	// OnActivate fires when the host reports the element was clicked.
	OnActivate func()
}

// NewElement returns an element with the default 16px font size.
func NewElement(role Role, class string) *Element {
	return &Element{Role: role, Class: class, FontSizePx: 16}
}

// Append adds a child node.
func (e *Element) Append(child *Element) {
	e.Children = append(e.Children, child)
}

// Activate simulates a click on the element.
func (e *Element) Activate() {
	if e.OnActivate != nil {
		e.OnActivate()
	}
}

// Label is a button caption. OffsetLeft and Width are the label's measured
// pixel offset and width relative to its button; FlipLeft moves the label to
// the button's left side when it would overflow the container.
type Label struct {
	HTML       string
	OffsetLeft float64
	Width      float64
	FlipLeft   bool
}
