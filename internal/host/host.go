// Package host declares the contracts the surrounding runtime fulfils. The
// engine never implements these itself (beyond test fakes): the video player,
// dialog chrome, and content instantiation all live on the host side.
package host

import (
	"time"

	"github.com/mkravtsov/vannot/internal/content"
	"github.com/mkravtsov/vannot/internal/geometry"
	"github.com/mkravtsov/vannot/internal/ui"
)

// Runner instantiates sub-content into a mount element and returns a live
// Runnable handle for it.
type Runner interface {
	NewRunnable(action content.Action, mount *ui.Element) (Runnable, error)
}

// Runnable is a live sub-content instance. OnResize subscribes to the
// content's own resize announcements; NotifyResize asks the content to lay
// itself out again (fired after mount and after size mutations). Close
// releases the instance.
type Runnable interface {
	OnResize(fn func())
	NotifyResize()
	Close()
}

// Sizer is an optional Runnable capability for content that tracks its own
// pixel size independently of the interaction's em size (drag-style
// questions). Discovered by type assertion.
type Sizer interface {
	SizePx() (width, height float64)
	SetSizePx(width, height float64)
}

// CopyrightHolder is an optional Runnable capability exposing copyright
// metadata. Discovered by type assertion; content without it simply yields
// nothing.
type CopyrightHolder interface {
	Copyrights() *content.Copyright
}

// Dialog is the host's modal used to present a button interaction's content.
// MaxSize and ContentHeight are in em units at the 16px baseline.
type Dialog interface {
	Open(contentElem *ui.Element)
	Position(anchor *ui.Element, size *geometry.Size)
	MaxSize(anchor *ui.Element) geometry.Size
	ContentHeight() float64
	Scroll(height float64, duration time.Duration)
}

// Prober looks up an image's natural pixel dimensions. Completion may be
// deferred (the image has not loaded yet); fn runs on the engine's task loop
// when the answer is available.
type Prober interface {
	Probe(path string, fn func(width, height float64, err error))
}
