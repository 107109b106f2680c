// Package interaction implements the per-annotation controller: it tracks the
// annotation's visibility against playback time, chooses button or poster
// presentation, opens the host dialog for button content, and exposes the
// mutation API the editor drives.
package interaction

import (
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/mkravtsov/vannot/internal/content"
	"github.com/mkravtsov/vannot/internal/event"
	"github.com/mkravtsov/vannot/internal/geometry"
	"github.com/mkravtsov/vannot/internal/host"
	"github.com/mkravtsov/vannot/internal/sched"
	"github.com/mkravtsov/vannot/internal/ui"
)

// EventDisplay fires once, synchronously, whenever a new visual element is
// created. The payload is the *ui.Element so the caller can attach it to the
// live surface.
const EventDisplay = "display"

// scrollDuration is how long the dialog animates a rescroll.
const scrollDuration = 300 * time.Millisecond

// Deps are the host collaborators an Interaction delegates to. Runner,
// Dialog, and Prober may be nil; the affected affordances degrade to no-ops.
type Deps struct {
	Runner host.Runner
	Dialog host.Dialog
	Sched  sched.Scheduler
	Prober host.Prober
	Log    *slog.Logger
}

// Options tune engine behavior. Zero values select the defaults.
type Options struct {
	// DisableDialog suppresses dialog opening on button activation.
	DisableDialog bool

	// PosterSize is the fallback size for posters without explicit
	// dimensions. Default 10x10 em.
	PosterSize geometry.Size

	// RescrollDeadZone is the content-height delta (em) a summary dialog
	// ignores before following growth. Default 10.
	RescrollDeadZone float64

	// RescrollDelay is how long a summary resize settles before the dialog
	// rescrolls. Default 500ms.
	RescrollDelay time.Duration
}

func (o Options) withDefaults() Options {
	if o.PosterSize.Width <= 0 || o.PosterSize.Height <= 0 {
		o.PosterSize = geometry.Size{Width: 10, Height: 10}
	}
	if o.RescrollDeadZone <= 0 {
		o.RescrollDeadZone = 10
	}
	if o.RescrollDelay <= 0 {
		o.RescrollDelay = 500 * time.Millisecond
	}
	return o
}

// Interaction is the controller for one timed annotation. One instance lives
// for the whole video session; its visual element is created lazily on
// entering the visibility window and destroyed on exit.
//
// Not safe for concurrent use: the engine is driven by a single host loop.
type Interaction struct {
	spec *Spec
	kind content.Kind
	deps Deps
	opts Options
	log  *slog.Logger

	emitter event.Emitter

	element  *ui.Element
	runnable host.Runnable
	token    *sched.Token

	dialogOpen       bool
	lastDialogHeight float64
}

// New builds a controller around a caller-owned spec. The duration window is
// validated here; everything else degrades defensively at use sites.
func New(spec *Spec, deps Deps, opts Options) (*Interaction, error) {
	if spec == nil {
		return nil, fmt.Errorf("nil interaction spec")
	}
	if err := spec.Duration.Validate(); err != nil {
		return nil, err
	}
	if deps.Sched == nil {
		return nil, fmt.Errorf("scheduler required")
	}
	if deps.Log == nil {
		deps.Log = slog.Default()
	}
	return &Interaction{
		spec: spec,
		kind: spec.Action.Kind(),
		deps: deps,
		opts: opts.withDefaults(),
		log:  deps.Log,
	}, nil
}

// Spec returns the caller-owned spec.
func (in *Interaction) Spec() *Spec { return in.spec }

// Kind returns the content kind resolved at construction.
func (in *Interaction) Kind() content.Kind { return in.kind }

// Element returns the current visual handle, or nil while hidden.
func (in *Interaction) Element() *ui.Element { return in.element }

// Visible reports whether a visual element currently exists.
func (in *Interaction) Visible() bool { return in.element != nil }

// Pause reports whether showing this interaction should pause playback.
func (in *Interaction) Pause() bool { return in.spec.Pause }

// Title returns the display title: the explicit title, else the label's
// rendered text, else the content kind name.
func (in *Interaction) Title() string {
	if in.spec.Title != "" {
		return in.spec.Title
	}
	if t := ui.TextContent(in.spec.Label); t != "" {
		return t
	}
	return in.kind.String()
}

// OnDisplay registers a handler for the display event.
func (in *Interaction) OnDisplay(fn func(*ui.Element)) {
	in.emitter.On(EventDisplay, func(payload any) {
		if e, ok := payload.(*ui.Element); ok {
			fn(e)
		}
	})
}

// IsButton reports whether the interaction renders as a button. Posters
// require an explicit DisplayAsButton=false; the sentinel kind is always a
// button (typically invisible, used as a timing marker).
func (in *Interaction) IsButton() bool {
	if in.kind == content.KindSentinel {
		return true
	}
	return in.spec.DisplayAsButton == nil || *in.spec.DisplayAsButton
}

// Toggle reconciles visibility against the current playback second. Outside
// the window it destroys any visual element; inside it returns the existing
// handle or creates one. It depends only on the current second, never on
// history, so it stays correct under seeking.
func (in *Interaction) Toggle(second float64) *ui.Element {
	if !in.spec.Duration.Contains(second) {
		in.destroyVisual()
		return nil
	}
	if in.element != nil {
		return in.element
	}
	in.createVisual()
	return in.element
}

func (in *Interaction) createVisual() {
	in.token = sched.NewToken()
	if in.IsButton() {
		in.element = in.newButton()
	} else {
		in.element = in.newPoster()
	}
	in.emitter.Emit(EventDisplay, in.element)

	// Flip the entry flag off-stack so the host's transition has a frame to
	// start from.
	elem := in.element
	in.deps.Sched.NextTick(sched.Guard(in.token, func() {
		elem.Entered = true
	}))
}

func (in *Interaction) newButton() *ui.Element {
	e := ui.NewElement(ui.RoleButton, in.spec.Class())
	e.X, e.Y = in.spec.X, in.spec.Y
	if in.kind == content.KindSentinel || ui.HasVisibleText(in.spec.Label) {
		e.Label = &ui.Label{HTML: in.spec.Label}
	}
	e.OnActivate = func() {
		if in.opts.DisableDialog || in.kind == content.KindSentinel {
			return
		}
		in.openDialog(e)
	}
	return e
}

func (in *Interaction) newPoster() *ui.Element {
	e := ui.NewElement(ui.RolePoster, in.spec.Class())
	e.X, e.Y = in.spec.X, in.spec.Y
	e.Width, e.Height = in.spec.Width, in.spec.Height
	if e.Width <= 0 || e.Height <= 0 {
		e.Width, e.Height = in.opts.PosterSize.Width, in.opts.PosterSize.Height
	}

	mount := ui.NewElement(ui.RoleContent, "")
	e.Append(mount)
	in.instantiate(mount)
	return e
}

// instantiate creates the sub-content inside mount and wires its resize
// announcements.
func (in *Interaction) instantiate(mount *ui.Element) {
	if in.deps.Runner == nil {
		return
	}
	if in.runnable != nil {
		// Re-opening the dialog replaces the previous instance.
		in.runnable.Close()
		in.runnable = nil
	}
	r, err := in.deps.Runner.NewRunnable(in.spec.Action, mount)
	if err != nil {
		in.log.Warn("content instantiation failed",
			"library", in.spec.Action.Library, "error", err)
		return
	}
	in.runnable = r
	r.OnResize(in.contentResized)
}

// openDialog presents the content in the host dialog, positioned relative to
// the triggering button except for full-cover kinds.
func (in *Interaction) openDialog(anchor *ui.Element) {
	if in.deps.Dialog == nil {
		return
	}
	mount := ui.NewElement(ui.RoleContent, in.spec.Class())
	in.instantiate(mount)
	in.deps.Dialog.Open(mount)
	in.dialogOpen = true
	in.lastDialogHeight = in.deps.Dialog.ContentHeight()

	switch {
	case in.kind == content.KindImage:
		in.fitImageDialog(anchor, mount)
	case in.kind.FullCoverDialog():
		// Dialog covers the whole video area; no anchor positioning.
	default:
		in.deps.Dialog.Position(anchor, nil)
	}

	// Let the content lay itself out once attached to the live surface.
	in.deps.Sched.NextTick(sched.Guard(in.token, func() {
		if in.runnable != nil {
			in.runnable.NotifyResize()
		}
	}))
}

// fitImageDialog sizes the dialog around the image. When natural dimensions
// are unknown the whole computation waits for the probe; the guard drops the
// answer if the interaction was dismissed meanwhile.
func (in *Interaction) fitImageDialog(anchor, mount *ui.Element) {
	file := in.spec.Action.File
	if file != nil && file.Width > 0 && file.Height > 0 {
		in.placeImageDialog(anchor, mount, file.Width, file.Height)
		return
	}
	if in.deps.Prober == nil || file == nil || file.Path == "" {
		in.deps.Dialog.Position(anchor, nil)
		return
	}
	token := in.token
	in.deps.Prober.Probe(file.Path, func(w, h float64, err error) {
		if token.Canceled() {
			return
		}
		if err != nil {
			in.log.Warn("image probe failed", "path", file.Path, "error", err)
			return
		}
		in.placeImageDialog(anchor, mount, w, h)
	})
}

func (in *Interaction) placeImageDialog(anchor, mount *ui.Element, naturalW, naturalH float64) {
	max := in.deps.Dialog.MaxSize(anchor)
	size := geometry.FitImage(naturalW, naturalH, max)
	size = geometry.AtFontSize(size, mount.FontSizePx)
	mount.Width, mount.Height = size.Width, size.Height
	in.deps.Dialog.Position(anchor, &size)
}

// contentResized follows summary content height changes while the dialog is
// open: past the dead-zone the dialog rescrolls after a settle delay.
func (in *Interaction) contentResized() {
	if in.kind != content.KindSummary || !in.dialogOpen || in.deps.Dialog == nil {
		return
	}
	h := in.deps.Dialog.ContentHeight()
	if math.Abs(h-in.lastDialogHeight) <= in.opts.RescrollDeadZone {
		return
	}
	in.lastDialogHeight = h
	in.deps.Sched.After(in.opts.RescrollDelay, sched.Guard(in.token, func() {
		in.deps.Dialog.Scroll(h, scrollDuration)
	}))
}

// destroyVisual releases the element, its runnable, and every deferred
// continuation tied to them. Idempotent.
func (in *Interaction) destroyVisual() {
	if in.element == nil {
		return
	}
	in.token.Cancel()
	in.token = nil
	if in.runnable != nil {
		in.runnable.Close()
		in.runnable = nil
	}
	in.dialogOpen = false
	in.lastDialogHeight = 0
	in.element = nil
}
