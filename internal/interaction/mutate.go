package interaction

import (
	"fmt"

	"github.com/mkravtsov/vannot/internal/content"
	"github.com/mkravtsov/vannot/internal/geometry"
	"github.com/mkravtsov/vannot/internal/host"
	"github.com/mkravtsov/vannot/internal/ui"
)

// SetPosition updates the stored percent coordinates. Pure data mutation: the
// next created element uses the new position.
func (in *Interaction) SetPosition(x, y float64) {
	in.spec.X, in.spec.Y = x, y
}

// SetSize updates the stored em size. Drag questions cannot resize in place,
// so their visual element is destroyed and recreated for a clean re-layout.
// The active sub-content gets a resize notification either way.
func (in *Interaction) SetSize(width, height float64) {
	in.spec.Width, in.spec.Height = width, height
	if in.kind == content.KindDragQuestion && in.element != nil {
		in.destroyVisual()
		in.createVisual()
	}
	if in.runnable != nil {
		in.runnable.NotifyResize()
	}
}

// Remove destroys the visual element if one exists. With updateSize set and
// drag-question content, stored size and the content's own pixel size are
// reconciled first: button form pulls the content's size into the spec,
// poster form pushes the spec's size into the content. No-op when hidden.
func (in *Interaction) Remove(updateSize bool) {
	if updateSize && in.kind == content.KindDragQuestion {
		in.syncDragSize()
	}
	in.destroyVisual()
}

func (in *Interaction) syncDragSize() {
	if in.runnable == nil {
		return
	}
	sizer, ok := in.runnable.(host.Sizer)
	if !ok {
		return
	}
	if in.IsButton() {
		w, h := sizer.SizePx()
		if w > 0 && h > 0 {
			in.spec.Width = geometry.PxToEm(w)
			in.spec.Height = geometry.PxToEm(h)
		}
		return
	}
	sizer.SetSizePx(
		geometry.RoundPx(geometry.EmToPx(in.spec.Width)),
		geometry.RoundPx(geometry.EmToPx(in.spec.Height)),
	)
}

// PositionLabel re-evaluates which side of the button the label renders on.
// The label flips left exactly when its right edge would pass the container
// edge; equality keeps it on the right. No-op without a labelled button.
func (in *Interaction) PositionLabel(containerWidth float64) {
	if in.element == nil || in.element.Role != ui.RoleButton || in.element.Label == nil {
		return
	}
	label := in.element.Label
	label.FlipLeft = false

	left := in.spec.X / 100 * containerWidth
	if left+label.OffsetLeft+label.Width > containerWidth {
		label.FlipLeft = true
	}
}

// AddDot appends a timeline tick marker to container, positioned by the
// window's start second. Sentinel interactions leave no marker.
func (in *Interaction) AddDot(container *ui.Element, videoDuration float64) {
	if in.kind == content.KindSentinel || container == nil || videoDuration <= 0 {
		return
	}
	dot := ui.NewElement(ui.RoleDot, "iv-dot")
	dot.X = in.spec.Duration.From / videoDuration * 100
	container.Append(dot)
}

// Copyrights instantiates the content in a detached mount and asks it for
// copyright metadata. Content without the capability yields nil. A returned
// entry is labelled with the interaction's title and time range.
func (in *Interaction) Copyrights() *content.Copyright {
	if in.deps.Runner == nil {
		return nil
	}
	mount := ui.NewElement(ui.RoleContent, "")
	r, err := in.deps.Runner.NewRunnable(in.spec.Action, mount)
	if err != nil {
		return nil
	}
	defer r.Close()

	holder, ok := r.(host.CopyrightHolder)
	if !ok {
		return nil
	}
	c := holder.Copyrights()
	if c == nil {
		return nil
	}
	c.Label = fmt.Sprintf("%s %s - %s",
		in.Title(),
		content.HumanizeTime(in.spec.Duration.From),
		content.HumanizeTime(in.spec.Duration.To),
	)
	return c
}
