// Package timeline builds the interaction set for a scenario and simulates
// playback over it: a toggle sweep across the video produces the show/hide
// event sequence a player would observe.
package timeline

import (
	"fmt"
	"sort"
	"time"

	"github.com/mkravtsov/vannot/internal/interaction"
	"github.com/mkravtsov/vannot/internal/scenario"
	"github.com/mkravtsov/vannot/internal/sched"
	"github.com/mkravtsov/vannot/internal/ui"
)

// Event is one visibility transition observed during a sweep.
type Event struct {
	Second float64
	Index  int
	Title  string
	Shown  bool
	Pause  bool
}

// Timeline holds the constructed interactions for one scenario.
type Timeline struct {
	scn   *scenario.Scenario
	items []*interaction.Interaction
	loop  *sched.Loop
}

// Build constructs an Interaction per spec, ordered by window start. The
// deps are shared across all interactions; when the scheduler is a
// *sched.Loop the sweep pumps it as simulated time passes.
func Build(scn *scenario.Scenario, deps interaction.Deps, opts interaction.Options) (*Timeline, error) {
	if err := scn.Validate(); err != nil {
		return nil, err
	}

	t := &Timeline{scn: scn}
	t.loop, _ = deps.Sched.(*sched.Loop)

	for i, spec := range scn.Interactions {
		in, err := interaction.New(spec, deps, opts)
		if err != nil {
			return nil, fmt.Errorf("interaction %d: %w", i, err)
		}
		t.items = append(t.items, in)
	}

	sort.SliceStable(t.items, func(i, j int) bool {
		return t.items[i].Spec().Duration.From < t.items[j].Spec().Duration.From
	})
	return t, nil
}

// Interactions returns the constructed controllers in timeline order.
func (t *Timeline) Interactions() []*interaction.Interaction {
	return t.items
}

// Duration returns the video duration in seconds.
func (t *Timeline) Duration() float64 {
	return t.scn.Video.Duration
}

// Sweep toggles every interaction at fixed steps across the video and
// records each visibility transition. With a loop scheduler, deferred work
// (entry flags, probe completions, rescrolls) runs as simulated time passes.
func (t *Timeline) Sweep(step float64) []Event {
	if step <= 0 {
		step = 1
	}

	var events []Event
	visible := make([]bool, len(t.items))

	for second := 0.0; second <= t.scn.Video.Duration; second += step {
		for i, in := range t.items {
			elem := in.Toggle(second)
			now := elem != nil
			if now != visible[i] {
				events = append(events, Event{
					Second: second,
					Index:  i,
					Title:  in.Title(),
					Shown:  now,
					Pause:  now && in.Pause(),
				})
				visible[i] = now
			}
		}
		if t.loop != nil {
			t.loop.Advance(secondsToDuration(step))
		}
	}

	// Past the end of the video everything hides.
	for i, in := range t.items {
		in.Remove(false)
		if visible[i] {
			events = append(events, Event{
				Second: t.scn.Video.Duration,
				Index:  i,
				Title:  in.Title(),
				Shown:  false,
			})
			visible[i] = false
		}
	}
	if t.loop != nil {
		t.loop.Flush()
	}
	return events
}

func secondsToDuration(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}

// Dots lays out a timeline marker per non-sentinel interaction on container.
func (t *Timeline) Dots(container *ui.Element) {
	for _, in := range t.items {
		in.AddDot(container, t.scn.Video.Duration)
	}
}
