package timeline

import (
	"testing"

	"github.com/mkravtsov/vannot/internal/content"
	"github.com/mkravtsov/vannot/internal/interaction"
	"github.com/mkravtsov/vannot/internal/scenario"
	"github.com/mkravtsov/vannot/internal/sched"
	"github.com/mkravtsov/vannot/internal/ui"
)

func testScenario() *scenario.Scenario {
	return &scenario.Scenario{
		Version: scenario.CurrentVersion,
		Video:   scenario.Video{Duration: 60},
		Interactions: []*interaction.Spec{
			{
				Title:    "quiz",
				Action:   content.Action{Library: "IV.Blanks"},
				Duration: interaction.Window{From: 30, To: 40},
				Pause:    true,
			},
			{
				Title:    "intro",
				Action:   content.Action{Library: "IV.Text"},
				Duration: interaction.Window{From: 5, To: 10},
			},
			{
				Title:    "marker",
				Action:   content.Action{Library: "IV.Nil"},
				Duration: interaction.Window{From: 50, To: 50},
			},
		},
	}
}

func build(t *testing.T, scn *scenario.Scenario) *Timeline {
	t.Helper()
	tl, err := Build(scn, interaction.Deps{Sched: sched.NewLoop()}, interaction.Options{})
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	return tl
}

func TestBuildOrdersByStart(t *testing.T) {
	tl := build(t, testScenario())

	items := tl.Interactions()
	if len(items) != 3 {
		t.Fatalf("%d interactions, want 3", len(items))
	}
	starts := []float64{5, 30, 50}
	for i, in := range items {
		if in.Spec().Duration.From != starts[i] {
			t.Errorf("item %d starts at %v, want %v", i, in.Spec().Duration.From, starts[i])
		}
	}
}

func TestBuildRejectsInvalidScenario(t *testing.T) {
	scn := testScenario()
	scn.Interactions[0].Duration = interaction.Window{From: 40, To: 30}
	if _, err := Build(scn, interaction.Deps{Sched: sched.NewLoop()}, interaction.Options{}); err == nil {
		t.Fatal("expected error for invalid scenario")
	}
}

func TestSweepEvents(t *testing.T) {
	tl := build(t, testScenario())

	events := tl.Sweep(1)

	// intro: show@5 hide@11; quiz: show@30 hide@41; marker: show@50 hide@51.
	want := []struct {
		second float64
		title  string
		shown  bool
		pause  bool
	}{
		{5, "intro", true, false},
		{11, "intro", false, false},
		{30, "quiz", true, true},
		{41, "quiz", false, false},
		{50, "marker", true, false},
		{51, "marker", false, false},
	}

	if len(events) != len(want) {
		t.Fatalf("%d events, want %d: %+v", len(events), len(want), events)
	}
	for i, w := range want {
		ev := events[i]
		if ev.Second != w.second || ev.Title != w.title || ev.Shown != w.shown || ev.Pause != w.pause {
			t.Errorf("event %d = %+v, want %+v", i, ev, w)
		}
	}

	// Sweep leaves nothing visible.
	for _, in := range tl.Interactions() {
		if in.Visible() {
			t.Errorf("%q still visible after sweep", in.Title())
		}
	}
}

func TestSweepEndOfVideoCleanup(t *testing.T) {
	scn := testScenario()
	// A window that runs to the last second stays visible through the sweep
	// and must be hidden by the cleanup pass.
	scn.Interactions = append(scn.Interactions, &interaction.Spec{
		Title:    "outro",
		Action:   content.Action{Library: "IV.Text"},
		Duration: interaction.Window{From: 55, To: 60},
	})

	tl := build(t, scn)
	events := tl.Sweep(1)

	last := events[len(events)-1]
	if last.Title != "outro" || last.Shown || last.Second != 60 {
		t.Errorf("last event = %+v, want outro hidden at 60", last)
	}
}

func TestDots(t *testing.T) {
	tl := build(t, testScenario())
	track := ui.NewElement(ui.RoleContent, "iv-timeline")

	tl.Dots(track)

	// The sentinel marker leaves no dot.
	if len(track.Children) != 2 {
		t.Fatalf("%d dots, want 2", len(track.Children))
	}
	// Items are in start order: intro at 5/60, quiz at 30/60.
	if x := track.Children[0].X; x < 8.3 || x > 8.4 {
		t.Errorf("first dot at %v%%, want ~8.33%%", x)
	}
	if x := track.Children[1].X; x != 50 {
		t.Errorf("second dot at %v%%, want 50%%", x)
	}
}
