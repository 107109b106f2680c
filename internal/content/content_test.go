package content

import "testing"

func TestKindOf(t *testing.T) {
	cases := []struct {
		library string
		want    Kind
	}{
		{"IV.Image", KindImage},
		{"IV.Image 1.2", KindImage},
		{"IV.Summary", KindSummary},
		{"IV.Blanks 1.0", KindBlanks},
		{"IV.DragQuestion", KindDragQuestion},
		{"IV.Nil", KindSentinel},
		{"IV.Text", KindGeneric},
		{"", KindGeneric},
	}

	for _, c := range cases {
		if got := KindOf(c.library); got != c.want {
			t.Errorf("KindOf(%q) = %s, want %s", c.library, got, c.want)
		}
	}
}

func TestFullCoverDialog(t *testing.T) {
	if !KindSummary.FullCoverDialog() {
		t.Error("summary should open a full-cover dialog")
	}
	if !KindBlanks.FullCoverDialog() {
		t.Error("blanks should open a full-cover dialog")
	}
	if KindImage.FullCoverDialog() {
		t.Error("image should position relative to its button")
	}
}

func TestClassName(t *testing.T) {
	cases := []struct {
		library string
		want    string
	}{
		{"IV.DragQuestion 1.1", "iv-dragquestion-interaction"},
		{"IV.Image", "iv-image-interaction"},
		{"IV.Nil", "iv-nil-interaction"},
	}

	for _, c := range cases {
		a := Action{Library: c.library}
		if got := a.ClassName(); got != c.want {
			t.Errorf("ClassName(%q) = %q, want %q", c.library, got, c.want)
		}
	}
}

func TestHumanizeTime(t *testing.T) {
	cases := []struct {
		seconds float64
		want    string
	}{
		{0, "0:00"},
		{5, "0:05"},
		{65, "1:05"},
		{3725, "1:02:05"},
		{59.9, "0:59"},
	}

	for _, c := range cases {
		if got := HumanizeTime(c.seconds); got != c.want {
			t.Errorf("HumanizeTime(%v) = %q, want %q", c.seconds, got, c.want)
		}
	}
}
