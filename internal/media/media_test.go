package media

import (
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/mkravtsov/vannot/internal/sched"
)

func writeTestPNG(t *testing.T, width, height int) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "img.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	defer f.Close()
	if err := png.Encode(f, image.NewRGBA(image.Rect(0, 0, width, height))); err != nil {
		t.Fatalf("encode: %v", err)
	}
	return path
}

func TestDimensions(t *testing.T) {
	path := writeTestPNG(t, 320, 160)

	w, h, err := Dimensions(path)
	if err != nil {
		t.Fatalf("Dimensions failed: %v", err)
	}
	if w != 320 || h != 160 {
		t.Errorf("got %vx%v, want 320x160", w, h)
	}
}

func TestDimensionsErrors(t *testing.T) {
	if _, _, err := Dimensions("does-not-exist.png"); err == nil {
		t.Error("expected error for missing file")
	}

	garbage := filepath.Join(t.TempDir(), "garbage.png")
	os.WriteFile(garbage, []byte("not an image"), 0644)
	if _, _, err := Dimensions(garbage); err == nil {
		t.Error("expected error for undecodable file")
	}
}

func TestLoopProberDefersDelivery(t *testing.T) {
	path := writeTestPNG(t, 64, 48)
	loop := sched.NewLoop()
	prober := &LoopProber{Sched: loop}

	var gotW, gotH float64
	delivered := false
	prober.Probe(path, func(w, h float64, err error) {
		if err != nil {
			t.Errorf("probe error: %v", err)
		}
		gotW, gotH = w, h
		delivered = true
	})

	if delivered {
		t.Fatal("probe answered synchronously")
	}
	loop.Flush()
	if !delivered {
		t.Fatal("probe never answered")
	}
	if gotW != 64 || gotH != 48 {
		t.Errorf("got %vx%v, want 64x48", gotW, gotH)
	}
}
