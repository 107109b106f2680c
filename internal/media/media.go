// Package media resolves natural dimensions of local image files for
// image-content interactions whose metadata does not carry them.
package media

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/mkravtsov/vannot/internal/sched"
)

// Dimensions reads the natural pixel size of an image file without decoding
// the full bitmap.
func Dimensions(path string) (width, height float64, err error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, 0, err
	}
	defer f.Close()

	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return 0, 0, fmt.Errorf("decode %s: %w", path, err)
	}
	return float64(cfg.Width), float64(cfg.Height), nil
}

// LoopProber answers probes on the task loop's next tick, modelling an image
// that finishes loading after the current call stack unwinds. The caller's
// guard decides whether the answer still matters by then.
type LoopProber struct {
	Sched sched.Scheduler
}

// Probe schedules the dimension lookup and delivers the result via fn.
func (p *LoopProber) Probe(path string, fn func(width, height float64, err error)) {
	p.Sched.NextTick(func() {
		w, h, err := Dimensions(path)
		fn(w, h, err)
	})
}
