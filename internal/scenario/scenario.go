// Package scenario defines the annotation scenario document: the video's
// metadata plus the interaction specs laid out on its timeline.
package scenario

import (
	"fmt"

	"github.com/mkravtsov/vannot/internal/interaction"
)

// CurrentVersion is written to new scenario files.
const CurrentVersion = "1.0"

// Video describes the annotated video.
type Video struct {
	Title    string  `yaml:"title,omitempty"`
	Duration float64 `yaml:"duration"` // seconds
}

// Scenario is a complete annotation document.
type Scenario struct {
	Version      string              `yaml:"version"`
	Video        Video               `yaml:"video"`
	Interactions []*interaction.Spec `yaml:"interactions"`
}

// Validate checks the document against the constraints the engine assumes:
// a positive video duration, non-inverted visibility windows inside the
// video, and percent coordinates in range.
func (s *Scenario) Validate() error {
	if s.Video.Duration <= 0 {
		return fmt.Errorf("video duration must be positive, got %.2f", s.Video.Duration)
	}
	for i, spec := range s.Interactions {
		if spec == nil {
			return fmt.Errorf("interaction %d: empty entry", i)
		}
		if err := spec.Duration.Validate(); err != nil {
			return fmt.Errorf("interaction %d: %w", i, err)
		}
		if spec.Duration.From < 0 || spec.Duration.To > s.Video.Duration {
			return fmt.Errorf("interaction %d: window [%.2f, %.2f] outside video of %.2fs",
				i, spec.Duration.From, spec.Duration.To, s.Video.Duration)
		}
		if spec.X < 0 || spec.X > 100 || spec.Y < 0 || spec.Y > 100 {
			return fmt.Errorf("interaction %d: position (%.2f%%, %.2f%%) out of range",
				i, spec.X, spec.Y)
		}
		if spec.Action.Library == "" {
			return fmt.Errorf("interaction %d: missing content library", i)
		}
	}
	return nil
}
