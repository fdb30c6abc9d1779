package curve

import (
	"fmt"
	"time"

	"github.com/viant/ripley/ripley"
)

// Default growth timing of the reference scene.
const (
	DefaultDuration = 20 * time.Second
	DefaultFPS      = 30
	// MaxFPS bounds the frame rate so a frame step stays a whole millisecond.
	MaxFPS = 1000
)

// Timeline maps elapsed time to a radius in a domain.
type Timeline struct {
	Duration time.Duration
	FPS      int
	Easing   Easing
}

// DefaultTimeline grows over 20 seconds at 30 frames per second with
// smootherstep easing.
func DefaultTimeline() Timeline {
	return Timeline{Duration: DefaultDuration, FPS: DefaultFPS, Easing: Smootherstep}
}

// Frames returns the number of frames, counting both endpoints.
func (t Timeline) Frames() int {
	if t.Duration <= 0 || t.FPS <= 0 {
		return 1
	}
	return int(t.Duration.Seconds()*float64(t.FPS)) + 1
}

// RadiusAt returns the radius reached after elapsed.
func (t Timeline) RadiusAt(domain ripley.Domain, elapsed time.Duration) float64 {
	easing := t.Easing
	if easing == nil {
		easing = Linear
	}
	progress := 1.0
	if t.Duration > 0 {
		progress = float64(elapsed) / float64(t.Duration)
	}
	if progress >= 1 {
		return domain.Max
	}
	return domain.Min + easing(progress)*(domain.Max-domain.Min)
}

// Radii returns the radius of every frame.
func (t Timeline) Radii(domain ripley.Domain) ([]float64, error) {
	if err := domain.Validate(); err != nil {
		return nil, err
	}
	if t.FPS <= 0 || t.FPS > MaxFPS {
		return nil, fmt.Errorf("curve: fps must be in [1, %d], got %d", MaxFPS, t.FPS)
	}
	frames := t.Frames()
	radii := make([]float64, frames)
	step := time.Second / time.Duration(t.FPS)
	for i := range radii {
		radii[i] = t.RadiusAt(domain, time.Duration(i)*step)
	}
	radii[frames-1] = domain.Max
	return radii, nil
}
