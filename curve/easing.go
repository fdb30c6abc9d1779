package curve

import (
	"fmt"
	"strings"
)

// Easing maps normalized time t in [0, 1] to progress in [0, 1].
type Easing func(t float64) float64

// Linear is the identity easing.
func Linear(t float64) float64 { return clamp01(t) }

// Smootherstep is 6t^5 - 15t^4 + 10t^3.
func Smootherstep(t float64) float64 {
	t = clamp01(t)
	return t * t * t * (t*(t*6-15) + 10)
}

// Smoothstep is 3t^2 - 2t^3.
func Smoothstep(t float64) float64 {
	t = clamp01(t)
	return t * t * (3 - 2*t)
}

// ParseEasing resolves an easing by name.
func ParseEasing(name string) (Easing, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "linear":
		return Linear, nil
	case "smoothstep":
		return Smoothstep, nil
	case "smootherstep":
		return Smootherstep, nil
	}
	return nil, fmt.Errorf("curve: unknown easing %q", name)
}

func clamp01(t float64) float64 {
	switch {
	case t <= 0 || t != t:
		return 0
	case t >= 1:
		return 1
	}
	return t
}
