package curve

import (
	"fmt"

	"github.com/viant/ripley/ripley"
	"gonum.org/v1/gonum/floats"
)

// Radii returns steps radii from domain.Min to domain.Max, both included.
// With a nil or linear easing the radii are evenly spaced; otherwise step i
// maps to Min + easing(i/(steps-1)) * (Max-Min).
func Radii(domain ripley.Domain, steps int, easing Easing) ([]float64, error) {
	if err := domain.Validate(); err != nil {
		return nil, err
	}
	if steps < 2 {
		return nil, fmt.Errorf("curve: need at least 2 steps, got %d", steps)
	}
	radii := make([]float64, steps)
	if easing == nil {
		floats.Span(radii, domain.Min, domain.Max)
	} else {
		ts := floats.Span(make([]float64, steps), 0, 1)
		span := domain.Max - domain.Min
		for i, t := range ts {
			radii[i] = domain.Min + easing(t)*span
		}
	}
	radii[0], radii[steps-1] = domain.Min, domain.Max
	return radii, nil
}
