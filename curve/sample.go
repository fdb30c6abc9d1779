package curve

// Evaluator is the pull contract a curve is sampled from.
type Evaluator interface {
	K(r float64) float64
	Ref(r float64) float64
}

// Sample is one plotted point of both curves.
type Sample struct {
	R   float64 `json:"r"`
	K   float64 `json:"k"`
	Ref float64 `json:"ref"`
}

// SampleCurve evaluates K and Ref at each radius, in order.
func SampleCurve(e Evaluator, radii []float64) []Sample {
	out := make([]Sample, len(radii))
	for i, r := range radii {
		out[i] = Sample{R: r, K: e.K(r), Ref: e.Ref(r)}
	}
	return out
}

// Reveal returns the prefix of samples with R <= upTo, the portion of the
// K curve a driver draws once the sweep has reached upTo.
func Reveal(samples []Sample, upTo float64) []Sample {
	n := 0
	for n < len(samples) && samples[n].R <= upTo {
		n++
	}
	return samples[:n]
}
