package ripley

// Axes are the plot extents derived from an estimator: x spans the radius
// domain in tenths of its upper bound, y spans [0, K(max)] in tenths.
type Axes struct {
	XMin  float64 `json:"xMin"`
	XMax  float64 `json:"xMax"`
	XStep float64 `json:"xStep"`
	YMin  float64 `json:"yMin"`
	YMax  float64 `json:"yMax"`
	YStep float64 `json:"yStep"`
}

// Axes computes the plot extents for the estimator's domain.
func (e *Estimator) Axes() Axes {
	yMax := e.K(e.domain.Max)
	return Axes{
		XMin:  e.domain.Min,
		XMax:  e.domain.Max,
		XStep: e.domain.Max / 10,
		YMin:  0,
		YMax:  yMax,
		YStep: yMax / 10,
	}
}
