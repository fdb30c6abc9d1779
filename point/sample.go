package point

import (
	"fmt"
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"
)

// NewSource returns a deterministic random source for seed.
func NewSource(seed uint64) rand.Source {
	return rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)
}

// Sample draws n points independently and uniformly from region. A nil src
// falls back to the global generator.
func Sample(n int, region Region, src rand.Source) (PointSet, error) {
	if n < 0 {
		return PointSet{}, fmt.Errorf("point: negative sample size %d", n)
	}
	if err := region.Validate(); err != nil {
		return PointSet{}, err
	}
	lo, hi := region.Min(), region.Max()
	xs := distuv.Uniform{Min: lo.X, Max: hi.X, Src: src}
	ys := distuv.Uniform{Min: lo.Y, Max: hi.Y, Src: src}
	points := make([]Point, n)
	for i := range points {
		points[i] = Point{X: xs.Rand(), Y: ys.Rand()}
	}
	return PointSet{points: points}, nil
}
