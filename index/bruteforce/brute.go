package bruteforce

import (
	"encoding/binary"
	"errors"
	"math"

	"github.com/viant/ripley/point"
)

// Index is a brute-force spatial index.
type Index struct {
	points []point.Point
}

// Build loads points.
func (i *Index) Build(points []point.Point) error {
	if len(points) == 0 {
		i.points = nil
		return nil
	}
	i.points = append([]point.Point(nil), points...)
	return nil
}

// CountWithin scans every point.
func (i *Index) CountWithin(center point.Point, r float64) int {
	return point.CountWithin(i.points, center, r)
}

// Len returns the number of points.
func (i *Index) Len() int { return len(i.points) }

// Points returns a copy of the indexed points in insertion order.
func (i *Index) Points() []point.Point {
	return append([]point.Point(nil), i.points...)
}

// MarshalBinary stores: n(uint32), then x(float64), y(float64) per point.
func (i *Index) MarshalBinary() ([]byte, error) {
	return encode(i.points), nil
}

// UnmarshalBinary restores the index from bytes.
func (i *Index) UnmarshalBinary(data []byte) error {
	points, err := decode(data)
	if err != nil {
		return err
	}
	return i.Build(points)
}

func encode(points []point.Point) []byte {
	out := make([]byte, 4, 4+16*len(points))
	binary.LittleEndian.PutUint32(out, uint32(len(points)))
	putF64 := func(v float64) {
		out = binary.LittleEndian.AppendUint64(out, math.Float64bits(v))
	}
	for _, p := range points {
		putF64(p.X)
		putF64(p.Y)
	}
	return out
}

func decode(data []byte) ([]point.Point, error) {
	if len(data) < 4 {
		return nil, errors.New("bruteforce: invalid data")
	}
	off := 0
	getU32 := func() uint32 { v := binary.LittleEndian.Uint32(data[off : off+4]); off += 4; return v }
	getF64 := func() float64 {
		v := math.Float64frombits(binary.LittleEndian.Uint64(data[off : off+8]))
		off += 8
		return v
	}
	n := int(getU32())
	if len(data)-off < n*16 {
		return nil, errors.New("bruteforce: truncated")
	}
	if len(data)-off > n*16 {
		return nil, errors.New("bruteforce: trailing data")
	}
	points := make([]point.Point, n)
	for idx := range points {
		points[idx].X = getF64()
		points[idx].Y = getF64()
	}
	return points, nil
}
