// Package series holds the plotted time series and its plot domain.
package series

import (
	"errors"
	"math"
	"math/rand"
	"time"
)

// rangePad is added past the last timestamp so the final point is not drawn on the canvas edge.
const rangePad = 30 * time.Millisecond

// ErrEmpty is returned when a series is built from no points.
var ErrEmpty = errors.New("series: at least one point is required")

// Point is one (timestamp, value) sample.
type Point struct {
	Date  time.Time
	Value float64
}

// Range is the plot domain of a series.
type Range struct {
	MinDate  time.Time
	MaxDate  time.Time
	MinValue float64
	MaxValue float64
}

// Span returns the width of the time domain.
func (r Range) Span() time.Duration { return r.MaxDate.Sub(r.MinDate) }

// Series is a non-empty ordered sequence of points. Ascending order is expected but not enforced.
type Series struct {
	points []Point
}

// New copies points into a Series.
func New(points []Point) (*Series, error) {
	if len(points) == 0 {
		return nil, ErrEmpty
	}
	cp := make([]Point, len(points))
	copy(cp, points)
	return &Series{points: cp}, nil
}

func (s *Series) Len() int       { return len(s.points) }
func (s *Series) At(i int) Point { return s.points[i] }
func (s *Series) First() Point   { return s.points[0] }
func (s *Series) Last() Point    { return s.points[len(s.points)-1] }

// Points returns a copy of the underlying samples.
func (s *Series) Points() []Point {
	cp := make([]Point, len(s.points))
	copy(cp, s.points)
	return cp
}

// Ascending reports whether timestamps never go backwards.
func (s *Series) Ascending() bool {
	for i := 1; i < len(s.points); i++ {
		if s.points[i].Date.Before(s.points[i-1].Date) {
			return false
		}
	}
	return true
}

// Range spans first to last timestamp (plus a small pad) and min to max value.
func (s *Series) Range() Range {
	r := Range{
		MinDate:  s.First().Date,
		MaxDate:  s.Last().Date.Add(rangePad),
		MinValue: math.Inf(1),
		MaxValue: math.Inf(-1),
	}
	for _, p := range s.points {
		r.MinValue = math.Min(r.MinValue, p.Value)
		r.MaxValue = math.Max(r.MaxValue, p.Value)
	}
	return r
}

// Generate builds n synthetic points spaced step apart with values in [0,100).
func Generate(n int, start time.Time, step time.Duration, rng *rand.Rand) (*Series, error) {
	if n <= 0 {
		return nil, ErrEmpty
	}
	points := make([]Point, n)
	for i := range points {
		points[i] = Point{
			Date:  start.Add(time.Duration(i) * step),
			Value: rng.Float64() * 100,
		}
	}
	return &Series{points: points}, nil
}
