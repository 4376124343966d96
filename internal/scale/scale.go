// scale.go

// Package scale maps data values onto pixel coordinates.
package scale

import (
	"math"
	"time"
)

// Time maps a date range onto a pixel range.
type Time struct {
	Domain [2]time.Time
	Range  [2]float64
}

// NewTime returns a time scale over [from, to].
func NewTime(from, to time.Time, r0, r1 float64) *Time {
	return &Time{Domain: [2]time.Time{from, to}, Range: [2]float64{r0, r1}}
}

// Map returns the pixel coordinate of t.
func (s *Time) Map(t time.Time) float64 {
	d0 := float64(s.Domain[0].UnixMilli())
	d1 := float64(s.Domain[1].UnixMilli())
	return interpolate(normalize(d0, d1, float64(t.UnixMilli())), s.Range)
}

// Linear maps a numeric range onto a pixel range.
type Linear struct {
	Domain [2]float64
	Range  [2]float64
}

// NewLinear returns a linear scale from [d0, d1] onto [r0, r1].
func NewLinear(d0, d1, r0, r1 float64) *Linear {
	return &Linear{Domain: [2]float64{d0, d1}, Range: [2]float64{r0, r1}}
}

// Map returns the pixel coordinate of v. A zero-width domain maps every
// value to the middle of the range.
func (s *Linear) Map(v float64) float64 {
	return interpolate(normalize(s.Domain[0], s.Domain[1], v), s.Range)
}

// Ticks returns about count round values inside the domain.
func (s *Linear) Ticks(count int) []float64 {
	return Ticks(s.Domain[0], s.Domain[1], count)
}

// TickFormat returns the label formatter matching Ticks(count).
func (s *Linear) TickFormat(count int) func(float64) string {
	return TickFormat(s.Domain[0], s.Domain[1], count)
}

func normalize(a, b, x float64) float64 {
	d := b - a
	if d == 0 || math.IsNaN(d) {
		if math.IsNaN(d) {
			return math.NaN()
		}
		return 0.5
	}
	return (x - a) / d
}

func interpolate(t float64, r [2]float64) float64 {
	return r[0]*(1-t) + r[1]*t
}
