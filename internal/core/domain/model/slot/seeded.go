package slot

import (
	"math"
	"time"
)

// sineSource is the deterministic generator used for demo occupancy:
// s = sin(s) * 10000, yielding the fractional part of s. It is not a
// statistical PRNG and must not be used for anything but display numbers.
type sineSource struct {
	s float64
}

func newSineSource(seed float64) *sineSource {
	return &sineSource{s: seed}
}

// next returns a value in [0, 1).
func (r *sineSource) next() float64 {
	r.s = math.Sin(r.s) * 10000
	return r.s - math.Floor(r.s)
}

// occupancy returns the boxes already booked for day, in [0, capacity].
// The seed is the Unix millisecond timestamp of the day's local midnight.
func occupancy(day time.Time, capacity int) int {
	value := newSineSource(float64(day.UnixMilli())).next()
	used := int(math.Floor(value * float64(capacity+1)))
	return min(max(used, 0), capacity)
}
