package nuclide

// Epsilon is the practical minimum mass resolution in Da. Intervals
// narrower than this carry no ranging information.
const Epsilon = 1.0 / 2000.0

// Interval is an inclusive [Low, High] mass-to-charge window in Da.
type Interval struct {
	Low  float64
	High float64
}

// Significant reports whether the interval is a usable ranging window:
// both bounds non-negative and at least Epsilon apart. NaN bounds are
// never significant.
func (iv Interval) Significant() bool {
	if !(iv.Low >= 0) || !(iv.High >= 0) {
		return false
	}
	return iv.High-iv.Low >= Epsilon
}

// Contains reports whether x lies inside the inclusive interval.
func (iv Interval) Contains(x float64) bool {
	return iv.Low <= x && x <= iv.High
}

// Overlaps reports whether two intervals overlap. Bounds closer than
// Epsilon count as touching, hence overlapping: adjacent ranging windows
// [10.0, 12.0] and [12.0, 13.3] describe one contiguous region.
func (iv Interval) Overlaps(other Interval) bool {
	if other.Low-iv.High > Epsilon {
		return false
	}
	if iv.Low-other.High > Epsilon {
		return false
	}
	return true
}
