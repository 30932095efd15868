package types

import "github.com/chewxy/math32"

// A closed interval [Min, Max]. The empty interval has Min = +Inf and
// Max = -Inf so that it acts as the identity for UnionInterval.
type Interval struct {
	Min float32
	Max float32
}

// Create the empty interval.
func EmptyInterval() Interval {
	return Interval{Min: math32.Inf(1), Max: math32.Inf(-1)}
}

// Create the smallest interval that encloses both a and b.
func UnionInterval(a, b Interval) Interval {
	out := a
	if b.Min < out.Min {
		out.Min = b.Min
	}
	if b.Max > out.Max {
		out.Max = b.Max
	}
	return out
}

// Get interval length. Empty intervals have a negative (-Inf) size.
func (i Interval) Size() float32 {
	return i.Max - i.Min
}

// Check if x lies inside the closed interval.
func (i Interval) Contains(x float32) bool {
	return i.Min <= x && x <= i.Max
}

// Check if x lies strictly inside the interval.
func (i Interval) Surrounds(x float32) bool {
	return i.Min < x && x < i.Max
}

// Grow the interval by delta, split evenly between both ends.
func (i Interval) Expand(delta float32) Interval {
	pad := delta / 2
	return Interval{Min: i.Min - pad, Max: i.Max + pad}
}

// Grow the interval symmetrically until its size is at least minSize. Far
// from the origin the float32 spacing can swallow a plain Expand, so the
// bounds are then pushed outwards one representable value at a time.
func (i Interval) PadTo(minSize float32) Interval {
	if i.Size() >= minSize {
		return i
	}

	i = i.Expand(minSize)
	for i.Size() < minSize {
		i.Min = math32.Nextafter(i.Min, math32.Inf(-1))
		i.Max = math32.Nextafter(i.Max, math32.Inf(1))
	}
	return i
}

// align(4) size(8)
func (i Interval) Encode() []float32 {
	return []float32{i.Min, i.Max}
}
