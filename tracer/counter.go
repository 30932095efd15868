package tracer

import "github.com/achilleasa/prism/asset/layout"

const (
	// Counter values are uploaded as 32-bit floats; keep them within the
	// range where every integer is exactly representable.
	MaxCounterValue int64 = layout.MaxExactInteger
	MinCounterValue int64 = -layout.MaxExactInteger
)

type CounterOptions struct {
	// Initial value; passed through the overflow handler.
	Start int64

	// Inclusive bounds. Both are clamped to [MinCounterValue, MaxCounterValue].
	Min int64
	Max int64

	// When set, values outside [Min, Max] wrap around to the opposite
	// bound instead of being clamped.
	Overflow bool
}

// Get options for a counter spanning the full exact integer range.
func DefaultCounterOptions() CounterOptions {
	return CounterOptions{
		Min: MinCounterValue,
		Max: MaxCounterValue,
	}
}

// A Counter is a bounded integer accumulator. Depending on its options it
// either clamps or wraps values that leave its range. A Counter is not
// safe for concurrent use.
type Counter struct {
	count    int64
	previous int64
	start    int64
	min      int64
	max      int64
	overflow bool
}

// Create a new counter.
func NewCounter(opts CounterOptions) *Counter {
	c := &Counter{
		overflow: opts.Overflow,
		min:      clamp(opts.Min, MinCounterValue, MaxCounterValue),
		max:      clamp(opts.Max, MinCounterValue, MaxCounterValue),
	}
	if c.min > c.max {
		c.min, c.max = c.max, c.min
	}

	c.start = c.handleOverflow(opts.Start)
	c.count = c.start
	c.previous = c.start
	return c
}

// Get the current value.
func (c *Counter) Count() int64 {
	return c.count
}

// Get the value before the last mutation.
func (c *Counter) Previous() int64 {
	return c.previous
}

// Get the number of distinct values the counter can hold.
func (c *Counter) Range() int64 {
	r := c.max - c.min + 1
	if r < 0 {
		return -r
	}
	return r
}

// Get the distance covered by the last mutation. For wrapping counters
// the shorter of the two distances around the wrap point is returned.
func (c *Counter) Delta() int64 {
	diff := c.count - c.previous
	if diff < 0 {
		diff = -diff
	}
	if r := c.Range(); 2*diff > r {
		return r - diff
	}
	return diff
}

// Set the counter value.
func (c *Counter) Set(value int64) {
	c.previous = c.count
	c.count = c.handleOverflow(value)
}

// Increment the counter by delta.
func (c *Counter) Up(delta int64) {
	c.previous = c.count
	c.count = c.handleOverflow(c.count + delta)
}

// Decrement the counter by delta.
func (c *Counter) Down(delta int64) {
	c.previous = c.count
	c.count = c.handleOverflow(c.count - delta)
}

// Restore the counter to its start value.
func (c *Counter) Reset() {
	c.count = c.start
	c.previous = c.start
}

// Encode counter value.
//
// align(4) size(4)
func (c *Counter) Encode() []float32 {
	return []float32{float32(c.count)}
}

// Bring value back into [min, max]. Wrapping counters re-enter the range
// from the opposite bound keeping the distance travelled past the bound.
func (c *Counter) handleOverflow(value int64) int64 {
	if c.overflow {
		r := c.Range()
		switch {
		case value > c.max:
			return c.min + (value-c.min)%r
		case value < c.min:
			return c.max - (c.min-value-1)%r
		}
	}

	return clamp(value, c.min, c.max)
}

func clamp(v, min, max int64) int64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
