package tracer

import "time"

// A FrameClock derives the per-frame seed and accumulation counters from the
// frame scheduler's timestamps.
//
// The seed tracks the timestamp in milliseconds and wraps around inside the
// exact float32 integer range; the wrap-aware Delta of the seed counter is
// the elapsed frame time. The frame counter counts frames accumulated since
// the last reset and saturates at its maximum.
type FrameClock struct {
	seed  *Counter
	frame *Counter
	ticks int
}

// Create a frame clock whose accumulation counter saturates at maxFrames.
// A non-positive maxFrames selects MaxCounterValue.
func NewFrameClock(maxFrames int64) *FrameClock {
	if maxFrames <= 0 {
		maxFrames = MaxCounterValue
	}

	return &FrameClock{
		seed: NewCounter(CounterOptions{
			Min:      0,
			Max:      MaxCounterValue,
			Overflow: true,
		}),
		frame: NewCounter(CounterOptions{
			Min: 0,
			Max: maxFrames,
		}),
	}
}

// Advance the clock to timestamp ts and return the time elapsed since the
// previous tick. The first tick reports zero elapsed time.
func (fc *FrameClock) Tick(ts time.Duration) time.Duration {
	fc.seed.Set(ts.Milliseconds())
	fc.frame.Up(1)
	fc.ticks++

	if fc.ticks == 1 {
		return 0
	}
	return time.Duration(fc.seed.Delta()) * time.Millisecond
}

// Restart frame accumulation. The seed keeps running.
func (fc *FrameClock) ResetAccumulation() {
	fc.frame.Reset()
}

// Get the seed counter.
func (fc *FrameClock) Seed() *Counter {
	return fc.seed
}

// Get the accumulated frame counter.
func (fc *FrameClock) Frames() *Counter {
	return fc.frame
}
