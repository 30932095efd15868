package compiler

// Bounce depth used when neither the options nor the input scene set one.
const defaultBounces = 5

type Options struct {
	// Frame dims.
	FrameW uint32
	FrameH uint32

	// Number of indirect bounces. Zero uses the bounce depth suggested by
	// the input scene.
	NumBounces uint32

	// Number of samples.
	SamplesPerPixel uint32
}

// Get the default compiler options.
func DefaultOptions() Options {
	return Options{
		FrameW:          1024,
		FrameH:          1024,
		SamplesPerPixel: 1,
	}
}
