package tracer

// Refresh describes how often the contents of a GPU buffer change.
type Refresh uint8

const (
	// Uploaded once whenever the scene is (re)built.
	RefreshPerBuild Refresh = iota

	// Uploaded before every frame.
	RefreshPerFrame
)

func (r Refresh) String() string {
	if r == RefreshPerFrame {
		return "per frame"
	}
	return "per build"
}

type Options struct {
	// Upper bound for the accumulated frame counter. Zero selects
	// MaxCounterValue.
	MaxAccumulatedFrames int64

	// Automatic camera orbit speed around the look-at point in degrees
	// per second. Zero keeps the camera still.
	OrbitSpeed float32
}
