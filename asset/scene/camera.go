package scene

import (
	"errors"
	"fmt"

	"github.com/achilleasa/prism/asset/layout"
	"github.com/achilleasa/prism/types"
	"github.com/chewxy/math32"
)

var (
	ErrDegenerateCamera = errors.New("scene: camera basis is degenerate")
	ErrInvalidRaster    = errors.New("scene: camera raster size must be non-zero")
)

var (
	// Layout of the encoded camera pose:
	//
	//	[0-2]   look from
	//	[3]     vertical FOV (degrees)
	//	[4-6]   look at
	//	[7]     defocus angle (degrees)
	//	[8-10]  up vector
	//	[11]    focus distance
	//	[12]    image width
	//	[13]    image height
	//	[14-15] padding
	CameraLayout = layout.Layout{Align: 16, Size: 64}

	// Layout of the encoded per-frame camera view data:
	//
	//	[0-2]   look from
	//	[4-6]   top-left pixel center
	//	[8-10]  pixel delta along U
	//	[12-14] pixel delta along V
	//	[16-18] defocus disk U
	//	[20-22] defocus disk V
	//	[23]    defocus angle (degrees)
	//
	// Slots 3, 7, 11, 15 and 19 are padding.
	CameraViewDataLayout = layout.Layout{Align: 16, Size: 96}
)

// The camera type holds the scene camera pose and lens settings. It is
// mutated by input handlers between frames; the kernel consumes the
// CameraViewData snapshot derived from it.
type Camera struct {
	LookFrom types.Vec3
	LookAt   types.Vec3
	Vup      types.Vec3

	// Vertical field of view in degrees.
	VFov float32

	// Variation angle of rays through each pixel, in degrees. Zero
	// disables depth of field.
	DefocusAngle float32

	// Distance from LookFrom to the plane of perfect focus.
	FocusDistance float32

	// Output raster dimensions.
	ImageWidth  uint32
	ImageHeight uint32
}

// Create a camera at the origin looking down -Z.
func NewCamera(width, height uint32) *Camera {
	return &Camera{
		LookFrom:      types.XYZ(0, 0, 0),
		LookAt:        types.XYZ(0, 0, -1),
		Vup:           types.XYZ(0, 1, 0),
		VFov:          90,
		FocusDistance: 10,
		ImageWidth:    width,
		ImageHeight:   height,
	}
}

// Get the ratio of image width to height.
func (c *Camera) AspectRatio() float32 {
	return float32(c.ImageWidth) / float32(c.ImageHeight)
}

// Encode the camera pose.
//
// align(16) size(64)
func (c *Camera) Encode() []float32 {
	out := make([]float32, CameraLayout.Stride())
	copy(out[0:], c.LookFrom.Encode())
	out[3] = c.VFov
	copy(out[4:], c.LookAt.Encode())
	out[7] = c.DefocusAngle
	copy(out[8:], c.Vup.Encode())
	out[11] = c.FocusDistance
	out[12] = float32(c.ImageWidth)
	out[13] = float32(c.ImageHeight)
	return out
}

// Orbit the camera around LookAt by angle radians, rotating about the up
// vector. The distance to LookAt is preserved.
func (c *Camera) Orbit(angle float32) error {
	axis, err := c.Vup.Normalize()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrDegenerateCamera, err)
	}

	offset := c.LookFrom.Sub(c.LookAt)
	c.LookFrom = c.LookAt.Add(types.QuatFromAxisAngle(axis, angle).Rotate(offset))
	return nil
}

// Derive the viewport basis for the current camera pose. The camera basis
// is w = normalize(lookFrom - lookAt), u = normalize(vup x w), v = w x u.
// A camera whose LookFrom equals LookAt, or whose Vup is parallel to the
// view direction, yields ErrDegenerateCamera.
func (c *Camera) ViewData() (CameraViewData, error) {
	if c.ImageWidth == 0 || c.ImageHeight == 0 {
		return CameraViewData{}, ErrInvalidRaster
	}

	theta := degToRad(c.VFov)
	h := math32.Tan(theta / 2)
	viewportHeight := 2 * h * c.FocusDistance
	viewportWidth := viewportHeight * c.AspectRatio()

	w, err := c.LookFrom.Sub(c.LookAt).Normalize()
	if err != nil {
		return CameraViewData{}, fmt.Errorf("%w: look from and look at coincide: %w", ErrDegenerateCamera, err)
	}
	u, err := c.Vup.Cross(w).Normalize()
	if err != nil {
		return CameraViewData{}, fmt.Errorf("%w: up vector is parallel to the view direction: %w", ErrDegenerateCamera, err)
	}
	v := w.Cross(u)

	// Vectors across the horizontal and down the vertical viewport edges
	viewportU := u.Mul(viewportWidth)
	viewportV := v.Negate().Mul(viewportHeight)

	pixelDeltaU := viewportU.Div(float32(c.ImageWidth))
	pixelDeltaV := viewportV.Div(float32(c.ImageHeight))

	viewportUpperLeft := c.LookFrom.
		Sub(w.Mul(c.FocusDistance)).
		Sub(viewportU.Div(2)).
		Sub(viewportV.Div(2))
	pixel00 := viewportUpperLeft.Add(pixelDeltaU.Add(pixelDeltaV).Mul(0.5))

	defocusRadius := c.FocusDistance * math32.Tan(degToRad(c.DefocusAngle)/2)

	return CameraViewData{
		LookFrom:        c.LookFrom,
		Pixel00Location: pixel00,
		PixelDeltaU:     pixelDeltaU,
		PixelDeltaV:     pixelDeltaV,
		DefocusDiskU:    u.Mul(defocusRadius),
		DefocusDiskV:    v.Mul(defocusRadius),
		DefocusAngle:    c.DefocusAngle,
	}, nil
}

// CameraViewData is a read-only per-frame snapshot derived from a Camera.
type CameraViewData struct {
	LookFrom        types.Vec3
	Pixel00Location types.Vec3
	PixelDeltaU     types.Vec3
	PixelDeltaV     types.Vec3
	DefocusDiskU    types.Vec3
	DefocusDiskV    types.Vec3
	DefocusAngle    float32
}

// Encode view data.
//
// align(16) size(96)
func (vd CameraViewData) Encode() []float32 {
	out := make([]float32, CameraViewDataLayout.Stride())
	copy(out[0:], vd.LookFrom.Encode())
	copy(out[4:], vd.Pixel00Location.Encode())
	copy(out[8:], vd.PixelDeltaU.Encode())
	copy(out[12:], vd.PixelDeltaV.Encode())
	copy(out[16:], vd.DefocusDiskU.Encode())
	copy(out[20:], vd.DefocusDiskV.Encode())
	out[23] = vd.DefocusAngle
	return out
}

func (vd CameraViewData) String() string {
	return fmt.Sprintf(
		"Camera view:\nFrom   : (%3.3f, %3.3f, %3.3f)\nPixel00: (%3.3f, %3.3f, %3.3f)\nDeltaU : (%3.3f, %3.3f, %3.3f)\nDeltaV : (%3.3f, %3.3f, %3.3f)",
		vd.LookFrom[0], vd.LookFrom[1], vd.LookFrom[2],
		vd.Pixel00Location[0], vd.Pixel00Location[1], vd.Pixel00Location[2],
		vd.PixelDeltaU[0], vd.PixelDeltaU[1], vd.PixelDeltaU[2],
		vd.PixelDeltaV[0], vd.PixelDeltaV[1], vd.PixelDeltaV[2],
	)
}

func degToRad(deg float32) float32 {
	return deg * math32.Pi / 180
}
