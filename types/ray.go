package types

// A ray with an origin, a direction and a time. Moving geometry reuses this
// type to describe a center that travels along Direction over [0, 1].
type Ray struct {
	Origin    Vec3
	Direction Vec3
	Time      float32
}

// Get the point at distance t along the ray.
func (r Ray) At(t float32) Vec3 {
	return r.Origin.Add(r.Direction.Mul(t))
}

// Encode ray. The time value shares the origin's padding slot.
//
// align(16) size(32)
func (r Ray) Encode() []float32 {
	out := make([]float32, 8)
	copy(out[0:], r.Origin.Encode())
	out[3] = r.Time
	copy(out[4:], r.Direction.Encode())
	return out
}
