package types

import "github.com/chewxy/math32"

// A unit quaternion used for rotating camera poses.
type Quat struct {
	V Vec3
	W float32
}

// Create identity quaternion.
func QuatIdent() Quat {
	return Quat{W: 1}
}

// Create a quaternion that rotates by angle radians around axis. The axis
// must be normalized.
func QuatFromAxisAngle(axis Vec3, angle float32) Quat {
	return Quat{
		V: axis.Mul(math32.Sin(angle * 0.5)),
		W: math32.Cos(angle * 0.5),
	}
}

// Rotate a vector by the rotation this quaternion represents.
func (q Quat) Rotate(v Vec3) Vec3 {
	cross := q.V.Cross(v)
	// v + 2q_w * (q_v x v) + 2q_v x (q_v x v)
	return v.Add(cross.Mul(2 * q.W)).Add(q.V.Mul(2).Cross(cross))
}

// Compose two rotations; the result applies q2 first and then q. Quaternion
// multiplication is not commutative.
func (q Quat) Mul(q2 Quat) Quat {
	return Quat{
		V: q.V.Cross(q2.V).Add(q2.V.Mul(q.W)).Add(q.V.Mul(q2.W)),
		W: q.W*q2.W - q.V.Dot(q2.V),
	}
}
