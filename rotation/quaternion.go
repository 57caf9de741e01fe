package rotation

import "math"

// Quaternion represents a rotation as (x, y, z, w) with w the scalar part.
// Only unit quaternions are rotations; nothing here renormalises.
type Quaternion struct {
	X, Y, Z, W float64
}

func NewQuaternion(x, y, z, w float64) Quaternion {
	return Quaternion{x, y, z, w}
}

func QuatIdentity() Quaternion {
	return Quaternion{0, 0, 0, 1}
}

// QuatRotX returns the unit quaternion for a rotation around the X axis. Angle in radians.
func QuatRotX(a float64) Quaternion {
	s, c := math.Sincos(0.5 * a)
	return Quaternion{s, 0, 0, c}
}

// QuatRotY returns the unit quaternion for a rotation around the Y axis.
func QuatRotY(a float64) Quaternion {
	s, c := math.Sincos(0.5 * a)
	return Quaternion{0, s, 0, c}
}

// QuatRotZ returns the unit quaternion for a rotation around the Z axis.
func QuatRotZ(a float64) Quaternion {
	s, c := math.Sincos(0.5 * a)
	return Quaternion{0, 0, s, c}
}

// QuatAxis dispatches to QuatRotX, QuatRotY or QuatRotZ.
func QuatAxis(axis Axis, a float64) Quaternion {
	switch axis {
	case AxisY:
		return QuatRotY(a)
	case AxisZ:
		return QuatRotZ(a)
	}
	return QuatRotX(a)
}

// Conjugate returns (-x, -y, -z, w), the inverse of a unit quaternion.
func (q Quaternion) Conjugate() Quaternion {
	return Quaternion{-q.X, -q.Y, -q.Z, q.W}
}

// Mul returns the Hamilton product q × r: applying r first, then q.
func (q Quaternion) Mul(r Quaternion) Quaternion {
	return Quaternion{
		q.W*r.X - q.Z*r.Y + q.Y*r.Z + q.X*r.W,
		q.Z*r.X + q.W*r.Y - q.X*r.Z + q.Y*r.W,
		-q.Y*r.X + q.X*r.Y + q.W*r.Z + q.Z*r.W,
		-q.X*r.X - q.Y*r.Y - q.Z*r.Z + q.W*r.W,
	}
}

// Rotate applies q to v via q × (v, 0) × conj(q).
func (q Quaternion) Rotate(v Vector3) Vector3 {
	p := q.Mul(Quaternion{v.X, v.Y, v.Z, 0}).Mul(q.Conjugate())
	return Vector3{p.X, p.Y, p.Z}
}

func (q Quaternion) Norm() float64 {
	return math.Sqrt(q.X*q.X + q.Y*q.Y + q.Z*q.Z + q.W*q.W)
}
