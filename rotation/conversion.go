// Package rotation converts between Euler angles, unit quaternions and
// 3×3 rotation matrices, and applies each of them to vectors.
package rotation

import "math"

// EulerToQuat converts Euler angles (radians) to a unit quaternion using
// the closed-form half-angle product for e.Order. The result equals
// ComposeQuat(e).
func EulerToQuat(e EulerAngle) (Quaternion, error) {
	sx, cx := math.Sincos(0.5 * e.X)
	sy, cy := math.Sincos(0.5 * e.Y)
	sz, cz := math.Sincos(0.5 * e.Z)

	switch e.Order {
	case XYZ:
		return Quaternion{
			cx*sy*sz + sx*cy*cz,
			-sx*cy*sz + cx*sy*cz,
			cx*cy*sz + sx*sy*cz,
			-sx*sy*sz + cx*cy*cz,
		}, nil
	case XZY:
		return Quaternion{
			-cx*sy*sz + sx*cy*cz,
			cx*sy*cz - sx*cy*sz,
			sx*sy*cz + cx*cy*sz,
			sx*sy*sz + cx*cy*cz,
		}, nil
	case YXZ:
		return Quaternion{
			cx*sy*sz + sx*cy*cz,
			-sx*cy*sz + cx*sy*cz,
			cx*cy*sz - sx*sy*cz,
			sx*sy*sz + cx*cy*cz,
		}, nil
	case YZX:
		return Quaternion{
			sx*cy*cz + cx*sy*sz,
			sx*cy*sz + cx*sy*cz,
			-sx*sy*cz + cx*cy*sz,
			-sx*sy*sz + cx*cy*cz,
		}, nil
	case ZXY:
		return Quaternion{
			-cx*sy*sz + sx*cy*cz,
			cx*sy*cz + sx*cy*sz,
			sx*sy*cz + cx*cy*sz,
			-sx*sy*sz + cx*cy*cz,
		}, nil
	case ZYX:
		return Quaternion{
			sx*cy*cz - cx*sy*sz,
			sx*cy*sz + cx*sy*cz,
			-sx*sy*cz + cx*cy*sz,
			sx*sy*sz + cx*cy*cz,
		}, nil
	}
	return Quaternion{}, invalidOrder("euler to quaternion", e.Order)
}

// EulerToMat converts Euler angles (radians) to a rotation matrix. The
// result equals ComposeMat(e).
func EulerToMat(e EulerAngle) (RotationMatrix, error) {
	sx, cx := math.Sincos(e.X)
	sy, cy := math.Sincos(e.Y)
	sz, cz := math.Sincos(e.Z)

	// Each literal below lists columns, not rows.
	switch e.Order {
	case XYZ:
		return RotationMatrix{
			cy * cz, sx*sy*cz + cx*sz, -cx*sy*cz + sx*sz,
			-cy * sz, -sx*sy*sz + cx*cz, cx*sy*sz + sx*cz,
			sy, -sx * cy, cx * cy,
		}, nil
	case XZY:
		return RotationMatrix{
			cy * cz, cx*cy*sz + sx*sy, sx*cy*sz - cx*sy,
			-sz, cx * cz, sx * cz,
			sy * cz, cx*sy*sz - sx*cy, sx*sy*sz + cx*cy,
		}, nil
	case YXZ:
		return RotationMatrix{
			sx*sy*sz + cy*cz, cx * sz, sx*cy*sz - sy*cz,
			sx*sy*cz - cy*sz, cx * cz, sx*cy*cz + sy*sz,
			cx * sy, -sx, cx * cy,
		}, nil
	case YZX:
		return RotationMatrix{
			cy * cz, sz, -sy * cz,
			-cx*cy*sz + sx*sy, cx * cz, cx*sy*sz + sx*cy,
			sx*cy*sz + cx*sy, -sx * cz, -sx*sy*sz + cx*cy,
		}, nil
	case ZXY:
		return RotationMatrix{
			-sx*sy*sz + cy*cz, sx*sy*cz + cy*sz, -cx * sy,
			-cx * sz, cx * cz, sx,
			sx*cy*sz + sy*cz, -sx*cy*cz + sy*sz, cx * cy,
		}, nil
	case ZYX:
		return RotationMatrix{
			cy * cz, cy * sz, -sy,
			sx*sy*cz - cx*sz, sx*sy*sz + cx*cz, sx * cy,
			cx*sy*cz + sx*sz, cx*sy*sz - sx*cz, cx * cy,
		}, nil
	}
	return RotationMatrix{}, invalidOrder("euler to matrix", e.Order)
}

// QuatToMat converts a quaternion to a 3×3 rotation matrix. Meaningful
// only for unit input.
func QuatToMat(q Quaternion) RotationMatrix {
	xy2 := q.X * q.Y * 2
	xz2 := q.X * q.Z * 2
	xw2 := q.X * q.W * 2
	yz2 := q.Y * q.Z * 2
	yw2 := q.Y * q.W * 2
	zw2 := q.Z * q.W * 2
	ww2 := q.W * q.W * 2

	return RotationMatrix{
		ww2 + 2*q.X*q.X - 1, xy2 + zw2, xz2 - yw2,
		xy2 - zw2, ww2 + 2*q.Y*q.Y - 1, yz2 + xw2,
		xz2 + yw2, yz2 - xw2, ww2 + 2*q.Z*q.Z - 1,
	}
}

// MatToQuat converts a rotation matrix to a quaternion. It takes the
// square root of the largest of the four 4·component² candidates and
// derives the other components from off-diagonal sums, so no division
// by a near-zero component happens near 180° rotations.
//
// Candidates are compared strictly in x, y, z, w order: a later one
// replaces the current pick only when it is larger.
func MatToQuat(m RotationMatrix) Quaternion {
	m00, m11, m22 := m.At(0, 0), m.At(1, 1), m.At(2, 2)
	p := [4]float64{
		m00 - m11 - m22 + 1,
		-m00 + m11 - m22 + 1,
		-m00 - m11 + m22 + 1,
		m00 + m11 + m22 + 1,
	}

	sel := 0
	for i := 1; i < 4; i++ {
		if p[sel] < p[i] {
			sel = i
		}
	}

	switch sel {
	case 0:
		x := math.Sqrt(p[0]) * 0.5
		d := 1 / (4 * x)
		return Quaternion{
			x,
			(m.At(1, 0) + m.At(0, 1)) * d,
			(m.At(0, 2) + m.At(2, 0)) * d,
			(m.At(2, 1) - m.At(1, 2)) * d,
		}
	case 1:
		y := math.Sqrt(p[1]) * 0.5
		d := 1 / (4 * y)
		return Quaternion{
			(m.At(1, 0) + m.At(0, 1)) * d,
			y,
			(m.At(2, 1) + m.At(1, 2)) * d,
			(m.At(0, 2) - m.At(2, 0)) * d,
		}
	case 2:
		z := math.Sqrt(p[2]) * 0.5
		d := 1 / (4 * z)
		return Quaternion{
			(m.At(0, 2) + m.At(2, 0)) * d,
			(m.At(2, 1) + m.At(1, 2)) * d,
			z,
			(m.At(1, 0) - m.At(0, 1)) * d,
		}
	}
	w := math.Sqrt(p[3]) * 0.5
	d := 1 / (4 * w)
	return Quaternion{
		(m.At(2, 1) - m.At(1, 2)) * d,
		(m.At(0, 2) - m.At(2, 0)) * d,
		(m.At(1, 0) - m.At(0, 1)) * d,
		w,
	}
}

// MatToEuler decomposes a rotation matrix into Euler angles for order.
//
// The middle angle of the sequence comes from asin of one matrix entry.
// When that entry's magnitude reaches GimbalLockThreshold the outer two
// axes coincide: the trailing free angle is set to 0 and the other outer
// angle absorbs the combined rotation.
func MatToEuler(m RotationMatrix, order EulerOrder) (EulerAngle, error) {
	e := EulerAngle{Order: order}

	switch order {
	case XYZ:
		s := m.At(0, 2)
		e.Y = math.Asin(clampUnit(s))
		if math.Abs(s) < GimbalLockThreshold {
			e.X = math.Atan2(-m.At(1, 2), m.At(2, 2))
			e.Z = math.Atan2(-m.At(0, 1), m.At(0, 0))
		} else {
			e.X = math.Atan2(m.At(2, 1), m.At(1, 1))
		}
	case XZY:
		s := -m.At(0, 1)
		e.Z = math.Asin(clampUnit(s))
		if math.Abs(s) < GimbalLockThreshold {
			e.X = math.Atan2(m.At(2, 1), m.At(1, 1))
			e.Y = math.Atan2(m.At(0, 2), m.At(0, 0))
		} else {
			e.X = math.Atan2(-m.At(1, 2), m.At(2, 2))
		}
	case YXZ:
		s := -m.At(1, 2)
		e.X = math.Asin(clampUnit(s))
		if math.Abs(s) < GimbalLockThreshold {
			e.Y = math.Atan2(m.At(0, 2), m.At(2, 2))
			e.Z = math.Atan2(m.At(1, 0), m.At(1, 1))
		} else {
			e.Y = math.Atan2(-m.At(2, 0), m.At(0, 0))
		}
	case YZX:
		s := m.At(1, 0)
		e.Z = math.Asin(clampUnit(s))
		if math.Abs(s) < GimbalLockThreshold {
			e.X = math.Atan2(-m.At(1, 2), m.At(1, 1))
			e.Y = math.Atan2(-m.At(2, 0), m.At(0, 0))
		} else {
			e.Y = math.Atan2(m.At(0, 2), m.At(2, 2))
		}
	case ZXY:
		s := m.At(2, 1)
		e.X = math.Asin(clampUnit(s))
		if math.Abs(s) < GimbalLockThreshold {
			e.Y = math.Atan2(-m.At(2, 0), m.At(2, 2))
			e.Z = math.Atan2(-m.At(0, 1), m.At(1, 1))
		} else {
			e.Z = math.Atan2(m.At(1, 0), m.At(0, 0))
		}
	case ZYX:
		s := -m.At(2, 0)
		e.Y = math.Asin(clampUnit(s))
		if math.Abs(s) < GimbalLockThreshold {
			e.X = math.Atan2(m.At(2, 1), m.At(2, 2))
			e.Z = math.Atan2(m.At(1, 0), m.At(0, 0))
		} else {
			e.Z = math.Atan2(-m.At(0, 1), m.At(1, 1))
		}
	default:
		return EulerAngle{}, invalidOrder("matrix to euler", order)
	}
	return e, nil
}

// QuatToEuler decomposes a unit quaternion into Euler angles for order.
// The quaternion terms it reads are exactly the QuatToMat entries used by
// MatToEuler, so both share the same branch and gimbal-lock handling.
func QuatToEuler(q Quaternion, order EulerOrder) (EulerAngle, error) {
	if !order.Valid() {
		return EulerAngle{}, invalidOrder("quaternion to euler", order)
	}
	return MatToEuler(QuatToMat(q), order)
}

// MustEulerToQuat is like EulerToQuat but panics on an invalid order.
func MustEulerToQuat(e EulerAngle) Quaternion {
	q, err := EulerToQuat(e)
	if err != nil {
		panic(err)
	}
	return q
}

// MustEulerToMat is like EulerToMat but panics on an invalid order.
func MustEulerToMat(e EulerAngle) RotationMatrix {
	m, err := EulerToMat(e)
	if err != nil {
		panic(err)
	}
	return m
}

func MustQuatToEuler(q Quaternion, order EulerOrder) EulerAngle {
	e, err := QuatToEuler(q, order)
	if err != nil {
		panic(err)
	}
	return e
}

func MustMatToEuler(m RotationMatrix, order EulerOrder) EulerAngle {
	e, err := MatToEuler(m, order)
	if err != nil {
		panic(err)
	}
	return e
}
