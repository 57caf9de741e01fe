package rotation

import "math"

// RotX returns a 3×3 rotation matrix around the X axis. Angle in radians.
func RotX(a float64) RotationMatrix {
	s, c := math.Sincos(a)
	return RotationMatrix{
		1, 0, 0,
		0, c, s,
		0, -s, c,
	}
}

// RotY returns a 3×3 rotation matrix around the Y axis.
func RotY(a float64) RotationMatrix {
	s, c := math.Sincos(a)
	return RotationMatrix{
		c, 0, -s,
		0, 1, 0,
		s, 0, c,
	}
}

// RotZ returns a 3×3 rotation matrix around the Z axis.
func RotZ(a float64) RotationMatrix {
	s, c := math.Sincos(a)
	return RotationMatrix{
		c, s, 0,
		-s, c, 0,
		0, 0, 1,
	}
}

// MatAxis dispatches to RotX, RotY or RotZ.
func MatAxis(axis Axis, a float64) RotationMatrix {
	switch axis {
	case AxisY:
		return RotY(a)
	case AxisZ:
		return RotZ(a)
	}
	return RotX(a)
}

// ComposeMat multiplies the per-axis matrices of e in its order's
// sequence, e.g. RotX(e.X) × RotY(e.Y) × RotZ(e.Z) for XYZ.
func ComposeMat(e EulerAngle) (RotationMatrix, error) {
	axes, ok := e.Order.Axes()
	if !ok {
		return RotationMatrix{}, invalidOrder("compose matrix", e.Order)
	}
	m := MatAxis(axes[0], e.Angle(axes[0]))
	m = m.Mul(MatAxis(axes[1], e.Angle(axes[1])))
	return m.Mul(MatAxis(axes[2], e.Angle(axes[2]))), nil
}

// ComposeQuat is the quaternion counterpart of ComposeMat.
func ComposeQuat(e EulerAngle) (Quaternion, error) {
	axes, ok := e.Order.Axes()
	if !ok {
		return Quaternion{}, invalidOrder("compose quaternion", e.Order)
	}
	q := QuatAxis(axes[0], e.Angle(axes[0]))
	q = q.Mul(QuatAxis(axes[1], e.Angle(axes[1])))
	return q.Mul(QuatAxis(axes[2], e.Angle(axes[2]))), nil
}
