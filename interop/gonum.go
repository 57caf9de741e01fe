package interop

import (
	"gonum.org/v1/gonum/num/quat"

	"rotconv/rotation"
)

// QuatToNumber maps (x, y, z, w) to w + xi + yj + zk.
func QuatToNumber(q rotation.Quaternion) quat.Number {
	return quat.Number{Real: q.W, Imag: q.X, Jmag: q.Y, Kmag: q.Z}
}

func QuatFromNumber(n quat.Number) rotation.Quaternion {
	return rotation.Quaternion{X: n.Imag, Y: n.Jmag, Z: n.Kmag, W: n.Real}
}

// Vec3ToNumber raises v to a pure imaginary quaternion.
func Vec3ToNumber(v rotation.Vector3) quat.Number {
	return quat.Number{Imag: v.X, Jmag: v.Y, Kmag: v.Z}
}
