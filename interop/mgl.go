package interop

import (
	"github.com/go-gl/mathgl/mgl64"

	"rotconv/rotation"
)

func Vec3ToMgl(v rotation.Vector3) mgl64.Vec3 {
	return mgl64.Vec3{v.X, v.Y, v.Z}
}

func Vec3FromMgl(v mgl64.Vec3) rotation.Vector3 {
	return rotation.Vector3{X: v[0], Y: v[1], Z: v[2]}
}

// MatToMgl copies m unchanged: mgl64.Mat3 is column-major as well.
func MatToMgl(m rotation.RotationMatrix) mgl64.Mat3 {
	return mgl64.Mat3(m)
}

func MatFromMgl(m mgl64.Mat3) rotation.RotationMatrix {
	return rotation.RotationMatrix(m)
}

func QuatToMgl(q rotation.Quaternion) mgl64.Quat {
	return mgl64.Quat{W: q.W, V: mgl64.Vec3{q.X, q.Y, q.Z}}
}

func QuatFromMgl(q mgl64.Quat) rotation.Quaternion {
	return rotation.Quaternion{X: q.V[0], Y: q.V[1], Z: q.V[2], W: q.W}
}
