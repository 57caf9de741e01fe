// Package interop maps the rotation value types to and from the vector,
// matrix and quaternion types of other Go geometry libraries.
package interop

import (
	"golang.org/x/image/math/f32"

	"rotconv/rotation"
)

func Vec3ToF32(v rotation.Vector3) f32.Vec3 {
	return f32.Vec3{float32(v.X), float32(v.Y), float32(v.Z)}
}

func Vec3FromF32(v f32.Vec3) rotation.Vector3 {
	return rotation.Vector3{X: float64(v[0]), Y: float64(v[1]), Z: float64(v[2])}
}

// MatToF32 narrows m to float32. f32.Mat3 is row-major, so the layout is
// transposed on the way.
func MatToF32(m rotation.RotationMatrix) f32.Mat3 {
	var out f32.Mat3
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			out[3*r+c] = float32(m.At(r, c))
		}
	}
	return out
}

func MatFromF32(a f32.Mat3) rotation.RotationMatrix {
	var m rotation.RotationMatrix
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			m.Set(r, c, float64(a[3*r+c]))
		}
	}
	return m
}
