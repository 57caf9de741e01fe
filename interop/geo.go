package interop

import (
	"github.com/golang/geo/r3"

	"rotconv/rotation"
)

func Vec3ToR3(v rotation.Vector3) r3.Vector {
	return r3.Vector{X: v.X, Y: v.Y, Z: v.Z}
}

func Vec3FromR3(v r3.Vector) rotation.Vector3 {
	return rotation.Vector3{X: v.X, Y: v.Y, Z: v.Z}
}
