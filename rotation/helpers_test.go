package rotation

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

const actionTolerance = 0.02

var orders = []EulerOrder{XYZ, XZY, YXZ, YZX, ZXY, ZYX}

var testVectors = []Vector3{
	{0, 0, 0},
	{1, 0, 0},
	{0, 1, 0},
	{0, 0, 1},
	{2, 3, 5},
	{-7, 11, 13},
	{-17, -19, 23},
}

// assertSameAction checks that two rotations move every test vector to
// the same place. Comparing actions sidesteps the q / -q ambiguity.
func assertSameAction(t *testing.T, want, got func(Vector3) Vector3, msgAndArgs ...interface{}) {
	t.Helper()
	for _, v := range testVectors {
		w, g := want(v), got(v)
		assert.InDelta(t, w.X, g.X, actionTolerance, msgAndArgs...)
		assert.InDelta(t, w.Y, g.Y, actionTolerance, msgAndArgs...)
		assert.InDelta(t, w.Z, g.Z, actionTolerance, msgAndArgs...)
	}
}

// sampleAngles returns angle triples for order: a general set plus two
// triples that put the middle axis at ±90°.
func sampleAngles(order EulerOrder) []EulerAngle {
	out := []EulerAngle{
		NewEulerAngle(0, 0, 0, order),
		NewEulerAngle(math.Pi*0.333, math.Pi*0.777, math.Pi*1.222, order),
		NewEulerAngle(math.Pi*0.777, math.Pi*1.222, math.Pi*0.333, order),
		NewEulerAngle(math.Pi*1.222, math.Pi*0.333, math.Pi*0.777, order),
	}
	return append(out, gimbalAngles(order)...)
}

func gimbalAngles(order EulerOrder) []EulerAngle {
	axes, _ := order.Axes()
	build := func(first, middle, last float64) EulerAngle {
		e := EulerAngle{Order: order}
		e.setAngle(axes[0], first)
		e.setAngle(axes[1], middle)
		e.setAngle(axes[2], last)
		return e
	}
	return []EulerAngle{
		build(math.Pi*0.333, 0.5*math.Pi, math.Pi*1.777),
		build(-math.Pi*1.333, -0.5*math.Pi, -math.Pi*0.777),
	}
}

func (e *EulerAngle) setAngle(a Axis, v float64) {
	switch a {
	case AxisX:
		e.X = v
	case AxisY:
		e.Y = v
	case AxisZ:
		e.Z = v
	}
}
