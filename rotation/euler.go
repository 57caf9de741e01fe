package rotation

import "fmt"

// EulerOrder is the sequence in which the three axis rotations are
// composed. XYZ means Rx * Ry * Rz.
type EulerOrder int

const (
	XYZ EulerOrder = iota
	XZY
	YXZ
	YZX
	ZXY
	ZYX
)

// Axis names one of the three coordinate axes.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

var orderAxes = map[EulerOrder][3]Axis{
	XYZ: {AxisX, AxisY, AxisZ},
	XZY: {AxisX, AxisZ, AxisY},
	YXZ: {AxisY, AxisX, AxisZ},
	YZX: {AxisY, AxisZ, AxisX},
	ZXY: {AxisZ, AxisX, AxisY},
	ZYX: {AxisZ, AxisY, AxisX},
}

// Valid reports whether o is one of the six defined orders.
func (o EulerOrder) Valid() bool {
	_, ok := orderAxes[o]
	return ok
}

// Axes returns the axes in composition order. ok is false for an
// undefined order.
func (o EulerOrder) Axes() (axes [3]Axis, ok bool) {
	axes, ok = orderAxes[o]
	return axes, ok
}

func (o EulerOrder) String() string {
	axes, ok := orderAxes[o]
	if !ok {
		return fmt.Sprintf("EulerOrder(%d)", int(o))
	}
	return axes[0].String() + axes[1].String() + axes[2].String()
}

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "X"
	case AxisY:
		return "Y"
	case AxisZ:
		return "Z"
	}
	return fmt.Sprintf("Axis(%d)", int(a))
}

// EulerAngle holds three rotation angles in radians about X, Y and Z,
// applied in Order. The angles have no range restriction.
type EulerAngle struct {
	X, Y, Z float64
	Order   EulerOrder
}

func NewEulerAngle(x, y, z float64, order EulerOrder) EulerAngle {
	return EulerAngle{X: x, Y: y, Z: z, Order: order}
}

// Angle returns the component about the given axis.
func (e EulerAngle) Angle(a Axis) float64 {
	switch a {
	case AxisY:
		return e.Y
	case AxisZ:
		return e.Z
	}
	return e.X
}
