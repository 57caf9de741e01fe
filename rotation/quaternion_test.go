package rotation

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuatAxisRotations(t *testing.T) {
	testCases := []struct {
		name string
		q    Quaternion
		v    Vector3
		want Vector3
	}{
		{"X90", QuatRotX(math.Pi / 2), Vector3{0, 1, 0}, Vector3{0, 0, 1}},
		{"Y90", QuatRotY(math.Pi / 2), Vector3{0, 0, 1}, Vector3{1, 0, 0}},
		{"Z90", QuatRotZ(math.Pi / 2), Vector3{1, 0, 0}, Vector3{0, 1, 0}},
		{"X180", QuatRotX(math.Pi), Vector3{0, 1, 0}, Vector3{0, -1, 0}},
		{"Z-90", QuatRotZ(-math.Pi / 2), Vector3{1, 0, 0}, Vector3{0, -1, 0}},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, 1, tt.q.Norm(), 1e-12)
			got := tt.q.Rotate(tt.v)
			assert.InDelta(t, 0, got.Sub(tt.want).Len(), 1e-9, "got %+v", got)
		})
	}
}

func TestQuatAxisDispatch(t *testing.T) {
	require.Equal(t, QuatRotX(0.4), QuatAxis(AxisX, 0.4))
	require.Equal(t, QuatRotY(0.4), QuatAxis(AxisY, 0.4))
	require.Equal(t, QuatRotZ(0.4), QuatAxis(AxisZ, 0.4))
}

func TestQuatConjugate(t *testing.T) {
	q := NewQuaternion(0.1, -0.2, 0.3, 0.9)
	require.Equal(t, NewQuaternion(-0.1, 0.2, -0.3, 0.9), q.Conjugate())

	u := QuatRotX(0.7).Mul(QuatRotY(-1.3))
	id := u.Mul(u.Conjugate())
	assert.InDelta(t, 0, id.X, 1e-12)
	assert.InDelta(t, 0, id.Y, 1e-12)
	assert.InDelta(t, 0, id.Z, 1e-12)
	assert.InDelta(t, 1, id.W, 1e-12)
}

func TestQuatMul(t *testing.T) {
	// i * j = k, j * i = -k
	i := NewQuaternion(1, 0, 0, 0)
	j := NewQuaternion(0, 1, 0, 0)
	require.Equal(t, NewQuaternion(0, 0, 1, 0), i.Mul(j))
	require.Equal(t, NewQuaternion(0, 0, -1, 0), j.Mul(i))
	require.Equal(t, NewQuaternion(0, 0, 0, -1), i.Mul(i))

	// q1 * q2 applies q2 first.
	q1 := QuatRotZ(math.Pi / 2)
	q2 := QuatRotX(math.Pi / 2)
	v := Vector3{0, 1, 0}
	seq := q1.Rotate(q2.Rotate(v))
	got := q1.Mul(q2).Rotate(v)
	assert.InDelta(t, 0, got.Sub(seq).Len(), 1e-9)
	assert.InDelta(t, 0, got.Sub(Vector3{0, 0, 1}).Len(), 1e-9)

	require.Equal(t, q1, QuatIdentity().Mul(q1))
}

func TestQuatRotatePreservesLength(t *testing.T) {
	q := QuatRotX(0.3).Mul(QuatRotY(1.9)).Mul(QuatRotZ(-2.2))
	for _, v := range testVectors {
		assert.InDelta(t, v.Len(), q.Rotate(v).Len(), 1e-9)
	}
}

func TestQuatRotateNonUnit(t *testing.T) {
	// A non-unit quaternion scales by its squared norm.
	q := NewQuaternion(0, 0, 0, 2)
	got := q.Rotate(Vector3{1, 2, 3})
	require.Equal(t, Vector3{4, 8, 12}, got)
}
