package rotation

// RotationMatrix is a 3×3 matrix stored column-major: element (r, c) is
// m[r+c*3]. Indexing m[i] addresses the backing store directly.
// Value type for zero heap allocation.
type RotationMatrix [9]float64

func NewRotationMatrix(elements [9]float64) RotationMatrix {
	return RotationMatrix(elements)
}

func Mat3Identity() RotationMatrix {
	return RotationMatrix{1, 0, 0, 0, 1, 0, 0, 0, 1}
}

// At returns the element in row r, column c.
func (m RotationMatrix) At(r, c int) float64 {
	return m[r+c*3]
}

// Set stores v at row r, column c.
func (m *RotationMatrix) Set(r, c int, v float64) {
	m[r+c*3] = v
}

// Ptr returns a pointer to the element at row r, column c, for callers
// filling in a matrix in place before using it as a value.
func (m *RotationMatrix) Ptr(r, c int) *float64 {
	return &m[r+c*3]
}

// Mul returns m × b.
func (m RotationMatrix) Mul(b RotationMatrix) RotationMatrix {
	var out RotationMatrix
	for c := 0; c < 3; c++ {
		for r := 0; r < 3; r++ {
			out[r+c*3] = m[r+0*3]*b[0+c*3] + m[r+1*3]*b[1+c*3] + m[r+2*3]*b[2+c*3]
		}
	}
	return out
}

// MulVec3 returns m × v.
func (m RotationMatrix) MulVec3(v Vector3) Vector3 {
	return Vector3{
		m[0]*v.X + m[3]*v.Y + m[6]*v.Z,
		m[1]*v.X + m[4]*v.Y + m[7]*v.Z,
		m[2]*v.X + m[5]*v.Y + m[8]*v.Z,
	}
}
