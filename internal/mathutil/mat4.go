package mathutil

import "golang.org/x/image/math/f32"

// Mat4 is a 4×4 matrix of 16 floats. Element At(r, c) is m[4*r+c], and
// Row(i) is the i'th group of four. Each stored row holds one column of
// the transform (translation lives in Row(3)), so composition follows the
// column-vector convention used by GL-style shaders.
type Mat4 [16]float32

// Identity returns the 4×4 identity matrix.
func Identity() Mat4 { return Mat4Diag(1) }

// Mat4Diag returns a matrix with a on the diagonal.
func Mat4Diag(a float32) Mat4 {
	return Mat4{
		a, 0, 0, 0,
		0, a, 0, 0,
		0, 0, a, 0,
		0, 0, 0, a,
	}
}

// Mat4FromDiagonal returns a matrix with the components of d on the diagonal.
func Mat4FromDiagonal(d Vec4) Mat4 {
	return Mat4{
		d.X, 0, 0, 0,
		0, d.Y, 0, 0,
		0, 0, d.Z, 0,
		0, 0, 0, d.W,
	}
}

func (m *Mat4) At(row, col int) float32 { return m[4*row+col] }

func (m *Mat4) Set(row, col int, v float32) { m[4*row+col] = v }

// Row returns the i'th stored row.
func (m *Mat4) Row(i int) Vec4 {
	return Vec4{m[4*i], m[4*i+1], m[4*i+2], m[4*i+3]}
}

func (m *Mat4) SetRow(i int, v Vec4) {
	m[4*i], m[4*i+1], m[4*i+2], m[4*i+3] = v.X, v.Y, v.Z, v.W
}

// Grid returns m as a [row][col] array.
func (m Mat4) Grid() [4][4]float32 {
	return [4][4]float32{
		{m[0], m[1], m[2], m[3]},
		{m[4], m[5], m[6], m[7]},
		{m[8], m[9], m[10], m[11]},
		{m[12], m[13], m[14], m[15]},
	}
}

// Array returns m as a flat array view with element 4*r+c at row r, col c.
func (m Mat4) Array() f32.Mat4 { return f32.Mat4(m) }

// Mul returns a × b: element (j, i) is the dot of the i'th column of a's
// storage with b's j'th stored row.
func Mul(a, b Mat4) Mat4 {
	var c [4]Vec4
	for i := range c {
		c[i] = Vec4{a[i], a[4+i], a[8+i], a[12+i]}
	}
	var m Mat4
	for j := 0; j < 4; j++ {
		r := b.Row(j)
		for i := 0; i < 4; i++ {
			m[4*j+i] = c[i].Dot(r)
		}
	}
	return m
}

// Mul returns m × n.
func (m Mat4) Mul(n Mat4) Mat4 { return Mul(m, n) }

// MulVec4 transforms v as a column vector.
func (m Mat4) MulVec4(v Vec4) Vec4 {
	c := Vec4{m[0], m[4], m[8], m[12]}
	r := Vec4{m[1], m[5], m[9], m[13]}
	s := Vec4{m[2], m[6], m[10], m[14]}
	t := Vec4{m[3], m[7], m[11], m[15]}
	return Vec4{c.Dot(v), r.Dot(v), s.Dot(v), t.Dot(v)}
}

func (m Mat4) Transpose() Mat4 {
	return Mat4{
		m[0], m[4], m[8], m[12],
		m[1], m[5], m[9], m[13],
		m[2], m[6], m[10], m[14],
		m[3], m[7], m[11], m[15],
	}
}

// TranslateMatrix adds v to the translation row of m.
func TranslateMatrix(m *Mat4, v Vec3) {
	m[12] += v.X
	m[13] += v.Y
	m[14] += v.Z
}

// ScaleMatrix scales the diagonal of m's upper 3×3 by v.
func ScaleMatrix(m *Mat4, v Vec3) {
	m[0] *= v.X
	m[5] *= v.Y
	m[10] *= v.Z
}

func ScaleMatrixUniform(m *Mat4, s float32) {
	m[0] *= s
	m[5] *= s
	m[10] *= s
}

// Position returns the translation of m.
func Position(m *Mat4) Vec3 { return Vec3{m[12], m[13], m[14]} }

// QuaternionToMat4 returns the rotation matrix of q.
func QuaternionToMat4(q Quat) Mat4 {
	var m Mat4
	m[0] = 1 - (2 * q.Y * q.Y) - (2 * q.Z * q.Z)
	m[1] = (2 * q.X * q.Y) + (2 * q.Z * q.W)
	m[2] = (2 * q.X * q.Z) - (2 * q.Y * q.W)
	m[4] = (2 * q.X * q.Y) - (2 * q.Z * q.W)
	m[5] = 1 - (2 * q.X * q.X) - (2 * q.Z * q.Z)
	m[6] = (2 * q.Y * q.Z) + (2 * q.X * q.W)
	m[8] = (2 * q.X * q.Z) + (2 * q.Y * q.W)
	m[9] = (2 * q.Y * q.Z) - (2 * q.X * q.W)
	m[10] = 1 - (2 * q.X * q.X) - (2 * q.Y * q.Y)
	m[15] = 1
	return m
}

// BuildModelMatrix returns rotation, then translation, then scale:
// (R + t) × diag(scale, 1).
func BuildModelMatrix(position, scale Vec3, orientation Quat) Mat4 {
	rot := QuaternionToMat4(orientation)
	TranslateMatrix(&rot, position)
	return Mul(rot, Mat4FromDiagonal(V4(scale, 1)))
}

// InverseOf returns the inverse of m by cofactor expansion.
// A singular matrix yields the identity.
func InverseOf(m *Mat4) Mat4 {
	inv, _ := InverseOfChecked(m)
	return inv
}

// InverseOfChecked is InverseOf with a flag that is false when m was
// singular and the identity was returned instead.
func InverseOfChecked(m *Mat4) (Mat4, bool) {
	g := m.Grid()
	var a Mat4
	a[0] = g[1][1]*g[2][2]*g[3][3] + g[1][2]*g[2][3]*g[3][1] + g[1][3]*g[2][1]*g[3][2] -
		g[1][1]*g[2][3]*g[3][2] - g[1][2]*g[2][1]*g[3][3] - g[1][3]*g[2][2]*g[3][1]
	a[1] = g[0][1]*g[2][3]*g[3][2] + g[0][2]*g[2][1]*g[3][3] + g[0][3]*g[2][2]*g[3][1] -
		g[0][1]*g[2][2]*g[3][3] - g[0][2]*g[2][3]*g[3][1] - g[0][3]*g[2][1]*g[3][2]
	a[2] = g[0][1]*g[1][2]*g[3][3] + g[0][2]*g[1][3]*g[3][1] + g[0][3]*g[1][1]*g[3][2] -
		g[0][1]*g[1][3]*g[3][2] - g[0][2]*g[1][1]*g[3][3] - g[0][3]*g[1][2]*g[3][1]
	a[3] = g[0][1]*g[1][3]*g[2][2] + g[0][2]*g[1][1]*g[2][3] + g[0][3]*g[1][2]*g[2][1] -
		g[0][1]*g[1][2]*g[2][3] - g[0][2]*g[1][3]*g[2][1] - g[0][3]*g[1][1]*g[2][2]
	a[4] = g[1][0]*g[2][3]*g[3][2] + g[1][2]*g[2][0]*g[3][3] + g[1][3]*g[2][2]*g[3][0] -
		g[1][0]*g[2][2]*g[3][3] - g[1][2]*g[2][3]*g[3][0] - g[1][3]*g[2][0]*g[3][2]
	a[5] = g[0][0]*g[2][2]*g[3][3] + g[0][2]*g[2][3]*g[3][0] + g[0][3]*g[2][0]*g[3][2] -
		g[0][0]*g[2][3]*g[3][2] - g[0][2]*g[2][0]*g[3][3] - g[0][3]*g[2][2]*g[3][0]
	a[6] = g[0][0]*g[1][3]*g[3][2] + g[0][2]*g[1][0]*g[3][3] + g[0][3]*g[1][2]*g[3][0] -
		g[0][0]*g[1][2]*g[3][3] - g[0][2]*g[1][3]*g[3][0] - g[0][3]*g[1][0]*g[3][2]
	a[7] = g[0][0]*g[1][2]*g[2][3] + g[0][2]*g[1][3]*g[2][0] + g[0][3]*g[1][0]*g[2][2] -
		g[0][0]*g[1][3]*g[2][2] - g[0][2]*g[1][0]*g[2][3] - g[0][3]*g[1][2]*g[2][0]
	a[8] = g[1][0]*g[2][1]*g[3][3] + g[1][1]*g[2][3]*g[3][0] + g[1][3]*g[2][0]*g[3][1] -
		g[1][0]*g[2][3]*g[3][1] - g[1][1]*g[2][0]*g[3][3] - g[1][3]*g[2][1]*g[3][0]
	a[9] = g[0][0]*g[2][3]*g[3][1] + g[0][1]*g[2][0]*g[3][3] + g[0][3]*g[2][1]*g[3][0] -
		g[0][0]*g[2][1]*g[3][3] - g[0][1]*g[2][3]*g[3][0] - g[0][3]*g[2][0]*g[3][1]
	a[10] = g[0][0]*g[1][1]*g[3][3] + g[0][1]*g[1][3]*g[3][0] + g[0][3]*g[1][0]*g[3][1] -
		g[0][0]*g[1][3]*g[3][1] - g[0][1]*g[1][0]*g[3][3] - g[0][3]*g[1][1]*g[3][0]
	a[11] = g[0][0]*g[1][3]*g[2][1] + g[0][1]*g[1][0]*g[2][3] + g[0][3]*g[1][1]*g[2][0] -
		g[0][0]*g[1][1]*g[2][3] - g[0][1]*g[1][3]*g[2][0] - g[0][3]*g[1][0]*g[2][1]
	a[12] = g[1][0]*g[2][2]*g[3][1] + g[1][1]*g[2][0]*g[3][2] + g[1][2]*g[2][1]*g[3][0] -
		g[1][0]*g[2][1]*g[3][2] - g[1][1]*g[2][2]*g[3][0] - g[1][2]*g[2][0]*g[3][1]
	a[13] = g[0][0]*g[2][1]*g[3][2] + g[0][1]*g[2][2]*g[3][0] + g[0][2]*g[2][0]*g[3][1] -
		g[0][0]*g[2][2]*g[3][1] - g[0][1]*g[2][0]*g[3][2] - g[0][2]*g[2][1]*g[3][0]
	a[14] = g[0][0]*g[1][2]*g[3][1] + g[0][1]*g[1][0]*g[3][2] + g[0][2]*g[1][1]*g[3][0] -
		g[0][0]*g[1][1]*g[3][2] - g[0][1]*g[1][2]*g[3][0] - g[0][2]*g[1][0]*g[3][1]
	a[15] = g[0][0]*g[1][1]*g[2][2] + g[0][1]*g[1][2]*g[2][0] + g[0][2]*g[1][0]*g[2][1] -
		g[0][0]*g[1][2]*g[2][1] - g[0][1]*g[1][0]*g[2][2] - g[0][2]*g[1][1]*g[2][0]

	det := m[0]*a[0] + m[1]*a[4] + m[2]*a[8] + m[3]*a[12]
	if det == 0 {
		return Identity(), false
	}
	det = float32(1.0 / float64(det))
	for i := range a {
		a[i] *= det
	}
	return a, true
}
