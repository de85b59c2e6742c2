package mathutil

import (
	"math"

	"github.com/chewxy/math32"
)

// RotationToQuaternion returns the rotation of angle radians around axis.
// axis must already be unit length.
func RotationToQuaternion(axis Vec3, angle float32) Quat {
	half := angle * 0.5
	s := float32(math.Sin(float64(half)))
	c := float32(math.Cos(float64(half)))
	return Quat{
		X: s * axis.X,
		Y: s * axis.Y,
		Z: s * axis.Z,
		W: c,
	}
}

// Rotate composes q with a rotation of angle radians around axis and
// renormalizes q.
func Rotate(q *Quat, axis Vec3, angle float32) {
	*q = QuatMul(*q, RotationToQuaternion(axis, angle))
	q.Normalize()
}

// Mat4ToQuaternion extracts the rotation of m's upper 3×3 using the
// trace when it is positive and the largest diagonal element otherwise.
func Mat4ToQuaternion(m *Mat4) Quat {
	var q Quat
	m00, m11, m22 := m.At(0, 0), m.At(1, 1), m.At(2, 2)
	sum := m00 + m11 + m22

	switch {
	case sum > 0:
		qw := math32.Sqrt(1+sum) * 0.5
		qwX4 := 4 * qw
		q.X = (m.At(1, 2) - m.At(2, 1)) / qwX4
		q.Y = (m.At(2, 0) - m.At(0, 2)) / qwX4
		q.Z = (m.At(0, 1) - m.At(1, 0)) / qwX4
		q.W = qw
	case m00 > m11 && m00 > m22:
		qq := 2 * math32.Sqrt(1+m00-m11-m22)
		q.X = qq * 0.25
		q.Y = (m.At(1, 0) + m.At(0, 1)) / qq
		q.Z = (m.At(2, 0) + m.At(0, 2)) / qq
		q.W = (m.At(1, 2) - m.At(2, 1)) / qq
	case m11 > m22:
		qq := 2 * math32.Sqrt(1+m11-m00-m22)
		q.X = (m.At(1, 0) + m.At(0, 1)) / qq
		q.Y = qq * 0.25
		q.Z = (m.At(2, 1) + m.At(1, 2)) / qq
		q.W = (m.At(2, 0) - m.At(0, 2)) / qq
	default:
		qq := 2 * math32.Sqrt(1+m22-m00-m11)
		q.X = (m.At(2, 0) + m.At(0, 2)) / qq
		q.Y = (m.At(2, 1) + m.At(1, 2)) / qq
		q.Z = qq * 0.25
		q.W = (m.At(0, 1) - m.At(1, 0)) / qq
	}
	return q
}

// LookAtQuaternion returns the shortest rotation turning face toward
// target as seen from position.
func LookAtQuaternion(position, target, face Vec3) Quat {
	forward := target.Sub(position).NormalOf()
	axis := face.Cross(forward)
	dt := face.Dot(forward)
	return Quat{axis.X, axis.Y, axis.Z, dt + 1}.NormalOf()
}

// LookAtQuaternionDefault is LookAtQuaternion with face = (0, 0, 1).
func LookAtQuaternionDefault(position, target Vec3) Quat {
	return LookAtQuaternion(position, target, Vec3{0, 0, 1})
}
