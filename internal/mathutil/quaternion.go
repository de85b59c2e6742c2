package mathutil

import (
	"github.com/chewxy/math32"
	"golang.org/x/image/math/f32"
)

// Quat is a rotation quaternion (x, y, z, w).
// The zero value is not a rotation; start from QuatIdentity.
type Quat struct {
	X, Y, Z, W float32
}

// QuatIdentity returns (0, 0, 0, 1).
func QuatIdentity() Quat { return Quat{0, 0, 0, 1} }

func (q Quat) lanes() lanes { return lanes{q.X, q.Y, q.Z, q.W} }

func quatLanes(l lanes) Quat { return Quat{l[0], l[1], l[2], l[3]} }

// Array returns q as an array view, w last.
func (q Quat) Array() f32.Vec4 { return f32.Vec4{q.X, q.Y, q.Z, q.W} }

func (a Quat) Add(b Quat) Quat { return quatLanes(a.lanes().add(b.lanes())) }

func (a Quat) Sub(b Quat) Quat { return quatLanes(a.lanes().sub(b.lanes())) }

// Div returns the componentwise quotient.
func (a Quat) Div(b Quat) Quat { return quatLanes(a.lanes().div(b.lanes())) }

func (q Quat) Scale(s float32) Quat { return quatLanes(q.lanes().mul(splat(s))) }

// Neg negates every component. The result is the same rotation.
func (q Quat) Neg() Quat { return Quat{-q.X, -q.Y, -q.Z, -q.W} }

func (a Quat) Dot(b Quat) float32 {
	return a.lanes().mul(b.lanes()).hsum()
}

func (q Quat) Len() float32 {
	return math32.Sqrt(q.Dot(q))
}

// Normalize scales q to unit length.
// A zero quaternion becomes the identity, not zero.
func (q *Quat) Normalize() {
	l := q.Len()
	if l != 0 {
		*q = quatLanes(q.lanes().div(splat(l)))
	} else {
		*q = QuatIdentity()
	}
}

// NormalOf returns q scaled to unit length, or the identity.
func (q Quat) NormalOf() Quat {
	q.Normalize()
	return q
}

// NormalOfChecked is NormalOf with a flag that is false when q had zero
// length and the identity was returned.
func (q Quat) NormalOfChecked() (Quat, bool) {
	return q.NormalOf(), q.Len() != 0
}

// QuatMul returns the Hamilton product a·b.
func QuatMul(a, b Quat) Quat {
	return Quat{
		X: float32(a.X*b.W) + float32(a.Y*b.Z) - float32(a.Z*b.Y) + float32(a.W*b.X),
		Y: -float32(a.X*b.Z) + float32(a.Y*b.W) + float32(a.Z*b.X) + float32(a.W*b.Y),
		Z: float32(a.X*b.Y) - float32(a.Y*b.X) + float32(a.Z*b.W) + float32(a.W*b.Z),
		W: -float32(a.X*b.X) - float32(a.Y*b.Y) - float32(a.Z*b.Z) + float32(a.W*b.W),
	}
}

// Mul returns q·r.
func (q Quat) Mul(r Quat) Quat { return QuatMul(q, r) }
