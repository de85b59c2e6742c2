package mathutil

import (
	"math"

	"github.com/chewxy/math32"
	"golang.org/x/image/math/f32"
)

// Vec2 is a 2-component vector.
type Vec2 struct {
	X, Y float32
}

// Array returns v as an array view.
func (v Vec2) Array() f32.Vec2 { return f32.Vec2{v.X, v.Y} }

func (a Vec2) Add(b Vec2) Vec2 { return Vec2{a.X + b.X, a.Y + b.Y} }

func (a Vec2) Sub(b Vec2) Vec2 { return Vec2{a.X - b.X, a.Y - b.Y} }

// Mul returns the componentwise product.
func (a Vec2) Mul(b Vec2) Vec2 { return Vec2{a.X * b.X, a.Y * b.Y} }

// Div returns the componentwise quotient.
func (a Vec2) Div(b Vec2) Vec2 { return Vec2{a.X / b.X, a.Y / b.Y} }

func (v Vec2) Scale(s float32) Vec2 { return Vec2{v.X * s, v.Y * s} }

func (v Vec2) AddScalar(s float32) Vec2 { return Vec2{v.X + s, v.Y + s} }

func (v Vec2) Neg() Vec2 { return Vec2{-v.X, -v.Y} }

func (v *Vec2) AddAssign(a Vec2) {
	v.X += a.X
	v.Y += a.Y
}

func (v *Vec2) SubAssign(a Vec2) {
	v.X -= a.X
	v.Y -= a.Y
}

func (v *Vec2) MulAssign(a Vec2) {
	v.X *= a.X
	v.Y *= a.Y
}

func (a Vec2) Dot(b Vec2) float32 {
	return float32(a.X*b.X) + float32(a.Y*b.Y)
}

func (v Vec2) Len() float32 {
	return math32.Sqrt(v.Dot(v))
}

// Normalize scales v to unit length. A zero vector stays zero.
func (v *Vec2) Normalize() {
	l := v.Len()
	if l != 0 {
		v.X /= l
		v.Y /= l
	} else {
		*v = Vec2{}
	}
}

// NormalOf returns v scaled to unit length, or the zero vector.
func (v Vec2) NormalOf() Vec2 {
	v.Normalize()
	return v
}

// RotateAroundPoint rotates v clockwise by angle radians around p.
func RotateAroundPoint(v, p Vec2, angle float32) Vec2 {
	v.SubAssign(p)
	s := float32(math.Sin(float64(-angle)))
	c := float32(math.Cos(float64(-angle)))
	n := Vec2{float32(v.X*c) - float32(v.Y*s), float32(v.X*s) + float32(v.Y*c)}
	return n.Add(p)
}
