package mathutil

import (
	"github.com/chewxy/math32"
	"golang.org/x/image/math/f32"
)

// Vec4 is a 4-component vector.
type Vec4 struct {
	X, Y, Z, W float32
}

// Splat4 returns a Vec4 with every component set to a.
func Splat4(a float32) Vec4 { return Vec4{a, a, a, a} }

// V4 extends v with w.
func V4(v Vec3, w float32) Vec4 { return Vec4{v.X, v.Y, v.Z, w} }

func (v Vec4) lanes() lanes { return lanes{v.X, v.Y, v.Z, v.W} }

func vec4Lanes(l lanes) Vec4 { return Vec4{l[0], l[1], l[2], l[3]} }

// Array returns v as an array view.
func (v Vec4) Array() f32.Vec4 { return f32.Vec4{v.X, v.Y, v.Z, v.W} }

func (v Vec4) XY() Vec2 { return Vec2{v.X, v.Y} }

func (v Vec4) ZW() Vec2 { return Vec2{v.Z, v.W} }

func (v Vec4) XYZ() Vec3 { return Vec3{v.X, v.Y, v.Z} }

func (a Vec4) Add(b Vec4) Vec4 { return vec4Lanes(a.lanes().add(b.lanes())) }

func (a Vec4) Sub(b Vec4) Vec4 { return vec4Lanes(a.lanes().sub(b.lanes())) }

// Mul returns the componentwise product.
func (a Vec4) Mul(b Vec4) Vec4 { return vec4Lanes(a.lanes().mul(b.lanes())) }

// Div returns the componentwise quotient.
func (a Vec4) Div(b Vec4) Vec4 { return vec4Lanes(a.lanes().div(b.lanes())) }

func (v Vec4) Scale(s float32) Vec4 { return vec4Lanes(v.lanes().mul(splat(s))) }

func (v Vec4) DivScalar(s float32) Vec4 { return vec4Lanes(v.lanes().div(splat(s))) }

// Neg returns 0 - v.
func (v Vec4) Neg() Vec4 { return vec4Lanes(splat(0).sub(v.lanes())) }

func (v *Vec4) AddAssign(a Vec4) { *v = v.Add(a) }

func (v *Vec4) SubAssign(a Vec4) { *v = v.Sub(a) }

func (v *Vec4) MulAssign(a Vec4) { *v = v.Mul(a) }

// Dot returns (a.x·b.x + a.y·b.y) + (a.z·b.z + a.w·b.w).
func (a Vec4) Dot(b Vec4) float32 {
	return a.lanes().mul(b.lanes()).hsum()
}

func (v Vec4) Len() float32 {
	return math32.Sqrt(v.Dot(v))
}

// Normalize scales v to unit length. A zero vector stays zero.
func (v *Vec4) Normalize() {
	l := v.Len()
	if l != 0 {
		*v = v.DivScalar(l)
	} else {
		*v = Vec4{}
	}
}

// NormalOf returns v scaled to unit length, or the zero vector.
func (v Vec4) NormalOf() Vec4 {
	v.Normalize()
	return v
}
