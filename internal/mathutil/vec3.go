package mathutil

import (
	"github.com/chewxy/math32"
	"golang.org/x/image/math/f32"
)

// Vec3 is a 3-component vector (value type, stack-allocated).
// Arithmetic runs on a 4-lane register whose last lane is zero.
type Vec3 struct {
	X, Y, Z float32
}

// Splat3 returns a Vec3 with every component set to a.
func Splat3(a float32) Vec3 { return Vec3{a, a, a} }

func (v Vec3) lanes() lanes { return lanes{v.X, v.Y, v.Z, 0} }

func vec3Lanes(l lanes) Vec3 { return Vec3{l[0], l[1], l[2]} }

// Array returns v as an array view.
func (v Vec3) Array() f32.Vec3 { return f32.Vec3{v.X, v.Y, v.Z} }

func (a Vec3) Add(b Vec3) Vec3 { return vec3Lanes(a.lanes().add(b.lanes())) }

func (a Vec3) Sub(b Vec3) Vec3 { return vec3Lanes(a.lanes().sub(b.lanes())) }

// Mul returns the componentwise product.
func (a Vec3) Mul(b Vec3) Vec3 { return vec3Lanes(a.lanes().mul(b.lanes())) }

// Div returns the componentwise quotient.
func (a Vec3) Div(b Vec3) Vec3 { return vec3Lanes(a.lanes().div(b.lanes())) }

func (v Vec3) Scale(s float32) Vec3 { return vec3Lanes(v.lanes().mul(splat(s))) }

func (v Vec3) DivScalar(s float32) Vec3 { return vec3Lanes(v.lanes().div(splat(s))) }

// Neg returns 0 - v, so zero components stay positive zero.
func (v Vec3) Neg() Vec3 { return vec3Lanes(splat(0).sub(v.lanes())) }

func (v *Vec3) AddAssign(a Vec3) { *v = v.Add(a) }

func (v *Vec3) SubAssign(a Vec3) { *v = v.Sub(a) }

func (v *Vec3) MulAssign(a Vec3) { *v = v.Mul(a) }

func (v *Vec3) ScaleAssign(s float32) { *v = v.Scale(s) }

func (v *Vec3) DivAssign(s float32) { *v = v.DivScalar(s) }

func (a Vec3) Dot(b Vec3) float32 {
	return float32(a.X*b.X) + float32(a.Y*b.Y) + float32(a.Z*b.Z)
}

// Len returns the Euclidean length, summed horizontally over the lanes.
func (v Vec3) Len() float32 {
	l := v.lanes()
	return math32.Sqrt(l.mul(l).hsum())
}

// Normalize scales v to unit length. A zero vector stays zero.
func (v *Vec3) Normalize() {
	l := v.Len()
	if l != 0 {
		v.X /= l
		v.Y /= l
		v.Z /= l
	} else {
		*v = Vec3{}
	}
}

// NormalOf returns v scaled to unit length, or the zero vector.
func (v Vec3) NormalOf() Vec3 {
	v.Normalize()
	return v
}

// NormalOfChecked is NormalOf with a flag that is false when v had zero
// length and the zero vector was returned.
func (v Vec3) NormalOfChecked() (Vec3, bool) {
	return v.NormalOf(), v.Len() != 0
}

// Cross returns the right-handed cross product a × b.
func (a Vec3) Cross(b Vec3) Vec3 {
	al, bl := a.lanes(), b.lanes()
	t0 := al.shuffle(1, 2, 0, 3)
	t1 := bl.shuffle(2, 0, 1, 3)
	t2 := t0.mul(bl)
	t3 := t0.mul(t1)
	t4 := t2.shuffle(1, 2, 0, 3)
	return vec3Lanes(t3.sub(t4))
}

// LinearInterpolation returns a + (b-a)·t.
func LinearInterpolation(a, b Vec3, t float32) Vec3 {
	return Vec3{
		a.X + float32((b.X-a.X)*t),
		a.Y + float32((b.Y-a.Y)*t),
		a.Z + float32((b.Z-a.Z)*t),
	}
}

// SignedVolume returns the signed volume of the tetrahedron abcd.
func SignedVolume(a, b, c, d Vec3) float32 {
	return float32(1.0 / 6.0 * float64(b.Sub(a).Cross(c.Sub(a)).Dot(d.Sub(a))))
}
