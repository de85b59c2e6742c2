package mathutil

import (
	"math"
	"testing"

	"github.com/chewxy/math32"
)

const eps = 1e-5

func near(a, b, tol float32) bool { return Abs(a-b) <= tol }

func nearVec3(a, b Vec3, tol float32) bool {
	return near(a.X, b.X, tol) && near(a.Y, b.Y, tol) && near(a.Z, b.Z, tol)
}

func TestLenIsSinglePrecision(t *testing.T) {
	for _, v := range [...]Vec3{{1, 1, 1}, {0.3, -0.7, 2.9}, {1e-3, 5e3, -17}} {
		if have, want := v.Len(), math32.Sqrt(v.X*v.X+v.Y*v.Y+v.Z*v.Z); have != want {
			t.Fatalf("Vec3%v.Len()\nhave %v\nwant %v", v, have, want)
		}
	}
	if have, want := (Vec2{5, 12}).Len(), float32(13); have != want {
		t.Fatalf("Vec2.Len()\nhave %v\nwant %v", have, want)
	}
	if have, want := (Vec4{2, 2, 2, 2}).Len(), float32(4); have != want {
		t.Fatalf("Vec4.Len()\nhave %v\nwant %v", have, want)
	}
	if have, want := (Quat{0, 0, 0, 9}).Len(), float32(9); have != want {
		t.Fatalf("Quat.Len()\nhave %v\nwant %v", have, want)
	}
}

func TestVec3Arithmetic(t *testing.T) {
	a, b := Vec3{1, 2, 3}, Vec3{4, 5, 6}
	for _, x := range [...]struct {
		name       string
		have, want Vec3
	}{
		{"Add", a.Add(b), Vec3{5, 7, 9}},
		{"Sub", a.Sub(b), Vec3{-3, -3, -3}},
		{"Mul", a.Mul(b), Vec3{4, 10, 18}},
		{"Div", b.Div(Vec3{2, 5, 3}), Vec3{2, 1, 2}},
		{"Scale", a.Scale(2), Vec3{2, 4, 6}},
		{"DivScalar", b.DivScalar(2), Vec3{2, 2.5, 3}},
		{"Neg", a.Neg(), Vec3{-1, -2, -3}},
		{"Splat3", Splat3(7), Vec3{7, 7, 7}},
	} {
		if x.have != x.want {
			t.Fatalf("Vec3.%s\nhave %v\nwant %v", x.name, x.have, x.want)
		}
	}

	v := a
	v.AddAssign(b)
	v.SubAssign(Vec3{1, 1, 1})
	v.MulAssign(Vec3{2, 2, 2})
	v.ScaleAssign(0.5)
	v.DivAssign(2)
	if want := (Vec3{2, 3, 4}); v != want {
		t.Fatalf("Vec3 compound assignment\nhave %v\nwant %v", v, want)
	}
}

func TestVec3NegZero(t *testing.T) {
	n := Vec3{0, 1, 0}.Neg()
	if math.Signbit(float64(n.X)) || math.Signbit(float64(n.Z)) {
		t.Fatalf("Vec3.Neg produced negative zero: %v", n)
	}
}

func TestVec3Dot(t *testing.T) {
	if d := (Vec3{1, 2, 3}).Dot(Vec3{4, 5, 6}); d != 32 {
		t.Fatalf("Vec3.Dot\nhave %v\nwant 32", d)
	}
	if l := (Vec3{3, 4, 0}).Len(); l != 5 {
		t.Fatalf("Vec3.Len\nhave %v\nwant 5", l)
	}
}

func TestVec3Cross(t *testing.T) {
	x, y, z := Vec3{1, 0, 0}, Vec3{0, 1, 0}, Vec3{0, 0, 1}
	if c := x.Cross(y); c != z {
		t.Fatalf("x × y\nhave %v\nwant %v", c, z)
	}
	if c := y.Cross(z); c != x {
		t.Fatalf("y × z\nhave %v\nwant %v", c, x)
	}
	if c := z.Cross(x); c != y {
		t.Fatalf("z × x\nhave %v\nwant %v", c, y)
	}
	if c := y.Cross(x); c != z.Neg() {
		t.Fatalf("y × x\nhave %v\nwant %v", c, z.Neg())
	}

	a, b := Vec3{1.5, -2, 0.25}, Vec3{-3, 0.5, 4}
	c := a.Cross(b)
	if d := c.Dot(a); !near(d, 0, 1e-4) {
		t.Fatalf("(a × b)·a\nhave %v\nwant 0", d)
	}
	if d := c.Dot(b); !near(d, 0, 1e-4) {
		t.Fatalf("(a × b)·b\nhave %v\nwant 0", d)
	}
	want := Vec3{
		a.Y*b.Z - a.Z*b.Y,
		a.Z*b.X - a.X*b.Z,
		a.X*b.Y - a.Y*b.X,
	}
	if !nearVec3(c, want, eps) {
		t.Fatalf("Vec3.Cross\nhave %v\nwant %v", c, want)
	}
}

func TestVec3Normalize(t *testing.T) {
	for _, v := range [...]Vec3{{3, 4, 0}, {1, 1, 1}, {-0.001, 0.002, 100}} {
		n := v.NormalOf()
		if !near(n.Len(), 1, eps) {
			t.Fatalf("|NormalOf(%v)|\nhave %v\nwant 1", v, n.Len())
		}
		if _, ok := v.NormalOfChecked(); !ok {
			t.Fatalf("NormalOfChecked(%v) reported zero length", v)
		}
	}

	var z Vec3
	z.Normalize()
	if z != (Vec3{}) {
		t.Fatalf("zero Vec3 normalized\nhave %v\nwant 0", z)
	}
	if n, ok := (Vec3{}).NormalOfChecked(); ok || n != (Vec3{}) {
		t.Fatalf("NormalOfChecked(0)\nhave %v, %v\nwant 0, false", n, ok)
	}
}

func TestLinearInterpolation(t *testing.T) {
	a, b := Vec3{0, 10, -2}, Vec3{4, 20, 2}
	if v := LinearInterpolation(a, b, 0); v != a {
		t.Fatalf("Lerp(t=0)\nhave %v\nwant %v", v, a)
	}
	if v := LinearInterpolation(a, b, 1); v != b {
		t.Fatalf("Lerp(t=1)\nhave %v\nwant %v", v, b)
	}
	if v, want := LinearInterpolation(a, b, 0.25), (Vec3{1, 12.5, -1}); v != want {
		t.Fatalf("Lerp(t=0.25)\nhave %v\nwant %v", v, want)
	}
}

func TestSignedVolume(t *testing.T) {
	o := Vec3{}
	x, y, z := Vec3{1, 0, 0}, Vec3{0, 1, 0}, Vec3{0, 0, 1}
	if v := SignedVolume(o, x, y, z); !near(v, 1.0/6.0, eps) {
		t.Fatalf("SignedVolume\nhave %v\nwant %v", v, 1.0/6.0)
	}
	if v := SignedVolume(o, y, x, z); !near(v, -1.0/6.0, eps) {
		t.Fatalf("SignedVolume mirrored\nhave %v\nwant %v", v, -1.0/6.0)
	}
	if v := SignedVolume(o, x, y, Vec3{1, 1, 0}); v != 0 {
		t.Fatalf("SignedVolume coplanar\nhave %v\nwant 0", v)
	}
}

func TestVec2(t *testing.T) {
	a, b := Vec2{1, 2}, Vec2{3, 4}
	if v := a.Add(b); v != (Vec2{4, 6}) {
		t.Fatalf("Vec2.Add\nhave %v\nwant {4 6}", v)
	}
	if v := b.Sub(a); v != (Vec2{2, 2}) {
		t.Fatalf("Vec2.Sub\nhave %v\nwant {2 2}", v)
	}
	if v := a.AddScalar(1); v != (Vec2{2, 3}) {
		t.Fatalf("Vec2.AddScalar\nhave %v\nwant {2 3}", v)
	}
	if d := a.Dot(b); d != 11 {
		t.Fatalf("Vec2.Dot\nhave %v\nwant 11", d)
	}
	if l := b.Len(); l != 5 {
		t.Fatalf("Vec2.Len\nhave %v\nwant 5", l)
	}
	if n := (Vec2{}).NormalOf(); n != (Vec2{}) {
		t.Fatalf("zero Vec2 normalized\nhave %v\nwant 0", n)
	}

	v := a
	v.AddAssign(b)
	v.MulAssign(Vec2{2, 0.5})
	v.SubAssign(Vec2{1, 1})
	if v != (Vec2{7, 2}) {
		t.Fatalf("Vec2 compound assignment\nhave %v\nwant {7 2}", v)
	}
}

func TestRotateAroundPoint(t *testing.T) {
	// A quarter turn clockwise moves +y onto +x.
	r := RotateAroundPoint(Vec2{0, 1}, Vec2{}, HalfPi)
	if !near(r.X, 1, eps) || !near(r.Y, 0, eps) {
		t.Fatalf("RotateAroundPoint\nhave %v\nwant {1 0}", r)
	}
	p := Vec2{2, 2}
	r = RotateAroundPoint(Vec2{2, 3}, p, Pi)
	if !near(r.X, 2, eps) || !near(r.Y, 1, eps) {
		t.Fatalf("RotateAroundPoint around %v\nhave %v\nwant {2 1}", p, r)
	}
}

func TestVec4(t *testing.T) {
	a := Vec4{1, 2, 3, 4}
	if d := a.Dot(Vec4{5, 6, 7, 8}); d != 70 {
		t.Fatalf("Vec4.Dot\nhave %v\nwant 70", d)
	}
	if a.XY() != (Vec2{1, 2}) || a.ZW() != (Vec2{3, 4}) || a.XYZ() != (Vec3{1, 2, 3}) {
		t.Fatalf("Vec4 swizzle of %v: %v %v %v", a, a.XY(), a.ZW(), a.XYZ())
	}
	if v := V4(Vec3{1, 2, 3}, 4); v != a {
		t.Fatalf("V4\nhave %v\nwant %v", v, a)
	}
	if v := a.Sub(Splat4(1)).Scale(2); v != (Vec4{0, 2, 4, 6}) {
		t.Fatalf("Vec4.Sub.Scale\nhave %v\nwant {0 2 4 6}", v)
	}
	if v := a.Div(Vec4{1, 2, 3, 4}); v != Splat4(1) {
		t.Fatalf("Vec4.Div\nhave %v\nwant all ones", v)
	}
	if l := (Vec4{1, 1, 1, 1}).NormalOf().Len(); !near(l, 1, eps) {
		t.Fatalf("|Vec4.NormalOf|\nhave %v\nwant 1", l)
	}
	if n := (Vec4{}).NormalOf(); n != (Vec4{}) {
		t.Fatalf("zero Vec4 normalized\nhave %v\nwant 0", n)
	}
	arr := a.Array()
	if arr[0] != 1 || arr[3] != 4 {
		t.Fatalf("Vec4.Array\nhave %v\nwant [1 2 3 4]", arr)
	}
}

func TestHorizontalSum(t *testing.T) {
	// (a0+a1)+(a2+a3) differs from a left fold for these inputs.
	l := lanes{1e8, 1, -1e8, 1}
	if s := l.hsum(); s != 0 {
		t.Fatalf("hsum\nhave %v\nwant 0", s)
	}
	if s := l[0] + l[1] + l[2] + l[3]; s != 1 {
		t.Fatalf("left fold\nhave %v\nwant 1", s)
	}
}
