package mathutil

import (
	"math"
	"testing"
)

func TestWrap(t *testing.T) {
	for _, x := range [...]struct {
		v, min, max, want int32
	}{
		{-1, 0, 10, 9},
		{11, 0, 10, 1},
		{0, 0, 10, 0},
		{10, 0, 10, 0},
		{-10, 0, 10, 0},
		{-21, 0, 10, 9},
		{7, 5, 8, 7},
		{8, 5, 8, 5},
		{4, 5, 8, 7},
		{5, 3, 3, 3},
		{-7, 3, 3, 3},
		{0, 4, 2, 4},
	} {
		if w := Wrap(x.v, x.min, x.max); w != x.want {
			t.Fatalf("Wrap(%d, %d, %d)\nhave %d\nwant %d", x.v, x.min, x.max, w, x.want)
		}
	}
	for v := int32(-100); v <= 100; v++ {
		if w := Wrap(v, -3, 4); w < -3 || w >= 4 {
			t.Fatalf("Wrap(%d, -3, 4)\nhave %d\nwant [-3, 4)", v, w)
		}
	}
}

func TestMap(t *testing.T) {
	if x := Map(5, 0, 10, 0, 100); x != 50 {
		t.Fatalf("Map\nhave %v\nwant 50", x)
	}
	if x := Map(0, 0, 10, -1, 1); x != -1 {
		t.Fatalf("Map\nhave %v\nwant -1", x)
	}
	if x := Map(1, 1, 1, 0, 1); !math.IsNaN(float64(x)) && !math.IsInf(float64(x), 0) {
		t.Fatalf("Map with empty source range\nhave %v\nwant NaN or Inf", x)
	}
}

func TestXorshift(t *testing.T) {
	if x := Xorshift(1); x != 1082269761 {
		t.Fatalf("Xorshift(1)\nhave %d\nwant 1082269761", x)
	}
	if x := Xorshift(0xdeadbeef); x != 352763474 {
		t.Fatalf("Xorshift(0xdeadbeef)\nhave %d\nwant 352763474", x)
	}
	if Xorshift(0) != 0 {
		t.Fatal("Xorshift(0) must stay 0")
	}
	x := uint32(12345)
	for i := 0; i < 1000; i++ {
		y := Xorshift(x)
		if y != Xorshift(x) {
			t.Fatalf("Xorshift(%d) is not deterministic", x)
		}
		if y == 0 {
			t.Fatalf("Xorshift(%d) returned 0", x)
		}
		x = y
	}
}

func TestSine(t *testing.T) {
	if x := Sine(0); x != 0 {
		t.Fatalf("Sine(0)\nhave %v\nwant 0", x)
	}
	for v := float32(-10); v < 10; v += 0.05 {
		s := Sine(v)
		if d := math.Abs(float64(s) - math.Sin(float64(v))); d > 0.06 {
			t.Fatalf("Sine(%v)\nhave %v\nwant %v ± 0.06", v, s, math.Sin(float64(v)))
		}
		c := Cosine(v)
		if d := math.Abs(float64(c) - math.Cos(float64(v))); d > 0.06 {
			t.Fatalf("Cosine(%v)\nhave %v\nwant %v ± 0.06", v, c, math.Cos(float64(v)))
		}
		if d := Abs(Sine(v+Tau) - s); d > 1e-4 {
			t.Fatalf("Sine(%v + 2π)\nhave %v\nwant %v", v, Sine(v+Tau), s)
		}
	}
}

func TestAbs(t *testing.T) {
	negZero := float32(math.Copysign(0, -1))
	for _, x := range [...][2]float32{
		{-3, 3},
		{3, 3},
		{negZero, 0},
		{float32(math.Inf(-1)), float32(math.Inf(1))},
	} {
		if a := Abs(x[0]); a != x[1] || math.Signbit(float64(a)) {
			t.Fatalf("Abs(%v)\nhave %v\nwant %v", x[0], a, x[1])
		}
	}
}

func TestClamp(t *testing.T) {
	for _, x := range [...][4]float32{
		{-2, -1, 1, -1},
		{2, -1, 1, 1},
		{0.5, -1, 1, 0.5},
	} {
		if c := Clamp(x[0], x[1], x[2]); c != x[3] {
			t.Fatalf("Clamp(%v, %v, %v)\nhave %v\nwant %v", x[0], x[1], x[2], c, x[3])
		}
	}
}

func TestCubicInterpolation(t *testing.T) {
	if x := CubicInterpolation(0, 1, 2, 3, 0); x != 1 {
		t.Fatalf("CubicInterpolation(t=0)\nhave %v\nwant 1", x)
	}
	if x := CubicInterpolation(0, 1, 2, 3, 1); Abs(x-2) > 1e-6 {
		t.Fatalf("CubicInterpolation(t=1)\nhave %v\nwant 2", x)
	}
	if x := CubicInterpolation(0, 1, 2, 3, 0.5); Abs(x-1.5) > 1e-6 {
		t.Fatalf("CubicInterpolation(t=0.5)\nhave %v\nwant 1.5", x)
	}
}
