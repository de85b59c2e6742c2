package camera

import (
	"testing"

	"github.com/shorkiesoftware/D3D12-Examples/internal/mathutil"
)

func near(a, b, tol float32) bool { return mathutil.Abs(a-b) <= tol }

func nearVec3(a, b mathutil.Vec3, tol float32) bool {
	return near(a.X, b.X, tol) && near(a.Y, b.Y, tol) && near(a.Z, b.Z, tol)
}

func nearMat4(a, b mathutil.Mat4, tol float32) bool {
	for i := range a {
		if !near(a[i], b[i], tol) {
			return false
		}
	}
	return true
}

func TestNew(t *testing.T) {
	c := New()
	if c.View != mathutil.Identity() || c.Projection != mathutil.Identity() {
		t.Fatalf("New view/projection\nhave %v %v\nwant identity", c.View, c.Projection)
	}
	if c.Orientation != mathutil.QuatIdentity() || c.Position != (mathutil.Vec3{}) {
		t.Fatalf("New orientation/position\nhave %v %v", c.Orientation, c.Position)
	}
	if c.Forward != (mathutil.Vec3{Z: 1}) || c.Up != (mathutil.Vec3{Y: 1}) || c.Right != (mathutil.Vec3{X: 1}) {
		t.Fatalf("New basis\nhave %v %v %v", c.Forward, c.Up, c.Right)
	}
}

func TestLookAt(t *testing.T) {
	c := New()
	c.LookAtDefault(mathutil.Vec3{Z: 5}, mathutil.Vec3{})
	want := mathutil.Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, -5, 1,
	}
	if c.View != want {
		t.Fatalf("Camera.LookAt view\nhave %v\nwant %v", c.View, want)
	}
	if c.Forward != (mathutil.Vec3{Z: -1}) {
		t.Fatalf("Camera.LookAt forward\nhave %v\nwant {0 0 -1}", c.Forward)
	}
	if d := c.Orientation.Dot(mathutil.QuatIdentity()); !near(mathutil.Abs(d), 1, 1e-6) {
		t.Fatalf("Camera.LookAt orientation\nhave %v\nwant identity", c.Orientation)
	}

	// The free function keeps forward.z as is; the camera negates it.
	free := mathutil.LookAtDefault(mathutil.Vec3{Z: 5}, mathutil.Vec3{})
	if free[10] != -c.View[10] {
		t.Fatalf("free LookAt m[10] = %v, camera m[10] = %v", free[10], c.View[10])
	}
}

func TestLookAtMatchesUpdateView(t *testing.T) {
	for _, x := range [...]struct{ pos, target mathutil.Vec3 }{
		{mathutil.Vec3{X: 3, Y: 4, Z: -2}, mathutil.Vec3{X: -1, Z: 1}},
		{mathutil.Vec3{X: -6, Y: 1, Z: 6}, mathutil.Vec3{Y: 1}},
		{mathutil.Vec3{Y: 2, Z: 8}, mathutil.Vec3{X: 0.5, Y: 1}},
	} {
		c := New()
		c.LookAtDefault(x.pos, x.target)
		looked, forward := c.View, c.Forward
		c.UpdateView()
		if !nearMat4(c.View, looked, 1e-4) {
			t.Fatalf("UpdateView after LookAt(%v, %v)\nhave %v\nwant %v", x.pos, x.target, c.View, looked)
		}
		if !nearVec3(c.Forward, forward, 1e-5) {
			t.Fatalf("forward after UpdateView\nhave %v\nwant %v", c.Forward, forward)
		}
	}
}

func TestUpdateViewProjection(t *testing.T) {
	c := New()
	c.SetPerspective(60, 4.0/3.0, 0.1, 100)
	c.Position = mathutil.Vec3{X: 1, Y: 2, Z: 3}
	c.UpdateView()
	raw := mathutil.Identity()
	mathutil.TranslateMatrix(&raw, mathutil.Vec3{X: -1, Y: -2, Z: -3})
	if want := mathutil.Mul(c.Projection, raw); c.View != want {
		t.Fatalf("UpdateView with projection\nhave %v\nwant %v", c.View, want)
	}
	if c.Forward != (mathutil.Vec3{Z: -1}) {
		t.Fatalf("identity forward\nhave %v\nwant {0 0 -1}", c.Forward)
	}

	c.SetOrthographic(-1, 1, -1, 1, 0.1, 10)
	c.UpdateView()
	if c.View[0] != 1 || c.View[5] != 1 {
		t.Fatalf("ortho view scale\nhave %v %v\nwant 1 1", c.View[0], c.View[5])
	}
}

func TestRotate(t *testing.T) {
	c := New()
	c.Rotate(mathutil.Vec3{Y: 1}, mathutil.HalfPi)
	if !nearVec3(c.Forward, mathutil.Vec3{X: 1}, 1e-6) {
		t.Fatalf("forward after a quarter turn\nhave %v\nwant {1 0 0}", c.Forward)
	}
	if !nearVec3(c.Right, mathutil.Vec3{Z: 1}, 1e-6) {
		t.Fatalf("right after a quarter turn\nhave %v\nwant {0 0 1}", c.Right)
	}
	if !nearVec3(c.Up, mathutil.Vec3{Y: 1}, 1e-6) {
		t.Fatalf("up after a quarter turn\nhave %v\nwant {0 1 0}", c.Up)
	}
}

func TestLook(t *testing.T) {
	c := New()
	c.MouseSensitivity = 0.5
	c.Look(2, 0)
	if !nearVec3(c.Up, mathutil.Vec3{Y: 1}, 1e-6) {
		t.Fatalf("yaw changed up\nhave %v", c.Up)
	}
	c.Look(0, 0.4)
	if near(c.Up.Y, 1, 1e-3) {
		t.Fatalf("pitch left up unchanged: %v", c.Up)
	}
	if !near(c.Right.Y, 0, 1e-6) {
		t.Fatalf("pitch tilted right\nhave %v", c.Right)
	}
}

func TestMove(t *testing.T) {
	c := New()
	c.UpdateView()
	c.MoveSpeed = 2
	c.Move(mathutil.Vec3{X: 1, Z: 1})
	if want := (mathutil.Vec3{X: 2, Z: -2}); c.Position != want {
		t.Fatalf("Move\nhave %v\nwant %v", c.Position, want)
	}
	if p := mathutil.Position(&c.View); p != (mathutil.Vec3{X: -2, Z: 2}) {
		t.Fatalf("view translation after Move\nhave %v\nwant {-2 0 2}", p)
	}
}

func TestClone(t *testing.T) {
	c := New()
	d := c.Clone()
	d.Position.X = 3
	if c.Position.X != 0 {
		t.Fatal("Clone shares state")
	}
}
