package skeleton

import (
	"errors"
	"testing"

	"github.com/shorkiesoftware/D3D12-Examples/internal/mathutil"
)

func near(a, b, tol float32) bool { return mathutil.Abs(a-b) <= tol }

func nearVec3(a, b mathutil.Vec3, tol float32) bool {
	return near(a.X, b.X, tol) && near(a.Y, b.Y, tol) && near(a.Z, b.Z, tol)
}

// chain returns n bones, each one unit above its parent.
func chain(n int) *Skeleton {
	s := New(n)
	for i := 1; i < n; i++ {
		s.Positions[i] = mathutil.Vec3{Y: 1}
		s.ParentIndices[i] = uint32(i - 1)
	}
	return s
}

func TestUpdateGlobalPositions(t *testing.T) {
	s := chain(3)
	s.UpdateGlobalPositions()
	for i, want := range [...]mathutil.Vec3{{}, {Y: 1}, {Y: 2}} {
		if p := mathutil.Position(&s.GlobalPositions[i]); p != want {
			t.Fatalf("bone %d world position\nhave %v\nwant %v", i, p, want)
		}
	}

	s.Positions[0] = mathutil.Vec3{X: 5}
	s.Orientations[0] = mathutil.RotationToQuaternion(mathutil.Vec3{Z: 1}, mathutil.HalfPi)
	s.UpdateGlobalPositions()
	if p, want := mathutil.Position(&s.GlobalPositions[2]), (mathutil.Vec3{X: 3}); !nearVec3(p, want, 1e-5) {
		t.Fatalf("bone 2 under rotated root\nhave %v\nwant %v", p, want)
	}
}

func TestUpdateGlobalPositionsBranching(t *testing.T) {
	s := New(4)
	s.Positions[1] = mathutil.Vec3{X: 1}
	s.Positions[2] = mathutil.Vec3{Y: 1}
	s.Positions[3] = mathutil.Vec3{Z: 1}
	s.ParentIndices[1] = 0
	s.ParentIndices[2] = 1
	s.ParentIndices[3] = 1
	if err := s.UpdateGlobalPositionsChecked(); err != nil {
		t.Fatalf("UpdateGlobalPositionsChecked: %v", err)
	}
	if p := mathutil.Position(&s.GlobalPositions[3]); p != (mathutil.Vec3{X: 1, Z: 1}) {
		t.Fatalf("bone 3\nhave %v\nwant {1 0 1}", p)
	}
}

func TestValidate(t *testing.T) {
	if err := chain(3).Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}

	bad := chain(3)
	bad.ParentIndices[1] = 2
	if err := bad.Validate(); !errors.Is(err, ErrParentOrder) {
		t.Fatalf("Validate forward parent\nhave %v\nwant %v", err, ErrParentOrder)
	}
	if err := bad.UpdateGlobalPositionsChecked(); !errors.Is(err, ErrParentOrder) {
		t.Fatalf("UpdateGlobalPositionsChecked forward parent\nhave %v\nwant %v", err, ErrParentOrder)
	}

	if err := New(MaxBones + 1).Validate(); !errors.Is(err, ErrTooManyBones) {
		t.Fatalf("Validate %d bones\nhave %v\nwant %v", MaxBones+1, err, ErrTooManyBones)
	}
	if err := New(MaxBones + 1).UpdateGlobalPositionsChecked(); !errors.Is(err, ErrTooManyBones) {
		t.Fatalf("UpdateGlobalPositionsChecked %d bones\nhave %v\nwant %v", MaxBones+1, err, ErrTooManyBones)
	}
	if err := New(0).Validate(); !errors.Is(err, ErrEmpty) {
		t.Fatalf("Validate empty\nhave %v\nwant %v", err, ErrEmpty)
	}

	short := chain(3)
	short.Orientations = short.Orientations[:2]
	if err := short.Validate(); !errors.Is(err, ErrLength) {
		t.Fatalf("Validate short orientations\nhave %v\nwant %v", err, ErrLength)
	}

	if err := chain(5).ValidateChain(0); !errors.Is(err, ErrChain) {
		t.Fatalf("ValidateChain with default bones 6/7\nhave %v\nwant %v", err, ErrChain)
	}
	c := chain(5)
	c.IK = &IKChain{Upper: 2, Lower: 3}
	if err := c.ValidateChain(2); err != nil {
		t.Fatalf("ValidateChain: %v", err)
	}
	if err := c.ValidateChain(3); !errors.Is(err, ErrChain) {
		t.Fatalf("ValidateChain past the end\nhave %v\nwant %v", err, ErrChain)
	}
}

func TestSkinningMatrices(t *testing.T) {
	s := chain(3)
	s.UpdateGlobalPositions()
	s.BindPose()
	pal := s.SkinningMatrices(nil)
	if len(pal) != 3 {
		t.Fatalf("SkinningMatrices length\nhave %d\nwant 3", len(pal))
	}
	for i, m := range pal {
		for k := range m {
			if !near(m[k], mathutil.Identity()[k], 1e-6) {
				t.Fatalf("bind pose palette %d\nhave %v\nwant identity", i, m)
			}
		}
	}

	// Bend the middle joint and skin a point sitting on bone 2.
	s.Orientations[1] = mathutil.RotationToQuaternion(mathutil.Vec3{Z: 1}, -mathutil.HalfPi)
	s.UpdateGlobalPositions()
	pal = s.SkinningMatrices(pal)
	pts := []mathutil.Vec3{{Y: 2}, {Y: 0.5}, {Y: 9}}
	SkinVertices(pts, []uint32{2, 0, 7}, pal)
	if want := (mathutil.Vec3{X: 1, Y: 1}); !nearVec3(pts[0], want, 1e-5) {
		t.Fatalf("skinned point on bone 2\nhave %v\nwant %v", pts[0], want)
	}
	if want := (mathutil.Vec3{Y: 0.5}); !nearVec3(pts[1], want, 1e-6) {
		t.Fatalf("skinned point on root\nhave %v\nwant %v", pts[1], want)
	}
	if want := (mathutil.Vec3{Y: 9}); pts[2] != want {
		t.Fatalf("point with unknown bone\nhave %v\nwant %v", pts[2], want)
	}
}

func TestClone(t *testing.T) {
	s := chain(3)
	s.IK = &IKChain{Upper: 0, Lower: 1}
	c := s.Clone()
	c.Positions[1].X = 4
	c.IK.Upper = 1
	if s.Positions[1].X != 0 || s.IK.Upper != 0 {
		t.Fatal("Clone shares state with the original")
	}
}
