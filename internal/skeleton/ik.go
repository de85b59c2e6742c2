package skeleton

import (
	"math"

	"github.com/shorkiesoftware/D3D12-Examples/internal/mathutil"
)

// IKChain names the two bones a target solve rotates and the axes it
// rotates them around.
type IKChain struct {
	Upper     int           // swung toward the target, then bent
	Lower     int           // bent only
	SwingAxis mathutil.Vec3 // vertical turn applied to Upper
	BendAxis  mathutil.Vec3 // in-plane bend for both bones
}

// DefaultIKChain is the arm chain of the demo rig.
var DefaultIKChain = IKChain{
	Upper:     6,
	Lower:     7,
	SwingAxis: mathutil.Vec3{X: 0, Y: 1, Z: 0},
	BendAxis:  mathutil.Vec3{X: 0, Y: 0, Z: 1},
}

func (s *Skeleton) ikChain() IKChain {
	if s.IK != nil {
		return *s.IK
	}
	return DefaultIKChain
}

func atan2(y, x float32) float32 { return float32(math.Atan2(float64(y), float64(x))) }

// UpdatePositionsWithTarget solves the chain boneIndex → boneIndex+1 →
// boneIndex+2 so that its end reaches target, then recomputes every world
// transform. Segment lengths come from the current GlobalPositions, so
// UpdateGlobalPositions must have run at least once.
//
// The solve works in the plane containing the target after undoing the
// turn around the swing axis. offset shifts the chain base before the
// target difference is taken. An out-of-reach target fully extends the
// chain toward it.
//
// The bone at boneIndex keeps its local rotation in world space: only the
// translation it would inherit from its parent is applied.
func (s *Skeleton) UpdatePositionsWithTarget(target, offset mathutil.Vec3, boneIndex int) {
	ik := s.ikChain()
	bip1 := boneIndex + 1
	bip2 := boneIndex + 2

	ll1 := mathutil.Position(&s.GlobalPositions[bip1]).Sub(mathutil.Position(&s.GlobalPositions[boneIndex])).Len()
	ll2 := mathutil.Position(&s.GlobalPositions[bip2]).Sub(mathutil.Position(&s.GlobalPositions[bip1])).Len()
	gp := mathutil.Position(&s.GlobalPositions[boneIndex])
	dif := target.Sub(gp.Sub(offset))
	q0 := atan2(dif.Z, dif.X)

	base := s.Positions[boneIndex]
	dif2 := mathutil.RotateAroundPoint(
		mathutil.Vec2{X: target.X, Y: target.Z},
		mathutil.Vec2{X: base.X, Y: base.Z},
		q0,
	)
	d2 := float32(dif2.X*dif2.X) + float32(dif.Y*dif.Y)
	// Law of cosines; the denominator uses the upper length twice, which is
	// exact only for equal segment lengths.
	lt2 := 2 * ll1 * ll1
	cosA := mathutil.Clamp((d2-float32(ll1*ll1)-float32(ll2*ll2))/lt2, -1, 1)
	q2 := -float32(math.Acos(float64(cosA)))
	sq2 := float32(math.Sin(float64(q2)))
	cq2 := float32(math.Cos(float64(q2)))
	q1 := atan2(dif2.X, dif.Y) - atan2(ll2*sq2, ll1+float32(ll2*cq2))

	s.Orientations[ik.Upper] = mathutil.RotationToQuaternion(ik.SwingAxis, -q0)
	mathutil.Rotate(&s.Orientations[ik.Upper], ik.BendAxis, -q1)
	s.Orientations[ik.Lower] = mathutil.RotationToQuaternion(ik.BendAxis, -q2)

	n := s.Len()
	var parents [MaxBones]mathutil.Mat4
	s.GlobalPositions[0] = s.localTransform(0)
	parents[0] = s.GlobalPositions[0]
	for i := 1; i < n; i++ {
		pi := s.ParentIndices[i]
		if i != boneIndex {
			s.GlobalPositions[i] = mathutil.Mul(parents[pi], s.localTransform(i))
		} else {
			tm := mathutil.Mul(parents[pi], s.localTransform(i))
			s.GlobalPositions[i] = s.localTransform(i)
			s.GlobalPositions[i][12] = tm[12]
			s.GlobalPositions[i][13] = tm[13]
			s.GlobalPositions[i][14] = tm[14]
		}
		parents[i] = s.GlobalPositions[i]
	}
}
