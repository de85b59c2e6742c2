// Package skeleton computes world transforms for a bone hierarchy and
// solves a two-bone inverse kinematics chain on top of it.
package skeleton

import "github.com/shorkiesoftware/D3D12-Examples/internal/mathutil"

// MaxBones is the size of the per-update parent scratch.
const MaxBones = 32

// Skeleton holds per-bone local transforms and the world transforms
// derived from them. Bone 0 is the root and every other bone's parent
// precedes it (ParentIndices[i] < i).
//
// A Skeleton is not safe for concurrent use. Clone it per goroutine.
type Skeleton struct {
	InverseBindTransforms []mathutil.Mat4
	GlobalPositions       []mathutil.Mat4
	Orientations          []mathutil.Quat
	Positions             []mathutil.Vec3
	ParentIndices         []uint32

	// IK selects the bones and axes written by UpdatePositionsWithTarget.
	// Nil means DefaultIKChain.
	IK *IKChain
}

// New returns a skeleton of n bones at the origin with identity
// orientations and identity inverse bind transforms.
func New(n int) *Skeleton {
	s := &Skeleton{
		InverseBindTransforms: make([]mathutil.Mat4, n),
		GlobalPositions:       make([]mathutil.Mat4, n),
		Orientations:          make([]mathutil.Quat, n),
		Positions:             make([]mathutil.Vec3, n),
		ParentIndices:         make([]uint32, n),
	}
	for i := 0; i < n; i++ {
		s.InverseBindTransforms[i] = mathutil.Identity()
		s.GlobalPositions[i] = mathutil.Identity()
		s.Orientations[i] = mathutil.QuatIdentity()
	}
	return s
}

// Len returns the number of bones.
func (s *Skeleton) Len() int { return len(s.Positions) }

// Clone returns a deep copy of s.
func (s *Skeleton) Clone() *Skeleton {
	c := &Skeleton{
		InverseBindTransforms: append([]mathutil.Mat4(nil), s.InverseBindTransforms...),
		GlobalPositions:       append([]mathutil.Mat4(nil), s.GlobalPositions...),
		Orientations:          append([]mathutil.Quat(nil), s.Orientations...),
		Positions:             append([]mathutil.Vec3(nil), s.Positions...),
		ParentIndices:         append([]uint32(nil), s.ParentIndices...),
	}
	if s.IK != nil {
		ik := *s.IK
		c.IK = &ik
	}
	return c
}

func (s *Skeleton) localTransform(i int) mathutil.Mat4 {
	return mathutil.BuildModelMatrix(s.Positions[i], mathutil.Splat3(1), s.Orientations[i])
}

// UpdateGlobalPositions recomputes GlobalPositions from the local
// positions and orientations. The bone order precondition is not checked,
// and a skeleton with more than MaxBones bones panics. Use
// UpdateGlobalPositionsChecked for rigs that have not been validated.
func (s *Skeleton) UpdateGlobalPositions() {
	n := s.Len()
	if n == 0 {
		return
	}
	var parents [MaxBones]mathutil.Mat4
	s.GlobalPositions[0] = s.localTransform(0)
	parents[0] = s.GlobalPositions[0]
	for i := 1; i < n; i++ {
		s.GlobalPositions[i] = mathutil.Mul(parents[s.ParentIndices[i]], s.localTransform(i))
		parents[i] = s.GlobalPositions[i]
	}
}

// UpdateGlobalPositionsChecked validates s and then updates it.
func (s *Skeleton) UpdateGlobalPositionsChecked() error {
	if err := s.Validate(); err != nil {
		return err
	}
	s.UpdateGlobalPositions()
	return nil
}

// BindPose stores the inverse of every current world transform as the
// bone's inverse bind transform. Call it after UpdateGlobalPositions on
// the rest pose.
func (s *Skeleton) BindPose() {
	for i := range s.GlobalPositions {
		s.InverseBindTransforms[i] = mathutil.InverseOf(&s.GlobalPositions[i])
	}
}

// SkinningMatrices writes world × inverse bind for every bone into dst and
// returns the filled prefix. dst is grown when it is too short.
func (s *Skeleton) SkinningMatrices(dst []mathutil.Mat4) []mathutil.Mat4 {
	n := s.Len()
	if cap(dst) < n {
		dst = make([]mathutil.Mat4, n)
	}
	dst = dst[:n]
	for i := range dst {
		dst[i] = mathutil.Mul(s.GlobalPositions[i], s.InverseBindTransforms[i])
	}
	return dst
}

// SkinVertices transforms points in place with rigid single-bone skinning:
// vertex i follows palette[bones[i]]. Vertices with an out-of-range bone
// index are left untouched.
func SkinVertices(points []mathutil.Vec3, bones []uint32, palette []mathutil.Mat4) {
	for i := range points {
		if i >= len(bones) || int(bones[i]) >= len(palette) {
			continue
		}
		p := palette[bones[i]].MulVec4(mathutil.V4(points[i], 1))
		points[i] = p.XYZ()
	}
}
