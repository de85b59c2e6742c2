package skeleton

import (
	"errors"
	"fmt"
)

var (
	ErrEmpty        = errors.New("skeleton has no bones")
	ErrTooManyBones = errors.New("too many bones")
	ErrLength       = errors.New("per-bone slices differ in length")
	ErrParentOrder  = errors.New("parent does not precede bone")
	ErrChain        = errors.New("IK chain out of range")
)

// Validate checks the structural preconditions the update methods assume.
func (s *Skeleton) Validate() error {
	n := s.Len()
	if n == 0 {
		return fmt.Errorf("skeleton: %w", ErrEmpty)
	}
	if n > MaxBones {
		return fmt.Errorf("skeleton: %d bones (max %d): %w", n, MaxBones, ErrTooManyBones)
	}
	for _, l := range [...]struct {
		name string
		n    int
	}{
		{"orientations", len(s.Orientations)},
		{"parent indices", len(s.ParentIndices)},
		{"global positions", len(s.GlobalPositions)},
		{"inverse bind transforms", len(s.InverseBindTransforms)},
	} {
		if l.n != n {
			return fmt.Errorf("skeleton: %d %s for %d bones: %w", l.n, l.name, n, ErrLength)
		}
	}
	for i := 1; i < n; i++ {
		if int(s.ParentIndices[i]) >= i {
			return fmt.Errorf("skeleton: bone %d has parent %d: %w", i, s.ParentIndices[i], ErrParentOrder)
		}
	}
	return nil
}

// ValidateChain checks that a target solve starting at boneIndex stays
// inside the skeleton.
func (s *Skeleton) ValidateChain(boneIndex int) error {
	if err := s.Validate(); err != nil {
		return err
	}
	n := s.Len()
	ik := s.ikChain()
	if boneIndex < 0 || boneIndex+2 >= n {
		return fmt.Errorf("skeleton: chain base %d for %d bones: %w", boneIndex, n, ErrChain)
	}
	if ik.Upper < 0 || ik.Upper >= n || ik.Lower < 0 || ik.Lower >= n {
		return fmt.Errorf("skeleton: chain bones %d/%d for %d bones: %w", ik.Upper, ik.Lower, n, ErrChain)
	}
	return nil
}
