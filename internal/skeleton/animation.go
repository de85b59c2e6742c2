package skeleton

import (
	"errors"
	"fmt"

	"github.com/shorkiesoftware/D3D12-Examples/internal/mathutil"
)

// Pose is one keyframe: an orientation per bone plus the root position.
type Pose struct {
	Orientations []mathutil.Quat
	Position     mathutil.Vec3
}

// Animation blends a looping sequence of poses. FrameLengths[i] is the
// time spent going from Poses[i] to the next pose.
type Animation struct {
	CurrentPose  Pose
	Poses        []Pose
	FrameLengths []float32
	T            float32 // time into the current frame
	FrameTime    float32 // T / FrameLengths[PoseIndex]
	TotalTime    float32
	PoseIndex    uint32
}

var ErrPoseCount = errors.New("pose and frame length counts differ")

// NewAnimation returns an animation at the start of its first pose.
func NewAnimation(poses []Pose, frameLengths []float32) (*Animation, error) {
	if len(poses) == 0 || len(poses) != len(frameLengths) {
		return nil, fmt.Errorf("skeleton: %d poses, %d frame lengths: %w", len(poses), len(frameLengths), ErrPoseCount)
	}
	bones := len(poses[0].Orientations)
	for i, p := range poses {
		if len(p.Orientations) != bones {
			return nil, fmt.Errorf("skeleton: pose %d has %d bones, want %d: %w", i, len(p.Orientations), bones, ErrLength)
		}
		if frameLengths[i] <= 0 {
			return nil, fmt.Errorf("skeleton: frame %d has length %v", i, frameLengths[i])
		}
	}
	a := &Animation{
		CurrentPose: Pose{
			Orientations: append([]mathutil.Quat(nil), poses[0].Orientations...),
			Position:     poses[0].Position,
		},
		Poses:        poses,
		FrameLengths: frameLengths,
	}
	return a, nil
}

// Clone returns a copy with its own CurrentPose. Poses are shared.
func (a *Animation) Clone() *Animation {
	c := *a
	c.CurrentPose.Orientations = append([]mathutil.Quat(nil), a.CurrentPose.Orientations...)
	return &c
}

// Step advances the clip by dt seconds, wrapping past the last pose, and
// blends CurrentPose between the active pose and the next one.
func (a *Animation) Step(dt float32) {
	n := uint32(len(a.Poses))
	if n == 0 {
		return
	}
	a.T += dt
	a.TotalTime += dt
	for a.FrameLengths[a.PoseIndex] > 0 && a.T >= a.FrameLengths[a.PoseIndex] {
		a.T -= a.FrameLengths[a.PoseIndex]
		a.PoseIndex = (a.PoseIndex + 1) % n
	}
	if l := a.FrameLengths[a.PoseIndex]; l > 0 {
		a.FrameTime = a.T / l
	} else {
		a.FrameTime = 0
	}

	from := &a.Poses[a.PoseIndex]
	to := &a.Poses[(a.PoseIndex+1)%n]
	for i := range a.CurrentPose.Orientations {
		a.CurrentPose.Orientations[i] = mathutil.Slerp(from.Orientations[i], to.Orientations[i], a.FrameTime)
	}
	a.CurrentPose.Position = mathutil.LinearInterpolation(from.Position, to.Position, a.FrameTime)
}

// Apply copies the current pose into s: every orientation the pose covers
// and the root position.
func (a *Animation) Apply(s *Skeleton) {
	copy(s.Orientations, a.CurrentPose.Orientations)
	if len(s.Positions) > 0 {
		s.Positions[0] = a.CurrentPose.Position
	}
}
