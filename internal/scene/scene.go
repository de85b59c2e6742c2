// Package scene builds the scratch harness's content: one triangle in
// clip space, a small rig whose right arm reaches for a moving target, and
// a looping two-pose clip for the rest of the body.
package scene

import (
	"fmt"
	"image"

	"github.com/shorkiesoftware/D3D12-Examples/internal/camera"
	"github.com/shorkiesoftware/D3D12-Examples/internal/config"
	"github.com/shorkiesoftware/D3D12-Examples/internal/gpudata"
	"github.com/shorkiesoftware/D3D12-Examples/internal/mathutil"
	"github.com/shorkiesoftware/D3D12-Examples/internal/platform"
	"github.com/shorkiesoftware/D3D12-Examples/internal/raster"
	"github.com/shorkiesoftware/D3D12-Examples/internal/skeleton"
)

// Bones of the demo rig.
const (
	BoneRoot = iota
	BoneSpine
	BoneChest
	BoneHead
	BoneLeftShoulder
	BoneLeftHand
	BoneRightShoulder
	BoneRightElbow
	BoneRightHand
	BoneCount
)

var (
	boneColor   = mathutil.Vec4{X: 1, Y: 0, Z: 0, W: 1}
	targetColor = mathutil.Vec4{X: 1, Y: 1, Z: 0, W: 1}
	textColor   = mathutil.Vec4{X: 0, Y: 0, Z: 0, W: 1}
)

// Scene is read-only once built. Frame hands out private copies of the
// mutable parts, so one Scene can feed any number of goroutines.
type Scene struct {
	Triangle   raster.Mesh
	Skeleton   *skeleton.Skeleton
	Clip       *skeleton.Animation
	Camera     *camera.Camera
	ClearColor mathutil.Vec4
	IKTarget   mathutil.Vec3
	IKOrbit    float32
	FrameTime  float32
	Width      int
	Height     int
}

// Triangle returns the harness triangle: clockwise in clip space, one
// primary color per corner.
func Triangle(tex *image.NRGBA) raster.Mesh {
	return raster.Mesh{
		Positions: []mathutil.Vec3{
			{X: -0.5, Y: -0.5, Z: 0},
			{X: 0, Y: 0.5, Z: 0},
			{X: 0.5, Y: -0.5, Z: 0},
		},
		Colors: []mathutil.Vec4{
			{X: 1, Y: 0, Z: 0, W: 1},
			{X: 0, Y: 1, Z: 0, W: 1},
			{X: 0, Y: 0, Z: 1, W: 1},
		},
		UVs:     []mathutil.Vec2{{X: 0, Y: 1}, {X: 0.5, Y: 0}, {X: 1, Y: 1}},
		Indices: []uint16{0, 1, 2},
		Texture: tex,
	}
}

// Rig returns the demo skeleton in its bind pose. The right arm is the
// IK chain; its shoulder hangs straight off the root so the solve runs in
// root space.
func Rig() *skeleton.Skeleton {
	s := skeleton.New(BoneCount)
	for _, b := range [...]struct {
		bone, parent int
		pos          mathutil.Vec3
	}{
		{BoneSpine, BoneRoot, mathutil.Vec3{Y: 0.5}},
		{BoneChest, BoneSpine, mathutil.Vec3{Y: 0.4}},
		{BoneHead, BoneChest, mathutil.Vec3{Y: 0.3}},
		{BoneLeftShoulder, BoneChest, mathutil.Vec3{X: -0.3, Y: 0.1}},
		{BoneLeftHand, BoneLeftShoulder, mathutil.Vec3{X: -0.6}},
		{BoneRightShoulder, BoneRoot, mathutil.Vec3{Y: 1}},
		{BoneRightElbow, BoneRightShoulder, mathutil.Vec3{Y: 0.6}},
		{BoneRightHand, BoneRightElbow, mathutil.Vec3{Y: 0.6}},
	} {
		s.ParentIndices[b.bone] = uint32(b.parent)
		s.Positions[b.bone] = b.pos
	}
	s.IK = &skeleton.IKChain{
		Upper:     BoneRightShoulder,
		Lower:     BoneRightElbow,
		SwingAxis: mathutil.Vec3{Y: 1},
		BendAxis:  mathutil.Vec3{Z: 1},
	}
	s.UpdateGlobalPositions()
	s.BindPose()
	return s
}

// Clip returns a two-pose sway of the spine and left arm, one second per
// pose.
func Clip() (*skeleton.Animation, error) {
	rest := make([]mathutil.Quat, BoneCount)
	sway := make([]mathutil.Quat, BoneCount)
	for i := range rest {
		rest[i] = mathutil.QuatIdentity()
		sway[i] = mathutil.QuatIdentity()
	}
	z := mathutil.Vec3{Z: 1}
	sway[BoneSpine] = mathutil.RotationToQuaternion(z, 0.15)
	sway[BoneHead] = mathutil.RotationToQuaternion(z, -0.2)
	sway[BoneLeftShoulder] = mathutil.RotationToQuaternion(z, -0.6)
	sway[BoneLeftHand] = mathutil.RotationToQuaternion(mathutil.Vec3{Y: 1}, 0.5)
	return skeleton.NewAnimation(
		[]skeleton.Pose{{Orientations: rest}, {Orientations: sway}},
		[]float32{1, 1},
	)
}

// New builds the scene for cfg. cfg must be resolved. tex may be nil.
func New(cfg *config.Config, tex *image.NRGBA) (*Scene, error) {
	sk := Rig()
	if err := sk.ValidateChain(BoneRightShoulder); err != nil {
		return nil, fmt.Errorf("scene: %w", err)
	}
	clip, err := Clip()
	if err != nil {
		return nil, fmt.Errorf("scene: %w", err)
	}

	cam := camera.New()
	cam.SetPerspective(cfg.FOV, cfg.Aspect(), cfg.Near, cfg.Far)
	cam.LookAtDefault(vec3(cfg.CameraPosition), vec3(cfg.CameraTarget))

	return &Scene{
		Triangle:   Triangle(tex),
		Skeleton:   sk,
		Clip:       clip,
		Camera:     cam,
		ClearColor: mathutil.Vec4{X: cfg.ClearColor[0], Y: cfg.ClearColor[1], Z: cfg.ClearColor[2], W: cfg.ClearColor[3]},
		IKTarget:   vec3(cfg.IKTarget),
		IKOrbit:    cfg.IKOrbit,
		FrameTime:  1 / cfg.FrameRate,
		Width:      cfg.Width,
		Height:     cfg.Height,
	}, nil
}

func vec3(a *[3]float32) mathutil.Vec3 { return mathutil.Vec3{X: a[0], Y: a[1], Z: a[2]} }

// State is everything needed to draw one frame. Its camera and skeleton
// belong to the caller.
type State struct {
	Frame    platform.Frame
	Camera   *camera.Camera
	Skeleton *skeleton.Skeleton
	Target   mathutil.Vec3
}

// Period returns the length of one loop of the clip in seconds.
func (s *Scene) Period() float32 {
	var p float32
	for _, l := range s.Clip.FrameLengths {
		p += l
	}
	return p
}

// Frame poses the scene at frame i. The result depends on i alone.
func (s *Scene) Frame(i int) State {
	f := platform.Frame{
		ClearColor:   s.ClearColor,
		WindowWidth:  uint32(s.Width),
		WindowHeight: uint32(s.Height),
		Index:        i,
		ElapsedTime:  float32(i) * s.FrameTime,
	}
	if i > 0 {
		f.DeltaTime = s.FrameTime
	}

	clip := s.Clip.Clone()
	clip.Step(f.ElapsedTime)
	sk := s.Skeleton.Clone()
	clip.Apply(sk)
	sk.UpdateGlobalPositions()

	angle := mathutil.Tau * f.ElapsedTime / s.Period()
	target := s.IKTarget.Add(mathutil.Vec3{
		X: s.IKOrbit * mathutil.Cosine(angle),
		Z: s.IKOrbit * mathutil.Sine(angle),
	})
	sk.UpdatePositionsWithTarget(target, mathutil.Vec3{}, BoneRightShoulder)

	return State{Frame: f, Camera: s.Camera.Clone(), Skeleton: sk, Target: target}
}

// Transforms returns the uniform block for the triangle at st.
func (st *State) Transforms() gpudata.Transforms {
	return gpudata.NewTransforms(st.Camera.View, mathutil.Identity())
}

// Target is a frame destination: the debug services plus clearing and
// mesh drawing.
type Target interface {
	platform.Services
	Clear(c mathutil.Vec4)
	DrawMesh(m *raster.Mesh, model mathutil.Mat4) int
}

// Draw renders st into t. The triangle is drawn straight in clip space;
// the overlay (skeleton, IK target and a frame label) goes through the
// scene camera. textScale magnifies the label. Returns the triangle's
// pixel count.
func (s *Scene) Draw(t Target, st *State, overlay bool, textScale float32) int {
	t.Clear(st.Frame.ClearColor)
	t.Set3DCamera(nil)
	n := t.DrawMesh(&s.Triangle, mathutil.Identity())
	if !overlay {
		return n
	}

	t.Set3DCamera(st.Camera)
	t.DebugSkeleton(st.Skeleton, boneColor)
	const r = 0.05
	for _, axis := range [...]mathutil.Vec3{{X: r}, {Y: r}, {Z: r}} {
		t.DebugLine(st.Target.Sub(axis), st.Target.Add(axis), targetColor, 2*textScale)
	}
	label := fmt.Sprintf("frame %d  t=%.2fs", st.Frame.Index, st.Frame.ElapsedTime)
	t.RenderText(label, 8*textScale, 8*textScale, textScale, textColor)
	return n
}
