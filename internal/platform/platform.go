// Package platform defines the services the harness asks of its host:
// debug drawing, text and the active 3D camera.
package platform

import (
	"github.com/shorkiesoftware/D3D12-Examples/internal/camera"
	"github.com/shorkiesoftware/D3D12-Examples/internal/mathutil"
	"github.com/shorkiesoftware/D3D12-Examples/internal/skeleton"
)

// Services is implemented by the renderer backend. Colors are linear
// RGBA in [0, 1].
type Services interface {
	// DebugSkeleton draws a line from every bone to its parent using the
	// skeleton's current GlobalPositions.
	DebugSkeleton(s *skeleton.Skeleton, color mathutil.Vec4)
	DebugLine(start, end mathutil.Vec3, color mathutil.Vec4, size float32)
	// RenderText draws text with its top-left corner at pixel (x, y).
	RenderText(text string, x, y, scale float32, color mathutil.Vec4)
	// Set3DCamera selects the camera used by subsequent 3D draws.
	Set3DCamera(c *camera.Camera)
}

// Frame is the per-frame state the host hands the harness.
type Frame struct {
	ClearColor   mathutil.Vec4
	WindowWidth  uint32
	WindowHeight uint32
	DeltaTime    float32
	ElapsedTime  float32
	Index        int
}

// Aspect returns WindowWidth / WindowHeight, or 1 for an empty window.
func (f Frame) Aspect() float32 {
	if f.WindowHeight == 0 {
		return 1
	}
	return float32(f.WindowWidth) / float32(f.WindowHeight)
}

// Advance moves f forward by dt seconds.
func (f *Frame) Advance(dt float32) {
	f.DeltaTime = dt
	f.ElapsedTime += dt
	f.Index++
}
