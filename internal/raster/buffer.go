package raster

import (
	"image"
	"math"

	"github.com/shorkiesoftware/D3D12-Examples/internal/mathutil"
)

// FrameBuffer holds the rendering target as flat slices for cache locality.
// Color is an 8-bit UNORM target; depth holds NDC z where smaller is closer.
type FrameBuffer struct {
	Width  int
	Height int
	Color  []uint8   // RGBA interleaved, len = W*H*4
	ZBuf   []float32 // depth per pixel, len = W*H, cleared to +inf
}

// NewFrameBuffer allocates a zeroed color buffer and a cleared z-buffer.
func NewFrameBuffer(w, h int) *FrameBuffer {
	fb := &FrameBuffer{
		Width:  w,
		Height: h,
		Color:  make([]uint8, w*h*4),
		ZBuf:   make([]float32, w*h),
	}
	fb.ClearDepth()
	return fb
}

// Clear fills the color buffer with c and resets depth.
func (fb *FrameBuffer) Clear(c mathutil.Vec4) {
	r, g, b, a := unorm(c.X), unorm(c.Y), unorm(c.Z), unorm(c.W)
	for i := 0; i < len(fb.Color); i += 4 {
		fb.Color[i] = r
		fb.Color[i+1] = g
		fb.Color[i+2] = b
		fb.Color[i+3] = a
	}
	fb.ClearDepth()
}

func (fb *FrameBuffer) ClearDepth() {
	inf := float32(math.Inf(1))
	for i := range fb.ZBuf {
		fb.ZBuf[i] = inf
	}
}

// Image returns an NRGBA view that shares Color.
func (fb *FrameBuffer) Image() *image.NRGBA {
	return &image.NRGBA{
		Pix:    fb.Color,
		Stride: fb.Width * 4,
		Rect:   image.Rect(0, 0, fb.Width, fb.Height),
	}
}

// At returns the RGBA bytes of pixel (x, y).
func (fb *FrameBuffer) At(x, y int) [4]uint8 {
	i := (y*fb.Width + x) * 4
	return [4]uint8{fb.Color[i], fb.Color[i+1], fb.Color[i+2], fb.Color[i+3]}
}

func unorm(v float32) uint8 {
	return clamp255(float64(v) * 255)
}
