package raster

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"github.com/shorkiesoftware/D3D12-Examples/internal/camera"
	"github.com/shorkiesoftware/D3D12-Examples/internal/mathutil"
	"github.com/shorkiesoftware/D3D12-Examples/internal/platform"
	"github.com/shorkiesoftware/D3D12-Examples/internal/skeleton"
)

// Mesh is an indexed triangle list in model space. Colors and UVs are
// optional and indexed like Positions.
type Mesh struct {
	Positions []mathutil.Vec3
	Colors    []mathutil.Vec4
	UVs       []mathutil.Vec2
	Indices   []uint16
	Texture   *image.NRGBA
}

// Renderer draws into a FrameBuffer through the active camera. It
// implements platform.Services.
type Renderer struct {
	FB    *FrameBuffer
	Face  font.Face
	Light *LightConfig
	Cull  CullMode

	cam  *camera.Camera
	img  *image.NRGBA
	rast *vector.Rasterizer
}

var _ platform.Services = (*Renderer)(nil)

// NewRenderer returns a renderer for a w×h target using the built-in
// 7×13 bitmap font, back-face culling and no lighting.
func NewRenderer(w, h int) *Renderer {
	fb := NewFrameBuffer(w, h)
	return &Renderer{
		FB:   fb,
		Face: basicfont.Face7x13,
		Cull: CullBack,
		img:  fb.Image(),
		rast: vector.NewRasterizer(w, h),
	}
}

// Image returns the color target as an image sharing the frame buffer.
func (r *Renderer) Image() *image.NRGBA { return r.img }

func (r *Renderer) Clear(c mathutil.Vec4) { r.FB.Clear(c) }

func (r *Renderer) Set3DCamera(c *camera.Camera) { r.cam = c }

// viewProjection returns the active camera's combined matrix, or the
// identity when no camera is set.
func (r *Renderer) viewProjection() mathutil.Mat4 {
	if r.cam == nil {
		return mathutil.Identity()
	}
	return r.cam.View
}

// DrawMesh transforms m by model and the active camera and rasterizes it.
// Returns the number of pixels written.
func (r *Renderer) DrawMesh(m *Mesh, model mathutil.Mat4) int {
	mvp := mathutil.Mul(r.viewProjection(), model)
	written := 0
	for i := 0; i+2 < len(m.Indices); i += 3 {
		var tri [3]Vertex
		for k := 0; k < 3; k++ {
			vi := int(m.Indices[i+k])
			if vi >= len(m.Positions) {
				return written
			}
			tri[k].Position = mvp.MulVec4(mathutil.V4(m.Positions[vi], 1))
			tri[k].Color = mathutil.Splat4(1)
			if vi < len(m.Colors) {
				tri[k].Color = m.Colors[vi]
			}
			if vi < len(m.UVs) {
				tri[k].UV = m.UVs[vi]
			}
		}
		written += RasterizeTriangle(r.FB, tri, m.Texture, r.Light, r.Cull)
	}
	return written
}

// project maps a world point to pixel coordinates. ok is false for points
// at or behind the eye plane.
func (r *Renderer) project(p mathutil.Vec3) (x, y float32, ok bool) {
	c := r.viewProjection().MulVec4(mathutil.V4(p, 1))
	if c.W <= 0 {
		return 0, 0, false
	}
	s := toScreen(c, r.FB.Width, r.FB.Height)
	return float32(s.x), float32(s.y), true
}

func nrgba(c mathutil.Vec4) color.NRGBA {
	return color.NRGBA{R: unorm(c.X), G: unorm(c.Y), B: unorm(c.Z), A: unorm(c.W)}
}

// DebugLine draws a screen-aligned quad size pixels wide between the
// projections of start and end. Lines ignore and do not write depth.
func (r *Renderer) DebugLine(start, end mathutil.Vec3, c mathutil.Vec4, size float32) {
	x0, y0, ok0 := r.project(start)
	x1, y1, ok1 := r.project(end)
	if !ok0 || !ok1 {
		return
	}
	d := mathutil.Vec2{X: x1 - x0, Y: y1 - y0}
	if d.Len() == 0 {
		return
	}
	if size <= 0 {
		size = 1
	}
	n := mathutil.Vec2{X: -d.Y, Y: d.X}.NormalOf().Scale(size * 0.5)

	r.rast.Reset(r.FB.Width, r.FB.Height)
	r.rast.DrawOp = draw.Over
	r.rast.MoveTo(x0+n.X, y0+n.Y)
	r.rast.LineTo(x1+n.X, y1+n.Y)
	r.rast.LineTo(x1-n.X, y1-n.Y)
	r.rast.LineTo(x0-n.X, y0-n.Y)
	r.rast.ClosePath()
	r.rast.Draw(r.img, r.img.Bounds(), image.NewUniform(nrgba(c)), image.Point{})
}

// DebugSkeleton draws every bone as a line to its parent.
func (r *Renderer) DebugSkeleton(s *skeleton.Skeleton, c mathutil.Vec4) {
	for i := 1; i < len(s.GlobalPositions) && i < len(s.ParentIndices); i++ {
		p := s.ParentIndices[i]
		from := mathutil.Position(&s.GlobalPositions[p])
		to := mathutil.Position(&s.GlobalPositions[i])
		r.DebugLine(from, to, c, 2)
	}
}

// RenderText draws text with its top-left corner at pixel (x, y). scale
// magnifies the bitmap font by nearest-neighbour sampling; values below 1
// draw at native size.
func (r *Renderer) RenderText(text string, x, y, scale float32, c mathutil.Vec4) {
	if text == "" {
		return
	}
	src := image.NewUniform(nrgba(c))
	m := r.Face.Metrics()
	if scale <= 1 {
		d := font.Drawer{
			Dst:  r.img,
			Src:  src,
			Face: r.Face,
			Dot:  fixed.Point26_6{X: fixed.I(int(x)), Y: fixed.I(int(y)) + m.Ascent},
		}
		d.DrawString(text)
		return
	}

	w := font.MeasureString(r.Face, text).Ceil()
	h := (m.Ascent + m.Descent).Ceil()
	glyphs := image.NewNRGBA(image.Rect(0, 0, w, h))
	d := font.Drawer{
		Dst:  glyphs,
		Src:  src,
		Face: r.Face,
		Dot:  fixed.Point26_6{Y: m.Ascent},
	}
	d.DrawString(text)
	dst := image.Rect(int(x), int(y), int(x+float32(w)*scale), int(y+float32(h)*scale))
	draw.NearestNeighbor.Scale(r.img, dst, glyphs, glyphs.Bounds(), draw.Over, nil)
}
