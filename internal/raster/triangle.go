package raster

import (
	"image"
	"math"

	"github.com/shorkiesoftware/D3D12-Examples/internal/mathutil"
)

// Vertex is one triangle corner after the vertex stage.
type Vertex struct {
	Position mathutil.Vec4 // clip space
	Color    mathutil.Vec4
	UV       mathutil.Vec2
}

// CullMode selects which triangle faces are discarded.
type CullMode int

const (
	CullNone CullMode = iota
	// CullBack drops triangles that wind counter-clockwise on screen.
	// Clockwise triangles are front facing.
	CullBack
)

// screenVertex is a vertex after the perspective divide and viewport map.
type screenVertex struct {
	x, y, z float64
	invW    float64
}

func toScreen(p mathutil.Vec4, w, h int) screenVertex {
	invW := 1 / float64(p.W)
	return screenVertex{
		x:    (float64(p.X)*invW + 1) * 0.5 * float64(w),
		y:    (1 - float64(p.Y)*invW) * 0.5 * float64(h),
		z:    float64(p.Z) * invW,
		invW: invW,
	}
}

// pixelIndex clamps v to [0, n-1] before converting, so coordinates far
// outside the int range never reach the conversion.
func pixelIndex(v float64, n int) int {
	if v < 0 {
		return 0
	}
	if v > float64(n-1) {
		return n - 1
	}
	return int(v)
}

// RasterizeTriangle rasterizes one clip-space triangle into fb with a depth
// test, perspective-correct color and UV interpolation and an optional
// bilinear texture modulated by the vertex color. When lc is non-nil the
// face is flat shaded in view space and tone mapped. Triangles with a
// vertex at or behind the eye plane (w <= 0) are dropped whole; pixels
// outside the [-1, 1] depth range are clipped.
//
// Returns the number of pixels written. The inner loop does not allocate.
func RasterizeTriangle(fb *FrameBuffer, v [3]Vertex, tex *image.NRGBA, lc *LightConfig, cull CullMode) int {
	for i := range v {
		if v[i].Position.W <= 0 {
			return 0
		}
	}

	s0 := toScreen(v[0].Position, fb.Width, fb.Height)
	s1 := toScreen(v[1].Position, fb.Width, fb.Height)
	s2 := toScreen(v[2].Position, fb.Width, fb.Height)

	// Twice the signed area; positive is clockwise with y pointing down.
	area := (s1.x-s0.x)*(s2.y-s0.y) - (s2.x-s0.x)*(s1.y-s0.y)
	if area > -1e-12 && area < 1e-12 {
		return 0
	}
	if cull == CullBack && area < 0 {
		return 0
	}

	shade := 1.0
	if lc != nil {
		e1 := mathutil.Vec3{X: float32(s1.x - s0.x), Y: float32(s0.y - s1.y), Z: float32(s1.z - s0.z)}
		e2 := mathutil.Vec3{X: float32(s2.x - s0.x), Y: float32(s0.y - s2.y), Z: float32(s2.z - s0.z)}
		n, ok := e1.Cross(e2).NormalOfChecked()
		if !ok {
			return 0
		}
		shade = lc.ComputeShade(n)
	}

	// Bounding box
	loX := math.Floor(math.Min(math.Min(s0.x, s1.x), s2.x))
	hiX := math.Ceil(math.Max(math.Max(s0.x, s1.x), s2.x))
	loY := math.Floor(math.Min(math.Min(s0.y, s1.y), s2.y))
	hiY := math.Ceil(math.Max(math.Max(s0.y, s1.y), s2.y))
	if hiX < 0 || hiY < 0 || loX > float64(fb.Width-1) || loY > float64(fb.Height-1) {
		return 0
	}
	minX, maxX := pixelIndex(loX, fb.Width), pixelIndex(hiX, fb.Width)
	minY, maxY := pixelIndex(loY, fb.Height), pixelIndex(hiY, fb.Height)
	if minX > maxX || minY > maxY {
		return 0
	}

	// Barycentric setup
	det := (s1.y-s2.y)*(s0.x-s2.x) + (s2.x-s1.x)*(s0.y-s2.y)
	invDet := 1.0 / det
	dy12 := s1.y - s2.y
	dx21 := s2.x - s1.x
	dy20 := s2.y - s0.y
	dx02 := s0.x - s2.x

	written := 0
	for sy := minY; sy <= maxY; sy++ {
		dsy := float64(sy) + 0.5 - s2.y
		rowOff := sy * fb.Width
		for sx := minX; sx <= maxX; sx++ {
			dsx := float64(sx) + 0.5 - s2.x
			b0 := (dy12*dsx + dx21*dsy) * invDet
			b1 := (dy20*dsx + dx02*dsy) * invDet
			b2 := 1.0 - b0 - b1
			if b0 < 0 || b1 < 0 || b2 < 0 {
				continue
			}

			z := b0*s0.z + b1*s1.z + b2*s2.z
			if z < -1 || z > 1 {
				continue
			}
			zIdx := rowOff + sx
			if float32(z) >= fb.ZBuf[zIdx] {
				continue
			}

			// Perspective-correct weights.
			p0, p1, p2 := b0*s0.invW, b1*s1.invW, b2*s2.invW
			inv := 1 / (p0 + p1 + p2)
			p0, p1, p2 = p0*inv, p1*inv, p2*inv

			cr := p0*float64(v[0].Color.X) + p1*float64(v[1].Color.X) + p2*float64(v[2].Color.X)
			cg := p0*float64(v[0].Color.Y) + p1*float64(v[1].Color.Y) + p2*float64(v[2].Color.Y)
			cb := p0*float64(v[0].Color.Z) + p1*float64(v[1].Color.Z) + p2*float64(v[2].Color.Z)
			ca := p0*float64(v[0].Color.W) + p1*float64(v[1].Color.W) + p2*float64(v[2].Color.W)

			if tex != nil {
				uv := mathutil.Vec2{
					X: float32(p0*float64(v[0].UV.X) + p1*float64(v[1].UV.X) + p2*float64(v[2].UV.X)),
					Y: float32(p0*float64(v[0].UV.Y) + p1*float64(v[1].UV.Y) + p2*float64(v[2].UV.Y)),
				}
				tr, tg, tb, ta := SampleTexture(tex, uv)
				// Skip transparent texels
				if ta < 8 {
					continue
				}
				cr *= float64(tr) / 255
				cg *= float64(tg) / 255
				cb *= float64(tb) / 255
				ca *= float64(ta) / 255
			}

			fb.ZBuf[zIdx] = float32(z)
			pxIdx := zIdx * 4
			if lc != nil {
				fb.Color[pxIdx] = lc.Encode(clamp255(cr*255), shade)
				fb.Color[pxIdx+1] = lc.Encode(clamp255(cg*255), shade)
				fb.Color[pxIdx+2] = lc.Encode(clamp255(cb*255), shade)
			} else {
				fb.Color[pxIdx] = clamp255(cr * 255)
				fb.Color[pxIdx+1] = clamp255(cg * 255)
				fb.Color[pxIdx+2] = clamp255(cb * 255)
			}
			fb.Color[pxIdx+3] = clamp255(ca * 255)
			written++
		}
	}
	return written
}

func clamp255(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}
