// Package gpudata packs the harness's transforms and geometry into the
// tightly laid out float blocks a shader constant buffer or vertex buffer
// expects.
package gpudata

import (
	"unsafe"

	"github.com/xlab/linmath"

	"github.com/shorkiesoftware/D3D12-Examples/internal/mathutil"
	"github.com/shorkiesoftware/D3D12-Examples/internal/skeleton"
)

// Transforms is the per-draw uniform block.
type Transforms struct {
	ViewProj linmath.Mat4x4
	Model    linmath.Mat4x4
}

// TransformsSize is the byte size of Transforms.
const TransformsSize = int(unsafe.Sizeof(Transforms{}))

// VertexStride is the number of floats per packed vertex: position xyz
// followed by color rgba.
const VertexStride = 7

// ToMat4x4 converts m to linmath layout. Both store one column per group
// of four, so the conversion is a copy.
func ToMat4x4(m mathutil.Mat4) linmath.Mat4x4 {
	var out linmath.Mat4x4
	for i := 0; i < 4; i++ {
		out[i] = linmath.Vec4{m[4*i], m[4*i+1], m[4*i+2], m[4*i+3]}
	}
	return out
}

func FromMat4x4(m *linmath.Mat4x4) mathutil.Mat4 {
	var out mathutil.Mat4
	for i := 0; i < 4; i++ {
		copy(out[4*i:4*i+4], m[i][:])
	}
	return out
}

func NewTransforms(viewProj, model mathutil.Mat4) Transforms {
	return Transforms{ViewProj: ToMat4x4(viewProj), Model: ToMat4x4(model)}
}

// Data returns the raw bytes of t. The slice aliases t.
func (t *Transforms) Data() []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(t)), TransformsSize)
}

// BonePalette packs the skinning matrices of s, 16 floats per bone, into
// dst and returns it. scratch is reused for the palette when large enough.
func BonePalette(s *skeleton.Skeleton, scratch []mathutil.Mat4, dst linmath.ArrayFloat32) (linmath.ArrayFloat32, []mathutil.Mat4) {
	scratch = s.SkinningMatrices(scratch)
	dst = dst[:0]
	for i := range scratch {
		dst = append(dst, scratch[i][:]...)
	}
	return dst, scratch
}

// Vertices interleaves positions and colors. A vertex without a color is
// packed opaque white.
func Vertices(positions []mathutil.Vec3, colors []mathutil.Vec4) linmath.ArrayFloat32 {
	out := make(linmath.ArrayFloat32, 0, len(positions)*VertexStride)
	for i, p := range positions {
		c := mathutil.Splat4(1)
		if i < len(colors) {
			c = colors[i]
		}
		out = append(out, p.X, p.Y, p.Z, c.X, c.Y, c.Z, c.W)
	}
	return out
}

func Indices(idx []uint16) linmath.ArrayUint16 {
	return append(linmath.ArrayUint16(nil), idx...)
}
