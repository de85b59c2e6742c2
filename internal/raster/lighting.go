package raster

import (
	"math"

	"github.com/shorkiesoftware/D3D12-Examples/internal/mathutil"
)

// LightConfig holds precomputed flat-shading parameters. Lit triangles
// are shaded in linear space, tone mapped with ACES and encoded with
// InvGamma before being written.
type LightConfig struct {
	LightDir mathutil.Vec3
	RimDir   mathutil.Vec3
	HalfMain mathutil.Vec3 // half-vector for Blinn-Phong
	Ambient  float64
	Hemi     float64
	Direct   float64
	Rim      float64
	SpecInt  float64
	SpecPow  float64
	Exposure float64
	InvGamma float64
}

// DefaultLightConfig returns a key light from the upper right, a rim light
// from behind and a viewer looking down -z.
func DefaultLightConfig() LightConfig {
	lightDir := mathutil.Vec3{X: 180, Y: 260, Z: 140}.NormalOf()
	rimDir := mathutil.Vec3{X: -160, Y: 130, Z: -210}.NormalOf()
	viewDir := mathutil.Vec3{X: 0, Y: -110, Z: -400}.NormalOf()

	return LightConfig{
		LightDir: lightDir,
		RimDir:   rimDir,
		HalfMain: lightDir.Sub(viewDir).NormalOf(),
		Ambient:  0.55,
		Hemi:     0.50,
		Direct:   1.50,
		Rim:      0.60,
		SpecInt:  0.45,
		SpecPow:  12.0,
		Exposure: 1.05,
		InvGamma: 1.0 / 2.2,
	}
}

// ComputeShade returns the combined lighting scalar for a unit face normal.
func (lc *LightConfig) ComputeShade(normal mathutil.Vec3) float64 {
	// Lambertian (abs for double-sided)
	ndlMain := math.Abs(float64(normal.Dot(lc.LightDir)))
	ndlRim := math.Abs(float64(normal.Dot(lc.RimDir)))

	hemi := (1.0-math.Abs(float64(normal.Y)))*0.5 + 0.5
	hemiLight := hemi * lc.Hemi

	ndh := float64(normal.Dot(lc.HalfMain))
	if ndh < 0 {
		ndh = 0
	}
	spec := math.Pow(ndh, lc.SpecPow) * lc.SpecInt

	return lc.Ambient + hemiLight + ndlMain*lc.Direct + ndlRim*lc.Rim + spec
}

// Encode shades an 8-bit sRGB channel value and returns it re-encoded.
func (lc *LightConfig) Encode(c uint8, shade float64) uint8 {
	t := ACESTonemap(srgbToLinear[c] * shade * lc.Exposure)
	return clamp255(math.Pow(t, lc.InvGamma) * 255)
}

// Precomputed sRGB-to-linear lookup table (256 entries).
var srgbToLinear [256]float64

func init() {
	for i := 0; i < 256; i++ {
		srgbToLinear[i] = math.Pow(float64(i)/255.0, 2.2)
	}
}

// ACESTonemap applies ACES Filmic tone mapping to a linear value.
func ACESTonemap(x float64) float64 {
	return (x * (2.51*x + 0.03)) / (x*(2.43*x+0.59) + 0.14)
}
