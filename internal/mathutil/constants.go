// Package mathutil implements the float32 vector, quaternion and matrix
// math used by the skeleton, camera and renderer packages.
//
// Vec3, Vec4 and Quat arithmetic is written against a 4-lane register
// value so the evaluation order (and therefore every rounded result)
// matches a 128-bit SIMD implementation lane for lane.
package mathutil

import "math"

const (
	HalfPi = math.Pi / 2
	Pi     = math.Pi
	Tau    = 2 * math.Pi
	TauInv = 1 / (2 * math.Pi)
	E      = math.E
	Log2E  = math.Log2E
)

// Deg2Rad converts degrees to radians.
func Deg2Rad(d float32) float32 {
	return d * Pi / 180
}
