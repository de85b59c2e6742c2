package mathutil

import "math"

// slerpLinearThreshold is the cosine above which Slerp falls back to a
// normalized lerp.
const slerpLinearThreshold = 0.99995

// Slerp interpolates between the rotations q1 and q2 along the shorter arc.
// Both inputs are normalized first; when their dot product is negative q2
// is negated.
func Slerp(q1, q2 Quat, t float32) Quat {
	q1.Normalize()
	q2.Normalize()

	dp := q1.Dot(q2)
	if dp < 0 {
		q2 = q2.Neg()
		dp = -dp
	}

	if dp > slerpLinearThreshold {
		r := q1.Add(q2.Sub(q1).Scale(t))
		r.Normalize()
		return r
	}

	theta0 := float32(math.Acos(float64(dp)))
	theta := theta0 * t
	sinTheta := float32(math.Sin(float64(theta)))
	sinTheta0 := float32(math.Sin(float64(theta0)))

	s0 := float32(math.Cos(float64(theta)) - float64(dp*sinTheta/sinTheta0))
	s1 := sinTheta / sinTheta0
	return q1.Scale(s0).Add(q2.Scale(s1))
}
