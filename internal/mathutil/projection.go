package mathutil

import "math"

// CreateOrthogonalProjection returns an orthographic projection of the
// box [left, right] × [bottom, top] × [znear, zfar].
func CreateOrthogonalProjection(left, right, bottom, top, znear, zfar float32) Mat4 {
	rminl := right - left
	tminb := top - bottom
	var m Mat4
	m.SetRow(0, Vec4{2.0 / rminl, 0, 0, 0})
	m.SetRow(1, Vec4{0, 2.0 / tminb, 0, 0})
	m.SetRow(2, Vec4{0, 0, 2.0 / (znear - zfar), 0})
	m.SetRow(3, Vec4{-(right + left) / rminl, -(top + bottom) / tminb, -(zfar + znear) / (zfar - znear), 1})
	return m
}

// CreatePerspectiveProjection returns a perspective projection with a
// vertical field of view of fov degrees.
func CreatePerspectiveProjection(fov, aspect, znear, zfar float32) Mat4 {
	rad := (Tau * float64(fov)) / 360.0
	t := math.Tan(rad / 2.0)
	var m Mat4
	m[0] = float32(1 / (float64(aspect) * t))
	m[5] = float32(1 / t)
	m[10] = -(zfar + znear) / (zfar - znear)
	m[11] = -1
	m[14] = -(zfar * znear) / (zfar - znear)
	return m
}

// LookAt returns a view matrix at position facing target.
// The result is undefined when target-position is parallel to up.
//
// The third column keeps forward.z without negation, as the engine's
// free-standing look-at always has; camera.Camera.LookAt negates it.
func LookAt(position, target, up Vec3) Mat4 {
	forward := target.Sub(position).NormalOf()
	right := forward.Cross(up).NormalOf()
	up = right.Cross(forward).NormalOf()
	return Mat4{
		right.X, up.X, -forward.X, 0,
		right.Y, up.Y, -forward.Y, 0,
		right.Z, up.Z, forward.Z, 0,
		right.Neg().Dot(position), up.Neg().Dot(position), forward.Dot(position), 1,
	}
}

// LookAtDefault is LookAt with up = (0, 1, 0).
func LookAtDefault(position, target Vec3) Mat4 {
	return LookAt(position, target, Vec3{0, 1, 0})
}
