// Package camera holds the 3D camera used by the harness.
package camera

import "github.com/shorkiesoftware/D3D12-Examples/internal/mathutil"

// Camera is a view/projection pair plus the basis vectors derived from
// the view. View, Forward, Up, Right and Orientation are written by
// UpdateView and LookAt only.
//
// View holds Projection × view once either method has run.
type Camera struct {
	Projection  mathutil.Mat4
	View        mathutil.Mat4
	Orientation mathutil.Quat
	Position    mathutil.Vec3
	Forward     mathutil.Vec3
	Up          mathutil.Vec3
	Right       mathutil.Vec3

	RotateSpeed      mathutil.Vec2
	MoveSpeed        float32
	MouseSensitivity float32
}

// New returns a camera at the origin with identity view and projection.
func New() *Camera {
	return &Camera{
		Projection:       mathutil.Identity(),
		View:             mathutil.Identity(),
		Orientation:      mathutil.QuatIdentity(),
		Forward:          mathutil.Vec3{X: 0, Y: 0, Z: 1},
		Up:               mathutil.Vec3{X: 0, Y: 1, Z: 0},
		Right:            mathutil.Vec3{X: 1, Y: 0, Z: 0},
		RotateSpeed:      mathutil.Vec2{X: 1, Y: 1},
		MoveSpeed:        1,
		MouseSensitivity: 1,
	}
}

// SetPerspective sets a perspective projection with a vertical field of
// view of fov degrees. It takes effect on the next UpdateView or LookAt.
func (c *Camera) SetPerspective(fov, aspect, znear, zfar float32) {
	c.Projection = mathutil.CreatePerspectiveProjection(fov, aspect, znear, zfar)
}

func (c *Camera) SetOrthographic(left, right, bottom, top, znear, zfar float32) {
	c.Projection = mathutil.CreateOrthogonalProjection(left, right, bottom, top, znear, zfar)
}

// UpdateView rebuilds View from Orientation and Position and refreshes
// the basis vectors.
func (c *Camera) UpdateView() {
	view := mathutil.Identity()
	mathutil.TranslateMatrix(&view, c.Position.Neg())
	view = mathutil.Mul(mathutil.QuaternionToMat4(c.Orientation), view)
	c.Right = mathutil.Vec3{X: view.At(0, 0), Y: view.At(1, 0), Z: view.At(2, 0)}
	c.Up = mathutil.Vec3{X: view.At(0, 1), Y: view.At(1, 1), Z: view.At(2, 1)}
	c.Forward = mathutil.Vec3{X: -view.At(0, 2), Y: -view.At(1, 2), Z: -view.At(2, 2)}
	c.View = mathutil.Mul(c.Projection, view)
}

// LookAt places the camera at pos facing target and derives Orientation
// from the resulting view.
func (c *Camera) LookAt(pos, target, up mathutil.Vec3) {
	c.Position = pos
	c.Forward = target.Sub(pos).NormalOf()
	c.Right = c.Forward.Cross(up.NormalOf()).NormalOf()
	c.Up = c.Right.Cross(c.Forward).NormalOf()

	var view mathutil.Mat4
	view.SetRow(0, mathutil.Vec4{X: c.Right.X, Y: c.Up.X, Z: -c.Forward.X})
	view.SetRow(1, mathutil.Vec4{X: c.Right.Y, Y: c.Up.Y, Z: -c.Forward.Y})
	view.SetRow(2, mathutil.Vec4{X: c.Right.Z, Y: c.Up.Z, Z: -c.Forward.Z})
	view.SetRow(3, mathutil.Vec4{
		X: c.Right.Neg().Dot(pos),
		Y: c.Up.Neg().Dot(pos),
		Z: c.Forward.Dot(pos),
		W: 1,
	})
	c.Orientation = mathutil.Mat4ToQuaternion(&view)
	c.View = mathutil.Mul(c.Projection, view)
}

// LookAtDefault is LookAt with up = (0, 1, 0).
func (c *Camera) LookAtDefault(pos, target mathutil.Vec3) {
	c.LookAt(pos, target, mathutil.Vec3{X: 0, Y: 1, Z: 0})
}

// Rotate turns the camera by angle radians around axis, given in world
// space, and updates the view.
func (c *Camera) Rotate(axis mathutil.Vec3, angle float32) {
	mathutil.Rotate(&c.Orientation, axis, angle)
	c.UpdateView()
}

// Look applies a mouse-style yaw around world up and pitch around the
// camera's own right axis. dx and dy are scaled by MouseSensitivity and
// RotateSpeed.
func (c *Camera) Look(dx, dy float32) {
	yaw := dx * c.MouseSensitivity * c.RotateSpeed.X
	pitch := dy * c.MouseSensitivity * c.RotateSpeed.Y
	mathutil.Rotate(&c.Orientation, mathutil.Vec3{X: 0, Y: 1, Z: 0}, yaw)
	c.Orientation = mathutil.QuatMul(mathutil.RotationToQuaternion(mathutil.Vec3{X: 1, Y: 0, Z: 0}, pitch), c.Orientation)
	c.Orientation.Normalize()
	c.UpdateView()
}

// Move translates the camera along its own right, up and forward axes by
// delta scaled by MoveSpeed, then updates the view.
func (c *Camera) Move(delta mathutil.Vec3) {
	step := c.Right.Scale(delta.X).Add(c.Up.Scale(delta.Y)).Add(c.Forward.Scale(delta.Z))
	c.Position.AddAssign(step.Scale(c.MoveSpeed))
	c.UpdateView()
}

// Clone returns a copy of c.
func (c *Camera) Clone() *Camera {
	cc := *c
	return &cc
}
