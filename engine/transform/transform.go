// Package transform holds the rigid position + orientation state shared by the camera and its frustum.
package transform

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Transform is a rigid transformation: a unit quaternion rotation followed by a translation.
// The zero value is not usable; start from Identity.
type Transform struct {
	// Position is the world-space translation.
	Position mgl32.Vec3

	// Rotation is the orientation. It is kept at unit length after every composition.
	Rotation mgl32.Quat
}

// Identity returns a Transform with no rotation and no translation.
//
// Returns:
//   - Transform: the identity transform
func Identity() Transform {
	return Transform{
		Position: mgl32.Vec3{0, 0, 0},
		Rotation: mgl32.QuatIdent(),
	}
}

// AppendRotation composes the given rotation on the left, in the world frame.
// The rotation is applied about the world origin, so the position is rotated as well.
//
// Parameters:
//   - q: the rotation to append (should be unit length)
func (t *Transform) AppendRotation(q mgl32.Quat) {
	t.Rotation = q.Mul(t.Rotation).Normalize()
	t.Position = q.Rotate(t.Position)
}

// AppendRotationWrtCenter composes the given rotation on the right, in the body frame.
// The rotation happens about the transform's own origin, so the position is unchanged.
//
// Parameters:
//   - q: the rotation to append (should be unit length)
func (t *Transform) AppendRotationWrtCenter(q mgl32.Quat) {
	t.Rotation = t.Rotation.Mul(q).Normalize()
}

// AppendTranslation offsets the position by v in the world frame.
//
// Parameters:
//   - v: world-space offset
func (t *Transform) AppendTranslation(v mgl32.Vec3) {
	t.Position = t.Position.Add(v)
}

// Inverse returns the exact inverse of the rigid transform.
// The rotation is conjugated and the translation is negated and rotated into the inverse frame,
// which avoids a general 4x4 inversion.
//
// Returns:
//   - Transform: the inverse transform
func (t Transform) Inverse() Transform {
	inv := t.Rotation.Conjugate()
	return Transform{
		Position: inv.Rotate(t.Position).Mul(-1),
		Rotation: inv,
	}
}

// Matrix returns the homogeneous 4x4 matrix T * R (column-major).
//
// Returns:
//   - mgl32.Mat4: the transform as a matrix
func (t Transform) Matrix() mgl32.Mat4 {
	return mgl32.Translate3D(t.Position.X(), t.Position.Y(), t.Position.Z()).Mul4(t.Rotation.Mat4())
}

// TransformPoint maps a point from the local frame into the world frame.
//
// Parameters:
//   - p: local-space point
//
// Returns:
//   - mgl32.Vec3: world-space point
func (t Transform) TransformPoint(p mgl32.Vec3) mgl32.Vec3 {
	return t.Rotation.Rotate(p).Add(t.Position)
}
