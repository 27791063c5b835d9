package frustum

import (
	"github.com/Carmen-Shannon/oxy-flycam/engine/transform"
	"github.com/go-gl/mathgl/mgl32"
)

// Frustum is an immutable snapshot of the camera's view volume.
// It holds the camera transform it was built from, the projection, and the derived
// view-projection matrix. A new Frustum is built every frame; it is never updated in place.
type Frustum struct {
	transform      transform.Transform
	projection     mgl32.Mat4
	view           mgl32.Mat4
	viewProjection mgl32.Mat4
}

// New builds a Frustum from a camera transform and a projection matrix.
// The view matrix is the exact rigid inverse of the transform, and
// ViewProjection = projection * view. A degenerate projection is passed through unchanged.
//
// Parameters:
//   - t: the camera transform (camera-to-world)
//   - projection: the projection matrix (column-major)
//
// Returns:
//   - Frustum: the frustum snapshot
func New(t transform.Transform, projection mgl32.Mat4) Frustum {
	view := t.Inverse().Matrix()
	return Frustum{
		transform:      t,
		projection:     projection,
		view:           view,
		viewProjection: projection.Mul4(view),
	}
}

// Transform returns the camera transform captured by this frustum.
func (f Frustum) Transform() transform.Transform {
	return f.transform
}

// Projection returns the projection matrix.
func (f Frustum) Projection() mgl32.Mat4 {
	return f.projection
}

// View returns the world-to-camera matrix.
func (f Frustum) View() mgl32.Mat4 {
	return f.view
}

// ViewProjection returns the combined projection * view matrix.
func (f Frustum) ViewProjection() mgl32.Mat4 {
	return f.viewProjection
}
