package frustum

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Plane represents a plane in 3D space using the equation: ax + by + cz + d = 0
// where (a, b, c) is the normal and d is the distance from origin.
type Plane struct {
	Normal   mgl32.Vec3
	Distance float32
}

// SignedDistance returns the signed distance from p to the plane.
// Positive values lie on the side the normal points to.
func (p Plane) SignedDistance(point mgl32.Vec3) float32 {
	return p.Normal.Dot(point) + p.Distance
}

// Plane indices returned by Planes.
const (
	PlaneLeft   = 0
	PlaneRight  = 1
	PlaneBottom = 2
	PlaneTop    = 3
	PlaneNear   = 4
	PlaneFar    = 5
)

// Planes extracts the six clip planes from the view-projection matrix.
// Planes are oriented so that the positive half-space is inside the frustum.
// Uses the Gribb/Hartmann method adapted to the [0, 1] depth range, so the near plane is row 2 alone.
//
// Reference: https://www8.cs.umu.se/kurser/5DV051/HT12/lab/plane_extraction.pdf
//
// Returns:
//   - [6]Plane: left, right, bottom, top, near, far (normalized)
func (f Frustum) Planes() [6]Plane {
	m := f.viewProjection
	r0, r1, r2, r3 := m.Row(0), m.Row(1), m.Row(2), m.Row(3)

	var planes [6]Plane
	planes[PlaneLeft] = planeFromRow(r3.Add(r0))
	planes[PlaneRight] = planeFromRow(r3.Sub(r0))
	planes[PlaneBottom] = planeFromRow(r3.Add(r1))
	planes[PlaneTop] = planeFromRow(r3.Sub(r1))
	planes[PlaneNear] = planeFromRow(r2)
	planes[PlaneFar] = planeFromRow(r3.Sub(r2))
	return planes
}

// ContainsPoint reports whether p lies inside or on all six planes.
func (f Frustum) ContainsPoint(p mgl32.Vec3) bool {
	return f.IntersectsSphere(p, 0)
}

// IntersectsSphere reports whether a sphere overlaps the frustum.
// Conservative: spheres near a corner may be reported as intersecting.
//
// Parameters:
//   - center: world-space sphere center
//   - radius: sphere radius
//
// Returns:
//   - bool: false only when the sphere is entirely outside one plane
func (f Frustum) IntersectsSphere(center mgl32.Vec3, radius float32) bool {
	for _, p := range f.Planes() {
		if p.SignedDistance(center) < -radius {
			return false
		}
	}
	return true
}

// planeFromRow builds a normalized plane from a combined matrix row.
func planeFromRow(row mgl32.Vec4) Plane {
	p := Plane{
		Normal:   row.Vec3(),
		Distance: row.W(),
	}
	length := p.Normal.Len()
	if length > 0 {
		invLen := 1.0 / length
		p.Normal = p.Normal.Mul(invLen)
		p.Distance *= invLen
	}
	return p
}
