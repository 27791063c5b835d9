// Package common contains small math helpers shared by the camera, frustum and renderer packages.
package common

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Perspective creates a right-handed perspective projection matrix.
// Uses the WebGPU clip space convention: depth maps to [0, 1], near to 0 and far to 1.
// No validation is performed; near >= far or a zero aspect produce a degenerate matrix.
//
// Parameters:
//   - fovY: vertical field of view in radians
//   - aspect: viewport aspect ratio (width/height)
//   - near: near clipping plane distance
//   - far: far clipping plane distance
//
// Returns:
//   - mgl32.Mat4: the projection matrix (column-major)
func Perspective(fovY, aspect, near, far float32) mgl32.Mat4 {
	f := 1.0 / float32(math.Tan(float64(fovY)/2.0))

	var out mgl32.Mat4
	out[0] = f / aspect
	out[5] = f
	out[10] = far / (near - far)
	out[11] = -1.0
	out[14] = (near * far) / (near - far)
	return out
}

// Mat4Array copies a matrix into a plain column-major array for GPU upload.
//
// Parameters:
//   - m: the matrix to copy
//
// Returns:
//   - [16]float32: the matrix elements in column-major order
func Mat4Array(m mgl32.Mat4) [16]float32 {
	return [16]float32(m)
}
