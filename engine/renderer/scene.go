package renderer

import (
	_ "embed"
	"encoding/binary"
	"math"
	"strings"

	"github.com/Carmen-Shannon/oxy-flycam/engine/camera"
	"github.com/go-gl/mathgl/mgl32"
)

//go:embed assets/triangle.wgsl
var triangleShaderBody string

// TriangleVertices is the hard-coded scene: one triangle in the z = 0 plane.
var TriangleVertices = []mgl32.Vec3{
	{-0.5, 0.0, 0.0},
	{0.0, 0.5, 0.0},
	{0.5, 0.0, 0.0},
}

// DefaultClearColor is opaque blue.
var DefaultClearColor = ClearColor{R: 0, G: 0, B: 1, A: 1}

// marshalVertices packs positions as tightly packed little-endian vec3<f32>.
//
// Parameters:
//   - vertices: positions to pack
//
// Returns:
//   - []byte: len(vertices) * vertexStride bytes
func marshalVertices(vertices []mgl32.Vec3) []byte {
	buf := make([]byte, len(vertices)*vertexStride)
	for i, v := range vertices {
		for c := range 3 {
			binary.LittleEndian.PutUint32(buf[i*vertexStride+c*4:], math.Float32bits(v[c]))
		}
	}
	return buf
}

// triangleShaderSource prepends the shared GPU struct definitions to the triangle shader body.
func triangleShaderSource() string {
	var sb strings.Builder
	sb.WriteString(camera.GPUCameraUniformSource)
	sb.WriteString("\n")
	sb.WriteString(triangleShaderBody)
	return sb.String()
}
