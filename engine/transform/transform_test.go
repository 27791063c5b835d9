package transform

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

const eps = 1e-5

func assertVec3(t *testing.T, want, got mgl32.Vec3) {
	t.Helper()
	assert.InDeltaSlice(t, want[:], got[:], eps, "want %v, got %v", want, got)
}

func assertMat4(t *testing.T, want, got mgl32.Mat4) {
	t.Helper()
	assert.InDeltaSlice(t, want[:], got[:], eps, "want %v, got %v", want, got)
}

func TestIdentity(t *testing.T) {
	tr := Identity()
	assertVec3(t, mgl32.Vec3{}, tr.Position)
	assertMat4(t, mgl32.Ident4(), tr.Matrix())
}

func TestAppendTranslation(t *testing.T) {
	tr := Identity()
	tr.AppendTranslation(mgl32.Vec3{1, 2, 3})
	tr.AppendTranslation(mgl32.Vec3{-1, 0, 1})
	assertVec3(t, mgl32.Vec3{0, 2, 4}, tr.Position)
}

func TestAppendRotationRotatesPositionAboutOrigin(t *testing.T) {
	tr := Identity()
	tr.AppendTranslation(mgl32.Vec3{0, 0, -1})
	tr.AppendRotation(mgl32.QuatRotate(math.Pi/2, mgl32.Vec3{0, 1, 0}))

	assertVec3(t, mgl32.Vec3{-1, 0, 0}, tr.Position)
	assertVec3(t, mgl32.Vec3{-1, 0, 0}, tr.Rotation.Rotate(mgl32.Vec3{0, 0, -1}))
}

func TestAppendRotationWrtCenterKeepsPosition(t *testing.T) {
	tr := Identity()
	tr.AppendTranslation(mgl32.Vec3{3, 0, 0})
	tr.AppendRotationWrtCenter(mgl32.QuatRotate(math.Pi/2, mgl32.Vec3{0, 1, 0}))

	assertVec3(t, mgl32.Vec3{3, 0, 0}, tr.Position)
}

func TestWorldAndBodyCompositionOrder(t *testing.T) {
	yaw := mgl32.QuatRotate(math.Pi/2, mgl32.Vec3{0, 1, 0})
	pitch := mgl32.QuatRotate(math.Pi/2, mgl32.Vec3{1, 0, 0})

	// Body: yaw first, then pitch about the already-yawed X axis.
	body := Identity()
	body.AppendRotationWrtCenter(yaw)
	body.AppendRotationWrtCenter(pitch)

	// World: pitch about the fixed world X axis after the yaw.
	world := Identity()
	world.AppendRotationWrtCenter(yaw)
	world.AppendRotation(pitch)

	forward := mgl32.Vec3{0, 0, -1}
	assertVec3(t, mgl32.Vec3{0, 1, 0}, body.Rotation.Rotate(forward))
	assertVec3(t, mgl32.Vec3{-1, 0, 0}, world.Rotation.Rotate(forward))
}

func TestRotationStaysNormalized(t *testing.T) {
	tr := Identity()
	q := mgl32.QuatRotate(0.013, mgl32.Vec3{1, 1, 0}.Normalize())
	for i := 0; i < 10000; i++ {
		tr.AppendRotationWrtCenter(q)
		tr.AppendRotation(q)
	}
	assert.InDelta(t, 1.0, tr.Rotation.Len(), eps)
}

func TestInverse(t *testing.T) {
	tr := Identity()
	tr.AppendRotationWrtCenter(mgl32.QuatRotate(0.7, mgl32.Vec3{0, 1, 0}))
	tr.AppendRotationWrtCenter(mgl32.QuatRotate(-0.3, mgl32.Vec3{1, 0, 0}))
	tr.AppendTranslation(mgl32.Vec3{4, -2, 9})

	product := tr.Matrix().Mul4(tr.Inverse().Matrix())
	assertMat4(t, mgl32.Ident4(), product)

	p := mgl32.Vec3{1, 2, 3}
	assertVec3(t, p, tr.Inverse().TransformPoint(tr.TransformPoint(p)))
}
