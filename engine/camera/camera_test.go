package camera

import (
	"math"
	"testing"

	"github.com/Carmen-Shannon/oxy-flycam/common"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

// vecNear compares component-wise with an absolute tolerance; mgl32's relative
// comparison rejects float32 residue next to an exact zero.
func vecNear(t *testing.T, want, got mgl32.Vec3) {
	t.Helper()
	assert.InDeltaSlice(t, want[:], got[:], 1e-5, "want %v, got %v", want, got)
}

func quatNear(t *testing.T, want, got mgl32.Quat) {
	t.Helper()
	assert.InDeltaSlice(t, []float32{want.W, want.V[0], want.V[1], want.V[2]},
		[]float32{got.W, got.V[0], got.V[1], got.V[2]}, 1e-6, "want %v, got %v", want, got)
}

func TestNewCameraDefaults(t *testing.T) {
	c := NewCamera()

	assert.Equal(t, DefaultFieldOfView, c.FieldOfView())
	assert.Equal(t, DefaultNear, c.Near())
	assert.Equal(t, DefaultFar, c.Far())
	assert.Equal(t, mgl32.Vec3{}, c.Position())
	assert.Equal(t, mgl32.QuatIdent(), c.Orientation())
}

func TestCameraOptions(t *testing.T) {
	c := NewCamera(
		WithFieldOfView(0.5),
		WithNear(1),
		WithFar(50),
		WithPosition(1, 2, 3),
		WithOrientation(mgl32.Quat{W: 2}),
	)

	assert.Equal(t, float32(0.5), c.FieldOfView())
	assert.Equal(t, float32(1), c.Near())
	assert.Equal(t, float32(50), c.Far())
	assert.Equal(t, mgl32.Vec3{1, 2, 3}, c.Position())
	assert.InDelta(t, 1.0, c.Orientation().Len(), 1e-6)
}

func TestSettersAreUnconditionalAndChain(t *testing.T) {
	c := NewCamera().SetNear(5).SetFar(1).SetFieldOfView(-1)

	assert.Equal(t, float32(5), c.Near())
	assert.Equal(t, float32(1), c.Far())
	assert.Equal(t, float32(-1), c.FieldOfView())
}

func TestLocalTranslateFromIdentity(t *testing.T) {
	c := NewCamera()
	c.LocalTranslateBy(mgl32.Vec3{1, 2, 3})
	vecNear(t, mgl32.Vec3{1, 2, 3}, c.Position())
}

func TestLocalTranslateAfterQuarterYaw(t *testing.T) {
	c := NewCamera()
	c.LocalYawBy(math.Pi / 2).LocalTranslateBy(mgl32.Vec3{0, 0, -1})
	vecNear(t, mgl32.Vec3{-1, 0, 0}, c.Position())
}

func TestTranslateByIsWorldSpace(t *testing.T) {
	c := NewCamera()
	c.LocalYawBy(math.Pi / 2).TranslateBy(mgl32.Vec3{0, 0, -1})
	vecNear(t, mgl32.Vec3{0, 0, -1}, c.Position())
}

func TestWorldYawRotatesPositionAboutOrigin(t *testing.T) {
	c := NewCamera(WithPosition(0, 0, 5))
	c.YawBy(math.Pi / 2)
	vecNear(t, mgl32.Vec3{5, 0, 0}, c.Position())
}

func TestLocalRotationKeepsPosition(t *testing.T) {
	c := NewCamera(WithPosition(0, 0, 5))
	c.LocalPitchBy(0.3).LocalRollBy(0.2).LocalYawBy(1.1)
	vecNear(t, mgl32.Vec3{0, 0, 5}, c.Position())
}

func TestRollAndPitchAxes(t *testing.T) {
	c := NewCamera()
	c.LocalPitchBy(math.Pi / 2).LocalTranslateBy(mgl32.Vec3{0, 0, -1})
	vecNear(t, mgl32.Vec3{0, 1, 0}, c.Position())

	c = NewCamera()
	c.LocalRollBy(math.Pi / 2).LocalTranslateBy(mgl32.Vec3{1, 0, 0})
	vecNear(t, mgl32.Vec3{0, 1, 0}, c.Position())
}

func TestOrientationStaysUnit(t *testing.T) {
	c := NewCamera()
	for range 5000 {
		c.LocalYawBy(0.013).LocalPitchBy(-0.007).RollBy(0.002).PitchBy(0.001)
	}
	assert.InDelta(t, 1.0, c.Orientation().Len(), 1e-5)
}

func TestFrustumAtIdentityIsProjection(t *testing.T) {
	c := NewCamera()
	f := c.Frustum(16.0 / 9.0)

	want := common.Perspective(DefaultFieldOfView, 16.0/9.0, DefaultNear, DefaultFar)
	vp := f.ViewProjection()
	assert.InDeltaSlice(t, want[:], vp[:], 1e-6)
}

func TestFrustumDoesNotMutateCamera(t *testing.T) {
	c := NewCamera(WithPosition(1, 2, 3))
	before := c.Transform()
	_ = c.Frustum(1)
	assert.Equal(t, before, c.Transform())
}

func TestGPUCameraUniformFromFrustum(t *testing.T) {
	c := NewCamera(WithPosition(4, 5, 6))
	u := NewGPUCameraUniform(c.Frustum(1))

	assert.Equal(t, 80, u.Size())
	assert.Equal(t, [3]float32{4, 5, 6}, u.CameraPosition)

	buf := u.Marshal()
	assert.Len(t, buf, 80)
	assert.Equal(t, math.Float32bits(4), uint32(buf[64])|uint32(buf[65])<<8|uint32(buf[66])<<16|uint32(buf[67])<<24)
	assert.Contains(t, GPUCameraUniformSource, "struct CameraUniform")
}
