package camera

import (
	"sync"

	"github.com/Carmen-Shannon/oxy-flycam/common"
	"github.com/Carmen-Shannon/oxy-flycam/engine/frustum"
	"github.com/Carmen-Shannon/oxy-flycam/engine/transform"
	"github.com/go-gl/mathgl/mgl32"
)

type cameraImpl struct {
	mu *sync.Mutex

	transform transform.Transform

	fov  float32
	near float32
	far  float32
}

// Camera defines the interface for a free-flying perspective camera.
// The camera holds a rigid transform and perspective settings; view and projection
// matrices are derived on demand through Frustum.
//
// World-frame rotations (RollBy, PitchBy, YawBy, RotateBy) rotate about the world origin,
// moving the position along with the orientation. Local-frame rotations rotate about the
// camera's own axes and leave the position untouched.
//
// Every mutator returns the camera so calls can be chained.
type Camera interface {
	// FieldOfView returns the vertical field of view in radians.
	//
	// Returns:
	//   - float32: field of view in radians
	FieldOfView() float32

	// Near returns the near clipping plane distance.
	//
	// Returns:
	//   - float32: near plane distance
	Near() float32

	// Far returns the far clipping plane distance.
	//
	// Returns:
	//   - float32: far plane distance
	Far() float32

	// Transform returns a copy of the camera transform.
	//
	// Returns:
	//   - transform.Transform: the camera-to-world transform
	Transform() transform.Transform

	// Position returns the world-space position.
	Position() mgl32.Vec3

	// Orientation returns the unit quaternion orientation.
	Orientation() mgl32.Quat

	// SetFieldOfView sets the vertical field of view. The value is not validated.
	//
	// Parameters:
	//   - fov: field of view in radians
	//
	// Returns:
	//   - Camera: the camera, for chaining
	SetFieldOfView(fov float32) Camera

	// SetNear sets the near clipping plane distance. The value is not validated.
	//
	// Parameters:
	//   - near: near plane distance
	//
	// Returns:
	//   - Camera: the camera, for chaining
	SetNear(near float32) Camera

	// SetFar sets the far clipping plane distance. The value is not validated.
	//
	// Parameters:
	//   - far: far plane distance
	//
	// Returns:
	//   - Camera: the camera, for chaining
	SetFar(far float32) Camera

	// RollBy rotates about the world Z axis.
	RollBy(angle float32) Camera

	// PitchBy rotates about the world X axis.
	PitchBy(angle float32) Camera

	// YawBy rotates about the world Y axis.
	YawBy(angle float32) Camera

	// LocalRollBy rotates about the camera's own Z axis.
	LocalRollBy(angle float32) Camera

	// LocalPitchBy rotates about the camera's own X axis.
	LocalPitchBy(angle float32) Camera

	// LocalYawBy rotates about the camera's own Y axis.
	LocalYawBy(angle float32) Camera

	// RotateBy composes q in the world frame.
	//
	// Parameters:
	//   - q: unit quaternion rotation
	//
	// Returns:
	//   - Camera: the camera, for chaining
	RotateBy(q mgl32.Quat) Camera

	// LocalRotateBy composes q in the camera's own frame.
	//
	// Parameters:
	//   - q: unit quaternion rotation
	//
	// Returns:
	//   - Camera: the camera, for chaining
	LocalRotateBy(q mgl32.Quat) Camera

	// TranslateBy offsets the position by a world-space vector.
	//
	// Parameters:
	//   - v: world-space offset
	//
	// Returns:
	//   - Camera: the camera, for chaining
	TranslateBy(v mgl32.Vec3) Camera

	// LocalTranslateBy offsets the position by a vector expressed in the camera frame.
	// (0, 0, -1) moves the camera one unit in the direction it is looking.
	//
	// Parameters:
	//   - v: camera-space offset
	//
	// Returns:
	//   - Camera: the camera, for chaining
	LocalTranslateBy(v mgl32.Vec3) Camera

	// Frustum builds a snapshot of the view volume for the given aspect ratio.
	// The camera is not modified.
	//
	// Parameters:
	//   - aspect: viewport width / height
	//
	// Returns:
	//   - frustum.Frustum: the frustum snapshot
	Frustum(aspect float32) frustum.Frustum
}

var _ Camera = &cameraImpl{}

// Default perspective settings.
const (
	DefaultFieldOfView float32 = 1.0
	DefaultNear        float32 = 0.1
	DefaultFar         float32 = 10000.0
)

var (
	axisX = mgl32.Vec3{1, 0, 0}
	axisY = mgl32.Vec3{0, 1, 0}
	axisZ = mgl32.Vec3{0, 0, 1}
)

// NewCamera creates a new Camera at the origin looking down -Z.
//
// Parameters:
//   - options: functional options to configure the camera
//
// Returns:
//   - Camera: the newly created camera
func NewCamera(options ...CameraBuilderOption) Camera {
	c := &cameraImpl{
		mu:        &sync.Mutex{},
		transform: transform.Identity(),
		fov:       DefaultFieldOfView,
		near:      DefaultNear,
		far:       DefaultFar,
	}
	for _, option := range options {
		option(c)
	}
	return c
}

func (c *cameraImpl) FieldOfView() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.fov
}

func (c *cameraImpl) Near() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.near
}

func (c *cameraImpl) Far() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.far
}

func (c *cameraImpl) Transform() transform.Transform {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.transform
}

func (c *cameraImpl) Position() mgl32.Vec3 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.transform.Position
}

func (c *cameraImpl) Orientation() mgl32.Quat {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.transform.Rotation
}

func (c *cameraImpl) SetFieldOfView(fov float32) Camera {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.fov = fov
	return c
}

func (c *cameraImpl) SetNear(near float32) Camera {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.near = near
	return c
}

func (c *cameraImpl) SetFar(far float32) Camera {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.far = far
	return c
}

func (c *cameraImpl) RollBy(angle float32) Camera {
	return c.RotateBy(mgl32.QuatRotate(angle, axisZ))
}

func (c *cameraImpl) PitchBy(angle float32) Camera {
	return c.RotateBy(mgl32.QuatRotate(angle, axisX))
}

func (c *cameraImpl) YawBy(angle float32) Camera {
	return c.RotateBy(mgl32.QuatRotate(angle, axisY))
}

func (c *cameraImpl) LocalRollBy(angle float32) Camera {
	return c.LocalRotateBy(mgl32.QuatRotate(angle, axisZ))
}

func (c *cameraImpl) LocalPitchBy(angle float32) Camera {
	return c.LocalRotateBy(mgl32.QuatRotate(angle, axisX))
}

func (c *cameraImpl) LocalYawBy(angle float32) Camera {
	return c.LocalRotateBy(mgl32.QuatRotate(angle, axisY))
}

func (c *cameraImpl) RotateBy(q mgl32.Quat) Camera {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.transform.AppendRotation(q)
	return c
}

func (c *cameraImpl) LocalRotateBy(q mgl32.Quat) Camera {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.transform.AppendRotationWrtCenter(q)
	return c
}

func (c *cameraImpl) TranslateBy(v mgl32.Vec3) Camera {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.transform.AppendTranslation(v)
	return c
}

func (c *cameraImpl) LocalTranslateBy(v mgl32.Vec3) Camera {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.transform.AppendTranslation(c.transform.Rotation.Rotate(v))
	return c
}

func (c *cameraImpl) Frustum(aspect float32) frustum.Frustum {
	c.mu.Lock()
	t, fov, near, far := c.transform, c.fov, c.near, c.far
	c.mu.Unlock()

	return frustum.New(t, common.Perspective(fov, aspect, near, far))
}
