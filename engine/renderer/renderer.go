package renderer

import (
	"errors"
	"fmt"
	"sync"

	"github.com/Carmen-Shannon/oxy-flycam/engine/camera"
	"github.com/Carmen-Shannon/oxy-flycam/engine/frustum"
	"github.com/cogentcore/webgpu/wgpu"
	"go.uber.org/zap"
)

// SurfaceSource is anything that can provide a WebGPU surface and its pixel size.
// engine/window.Window satisfies it.
type SurfaceSource interface {
	SurfaceDescriptor() *wgpu.SurfaceDescriptor
	Width() int
	Height() int
}

// renderer is the implementation of the Renderer interface.
type renderer struct {
	mu     *sync.Mutex
	logger *zap.Logger

	backendType RendererBackendType
	backend     RendererBackend

	// Pre-creation config collected from builder options
	forceFallbackAdapter bool
	presentMode          PresentMode
	msaa                 MSAASampleCount
	clearColor           ClearColor

	width  int
	height int
}

// Renderer draws the scene through a WebGPU swapchain using the camera's view-projection.
type Renderer interface {
	// Resize reconfigures the swapchain for a new surface size.
	// Zero sizes (minimized windows) are ignored.
	//
	// Parameters:
	//   - width: the new width of the surface in pixels
	//   - height: the new height of the surface in pixels
	//
	// Returns:
	//   - error: an error if the surface could not be reconfigured
	Resize(width, height int) error

	// SetPresentMode changes the present mode and reconfigures the surface at the current size.
	//
	// Parameters:
	//   - mode: the PresentMode to use
	//
	// Returns:
	//   - error: an error if the surface could not be reconfigured
	SetPresentMode(mode PresentMode) error

	// PresentMode returns the active present mode.
	PresentMode() PresentMode

	// DrawFrame uploads the frustum's view-projection and renders one frame.
	//
	// Parameters:
	//   - f: the camera frustum for this frame
	//
	// Returns:
	//   - error: an error if the frame could not be acquired or submitted
	DrawFrame(f frustum.Frustum) error

	// Release frees all GPU resources. The renderer must not be used afterwards.
	Release()
}

var _ Renderer = &renderer{}

// NewRenderer creates a Renderer for the given surface, configures the swapchain and
// uploads the scene.
//
// Parameters:
//   - backendType: the type of rendering backend to use (e.g., WGPU)
//   - surface: the surface provider, typically the window
//   - options: variadic list of RendererBuilderOption functions to configure the Renderer
//
// Returns:
//   - Renderer: the ready renderer
//   - error: an error if any GPU object could not be created
func NewRenderer(backendType RendererBackendType, surface SurfaceSource, options ...RendererBuilderOption) (Renderer, error) {
	r := &renderer{
		mu:          &sync.Mutex{},
		logger:      zap.NewNop(),
		backendType: backendType,
		presentMode: PresentModeVSync,
		msaa:        MSAA4x,
		clearColor:  DefaultClearColor,
		width:       surface.Width(),
		height:      surface.Height(),
	}

	// Apply options first so config flags (e.g. forceFallbackAdapter) are
	// available before the backend requests a GPU adapter.
	for _, opt := range options {
		opt(r)
	}

	var err error
	switch backendType {
	case BackendTypeWGPU:
		fallthrough
	default:
		r.backend, err = newWGPURendererBackend(surface.SurfaceDescriptor(), r.forceFallbackAdapter, r.msaa, r.clearColor, r.logger)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create renderer backend: %w", err)
	}

	r.backend.SetPresentMode(r.presentMode)
	if err := r.backend.ConfigureSurface(r.width, r.height); err != nil {
		r.backend.Release()
		return nil, fmt.Errorf("failed to configure surface: %w", err)
	}

	vertexData := marshalVertices(TriangleVertices)
	if err := r.backend.InitScene(triangleShaderSource(), vertexData, uint32(len(TriangleVertices))); err != nil {
		r.backend.Release()
		return nil, fmt.Errorf("failed to initialize scene: %w", err)
	}

	r.logger.Info("renderer ready",
		zap.Stringer("present_mode", r.presentMode),
		zap.Int("width", r.width),
		zap.Int("height", r.height),
	)
	return r, nil
}

func (r *renderer) Resize(width, height int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if width <= 0 || height <= 0 {
		return nil
	}
	r.width, r.height = width, height
	return r.backend.ConfigureSurface(width, height)
}

func (r *renderer) SetPresentMode(mode PresentMode) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.presentMode = mode
	r.backend.SetPresentMode(mode)
	return r.backend.ConfigureSurface(r.width, r.height)
}

func (r *renderer) PresentMode() PresentMode {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.presentMode
}

func (r *renderer) DrawFrame(f frustum.Frustum) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.backend.WriteCamera(camera.NewGPUCameraUniform(f)); err != nil {
		return fmt.Errorf("failed to upload camera uniform: %w", err)
	}

	if err := r.backend.BeginFrame(); err != nil {
		if errors.Is(err, errFrameInProgress) {
			r.logger.Debug("skipping frame", zap.Error(err))
			return nil
		}
		return fmt.Errorf("failed to begin frame: %w", err)
	}
	r.backend.Draw()
	if err := r.backend.EndFrame(); err != nil {
		return err
	}
	r.backend.Present()
	return nil
}

func (r *renderer) Release() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.backend.Release()
	r.logger.Info("renderer released")
}
