package renderer

import (
	"github.com/Carmen-Shannon/oxy-flycam/engine/camera"
	"github.com/cogentcore/webgpu/wgpu"
)

// RendererBackendType identifies the GPU backend implementation used by the Renderer.
type RendererBackendType int

const (
	// BackendTypeWGPU selects the WebGPU-based rendering backend.
	BackendTypeWGPU RendererBackendType = iota
)

// PresentMode controls how rendered frames are presented to the display surface.
type PresentMode int

const (
	// PresentModeVSync waits for the next vertical blank before presenting, capping frame rate
	// to the monitor's refresh rate. Eliminates tearing.
	PresentModeVSync PresentMode = iota

	// PresentModeUncapped presents frames immediately without waiting for vertical blank.
	// May cause screen tearing but provides the lowest latency.
	PresentModeUncapped
)

func (m PresentMode) String() string {
	if m == PresentModeVSync {
		return "vsync"
	}
	return "uncapped"
}

// MSAASampleCount controls the number of samples used for multisample anti-aliasing (MSAA).
// WebGPU guarantees support for 1 (off) and 4.
type MSAASampleCount uint32

const (
	// MSAAOff disables multisample anti-aliasing (sample count 1).
	MSAAOff MSAASampleCount = 1

	// MSAA4x enables 4x multisample anti-aliasing.
	MSAA4x MSAASampleCount = 4
)

// ClearColor is the RGBA color the frame is cleared to before drawing.
type ClearColor struct {
	R, G, B, A float64
}

// RendererBackend is the top-level backend interface for the Renderer.
// It embeds the concrete backend interface for the selected GPU API.
type RendererBackend interface {
	wgpuRendererBackend
}

// wgpuRendererBackend is the set of GPU operations the renderer drives each frame.
type wgpuRendererBackend interface {
	// ConfigureSurface (re)configures the swapchain and any size-dependent attachments.
	ConfigureSurface(width, height int) error

	// SetPresentMode stores the present mode used by the next ConfigureSurface.
	SetPresentMode(mode PresentMode)

	// InitScene creates the triangle pipeline, the vertex buffer and the camera bind group.
	// Must be called after the first ConfigureSurface so the surface format is known.
	InitScene(shaderSource string, vertexData []byte, vertexCount uint32) error

	// WriteCamera uploads the camera uniform.
	WriteCamera(uniform camera.GPUCameraUniform) error

	// BeginFrame acquires the swapchain texture and begins the main render pass.
	BeginFrame() error

	// Draw encodes the scene draw in the current render pass.
	Draw()

	// EndFrame ends the current render pass and submits the command buffer.
	EndFrame() error

	// Present presents the surface and releases the swapchain texture.
	Present()

	// Device returns the underlying GPU device.
	Device() *wgpu.Device

	// Release frees every GPU object held by the backend.
	Release()
}
