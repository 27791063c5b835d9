package window

import (
	"testing"

	"github.com/Carmen-Shannon/oxy-flycam/engine/input"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/stretchr/testify/assert"
)

func TestElementState(t *testing.T) {
	assert.Equal(t, input.Pressed, elementState(glfw.Press))
	assert.Equal(t, input.Pressed, elementState(glfw.Repeat))
	assert.Equal(t, input.Released, elementState(glfw.Release))
}

func TestModifiersDropLockKeys(t *testing.T) {
	assert.Equal(t, input.NoModifiers, modifiers(glfw.ModCapsLock|glfw.ModNumLock))
	assert.Equal(t, input.ModShift|input.ModSuper, modifiers(glfw.ModShift|glfw.ModSuper|glfw.ModCapsLock))
	assert.Equal(t, input.ModControl|input.ModAlt, modifiers(glfw.ModControl|glfw.ModAlt))
}

func TestKeyCodesMatchGLFW(t *testing.T) {
	assert.Equal(t, int(glfw.KeyW), int(input.KeyW))
	assert.Equal(t, int(glfw.KeyEscape), int(input.KeyEscape))
	assert.Equal(t, int(glfw.KeyLast)+1, input.KeyCount)
	assert.Equal(t, int(glfw.MouseButtonLeft), int(input.MouseButtonLeft))
	assert.Equal(t, int(glfw.MouseButtonMiddle), int(input.MouseButtonMiddle))
}

func TestAspectRatio(t *testing.T) {
	assert.Equal(t, float32(2), aspectRatio(200, 100))
	assert.Equal(t, float32(1), aspectRatio(0, 0))
	assert.Equal(t, float32(1), aspectRatio(800, 0))
}
