package input

// Key is a keyboard key code.
// Values match GLFW key codes, which use ASCII values for printable keys.
// Reference: https://pkg.go.dev/github.com/go-gl/glfw/v3.3/glfw#Key
type Key int

// Printable keys (ASCII).
const (
	KeySpace      Key = 32
	KeyApostrophe Key = 39
	KeyComma      Key = 44
	KeyMinus      Key = 45
	KeyPeriod     Key = 46
	KeySlash      Key = 47

	Key0 Key = 48
	Key1 Key = 49
	Key2 Key = 50
	Key3 Key = 51
	Key4 Key = 52
	Key5 Key = 53
	Key6 Key = 54
	Key7 Key = 55
	Key8 Key = 56
	Key9 Key = 57

	KeyA Key = 65
	KeyB Key = 66
	KeyC Key = 67
	KeyD Key = 68
	KeyE Key = 69
	KeyF Key = 70
	KeyG Key = 71
	KeyH Key = 72
	KeyI Key = 73
	KeyJ Key = 74
	KeyK Key = 75
	KeyL Key = 76
	KeyM Key = 77
	KeyN Key = 78
	KeyO Key = 79
	KeyP Key = 80
	KeyQ Key = 81
	KeyR Key = 82
	KeyS Key = 83
	KeyT Key = 84
	KeyU Key = 85
	KeyV Key = 86
	KeyW Key = 87
	KeyX Key = 88
	KeyY Key = 89
	KeyZ Key = 90
)

// Function and navigation keys (GLFW).
const (
	KeyEscape    Key = 256
	KeyEnter     Key = 257
	KeyTab       Key = 258
	KeyBackspace Key = 259
	KeyRight     Key = 262
	KeyLeft      Key = 263
	KeyDown      Key = 264
	KeyUp        Key = 265

	KeyLeftShift    Key = 340
	KeyLeftControl  Key = 341
	KeyLeftAlt      Key = 342
	KeyRightShift   Key = 344
	KeyRightControl Key = 345
	KeyRightAlt     Key = 346
	KeyMenu         Key = 348
)

// KeyCount is the size of the key state table. Codes outside [0, KeyCount) are ignored.
const KeyCount = int(KeyMenu) + 1

// MouseButton identifies a mouse button. Left, Right and Middle have fixed ids;
// any other button is identified by its numeric id.
// Values match GLFW mouse button codes.
type MouseButton int

const (
	MouseButtonLeft   MouseButton = 0
	MouseButtonRight  MouseButton = 1
	MouseButtonMiddle MouseButton = 2
)

// MouseButtonCount is the size of the mouse button state table. Arbitrary; GLFW reports 8 buttons.
const MouseButtonCount = 32

// Modifiers is the set of modifier keys held when an input sample was produced.
// Bits match glfw.ModifierKey.
type Modifiers uint8

const (
	ModShift   Modifiers = 1 << 0
	ModControl Modifiers = 1 << 1
	ModAlt     Modifiers = 1 << 2
	ModSuper   Modifiers = 1 << 3
)

// NoModifiers is the empty modifier set.
const NoModifiers Modifiers = 0
