package gltut

// MouseButton represents a mouse button.
type MouseButton int

const (
	MouseButtonLeft MouseButton = iota
	MouseButtonRight
	MouseButtonMiddle
	MouseButtonCount
)

// MouseAction is the kind of pointer event delivered to a tutorial.
type MouseAction int

const (
	MousePress MouseAction = iota
	MouseDrag
	MouseRelease
	MouseWheel
)

// Key represents a keyboard key the tutorials react to.
type Key int

const (
	KeyNone Key = iota
	KeyEscape
	KeySpace
	KeyMinus
	KeyEqual
	KeyKPAdd
	KeyKPSubtract
	Key0
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9
	KeyA
	KeyB
	KeyD
	KeyE
	KeyG
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyP
	KeyQ
	KeyS
	KeyT
	KeyW
	KeyY
	KeyF1
	KeyCount
)

// Modifiers is a bit set of held modifier keys.
type Modifiers uint8

const (
	ModShift Modifiers = 1 << iota
	ModCtrl
	ModAlt
	ModSuper
)

// Has reports whether all modifiers in m2 are held.
func (m Modifiers) Has(m2 Modifiers) bool {
	return m&m2 == m2
}

// MouseEvent is a single pointer event in window coordinates.
type MouseEvent struct {
	Action MouseAction
	Button MouseButton
	X, Y   float32

	// Wheel is the vertical scroll offset; only set for MouseWheel.
	Wheel float32
	Mods  Modifiers
}

// KeyEvent is a key press (or auto-repeat).
type KeyEvent struct {
	Key  Key
	Mods Modifiers
}

// DigitKey returns the key for digit n (0-9), or KeyNone if n is out of range.
func DigitKey(n int) Key {
	if n < 0 || n > 9 {
		return KeyNone
	}
	return Key0 + Key(n)
}

// Digit returns the digit of a number key and true, or -1 and false.
func (k Key) Digit() (int, bool) {
	if k < Key0 || k > Key9 {
		return -1, false
	}
	return int(k - Key0), true
}

// KeyName returns a human-readable name for a key.
func KeyName(k Key) string {
	if d, ok := k.Digit(); ok {
		return string(rune('0' + d))
	}
	names := map[Key]string{
		KeyNone:       "--",
		KeyEscape:     "Esc",
		KeySpace:      "Space",
		KeyMinus:      "-",
		KeyEqual:      "=",
		KeyKPAdd:      "KP+",
		KeyKPSubtract: "KP-",
		KeyA:          "A",
		KeyB:          "B",
		KeyD:          "D",
		KeyE:          "E",
		KeyG:          "G",
		KeyI:          "I",
		KeyJ:          "J",
		KeyK:          "K",
		KeyL:          "L",
		KeyP:          "P",
		KeyQ:          "Q",
		KeyS:          "S",
		KeyT:          "T",
		KeyW:          "W",
		KeyY:          "Y",
		KeyF1:         "F1",
	}
	if name, ok := names[k]; ok {
		return name
	}
	return "?"
}

func (k Key) String() string { return KeyName(k) }
