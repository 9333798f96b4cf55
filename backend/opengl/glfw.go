package opengl

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/gltut"
)

// inputAdapter translates GLFW callbacks into tutorial events.
type inputAdapter struct {
	window *glfw.Window
	t      gltut.Tutorial
	held   [gltut.MouseButtonCount]bool
	mods   gltut.Modifiers

	// onKey sees every translated key before the tutorial; returning true
	// consumes it.
	onKey func(e gltut.KeyEvent) bool
}

func newInputAdapter(window *glfw.Window, t gltut.Tutorial) *inputAdapter {
	a := &inputAdapter{window: window, t: t}

	window.SetKeyCallback(a.keyCallback)
	window.SetMouseButtonCallback(a.mouseButtonCallback)
	window.SetScrollCallback(a.scrollCallback)
	window.SetCursorPosCallback(a.cursorPosCallback)

	return a
}

func (a *inputAdapter) keyCallback(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	a.mods = glfwModsToGltut(mods)
	if action == glfw.Release {
		return
	}
	k := glfwKeyToGltut(key)
	if k == gltut.KeyNone {
		return
	}
	if k == gltut.KeyEscape {
		w.SetShouldClose(true)
		return
	}
	e := gltut.KeyEvent{Key: k, Mods: a.mods}
	if a.onKey != nil && a.onKey(e) {
		return
	}
	a.t.HandleKey(e)
}

func (a *inputAdapter) mouseButtonCallback(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
	b, ok := glfwMouseButtonToGltut(button)
	if !ok {
		return
	}
	a.mods = glfwModsToGltut(mods)
	x, y := w.GetCursorPos()
	e := gltut.MouseEvent{Button: b, X: float32(x), Y: float32(y), Mods: a.mods}

	switch action {
	case glfw.Press:
		a.held[b] = true
		e.Action = gltut.MousePress
	case glfw.Release:
		if !a.held[b] {
			return
		}
		a.held[b] = false
		e.Action = gltut.MouseRelease
	default:
		return
	}
	a.t.HandleMouse(e)
}

func (a *inputAdapter) scrollCallback(w *glfw.Window, xoff, yoff float64) {
	if yoff == 0 {
		return
	}
	x, y := w.GetCursorPos()
	a.t.HandleMouse(gltut.MouseEvent{
		Action: gltut.MouseWheel,
		X:      float32(x),
		Y:      float32(y),
		Wheel:  float32(yoff),
		Mods:   a.currentMods(),
	})
}

func (a *inputAdapter) cursorPosCallback(w *glfw.Window, xpos, ypos float64) {
	b, ok := firstHeld(a.held)
	if !ok {
		return
	}
	a.t.HandleMouse(gltut.MouseEvent{
		Action: gltut.MouseDrag,
		Button: b,
		X:      float32(xpos),
		Y:      float32(ypos),
		Mods:   a.mods,
	})
}

// currentMods polls the modifier keys; scroll callbacks carry none.
func (a *inputAdapter) currentMods() gltut.Modifiers {
	down := func(keys ...glfw.Key) bool {
		for _, k := range keys {
			if a.window.GetKey(k) == glfw.Press {
				return true
			}
		}
		return false
	}
	var m gltut.Modifiers
	if down(glfw.KeyLeftShift, glfw.KeyRightShift) {
		m |= gltut.ModShift
	}
	if down(glfw.KeyLeftControl, glfw.KeyRightControl) {
		m |= gltut.ModCtrl
	}
	if down(glfw.KeyLeftAlt, glfw.KeyRightAlt) {
		m |= gltut.ModAlt
	}
	if down(glfw.KeyLeftSuper, glfw.KeyRightSuper) {
		m |= gltut.ModSuper
	}
	return m
}

// firstHeld returns the lowest-numbered pressed button.
func firstHeld(held [gltut.MouseButtonCount]bool) (gltut.MouseButton, bool) {
	for i, h := range held {
		if h {
			return gltut.MouseButton(i), true
		}
	}
	return 0, false
}

func glfwModsToGltut(mods glfw.ModifierKey) gltut.Modifiers {
	var m gltut.Modifiers
	if mods&glfw.ModShift != 0 {
		m |= gltut.ModShift
	}
	if mods&glfw.ModControl != 0 {
		m |= gltut.ModCtrl
	}
	if mods&glfw.ModAlt != 0 {
		m |= gltut.ModAlt
	}
	if mods&glfw.ModSuper != 0 {
		m |= gltut.ModSuper
	}
	return m
}

// glfwKeyToGltut maps GLFW keys to tutorial keys.
func glfwKeyToGltut(key glfw.Key) gltut.Key {
	if key >= glfw.Key0 && key <= glfw.Key9 {
		return gltut.DigitKey(int(key - glfw.Key0))
	}
	if key >= glfw.KeyKP0 && key <= glfw.KeyKP9 {
		return gltut.DigitKey(int(key - glfw.KeyKP0))
	}
	switch key {
	case glfw.KeyEscape:
		return gltut.KeyEscape
	case glfw.KeySpace:
		return gltut.KeySpace
	case glfw.KeyMinus:
		return gltut.KeyMinus
	case glfw.KeyEqual:
		return gltut.KeyEqual
	case glfw.KeyKPAdd:
		return gltut.KeyKPAdd
	case glfw.KeyKPSubtract:
		return gltut.KeyKPSubtract
	case glfw.KeyA:
		return gltut.KeyA
	case glfw.KeyB:
		return gltut.KeyB
	case glfw.KeyD:
		return gltut.KeyD
	case glfw.KeyE:
		return gltut.KeyE
	case glfw.KeyG:
		return gltut.KeyG
	case glfw.KeyI:
		return gltut.KeyI
	case glfw.KeyJ:
		return gltut.KeyJ
	case glfw.KeyK:
		return gltut.KeyK
	case glfw.KeyL:
		return gltut.KeyL
	case glfw.KeyP:
		return gltut.KeyP
	case glfw.KeyQ:
		return gltut.KeyQ
	case glfw.KeyS:
		return gltut.KeyS
	case glfw.KeyT:
		return gltut.KeyT
	case glfw.KeyW:
		return gltut.KeyW
	case glfw.KeyY:
		return gltut.KeyY
	case glfw.KeyF1:
		return gltut.KeyF1
	default:
		return gltut.KeyNone
	}
}

// glfwMouseButtonToGltut maps GLFW mouse buttons to tutorial buttons.
func glfwMouseButtonToGltut(button glfw.MouseButton) (gltut.MouseButton, bool) {
	switch button {
	case glfw.MouseButtonLeft:
		return gltut.MouseButtonLeft, true
	case glfw.MouseButtonRight:
		return gltut.MouseButtonRight, true
	case glfw.MouseButtonMiddle:
		return gltut.MouseButtonMiddle, true
	default:
		return 0, false
	}
}
