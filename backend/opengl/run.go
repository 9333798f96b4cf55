// Package opengl drives a gltut.Tutorial with a GLFW window and an OpenGL
// 4.1 core context.
package opengl

import (
	"fmt"

	"github.com/chewxy/math32"
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/gltut"
	"github.com/go-theft-auto/gltut/hud"
)

// Run opens a window, initializes t and runs the main loop until the
// window is closed (or the screenshot has been written). t.Release is
// always called once the context exists, including when t.Init fails or
// the loop panics.
//
// Run must be called from the main goroutine with the OS thread locked.
func Run(t gltut.Tutorial, opts ...gltut.Option) (err error) {
	cfg := gltut.NewConfig(opts...)

	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.DepthBits, 24)
	if cfg.Screenshot != "" {
		glfw.WindowHint(glfw.Visible, glfw.False)
	}

	window, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	defer window.Destroy()
	window.MakeContextCurrent()
	glfw.SwapInterval(cfg.SwapInterval)

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}
	gltut.Logger.Info("context created",
		"renderer", gl.GoStr(gl.GetString(gl.RENDERER)),
		"version", gl.GoStr(gl.GetString(gl.VERSION)))

	defer t.Release()
	if err := t.Init(); err != nil {
		return fmt.Errorf("init %s: %w", cfg.Title, err)
	}

	var overlay *hud.Renderer
	if cfg.HUD {
		overlay, err = hud.NewRenderer(hud.NewAtlas(nil))
		if err != nil {
			return fmt.Errorf("hud: %w", err)
		}
		defer overlay.Delete()
		// Framebuffer pixels are smaller than screen points on HiDPI
		// displays; grow the glyphs by the whole content scale.
		if xs, _ := window.GetContentScale(); xs > 1 {
			overlay.Overlay().Scale = math32.Round(xs)
		}
	}
	showHUD := overlay != nil

	input := newInputAdapter(window, t)
	input.onKey = func(e gltut.KeyEvent) bool {
		if e.Key == gltut.KeyF1 && overlay != nil {
			showHUD = !showHUD
			return true
		}
		return false
	}

	width, height := window.GetFramebufferSize()
	t.Reshape(width, height)
	window.SetFramebufferSizeCallback(func(_ *glfw.Window, w, h int) {
		if w == 0 || h == 0 {
			return
		}
		width, height = w, h
		t.Reshape(w, h)
	})

	status, _ := t.(gltut.StatusReporter)
	c := cfg.ClearColor

	for frame := 1; !window.ShouldClose(); frame++ {
		gl.ClearColor(c[0], c[1], c[2], c[3])
		gl.ClearDepth(1)
		gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

		t.Display()
		if showHUD && status != nil {
			overlay.DrawLines(status.Status(), width, height)
		}

		if cfg.Screenshot != "" && frame >= cfg.ScreenshotFrames {
			gl.Finish()
			if err := captureJPEG(cfg.Screenshot, width, height); err != nil {
				return fmt.Errorf("screenshot: %w", err)
			}
			gltut.Logger.Info("screenshot written", "path", cfg.Screenshot, "width", width, "height", height)
			return nil
		}

		window.SwapBuffers()
		glfw.PollEvents()
	}
	return nil
}
