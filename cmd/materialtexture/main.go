// Command materialtexture renders an object lit by a rotating point light
// and a fixed directional light, with the specular term computed from a
// Gaussian lookup texture, a shininess texture or directly in the shader.
//
// Space cycles the render mode, 1-4 pick the Gaussian texture resolution,
// 8-9 pick the material, Y swaps the torus for a plane, T shows the camera
// target, G hides the light markers, P pauses and -/= step the light.
// Left drag orbits the camera, right drag rotates the object, the wheel
// zooms and W/A/S/D/Q/E move the camera target. F1 toggles the status HUD.
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"

	"github.com/go-theft-auto/gltut"
	"github.com/go-theft-auto/gltut/backend/opengl"
	"github.com/go-theft-auto/gltut/tut14"
)

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	var (
		configPath = flag.String("config", "", "YAML file overriding the default settings")
		width      = flag.Int("width", 500, "window width")
		height     = flag.Int("height", 500, "window height")
		verbose    = flag.Bool("verbose", false, "enable debug logging")
		screenshot = flag.String("screenshot", "", "render a few frames, write the last one to this JPEG file and exit")
		shininess  = flag.String("shininess", "", "image whose red channel is the shininess texture")
		meshPath   = flag.String("mesh", "", "mesh XML file replacing the torus")
		noHUD      = flag.Bool("nohud", false, "hide the status overlay")
	)
	flag.Parse()
	gltut.SetVerbose(*verbose)

	settings := tut14.DefaultSettings()
	if err := gltut.LoadYAML(*configPath, &settings); err != nil {
		return err
	}
	if *shininess != "" {
		settings.ShininessTexture = *shininess
	}
	if *meshPath != "" {
		settings.Mesh = *meshPath
	}

	st, err := tut14.NewState(settings)
	if err != nil {
		return err
	}

	opts := []gltut.Option{
		gltut.WithTitle("Material Texture"),
		gltut.WithSize(*width, *height),
		gltut.WithHUD(!*noHUD),
	}
	if *screenshot != "" {
		opts = append(opts, gltut.WithScreenshot(*screenshot, 3))
	}
	return opengl.Run(tut14.NewScene(st), opts...)
}
