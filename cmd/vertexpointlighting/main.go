// Command vertexpointlighting renders a cylinder on a ground plane lit per
// vertex by a point light circling above it.
//
// I/K raise and lower the light, J/L shrink and grow its orbit (Shift for
// small steps), Space toggles vertex colors, Y shows the light, B pauses.
// Left drag orbits the camera, right drag rotates the cylinder and the
// wheel zooms. F1 toggles the status HUD.
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"

	"github.com/go-theft-auto/gltut"
	"github.com/go-theft-auto/gltut/backend/opengl"
	"github.com/go-theft-auto/gltut/tut10"
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
		meshPath   = flag.String("mesh", "", "mesh XML file replacing the cylinder")
		noHUD      = flag.Bool("nohud", false, "hide the status overlay")
	)
	flag.Parse()
	gltut.SetVerbose(*verbose)

	settings := tut10.DefaultSettings()
	if err := gltut.LoadYAML(*configPath, &settings); err != nil {
		return err
	}
	if *meshPath != "" {
		settings.Mesh = *meshPath
	}

	st, err := tut10.NewState(settings)
	if err != nil {
		return err
	}

	opts := []gltut.Option{
		gltut.WithTitle("Vertex Point Lighting"),
		gltut.WithSize(*width, *height),
		gltut.WithHUD(!*noHUD),
		gltut.WithClearColor(0, 0, 0, 0),
	}
	if *screenshot != "" {
		opts = append(opts, gltut.WithScreenshot(*screenshot, 3))
	}
	return opengl.Run(tut10.NewScene(st), opts...)
}
