// Package gltut holds the pieces shared by the lighting tutorials: the
// Tutorial interface the OpenGL backend drives, input events and key
// bindings, window options, YAML settings loading, logging and load errors.
//
// A command builds a tutorial's State from its settings, wraps it in the
// tutorial's Scene and hands that to the backend:
//
//	settings := tut14.DefaultSettings()
//	if err := gltut.LoadYAML(path, &settings); err != nil {
//		return err
//	}
//	st, err := tut14.NewState(settings)
//	if err != nil {
//		return err
//	}
//	return opengl.Run(tut14.NewScene(st), gltut.WithTitle("Material Texture"))
//
// States own no GL objects and can be driven from tests with a fake clock.
// Scenes own every GL handle and release them when the backend calls
// Release.
package gltut
