package gltut

import "fmt"

// LoadError reports a resource (mesh, shader, image, config) that could not
// be read or was malformed. Startup aborts on it.
type LoadError struct {
	Kind string // "mesh", "shader", "image", "config"
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("load %s: %v", e.Kind, e.Err)
	}
	return fmt.Sprintf("load %s %s: %v", e.Kind, e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }
