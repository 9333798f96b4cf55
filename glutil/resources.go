// Package glutil holds the OpenGL plumbing shared by the tutorials: program
// compilation, uniform buffers, textures, samplers and scoped release of
// every handle created through it.
//
// All functions require a current GL context on the calling thread.
package glutil

import "github.com/go-theft-auto/gltut"

// Resources releases GL handles in reverse creation order.
// The zero value is ready to use.
type Resources struct {
	releases []release
}

type release struct {
	name string
	fn   func()
}

// Add registers fn to run on Release.
func (r *Resources) Add(name string, fn func()) {
	r.releases = append(r.releases, release{name: name, fn: fn})
}

// Deleter is any GL object wrapper with a Delete method.
type Deleter interface {
	Delete()
}

// Track registers d.Delete under name.
func (r *Resources) Track(name string, d Deleter) {
	r.Add(name, d.Delete)
}

// Len returns the number of pending releases.
func (r *Resources) Len() int {
	return len(r.releases)
}

// Release runs every registered release, newest first, and forgets them.
// A panicking release does not stop the others. Safe to call repeatedly.
func (r *Resources) Release() {
	for len(r.releases) > 0 {
		n := len(r.releases) - 1
		rel := r.releases[n]
		r.releases = r.releases[:n]
		runRelease(rel)
	}
}

func runRelease(rel release) {
	defer func() {
		if p := recover(); p != nil {
			gltut.Logger.Error("release panicked", "resource", rel.name, "panic", p)
		}
	}()
	gltut.Logger.Debug("release", "resource", rel.name)
	rel.fn()
}
