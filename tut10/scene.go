package tut10

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/go-theft-auto/gltut"
	"github.com/go-theft-auto/gltut/glutil"
	"github.com/go-theft-auto/gltut/matstack"
	"github.com/go-theft-auto/gltut/mesh"
	"github.com/go-theft-auto/gltut/shaders"
	"github.com/go-theft-auto/gltut/ubo"
)

// Scene owns the tutorial's GL objects.
type Scene struct {
	st  *State
	res glutil.Resources

	whiteDiffuse  *glutil.Program
	vertexDiffuse *glutil.Program
	unlit         *glutil.Program

	cylinder, plane, cube *mesh.Mesh
	projection            *glutil.UniformBuffer
}

// NewScene wraps st; GL objects are created by Init.
func NewScene(st *State) *Scene {
	return &Scene{st: st}
}

// State returns the scene's frame state.
func (s *Scene) State() *State {
	return s.st
}

func (s *Scene) loadProgram(vert, frag string) (*glutil.Program, error) {
	p, err := glutil.LoadProgram(shaders.FS, "tut10/"+vert, "tut10/"+frag)
	if err != nil {
		return nil, err
	}
	s.res.Track(p.Name, p)
	p.BindBlock(shaders.BlockProjection, shaders.BindingProjection)
	return p, nil
}

func (s *Scene) uploadMesh(name string, d *mesh.Data) (*mesh.Mesh, error) {
	m, err := mesh.Upload(d)
	if err != nil {
		return nil, fmt.Errorf("%s mesh: %w", name, err)
	}
	s.res.Track(name+" mesh", m)
	return m, nil
}

// Init creates programs, meshes and the projection buffer.
func (s *Scene) Init() error {
	var err error
	if s.whiteDiffuse, err = s.loadProgram("pos-vertex-lighting-PN.vert", "color-passthrough.frag"); err != nil {
		return err
	}
	if s.vertexDiffuse, err = s.loadProgram("pos-vertex-lighting-PCN.vert", "color-passthrough.frag"); err != nil {
		return err
	}
	if s.unlit, err = s.loadProgram("pos-transform.vert", "uniform-color.frag"); err != nil {
		return err
	}

	if path := s.st.settings.Mesh; path != "" {
		if s.cylinder, err = mesh.Load(path); err != nil {
			return err
		}
		s.res.Track("cylinder mesh", s.cylinder)
		if err := s.cylinder.Require("lit", "lit-color"); err != nil {
			return fmt.Errorf("cylinder mesh: %w", err)
		}
	} else if s.cylinder, err = s.uploadMesh("cylinder", mesh.Cylinder(32)); err != nil {
		return err
	}
	if s.plane, err = s.uploadMesh("plane", mesh.Plane(30)); err != nil {
		return err
	}
	if s.cube, err = s.uploadMesh("cube", mesh.Cube()); err != nil {
		return err
	}

	gl.Enable(gl.CULL_FACE)
	gl.CullFace(gl.BACK)
	gl.FrontFace(gl.CW)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthMask(true)
	gl.DepthFunc(gl.LEQUAL)
	gl.DepthRange(0, 1)
	gl.Enable(gl.DEPTH_CLAMP)

	if s.projection, err = glutil.NewUniformBuffer(ubo.ProjectionSize, nil); err != nil {
		return err
	}
	s.res.Track("projection buffer", s.projection)
	s.projection.BindRange(shaders.BindingProjection, 0, ubo.ProjectionSize)

	return glutil.CheckError("tut10 init")
}

// Reshape updates the projection block and viewport.
func (s *Scene) Reshape(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	proj := matstack.Identity().Perspective(45, float32(width)/float32(height), 1, 1000).Top()
	if err := s.projection.Update(0, ubo.PackProjection(proj)); err != nil {
		gltut.Logger.Warn("projection update", "error", err)
	}
	gl.Viewport(0, 0, int32(width), int32(height))
}

// Display draws one frame.
func (s *Scene) Display() {
	st := s.st
	st.Update()

	ms := matstack.New(st.View.CalcMatrix())
	lightPos := st.CameraSpaceLight(ms.Top())
	intensity := st.LightIntensity()
	ambient := st.AmbientIntensity()

	for _, p := range []*glutil.Program{s.whiteDiffuse, s.vertexDiffuse} {
		p.Use()
		gl.Uniform3fv(p.Uniform("lightPos"), 1, &lightPos[0])
		gl.Uniform4fv(p.Uniform("lightIntensity"), 1, &intensity[0])
		gl.Uniform4fv(p.Uniform("ambientIntensity"), 1, &ambient[0])
	}
	gl.UseProgram(0)

	ms.Scope(func() {
		s.drawLit(s.whiteDiffuse, ms, s.plane, "lit")
	})

	ms.Scope(func() {
		ms.Apply(st.Object.CalcMatrix())
		prog := s.whiteDiffuse
		if st.DrawColoredCyl {
			prog = s.vertexDiffuse
		}
		s.drawLit(prog, ms, s.cylinder, st.CylinderVAO())
	})

	if st.DrawLight {
		ms.Scope(func() {
			ms.Translate(st.LightPosition().Vec3()).Scale(0.1)
			top := ms.Top()
			s.unlit.Use()
			gl.UniformMatrix4fv(s.unlit.Uniform("modelToCameraMatrix"), 1, false, &top[0])
			gl.Uniform4f(s.unlit.Uniform("objectColor"), 0.8078, 0.8706, 0.9922, 1)
			s.cube.RenderVAO("flat")
			gl.UseProgram(0)
		})
	}
}

func (s *Scene) drawLit(p *glutil.Program, ms *matstack.Stack, m *mesh.Mesh, vao string) {
	top := ms.Top()
	normal := ms.NormalMatrix()
	p.Use()
	gl.UniformMatrix4fv(p.Uniform("modelToCameraMatrix"), 1, false, &top[0])
	gl.UniformMatrix3fv(p.Uniform("normalModelToCameraMatrix"), 1, false, &normal[0])
	m.RenderVAO(vao)
	gl.UseProgram(0)
}

// HandleMouse forwards to the poles.
func (s *Scene) HandleMouse(e gltut.MouseEvent) {
	s.st.HandleMouse(e)
}

// HandleKey runs the bound action for e.
func (s *Scene) HandleKey(e gltut.KeyEvent) {
	s.st.HandleKey(e)
}

// Status returns the HUD lines.
func (s *Scene) Status() []string {
	return s.st.Status()
}

// Release deletes every GL object created so far.
func (s *Scene) Release() {
	s.res.Release()
}

var (
	_ gltut.Tutorial       = (*Scene)(nil)
	_ gltut.StatusReporter = (*Scene)(nil)
)
