package tut14

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/go-theft-auto/gltut"
	"github.com/go-theft-auto/gltut/gaussian"
	"github.com/go-theft-auto/gltut/glutil"
	"github.com/go-theft-auto/gltut/matstack"
	"github.com/go-theft-auto/gltut/mesh"
	"github.com/go-theft-auto/gltut/shaders"
	"github.com/go-theft-auto/gltut/texture"
	"github.com/go-theft-auto/gltut/ubo"
)

var shaderPairs = [modeCount][2]string{
	ModeFixed:    {"tut14/pn.vert", "tut14/fixed-shininess.frag"},
	ModeTextured: {"tut14/pnt.vert", "tut14/texture-shininess.frag"},
	ModeComputed: {"tut14/pnt.vert", "tut14/texture-compute.frag"},
}

// Scene owns the GL objects of the tutorial and draws State each frame.
type Scene struct {
	st  *State
	res glutil.Resources

	programs [modeCount]*glutil.Program
	unlit    *glutil.Program

	object, plane, cube *mesh.Mesh

	projection, light, materials *glutil.UniformBuffer
	materialStride               int

	gaussianTextures []*glutil.Texture
	shininess        *glutil.Texture
	sampler          *glutil.Sampler
}

// NewScene wraps st; GL objects are created by Init.
func NewScene(st *State) *Scene {
	return &Scene{st: st}
}

// State returns the scene's frame state.
func (s *Scene) State() *State {
	return s.st
}

// Init creates programs, meshes, uniform buffers and textures.
func (s *Scene) Init() error {
	if err := s.initPrograms(); err != nil {
		return err
	}
	if err := s.initMeshes(); err != nil {
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

	if err := s.initBuffers(); err != nil {
		return err
	}
	if err := s.initTextures(); err != nil {
		return err
	}
	return glutil.CheckError("tut14 init")
}

func (s *Scene) initPrograms() error {
	for mode, pair := range shaderPairs {
		p, err := glutil.LoadProgram(shaders.FS, pair[0], pair[1])
		if err != nil {
			return err
		}
		s.res.Track(p.Name, p)
		p.BindBlock(shaders.BlockProjection, shaders.BindingProjection)
		p.BindBlock(shaders.BlockMaterial, shaders.BindingMaterial)
		p.BindBlock(shaders.BlockLight, shaders.BindingLight)
		p.SetSampler(shaders.SamplerGaussian, shaders.UnitGaussian)
		if RenderMode(mode) != ModeFixed {
			p.SetSampler(shaders.SamplerShininess, shaders.UnitShininess)
		}
		s.programs[mode] = p
	}

	unlit, err := glutil.LoadProgram(shaders.FS, "tut14/unlit.vert", "tut14/unlit.frag")
	if err != nil {
		return err
	}
	s.res.Track(unlit.Name, unlit)
	unlit.BindBlock(shaders.BlockProjection, shaders.BindingProjection)
	s.unlit = unlit
	return nil
}

func (s *Scene) initMeshes() error {
	var err error
	if path := s.st.settings.Mesh; path != "" {
		s.object, err = mesh.Load(path)
	} else {
		s.object, err = mesh.Upload(mesh.Torus(1, 0.4, 48, 24))
	}
	if err != nil {
		return fmt.Errorf("object mesh: %w", err)
	}
	s.res.Track("object mesh", s.object)
	if err := s.object.Require("lit", "lit-tex"); err != nil {
		return fmt.Errorf("object mesh: %w", err)
	}

	if s.cube, err = mesh.Upload(mesh.Cube()); err != nil {
		return fmt.Errorf("cube mesh: %w", err)
	}
	s.res.Track("cube mesh", s.cube)

	if s.plane, err = mesh.Upload(mesh.Plane(1)); err != nil {
		return fmt.Errorf("plane mesh: %w", err)
	}
	s.res.Track("plane mesh", s.plane)
	return nil
}

func (s *Scene) initBuffers() error {
	data, stride, err := ubo.PackMaterialArray(s.st.MaterialBlocks(), glutil.UniformBufferOffsetAlignment())
	if err != nil {
		return fmt.Errorf("pack materials: %w", err)
	}
	s.materialStride = stride
	if s.materials, err = glutil.NewUniformBuffer(len(data), data); err != nil {
		return err
	}
	s.res.Track("material buffer", s.materials)

	if s.light, err = glutil.NewUniformBuffer(ubo.LightSize, nil); err != nil {
		return err
	}
	s.res.Track("light buffer", s.light)
	s.light.BindBase(shaders.BindingLight)

	if s.projection, err = glutil.NewUniformBuffer(ubo.ProjectionSize, nil); err != nil {
		return err
	}
	s.res.Track("projection buffer", s.projection)
	s.projection.BindBase(shaders.BindingProjection)

	gltut.Logger.Debug("uniform buffers", "materialStride", stride, "materials", len(s.st.settings.Materials))
	return nil
}

func (s *Scene) initTextures() error {
	shinRes := s.st.settings.ShininessResolution
	for _, angleRes := range s.st.TextureResolutions() {
		table, err := gaussian.BuildTable(angleRes, shinRes)
		if err != nil {
			return err
		}
		tex, err := glutil.NewTextureR8(angleRes, shinRes, table)
		if err != nil {
			return fmt.Errorf("gaussian texture %d: %w", angleRes, err)
		}
		s.res.Track(fmt.Sprintf("gaussian texture %d", angleRes), tex)
		s.gaussianTextures = append(s.gaussianTextures, tex)
	}

	var img *texture.R8
	if path := s.st.settings.ShininessTexture; path != "" {
		var err error
		if img, err = texture.LoadR8(path); err != nil {
			return err
		}
	} else {
		img = texture.Shininess(256, 256)
	}
	tex, err := glutil.NewTextureR8(img.Width, img.Height, img.Pix)
	if err != nil {
		return fmt.Errorf("shininess texture: %w", err)
	}
	s.res.Track("shininess texture", tex)
	s.shininess = tex

	s.sampler = glutil.NewSampler(gl.NEAREST, gl.NEAREST)
	s.res.Track("sampler", s.sampler)
	return nil
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

// Display draws one frame. The framework has already cleared the buffers.
func (s *Scene) Display() {
	st := s.st
	st.Update()

	ms := matstack.New(st.View.CalcMatrix())
	buf, err := ubo.PackLight(st.LightBlock(ms.Top()))
	if err != nil {
		gltut.Logger.Error("pack light block", "error", err)
		return
	}
	if err := s.light.Update(0, buf); err != nil {
		gltut.Logger.Error("light update", "error", err)
		return
	}

	s.drawObject(ms)
	if st.DrawLights {
		s.drawLights(ms)
	}
	if st.DrawCameraPos {
		s.drawCameraTarget(ms)
	}
}

func (s *Scene) drawObject(ms *matstack.Stack) {
	st := s.st
	m := s.object
	if !st.UseObjectMesh {
		m = s.plane
	}

	s.materials.BindRange(shaders.BindingMaterial, st.CurrMaterial*s.materialStride, ubo.MaterialSize)
	ms.Scope(func() {
		ms.Apply(st.Object.CalcMatrix()).Scale(st.ObjectScale())
		modelToCamera := ms.Top()
		normal := ms.NormalMatrix()

		prog := s.programs[st.Mode]
		prog.Use()
		gl.UniformMatrix4fv(prog.Uniform("modelToCameraMatrix"), 1, false, &modelToCamera[0])
		gl.UniformMatrix3fv(prog.Uniform("normalModelToCameraMatrix"), 1, false, &normal[0])

		s.gaussianTextures[st.CurrTexture].Bind(shaders.UnitGaussian, s.sampler)
		s.shininess.Bind(shaders.UnitShininess, s.sampler)
		m.RenderVAO(st.VAO())
		glutil.Unbind(shaders.UnitShininess)
		glutil.Unbind(shaders.UnitGaussian)
		gl.UseProgram(0)
	})
	gl.BindBufferBase(gl.UNIFORM_BUFFER, shaders.BindingMaterial, 0)
}

func (s *Scene) drawLights(ms *matstack.Stack) {
	s.unlit.Use()
	color := s.unlit.Uniform("objectColor")
	modelToCamera := s.unlit.Uniform("modelToCameraMatrix")
	gl.Uniform4f(color, 1, 1, 1, 1)

	ms.Scope(func() {
		ms.Translate(s.st.LightPosition().Vec3()).Scale(0.25)
		top := ms.Top()
		gl.UniformMatrix4fv(modelToCamera, 1, false, &top[0])
		s.cube.RenderVAO("flat")
	})
	ms.Scope(func() {
		ms.Translate(GlobalLightDirection.Mul(100)).Scale(5)
		top := ms.Top()
		gl.UniformMatrix4fv(modelToCamera, 1, false, &top[0])
		s.cube.RenderVAO("flat")
	})
	gl.UseProgram(0)
}

// drawCameraTarget marks the view pole's target, first grey through the
// scene and then white where visible.
func (s *Scene) drawCameraTarget(ms *matstack.Stack) {
	ms.Scope(func() {
		ms.SetIdentity().Translate(mgl32.Vec3{0, 0, -s.st.View.View().Radius}).Scale(0.25)
		top := ms.Top()

		s.unlit.Use()
		color := s.unlit.Uniform("objectColor")
		gl.UniformMatrix4fv(s.unlit.Uniform("modelToCameraMatrix"), 1, false, &top[0])

		gl.Disable(gl.DEPTH_TEST)
		gl.DepthMask(false)
		gl.Uniform4f(color, 0.25, 0.25, 0.25, 1)
		s.cube.RenderVAO("flat")

		gl.DepthMask(true)
		gl.Enable(gl.DEPTH_TEST)
		gl.Uniform4f(color, 1, 1, 1, 1)
		s.cube.RenderVAO("flat")
		gl.UseProgram(0)
	})
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
