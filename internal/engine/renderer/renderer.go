// Package renderer draws the scene with OpenGL.
package renderer

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/cornellbox/internal/engine/debug"
	"github.com/Faultbox/cornellbox/internal/engine/geometry"
	"github.com/Faultbox/cornellbox/internal/engine/picking"
	"github.com/Faultbox/cornellbox/internal/engine/shader"
	"github.com/Faultbox/cornellbox/internal/logger"
	"github.com/Faultbox/cornellbox/internal/scene"
	"github.com/Faultbox/cornellbox/pkg/math"
)

// Config holds renderer configuration.
type Config struct {
	Width  int
	Height int
}

// gpuMesh holds the buffers of one uploaded mesh.
type gpuMesh struct {
	vao, vbo, ebo uint32
	indexCount    int32
}

// Renderer handles all OpenGL rendering.
type Renderer struct {
	config Config
	log    *zap.Logger

	program uint32
	locs    map[string]int32

	lineProgram uint32
	lineVAO     uint32
	lineVBO     uint32
	lineLocs    map[string]int32

	// Meshes are immutable, so buffers are created once per mesh.
	meshes map[*geometry.Mesh]*gpuMesh
}

var phongUniforms = []string{
	"uModel", "uView", "uProjection", "uNormalMatrix", "uViewPos",
	"uNumLights", "uLightPositions", "uLightColors", "uLightIntensities",
	"uDiffuse", "uSpecular", "uEmission", "uShininess", "uAlpha",
}

// New creates a new renderer.
// Must be called after the OpenGL context is created.
func New(cfg Config) (*Renderer, error) {
	r := &Renderer{
		config: cfg,
		log:    logger.Named("renderer"),
		meshes: make(map[*geometry.Mesh]*gpuMesh),
	}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	r.log.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.CullFace(gl.BACK)
	gl.FrontFace(gl.CCW)

	var err error
	r.program, err = shader.CompileProgram(phongVertexShader, phongFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("phong shader: %w", err)
	}
	r.locs, err = shader.Uniforms(r.program, phongUniforms...)
	if err != nil {
		r.Close()
		return nil, fmt.Errorf("phong shader: %w", err)
	}

	if err := r.createLinePipeline(); err != nil {
		r.Close()
		return nil, fmt.Errorf("line shader: %w", err)
	}

	r.Resize(cfg.Width, cfg.Height)
	return r, nil
}

func (r *Renderer) createLinePipeline() error {
	var err error
	r.lineProgram, err = shader.CompileProgram(lineVertexShader, lineFragmentShader)
	if err != nil {
		return err
	}
	r.lineLocs, err = shader.Uniforms(r.lineProgram, "uViewProj", "uColor")
	if err != nil {
		return err
	}

	gl.GenVertexArrays(1, &r.lineVAO)
	gl.BindVertexArray(r.lineVAO)

	gl.GenBuffers(1, &r.lineVBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.lineVBO)
	gl.BufferData(gl.ARRAY_BUFFER, debug.BoxEdgeVertices*3*4, nil, gl.DYNAMIC_DRAW)

	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, 3*4, nil)
	gl.EnableVertexAttribArray(0)

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)
	return nil
}

// Close releases all GPU resources.
func (r *Renderer) Close() {
	r.log.Info("closing renderer", zap.Int("meshes", len(r.meshes)))
	for _, m := range r.meshes {
		gl.DeleteVertexArrays(1, &m.vao)
		gl.DeleteBuffers(1, &m.vbo)
		gl.DeleteBuffers(1, &m.ebo)
	}
	clear(r.meshes)

	if r.lineVAO != 0 {
		gl.DeleteVertexArrays(1, &r.lineVAO)
	}
	if r.lineVBO != 0 {
		gl.DeleteBuffers(1, &r.lineVBO)
	}
	if r.lineProgram != 0 {
		gl.DeleteProgram(r.lineProgram)
	}
	if r.program != 0 {
		gl.DeleteProgram(r.program)
	}
}

// Resize sets the viewport to the drawable size in pixels.
func (r *Renderer) Resize(width, height int) {
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	r.log.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// Size returns the viewport size.
func (r *Renderer) Size() (int, int) {
	return r.config.Width, r.config.Height
}

// Upload creates GPU buffers for a mesh. Meshes already uploaded are skipped.
func (r *Renderer) Upload(mesh *geometry.Mesh) error {
	if _, ok := r.meshes[mesh]; ok {
		return nil
	}
	if mesh.VertexCount() == 0 || len(mesh.Indices) == 0 {
		return fmt.Errorf("empty mesh")
	}

	vertices := mesh.Interleaved()
	m := &gpuMesh{indexCount: int32(len(mesh.Indices))}

	gl.GenVertexArrays(1, &m.vao)
	gl.BindVertexArray(m.vao)

	gl.GenBuffers(1, &m.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, gl.Ptr(vertices), gl.STATIC_DRAW)

	gl.GenBuffers(1, &m.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(mesh.Indices)*4, gl.Ptr(mesh.Indices), gl.STATIC_DRAW)

	const stride = geometry.InterleavedStride * 4
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, stride, nil)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, stride, 3*4)
	gl.EnableVertexAttribArray(1)

	gl.BindVertexArray(0)

	if errCode := gl.GetError(); errCode != gl.NO_ERROR {
		gl.DeleteVertexArrays(1, &m.vao)
		gl.DeleteBuffers(1, &m.vbo)
		gl.DeleteBuffers(1, &m.ebo)
		return fmt.Errorf("buffer upload failed: GL error 0x%x", errCode)
	}

	r.meshes[mesh] = m
	r.log.Debug("mesh uploaded",
		zap.Uint32("vao", m.vao),
		zap.Int("vertices", mesh.VertexCount()),
		zap.Int("triangles", mesh.TriangleCount()),
	)
	return nil
}

// UploadAll uploads the mesh of every entity.
func (r *Renderer) UploadAll(entities []*scene.Entity) error {
	for _, e := range entities {
		if err := r.Upload(e.Mesh); err != nil {
			return fmt.Errorf("entity %s: %w", e.Name, err)
		}
	}
	return nil
}

// Render clears the frame and draws items in order. Items are expected
// opaque first; blending and depth writes switch at the first transparent
// item.
func (r *Renderer) Render(frame scene.FrameUniforms, items []scene.DrawItem) {
	gl.ClearColor(frame.ClearColor.X, frame.ClearColor.Y, frame.ClearColor.Z, 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	gl.UseProgram(r.program)
	r.setFrameUniforms(frame)

	gl.Enable(gl.CULL_FACE)
	gl.Disable(gl.BLEND)
	gl.DepthMask(true)

	blending := false
	for i := range items {
		item := &items[i]
		if item.Material.IsTransparent() && !blending {
			blending = true
			gl.Enable(gl.BLEND)
			gl.DepthMask(false)
			gl.Disable(gl.CULL_FACE)
		}
		r.draw(item)
	}

	gl.DepthMask(true)
	gl.Disable(gl.BLEND)
	gl.BindVertexArray(0)
}

func (r *Renderer) setFrameUniforms(frame scene.FrameUniforms) {
	gl.UniformMatrix4fv(r.locs["uView"], 1, false, frame.View.Ptr())
	gl.UniformMatrix4fv(r.locs["uProjection"], 1, false, frame.Projection.Ptr())
	gl.Uniform3f(r.locs["uViewPos"], frame.CameraPos.X, frame.CameraPos.Y, frame.CameraPos.Z)

	lights := frame.Lights
	positions := lights.GetPositions()
	colors := lights.GetColors()
	intensities := lights.GetIntensities()
	gl.Uniform1i(r.locs["uNumLights"], int32(lights.Count))
	gl.Uniform3fv(r.locs["uLightPositions"], int32(len(intensities)), &positions[0])
	gl.Uniform3fv(r.locs["uLightColors"], int32(len(intensities)), &colors[0])
	gl.Uniform1fv(r.locs["uLightIntensities"], int32(len(intensities)), &intensities[0])
}

func (r *Renderer) draw(item *scene.DrawItem) {
	m, ok := r.meshes[item.Mesh]
	if !ok {
		r.log.Warn("mesh not uploaded", zap.String("entity", item.Name))
		return
	}

	mat := item.Material
	gl.UniformMatrix4fv(r.locs["uModel"], 1, false, item.Model.Ptr())
	gl.UniformMatrix3fv(r.locs["uNormalMatrix"], 1, false, item.Normal.Ptr())
	gl.Uniform3f(r.locs["uDiffuse"], mat.Diffuse.X, mat.Diffuse.Y, mat.Diffuse.Z)
	gl.Uniform3f(r.locs["uSpecular"], mat.Specular.X, mat.Specular.Y, mat.Specular.Z)
	gl.Uniform3f(r.locs["uEmission"], mat.Emission.X, mat.Emission.Y, mat.Emission.Z)
	gl.Uniform1f(r.locs["uShininess"], mat.Shininess)
	gl.Uniform1f(r.locs["uAlpha"], mat.Alpha)

	gl.BindVertexArray(m.vao)
	gl.DrawElements(gl.TRIANGLES, m.indexCount, gl.UNSIGNED_INT, nil)
}

// DrawBounds draws a wireframe box over the scene.
func (r *Renderer) DrawBounds(frame scene.FrameUniforms, box picking.AABB, color math.Vec3) {
	vertices := debug.BoxWireframe(box, 0.05)
	viewProj := frame.Projection.Mul(frame.View)

	gl.UseProgram(r.lineProgram)
	gl.UniformMatrix4fv(r.lineLocs["uViewProj"], 1, false, viewProj.Ptr())
	gl.Uniform3f(r.lineLocs["uColor"], color.X, color.Y, color.Z)

	gl.BindVertexArray(r.lineVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.lineVBO)
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(vertices)*4, gl.Ptr(vertices))
	gl.DrawArrays(gl.LINES, 0, debug.BoxEdgeVertices)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)
}

// ReadPixels reads the back buffer as bottom-up RGBA rows.
func (r *Renderer) ReadPixels() ([]byte, int, int) {
	width, height := r.config.Width, r.config.Height
	pixels := make([]byte, width*height*4)
	if len(pixels) == 0 {
		return pixels, width, height
	}
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(width), int32(height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	return pixels, width, height
}
