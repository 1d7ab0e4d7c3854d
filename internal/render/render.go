// Package render draws a scenegraph.Scene with raylib. GPU resources are
// created on first use, after the window's context exists, and released once
// nothing in the scene refers to them any more.
package render

import (
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"

	"backdrop/internal/geometry"
	"backdrop/internal/logger"
	"backdrop/internal/scenegraph"
)

// Overlay is drawn in screen space after the 3D pass, in the order added.
type Overlay interface {
	Draw()
}

// Renderer implements app.Renderer on top of a raylib window.
type Renderer struct {
	log *logger.Logger

	meshes   map[scenegraph.Geometry]*meshEntry
	programs map[*scenegraph.ShaderMaterial]*program
	lit      rl.Material
	litReady bool

	overlays []Overlay
	frame    uint64
}

type meshEntry struct {
	mesh rl.Mesh
	used uint64
}

// program is a compiled ShaderMaterial. ok is false when compilation failed;
// the entry stays cached so the failure is logged once.
type program struct {
	mtl  rl.Material
	ok   bool
	locs map[string]int32
	used uint64
}

// New returns a renderer for the current window.
func New(log *logger.Logger) *Renderer {
	return &Renderer{
		log:      log,
		meshes:   make(map[scenegraph.Geometry]*meshEntry),
		programs: make(map[*scenegraph.ShaderMaterial]*program),
	}
}

// AddOverlay appends o to the screen-space pass.
func (r *Renderer) AddOverlay(o Overlay) {
	r.overlays = append(r.overlays, o)
}

// Render draws every object cam can see, in render order, then the overlays.
func (r *Renderer) Render(s *scenegraph.Scene, cam *scenegraph.Camera) {
	r.frame++
	lights := scenegraph.CollectLights(s)

	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)
	rl.BeginMode3D(rl.Camera3D{
		Position:   vec3(cam.Position),
		Target:     vec3(cam.Target),
		Up:         vec3(cam.Up),
		Fovy:       cam.Fov,
		Projection: rl.CameraPerspective,
	})
	for _, o := range scenegraph.DrawList(s, cam) {
		r.draw(o, lights, cam)
	}
	rl.EndMode3D()
	for _, o := range r.overlays {
		o.Draw()
	}
	rl.EndDrawing()
	r.sweep()
}

func (r *Renderer) draw(o *scenegraph.Object, ls scenegraph.LightSet, cam *scenegraph.Camera) {
	pos := o.WorldPosition()
	switch m := o.Mesh.Material.(type) {
	case *scenegraph.ShaderMaterial:
		r.drawShaded(o.Mesh.Geometry, m, pos)
	case *scenegraph.PhysicalMaterial:
		r.drawLit(o.Mesh.Geometry, m, ls, cam, pos)
	case *scenegraph.StandardMaterial:
		drawFlat(o.Mesh.Geometry, m, ls, pos)
	case *scenegraph.BasicMaterial:
		drawBasic(o.Mesh.Geometry, m, pos)
	}
}

func (r *Renderer) drawShaded(g scenegraph.Geometry, m *scenegraph.ShaderMaterial, pos mgl32.Vec3) {
	p := r.program(m)
	if !p.ok {
		return
	}
	p.setUniforms(m.Uniforms)

	rl.DrawRenderBatchActive()
	if !m.DepthWrite {
		rl.DisableDepthMask()
	}
	if !m.DepthTest {
		rl.DisableDepthTest()
	}
	if m.Side == scenegraph.DoubleSide {
		rl.DisableBackfaceCulling()
	}

	switch g := g.(type) {
	case *geometry.Plane:
		// raylib planes lie in XZ facing +Y; stand them up to face the camera on +Z.
		transform := rl.MatrixMultiply(rl.MatrixRotateX(rl.Pi/2), rl.MatrixTranslate(pos[0], pos[1], pos[2]))
		rl.DrawMesh(r.mesh(g), p.mtl, transform)
	case *geometry.Line:
		rl.BeginShaderMode(p.mtl.Shader)
		rl.DrawLine3D(vec3(g.Points[0].Add(pos)), vec3(g.Points[1].Add(pos)), rl.White)
		rl.EndShaderMode()
	}

	rl.DrawRenderBatchActive()
	rl.EnableBackfaceCulling()
	rl.EnableDepthTest()
	rl.EnableDepthMask()
}

func (r *Renderer) drawLit(g scenegraph.Geometry, m *scenegraph.PhysicalMaterial, ls scenegraph.LightSet, cam *scenegraph.Camera, pos mgl32.Vec3) {
	sphere, ok := g.(*geometry.Sphere)
	if !ok {
		return
	}
	r.ensureLit()
	if albedo := r.lit.GetMap(rl.MapAlbedo); albedo != nil {
		albedo.Color = rgba(m.Color)
	}
	setLitUniforms(r.lit.Shader, ls, cam.Position, m)
	rl.DrawMesh(r.mesh(sphere), r.lit, rl.MatrixTranslate(pos[0], pos[1], pos[2]))
}

// drawFlat shades triangles on the CPU, one color per face.
func drawFlat(g scenegraph.Geometry, m *scenegraph.StandardMaterial, ls scenegraph.LightSet, pos mgl32.Vec3) {
	tri, ok := g.(*geometry.Triangle)
	if !ok {
		return
	}
	a := tri.Vertices[0].Add(pos)
	b := tri.Vertices[1].Add(pos)
	c := tri.Vertices[2].Add(pos)
	centroid := a.Add(b).Add(c).Mul(1.0 / 3)
	col := rgba(ls.Shade(m.Color, m.Emissive, centroid, tri.Normal))
	if m.Wireframe {
		rl.DrawLine3D(vec3(a), vec3(b), col)
		rl.DrawLine3D(vec3(b), vec3(c), col)
		rl.DrawLine3D(vec3(c), vec3(a), col)
		return
	}
	rl.DrawTriangle3D(vec3(a), vec3(b), vec3(c), col)
	if m.Side == scenegraph.DoubleSide {
		rl.DrawTriangle3D(vec3(a), vec3(c), vec3(b), col)
	}
}

func drawBasic(g scenegraph.Geometry, m *scenegraph.BasicMaterial, pos mgl32.Vec3) {
	sphere, ok := g.(*geometry.Sphere)
	if !ok {
		return
	}
	rings, slices := int32(sphere.HeightSegments), int32(sphere.WidthSegments)
	if m.Wireframe {
		rl.DrawSphereWires(vec3(pos), sphere.Radius, rings, slices, rgba(m.Color))
		return
	}
	rl.DrawSphereEx(vec3(pos), sphere.Radius, rings, slices, rgba(m.Color))
}

// mesh returns the GPU mesh for g, generating it on first use.
func (r *Renderer) mesh(g scenegraph.Geometry) rl.Mesh {
	if e, ok := r.meshes[g]; ok {
		e.used = r.frame
		return e.mesh
	}
	var m rl.Mesh
	switch g := g.(type) {
	case *geometry.Plane:
		m = rl.GenMeshPlane(g.Width, g.Height, 1, 1)
	case *geometry.Sphere:
		m = rl.GenMeshSphere(g.Radius, g.HeightSegments, g.WidthSegments)
	}
	r.meshes[g] = &meshEntry{mesh: m, used: r.frame}
	return m
}

func (r *Renderer) ensureLit() {
	if r.litReady {
		return
	}
	r.lit = rl.LoadMaterialDefault()
	shader := rl.LoadShaderFromMemory(litVS, litFS)
	if rl.IsShaderValid(shader) && shader.ID != rl.GetShaderIdDefault() {
		r.lit.Shader = shader
	} else {
		r.log.Log("render: lit shader failed to compile; using raylib default")
	}
	r.litReady = true
}

// program compiles m on first use.
func (r *Renderer) program(m *scenegraph.ShaderMaterial) *program {
	if p, ok := r.programs[m]; ok {
		p.used = r.frame
		return p
	}
	p := &program{locs: make(map[string]int32), used: r.frame}
	shader := rl.LoadShaderFromMemory(m.VertexShader, m.FragmentShader)
	if rl.IsShaderValid(shader) && shader.ID != rl.GetShaderIdDefault() {
		p.mtl = rl.LoadMaterialDefault()
		p.mtl.Shader = shader
		p.ok = true
	} else {
		r.log.Log("render: shader failed to compile; object skipped")
	}
	r.programs[m] = p
	return p
}

// setUniforms uploads every uniform the program declares. Values of
// unsupported types are ignored.
func (p *program) setUniforms(u scenegraph.Uniforms) {
	shader := p.mtl.Shader
	for name, v := range u {
		loc, ok := p.locs[name]
		if !ok {
			loc = rl.GetShaderLocation(shader, name)
			p.locs[name] = loc
		}
		if loc < 0 {
			continue
		}
		switch v := v.(type) {
		case float32:
			rl.SetShaderValue(shader, loc, []float32{v}, rl.ShaderUniformFloat)
		case mgl32.Vec2:
			rl.SetShaderValueV(shader, loc, v[:], rl.ShaderUniformVec2, 1)
		case mgl32.Vec3:
			rl.SetShaderValueV(shader, loc, v[:], rl.ShaderUniformVec3, 1)
		case mgl32.Vec4:
			rl.SetShaderValueV(shader, loc, v[:], rl.ShaderUniformVec4, 1)
		}
	}
}

// sweep releases meshes and programs that were not drawn this frame.
func (r *Renderer) sweep() {
	for g, e := range r.meshes {
		if e.used != r.frame {
			rl.UnloadMesh(&e.mesh)
			delete(r.meshes, g)
		}
	}
	for m, p := range r.programs {
		if p.used != r.frame {
			if p.ok {
				rl.UnloadMaterial(p.mtl)
			}
			delete(r.programs, m)
		}
	}
}

// SetSize resizes the window when it does not already match.
func (r *Renderer) SetSize(w, h int) {
	if rl.GetScreenWidth() != w || rl.GetScreenHeight() != h {
		rl.SetWindowSize(w, h)
	}
}

// Size is the drawing-buffer size, which exceeds the window size on high-DPI displays.
func (r *Renderer) Size() (int, int) {
	return rl.GetRenderWidth(), rl.GetRenderHeight()
}

// Close releases every GPU resource the renderer created. The window stays open.
func (r *Renderer) Close() {
	r.frame++
	r.sweep()
	if r.litReady {
		rl.UnloadMaterial(r.lit)
		r.litReady = false
	}
}

func vec3(v mgl32.Vec3) rl.Vector3 {
	return rl.NewVector3(v[0], v[1], v[2])
}

func rgba(c scenegraph.Color) color.RGBA {
	return rl.NewColor(uint8(c.R*255+0.5), uint8(c.G*255+0.5), uint8(c.B*255+0.5), 255)
}
