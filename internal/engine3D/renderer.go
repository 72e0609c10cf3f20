package engine3D

import (
	"math"

	"carousel3d/internal/carousel"
	"carousel3d/internal/scene"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Camera defaults of the carousel scene.
const (
	CameraDistance = 5.0
	CameraFovy     = 75.0
)

// Renderer draws the carousel items with the item shader. It owns the item
// textures from NewRenderer until Close.
type Renderer struct {
	Camera rl.Camera3D

	textures []rl.Texture2D
	uniforms []scene.UniformCache
	scene    *scene.Scene
	shaders  *ShaderCache

	mesh       rl.Mesh
	meshLoaded bool
	meshWidth  float64
	meshHeight float64
	material   rl.Material

	settings  carousel.Settings
	viewportW float64
	viewportH float64
	now       float64
	warned    map[int]bool
}

// NewRenderer takes ownership of textures, one per carousel item, in order.
func NewRenderer(textures []rl.Texture2D) *Renderer {
	for _, tex := range textures {
		if tex.ID != 0 {
			rl.SetTextureFilter(tex, rl.FilterBilinear)
			rl.SetTextureWrap(tex, rl.TextureWrapClamp)
		}
	}

	return &Renderer{
		Camera: rl.NewCamera3D(
			rl.NewVector3(0, 0, CameraDistance),
			rl.NewVector3(0, 0, 0),
			rl.NewVector3(0, 1, 0),
			CameraFovy,
			rl.CameraPerspective,
		),
		textures: textures,
		uniforms: make([]scene.UniformCache, len(textures)),
		scene:    scene.New(len(textures)),
		shaders:  NewShaderCache(),
		material: rl.LoadMaterialDefault(),
		warned:   make(map[int]bool),
	}
}

func (r *Renderer) Len() int {
	return len(r.textures)
}

// Update solves the frame from snap and eases the scene toward it. dt and
// now are in seconds. After Close the frame is solved but nothing eases.
func (r *Renderer) Update(dt, now float64, snap carousel.Snapshot) carousel.Frame {
	frame := carousel.Solve(snap, r.Len())
	if r.scene == nil {
		return frame
	}

	r.settings = snap.Settings
	r.now = now
	aspect := float64(rl.GetScreenWidth()) / math.Max(1, float64(rl.GetScreenHeight()))
	r.viewportW, r.viewportH = carousel.ViewportSize(CameraFovy, CameraDistance, aspect)

	r.scene.Update(dt, now, frame)
	return frame
}

// Overlay returns the eased details panel state.
func (r *Renderer) Overlay() scene.OverlayState {
	return r.scene.Overlay()
}

func (r *Renderer) ensureMesh() {
	w, h := r.settings.ItemWidth, r.settings.ItemHeight
	if r.meshLoaded && w == r.meshWidth && h == r.meshHeight {
		return
	}
	if r.meshLoaded {
		rl.UnloadMesh(&r.mesh)
	}
	r.mesh = rl.GenMeshPlane(float32(w), float32(h), carousel.PlaneSegments, carousel.PlaneSegments)
	r.meshLoaded = true
	r.meshWidth, r.meshHeight = w, h
	log.Debug("Item mesh rebuilt at %.2fx%.2f", w, h)
}

func vec3(v carousel.Vec3) rl.Vector3 {
	return rl.NewVector3(float32(v.X), float32(v.Y), float32(v.Z))
}

// groupMatrix is the group's XYZ Euler rotation followed by its position.
func (r *Renderer) groupMatrix() rl.Matrix {
	g := r.scene.Group()
	rot := rl.MatrixMultiply(
		rl.MatrixMultiply(rl.MatrixRotateZ(float32(g.Rotation.Z)), rl.MatrixRotateY(float32(g.Rotation.Y))),
		rl.MatrixRotateX(float32(g.Rotation.X)),
	)
	p := vec3(g.Position)
	return rl.MatrixMultiply(rot, rl.MatrixTranslate(p.X, p.Y, p.Z))
}

// itemMatrix places the item mesh inside its node, the node inside the
// group, and the group in the world.
func (r *Renderer) itemMatrix(item scene.ItemState, group rl.Matrix) rl.Matrix {
	s := float32(item.Scale)
	p := vec3(item.Position)
	node := rl.MatrixMultiply(rl.MatrixScale(s, s, s), rl.MatrixTranslate(p.X, p.Y, p.Z))
	mesh := rl.MatrixTranslate(0, 0, carousel.MeshDepth)
	return rl.MatrixMultiply(rl.MatrixMultiply(mesh, node), group)
}

func (r *Renderer) uniformKey(i int, item scene.ItemState) scene.UniformKey {
	return scene.UniformKey{
		Texture:    r.textures[i].ID,
		ItemWidth:  r.settings.ItemWidth,
		ItemHeight: r.settings.ItemHeight,
		ViewportW:  r.viewportW,
		ViewportH:  r.viewportH,
		Active:     item.Active,
		Parallax:   r.settings.EnableParallax,
		Floating:   r.settings.EnableFloating,
	}
}

// Draw renders the visible items. Items without a loaded texture, or whose
// shader variant failed to compile, are skipped.
func (r *Renderer) Draw() {
	if r.scene == nil || r.Len() == 0 {
		return
	}
	r.ensureMesh()

	variant := r.shaders.Get(ShaderKey{Parallax: r.settings.EnableParallax, Floating: r.settings.EnableFloating})
	if variant == nil {
		return
	}
	r.material.Shader = variant.Shader
	group := r.groupMatrix()

	rl.BeginMode3D(r.Camera)
	rl.DisableBackfaceCulling()

	for i, item := range r.scene.Items() {
		if !item.Visible {
			continue
		}
		tex := r.textures[i]
		if tex.ID == 0 {
			if !r.warned[i] {
				log.Warn("Item %d has no texture, skipping", i)
				r.warned[i] = true
			}
			continue
		}

		static := r.uniforms[i].Get(r.uniformKey(i, item))
		variant.ApplyItem(item, static, r.now)
		r.material.Maps.Texture = tex
		rl.DrawMesh(r.mesh, r.material, r.itemMatrix(item, group))
	}

	rl.EnableBackfaceCulling()
	rl.EndMode3D()
}

// Pick returns the nearest visible item under the screen position.
func (r *Renderer) Pick(pos rl.Vector2) (int, bool) {
	if r.scene == nil || !r.meshLoaded {
		return 0, false
	}

	ray := rl.GetScreenToWorldRay(pos, r.Camera)
	group := r.groupMatrix()
	// GenMeshPlane lies in XZ; the vertex stage stands it up in XY.
	standUp := rl.MatrixRotateX(math.Pi / 2)

	best, hit := 0, false
	var bestDistance float32
	for i, item := range r.scene.Items() {
		if !item.Visible {
			continue
		}
		static := r.uniforms[i].Get(r.uniformKey(i, item))
		sx, sy := scene.PickScale(static.ZoomScale, item.ProgressToActive, r.settings.EnableParallax)
		local := rl.MatrixMultiply(standUp, rl.MatrixScale(float32(sx), float32(sy), 1))
		transform := rl.MatrixMultiply(local, r.itemMatrix(item, group))

		c := rl.GetRayCollisionMesh(ray, r.mesh, transform)
		if c.Hit && (!hit || c.Distance < bestDistance) {
			best, hit, bestDistance = i, true, c.Distance
		}
	}
	return best, hit
}

// Close releases the textures, shaders and mesh.
func (r *Renderer) Close() {
	for i, tex := range r.textures {
		if tex.ID != 0 {
			rl.UnloadTexture(tex)
		}
		r.textures[i] = rl.Texture2D{}
	}
	r.shaders.Unload()
	if r.meshLoaded {
		rl.UnloadMesh(&r.mesh)
		r.meshLoaded = false
	}
	r.scene = nil
}
