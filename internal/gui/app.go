package gui

import (
	"math"
	"math/rand"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/san-kum/orrery/internal/config"
	"github.com/san-kum/orrery/internal/logging"
	"github.com/san-kum/orrery/internal/pick"
	"github.com/san-kum/orrery/internal/scene"
)

// Theme colors.
var (
	ColBg      = rl.NewColor(5, 6, 12, 255)
	ColSun     = rl.NewColor(255, 204, 51, 255)
	ColOrbit   = rl.NewColor(70, 74, 92, 120)
	ColStar    = rl.NewColor(200, 205, 220, 255)
	ColText    = rl.NewColor(140, 140, 140, 255)
	ColTextDim = rl.NewColor(60, 60, 60, 255)
	ColSelect  = rl.NewColor(255, 255, 255, 255)
)

type App struct {
	Scene *scene.Scene
	Cfg   *config.Config
	Log   *logging.Logger

	Camera       rl.Camera3D
	CamPosTarget rl.Vector3
	CamTgtTarget rl.Vector3

	Paused     bool
	ShowOrbits bool

	Stars   []rl.Vector3
	GlowTex rl.Texture2D

	// Post-processing
	Target   rl.RenderTexture2D
	Bloom    rl.Shader
	bloomRes int32 // shader location for the resolution uniform
}

func initWindow(cfg *config.Config) {
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	rl.InitWindow(int32(cfg.Window.Width), int32(cfg.Window.Height), cfg.Window.Title)
	rl.SetTargetFPS(int32(cfg.Window.FPS))
	rl.SetExitKey(0)
}

// NewApp builds the scene graph from the config's body table and
// initializes all GPU-side state. Must be called after initWindow.
func NewApp(cfg *config.Config, log *logging.Logger) *App {
	s := scene.Build(cfg.Planets())
	if cfg.Focus != "" {
		if err := s.FocusByName(cfg.Focus); err != nil {
			log.Warn("startup focus %q: %v", cfg.Focus, err)
		}
	}

	app := &App{
		Scene:      s,
		Cfg:        cfg,
		Log:        log,
		ShowOrbits: cfg.ShowOrbits,
		Camera: rl.NewCamera3D(
			rl.NewVector3(0, float32(cfg.Camera.Distance)*0.45, float32(cfg.Camera.Distance)),
			rl.NewVector3(0, 0, 0),
			rl.NewVector3(0, 1, 0),
			float32(cfg.Camera.FovY),
			rl.CameraPerspective,
		),
	}
	app.CamPosTarget = app.Camera.Position
	app.CamTgtTarget = app.Camera.Target

	// Glow sprite for the sun halo.
	img := rl.GenImageGradientRadial(64, 64, 0.0, rl.White, rl.NewColor(0, 0, 0, 0))
	app.GlowTex = rl.LoadTextureFromImage(img)
	rl.UnloadImage(img)

	// Starfield on a distant shell.
	app.Stars = make([]rl.Vector3, cfg.Stars.Count)
	for i := range app.Stars {
		v := rl.NewVector3(
			float32(rand.Float64()-0.5),
			float32(rand.Float64()-0.5),
			float32(rand.Float64()-0.5),
		)
		v = rl.Vector3Scale(rl.Vector3Normalize(v), float32(cfg.Stars.Spread))
		app.Stars[i] = v
	}

	app.Target = rl.LoadRenderTexture(int32(cfg.Window.Width), int32(cfg.Window.Height))
	if cfg.Bloom.Enabled {
		app.initBloom()
	}

	if s.Focused() != scene.None {
		app.jumpToFocus()
	}

	return app
}

// Run opens the window and blocks in the render loop until close.
func Run(cfg *config.Config, log *logging.Logger) {
	initWindow(cfg)
	defer rl.CloseWindow()
	app := NewApp(cfg, log)
	defer app.unload()
	log.Info("scene ready: %d nodes, %d planets", app.Scene.Graph.Len(), len(app.Scene.Planets))
	app.RunLoop()
}

func (a *App) RunLoop() {
	for !rl.WindowShouldClose() {
		a.Update()
		a.Draw()
	}
}

func (a *App) unload() {
	rl.UnloadRenderTexture(a.Target)
	rl.UnloadTexture(a.GlowTex)
	if a.Cfg.Bloom.Enabled {
		rl.UnloadShader(a.Bloom)
	}
}

// Update advances one frame: input, resize, simulation step, camera
// reconciliation. Runs to completion before Draw.
func (a *App) Update() {
	if rl.IsWindowResized() {
		a.resize()
	}

	if rl.IsKeyPressed(rl.KeySpace) {
		a.Paused = !a.Paused
	}
	if rl.IsKeyPressed(rl.KeyO) {
		a.ShowOrbits = !a.ShowOrbits
	}
	if rl.IsKeyPressed(rl.KeyEscape) || rl.IsKeyPressed(rl.KeyBackspace) {
		if a.Scene.Focused() != scene.None {
			a.Scene.Blur()
			a.CamTgtTarget = rl.NewVector3(0, 0, 0)
		}
	}

	if rl.IsMouseButtonPressed(rl.MouseLeftButton) {
		a.pickAtMouse()
	}

	dt := float64(rl.GetFrameTime())
	if !a.Paused {
		a.Scene.Step(dt)
	}

	a.updateCamera(dt)
}

// pickAtMouse casts the mouse ray against every pickable body and
// focuses the nearest hit. A miss is a no-op.
func (a *App) pickAtMouse() {
	mray := rl.GetMouseRay(rl.GetMousePosition(), a.Camera)
	ray := pick.Ray{
		Origin: scene.Vec3{X: float64(mray.Position.X), Y: float64(mray.Position.Y), Z: float64(mray.Position.Z)},
		Dir:    scene.Vec3{X: float64(mray.Direction.X), Y: float64(mray.Direction.Y), Z: float64(mray.Direction.Z)},
	}

	hit, ok := pick.Nearest(ray, pick.Targets(a.Scene))
	if !ok {
		return
	}
	if err := a.Scene.Focus(hit.Handle); err != nil {
		a.Log.Warn("focus: %v", err)
		return
	}
	a.Log.Debug("focused %s at distance %.1f", a.Scene.FocusedName(), hit.Distance)
	a.jumpToFocus()
}

// jumpToFocus applies the discontinuous camera move of the focus
// transition: position snaps to the body plus the fixed offset.
func (a *App) jumpToFocus() {
	jump := vec3(a.Scene.CameraJump())
	a.Camera.Position = jump
	a.CamPosTarget = jump
	a.CamTgtTarget = vec3(a.Scene.LookTarget())
}

// updateCamera reconciles damped user input with the current look
// target. Input moves the targets; the camera lerps toward them.
func (a *App) updateCamera(dt float64) {
	if f := a.Scene.Focused(); f != scene.None {
		a.CamTgtTarget = vec3(a.Scene.LookTarget())
	}

	// Orbit with right mouse drag.
	if rl.IsMouseButtonDown(rl.MouseRightButton) {
		delta := rl.GetMouseDelta()
		offset := rl.Vector3Subtract(a.CamPosTarget, a.CamTgtTarget)
		offset = rl.Vector3RotateByAxisAngle(offset, rl.NewVector3(0, 1, 0), -delta.X*0.005)

		right := rl.Vector3Normalize(rl.Vector3CrossProduct(offset, rl.NewVector3(0, 1, 0)))
		pitched := rl.Vector3RotateByAxisAngle(offset, right, -delta.Y*0.005)
		// Keep the camera off the poles.
		if math.Abs(float64(rl.Vector3Normalize(pitched).Y)) < 0.97 {
			offset = pitched
		}
		a.CamPosTarget = rl.Vector3Add(a.CamTgtTarget, offset)
	}

	// Zoom along the view direction.
	wheel := rl.GetMouseWheelMove()
	if wheel != 0 {
		zoom := wheel * 3.0
		diff := rl.Vector3Subtract(a.CamTgtTarget, a.CamPosTarget)
		dist := rl.Vector3Length(diff)
		if dist-zoom > 2.0 || zoom < 0 {
			dir := rl.Vector3Normalize(diff)
			a.CamPosTarget = rl.Vector3Add(a.CamPosTarget, rl.Vector3Scale(dir, zoom))
		}
	}

	lerp := float32(5.0 * dt)
	if lerp > 1.0 {
		lerp = 1.0
	}
	a.Camera.Position = rl.Vector3Lerp(a.Camera.Position, a.CamPosTarget, lerp)
	a.Camera.Target = rl.Vector3Lerp(a.Camera.Target, a.CamTgtTarget, lerp)
}

// resize recreates the post-processing surface at the new window size
// and refreshes the resolution uniform. Idempotent.
func (a *App) resize() {
	w, h := int32(rl.GetScreenWidth()), int32(rl.GetScreenHeight())
	rl.UnloadRenderTexture(a.Target)
	a.Target = rl.LoadRenderTexture(w, h)
	if a.Cfg.Bloom.Enabled {
		rl.SetShaderValue(a.Bloom, a.bloomRes,
			[]float32{float32(w), float32(h)}, rl.ShaderUniformVec2)
	}
	a.Log.Debug("resized to %dx%d", w, h)
}

func vec3(v scene.Vec3) rl.Vector3 {
	return rl.NewVector3(float32(v.X), float32(v.Y), float32(v.Z))
}
