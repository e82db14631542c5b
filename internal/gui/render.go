package gui

import (
	"fmt"
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/san-kum/orrery/internal/scene"
)

func (a *App) Draw() {
	if !a.Cfg.Bloom.Enabled {
		rl.BeginDrawing()
		rl.ClearBackground(ColBg)
		a.drawScene()
		a.drawHUD()
		rl.EndDrawing()
		return
	}

	// Base pass into the render texture, bloom pass on present.
	rl.BeginTextureMode(a.Target)
	rl.ClearBackground(ColBg)
	a.drawScene()
	rl.EndTextureMode()

	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)
	rl.BeginShaderMode(a.Bloom)
	rl.DrawTextureRec(a.Target.Texture,
		rl.NewRectangle(0, 0, float32(a.Target.Texture.Width), -float32(a.Target.Texture.Height)),
		rl.NewVector2(0, 0), rl.White)
	rl.EndShaderMode()
	a.drawHUD()
	rl.EndDrawing()
}

func (a *App) drawScene() {
	rl.BeginMode3D(a.Camera)

	a.drawStars()

	// Sun with its glow halo.
	sun := a.Scene.Graph.Node(a.Scene.Sun())
	rl.DrawSphereEx(rl.NewVector3(0, 0, 0), float32(sun.Radius), 24, 24, ColSun)

	if a.ShowOrbits {
		for _, p := range a.Scene.Planets {
			rl.DrawCircle3D(rl.NewVector3(0, 0, 0), float32(p.Distance),
				rl.NewVector3(1, 0, 0), 90, ColOrbit)
		}
	}

	a.Scene.Graph.Walk(a.Scene.Graph.Root(), func(h scene.Handle, n *scene.Node) {
		if n.Kind != scene.KindBody || h == a.Scene.Sun() {
			return
		}
		pos := vec3(a.Scene.Graph.WorldPosition(h))
		col := rl.NewColor(n.Color[0], n.Color[1], n.Color[2], 255)
		rl.DrawSphereEx(pos, float32(n.Radius), 16, 16, col)

		// Moon orbit rings ride along with the planet.
		if a.ShowOrbits && n.Pickable {
			for _, c := range n.Children {
				moonOrbit := a.Scene.Graph.Node(c)
				if len(moonOrbit.Children) == 0 {
					continue
				}
				moon := a.Scene.Graph.Node(moonOrbit.Children[0])
				rl.DrawCircle3D(pos, float32(moon.Offset.X), rl.NewVector3(1, 0, 0), 90, ColOrbit)
			}
		}
	})

	// Selection ring around the focused body.
	if f := a.Scene.Focused(); f != scene.None {
		n := a.Scene.Graph.Node(f)
		pos := vec3(a.Scene.Graph.WorldPosition(f))
		rl.DrawCircle3D(pos, float32(n.Radius)*1.8, rl.NewVector3(1, 0, 0), 90, ColSelect)
	}

	rl.EndMode3D()

	// Billboards draw after the meshes so the additive halo layers on top.
	rl.BeginMode3D(a.Camera)
	rl.DrawBillboard(a.Camera, a.GlowTex, rl.NewVector3(0, 0, 0),
		float32(sun.Radius)*4.5, rl.NewColor(255, 190, 80, 110))
	rl.EndMode3D()
}

// drawStars renders the star shell rotated by the star pivot's current
// angle. Star rotation is time-scaled with the rest of the orbits.
func (a *App) drawStars() {
	rot := a.Scene.Graph.Node(a.Scene.Stars()).Rotation
	c, s := float32(math.Cos(rot)), float32(math.Sin(rot))
	for _, p := range a.Stars {
		q := rl.NewVector3(p.X*c+p.Z*s, p.Y, -p.X*s+p.Z*c)
		rl.DrawPoint3D(q, ColStar)
	}
}

func (a *App) drawHUD() {
	rl.DrawText("orrery", 30, 30, 24, ColSelect)
	rl.DrawText(fmt.Sprintf(":: %.2fx", a.Scene.TimeScale()), 130, 36, 16, ColText)

	if a.Paused {
		rl.DrawText("PAUSED", int32(rl.GetScreenWidth())-130, 30, 16, ColTextDim)
	}

	// Back affordance, visible only while focused.
	if a.Scene.Focused() != scene.None {
		rl.DrawText(fmt.Sprintf("> %s", a.Scene.FocusedName()), 30, 64, 20, ColSelect)
		rl.DrawText("[ESC] BACK", 30, 92, 16, ColText)
	}

	rl.DrawText("[CLICK] FOCUS  [DRAG] ORBIT  [WHEEL] ZOOM  [SPACE] PAUSE  [O] ORBITS",
		30, int32(rl.GetScreenHeight())-40, 14, ColTextDim)
	rl.DrawText(fmt.Sprintf("%d FPS", rl.GetFPS()),
		int32(rl.GetScreenWidth())-90, int32(rl.GetScreenHeight())-40, 14, ColTextDim)
}
