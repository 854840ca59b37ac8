package main

import (
	"fmt"
	"image/color"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/snowfield/common"
	"github.com/milk9111/snowfield/ecs"
	"github.com/milk9111/snowfield/ecs/component"
	"golang.org/x/image/colornames"
)

// Draw renders markers for the ground outline and every modelled entity, seen
// through the camera. Models are stand-in discs until the asset pipeline exists.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.spec.Window.ClearColor.RGBA)

	view, ok := g.view()
	if !ok {
		return
	}

	ecs.ForEach2(g.world, component.GroundComponent, component.TransformComponent,
		func(_ ecs.Entity, ground *component.Ground, tr *component.Transform) {
			drawGround(screen, view, *ground, tr.Translation)
		})

	ecs.ForEach2(g.world, component.ModelComponent, component.TransformComponent,
		func(_ ecs.Entity, model *component.Model, tr *component.Transform) {
			drawModel(screen, view, *model, *tr)
		})

	if cursor, ok := ecs.Get(g.world, g.spawned.Player, component.CursorWorldPositionComponent); ok && cursor.Valid {
		if x, y, depth, ok := view.Project(cursor.Position); ok {
			r := float32(0.3 * view.PixelsPerUnit(depth))
			vector.StrokeCircle(screen, float32(x), float32(y), r, 1, colornames.Orange, true)
		}
	}

	if g.debug {
		ebitenutil.DebugPrintAt(screen, g.debugText(view), 10, 10)
	}
}

func (g *Game) view() (common.View, bool) {
	tr, ok := ecs.Get(g.world, g.spawned.Camera, component.TransformComponent)
	if !ok {
		return common.View{}, false
	}
	cam, ok := ecs.Get(g.world, g.spawned.Camera, component.CameraComponent)
	if !ok {
		return common.View{}, false
	}
	return common.View{
		Position: tr.Translation,
		Rotation: tr.Rotation,
		FovY:     cam.FovY,
		Width:    cam.ViewportWidth,
		Height:   cam.ViewportHeight,
	}, true
}

func drawGround(screen *ebiten.Image, view common.View, ground component.Ground, center mgl64.Vec3) {
	hw, hd := ground.Width/2, ground.Depth/2
	corners := [4]mgl64.Vec3{
		center.Add(mgl64.Vec3{-hw, 0, -hd}),
		center.Add(mgl64.Vec3{hw, 0, -hd}),
		center.Add(mgl64.Vec3{hw, 0, hd}),
		center.Add(mgl64.Vec3{-hw, 0, hd}),
	}
	for i := range corners {
		x0, y0, _, ok0 := view.Project(corners[i])
		x1, y1, _, ok1 := view.Project(corners[(i+1)%len(corners)])
		if !ok0 || !ok1 {
			continue
		}
		vector.StrokeLine(screen, float32(x0), float32(y0), float32(x1), float32(y1), 2, ground.Color, true)
	}
}

func drawModel(screen *ebiten.Image, view common.View, model component.Model, tr component.Transform) {
	x, y, depth, ok := view.Project(tr.Translation)
	if !ok {
		return
	}
	radius := model.Radius
	if radius <= 0 {
		radius = 0.5
	}
	ppu := view.PixelsPerUnit(depth)
	clr := color.Color(model.Color)
	if model.Color.A == 0 {
		clr = colornames.Magenta
	}
	vector.FillCircle(screen, float32(x), float32(y), float32(radius*ppu), clr, true)

	nose := tr.Translation.Add(tr.Forward().Mul(radius * 2))
	if nx, ny, _, ok := view.Project(nose); ok {
		vector.StrokeLine(screen, float32(x), float32(y), float32(nx), float32(ny), 2, colornames.Black, true)
	}
}

func (g *Game) debugText(view common.View) string {
	text := fmt.Sprintf("TPS: %.1f  FPS: %.1f\ncamera: %.2f", ebiten.ActualTPS(), ebiten.ActualFPS(), view.Position)
	if vel, ok := ecs.Get(g.world, g.spawned.Camera, component.VelocityComponent); ok {
		text += fmt.Sprintf("  vel: %.2f", vel.Linear)
	}
	if state, ok := ecs.Get(g.world, g.spawned.Player, component.ActionStateComponent); ok {
		text += fmt.Sprintf("\nzoom: %.2f  look: %.1f  allow_look: %t  shoot: %t",
			state.Value(component.ActionZoom),
			state.AxisPair(component.ActionLook),
			state.Pressed(component.ActionAllowLook),
			state.Pressed(component.ActionShoot))
	}
	if cursor, ok := ecs.Get(g.world, g.spawned.Player, component.CursorWorldPositionComponent); ok {
		text += fmt.Sprintf("\ncursor: %.2f", cursor.Position)
	}
	return text
}
