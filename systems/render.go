package systems

import (
	"image/color"

	"github.com/automoto/icecube/components"
	"github.com/automoto/icecube/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

var (
	playerColor    = color.RGBA{220, 240, 255, 255}
	dashColor      = color.RGBA{120, 230, 255, 255}
	knockbackColor = color.RGBA{255, 170, 60, 255}
	enemyColor     = color.RGBA{200, 60, 60, 255}
	dyingColor     = color.RGBA{90, 90, 90, 255}
	facingColor    = color.RGBA{20, 30, 60, 255}
	healthBgColor  = color.RGBA{40, 0, 0, 255}
	healthFgColor  = color.RGBA{0, 220, 80, 255}
)

// DrawCharacters renders every character as a box with a facing marker.
func DrawCharacters(ecs *ecs.ECS, screen *ebiten.Image) {
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return
	}
	level, ok := getLevel(ecs)
	if !ok {
		return
	}
	view := newViewport(components.Camera.Get(cameraEntry).Position, screen)

	components.Character.Each(ecs.World, func(e *donburi.Entry) {
		o := components.Object.Get(e)
		ch := components.Character.Get(e)

		wx, wy := level.Projection.ToWorld(o.X, o.Y)
		x, y := view.toScreen(math.Vec2{X: wx, Y: wy})
		// Viewport culling
		if x+o.W < 0 || x > view.width || y+o.H < 0 || y > view.height {
			return
		}

		anim := ch.LastCommand.Animation
		c := playerColor
		switch {
		case e.HasComponent(components.Death):
			c = dyingColor
		case anim.Knockback:
			c = knockbackColor
		case anim.Dashing:
			c = dashColor
		case e.HasComponent(tags.Enemy):
			c = enemyColor
		}
		vector.FillRect(screen, float32(x), float32(y), float32(o.W), float32(o.H), c, false)

		// Facing marker on the leading edge
		mx := x + o.W - 4
		if ch.Controller != nil && !ch.Controller.State().FacingRight {
			mx = x
		}
		vector.FillRect(screen, float32(mx), float32(y+o.H/4), 4, float32(o.H/4), facingColor, false)

		if e.HasComponent(components.HealthBar) && e.HasComponent(components.Health) {
			drawHealthBar(screen, components.Health.Get(e), x, y-6, o.W)
		}
	})
}

func drawHealthBar(screen *ebiten.Image, hp *components.HealthData, x, y, w float64) {
	if hp.Max <= 0 {
		return
	}
	vector.FillRect(screen, float32(x), float32(y), float32(w), 3, healthBgColor, false)
	fill := w * float64(hp.Current) / float64(hp.Max)
	vector.FillRect(screen, float32(x), float32(y), float32(fill), 3, healthFgColor, false)
}
