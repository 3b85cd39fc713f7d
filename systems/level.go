package systems

import (
	"image/color"

	"github.com/automoto/icecube/components"
	cfg "github.com/automoto/icecube/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

var solidColor = color.RGBA{70, 110, 140, 255}

func DrawLevel(ecs *ecs.ECS, screen *ebiten.Image) {
	// Get camera
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return // No camera yet
	}
	camera := components.Camera.Get(cameraEntry)

	level, ok := getLevel(ecs)
	if !ok {
		return
	}
	view := newViewport(camera.Position, screen)

	if level.Background != nil {
		// Pixel (0, 0) is the top left corner of the map.
		x, y := level.Projection.ToWorld(0, 0)
		sx, sy := view.toScreen(math.Vec2{X: x, Y: y})
		opts := &ebiten.DrawImageOptions{}
		opts.GeoM.Translate(sx, sy)
		screen.DrawImage(level.Background, opts)
		return
	}

	for _, r := range level.Solids {
		x, y := view.toScreen(math.Vec2{X: r.Min.X, Y: r.Max.Y})
		w, h := (r.Max.X-r.Min.X)*view.ppu, (r.Max.Y-r.Min.Y)*view.ppu
		vector.FillRect(screen, float32(x), float32(y), float32(w), float32(h), solidColor, false)
	}
}

// viewport maps world units to screen pixels around the camera centre.
type viewport struct {
	center        math.Vec2
	ppu           float64
	width, height float64
}

func newViewport(center math.Vec2, screen *ebiten.Image) viewport {
	ppu := cfg.C.PixelsPerUnit
	if ppu <= 0 {
		ppu = 1
	}
	return viewport{
		center: center,
		ppu:    ppu,
		width:  float64(screen.Bounds().Dx()),
		height: float64(screen.Bounds().Dy()),
	}
}

func (v viewport) toScreen(p math.Vec2) (x, y float64) {
	return (p.X-v.center.X)*v.ppu + v.width/2, v.height/2 - (p.Y-v.center.Y)*v.ppu
}
