package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/icecube/camera"
	"github.com/automoto/icecube/collide"
	"github.com/automoto/icecube/components"
	cfg "github.com/automoto/icecube/config"
	"github.com/automoto/icecube/fonts"
	"github.com/automoto/icecube/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

var (
	probeColor  = color.RGBA{0, 255, 0, 255}
	hitColor    = color.RGBA{255, 0, 0, 255}
	attackColor = color.RGBA{255, 255, 0, 255}
	zoneColor   = color.RGBA{0, 255, 255, 255}
	boundsColor = color.RGBA{255, 0, 255, 255}
)

// UpdateDebug toggles the debug overlays: F1 for probes, F2 for zones.
func UpdateDebug(ecs *ecs.ECS) {
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		cfg.Debug.DrawProbes = !cfg.Debug.DrawProbes
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF2) {
		cfg.Debug.DrawZones = !cfg.Debug.DrawZones
	}
}

func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return // No camera yet
	}
	cam := components.Camera.Get(cameraEntry)
	level, ok := getLevel(ecs)
	if !ok {
		return
	}
	view := newViewport(cam.Position, screen)

	if cfg.Debug.DrawZones && level.Zones != nil {
		for _, z := range level.Zones.Zones() {
			strokeWorldRect(screen, view, z.Trigger, zoneColor)
		}
		lower, upper := cam.Follower.Bounds()
		strokeWorldRect(screen, view, camera.Rect{Min: lower, Max: upper}, boundsColor)
	}

	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	ch := components.Character.Get(playerEntry)
	if ch.Controller == nil {
		drawText(screen, "controller disabled", 4, 4)
		return
	}
	state := ch.Controller.State()
	pos := collide.Centre(components.Object.Get(playerEntry).Object, level.Projection)

	if cfg.Debug.DrawProbes {
		probe := ch.Sampler.Probe
		sample := ch.LastSample

		ground := math.Vec2{X: pos.X, Y: pos.Y + probe.GroundOffsetY}
		gx, gy := view.toScreen(ground)
		vector.StrokeCircle(screen, float32(gx), float32(gy), float32(probe.GroundRadius*view.ppu), 1, pick(sample.Grounded), false)

		size := math.Vec2{X: probe.WallWidth, Y: probe.WallHeight}
		strokeWorldBox(screen, view, math.Vec2{X: pos.X - probe.WallOffsetX, Y: pos.Y}, size, pick(sample.TouchingLeftWall))
		strokeWorldBox(screen, view, math.Vec2{X: pos.X + probe.WallOffsetX, Y: pos.Y}, size, pick(sample.TouchingRightWall))

		if state.Attacking {
			ap := ch.Controller.AttackPoint(pos)
			ax, ay := view.toScreen(ap)
			vector.StrokeCircle(screen, float32(ax), float32(ay), float32(cfg.Attack.Range*view.ppu), 1, attackColor, false)
		}
	}

	player := components.Player.Get(playerEntry)
	stateName := cfg.StateNone
	if playerEntry.HasComponent(components.State) {
		stateName = components.State.Get(playerEntry).CurrentState
	}
	lookAhead, _ := cam.Follower.LookAhead()
	drawText(screen, fmt.Sprintf(
		"state: %s  room: %s  dashes: %d  dash: %s\npos: %.2f, %.2f  vel: %.2f, %.2f  gravity: %.2f\ncamera: %.2f, %.2f  look-ahead: %.2f  transition: %t",
		stateName, player.Room, state.DashesAvailable, state.DashVariant,
		pos.X, pos.Y, ch.LastSample.Velocity.X, ch.LastSample.Velocity.Y, state.GravityScale,
		cam.Position.X, cam.Position.Y, lookAhead, cam.Follower.IsTransitioning(),
	), 4, 4)
}

var (
	hudFace     *text.GoXFace
	hudColor    = color.RGBA{230, 240, 255, 255}
	lineSpacing = 12.0
)

func drawText(screen *ebiten.Image, s string, x, y float64) {
	if hudFace == nil {
		if !fonts.Loaded(fonts.Small) {
			return
		}
		hudFace = text.NewGoXFace(fonts.Small.Get())
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(hudColor)
	op.LineSpacing = lineSpacing
	text.Draw(screen, s, hudFace, op)
}

func pick(hit bool) color.Color {
	if hit {
		return hitColor
	}
	return probeColor
}

func strokeWorldRect(screen *ebiten.Image, view viewport, r camera.Rect, c color.Color) {
	x, y := view.toScreen(math.Vec2{X: r.Min.X, Y: r.Max.Y})
	w, h := (r.Max.X-r.Min.X)*view.ppu, (r.Max.Y-r.Min.Y)*view.ppu
	vector.StrokeRect(screen, float32(x), float32(y), float32(w), float32(h), 1, c, false)
}

func strokeWorldBox(screen *ebiten.Image, view viewport, center, size math.Vec2, c color.Color) {
	hw, hh := size.X/2, size.Y/2
	r := camera.Rect{
		Min: math.Vec2{X: center.X - hw, Y: center.Y - hh},
		Max: math.Vec2{X: center.X + hw, Y: center.Y + hh},
	}
	strokeWorldRect(screen, view, r, c)
}
