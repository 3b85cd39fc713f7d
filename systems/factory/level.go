package factory

import (
	"fmt"
	"io/fs"
	"log"

	"github.com/automoto/icecube/archetypes"
	"github.com/automoto/icecube/camera"
	"github.com/automoto/icecube/components"
	cfg "github.com/automoto/icecube/config"
	"github.com/automoto/icecube/shared/leveldata"
	"github.com/automoto/icecube/zone"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// CreateLevel loads the TMX level at path from fsys and spawns the level
// entity holding its collision data, projection and camera zones.
func CreateLevel(ecs *ecs.ECS, fsys fs.FS, path string) (*donburi.Entry, error) {
	data, err := leveldata.LoadCollisionData(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("create level: %w", err)
	}
	if len(data.SpawnPoints) == 0 {
		return nil, fmt.Errorf("create level %s: no player spawn points defined", path)
	}

	proj := leveldata.NewProjection(data, cfg.C.PixelsPerUnit)

	solids := make([]camera.Rect, 0, len(data.SolidRects))
	for _, s := range data.SolidRects {
		solids = append(solids, pixelRect(proj, s.X, s.Y, s.W, s.H))
	}

	level := archetypes.Level.Spawn(ecs)
	components.Level.Set(level, &components.LevelData{
		Path:       path,
		Data:       data,
		Projection: proj,
		Solids:     solids,
		Zones:      zone.NewTracker(buildZones(data.CameraZones, proj)),
	})

	log.Printf("Loaded level %s: %d solids, %d spawns, %d camera zones, %d enemies",
		path, len(data.SolidRects), len(data.SpawnPoints), len(data.CameraZones), len(data.Enemies))
	return level, nil
}

func buildZones(czs []leveldata.CameraZone, proj leveldata.Projection) []zone.BoundZone {
	zones := make([]zone.BoundZone, 0, len(czs))
	for _, cz := range czs {
		mode, err := zone.ParseMode(cz.Mode)
		if err != nil {
			log.Printf("Warning: camera zone %q: %v", cz.Name, err)
			mode = zone.ModeTransition
		}

		pad := cz.Padding / proj.PixelsPerUnit
		z := zone.FromCollider(cz.Name, pixelRect(proj, cz.X, cz.Y, cz.W, cz.H), math.Vec2{X: pad, Y: pad})
		if cz.HasBounds {
			b := pixelRect(proj, cz.BoundsX, cz.BoundsY, cz.BoundsW, cz.BoundsH)
			z.Lower, z.Upper = b.Min, b.Max
		}
		z.Mode = mode
		z.Duration = cz.Duration
		zones = append(zones, z)
	}
	return zones
}

func pixelRect(proj leveldata.Projection, x, y, w, h float64) camera.Rect {
	minX, minY, maxX, maxY := proj.RectToWorld(x, y, w, h)
	return camera.Rect{
		Min: math.Vec2{X: minX, Y: minY},
		Max: math.Vec2{X: maxX, Y: maxY},
	}
}

// SpawnPosition returns the world position of the first spawn point.
func SpawnPosition(level *components.LevelData) math.Vec2 {
	sp := level.Data.SpawnPoints[0]
	x, y := level.Projection.ToWorld(sp.X, sp.Y)
	return math.Vec2{X: x, Y: y}
}

// CreateLevelSolids adds a wall for every solid rect of the level.
func CreateLevelSolids(ecs *ecs.ECS, level *components.LevelData) {
	for _, s := range level.Data.SolidRects {
		CreateWall(ecs, s.X, s.Y, s.W, s.H)
	}
}
