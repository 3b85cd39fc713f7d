package leveldata

import (
	"fmt"
	"io/fs"
	"sort"

	"github.com/lafriks/go-tiled"
)

// Layer and object group names read from TMX files.
const (
	TileLayerName    = "wg-tiles"
	SolidsGroupName  = "Solids"
	SpawnGroupName   = "PlayerSpawn"
	CameraGroupName  = "CameraBounds"
	EnemiesGroupName = "Enemies"
	defaultZoneMode  = "transition"
	defaultArchetype = "heavy"
)

// LoadCollisionData parses a TMX file and returns its collision data: solid
// tiles and blocks, player spawns, camera zones and enemies. It takes an
// fs.FS so callers can pass embed.FS or os.DirFS.
func LoadCollisionData(fsys fs.FS, tmxPath string) (*CollisionData, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	data := &CollisionData{
		MapWidth:  levelMap.Width * levelMap.TileWidth,
		MapHeight: levelMap.Height * levelMap.TileHeight,
	}

	// Parse solid tiles from wg-tiles layer
	tileW := float64(levelMap.TileWidth)
	tileH := float64(levelMap.TileHeight)
	for _, layer := range levelMap.Layers {
		if layer.Name != TileLayerName {
			continue
		}
		for y := 0; y < levelMap.Height; y++ {
			for x := 0; x < levelMap.Width; x++ {
				tile := layer.Tiles[y*levelMap.Width+x]
				if tile.IsNil() {
					continue
				}
				data.SolidRects = append(data.SolidRects, SolidRect{
					X: float64(x) * tileW,
					Y: float64(y) * tileH,
					W: tileW,
					H: tileH,
				})
			}
		}
		break
	}

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case SolidsGroupName:
			for _, o := range og.Objects {
				data.SolidRects = append(data.SolidRects, SolidRect{X: o.X, Y: o.Y, W: o.Width, H: o.Height})
			}
		case SpawnGroupName:
			for _, o := range og.Objects {
				data.SpawnPoints = append(data.SpawnPoints, SpawnPoint{
					X:     o.X,
					Y:     o.Y,
					Index: o.Properties.GetInt("spawnIndex"),
				})
			}
		case CameraGroupName:
			for _, o := range og.Objects {
				data.CameraZones = append(data.CameraZones, parseCameraZone(o))
			}
		case EnemiesGroupName:
			for _, o := range og.Objects {
				archetype := o.Properties.GetString("archetype")
				if archetype == "" {
					archetype = defaultArchetype
				}
				data.Enemies = append(data.Enemies, EnemySpawn{
					Name:      o.Name,
					X:         o.X,
					Y:         o.Y,
					Archetype: archetype,
					Health:    o.Properties.GetInt("health"),
				})
			}
		}
	}

	// Sort spawns by index, then left-to-right
	sort.SliceStable(data.SpawnPoints, func(i, j int) bool {
		a, b := data.SpawnPoints[i], data.SpawnPoints[j]
		if a.Index != b.Index {
			return a.Index < b.Index
		}
		return a.X < b.X
	})

	return data, nil
}

func parseCameraZone(o *tiled.Object) CameraZone {
	z := CameraZone{
		Name:     o.Name,
		X:        o.X,
		Y:        o.Y,
		W:        o.Width,
		H:        o.Height,
		Mode:     o.Properties.GetString("mode"),
		Duration: o.Properties.GetFloat("duration"),
		Padding:  o.Properties.GetFloat("padding"),
	}
	if z.Mode == "" {
		z.Mode = defaultZoneMode
	}
	if w, h := o.Properties.GetFloat("boundsW"), o.Properties.GetFloat("boundsH"); w > 0 && h > 0 {
		z.HasBounds = true
		z.BoundsX = o.Properties.GetFloat("boundsX")
		z.BoundsY = o.Properties.GetFloat("boundsY")
		z.BoundsW = w
		z.BoundsH = h
	}
	return z
}
