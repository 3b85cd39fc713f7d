package components

import (
	"github.com/automoto/icecube/camera"
	"github.com/automoto/icecube/shared/leveldata"
	"github.com/automoto/icecube/zone"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

type LevelData struct {
	Path       string
	Data       *leveldata.CollisionData
	Projection leveldata.Projection
	Solids     []camera.Rect // world units
	Zones      *zone.Tracker
	Background *ebiten.Image // rendered tile layers, nil when drawing solids only
}

var Level = donburi.NewComponentType[LevelData]()
