package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

type ObjectData struct {
	*resolv.Object
}

var Object = donburi.NewComponentType[ObjectData]()

// Space is the resolv collision space shared by every object in the level.
// Coordinates are Tiled pixels, y down.
var Space = donburi.NewComponentType[resolv.Space]()
