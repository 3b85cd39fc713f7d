package components

import "github.com/yohamta/donburi"

type EnemyData struct {
	Name      string
	Archetype string // motion preset name, as authored in the level
}

var Enemy = donburi.NewComponentType[EnemyData]()
