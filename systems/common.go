package systems

import (
	"github.com/automoto/icecube/components"
	cfg "github.com/automoto/icecube/config"
	"github.com/yohamta/donburi/ecs"
)

// tickSeconds is the fixed simulation step.
func tickSeconds() float64 {
	if cfg.C.TickRate <= 0 {
		return 1.0 / 60
	}
	return 1 / float64(cfg.C.TickRate)
}

func getLevel(ecs *ecs.ECS) (*components.LevelData, bool) {
	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		return nil, false
	}
	return components.Level.Get(levelEntry), true
}
