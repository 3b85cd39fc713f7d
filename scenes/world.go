package scenes

import (
	"image/color"
	"log"
	"sync"

	"github.com/automoto/icecube/archetypes"
	"github.com/automoto/icecube/assets"
	"github.com/automoto/icecube/components"
	cfg "github.com/automoto/icecube/config"
	"github.com/automoto/icecube/systems"
	"github.com/automoto/icecube/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

type PlatformerScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	once         sync.Once
}

// NewPlatformerScene creates the demo scene for the configured level.
func NewPlatformerScene(sc SceneChanger) *PlatformerScene {
	return &PlatformerScene{sceneChanger: sc}
}

func (ps *PlatformerScene) Update() {
	ps.once.Do(ps.configure)
	ps.ecs.Update()
}

func (ps *PlatformerScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.RGBA{12, 18, 30, 255})

	if ps.ecs == nil {
		return
	}
	ps.ecs.Draw(screen)
}

func (ps *PlatformerScene) configure() {
	ecs := ecs.NewECS(donburi.NewWorld())

	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdateDebug)
	ecs.AddSystem(systems.UpdatePlayer)
	ecs.AddSystem(systems.UpdateEnemies)
	ecs.AddSystem(systems.UpdatePhysics)
	ecs.AddSystem(systems.UpdateCollisions)
	ecs.AddSystem(systems.UpdateContactDamage)
	ecs.AddSystem(systems.UpdateCombat)
	ecs.AddSystem(systems.UpdateDeaths)
	ecs.AddSystem(systems.UpdateRespawn)
	ecs.AddSystem(systems.UpdateBoundZones)
	ecs.AddSystem(systems.UpdateCamera)
	ecs.AddSystem(systems.UpdateStates)

	ecs.AddRenderer(archetypes.DefaultLayer, systems.DrawLevel)
	ecs.AddRenderer(archetypes.DefaultLayer, systems.DrawCharacters)
	ecs.AddRenderer(archetypes.DefaultLayer, systems.DrawDebug)

	ps.ecs = ecs

	player, err := factory.CreateWorld(ps.ecs, assets.LevelFS(), cfg.C.LevelPath)
	if err != nil {
		panic("failed to create world: " + err.Error())
	}

	levelEntry, _ := components.Level.First(ps.ecs.World)
	level := components.Level.Get(levelEntry)
	if bg, err := assets.LoadBackground(cfg.C.LevelPath); err != nil {
		log.Printf("Warning: Could not render level background: %v", err)
	} else {
		level.Background = bg
	}

	ps.restoreProgress(player, level)
}

// restoreProgress moves the player to the saved respawn point when the save
// belongs to this level.
func (ps *PlatformerScene) restoreProgress(player *donburi.Entry, level *components.LevelData) {
	saved, err := systems.LoadGameProgress()
	if err != nil || saved == nil || saved.Level != level.Path {
		return
	}
	playerData := components.Player.Get(player)
	playerData.Spawn = math.Vec2{X: saved.SpawnX, Y: saved.SpawnY}
	playerData.Room = saved.Room
	systems.RespawnPlayer(ps.ecs, player)
	log.Printf("Restored progress: room %q", saved.Room)
}
