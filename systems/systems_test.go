package systems

import (
	"fmt"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/automoto/icecube/character"
	"github.com/automoto/icecube/collide"
	"github.com/automoto/icecube/components"
	cfg "github.com/automoto/icecube/config"
	"github.com/automoto/icecube/systems/factory"
	"github.com/automoto/icecube/tags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// 20x10 tiles at 32px: floor along the bottom row, walls on both sides.
// In world units the floor top is y=1 and the map spans x 0..20.
func testLevel() string {
	const w, h = 20, 10
	rows := make([]string, h)
	for y := 0; y < h; y++ {
		cells := make([]string, w)
		for x := 0; x < w; x++ {
			cells[x] = "0"
			if y == h-1 || x == 0 || x == w-1 {
				cells[x] = "1"
			}
		}
		rows[y] = strings.Join(cells, ",")
	}
	return fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="%d" height="%d" tilewidth="32" tileheight="32" infinite="0" nextlayerid="5" nextobjectid="5">
 <tileset firstgid="1" name="ice" tilewidth="32" tileheight="32" tilecount="1" columns="1">
  <image source="ice.png" width="32" height="32"/>
 </tileset>
 <layer id="1" name="wg-tiles" width="%d" height="%d">
  <data encoding="csv">
%s
</data>
 </layer>
 <objectgroup id="2" name="PlayerSpawn">
  <object id="1" x="96" y="224"/>
 </objectgroup>
 <objectgroup id="3" name="CameraBounds">
  <object id="2" name="room" x="0" y="0" width="640" height="320">
   <properties>
    <property name="mode" value="snap"/>
   </properties>
  </object>
 </objectgroup>
 <objectgroup id="4" name="Enemies">
  <object id="3" name="dummy" x="256" y="224"/>
 </objectgroup>
</map>
`, w, h, w, h, strings.Join(rows, ",\n"))
}

type testWorld struct {
	ecs    *ecs.ECS
	player *donburi.Entry
	enemy  *donburi.Entry
	input  *components.InputData
}

func newTestWorld(t *testing.T) *testWorld {
	t.Helper()
	e := ecs.NewECS(donburi.NewWorld())
	fsys := fstest.MapFS{"level.tmx": {Data: []byte(testLevel())}}

	player, err := factory.CreateWorld(e, fsys, "level.tmx")
	require.NoError(t, err)
	enemy, ok := tags.Enemy.First(e.World)
	require.True(t, ok)

	return &testWorld{ecs: e, player: player, enemy: enemy, input: getOrCreateInput(e)}
}

// tick runs one simulation step with the given actions held.
func (w *testWorld) tick(held ...cfg.ActionID) {
	w.input.Previous = w.input.Current
	w.input.Current = [cfg.ActionCount]bool{}
	for _, a := range held {
		w.input.Current[a] = true
	}

	UpdatePlayer(w.ecs)
	UpdateEnemies(w.ecs)
	UpdatePhysics(w.ecs)
	UpdateCollisions(w.ecs)
	UpdateContactDamage(w.ecs)
	UpdateCombat(w.ecs)
	UpdateDeaths(w.ecs)
	UpdateRespawn(w.ecs)
	UpdateBoundZones(w.ecs)
	UpdateCamera(w.ecs)
	UpdateStates(w.ecs)
}

func (w *testWorld) run(ticks int, held ...cfg.ActionID) {
	for i := 0; i < ticks; i++ {
		w.tick(held...)
	}
}

func (w *testWorld) position(e *donburi.Entry) math.Vec2 {
	level, _ := getLevel(w.ecs)
	return collide.Centre(components.Object.Get(e).Object, level.Projection)
}

func (w *testWorld) place(e *donburi.Entry, pos math.Vec2) {
	level, _ := getLevel(w.ecs)
	collide.Place(components.Object.Get(e).Object, level.Projection, pos)
}

func TestActionEvents(t *testing.T) {
	input := &components.InputData{}
	input.Current[cfg.ActionMoveRight] = true
	input.Current[cfg.ActionJump] = true

	events, axis := ActionEvents(input, math.Vec2{})
	assert.Equal(t, math.Vec2{X: 1}, axis)
	require.Len(t, events, 2)
	assert.Equal(t, character.MoveAxis(1, 0), events[0])
	assert.Equal(t, character.EventJumpPressed, events[1].Kind)

	// Holding the same keys sends nothing new.
	input.Previous = input.Current
	events, _ = ActionEvents(input, axis)
	assert.Empty(t, events)

	// Release jump, tap dash and attack.
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}
	input.Current[cfg.ActionDash] = true
	input.Current[cfg.ActionAttack] = true
	events, axis = ActionEvents(input, axis)
	assert.Equal(t, math.Vec2{}, axis)
	kinds := make([]character.EventKind, 0, len(events))
	for _, ev := range events {
		kinds = append(kinds, ev.Kind)
	}
	assert.Equal(t, []character.EventKind{
		character.EventMoveAxis,
		character.EventJumpReleased,
		character.EventDashPressed,
		character.EventAttackPressed,
	}, kinds)
}

func TestMoveAxisPrefersDigital(t *testing.T) {
	input := &components.InputData{AxisX: 0.4, AxisY: -0.7}
	assert.Equal(t, math.Vec2{X: 0.4, Y: -0.7}, MoveAxis(input))

	input.Current[cfg.ActionMoveLeft] = true
	assert.Equal(t, math.Vec2{X: -1, Y: -0.7}, MoveAxis(input))

	// Opposite directions cancel and fall back to the stick.
	input.Current[cfg.ActionMoveRight] = true
	assert.Equal(t, math.Vec2{X: 0.4, Y: -0.7}, MoveAxis(input))
}

func TestStateFromSignals(t *testing.T) {
	tests := []struct {
		name string
		sig  character.AnimationSignals
		vy   float64
		dead bool
		want cfg.StateID
	}{
		{"idle", character.AnimationSignals{Grounded: true}, 0, false, cfg.Idle},
		{"running", character.AnimationSignals{Grounded: true, Speed: 1}, 0, false, cfg.Running},
		{"jumping", character.AnimationSignals{}, 3, false, cfg.Jumping},
		{"falling", character.AnimationSignals{}, -3, false, cfg.Falling},
		{"wall slide", character.AnimationSignals{WallSliding: true}, -1, false, cfg.WallSlide},
		{"attack beats movement", character.AnimationSignals{Attacking: true, Speed: 1}, 0, false, cfg.Attacking},
		{"dash beats attack", character.AnimationSignals{Dashing: true, Attacking: true}, 0, false, cfg.Dashing},
		{"knockback beats dash", character.AnimationSignals{Knockback: true, Dashing: true}, 0, false, cfg.Knockback},
		{"dead beats all", character.AnimationSignals{Knockback: true}, 0, true, cfg.Dead},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, stateFromSignals(tt.sig, tt.vy, tt.dead))
		})
	}
}

func TestIntegrate(t *testing.T) {
	p := &components.PhysicsData{GravityScale: 2, Force: 30}
	integrate(p, 0.1)
	assert.InDelta(t, 30/cfg.Physics.Mass*0.1, p.Velocity.X, 1e-9)
	assert.InDelta(t, -cfg.Physics.Gravity*2*0.1, p.Velocity.Y, 1e-9)
	assert.Zero(t, p.Force)

	p.Velocity.Y = -cfg.Physics.MaxFallSpeed
	integrate(p, 0.1)
	assert.Equal(t, -cfg.Physics.MaxFallSpeed, p.Velocity.Y)

	p.Velocity.X = cfg.Physics.MaxRunSpeed
	p.Force = 100
	integrate(p, 0.1)
	assert.Equal(t, cfg.Physics.MaxRunSpeed, p.Velocity.X)

	p.Force = -1000
	integrate(p, 0.1)
	assert.Equal(t, -cfg.Physics.MaxRunSpeed, p.Velocity.X)
}

func TestPlayerSettlesOnFloor(t *testing.T) {
	w := newTestWorld(t)
	w.run(60)

	pos := w.position(w.player)
	assert.InDelta(t, 1.5, pos.Y, 1e-6)
	assert.InDelta(t, 3, pos.X, 1e-6)
	assert.True(t, components.Physics.Get(w.player).Grounded)
	assert.Equal(t, cfg.Idle, components.State.Get(w.player).CurrentState)

	// Entering the room moved the respawn point to the landing spot.
	player := components.Player.Get(w.player)
	assert.Equal(t, "room", player.Room)
	assert.False(t, player.CheckpointPending)
	assert.InDelta(t, 1.5, player.Spawn.Y, 1e-6)
}

func TestPlayerRunsRight(t *testing.T) {
	w := newTestWorld(t)
	w.run(60)
	w.run(30, cfg.ActionMoveRight)

	assert.Greater(t, w.position(w.player).X, 3.5)
	assert.Greater(t, components.Physics.Get(w.player).Velocity.X, 0.0)
	assert.Equal(t, cfg.Running, components.State.Get(w.player).CurrentState)

	w.run(10, cfg.ActionMoveLeft)
	ch := components.Character.Get(w.player)
	assert.False(t, ch.Controller.State().FacingRight)
}

func TestJumpLeavesGround(t *testing.T) {
	w := newTestWorld(t)
	w.run(60)

	w.tick(cfg.ActionJump)
	w.run(5, cfg.ActionJump)
	assert.Greater(t, w.position(w.player).Y, 1.5)
	assert.False(t, components.Physics.Get(w.player).Grounded)

	// Back on the floor eventually.
	w.run(120)
	assert.InDelta(t, 1.5, w.position(w.player).Y, 1e-6)
}

func TestSwingDamagesEnemy(t *testing.T) {
	w := newTestWorld(t)
	w.run(60)
	w.place(w.player, math.Vec2{X: 7, Y: 1.5})

	w.tick(cfg.ActionAttack)
	w.run(20)

	hp := components.Health.Get(w.enemy)
	assert.Equal(t, cfg.Combat.EnemyHealth-cfg.Attack.Damage, hp.Current)
	assert.True(t, w.enemy.HasComponent(components.HealthBar))
	assert.False(t, w.enemy.HasComponent(components.DamageEvent))
}

func TestEnemyRemovedAtZeroHealth(t *testing.T) {
	w := newTestWorld(t)
	w.run(60)
	components.Health.Get(w.enemy).Current = cfg.Attack.Damage
	w.place(w.player, math.Vec2{X: 7, Y: 1.5})

	w.tick(cfg.ActionAttack)
	w.run(10)
	require.True(t, w.enemy.Valid())
	assert.True(t, w.enemy.HasComponent(components.Death))
	assert.Empty(t, components.Character.Get(w.enemy).Controller.PendingTasks())

	w.run(int(cfg.Combat.DeathTime*float64(cfg.C.TickRate)) + 2)
	assert.False(t, w.enemy.Valid())
	_, ok := tags.Enemy.First(w.ecs.World)
	assert.False(t, ok)
}

func TestContactKnocksPlayerBack(t *testing.T) {
	w := newTestWorld(t)
	w.run(60)
	w.place(w.player, math.Vec2{X: 7.6, Y: 1.5})

	w.tick()
	ctrl := components.Character.Get(w.player).Controller
	assert.Greater(t, ctrl.State().KnockbackRemaining, 0.0)

	w.tick()
	assert.Less(t, components.Physics.Get(w.player).Velocity.X, 0.0)
	assert.Equal(t, cfg.Knockback, components.State.Get(w.player).CurrentState)
}

func TestRespawnBelowDeathPlane(t *testing.T) {
	w := newTestWorld(t)
	w.run(60)
	spawn := components.Player.Get(w.player).Spawn

	w.place(w.player, math.Vec2{X: 10, Y: cfg.Physics.DeathPlaneY - 5})
	w.tick()

	pos := w.position(w.player)
	assert.InDelta(t, spawn.X, pos.X, 1e-6)
	assert.InDelta(t, spawn.Y, pos.Y, 1e-6)
	assert.Equal(t, math.Vec2{}, components.Physics.Get(w.player).Velocity)

	cameraEntry, _ := components.Camera.First(w.ecs.World)
	assert.False(t, components.Camera.Get(cameraEntry).Follower.IsTransitioning())
}

func TestNewGameReturnsToLevelSpawn(t *testing.T) {
	w := newTestWorld(t)
	w.run(60)
	player := components.Player.Get(w.player)
	player.Spawn = math.Vec2{X: 12, Y: 1.5}
	w.place(w.player, math.Vec2{X: 14, Y: 1.5})

	w.tick(cfg.ActionNewGame)

	pos := w.position(w.player)
	assert.InDelta(t, 3, pos.X, 1e-6)
	assert.InDelta(t, 3, pos.Y, 1e-6)
	assert.Equal(t, math.Vec2{X: 3, Y: 3}, player.Spawn)

	// The first landing re-arms the respawn point.
	w.run(60)
	assert.Equal(t, "room", player.Room)
	assert.InDelta(t, 1.5, player.Spawn.Y, 1e-6)
}

func TestResolveTargetNeedsHealth(t *testing.T) {
	w := newTestWorld(t)

	target, ok := factory.ResolveTarget(components.Object.Get(w.enemy).Object)
	require.True(t, ok)
	target.TakeDamage(2)
	assert.Equal(t, 2, components.DamageEvent.Get(w.enemy).Amount)

	_, ok = factory.ResolveTarget(components.Object.Get(w.player).Object)
	assert.False(t, ok, "the player has no health component")

	wall, ok := tags.Wall.First(w.ecs.World)
	require.True(t, ok)
	_, ok = factory.ResolveTarget(components.Object.Get(wall).Object)
	assert.False(t, ok)
}
