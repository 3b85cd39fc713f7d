package camera

import (
	stdmath "math"
	"testing"

	"github.com/automoto/icecube/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi/features/math"
)

const frame = 1.0 / 60

func newTestFollower() *Follower {
	return NewFollower(config.Camera, 4, 2)
}

func TestClampToRoom(t *testing.T) {
	f := newTestFollower()
	f.SetBounds(math.Vec2{X: -10, Y: -10}, math.Vec2{X: 10, Y: 10})
	f.SetTarget(math.Vec2{})
	f.SnapToTarget()
	assert.Equal(t, math.Vec2{X: 0, Y: config.Camera.VerticalOffset}, f.Position())

	assert.Equal(t, -6.0, f.Clamp(math.Vec2{X: -50}).X)
	assert.Equal(t, 6.0, f.Clamp(math.Vec2{X: 50}).X)
	assert.Equal(t, 3.0, f.Clamp(math.Vec2{X: 3}).X)

	for range 600 {
		pos := f.Advance(math.Vec2{X: 20}, 0, frame)
		require.LessOrEqual(t, pos.X, 6.0)
	}
	assert.Equal(t, 6.0, f.Position().X)
}

func TestSetBoundsIsIdempotent(t *testing.T) {
	f := newTestFollower()
	f.SetTarget(math.Vec2{X: 30, Y: 30})
	f.SnapToTarget()

	lower, upper := math.Vec2{X: -5, Y: -5}, math.Vec2{X: 15, Y: 12}
	f.SetBounds(lower, upper)
	once := f.Position()
	f.SetBounds(lower, upper)
	assert.Equal(t, once, f.Position())
	assert.Equal(t, math.Vec2{X: 11, Y: 10}, once)
}

func TestInvalidBoundsFallBack(t *testing.T) {
	f := newTestFollower()
	f.SetBounds(math.Vec2{X: 5, Y: 5}, math.Vec2{})

	lower, upper := f.Bounds()
	e := config.Camera.UnboundedExtent
	assert.Equal(t, math.Vec2{X: -e, Y: -e}, lower)
	assert.Equal(t, math.Vec2{X: e, Y: e}, upper)

	p := math.Vec2{X: 300, Y: -200}
	assert.Equal(t, p, f.Clamp(p))

	// Only the broken axis is replaced.
	f.SetBounds(math.Vec2{X: 5, Y: -10}, math.Vec2{X: 0, Y: 10})
	lower, upper = f.Bounds()
	assert.Equal(t, -e, lower.X)
	assert.Equal(t, -10.0, lower.Y)
	assert.Equal(t, 10.0, upper.Y)
}

func TestNarrowRoomCentres(t *testing.T) {
	f := newTestFollower()
	f.SetBounds(math.Vec2{X: 0, Y: -20}, math.Vec2{X: 4, Y: 20})
	assert.Equal(t, 2.0, f.Clamp(math.Vec2{X: -9}).X)
	assert.Equal(t, 2.0, f.Clamp(math.Vec2{X: 9}).X)
}

func TestManualBounds(t *testing.T) {
	cfg := config.Camera
	cfg.UseManualBounds = true
	cfg.ManualLowerBounds = math.Vec2{X: 0, Y: 0}
	cfg.ManualUpperBounds = math.Vec2{X: 20, Y: 10}
	f := NewFollower(cfg, 4, 2)

	lower, upper := f.Bounds()
	assert.Equal(t, cfg.ManualLowerBounds, lower)
	assert.Equal(t, cfg.ManualUpperBounds, upper)
	assert.Equal(t, math.Vec2{X: 4, Y: 2}, f.Position())
}

func TestLookAheadDecay(t *testing.T) {
	tests := []struct {
		name string
		dt   float64
	}{
		{"quarter second", 0.25},
		{"60Hz", 1.0 / 60},
		{"144Hz", 1.0 / 144},
		{"30Hz", 1.0 / 30},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newTestFollower()
			f.SetTarget(math.Vec2{})

			f.Advance(math.Vec2{X: 1}, 0, tt.dt)
			_, target := f.LookAhead()
			require.Equal(t, config.Camera.LookAheadDistance, target)

			// Distance 2 at 1 unit/s takes 2 seconds.
			ticks := int(stdmath.Round(config.Camera.LookAheadDistance / config.Camera.LookAheadDecayRate / tt.dt))
			for i := 0; i < ticks-1; i++ {
				f.Advance(math.Vec2{X: 1}, 0, tt.dt)
				_, target = f.LookAhead()
				require.Greater(t, target, 0.0, "tick %d", i)
			}
			f.Advance(math.Vec2{X: 1}, 0, tt.dt)
			_, target = f.LookAhead()
			assert.Equal(t, 0.0, target)
		})
	}
}

func TestLookAheadFollowsReversal(t *testing.T) {
	f := newTestFollower()
	f.SetTarget(math.Vec2{})

	f.Advance(math.Vec2{X: 1}, 0, frame)
	f.Advance(math.Vec2{X: 0.5}, 0, frame)
	_, target := f.LookAhead()
	assert.Equal(t, -config.Camera.LookAheadDistance, target)

	for range 30 {
		f.Advance(math.Vec2{X: 0.5}, 0, frame)
	}
	current, _ := f.LookAhead()
	assert.Less(t, current, 0.0, "decaying target is still left of centre")
}

func TestSnapClearsSmoothing(t *testing.T) {
	f := newTestFollower()
	f.SetTarget(math.Vec2{})
	for i := range 30 {
		f.Advance(math.Vec2{X: float64(i)}, 0, frame)
	}
	current, _ := f.LookAhead()
	require.NotZero(t, current)

	f.SnapToTarget()
	current, target := f.LookAhead()
	assert.Zero(t, current)
	assert.Zero(t, target)
	assert.Equal(t, math.Vec2{X: 29, Y: config.Camera.VerticalOffset}, f.Position())
}

func TestFocusKeepsLookAhead(t *testing.T) {
	f := newTestFollower()
	f.SetTarget(math.Vec2{})
	for i := range 30 {
		f.Advance(math.Vec2{X: float64(i)}, 0, frame)
	}
	before, _ := f.LookAhead()

	f.FocusOnTarget()
	after, _ := f.LookAhead()
	assert.Equal(t, before, after)
	assert.Equal(t, 29.0, f.Position().X)
}

func TestFallingUsesFasterDamping(t *testing.T) {
	start := math.Vec2{Y: 10}
	resting := newTestFollower()
	falling := newTestFollower()
	for _, f := range []*Follower{resting, falling} {
		f.SetTarget(start)
		f.SnapToTarget()
	}

	target := math.Vec2{Y: 0}
	r := resting.Advance(target, 0, frame)
	fl := falling.Advance(target, -5, frame)
	assert.Less(t, fl.Y, r.Y, "falling camera catches up faster")

	// Only the first falling tick is special.
	r = resting.Advance(target, 0, frame)
	before := falling.Position().Y
	fl = falling.Advance(target, -5, frame)
	assert.Less(t, fl.Y, before)
	assert.Less(t, r.Y, 10.0+config.Camera.VerticalOffset)
}

func TestBoundsFromRects(t *testing.T) {
	_, _, ok := BoundsFromRects(nil, 5)
	assert.False(t, ok)

	lower, upper, ok := BoundsFromRects([]Rect{
		{Min: math.Vec2{X: 0, Y: 0}, Max: math.Vec2{X: 10, Y: 1}},
		{Min: math.Vec2{X: -4, Y: 3}, Max: math.Vec2{X: 2, Y: 8}},
	}, 5)
	require.True(t, ok)
	assert.Equal(t, math.Vec2{X: -9, Y: -5}, lower)
	assert.Equal(t, math.Vec2{X: 15, Y: 13}, upper)
}

func TestRect(t *testing.T) {
	r := Rect{Min: math.Vec2{X: -2, Y: 0}, Max: math.Vec2{X: 2, Y: 4}}
	assert.Equal(t, math.Vec2{X: 0, Y: 2}, r.Center())
	assert.True(t, r.Contains(math.Vec2{X: 2, Y: 4}))
	assert.False(t, r.Contains(math.Vec2{X: 2.1, Y: 1}))
}
