package zone

import (
	"testing"

	"github.com/automoto/icecube/camera"
	"github.com/automoto/icecube/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi/features/math"
)

type call struct {
	name         string
	lower, upper math.Vec2
	duration     float64
}

type recorder struct {
	calls []call
}

func (r *recorder) SetBounds(lower, upper math.Vec2) {
	r.calls = append(r.calls, call{name: "set", lower: lower, upper: upper})
}

func (r *recorder) TransitionToBounds(lower, upper math.Vec2, duration float64) {
	r.calls = append(r.calls, call{name: "transition", lower: lower, upper: upper, duration: duration})
}

func (r *recorder) SnapToTarget() {
	r.calls = append(r.calls, call{name: "snap"})
}

func room(minX, maxX float64) camera.Rect {
	return camera.Rect{Min: math.Vec2{X: minX, Y: 0}, Max: math.Vec2{X: maxX, Y: 10}}
}

func TestEnterModes(t *testing.T) {
	lower, upper := math.Vec2{X: 1, Y: 2}, math.Vec2{X: 3, Y: 4}
	tests := []struct {
		mode Mode
		want []string
	}{
		{ModeTransition, []string{"transition"}},
		{ModeSnap, []string{"set", "snap"}},
		{ModeSetOnly, []string{"set"}},
	}
	for _, tt := range tests {
		t.Run(tt.mode.String(), func(t *testing.T) {
			r := &recorder{}
			BoundZone{Lower: lower, Upper: upper, Mode: tt.mode, Duration: 0.4}.Enter(r)

			var names []string
			for _, c := range r.calls {
				names = append(names, c.name)
			}
			assert.Equal(t, tt.want, names)
			assert.Equal(t, lower, r.calls[0].lower)
			assert.Equal(t, upper, r.calls[0].upper)
		})
	}
}

func TestTransitionPassesDuration(t *testing.T) {
	r := &recorder{}
	BoundZone{Duration: 1.5}.Enter(r)
	require.Len(t, r.calls, 1)
	assert.Equal(t, 1.5, r.calls[0].duration)
}

func TestFromCollider(t *testing.T) {
	z := FromCollider("hall", room(0, 20), math.Vec2{X: 1, Y: 2})
	assert.Equal(t, "hall", z.Name)
	assert.Equal(t, math.Vec2{X: 1, Y: 2}, z.Lower)
	assert.Equal(t, math.Vec2{X: 19, Y: 8}, z.Upper)
	assert.Equal(t, ModeTransition, z.Mode)
}

func TestParseMode(t *testing.T) {
	for in, want := range map[string]Mode{
		"":           ModeTransition,
		"Transition": ModeTransition,
		"snap":       ModeSnap,
		" set ":      ModeSetOnly,
		"setonly":    ModeSetOnly,
	} {
		got, err := ParseMode(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := ParseMode("wobble")
	assert.Error(t, err)
}

func TestTrackerFiresOncePerEntry(t *testing.T) {
	a := FromCollider("a", room(0, 10), math.Vec2{})
	b := FromCollider("b", room(10, 20), math.Vec2{})
	b.Mode = ModeSetOnly
	tr := NewTracker([]BoundZone{a, b})
	r := &recorder{}

	entered := tr.Update(math.Vec2{X: 5, Y: 5}, r)
	require.Len(t, entered, 1)
	assert.Equal(t, "a", entered[0].Name)

	assert.Empty(t, tr.Update(math.Vec2{X: 6, Y: 5}, r), "staying inside does not refire")

	entered = tr.Update(math.Vec2{X: 15, Y: 5}, r)
	require.Len(t, entered, 1)
	assert.Equal(t, "b", entered[0].Name)

	entered = tr.Update(math.Vec2{X: 5, Y: 5}, r)
	require.Len(t, entered, 1)
	assert.Equal(t, "a", entered[0].Name)
	assert.Len(t, r.calls, 3)

	tr.Reset()
	assert.Len(t, tr.Update(math.Vec2{X: 5, Y: 5}, r), 1)
}

func TestTrackerLeavingNestedZone(t *testing.T) {
	hall := FromCollider("hall", room(0, 30), math.Vec2{})
	nook := FromCollider("nook", room(25, 28), math.Vec2{})
	nook.Mode = ModeSetOnly
	nook.Lower, nook.Upper = math.Vec2{X: 15}, math.Vec2{X: 30, Y: 10}
	tr := NewTracker([]BoundZone{hall, nook})
	r := &recorder{}

	require.Len(t, tr.Update(math.Vec2{X: 5, Y: 5}, r), 1)

	entered := tr.Update(math.Vec2{X: 26, Y: 5}, r)
	require.Len(t, entered, 1)
	assert.Equal(t, "nook", entered[0].Name)

	// Stepping out of the nook, still inside the hall, restores the hall.
	entered = tr.Update(math.Vec2{X: 20, Y: 5}, r)
	require.Len(t, entered, 1)
	assert.Equal(t, "hall", entered[0].Name)
	last := r.calls[len(r.calls)-1]
	assert.Equal(t, "transition", last.name)
	assert.Equal(t, hall.Lower, last.lower)
	assert.Equal(t, hall.Upper, last.upper)

	assert.Empty(t, tr.Update(math.Vec2{X: 10, Y: 5}, r), "hall stays active")
	assert.Empty(t, tr.Update(math.Vec2{X: 40, Y: 5}, r), "outside every zone")
	assert.Len(t, r.calls, 3)
}

func TestZoneDrivesFollower(t *testing.T) {
	f := camera.NewFollower(config.Camera, 4, 2)
	f.SetTarget(math.Vec2{X: 15, Y: 5})

	z := FromCollider("b", room(10, 30), math.Vec2{})
	z.Mode = ModeSnap
	z.Enter(f)

	lower, upper := f.Bounds()
	assert.Equal(t, z.Lower, lower)
	assert.Equal(t, z.Upper, upper)
	assert.Equal(t, math.Vec2{X: 15, Y: 6}, f.Position())
	assert.False(t, f.IsTransitioning())
}
