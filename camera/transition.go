package camera

import (
	"github.com/automoto/icecube/shared/gamemath"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/features/math"
)

// transition animates the camera between two points. The tween runs 0 to 1
// and is used as the interpolation factor.
type transition struct {
	tween *gween.Tween
	start math.Vec2
	end   math.Vec2
}

// TransitionToBounds switches to a new room: the bounds are replaced and the
// camera eases to the room centre, clamped to the new bounds, over duration
// seconds. A duration <= 0 uses the configured room transition time. While a
// transition already runs only the bounds change.
func (f *Follower) TransitionToBounds(lower, upper math.Vec2, duration float64) {
	if f.transition != nil {
		f.SetBounds(lower, upper)
		return
	}

	// Start the animation first so SetBounds does not snap the camera.
	f.startTransition(f.position, duration)
	f.SetBounds(lower, upper)
	f.transition.end = f.clamp(Rect{Min: lower, Max: upper}.Center())
}

// TransitionToPosition eases the camera to pos without touching the bounds.
// It is ignored while another transition runs.
func (f *Follower) TransitionToPosition(pos math.Vec2, duration float64) {
	if f.transition != nil {
		return
	}
	f.startTransition(f.position, duration)
	f.transition.end = pos
}

// IsTransitioning reports whether a transition owns the camera.
func (f *Follower) IsTransitioning() bool {
	return f.transition != nil
}

func (f *Follower) startTransition(from math.Vec2, duration float64) {
	if duration <= 0 {
		duration = f.cfg.RoomTransitionTime
	}
	fn := f.cfg.TransitionEase
	if fn == nil {
		fn = ease.InOutQuad
	}
	f.transition = &transition{
		tween: gween.New(0, 1, float32(duration), fn),
		start: from,
	}
}

func (f *Follower) stepTransition(dt float64) {
	tr := f.transition
	t, done := tr.tween.Update(float32(dt))
	if done {
		f.position = tr.end
		f.transition = nil
		f.velocity = math.Vec2{}
		return
	}
	k := float64(t)
	f.position = math.Vec2{
		X: gamemath.Lerp(tr.start.X, tr.end.X, k),
		Y: gamemath.Lerp(tr.start.Y, tr.end.Y, k),
	}
}
