package camera

import (
	stdmath "math"

	"github.com/yohamta/donburi/features/math"
)

// defaultUnboundedExtent is used when the config leaves UnboundedExtent unset.
const defaultUnboundedExtent = 1000

// Rect is an axis aligned rectangle in world units.
type Rect struct {
	Min math.Vec2
	Max math.Vec2
}

// Center returns the middle of the rectangle.
func (r Rect) Center() math.Vec2 {
	return math.Vec2{X: (r.Min.X + r.Max.X) / 2, Y: (r.Min.Y + r.Max.Y) / 2}
}

// Contains reports whether p lies inside r, edges included.
func (r Rect) Contains(p math.Vec2) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X && p.Y >= r.Min.Y && p.Y <= r.Max.Y
}

// SetBounds replaces the room rectangle. An axis whose upper bound is below
// its lower bound falls back to the unbounded range instead of failing. The
// camera is re-clamped at once unless a transition is running.
func (f *Follower) SetBounds(lower, upper math.Vec2) {
	e := f.unbounded()
	if upper.X < lower.X {
		lower.X, upper.X = -e, e
	}
	if upper.Y < lower.Y {
		lower.Y, upper.Y = -e, e
	}
	f.lower = lower
	f.upper = upper

	if f.transition == nil {
		f.position = f.clamp(f.position)
	}
}

// Bounds returns the active room rectangle.
func (f *Follower) Bounds() (lower, upper math.Vec2) {
	return f.lower, f.upper
}

// Clamp returns pos limited so the visible area stays inside the bounds.
func (f *Follower) Clamp(pos math.Vec2) math.Vec2 {
	return f.clamp(pos)
}

func (f *Follower) clamp(pos math.Vec2) math.Vec2 {
	return math.Vec2{
		X: clampAxis(pos.X, f.lower.X, f.upper.X, f.halfWidth),
		Y: clampAxis(pos.Y, f.lower.Y, f.upper.Y, f.halfHeight),
	}
}

// clampAxis keeps v within [lo+half, hi-half]. A room narrower than the view
// centres the camera on that axis.
func clampAxis(v, lo, hi, half float64) float64 {
	minPos, maxPos := lo+half, hi-half
	if minPos > maxPos {
		return (lo + hi) / 2
	}
	return stdmath.Max(minPos, stdmath.Min(maxPos, v))
}

func (f *Follower) unbounded() float64 {
	if f.cfg.UnboundedExtent > 0 {
		return f.cfg.UnboundedExtent
	}
	return defaultUnboundedExtent
}

// BoundsFromRects returns the rectangle enclosing every rect, grown by
// padding on each side. ok is false when rects is empty.
func BoundsFromRects(rects []Rect, padding float64) (lower, upper math.Vec2, ok bool) {
	if len(rects) == 0 {
		return lower, upper, false
	}
	lower = math.Vec2{X: stdmath.Inf(1), Y: stdmath.Inf(1)}
	upper = math.Vec2{X: stdmath.Inf(-1), Y: stdmath.Inf(-1)}
	for _, r := range rects {
		lower.X = stdmath.Min(lower.X, r.Min.X)
		lower.Y = stdmath.Min(lower.Y, r.Min.Y)
		upper.X = stdmath.Max(upper.X, r.Max.X)
		upper.Y = stdmath.Max(upper.Y, r.Max.Y)
	}
	lower.X -= padding
	lower.Y -= padding
	upper.X += padding
	upper.Y += padding
	return lower, upper, true
}
