// Package collide adapts a resolv space to the queries the character
// controller asks for and moves bodies against level solids.
//
// resolv objects live in Tiled pixel space (y down). Everything crossing the
// package boundary is converted to world units (y up) with a
// leveldata.Projection.
package collide

import (
	"github.com/automoto/icecube/shared/leveldata"
	"github.com/automoto/icecube/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi/features/math"
)

// Centre returns the world position of the centre of obj.
func Centre(obj *resolv.Object, p leveldata.Projection) math.Vec2 {
	x, y := p.ToWorld(obj.X+obj.W/2, obj.Y+obj.H/2)
	return math.Vec2{X: x, Y: y}
}

// Place moves obj so its centre sits at the world position c.
func Place(obj *resolv.Object, p leveldata.Projection, c math.Vec2) {
	px, py := p.ToPixels(c.X, c.Y)
	obj.X = px - obj.W/2
	obj.Y = py - obj.H/2
	obj.Update()
}

// Move moves obj by dx, dy pixels, stopping at the first solid on each axis.
// The horizontal step is resolved first.
func Move(obj *resolv.Object, dx, dy float64) (hitX, hitY bool) {
	if dx != 0 {
		dx, hitX = sweep(obj, dx, 0)
		obj.X += dx
	}
	if dy != 0 {
		dy, hitY = sweep(obj, 0, dy)
		obj.Y += dy
	}
	obj.Update()
	return hitX, hitY
}

// sweep returns how far obj can travel along one axis before touching a
// solid. Exactly one of dx, dy is non-zero.
func sweep(obj *resolv.Object, dx, dy float64) (float64, bool) {
	check := obj.Check(dx, dy, tags.ResolvSolid)
	if check == nil {
		return dx + dy, false
	}

	step := dx + dy
	hit := false
	for _, solid := range check.ObjectsByTags(tags.ResolvSolid) {
		if !overlapsAt(obj, solid, dx, dy) {
			continue
		}
		contact := check.ContactWithObject(solid)
		d := contact.X()
		if dy != 0 {
			d = contact.Y()
		}
		if !hit || closer(d, step) {
			step = d
		}
		hit = true
	}
	return step, hit
}

func closer(d, step float64) bool {
	if step > 0 {
		return d < step
	}
	return d > step
}

// overlapsAt reports whether a moved by dx, dy overlaps b. Touching edges do
// not count.
func overlapsAt(a, b *resolv.Object, dx, dy float64) bool {
	return a.X+dx < b.X+b.W && a.X+dx+a.W > b.X &&
		a.Y+dy < b.Y+b.H && a.Y+dy+a.H > b.Y
}

// Overlaps reports whether the bounds of a and b intersect.
func Overlaps(a, b *resolv.Object) bool {
	return overlapsAt(a, b, 0, 0)
}
