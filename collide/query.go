package collide

import (
	gomath "math"

	"github.com/automoto/icecube/character"
	"github.com/automoto/icecube/shared/leveldata"
	"github.com/automoto/icecube/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi/features/math"
)

// Query answers the controller's physics and target questions against a
// resolv space.
type Query struct {
	Space      *resolv.Space
	Projection leveldata.Projection

	// TargetTag selects the objects OverlapCircle considers.
	TargetTag string
	// Resolve maps an object to its damage target. Objects it rejects are
	// skipped.
	Resolve func(obj *resolv.Object) (character.DamageTarget, bool)
}

// NewQuery returns a query over space. Swings hit objects tagged targetTag.
func NewQuery(space *resolv.Space, p leveldata.Projection, targetTag string) *Query {
	return &Query{Space: space, Projection: p, TargetTag: targetTag}
}

// IsGrounded reports whether a circle at point overlaps a solid.
func (q *Query) IsGrounded(point math.Vec2, radius float64) bool {
	probe := q.circleBounds(point, radius)
	for _, o := range q.overlapping(probe, tags.ResolvSolid) {
		if circleHitsRect(q.toPixels(point), q.Projection.Length(radius), o) {
			return true
		}
	}
	return false
}

// OverlapBox reports whether a box centred on center overlaps a solid.
func (q *Query) OverlapBox(center, size math.Vec2) bool {
	w, h := q.Projection.Length(size.X), q.Projection.Length(size.Y)
	c := q.toPixels(center)
	probe := resolv.NewObject(c.X-w/2, c.Y-h/2, w, h)
	return len(q.overlapping(probe, tags.ResolvSolid)) > 0
}

// OverlapCircle returns the damage targets overlapping a circle.
func (q *Query) OverlapCircle(center math.Vec2, radius float64) []character.DamageTarget {
	if q.Resolve == nil || q.TargetTag == "" {
		return nil
	}
	probe := q.circleBounds(center, radius)
	c, r := q.toPixels(center), q.Projection.Length(radius)

	var out []character.DamageTarget
	for _, o := range q.overlapping(probe, q.TargetTag) {
		if !circleHitsRect(c, r, o) {
			continue
		}
		if t, ok := q.Resolve(o); ok {
			out = append(out, t)
		}
	}
	return out
}

func (q *Query) toPixels(p math.Vec2) math.Vec2 {
	x, y := q.Projection.ToPixels(p.X, p.Y)
	return math.Vec2{X: x, Y: y}
}

func (q *Query) circleBounds(center math.Vec2, radius float64) *resolv.Object {
	c := q.toPixels(center)
	r := q.Projection.Length(radius)
	return resolv.NewObject(c.X-r, c.Y-r, 2*r, 2*r)
}

// overlapping adds probe to the space for the duration of the check and
// returns the objects with tag whose bounds intersect it.
func (q *Query) overlapping(probe *resolv.Object, tag string) []*resolv.Object {
	if q.Space == nil {
		return nil
	}
	q.Space.Add(probe)
	defer q.Space.Remove(probe)

	check := probe.Check(0, 0, tag)
	if check == nil {
		return nil
	}
	var out []*resolv.Object
	for _, o := range check.ObjectsByTags(tag) {
		if Overlaps(probe, o) {
			out = append(out, o)
		}
	}
	return out
}

// circleHitsRect reports whether a circle in pixel space overlaps o.
func circleHitsRect(c math.Vec2, r float64, o *resolv.Object) bool {
	nx := gomath.Max(o.X, gomath.Min(c.X, o.X+o.W))
	ny := gomath.Max(o.Y, gomath.Min(c.Y, o.Y+o.H))
	dx, dy := c.X-nx, c.Y-ny
	return dx*dx+dy*dy < r*r
}
