package leveldata

// Projection maps Tiled pixel space (y down, origin top left) to world
// units (y up, origin bottom left).
type Projection struct {
	PixelsPerUnit float64
	MapHeight     float64 // pixels
}

// NewProjection returns the projection for a loaded level.
func NewProjection(data *CollisionData, pixelsPerUnit float64) Projection {
	if pixelsPerUnit <= 0 {
		pixelsPerUnit = 1
	}
	return Projection{PixelsPerUnit: pixelsPerUnit, MapHeight: float64(data.MapHeight)}
}

// ToWorld converts a pixel point to world units.
func (p Projection) ToWorld(px, py float64) (x, y float64) {
	return px / p.PixelsPerUnit, (p.MapHeight - py) / p.PixelsPerUnit
}

// ToPixels converts a world point to pixels.
func (p Projection) ToPixels(x, y float64) (px, py float64) {
	return x * p.PixelsPerUnit, p.MapHeight - y*p.PixelsPerUnit
}

// RectToWorld converts a pixel rectangle given by its top left corner and
// size to world min and max corners.
func (p Projection) RectToWorld(px, py, pw, ph float64) (minX, minY, maxX, maxY float64) {
	minX, maxY = p.ToWorld(px, py)
	maxX, minY = p.ToWorld(px+pw, py+ph)
	return minX, minY, maxX, maxY
}

// Length converts a world length to pixels.
func (p Projection) Length(units float64) float64 {
	return units * p.PixelsPerUnit
}
