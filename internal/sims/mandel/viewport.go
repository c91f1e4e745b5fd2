package mandel

import "golang.org/x/exp/constraints"

// Viewport models the view as a center point plus the viewable range on the
// Y axis; the X range follows from the image aspect ratio. It converts to
// the min/max bounds the calculator consumes.
type Viewport[F constraints.Float] struct {
	CtrX  F
	CtrY  F
	Range F
}

// DefaultViewport centers on the origin with a unit Y range, the view the
// demo starts from.
func DefaultViewport[F constraints.Float]() Viewport[F] {
	return Viewport[F]{CtrX: 0, CtrY: 0, Range: 1}
}

// Bounds converts the center+range view into plane bounds for a w*h image.
func (v Viewport[F]) Bounds(w, h int) (minX, maxX, minY, maxY F) {
	rangeX := v.Range * F(w) / F(h)
	halfX := rangeX / 2
	halfY := v.Range / 2
	return v.CtrX - halfX, v.CtrX + halfX, v.CtrY - halfY, v.CtrY + halfY
}

// Panned returns the viewport shifted by (dx, dy) fractions of the visible
// range.
func (v Viewport[F]) Panned(dx, dy F) Viewport[F] {
	v.CtrX += dx * v.Range
	v.CtrY += dy * v.Range
	return v
}

// Zoomed returns the viewport with its range scaled by factor; factors
// below 1 zoom in.
func (v Viewport[F]) Zoomed(factor F) Viewport[F] {
	v.Range *= factor
	return v
}
