package voronoi

import "math"

// ClipEdges обрезает рёбра по рамке. Рёбра вне рамки и вырожденные в точку отбрасываются.
func ClipEdges(edges []Edge, bbox BoundingBox) []Edge {
	clipped := make([]Edge, 0, len(edges))
	for _, e := range edges {
		if !clipEdge(&e, bbox) {
			continue
		}
		if math.Abs(e.Src.X-e.Dst.X) < 1e-9 && math.Abs(e.Src.Y-e.Dst.Y) < 1e-9 {
			continue
		}
		clipped = append(clipped, e)
	}
	return clipped
}

// clipEdge - отсечение Лианга-Барски, Src и Dst сдвигаются внутрь рамки
func clipEdge(edge *Edge, bbox BoundingBox) bool {
	ax := edge.Src.X
	ay := edge.Src.Y
	bx := edge.Dst.X
	by := edge.Dst.Y
	t0 := float64(0)
	t1 := float64(1)
	dx := bx - ax
	dy := by - ay

	// p*t <= q для каждой из четырёх сторон
	sides := [4][2]float64{
		{-dx, ax - bbox.Xl}, // left
		{dx, bbox.Xr - ax},  // right
		{-dy, ay - bbox.Yt}, // top
		{dy, bbox.Yb - ay},  // bottom
	}

	for _, side := range sides {
		p, q := side[0], side[1]
		if p == 0 {
			if q < 0 {
				return false
			}
			continue
		}
		r := q / p
		if p < 0 {
			if r > t1 {
				return false
			} else if r > t0 {
				t0 = r
			}
		} else {
			if r < t0 {
				return false
			} else if r < t1 {
				t1 = r
			}
		}
	}

	if t1 < 1 {
		edge.Dst = Point{X: ax + t1*dx, Y: ay + t1*dy}
	}
	if t0 > 0 {
		edge.Src = Point{X: ax + t0*dx, Y: ay + t0*dy}
	}

	return true
}
