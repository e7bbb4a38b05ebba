package render

import "github.com/0x0FACED/go-delaunay/pkg/voronoi"

// SiteRadius - радиус кружка сайта
const SiteRadius = 2

// Layers - что рисовать
type Layers struct {
	Cells         bool
	Mesh          bool
	Circumcircles bool
	Dual          bool
	Sites         bool
	// Spacing - круги диаметром MinDistance вокруг сайтов
	Spacing     bool
	MinDistance float64
}

func DefaultLayers() Layers {
	return Layers{Cells: true, Mesh: true, Dual: true, Sites: true}
}

var cellColors = []ColorID{Blue, Green, Cyan, Red, Magenta, Brown, LightBlue, DarkGray}

// Draw выводит диаграмму на поверхность. Порядок слоёв: ячейки, сетка, окружности, Вороной, сайты.
func Draw(s Surface, d *voronoi.Diagram, layers Layers) {
	if filler, ok := s.(PolygonFiller); ok && layers.Cells {
		for i, cell := range d.Cells {
			if !cell.Closed || len(cell.Vertices) < 3 {
				continue
			}
			filler.FillPolygon(cellColors[i%len(cellColors)], cell.Vertices)
		}
	}

	if layers.Mesh {
		DrawMesh(s, d.Triangles, LightGreen)
	}

	if layers.Circumcircles {
		eps := d.Epsilon
		if eps <= 0 {
			eps = voronoi.DefaultEpsilon
		}
		s.SetColor(DarkGray)
		for _, t := range d.Triangles {
			c, err := t.Circumcircle(eps)
			if err != nil {
				continue
			}
			s.DrawCircle(c.Center, c.Radius)
		}
	}

	if layers.Dual {
		s.SetColor(Yellow)
		for _, e := range d.Edges {
			s.DrawLine(e.Src, e.Dst)
		}
	}

	if layers.Spacing && layers.MinDistance > 0 {
		s.SetColor(Cyan)
		for _, p := range d.Sites {
			s.DrawCircle(p, layers.MinDistance/2)
		}
	}

	if layers.Sites {
		s.SetColor(LightRed)
		for _, p := range d.Sites {
			DrawSite(s, p)
		}
	}
}

// DrawMesh - рёбра всех треугольников
func DrawMesh(s Surface, triangles []voronoi.Triangle, c ColorID) {
	s.SetColor(c)
	for _, t := range triangles {
		for _, e := range t.Edges() {
			s.DrawLine(e.Src, e.Dst)
		}
	}
}

func DrawSite(s Surface, p voronoi.Point) {
	if m, ok := s.(SiteMarker); ok {
		m.MarkSite(p)
		return
	}
	s.DrawCircle(p, SiteRadius)
}
