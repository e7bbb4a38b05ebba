package voronoi

import (
	"math"
	"sort"

	"github.com/0x0FACED/go-delaunay/pkg/logger"
	"go.uber.org/zap"
)

// Cell - ячейка Вороного вокруг сайта.
// Vertices - центры описанных окружностей соседних треугольников, отсортированы по углу.
// Closed = false для сайтов на выпуклой оболочке: их ячейка уходит в бесконечность.
type Cell struct {
	Site     Point
	Vertices []Point
	Closed   bool
}

// circumcenters считает центры для всей сетки, вырожденные помечаются ok=false
func circumcenters(triangles []Triangle, eps float64, log *logger.ZapLogger) ([]Point, []bool) {
	centers := make([]Point, len(triangles))
	ok := make([]bool, len(triangles))
	for i, t := range triangles {
		c, err := t.Circumcircle(eps)
		if err != nil {
			log.Warn("[dual] Треугольник исключён", zap.Error(err))
			continue
		}
		centers[i] = c.Center
		ok[i] = true
	}
	return centers, ok
}

// DeriveVoronoi соединяет центры описанных окружностей соседних треугольников.
// Попарный перебор O(n^2), без заранее построенной смежности.
func DeriveVoronoi(triangles []Triangle, eps float64, log *logger.ZapLogger) []Edge {
	centers, ok := circumcenters(triangles, eps, log)

	var edges []Edge
	for i := range triangles {
		if !ok[i] {
			continue
		}
		for j := i + 1; j < len(triangles); j++ {
			if !ok[j] {
				continue
			}
			if triangles[i].IsNeighbor(triangles[j], eps) {
				edges = append(edges, Edge{Src: centers[i], Dst: centers[j]})
			}
		}
	}

	log.Info("[dual] Рёбра Вороного построены", zap.Int("edges", len(edges)))
	return edges
}

// DeriveCells собирает ячейку для каждого сайта из треугольников, которым он принадлежит
func DeriveCells(sites []Point, triangles []Triangle, eps float64, log *logger.ZapLogger) []Cell {
	centers, ok := circumcenters(triangles, eps, log)

	cells := make([]Cell, 0, len(sites))
	for _, site := range sites {
		var fan []Triangle
		var vertices []Point
		for i, t := range triangles {
			if ok[i] && t.ContainsVertex(site, eps) {
				fan = append(fan, t)
				vertices = append(vertices, centers[i])
			}
		}
		if len(vertices) == 0 {
			continue
		}

		sort.SliceStable(vertices, func(a, b int) bool {
			return angleAround(site, vertices[a]) < angleAround(site, vertices[b])
		})

		cells = append(cells, Cell{
			Site:     site,
			Vertices: vertices,
			Closed:   fanClosed(site, fan, eps),
		})
	}
	return cells
}

func angleAround(site, p Point) float64 {
	return math.Atan2(p.Y-site.Y, p.X-site.X)
}

// fanClosed - каждое ребро, выходящее из сайта, делят ровно два треугольника веера
func fanClosed(site Point, fan []Triangle, eps float64) bool {
	for _, t := range fan {
		for _, e := range t.Edges() {
			if !e.Src.Equal(site, eps) && !e.Dst.Equal(site, eps) {
				continue
			}
			count := 0
			for _, other := range fan {
				if other.ContainsEdge(e, eps) {
					count++
				}
			}
			if count != 2 {
				return false
			}
		}
	}
	return true
}
