package voronoi

import (
	"math"

	"github.com/0x0FACED/go-delaunay/pkg/logger"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// DefaultSuperScale - во сколько раз супертреугольник больше рамки сайтов.
// На результат не влияет: вершины супертреугольника в проверках окружностей
// считаются бесконечно удалёнными, масштаб нужен только чтобы он накрыл все сайты.
const DefaultSuperScale = 100.0

// Triangulator - алгоритм Боуэра-Уотсона
type Triangulator struct {
	Epsilon    float64
	SuperScale float64
	Logger     *logger.ZapLogger
}

func NewTriangulator(log *logger.ZapLogger) *Triangulator {
	return &Triangulator{
		Epsilon:    DefaultEpsilon,
		SuperScale: DefaultSuperScale,
		Logger:     log,
	}
}

// superTriangle - равносторонний треугольник с центром в центре рамки сайтов.
// dirs[k] - единичное направление из центра на k-ю вершину.
type superTriangle struct {
	Triangle
	center Point
	dirs   [3]Vec2
}

func newSuperTriangle(sites []Point, scale float64) superTriangle {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, s := range sites {
		minX = math.Min(minX, s.X)
		minY = math.Min(minY, s.Y)
		maxX = math.Max(maxX, s.X)
		maxY = math.Max(maxY, s.Y)
	}

	d := math.Max(math.Max(maxX-minX, maxY-minY), 1)
	st := superTriangle{
		center: Point{X: (minX + maxX) / 2, Y: (minY + maxY) / 2},
		dirs: [3]Vec2{
			{-math.Sqrt(3) / 2, -0.5},
			{math.Sqrt(3) / 2, -0.5},
			{0, 1},
		},
	}

	var v [3]Point
	for k, dir := range st.dirs {
		far := st.center.Translate(dir.Scale(scale * d))
		v[k] = NewPoint(far.X, far.Y)
	}
	st.Triangle = NewTriangle(v[0], v[1], v[2])
	return st
}

// SuperTriangle строит треугольник, гарантированно содержащий все сайты (scale >= 2)
func SuperTriangle(sites []Point, scale float64) Triangle {
	return newSuperTriangle(sites, scale).Triangle
}

// vertex - номер вершины супертреугольника или -1. Сравнение по ID: координаты
// сайтов могут совпасть с чем угодно, ID - нет.
func (st superTriangle) vertex(p Point) int {
	for k, v := range st.Vertices() {
		if p.ID == v.ID {
			return k
		}
	}
	return -1
}

func (st superTriangle) touches(t Triangle) bool {
	return st.vertex(t.A) >= 0 || st.vertex(t.B) >= 0 || st.vertex(t.C) >= 0
}

// inCircle - попадает ли x строго внутрь описанной окружности t.
// Для треугольников с вершинами супертреугольника - предел при удалении
// этих вершин на бесконечность.
func (st superTriangle) inCircle(t Triangle, x Point, eps float64) (bool, error) {
	var sites []Point
	var far []int
	for _, v := range t.Vertices() {
		if k := st.vertex(v); k >= 0 {
			far = append(far, k)
		} else {
			sites = append(sites, v)
		}
	}

	switch len(far) {
	case 0:
		circle, err := t.Circumcircle(eps)
		if err != nil {
			return false, err
		}
		return circle.Contains(x, eps), nil
	case 1:
		return st.halfPlane(sites[0], sites[1], far[0], x, eps), nil
	case 2:
		return st.beyond(sites[0], 3-far[0]-far[1], x, eps), nil
	default:
		return true, nil
	}
}

// halfPlane - предел окружности через p, q и бесконечную вершину k:
// открытая полуплоскость прямой pq со стороны k. На самой прямой внутрь
// попадает только внутренность отрезка pq.
func (st superTriangle) halfPlane(p, q Point, k int, x Point, eps float64) bool {
	pq := q.Sub(p)
	length := pq.Len()
	if length < eps {
		return false
	}

	side := pq.Cross(st.dirs[k])
	if nearZero(side, length) {
		// направление на вершину параллельно pq, решает сдвиг центра
		side = pq.Cross(st.center.Sub(p))
	}

	dist := pq.Cross(x.Sub(p)) / length
	if math.Abs(dist) < eps {
		along := x.Sub(p).Dot(pq) / length
		return along > eps && along < length-eps
	}
	return (dist > 0) == (side > 0)
}

// beyond - предел окружности через p и две бесконечные вершины (третья - opposite):
// полуплоскость за прямой через p, перпендикулярной направлению на opposite.
func (st superTriangle) beyond(p Point, opposite int, x Point, eps float64) bool {
	w := st.dirs[opposite].Scale(-1)
	along := x.Sub(p).Dot(w)
	if math.Abs(along) >= eps {
		return along > 0
	}
	// на граничной прямой окружность ближе к центру её хорды
	lateral := Vec2{-w.Y, w.X}
	return math.Abs(x.Sub(st.center).Dot(lateral)) < math.Abs(p.Sub(st.center).Dot(lateral))-eps
}

// Triangulate строит триангуляцию Делоне. Сайты обрабатываются строго в порядке входа.
func (tr *Triangulator) Triangulate(sites []Point) (*Mesh, error) {
	eps := tr.Epsilon
	log := tr.Logger

	if len(sites) < 3 {
		return nil, errors.Wrapf(ErrInvalidInput, "need at least 3 sites, got %d", len(sites))
	}
	for i, s := range sites {
		if !s.finite() {
			return nil, errors.Wrapf(ErrInvalidInput, "site %d is not finite: %v", i, s)
		}
	}

	log.Info("[bw] Триангуляция запущена", zap.Int("sites", len(sites)), zap.Float64("eps", eps))

	super := newSuperTriangle(sites, tr.SuperScale)
	log.Debug("[bw] Супертреугольник", zap.Stringer("triangle", super.Triangle))

	mesh := NewMesh(eps)
	mesh.Add(super.Triangle)

	for i, site := range sites {
		if dup := firstEqual(sites[:i], site, eps); dup >= 0 {
			log.Warn("[bw] Найден дубликат, пропускаем", zap.Int("site", i), zap.Int("same-as", dup), zap.Stringer("point", site))
			continue
		}

		bad := tr.invalidTriangles(mesh, super, site)
		if len(bad) == 0 {
			log.Warn("[bw] Сайт не попал ни в одну окружность", zap.Int("site", i), zap.Stringer("point", site))
			continue
		}

		boundary := cavityBoundary(bad, eps)

		for _, t := range bad {
			mesh.Remove(t)
		}
		for _, e := range boundary {
			mesh.Add(NewTriangle(e.Src, e.Dst, site))
		}

		log.Debug("[bw] Сайт вставлен",
			zap.Int("site", i),
			zap.Int("invalid", len(bad)),
			zap.Int("boundary", len(boundary)),
			zap.Int("mesh", mesh.Len()),
		)
	}

	removed := mesh.Retain(func(t Triangle) bool {
		return !super.touches(t)
	})
	log.Info("[bw] Супертреугольник удалён", zap.Int("removed", removed))

	degenerate := mesh.Retain(func(t Triangle) bool {
		return !t.IsDegenerate(eps)
	})
	if degenerate > 0 {
		log.Warn("[bw] Удалены вырожденные треугольники", zap.Int("count", degenerate))
	}

	if mesh.Len() == 0 {
		log.Error("[bw] Ни одного треугольника, все сайты на одной прямой?")
		return mesh, errors.Wrap(ErrDegenerateGeometry, "triangulation is empty")
	}

	log.Info("[bw] Триангуляция завершена", zap.Int("triangles", mesh.Len()))
	return mesh, nil
}

// invalidTriangles - треугольники, в описанную окружность которых попал сайт
func (tr *Triangulator) invalidTriangles(mesh *Mesh, super superTriangle, site Point) []Triangle {
	var bad []Triangle
	for _, t := range mesh.triangles {
		inside, err := super.inCircle(t, site, tr.Epsilon)
		if err != nil {
			tr.Logger.Error("[bw] Вырожденный треугольник", zap.Error(err))
			continue
		}
		if inside {
			bad = append(bad, t)
		}
	}
	return bad
}

// cavityBoundary - рёбра, которые принадлежат ровно одному плохому треугольнику.
// Общие рёбра внутренние и отбрасываются.
func cavityBoundary(bad []Triangle, eps float64) []Edge {
	var boundary []Edge
	for _, t := range bad {
		for _, e := range t.Edges() {
			match := 0
			for _, other := range bad {
				if other.ContainsEdge(e, eps) {
					match++
				}
			}
			if match == 1 {
				boundary = append(boundary, e)
			}
		}
	}
	return boundary
}

func firstEqual(points []Point, p Point, eps float64) int {
	for i, q := range points {
		if q.Equal(p, eps) {
			return i
		}
	}
	return -1
}
