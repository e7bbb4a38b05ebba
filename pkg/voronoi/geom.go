package voronoi

import (
	"fmt"
	"math"
	"sync/atomic"
)

// DefaultEpsilon - допуск сравнения координат по умолчанию.
// Это не точные предикаты, поэтому на почти коллинеарных точках возможны сюрпризы.
const DefaultEpsilon = 1e-4

var pointCounter uint64

type Vec2 struct {
	X float64
	Y float64
}

func (v Vec2) Add(u Vec2) Vec2 { return Vec2{v.X + u.X, v.Y + u.Y} }

func (v Vec2) Sub(u Vec2) Vec2 { return Vec2{v.X - u.X, v.Y - u.Y} }

func (v Vec2) Scale(c float64) Vec2 { return Vec2{v.X * c, v.Y * c} }

func (v Vec2) Dot(u Vec2) float64 { return v.X*u.X + v.Y*u.Y }

// Cross - z-компонента векторного произведения
func (v Vec2) Cross(u Vec2) float64 { return v.X*u.Y - v.Y*u.X }

func (v Vec2) Len() float64 { return math.Hypot(v.X, v.Y) }

func (v Vec2) Normalized(eps float64) Vec2 {
	l := v.Len()
	if l < eps {
		return Vec2{}
	}
	return Vec2{v.X / l, v.Y / l}
}

// Point - точка (сайт или вершина треугольника).
// ID нужен только для отладки, в сравнении не участвует.
type Point struct {
	X  float64
	Y  float64
	ID uint64
}

func NewPoint(x, y float64) Point {
	return Point{X: x, Y: y, ID: atomic.AddUint64(&pointCounter, 1)}
}

func (p Point) Equal(q Point, eps float64) bool {
	return math.Abs(p.X-q.X) < eps && math.Abs(p.Y-q.Y) < eps
}

func (p Point) Sub(q Point) Vec2 { return Vec2{p.X - q.X, p.Y - q.Y} }

func (p Point) Translate(v Vec2) Point { return Point{X: p.X + v.X, Y: p.Y + v.Y} }

func (p Point) Dist(q Point) float64 { return math.Hypot(p.X-q.X, p.Y-q.Y) }

func (p Point) String() string {
	return fmt.Sprintf("(%.4f, %.4f)", p.X, p.Y)
}

func (p Point) finite() bool {
	return !math.IsNaN(p.X) && !math.IsNaN(p.Y) && !math.IsInf(p.X, 0) && !math.IsInf(p.Y, 0)
}

// Edge - неориентированное ребро
type Edge struct {
	Src Point
	Dst Point
}

func (e Edge) Equal(f Edge, eps float64) bool {
	return (e.Src.Equal(f.Src, eps) && e.Dst.Equal(f.Dst, eps)) ||
		(e.Src.Equal(f.Dst, eps) && e.Dst.Equal(f.Src, eps))
}

func (e Edge) Len() float64 { return e.Src.Dist(e.Dst) }

type Circle struct {
	Center Point
	Radius float64
}

// Contains - строго внутри окружности. Точки на границе (в пределах eps) не считаются.
func (c Circle) Contains(p Point, eps float64) bool {
	d := p.Dist(c.Center)
	return d < c.Radius && math.Abs(d-c.Radius) >= eps
}

type Triangle struct {
	A Point
	B Point
	C Point
}

func NewTriangle(a, b, c Point) Triangle {
	return Triangle{A: a, B: b, C: c}
}

func (t Triangle) Vertices() [3]Point { return [3]Point{t.A, t.B, t.C} }

func (t Triangle) Edges() [3]Edge {
	return [3]Edge{{t.A, t.B}, {t.B, t.C}, {t.C, t.A}}
}

// Equal сравнивает треугольники с точностью до любой из 6 перестановок вершин
func (t Triangle) Equal(u Triangle, eps float64) bool {
	a, b, c := t.A, t.B, t.C
	return (a.Equal(u.A, eps) && b.Equal(u.B, eps) && c.Equal(u.C, eps)) ||
		(a.Equal(u.A, eps) && b.Equal(u.C, eps) && c.Equal(u.B, eps)) ||
		(a.Equal(u.B, eps) && b.Equal(u.A, eps) && c.Equal(u.C, eps)) ||
		(a.Equal(u.B, eps) && b.Equal(u.C, eps) && c.Equal(u.A, eps)) ||
		(a.Equal(u.C, eps) && b.Equal(u.A, eps) && c.Equal(u.B, eps)) ||
		(a.Equal(u.C, eps) && b.Equal(u.B, eps) && c.Equal(u.A, eps))
}

func (t Triangle) ContainsVertex(p Point, eps float64) bool {
	return t.A.Equal(p, eps) || t.B.Equal(p, eps) || t.C.Equal(p, eps)
}

func (t Triangle) ContainsEdge(e Edge, eps float64) bool {
	for _, te := range t.Edges() {
		if te.Equal(e, eps) {
			return true
		}
	}
	return false
}

// SharedVertices - сколько вершин u совпадает с вершинами t
func (t Triangle) SharedVertices(u Triangle, eps float64) int {
	count := 0
	for _, v := range t.Vertices() {
		if u.ContainsVertex(v, eps) {
			count++
		}
	}
	return count
}

// IsNeighbor - соседи имеют ровно одно общее ребро
func (t Triangle) IsNeighbor(u Triangle, eps float64) bool {
	return t.SharedVertices(u, eps) == 2
}

// Area2 - удвоенная ориентированная площадь (положительная для CCW)
func (t Triangle) Area2() float64 {
	return (t.B.X-t.A.X)*(t.C.Y-t.A.Y) - (t.B.Y-t.A.Y)*(t.C.X-t.A.X)
}

// IsDegenerate - высота к самой длинной стороне меньше eps.
// Порог в единицах длины, поэтому не зависит от масштаба координат.
func (t Triangle) IsDegenerate(eps float64) bool {
	longest := math.Max(t.A.Dist(t.B), math.Max(t.B.Dist(t.C), t.C.Dist(t.A)))
	if longest < eps {
		return true
	}
	return math.Abs(t.Area2())/longest < eps
}

func (t Triangle) String() string {
	return fmt.Sprintf("A%v B%v C%v", t.A, t.B, t.C)
}

// Bounding Box
type BoundingBox struct {
	Xl, Xr, Yt, Yb float64
}

// Create new Bounding Box
func NewBoundingBox(xl, xr, yt, yb float64) BoundingBox {
	return BoundingBox{xl, xr, yt, yb}
}

func (b BoundingBox) Width() float64 { return b.Xr - b.Xl }

func (b BoundingBox) Height() float64 { return b.Yb - b.Yt }

// Pad сжимает (margin > 0) или расширяет (margin < 0) рамку с каждой стороны
func (b BoundingBox) Pad(margin float64) BoundingBox {
	return BoundingBox{b.Xl + margin, b.Xr - margin, b.Yt + margin, b.Yb - margin}
}

func (b BoundingBox) Contains(p Point) bool {
	return p.X >= b.Xl && p.X <= b.Xr && p.Y >= b.Yt && p.Y <= b.Yb
}
