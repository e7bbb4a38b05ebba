package voronoi

import (
	"math"
	"math/rand"
	"sort"
	"testing"

	"github.com/0x0FACED/go-delaunay/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func points(coords ...float64) []Point {
	out := make([]Point, 0, len(coords)/2)
	for i := 0; i+1 < len(coords); i += 2 {
		out = append(out, NewPoint(coords[i], coords[i+1]))
	}
	return out
}

func scatteredSites() []Point {
	return points(
		1, 1,
		9, 2,
		7, 8,
		2, 7,
		5, 4,
		4, 9,
		8, 5,
		3, 3.5,
	)
}

func triangulate(t *testing.T, sites []Point) []Triangle {
	t.Helper()
	mesh, err := NewTriangulator(logger.New()).Triangulate(sites)
	require.NoError(t, err)
	return mesh.Triangles()
}

func TestTriangulate_SingleTriangle(t *testing.T) {
	sites := points(0, 0, 4, 0, 2, 3)
	tris := triangulate(t, sites)

	require.Len(t, tris, 1)
	assert.True(t, tris[0].Equal(NewTriangle(sites[0], sites[1], sites[2]), DefaultEpsilon))
}

func TestTriangulate_Square(t *testing.T) {
	sites := points(0, 0, 1, 0, 1, 1, 0, 1)
	tris := triangulate(t, sites)
	require.Len(t, tris, 2)

	// общее ребро должно быть одной из диагоналей
	var shared []Edge
	for _, e := range tris[0].Edges() {
		if tris[1].ContainsEdge(e, DefaultEpsilon) {
			shared = append(shared, e)
		}
	}
	require.Len(t, shared, 1)

	diag1 := Edge{sites[0], sites[2]}
	diag2 := Edge{sites[1], sites[3]}
	assert.True(t, shared[0].Equal(diag1, DefaultEpsilon) || shared[0].Equal(diag2, DefaultEpsilon), "shared edge %v", shared[0])
}

func TestTriangulate_Collinear(t *testing.T) {
	mesh, err := NewTriangulator(logger.New()).Triangulate(points(0, 0, 1, 0, 2, 0))
	assert.ErrorIs(t, err, ErrDegenerateGeometry)
	if mesh != nil {
		assert.Zero(t, mesh.Len())
	}
}

func TestTriangulate_InvalidInput(t *testing.T) {
	tr := NewTriangulator(logger.New())

	_, err := tr.Triangulate(points(0, 0, 1, 1))
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = tr.Triangulate([]Point{NewPoint(0, 0), NewPoint(1, 0), NewPoint(math.NaN(), 1)})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestTriangulate_DuplicateSiteIgnored(t *testing.T) {
	tris := triangulate(t, points(0, 0, 4, 0, 2, 3, 0, 0))
	assert.Len(t, tris, 1)
}

func TestTriangulate_EmptyCircumcircle(t *testing.T) {
	sites := scatteredSites()
	tris := triangulate(t, sites)
	require.NotEmpty(t, tris)

	for _, tri := range tris {
		circle, err := tri.Circumcircle(DefaultEpsilon)
		require.NoError(t, err)
		for _, s := range sites {
			assert.False(t, circle.Contains(s, DefaultEpsilon), "site %v inside circumcircle of %v", s, tri)
		}
	}
}

func TestTriangulate_MeshClosure(t *testing.T) {
	tris := triangulate(t, scatteredSites())

	counts := map[triangleKey]int{}
	for _, tri := range tris {
		for _, e := range tri.Edges() {
			// ключ ребра - вырожденный треугольник (src, dst, src)
			counts[keyOf(NewTriangle(e.Src, e.Dst, e.Src))]++
		}
	}

	internal := 0
	for _, n := range counts {
		assert.LessOrEqual(t, n, 2)
		if n == 2 {
			internal++
		}
	}
	assert.NotZero(t, internal)

	// каждое внутреннее ребро встречается дважды: 3T = 2I + B
	assert.Equal(t, 3*len(tris), 2*internal+(len(counts)-internal))
}

func TestTriangulate_Deterministic(t *testing.T) {
	sites := scatteredSites()
	first := triangulate(t, sites)
	for i := 0; i < 3; i++ {
		assert.Equal(t, first, triangulate(t, sites))
	}
}

func TestTriangulate_SuperTrianglePurged(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	sites, err := GenerateSites(rng, SamplerConfig{
		Count:       60,
		MinDistance: 20,
		Bounds:      NewBoundingBox(0, 640, 0, 480),
	}, logger.New())
	require.NoError(t, err)

	super := SuperTriangle(sites, DefaultSuperScale)
	tris := triangulate(t, sites)
	require.NotEmpty(t, tris)

	for _, tri := range tris {
		for _, v := range super.Vertices() {
			assert.False(t, tri.ContainsVertex(v, DefaultEpsilon))
		}
		for _, v := range tri.Vertices() {
			assert.GreaterOrEqual(t, firstEqual(sites, v, DefaultEpsilon), 0, "vertex %v is not a site", v)
		}
	}
}

func TestSuperTriangleContainsSites(t *testing.T) {
	sites := scatteredSites()
	super := SuperTriangle(sites, DefaultSuperScale)
	for _, s := range sites {
		// сайт внутри, если все три ориентированные площади одного знака
		s1 := NewTriangle(super.A, super.B, s).Area2()
		s2 := NewTriangle(super.B, super.C, s).Area2()
		s3 := NewTriangle(super.C, super.A, s).Area2()
		assert.True(t, s1 > 0 && s2 > 0 && s3 > 0, "site %v outside super triangle", s)
	}
}

// hull - выпуклая оболочка (монотонная цепь Эндрю), без точек на сторонах
func hull(sites []Point) []Point {
	pts := append([]Point(nil), sites...)
	sort.Slice(pts, func(i, j int) bool {
		if pts[i].X != pts[j].X {
			return pts[i].X < pts[j].X
		}
		return pts[i].Y < pts[j].Y
	})

	turn := func(o, a, b Point) float64 { return a.Sub(o).Cross(b.Sub(o)) }
	var h []Point
	for pass := 0; pass < 2; pass++ {
		start := len(h)
		for _, p := range pts {
			for len(h) >= start+2 && turn(h[len(h)-2], h[len(h)-1], p) <= 0 {
				h = h[:len(h)-1]
			}
			h = append(h, p)
		}
		h = h[:len(h)-1]
		for i, j := 0, len(pts)-1; i < j; i, j = i+1, j-1 {
			pts[i], pts[j] = pts[j], pts[i]
		}
	}
	return h
}

func polygonArea(poly []Point) float64 {
	sum := 0.0
	for i := range poly {
		j := (i + 1) % len(poly)
		sum += poly[i].X*poly[j].Y - poly[j].X*poly[i].Y
	}
	return math.Abs(sum) / 2
}

func meshArea(tris []Triangle) float64 {
	sum := 0.0
	for _, tri := range tris {
		sum += math.Abs(tri.Area2()) / 2
	}
	return sum
}

func TestTriangulate_CoversConvexHull(t *testing.T) {
	for seed := int64(1); seed <= 60; seed++ {
		sites, err := GenerateSites(rand.New(rand.NewSource(seed)), SamplerConfig{
			Count:       64,
			MinDistance: 30,
			Bounds:      NewBoundingBox(0, 640, 0, 480),
			Margin:      10,
		}, logger.New())
		require.NoError(t, err)

		tris := triangulate(t, sites)
		h := hull(sites)

		assert.InEpsilon(t, polygonArea(h), meshArea(tris), 1e-9, "seed %d", seed)
		// триангуляция n точек с h точками на оболочке: 2n - 2 - h треугольников
		assert.Len(t, tris, 2*len(sites)-2-len(h), "seed %d", seed)
	}
}

func TestTriangulate_FlatHullTriangle(t *testing.T) {
	// окружность треугольника у нижней стороны огромная и уходит далеко за рамку
	sites := points(0, 0, 100, 0, 50, 40, 50, 0.001)
	tris := triangulate(t, sites)

	require.Len(t, tris, 3)
	assert.InDelta(t, 2000, meshArea(tris), 1e-6)

	flat := NewTriangle(sites[0], sites[1], sites[3])
	found := false
	for _, tri := range tris {
		found = found || tri.Equal(flat, DefaultEpsilon)
	}
	assert.True(t, found, "flat hull triangle is missing: %v", tris)
}

func TestTriangulate_SmallScale(t *testing.T) {
	sites := points(0, 0, 0.005, 0, 0, 0.005)
	tris := triangulate(t, sites)
	require.Len(t, tris, 1)

	circle, err := tris[0].Circumcircle(DefaultEpsilon)
	require.NoError(t, err)
	assert.InDelta(t, 0.0025, circle.Center.X, 1e-12)
	assert.InDelta(t, 0.0025, circle.Center.Y, 1e-12)
}

func TestSuperTriangle_LimitCircles(t *testing.T) {
	sites := points(0, 0, 10, 0, 5, 8)
	st := newSuperTriangle(sites, DefaultSuperScale)
	p, q := sites[0], sites[1]

	// одна бесконечная вершина снизу-слева: полуплоскость под прямой pq
	low := NewTriangle(p, q, st.A)
	in, err := st.inCircle(low, NewPoint(5, -1), DefaultEpsilon)
	require.NoError(t, err)
	assert.True(t, in)
	in, _ = st.inCircle(low, NewPoint(5, 1), DefaultEpsilon)
	assert.False(t, in)
	// на прямой pq: внутри только внутренность отрезка
	in, _ = st.inCircle(low, NewPoint(5, 0), DefaultEpsilon)
	assert.True(t, in)
	in, _ = st.inCircle(low, NewPoint(15, 0), DefaultEpsilon)
	assert.False(t, in)

	// две бесконечные вершины снизу: всё, что ниже p
	bottom := NewTriangle(st.A, sites[2], st.B)
	in, _ = st.inCircle(bottom, NewPoint(100, 7), DefaultEpsilon)
	assert.True(t, in)
	in, _ = st.inCircle(bottom, NewPoint(0, 9), DefaultEpsilon)
	assert.False(t, in)

	in, _ = st.inCircle(st.Triangle, NewPoint(1e6, 1e6), DefaultEpsilon)
	assert.True(t, in)
}
