package voronoi

import (
	"testing"

	"github.com/0x0FACED/go-delaunay/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveVoronoi_Diamond(t *testing.T) {
	a, b, c, d := NewPoint(0, 0), NewPoint(4, 0), NewPoint(2, 3), NewPoint(2, -3)
	tris := []Triangle{NewTriangle(a, b, c), NewTriangle(b, a, d)}

	edges := DeriveVoronoi(tris, DefaultEpsilon, logger.New())
	require.Len(t, edges, 1)

	want := Edge{NewPoint(2, 5.0/6.0), NewPoint(2, -5.0/6.0)}
	assert.True(t, edges[0].Equal(want, 1e-9), "got %v", edges[0])
}

func TestDeriveVoronoi_SkipsDegenerate(t *testing.T) {
	a, b, c := NewPoint(0, 0), NewPoint(4, 0), NewPoint(2, 3)
	tris := []Triangle{
		NewTriangle(a, b, c),
		// коллинеарный, делит с первым ребро a-b
		NewTriangle(a, b, NewPoint(8, 0)),
	}
	assert.Empty(t, DeriveVoronoi(tris, DefaultEpsilon, logger.New()))
}

func TestDeriveVoronoi_FromTriangulation(t *testing.T) {
	tris := triangulate(t, scatteredSites())
	edges := DeriveVoronoi(tris, DefaultEpsilon, logger.New())

	internal := 0
	for i := range tris {
		for j := i + 1; j < len(tris); j++ {
			if tris[i].IsNeighbor(tris[j], DefaultEpsilon) {
				internal++
			}
		}
	}
	assert.Len(t, edges, internal)
	assert.NotEmpty(t, edges)
}

func TestDeriveCells(t *testing.T) {
	c := NewPoint(2, 2)
	p1, p2, p3, p4 := NewPoint(0, 0), NewPoint(4, 0), NewPoint(4, 4), NewPoint(0, 4)
	tris := []Triangle{
		NewTriangle(p1, p2, c),
		NewTriangle(p2, p3, c),
		NewTriangle(p3, p4, c),
		NewTriangle(p4, p1, c),
	}

	cells := DeriveCells([]Point{c, p1}, tris, DefaultEpsilon, logger.New())
	require.Len(t, cells, 2)

	center := cells[0]
	assert.True(t, center.Closed)
	want := []Point{NewPoint(2, 0), NewPoint(4, 2), NewPoint(2, 4), NewPoint(0, 2)}
	require.Len(t, center.Vertices, len(want))
	for i, w := range want {
		assert.True(t, center.Vertices[i].Equal(w, 1e-9), "vertex %d: %v", i, center.Vertices[i])
	}

	corner := cells[1]
	assert.False(t, corner.Closed)
	assert.Len(t, corner.Vertices, 2)
}
