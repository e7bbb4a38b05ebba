package voronoi

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMeshAddRejectsDuplicates(t *testing.T) {
	a, b, c := NewPoint(0, 0), NewPoint(4, 0), NewPoint(2, 3)
	m := NewMesh(DefaultEpsilon)

	assert.True(t, m.Add(NewTriangle(a, b, c)))
	assert.False(t, m.Add(NewTriangle(c, a, b)))
	assert.False(t, m.Add(NewTriangle(b, a, c)))
	assert.Equal(t, 1, m.Len())
}

func TestMeshRemove(t *testing.T) {
	a, b, c, d := NewPoint(0, 0), NewPoint(4, 0), NewPoint(2, 3), NewPoint(2, -3)
	m := NewMesh(DefaultEpsilon)
	m.Add(NewTriangle(a, b, c))
	m.Add(NewTriangle(a, b, d))
	m.Add(NewTriangle(a, c, NewPoint(-2, 2)))

	t.Run("reflected order", func(t *testing.T) {
		assert.True(t, m.Remove(NewTriangle(c, b, a)))
		assert.Equal(t, 2, m.Len())
		assert.False(t, m.Contains(NewTriangle(a, b, c)))
	})

	t.Run("within tolerance", func(t *testing.T) {
		near := NewTriangle(NewPoint(2, -3+5e-5), NewPoint(4, 0), NewPoint(5e-5, 0))
		assert.True(t, m.Remove(near))
		assert.Equal(t, 1, m.Len())
	})

	t.Run("missing", func(t *testing.T) {
		assert.False(t, m.Remove(NewTriangle(a, b, NewPoint(9, 9))))
	})

	// индекс должен остаться согласованным после перестановок
	assert.True(t, m.Contains(NewTriangle(NewPoint(-2, 2), a, c)))
}

func TestMeshRetainKeepsOrder(t *testing.T) {
	m := NewMesh(DefaultEpsilon)
	for i := 0; i < 5; i++ {
		x := float64(i)
		m.Add(NewTriangle(NewPoint(x, 0), NewPoint(x+1, 0), NewPoint(x, 1)))
	}

	removed := m.Retain(func(t Triangle) bool { return int(t.A.X)%2 == 0 })
	assert.Equal(t, 2, removed)

	got := m.Triangles()
	if assert.Len(t, got, 3) {
		assert.Equal(t, 0.0, got[0].A.X)
		assert.Equal(t, 2.0, got[1].A.X)
		assert.Equal(t, 4.0, got[2].A.X)
	}
	assert.True(t, m.Remove(got[1]))
	assert.Equal(t, 2, m.Len())
}

func TestMeshAddUsesExactKey(t *testing.T) {
	m := NewMesh(DefaultEpsilon)
	assert.True(t, m.Add(NewTriangle(NewPoint(0, 0), NewPoint(4, 0), NewPoint(2, 3))))

	// почти совпадающий треугольник добавляется, но найти его можно с допуском
	near := NewTriangle(NewPoint(5e-5, 0), NewPoint(4, 0), NewPoint(2, 3))
	assert.True(t, m.Add(near))
	assert.Equal(t, 2, m.Len())
	assert.True(t, m.Remove(near))
	assert.True(t, m.Remove(near))
	assert.Zero(t, m.Len())
}
