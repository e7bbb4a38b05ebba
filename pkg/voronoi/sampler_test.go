package voronoi

import (
	"math/rand"
	"testing"

	"github.com/0x0FACED/go-delaunay/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertMinDistance(t *testing.T, sites []Point, minDist float64) {
	t.Helper()
	for i := range sites {
		for j := i + 1; j < len(sites); j++ {
			assert.GreaterOrEqual(t, sites[i].Dist(sites[j]), minDist-1e-9)
		}
	}
}

func TestGenerateSites_MinDistance(t *testing.T) {
	bounds := NewBoundingBox(0, 640, 0, 480)
	accepted := 0
	sites, err := GenerateSites(rand.New(rand.NewSource(42)), SamplerConfig{
		Count:       120,
		MinDistance: 25,
		Bounds:      bounds,
		Margin:      10,
		OnAccept:    func(Point) { accepted++ },
	}, logger.New())
	require.NoError(t, err)

	assert.Len(t, sites, 120)
	assert.Equal(t, 120, accepted)
	assertMinDistance(t, sites, 25)

	inner := bounds.Pad(10)
	for _, s := range sites {
		assert.True(t, inner.Contains(s), "site %v outside padded bounds", s)
	}
}

func TestGenerateSites_SameSeedSameSites(t *testing.T) {
	cfg := SamplerConfig{Count: 30, MinDistance: 10, Bounds: NewBoundingBox(0, 200, 0, 200)}
	a, err := GenerateSites(rand.New(rand.NewSource(3)), cfg, logger.New())
	require.NoError(t, err)
	b, err := GenerateSites(rand.New(rand.NewSource(3)), cfg, logger.New())
	require.NoError(t, err)

	require.Len(t, b, len(a))
	for i := range a {
		assert.True(t, a[i].Equal(b[i], 1e-12))
	}
}

func TestGenerateSites_Exhausted(t *testing.T) {
	sites, err := GenerateSites(rand.New(rand.NewSource(1)), SamplerConfig{
		Count:       100,
		MinDistance: 50,
		Bounds:      NewBoundingBox(0, 100, 0, 100),
		MaxAttempts: 500,
	}, logger.New())

	assert.ErrorIs(t, err, ErrSamplingExhausted)
	assert.NotEmpty(t, sites)
	assert.Less(t, len(sites), 100)
	assertMinDistance(t, sites, 50)
}

func TestGenerateSites_InvalidInput(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	log := logger.New()

	_, err := GenerateSites(rng, SamplerConfig{Count: 0, MinDistance: 1, Bounds: NewBoundingBox(0, 10, 0, 10)}, log)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = GenerateSites(rng, SamplerConfig{Count: 3, MinDistance: 1, Bounds: NewBoundingBox(0, 10, 0, 10), Margin: 6}, log)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGridSites(t *testing.T) {
	bounds := NewBoundingBox(0, 100, 0, 100)
	for _, n := range []int{1, 4, 7, 12, 20} {
		sites := GridSites(n, bounds)
		assert.Len(t, sites, n)
		for _, s := range sites {
			assert.True(t, bounds.Contains(s))
		}
	}
	assert.Empty(t, GridSites(0, bounds))
}
