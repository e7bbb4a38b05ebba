package config

import (
	"fmt"
	"math"

	"github.com/0x0FACED/go-delaunay/pkg/voronoi"
	"go.uber.org/multierr"
)

// Params - параметры одного запуска генератора
type Params struct {
	Count       int
	MinDistance float64
	Width       int
	Height      int
	Margin      float64
	Seed        int64
	MaxAttempts int
	Epsilon     float64
	SuperScale  float64
}

// Default - окно 640x480, как в исходной демке
func Default() Params {
	return Params{
		Count:       64,
		MinDistance: 30,
		Width:       640,
		Height:      480,
		Margin:      10,
		MaxAttempts: voronoi.DefaultMaxAttempts,
		Epsilon:     voronoi.DefaultEpsilon,
		SuperScale:  voronoi.DefaultSuperScale,
	}
}

// Validate возвращает все нарушения сразу
func (p Params) Validate() error {
	var err error
	if p.Count < 3 {
		err = multierr.Append(err, fmt.Errorf("count must be at least 3, got %d", p.Count))
	}
	if p.MinDistance <= 0 || math.IsNaN(p.MinDistance) {
		err = multierr.Append(err, fmt.Errorf("min distance must be positive, got %v", p.MinDistance))
	}
	if p.Width <= 0 || p.Height <= 0 {
		err = multierr.Append(err, fmt.Errorf("bounds must be positive, got %dx%d", p.Width, p.Height))
	}
	if p.Margin < 0 || 2*p.Margin >= float64(p.Width) || 2*p.Margin >= float64(p.Height) {
		err = multierr.Append(err, fmt.Errorf("margin %v does not fit into %dx%d", p.Margin, p.Width, p.Height))
	}
	if p.Epsilon <= 0 {
		err = multierr.Append(err, fmt.Errorf("epsilon must be positive, got %v", p.Epsilon))
	}
	if p.SuperScale < 2 {
		err = multierr.Append(err, fmt.Errorf("super triangle scale must be at least 2, got %v", p.SuperScale))
	}
	return err
}

func (p Params) Bounds() voronoi.BoundingBox {
	return voronoi.NewBoundingBox(0, float64(p.Width), 0, float64(p.Height))
}

func (p Params) Sampler() voronoi.SamplerConfig {
	return voronoi.SamplerConfig{
		Count:       p.Count,
		MinDistance: p.MinDistance,
		Bounds:      p.Bounds(),
		Margin:      p.Margin,
		MaxAttempts: p.MaxAttempts,
	}
}

func (p Params) Options() voronoi.Options {
	opts := voronoi.DefaultOptions()
	opts.Epsilon = p.Epsilon
	opts.SuperScale = p.SuperScale
	return opts
}
