package voronoi

import (
	"math"
	"math/rand"

	"github.com/0x0FACED/go-delaunay/pkg/logger"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// DefaultMaxAttempts - сколько отказов подряд допускается до ErrSamplingExhausted
const DefaultMaxAttempts = 100000

type SamplerConfig struct {
	Count       int
	MinDistance float64
	Bounds      BoundingBox
	// Margin - отступ от краёв рамки, чтобы сайты не липли к границе
	Margin float64
	// MaxAttempts: 0 - DefaultMaxAttempts, < 0 - без ограничения
	MaxAttempts int
	// OnAccept вызывается для каждого принятого сайта (например, чтобы сразу нарисовать его)
	OnAccept func(Point)
}

// GenerateSites - выборка с отбраковкой (Poisson disk): кандидат принимается,
// только если он не ближе MinDistance ко всем уже принятым.
func GenerateSites(rng *rand.Rand, cfg SamplerConfig, log *logger.ZapLogger) ([]Point, error) {
	if cfg.Count <= 0 || cfg.MinDistance < 0 {
		return nil, errors.Wrapf(ErrInvalidInput, "count=%d minDistance=%v", cfg.Count, cfg.MinDistance)
	}

	area := cfg.Bounds.Pad(cfg.Margin)
	if area.Width() <= 0 || area.Height() <= 0 {
		return nil, errors.Wrapf(ErrInvalidInput, "empty sampling area %+v", area)
	}

	maxAttempts := cfg.MaxAttempts
	if maxAttempts == 0 {
		maxAttempts = DefaultMaxAttempts
	}

	log.Info("[sample] Генерация сайтов",
		zap.Int("count", cfg.Count),
		zap.Float64("min-dist", cfg.MinDistance),
		zap.Any("area", area),
	)

	sites := make([]Point, 0, cfg.Count)
	rejected := 0
	total := 0
	for len(sites) < cfg.Count {
		candidate := NewPoint(
			area.Xl+rng.Float64()*area.Width(),
			area.Yt+rng.Float64()*area.Height(),
		)
		total++

		if !farEnough(candidate, sites, cfg.MinDistance) {
			rejected++
			if maxAttempts > 0 && rejected >= maxAttempts {
				log.Error("[sample] Не удалось разместить сайты",
					zap.Int("accepted", len(sites)),
					zap.Int("wanted", cfg.Count),
					zap.Int("attempts", total),
				)
				return sites, errors.Wrapf(ErrSamplingExhausted, "placed %d of %d sites after %d attempts", len(sites), cfg.Count, total)
			}
			continue
		}

		rejected = 0
		sites = append(sites, candidate)
		if cfg.OnAccept != nil {
			cfg.OnAccept(candidate)
		}
	}

	log.Info("[sample] Сайты сгенерированы", zap.Int("count", len(sites)), zap.Int("attempts", total))
	return sites, nil
}

func farEnough(p Point, accepted []Point, minDist float64) bool {
	for _, q := range accepted {
		if p.Dist(q) < minDist {
			return false
		}
	}
	return true
}

// GridSites раскладывает n сайтов по регулярной сетке внутри рамки
func GridSites(n int, bounds BoundingBox) []Point {
	if n <= 0 {
		return nil
	}
	sites := make([]Point, 0, n)

	rows := int(math.Sqrt(float64(n)))
	cols := (n + rows - 1) / rows

	xStep := bounds.Width() / float64(cols)
	yStep := bounds.Height() / float64(rows)

	for i := 0; i < rows && len(sites) < n; i++ {
		for j := 0; j < cols && len(sites) < n; j++ {
			x := bounds.Xl + xStep/2 + float64(j)*xStep
			y := bounds.Yt + yStep/2 + float64(i)*yStep
			sites = append(sites, NewPoint(x, y))
		}
	}

	return sites
}
