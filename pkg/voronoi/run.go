package voronoi

import (
	"github.com/0x0FACED/go-delaunay/pkg/logger"
	"go.uber.org/zap"
)

type Options struct {
	Epsilon    float64
	SuperScale float64
	// Clip - обрезать рёбра Вороного по рамке
	Clip bool
}

func DefaultOptions() Options {
	return Options{
		Epsilon:    DefaultEpsilon,
		SuperScale: DefaultSuperScale,
		Clip:       true,
	}
}

// Структура диаграммы
type Diagram struct {
	Sites     []Point
	Triangles []Triangle
	Edges     []Edge
	Cells     []Cell
	// Epsilon - допуск, с которым диаграмма построена
	Epsilon float64
}

// CreateDiagram - весь конвейер: триангуляция, двойственный граф, ячейки, отсечение.
// При ошибке триангуляции диаграмма не возвращается, частичных результатов нет.
func CreateDiagram(sites []Point, bbox BoundingBox, opts Options, log *logger.ZapLogger) (*Diagram, error) {
	tr := &Triangulator{
		Epsilon:    opts.Epsilon,
		SuperScale: opts.SuperScale,
		Logger:     log,
	}

	mesh, err := tr.Triangulate(sites)
	if err != nil {
		return nil, err
	}

	triangles := mesh.Triangles()
	edges := DeriveVoronoi(triangles, opts.Epsilon, log)
	cells := DeriveCells(sites, triangles, opts.Epsilon, log)

	if opts.Clip {
		before := len(edges)
		edges = ClipEdges(edges, bbox)
		log.Info("[dual] Рёбра обрезаны по рамке", zap.Int("before", before), zap.Int("after", len(edges)))
	}

	return &Diagram{
		Sites:     sites,
		Triangles: triangles,
		Edges:     edges,
		Cells:     cells,
		Epsilon:   opts.Epsilon,
	}, nil
}
