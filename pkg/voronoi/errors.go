package voronoi

import "github.com/pkg/errors"

var (
	// ErrDegenerateGeometry - вершины треугольника коллинеарны или совпадают,
	// описанная окружность не определена.
	ErrDegenerateGeometry = errors.New("degenerate geometry")
	// ErrSamplingExhausted - не удалось набрать нужное количество сайтов
	// при заданных ограничениях.
	ErrSamplingExhausted = errors.New("sampling exhausted")
	ErrInvalidInput      = errors.New("invalid input")
)
