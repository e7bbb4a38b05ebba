// Package sites читает готовые наборы сайтов вместо случайной генерации.
package sites

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/0x0FACED/go-delaunay/pkg/voronoi"
	"github.com/JoshVarga/svgparser"
	"github.com/pkg/errors"
)

// LoadSVG берёт центры всех <circle> из SVG. Это не полноценный SVG-парсер:
// трансформации и единицы измерения игнорируются.
func LoadSVG(r io.Reader) ([]voronoi.Point, error) {
	root, err := svgparser.Parse(r, false)
	if err != nil {
		return nil, errors.Wrap(err, "parse svg")
	}

	circles := root.FindAll("circle")
	points := make([]voronoi.Point, 0, len(circles))
	for i, el := range circles {
		x, err := parseCoord(el.Attributes["cx"])
		if err != nil {
			return nil, errors.Wrapf(err, "circle %d: cx", i)
		}
		y, err := parseCoord(el.Attributes["cy"])
		if err != nil {
			return nil, errors.Wrapf(err, "circle %d: cy", i)
		}
		points = append(points, voronoi.NewPoint(x, y))
	}

	if len(points) == 0 {
		return nil, errors.New("no circles found in svg")
	}
	return points, nil
}

func parseCoord(s string) (float64, error) {
	s = strings.TrimSuffix(strings.TrimSpace(s), "px")
	if s == "" {
		// атрибут по умолчанию равен 0
		return 0, nil
	}
	return strconv.ParseFloat(s, 64)
}

// ReadText читает строки вида "x y". Пустые строки и строки с # пропускаются.
func ReadText(r io.Reader) ([]voronoi.Point, error) {
	var points []voronoi.Point

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.Fields(line)
		if len(parts) != 2 {
			return nil, errors.Errorf("line %d: want \"x y\", got %q", lineNo, line)
		}
		x, err := strconv.ParseFloat(parts[0], 64)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", lineNo)
		}
		y, err := strconv.ParseFloat(parts[1], 64)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", lineNo)
		}
		points = append(points, voronoi.NewPoint(x, y))
	}

	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "read sites")
	}
	return points, nil
}
