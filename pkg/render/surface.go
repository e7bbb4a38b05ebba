// Package render рисует результат на разных поверхностях: PNG, окно, график.
package render

import (
	"fmt"
	"image/color"

	"github.com/0x0FACED/go-delaunay/pkg/voronoi"
)

// ColorID - 16 цветов палитры BGI
type ColorID int

const (
	Black ColorID = iota
	Blue
	Green
	Cyan
	Red
	Magenta
	Brown
	LightGray
	DarkGray
	LightBlue
	LightGreen
	LightCyan
	LightRed
	LightMagenta
	Yellow
	White
)

var palette = [...]color.RGBA{
	Black:        {0, 0, 0, 255},
	Blue:         {0, 0, 168, 255},
	Green:        {0, 168, 0, 255},
	Cyan:         {0, 168, 168, 255},
	Red:          {168, 0, 0, 255},
	Magenta:      {168, 0, 168, 255},
	Brown:        {168, 84, 0, 255},
	LightGray:    {168, 168, 168, 255},
	DarkGray:     {84, 84, 84, 255},
	LightBlue:    {84, 84, 252, 255},
	LightGreen:   {84, 252, 84, 255},
	LightCyan:    {84, 252, 252, 255},
	LightRed:     {252, 84, 84, 255},
	LightMagenta: {252, 84, 252, 255},
	Yellow:       {252, 252, 84, 255},
	White:        {252, 252, 252, 255},
}

// RGBA возвращает цвет палитры, неизвестные id - белый
func (c ColorID) RGBA() color.RGBA {
	if c < 0 || int(c) >= len(palette) {
		return palette[White]
	}
	return palette[c]
}

// Hex - цвет в формате #rrggbb для echarts
func (c ColorID) Hex() string {
	rgba := c.RGBA()
	return fmt.Sprintf("#%02x%02x%02x", rgba.R, rgba.G, rgba.B)
}

// Surface - то, что умеет рисовать ядро. Пиксели обратно не читаются.
type Surface interface {
	SetColor(c ColorID)
	DrawLine(p1, p2 voronoi.Point)
	DrawCircle(center voronoi.Point, radius float64)
	Clear()
}

// PolygonFiller - поверхность умеет заливать многоугольники (ячейки)
type PolygonFiller interface {
	FillPolygon(c ColorID, pts []voronoi.Point)
}

// SiteMarker - у поверхности есть свой способ отметить сайт
type SiteMarker interface {
	MarkSite(p voronoi.Point)
}
