package render

import (
	"image"
	"io"
	"os"

	"github.com/0x0FACED/go-delaunay/pkg/voronoi"
	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/pkg/errors"
)

// ImageSurface рисует в растровую картинку через gg
type ImageSurface struct {
	c          *gg.Context
	background ColorID
	color      ColorID
}

func NewImageSurface(width, height int) *ImageSurface {
	s := &ImageSurface{
		c:          gg.NewContext(width, height),
		background: Black,
		color:      White,
	}
	s.c.SetLineWidth(1)
	s.Clear()
	return s
}

func (s *ImageSurface) SetColor(c ColorID) {
	s.color = c
	s.c.SetColor(c.RGBA())
}

func (s *ImageSurface) DrawLine(p1, p2 voronoi.Point) {
	s.c.DrawLine(p1.X, p1.Y, p2.X, p2.Y)
	s.c.Stroke()
}

func (s *ImageSurface) DrawCircle(center voronoi.Point, radius float64) {
	s.c.DrawCircle(center.X, center.Y, radius)
	s.c.Stroke()
}

func (s *ImageSurface) Clear() {
	s.c.SetColor(s.background.RGBA())
	s.c.Clear()
	s.c.SetColor(s.color.RGBA())
}

func (s *ImageSurface) FillPolygon(c ColorID, pts []voronoi.Point) {
	if len(pts) < 3 {
		return
	}
	s.c.Push()
	defer s.c.Pop()

	s.c.MoveTo(pts[0].X, pts[0].Y)
	for _, p := range pts[1:] {
		s.c.LineTo(p.X, p.Y)
	}
	s.c.ClosePath()
	s.c.SetColor(c.RGBA())
	s.c.Fill()
}

// MarkSite - закрашенный кружок
func (s *ImageSurface) MarkSite(p voronoi.Point) {
	s.c.DrawCircle(p.X, p.Y, SiteRadius)
	s.c.Fill()
}

func (s *ImageSurface) Image() image.Image {
	return s.c.Image()
}

func (s *ImageSurface) EncodePNG(w io.Writer) error {
	return s.c.EncodePNG(w)
}

func (s *ImageSurface) SavePNG(path string) error {
	if err := s.c.SavePNG(path); err != nil {
		return errors.Wrapf(err, "save %s", path)
	}
	return nil
}

// Preview выводит сохранённый PNG прямо в терминал (iTerm)
func Preview(path string, w io.Writer) error {
	if w == nil {
		w = os.Stdout
	}
	return imgcat.CatFile(path, w)
}
