// Package cli - общая часть команд voronoi: генерация, отрисовка, диалог в терминале.
package cli

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/0x0FACED/go-delaunay/pkg/config"
	"github.com/0x0FACED/go-delaunay/pkg/logger"
	"github.com/0x0FACED/go-delaunay/pkg/render"
	"github.com/0x0FACED/go-delaunay/pkg/sites"
	"github.com/0x0FACED/go-delaunay/pkg/voronoi"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type Runner struct {
	Params config.Params
	Layers render.Layers
	Log    *logger.ZapLogger
	// SitesFile - читать сайты из файла вместо генерации
	SitesFile string
}

// loadSites читает сайты из файла: .svg - центры окружностей, иначе строки "x y"
func loadSites(path string) ([]voronoi.Point, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if strings.EqualFold(filepath.Ext(path), ".svg") {
		return sites.LoadSVG(f)
	}
	return sites.ReadText(f)
}

// Sites - из файла или случайные. Каждый принятый сайт сразу рисуется на s.
func (r *Runner) Sites(s render.Surface) ([]voronoi.Point, error) {
	if r.SitesFile != "" {
		pts, err := loadSites(r.SitesFile)
		if err != nil {
			return nil, errors.Wrapf(err, "load sites from %s", r.SitesFile)
		}
		r.Log.Info("Сайты загружены", zap.String("file", r.SitesFile), zap.Int("count", len(pts)))
		return pts, nil
	}

	seed := r.Params.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	r.Log.Info("Случайные сайты", zap.Int64("seed", seed))

	cfg := r.Params.Sampler()
	cfg.OnAccept = func(p voronoi.Point) {
		s.SetColor(render.LightRed)
		render.DrawSite(s, p)
	}
	return voronoi.GenerateSites(rand.New(rand.NewSource(seed)), cfg, r.Log)
}

// Render - полный проход: сайты, диаграмма, отрисовка
func (r *Runner) Render(s render.Surface) (*voronoi.Diagram, error) {
	if err := r.Params.Validate(); err != nil {
		return nil, errors.Wrap(voronoi.ErrInvalidInput, err.Error())
	}

	pts, err := r.Sites(s)
	if err != nil {
		return nil, err
	}

	d, err := voronoi.CreateDiagram(pts, r.Params.Bounds(), r.Params.Options(), r.Log)
	if err != nil {
		return nil, err
	}

	layers := r.Layers
	layers.MinDistance = r.Params.MinDistance
	render.Draw(s, d, layers)
	return d, nil
}

func (r *Runner) DrawPNG(out string, preview bool) error {
	s := render.NewImageSurface(r.Params.Width, r.Params.Height)
	d, err := r.Render(s)
	if err != nil {
		return err
	}

	if err := s.SavePNG(out); err != nil {
		return err
	}
	r.Log.Info("Картинка сохранена",
		zap.String("file", out),
		zap.Int("triangles", len(d.Triangles)),
		zap.Int("edges", len(d.Edges)),
	)

	if preview {
		return render.Preview(out, os.Stdout)
	}
	return nil
}

// PrintCircumcircle - центр и радиус описанной окружности треугольника
func PrintCircumcircle(out io.Writer, c [6]float64, eps float64) error {
	t := voronoi.NewTriangle(
		voronoi.NewPoint(c[0], c[1]),
		voronoi.NewPoint(c[2], c[3]),
		voronoi.NewPoint(c[4], c[5]),
	)
	circle, err := t.Circumcircle(eps)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Center: (%g, %g)\nRadius: %g\n", circle.Center.X, circle.Center.Y, circle.Radius)
	return nil
}
