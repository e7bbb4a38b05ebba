package render

import (
	"io"
	"math"

	"github.com/0x0FACED/go-delaunay/pkg/voronoi"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// сколько отрезков в ломаной, которой рисуется окружность
const circleSegments = 32

// названия серий по цвету, остальные цвета идут без подписи
var seriesNames = map[ColorID]string{
	LightGreen: "Триангуляция",
	Yellow:     "Границы",
	DarkGray:   "Окружности",
	Cyan:       "Радиус",
}

type segment struct {
	color ColorID
	a, b  voronoi.Point
}

// ChartSurface собирает рисунок в echarts: сайты - точки, всё остальное - линии
type ChartSurface struct {
	Title         string
	Width, Height int

	color    ColorID
	sites    []voronoi.Point
	segments []segment
}

func NewChartSurface(title string, width, height int) *ChartSurface {
	return &ChartSurface{Title: title, Width: width, Height: height, color: White}
}

func (s *ChartSurface) SetColor(c ColorID) { s.color = c }

func (s *ChartSurface) DrawLine(p1, p2 voronoi.Point) {
	s.segments = append(s.segments, segment{s.color, p1, p2})
}

func (s *ChartSurface) DrawCircle(center voronoi.Point, radius float64) {
	prev := voronoi.Point{X: center.X + radius, Y: center.Y}
	for i := 1; i <= circleSegments; i++ {
		angle := 2 * math.Pi * float64(i) / circleSegments
		next := voronoi.Point{X: center.X + radius*math.Cos(angle), Y: center.Y + radius*math.Sin(angle)}
		s.DrawLine(prev, next)
		prev = next
	}
}

func (s *ChartSurface) Clear() {
	s.sites = nil
	s.segments = nil
}

func (s *ChartSurface) MarkSite(p voronoi.Point) {
	s.sites = append(s.sites, p)
}

func (s *ChartSurface) prepare(scatter *charts.Scatter) {
	scatter.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Height: "580px",
			Width:  "1020px",
		}),
		charts.WithLegendOpts(opts.Legend{
			TextStyle: &opts.TextStyle{
				Color: "white",
			},
			Right: "10%",
		}),
		charts.WithTitleOpts(opts.Title{
			Title:                s.Title,
			TitleBackgroundColor: "white",
			Left:                 "10%",
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Type: "value",
			Name: "Ширина",
			Min:  0,
			Max:  s.Width,
			AxisLabel: &opts.AxisLabel{
				Color: "white",
			},
			SplitLine: &opts.SplitLine{
				Show: opts.Bool(false),
			},
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Type: "value",
			Name: "Высота",
			Min:  0,
			Max:  s.Height,
			AxisLabel: &opts.AxisLabel{
				Color: "white",
			},
			SplitLine: &opts.SplitLine{
				Show: opts.Bool(false),
			},
		}),
		charts.WithDataZoomOpts(opts.DataZoom{
			Type:       "inside",
			Start:      0,
			End:        100,
			FilterMode: "none",
			Orient:     "horizontal",
		}),
		charts.WithDataZoomOpts(opts.DataZoom{
			Type:       "inside",
			Start:      0,
			End:        100,
			FilterMode: "none",
			Orient:     "vertical",
		}),
	)
}

// Chart строит scatter с сайтами и наложенными линиями
func (s *ChartSurface) Chart() *charts.Scatter {
	scatter := charts.NewScatter()
	s.prepare(scatter)

	points := make([]opts.ScatterData, 0, len(s.sites))
	for _, p := range s.sites {
		points = append(points, opts.ScatterData{
			Value: []float64{p.X, p.Y},
		})
	}

	scatter.AddSeries("Сайты", points).
		SetSeriesOptions(
			charts.WithItemStyleOpts(opts.ItemStyle{
				Color: LightRed.Hex(),
			}),
		)

	for _, seg := range s.segments {
		line := charts.NewLine()
		line.SetGlobalOptions(
			charts.WithXAxisOpts(opts.XAxis{Show: opts.Bool(true)}),
			charts.WithYAxisOpts(opts.YAxis{Show: opts.Bool(true)}),
		)

		line.AddSeries(seriesNames[seg.color], []opts.LineData{
			{Value: []float64{seg.a.X, seg.a.Y}},
			{Value: []float64{seg.b.X, seg.b.Y}},
		}).SetSeriesOptions(
			charts.WithLineStyleOpts(opts.LineStyle{
				Width: 1,
				Color: seg.color.Hex(),
			}),
		)

		scatter.Overlap(line)
	}

	return scatter
}

func (s *ChartSurface) Render(w io.Writer) error {
	return s.Chart().Render(w)
}
